// Package web tarayıcıya sunulan giriş ve özet sayfalarını işler.
package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/handlers/api"
	"siteyonetim.app/middlewares"
	"siteyonetim.app/models"
	"siteyonetim.app/services"
)

const layout = "layouts/main"

type Handler struct {
	auth      services.IAuthService
	dashboard services.IDashboardService
	sessions  *session.Store
}

func NewHandler(auth services.IAuthService, dashboard services.IDashboardService, sessions *session.Store) *Handler {
	return &Handler{auth: auth, dashboard: dashboard, sessions: sessions}
}

func (h *Handler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{"Title": "Giriş"}, layout)
}

// Login form gönderimini işler. Hatalı girişte form e-posta korunarak yeniden gösterilir.
func (h *Handler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return h.loginError(c, in.Email, "Geçersiz form verisi.", fiber.StatusBadRequest)
	}
	user, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		var validation services.ValidationError
		var unauthorized services.UnauthorizedError
		switch {
		case errors.As(err, &validation):
			return h.loginError(c, in.Email, "E-posta ve şifre gereklidir.", fiber.StatusBadRequest)
		case errors.As(err, &unauthorized):
			return h.loginError(c, in.Email, "E-posta veya şifre hatalı.", fiber.StatusUnauthorized)
		default:
			configslog.Log.Error("Giriş sayfası hatası", zap.String("request_id", api.RequestID(c)), zap.Error(err))
			return h.loginError(c, in.Email, "Giriş yapılamadı, lütfen tekrar deneyin.", fiber.StatusInternalServerError)
		}
	}
	if err := api.StartSession(c, h.sessions, user.ID); err != nil {
		return h.loginError(c, in.Email, "Oturum başlatılamadı.", fiber.StatusInternalServerError)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) loginError(c *fiber.Ctx, email, message string, status int) error {
	return c.Status(status).Render("auth/login", fiber.Map{
		"Title": "Giriş",
		"Error": message,
		"Email": email,
	}, layout)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := api.EndSession(c, h.sessions); err != nil {
		configslog.Log.Warn("Oturum kapatılamadı", zap.Error(err))
	}
	return c.Redirect(middlewares.LoginPath, fiber.StatusFound)
}

// Home giriş yapmış kullanıcıya özet sayfasını gösterir.
func (h *Handler) Home(c *fiber.Ctx) error {
	user, _ := middlewares.CurrentSession(c).User()
	stats, err := h.dashboard.Stats(c.UserContext())
	if err != nil {
		configslog.Log.Error("Özet sayfası verisi alınamadı", zap.String("request_id", api.RequestID(c)), zap.Error(err))
		stats = &services.DashboardStats{}
	}
	return c.Render("home/index", fiber.Map{
		"Title":          "Özet",
		"User":           user,
		"Stats":          stats,
		"StatusLabels":   stringLabels(models.IssueStatusLabels),
		"PriorityLabels": stringLabels(models.IssuePriorityLabels),
	}, layout)
}

// NotFound eşleşmeyen rotalar için API isteklerine JSON, tarayıcıya HTML 404 döner.
func NotFound(c *fiber.Ctx) error {
	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML {
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, layout)
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
}

func stringLabels[K ~string](labels map[K]string) map[string]string {
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[string(k)] = v
	}
	return out
}
