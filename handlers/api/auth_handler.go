package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/middlewares"
	"siteyonetim.app/pkg/authsession"
	"siteyonetim.app/services"
)

// AuthHandler JSON giriş/çıkış uç noktaları. Giriş hem Bearer jetonu döndürür hem de
// çerez oturumunu başlatır.
type AuthHandler struct {
	service  services.IAuthService
	sessions *session.Store
}

func NewAuthHandler(service services.IAuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

type loginResponse struct {
	services.IssuedToken
	User authsession.User `json:"user"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	user, err := h.service.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	token, err := h.service.IssueToken(user)
	if err != nil {
		return err
	}
	if err := StartSession(c, h.sessions, user.ID); err != nil {
		return err
	}
	return c.JSON(loginResponse{
		IssuedToken: *token,
		User:        authsession.User{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := EndSession(c, h.sessions); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Session GET /api/auth/session. Oturum yoksa durum "unauthenticated" döner.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s := middlewares.CurrentSession(c)
	body := fiber.Map{"status": s.Status()}
	if u, ok := s.User(); ok {
		body["user"] = u
	}
	return c.JSON(body)
}

// StartSession çerez oturumunu yeniler ve kullanıcı kimliğini yazar.
func StartSession(c *fiber.Ctx, store *session.Store, userID uint) error {
	if store == nil {
		return nil
	}
	sess, err := store.Get(c)
	if err != nil {
		configslog.Log.Error("Oturum başlatılamadı", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middlewares.SessionUserIDKey, userID)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Oturum kaydedilemedi", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// EndSession çerez oturumunu yok eder ve isteğin oturumunu kimliksiz yapar.
func EndSession(c *fiber.Ctx, store *session.Store) error {
	middlewares.CurrentSession(c).Reject()
	if store == nil {
		return nil
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
