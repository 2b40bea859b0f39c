package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"siteyonetim.app/configs"
	"siteyonetim.app/handlers/api"
	"siteyonetim.app/handlers/web"
	"siteyonetim.app/middlewares"
	"siteyonetim.app/services"
	"siteyonetim.app/views"
)

// Bir medya isteğinde aynı anda gönderilebilecek en fazla dosya sayısı kadar pay bırakılır.
const maxFilesPerRequest = 10

// Options uygulamanın rota kurulumu için ihtiyaç duyduğu bağımlılıklardır.
type Options struct {
	Config   *configs.AppConfig
	Services *services.Services
	Sessions *session.Store
	// AccessLog false ise istek logu yazılmaz (testler).
	AccessLog bool
}

// NewApp Fiber uygulamasını oluşturur ve tüm rotaları bağlar.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Site Yönetim",
		Views:        views.Engine(),
		ErrorHandler: api.ErrorHandler,
		BodyLimit:    bodyLimit(opts.Config.UploadMaxBytes),
	})
	SetupRoutes(app, opts)
	return app
}

func bodyLimit(maxFileBytes int64) int {
	const minLimit = 4 << 20
	limit := maxFileBytes * maxFilesPerRequest
	if limit < minLimit {
		return minLimit
	}
	return int(limit)
}

// SetupRoutes genel ara katmanları ve rota gruplarını ayarlar.
func SetupRoutes(app *fiber.App, opts Options) {
	cfg := opts.Config

	app.Use(recoverMiddleware.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
		}))
	}
	if cfg.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: cfg.CORSAllowOrigins != "*",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	app.Use(middlewares.Session(opts.Services.Auth, opts.Sessions))

	registerAuthRoutes(app, opts)
	registerAPIRoutes(app, opts.Services)

	app.Use(web.NotFound)
}
