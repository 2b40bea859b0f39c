package routes

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/handlers/api"
	"siteyonetim.app/handlers/web"
	"siteyonetim.app/middlewares"
)

func registerAuthRoutes(app *fiber.App, opts Options) {
	svc := opts.Services
	pages := web.NewHandler(svc.Auth, svc.Dashboard, opts.Sessions)

	guestRoutes := app.Group("")
	guestRoutes.Get(middlewares.LoginPath, middlewares.Guest, pages.ShowLogin)
	guestRoutes.Post(middlewares.LoginPath, middlewares.Guest, pages.Login)

	app.Get("/cikis", pages.Logout)
	app.Get("/", middlewares.PageAuth, pages.Home)

	authHandler := api.NewAuthHandler(svc.Auth, opts.Sessions)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
}
