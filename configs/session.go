package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionCookieName tarayıcı oturum çerezinin adıdır.
const SessionCookieName = "site_session"

// SetupSession cookie tabanlı oturum deposunu oluşturur.
func SetupSession(cfg *AppConfig) *session.Store {
	maxAge := cfg.SessionMaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     maxAge,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   !cfg.IsDevelopment(),
		CookieSameSite: "Lax",
	})
}
