package middlewares

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/pkg/authsession"
	"siteyonetim.app/services"
)

// SessionUserIDKey çerez oturumunda kullanıcı kimliğinin tutulduğu anahtardır.
const SessionUserIDKey = "user_id"

const localsSessionKey = "auth_session"

// Session her istek için bir authsession.Session kurar. Kimlik önce
// "Authorization: Bearer" başlığından, yoksa çerez oturumundan çözülür.
// Oturum isteğin UserContext'ine ve Locals'a yazılır.
func Session(auth services.IAuthService, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := authsession.New()
		user, err := resolveUser(c, auth, store)
		switch {
		case err != nil:
			var unauthorized services.UnauthorizedError
			if !errors.As(err, &unauthorized) {
				configslog.Log.Error("Oturum çözülemedi", zap.String("path", c.Path()), zap.Error(err))
			}
			s.Reject()
		case user == nil:
			s.Reject()
		default:
			s.Authenticate(*user)
		}
		c.Locals(localsSessionKey, s)
		c.SetUserContext(authsession.WithSession(c.UserContext(), s))
		return c.Next()
	}
}

func resolveUser(c *fiber.Ctx, auth services.IAuthService, store *session.Store) (*authsession.User, error) {
	if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
		return auth.AuthenticateToken(c.UserContext(), token)
	}
	if store == nil {
		return nil, nil
	}
	sess, err := store.Get(c)
	if err != nil {
		return nil, err
	}
	id, ok := sess.Get(SessionUserIDKey).(uint)
	if !ok || id == 0 {
		return nil, nil
	}
	user, err := auth.AuthenticateUserID(c.UserContext(), id)
	if err != nil {
		// Silinmiş ya da pasifleştirilmiş kullanıcının çerezi temizlenir
		_ = sess.Destroy()
		return nil, err
	}
	return user, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// CurrentSession isteğin oturumunu döndürür. Session ara katmanı çalışmadıysa kimliksizdir.
func CurrentSession(c *fiber.Ctx) *authsession.Session {
	if s, ok := c.Locals(localsSessionKey).(*authsession.Session); ok {
		return s
	}
	return authsession.FromContext(c.UserContext())
}
