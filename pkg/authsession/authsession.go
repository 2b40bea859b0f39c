// Package authsession istek boyunca taşınan oturum durumunu tutar.
package authsession

import (
	"context"

	"siteyonetim.app/models"
)

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
)

// User oturumdaki kullanıcının özetidir.
type User struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// Session tek bir isteğin kimlik durumudur. Başlangıçta loading durumundadır;
// çözümleme sonunda Authenticate veya Reject ile kesinleşir.
type Session struct {
	status Status
	user   *User
}

func New() *Session {
	return &Session{status: StatusLoading}
}

// Authenticate oturumu verilen kullanıcıyla doğrulanmış yapar.
func (s *Session) Authenticate(u User) {
	s.status = StatusAuthenticated
	s.user = &u
}

// Reject oturumu kimliksiz yapar.
func (s *Session) Reject() {
	s.status = StatusUnauthenticated
	s.user = nil
}

func (s *Session) Status() Status {
	if s == nil {
		return StatusUnauthenticated
	}
	return s.status
}

// User doğrulanmış kullanıcıyı döndürür.
func (s *Session) User() (*User, bool) {
	if s == nil || s.status != StatusAuthenticated || s.user == nil {
		return nil, false
	}
	return s.user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// HasRole kullanıcı doğrulanmışsa ve rollerden birine sahipse true döner.
func (s *Session) HasRole(roles ...models.Role) bool {
	u, ok := s.User()
	if !ok {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

type contextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext bağlamdaki oturumu döndürür; yoksa kimliksiz bir oturum verir.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{status: StatusUnauthenticated}
}
