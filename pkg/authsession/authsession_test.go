package authsession

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"siteyonetim.app/models"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.Equal(t, StatusLoading, s.Status())
	_, ok := s.User()
	assert.False(t, ok)

	s.Authenticate(User{ID: 1, Name: "Yönetici", Role: models.RoleAdmin})
	assert.Equal(t, StatusAuthenticated, s.Status())
	u, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, uint(1), u.ID)
	assert.True(t, s.HasRole(models.RoleAdmin, models.RoleManager))
	assert.False(t, s.HasRole(models.RoleStaff))

	s.Reject()
	assert.Equal(t, StatusUnauthenticated, s.Status())
	assert.False(t, s.IsAuthenticated())
}

func TestFromContext_DefaultsToUnauthenticated(t *testing.T) {
	s := FromContext(context.Background())
	assert.Equal(t, StatusUnauthenticated, s.Status())

	own := New()
	ctx := WithSession(context.Background(), own)
	assert.Same(t, own, FromContext(ctx))
}
