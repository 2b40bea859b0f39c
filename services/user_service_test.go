package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/utils"
)

func TestUserService_CreateNormalizesAndHashes(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.svc.Users.Create(env.ctx, UserInput{Name: " Ayşe Yılmaz ", Email: " Ayse@Example.COM ", Password: "gizli123"})
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.Equal(t, "Ayşe Yılmaz", user.Name)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "gizli123", user.Password)
	assert.True(t, utils.CheckPassword(user.Password, "gizli123"))

	_, err = env.svc.Users.Create(env.ctx, UserInput{Email: "ayse@example.com", Password: "gizli123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.svc.Users.Create(env.ctx, UserInput{Email: "kisa@example.com", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.svc.Users.Create(env.ctx, UserInput{Email: "mehmet@example.com", Password: "gizli123", Role: "STAFF"})
	require.NoError(t, err)

	updated, err := env.svc.Users.Update(env.ctx, user.ID, UserUpdateInput{Role: optional.Of("MANAGER")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, updated.Role)
	assert.Equal(t, "mehmet@example.com", updated.Email)

	_, err = env.svc.Users.Update(env.ctx, user.ID, UserUpdateInput{Email: optional.Of(env.admin.Email)})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = env.svc.Users.Update(env.ctx, user.ID, UserUpdateInput{Role: optional.Of("OWNER")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, env.svc.Users.Delete(env.ctx, env.admin.ID, env.admin.ID), ErrSelfDeactivate)
	require.NoError(t, env.svc.Users.Delete(env.ctx, env.admin.ID, user.ID))
	_, err = env.svc.Users.Get(env.ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ResetPassword(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.svc.Users.ResetPassword(env.ctx, env.admin.Email, "yeni-sifre"))
	_, err := env.svc.Auth.Login(env.ctx, LoginInput{Email: env.admin.Email, Password: "yeni-sifre"})
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.Users.ResetPassword(env.ctx, env.admin.Email, "kisa"), ErrInvalidInput)
	assert.ErrorIs(t, env.svc.Users.ResetPassword(env.ctx, "yok@example.com", "yeni-sifre"), ErrUserNotFound)
}
