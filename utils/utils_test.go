package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/models"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hashed)
	assert.True(t, CheckPassword(hashed, "admin123"))
	assert.False(t, CheckPassword(hashed, "yanlis"))
}

func TestToken_RoundTrip(t *testing.T) {
	user := &models.User{Email: "admin@site.com", Name: "Admin", Role: models.RoleAdmin}
	user.ID = 7

	token, exp, err := GenerateToken("gizli", time.Hour, user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseToken("gizli", token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@site.com", claims.Email)
}

func TestToken_Rejects(t *testing.T) {
	user := &models.User{Email: "a@b.c", Role: models.RoleUser}
	user.ID = 1

	token, _, err := GenerateToken("gizli", time.Hour, user)
	require.NoError(t, err)
	_, err = ParseToken("baska", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := GenerateToken("gizli", -time.Minute, user)
	require.NoError(t, err)
	_, err = ParseToken("gizli", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("gizli", "bozuk.jeton")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
