package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"siteyonetim.app/models"
)

// TokenIssuer imzalanan tüm oturum jetonlarının yayıncısıdır.
const TokenIssuer = "siteyonetim"

// DefaultTokenTTL süre verilmeden üretilen jetonların geçerlilik süresidir.
const DefaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("geçersiz oturum jetonu")

// TokenClaims oturum jetonunun taşıdığı alanlardır. Subject kullanıcı kimliğidir.
type TokenClaims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID Subject alanını kullanıcı kimliğine çevirir.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// GenerateToken kullanıcı için HS256 imzalı jeton üretir. ttl sıfırsa DefaultTokenTTL kullanılır.
func GenerateToken(secret string, ttl time.Duration, user *models.User) (string, time.Time, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := TokenClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jeton imzalanamadı: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken jetonun imzasını, yayıncısını ve süresini doğrular.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
