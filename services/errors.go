package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/pkg/validation"
	"siteyonetim.app/repositories"
)

// Servis hataları HTTP karşılıklarına göre dört türe ayrılır; diğer tüm hatalar iç hatadır.

// ValidationError eksik veya geçersiz girdi (400).
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// NotFoundError kayıt yok veya pasif (404).
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

// ForbiddenError rol yetkisi yetersiz (403).
type ForbiddenError string

func (e ForbiddenError) Error() string { return string(e) }

// UnauthorizedError oturum yok veya kimlik bilgileri hatalı (401).
type UnauthorizedError string

func (e UnauthorizedError) Error() string { return string(e) }

const (
	ErrInvalidInput       ValidationError   = "geçersiz girdi"
	ErrInvalidCredentials UnauthorizedError = "e-posta veya şifre hatalı"
	ErrForbidden          ForbiddenError    = "bu işlem için yetkiniz yok"
)

// validateInput struct etiketlerini doğrular, hatayı alan adını içeren ValidationError'a çevirir.
func validateInput(in interface{}) error {
	err := validation.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, verrs.Error())
	}
	return err
}

// validateField tek bir alanı etiketle doğrular.
func validateField(field string, value interface{}, tag string) error {
	err := validation.Var(field, value, tag)
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, verrs.Error())
	}
	return err
}

type activeLookup interface {
	IsActive(ctx context.Context, id uint) (bool, error)
}

// requireActiveParent üst kaydın var ve aktif olduğunu doğrular; değilse 400 döner.
func requireActiveParent(ctx context.Context, repo activeLookup, id uint, invalid ValidationError) error {
	active, err := repo.IsActive(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) || (err == nil && !active) {
		return fmt.Errorf("%w (id: %d)", invalid, id)
	}
	if err != nil {
		configslog.Log.Error("Üst kayıt kontrolü başarısız", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// notFoundOr ErrNotFound'u verilen servis hatasına çevirir, diğer hataları loglar.
func notFoundOr(err error, nf error, op string, id uint) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return nf
	}
	configslog.Log.Error(op+": veritabanı hatası", zap.Uint("id", id), zap.Error(err))
	return err
}
