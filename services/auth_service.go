package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/authsession"
	"siteyonetim.app/repositories"
	"siteyonetim.app/utils"
)

const (
	ErrSessionInvalid UnauthorizedError = "oturum geçersiz veya süresi dolmuş"
	ErrUserInactive   UnauthorizedError = "kullanıcı hesabı pasif"
)

// LoginInput giriş formu ve API gövdesi.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// IssuedToken oturum jetonu ve bitiş zamanı.
type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type IAuthService interface {
	Login(ctx context.Context, in LoginInput) (*models.User, error)
	IssueToken(user *models.User) (*IssuedToken, error)
	AuthenticateToken(ctx context.Context, token string) (*authsession.User, error)
	AuthenticateUserID(ctx context.Context, id uint) (*authsession.User, error)
}

type AuthService struct {
	users    repositories.IUserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(users repositories.IUserRepository, secret string, tokenTTL time.Duration) IAuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Login e-posta ve şifreyi doğrular. Hatalı bilgi ile pasif hesap aynı hatayı döner.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateInput(in); err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Giriş sırasında kullanıcı sorgulanamadı", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if !user.IsActive || !utils.CheckPassword(user.Password, in.Password) {
		configslog.Log.Warn("Başarısız giriş denemesi", zap.String("email", in.Email))
		return nil, ErrInvalidCredentials
	}
	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s", user.Email)
	return user, nil
}

func (s *AuthService) IssueToken(user *models.User) (*IssuedToken, error) {
	token, exp, err := utils.GenerateToken(s.secret, s.tokenTTL, user)
	if err != nil {
		configslog.Log.Error("Oturum jetonu üretilemedi", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &IssuedToken{Token: token, ExpiresAt: exp}, nil
}

// AuthenticateToken jetonu doğrular ve kullanıcının hâlâ aktif olduğunu kontrol eder.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (*authsession.User, error) {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, ErrSessionInvalid
	}
	return s.AuthenticateUserID(ctx, id)
}

// AuthenticateUserID çerez oturumundaki kullanıcı kimliğini doğrular.
func (s *AuthService) AuthenticateUserID(ctx context.Context, id uint) (*authsession.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return &authsession.User{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

var _ IAuthService = (*AuthService)(nil)
