package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
	"siteyonetim.app/utils"
)

const (
	ErrUserNotFound   NotFoundError   = "kullanıcı bulunamadı"
	ErrUserInvalid    ValidationError = "kullanıcı bulunamadı veya pasif"
	ErrEmailTaken     ValidationError = "bu e-posta adresi zaten kullanımda"
	ErrSelfDeactivate ValidationError = "kendi hesabınızı pasife alamazsınız"
)

const (
	roles             = "ADMIN MANAGER STAFF USER"
	minPasswordLength = 6
)

type UserInput struct {
	Name     string `json:"name" validate:"max=150"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER STAFF USER"`
	Image    string `json:"image" validate:"max=500"`
}

type UserUpdateInput struct {
	Name     optional.Field[string] `json:"name"`
	Email    optional.Field[string] `json:"email"`
	Password optional.Field[string] `json:"password"`
	Role     optional.Field[string] `json:"role"`
	Image    optional.Field[string] `json:"image"`
	IsActive optional.Field[bool]   `json:"isActive"`
}

type IUserService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, in UserInput) (*models.User, error)
	Update(ctx context.Context, id uint, in UserUpdateInput) (*models.User, error)
	Delete(ctx context.Context, actorID, id uint) error
	ResetPassword(ctx context.Context, email, password string) error
}

type UserService struct {
	repo repositories.IUserRepository
}

func NewUserService(repo repositories.IUserRepository) IUserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context, params queryparams.ListParams) ([]models.User, error) {
	return s.repo.List(ctx, params)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "UserService.Get", id)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	taken, err := s.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		configslog.Log.Error("Şifre hashlenemedi", zap.Error(err))
		return nil, err
	}
	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Role:     orDefault(models.Role(in.Role), models.RoleUser),
		Image:    strings.TrimSpace(in.Image),
		IsActive: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Kullanıcı oluşturuldu: %s (%s)", user.Email, user.Role)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserUpdateInput) (*models.User, error) {
	changes := changeSet{}
	changes.text("name", in.Name)
	if in.Email.Set {
		email := strings.ToLower(strings.TrimSpace(in.Email.Value))
		if err := validateField("email", email, "required,email,max=150"); err != nil {
			return nil, err
		}
		taken, err := s.repo.EmailTaken(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		changes["email"] = email
	}
	if in.Password.Set {
		if len(in.Password.Value) < minPasswordLength {
			return nil, fmt.Errorf("%w: password en az %d karakter olmalıdır", ErrInvalidInput, minPasswordLength)
		}
		hashed, err := utils.HashPassword(in.Password.Value)
		if err != nil {
			return nil, err
		}
		changes["password"] = hashed
	}
	if err := changes.enum("role", "role", in.Role, roles); err != nil {
		return nil, err
	}
	changes.text("image", in.Image)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "UserService.Update", id)
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "UserService.Update", id)
	}
	return user, nil
}

// Delete kullanıcıyı pasife çeker. Oturumdaki kullanıcı kendini silemez.
func (s *UserService) Delete(ctx context.Context, actorID, id uint) error {
	if actorID != 0 && actorID == id {
		return ErrSelfDeactivate
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrUserNotFound, "UserService.Delete", id)
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return notFoundOr(err, ErrUserNotFound, "UserService.ResetPassword", 0)
	}
	_, err = s.Update(ctx, user.ID, UserUpdateInput{Password: optional.Of(password)})
	return err
}

// requireActiveUser atanacak kullanıcının var ve aktif olduğunu doğrular.
func requireActiveUser(ctx context.Context, repo repositories.IUserRepository, id uint) error {
	return requireActiveParent(ctx, repo, id, ErrUserInvalid)
}

var _ IUserService = (*UserService)(nil)
