package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IUserRepository interface {
	IBaseRepository[models.User]
	List(ctx context.Context, params queryparams.ListParams) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}

type UserRepository struct {
	*BaseRepository[models.User]
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{BaseRepository: NewBaseRepository[models.User](db)}
}

func (r *UserRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.User, error) {
	var users []models.User
	q := r.getDB(ctx).Model(&models.User{}).Where("users.is_active = ?", true)
	if params.Role != "" {
		q = q.Where("users.role = ?", params.Role)
	}
	q = applySearch(q, params.Search, "users.name", "users.email")
	err := q.Order("users.name ASC").Order("users.id ASC").Find(&users).Error
	return users, err
}

// FindByEmail e-postayı küçük harfe çevirerek arar (pasif kullanıcılar dahil).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.getDB(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.getDB(ctx).Model(&models.User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

var _ IUserRepository = (*UserRepository)(nil)
