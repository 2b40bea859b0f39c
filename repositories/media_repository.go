package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
)

type IMediaRepository interface {
	IBaseRepository[models.Media]
	FindByIdempotencyKey(ctx context.Context, issueID uint, key string) (*models.Media, error)
	ListByIssue(ctx context.Context, issueID uint) ([]models.Media, error)
}

type MediaRepository struct {
	*BaseRepository[models.Media]
}

func NewMediaRepository(db *gorm.DB) IMediaRepository {
	return &MediaRepository{BaseRepository: NewBaseRepository[models.Media](db)}
}

func (r *MediaRepository) FindByIdempotencyKey(ctx context.Context, issueID uint, key string) (*models.Media, error) {
	var media models.Media
	err := r.getDB(ctx).Where("issue_id = ? AND idempotency_key = ?", issueID, key).First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *MediaRepository) ListByIssue(ctx context.Context, issueID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.getDB(ctx).Where("issue_id = ?", issueID).Order("created_at ASC").Order("id ASC").Find(&media).Error
	return media, err
}

var _ IMediaRepository = (*MediaRepository)(nil)
