package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
)

type ICommentRepository interface {
	IBaseRepository[models.Comment]
	FindWithUser(ctx context.Context, id uint) (*models.Comment, error)
	ListByIssue(ctx context.Context, issueID uint) ([]models.Comment, error)
}

type CommentRepository struct {
	*BaseRepository[models.Comment]
}

func NewCommentRepository(db *gorm.DB) ICommentRepository {
	return &CommentRepository{BaseRepository: NewBaseRepository[models.Comment](db)}
}

func (r *CommentRepository) FindWithUser(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.getDB(ctx).Preload("User").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByIssue(ctx context.Context, issueID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.getDB(ctx).Preload("User").
		Where("issue_id = ?", issueID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	return comments, err
}

var _ ICommentRepository = (*CommentRepository)(nil)
