package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IIssueRepository interface {
	IBaseRepository[models.Issue]
	List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.Issue, error)
	FindDetail(ctx context.Context, id uint) (*models.Issue, error)
	CountGrouped(ctx context.Context, column string) (map[string]int64, error)
	Recent(ctx context.Context, limit int) ([]models.Issue, error)
	DeleteWithChildren(ctx context.Context, id uint) error
}

type IssueRepository struct {
	*BaseRepository[models.Issue]
}

func NewIssueRepository(db *gorm.DB) IIssueRepository {
	return &IssueRepository{BaseRepository: NewBaseRepository[models.Issue](db)}
}

const issueSelect = `issues.*,
	(SELECT COUNT(*) FROM comments WHERE comments.issue_id = issues.id) AS comment_count`

func (r *IssueRepository) withRelations(q *gorm.DB) *gorm.DB {
	return q.Preload("Site").
		Preload("Block").
		Preload("Asset").
		Preload("CreatedBy").
		Preload("AssignedTo")
}

// List arızaları en yeniden eskiye döndürür. Tarih aralığı oluşturulma tarihine uygulanır.
func (r *IssueRepository) List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.Issue, error) {
	var issues []models.Issue
	q := r.withRelations(r.getDB(ctx).Model(&models.Issue{}).Select(issueSelect))
	if params.SiteID != 0 {
		q = q.Where("issues.site_id = ?", params.SiteID)
	}
	if params.BlockID != 0 {
		q = q.Where("issues.block_id = ?", params.BlockID)
	}
	if params.Status != "" {
		q = q.Where("issues.status = ?", params.Status)
	}
	if params.Priority != "" {
		q = q.Where("issues.priority = ?", params.Priority)
	}
	if params.Type != "" {
		q = q.Where("issues.type = ?", params.Type)
	}
	if params.AssignedToID != 0 {
		q = q.Where("issues.assigned_to_id = ?", params.AssignedToID)
	}
	q = applyDateRange(q, "issues.created_at", from, to)
	q = applySearch(q, params.Search, "issues.title", "issues.description")
	err := q.Order("issues.created_at DESC").Order("issues.id DESC").Find(&issues).Error
	return issues, err
}

// FindDetail arızayı medya ve yorumlarıyla birlikte getirir.
func (r *IssueRepository) FindDetail(ctx context.Context, id uint) (*models.Issue, error) {
	var issue models.Issue
	q := r.withRelations(r.getDB(ctx).Select(issueSelect)).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC").Order("id ASC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC").Order("id DESC") }).
		Preload("Comments.User")
	err := q.Where("issues.id = ?", id).First(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

var groupableIssueColumns = map[string]bool{"status": true, "priority": true, "type": true}

// CountGrouped arızaları verilen sütuna göre gruplayıp sayar.
func (r *IssueRepository) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	if !groupableIssueColumns[column] {
		return nil, fmt.Errorf("gruplanamayan sütun: %s", column)
	}
	var rows []struct {
		GroupKey   string
		GroupCount int64
	}
	err := r.getDB(ctx).Model(&models.Issue{}).
		Select(column + " AS group_key, COUNT(*) AS group_count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.GroupKey] = row.GroupCount
	}
	return out, nil
}

func (r *IssueRepository) Recent(ctx context.Context, limit int) ([]models.Issue, error) {
	var issues []models.Issue
	err := r.withRelations(r.getDB(ctx).Model(&models.Issue{}).Select(issueSelect)).
		Order("issues.created_at DESC").Order("issues.id DESC").
		Limit(limit).
		Find(&issues).Error
	return issues, err
}

// DeleteWithChildren arızayı yorum ve medya kayıtlarıyla birlikte tek işlemde siler.
func (r *IssueRepository) DeleteWithChildren(ctx context.Context, id uint) error {
	return RunInTx(ctx, r.db, func(ctx context.Context) error {
		db := r.getDB(ctx)
		if err := db.Where("issue_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := db.Where("issue_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return r.HardDelete(ctx, id)
	})
}

var _ IIssueRepository = (*IssueRepository)(nil)
