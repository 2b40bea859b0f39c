package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type ICommonAreaRepository interface {
	IBaseRepository[models.CommonArea]
	List(ctx context.Context, params queryparams.ListParams) ([]models.CommonArea, error)
	FindDetail(ctx context.Context, id uint) (*models.CommonArea, error)
}

type CommonAreaRepository struct {
	*BaseRepository[models.CommonArea]
}

func NewCommonAreaRepository(db *gorm.DB) ICommonAreaRepository {
	return &CommonAreaRepository{BaseRepository: NewBaseRepository[models.CommonArea](db)}
}

const commonAreaSelect = `common_areas.*,
	(SELECT COUNT(*) FROM inventory_items WHERE inventory_items.common_area_id = common_areas.id AND inventory_items.is_active = ?) AS item_count,
	(SELECT COUNT(*) FROM issues WHERE issues.location_kind = 'commonArea' AND issues.location_id = common_areas.id) AS issue_count`

func (r *CommonAreaRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.CommonArea, error) {
	var areas []models.CommonArea
	q := r.getDB(ctx).Model(&models.CommonArea{}).
		Select(commonAreaSelect, true).
		Where("common_areas.is_active = ?", true).
		Preload("Site")
	if params.SiteID != 0 {
		q = q.Where("common_areas.site_id = ?", params.SiteID)
	}
	if params.Type != "" {
		q = q.Where("common_areas.type = ?", params.Type)
	}
	q = applySearch(q, params.Search, "common_areas.name", "common_areas.description")
	err := q.Order("common_areas.name ASC").Order("common_areas.id ASC").Find(&areas).Error
	return areas, err
}

func (r *CommonAreaRepository) FindDetail(ctx context.Context, id uint) (*models.CommonArea, error) {
	var area models.CommonArea
	err := r.getDB(ctx).
		Select(commonAreaSelect, true).
		Preload("Site").
		Preload("Items", activeOrdered("name ASC")).
		Where("common_areas.id = ?", id).
		First(&area).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &area, nil
}

var _ ICommonAreaRepository = (*CommonAreaRepository)(nil)
