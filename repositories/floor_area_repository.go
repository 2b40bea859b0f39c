package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IFloorAreaRepository interface {
	IBaseRepository[models.FloorArea]
	List(ctx context.Context, params queryparams.ListParams) ([]models.FloorArea, error)
	FindDetail(ctx context.Context, id uint) (*models.FloorArea, error)
}

type FloorAreaRepository struct {
	*BaseRepository[models.FloorArea]
}

func NewFloorAreaRepository(db *gorm.DB) IFloorAreaRepository {
	return &FloorAreaRepository{BaseRepository: NewBaseRepository[models.FloorArea](db)}
}

func (r *FloorAreaRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.FloorArea, error) {
	var areas []models.FloorArea
	q := r.getDB(ctx).Model(&models.FloorArea{}).
		Where("floor_areas.is_active = ?", true).
		Preload("Floor.Block")
	if params.FloorID != 0 {
		q = q.Where("floor_areas.floor_id = ?", params.FloorID)
	}
	if params.Type != "" {
		q = q.Where("floor_areas.type = ?", params.Type)
	}
	q = applySearch(q, params.Search, "floor_areas.name")
	err := q.Order("floor_areas.name ASC").Order("floor_areas.id ASC").Find(&areas).Error
	return areas, err
}

func (r *FloorAreaRepository) FindDetail(ctx context.Context, id uint) (*models.FloorArea, error) {
	var area models.FloorArea
	err := r.getDB(ctx).Preload("Floor.Block.Site").First(&area, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &area, nil
}

var _ IFloorAreaRepository = (*FloorAreaRepository)(nil)
