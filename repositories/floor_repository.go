package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IFloorRepository interface {
	IBaseRepository[models.Floor]
	List(ctx context.Context, params queryparams.ListParams) ([]models.Floor, error)
	FindDetail(ctx context.Context, id uint) (*models.Floor, error)
}

type FloorRepository struct {
	*BaseRepository[models.Floor]
}

func NewFloorRepository(db *gorm.DB) IFloorRepository {
	return &FloorRepository{BaseRepository: NewBaseRepository[models.Floor](db)}
}

const floorSelect = `floors.*,
	(SELECT COUNT(*) FROM apartments WHERE apartments.floor_id = floors.id AND apartments.is_active = ?) AS apartment_count,
	(SELECT COUNT(*) FROM floor_areas WHERE floor_areas.floor_id = floors.id AND floor_areas.is_active = ?) AS floor_area_count`

// List aktif katları blok adı ve kat numarasına göre sıralar.
func (r *FloorRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.Floor, error) {
	var floors []models.Floor
	q := r.getDB(ctx).Model(&models.Floor{}).
		Select(floorSelect, true, true).
		Joins("JOIN blocks ON blocks.id = floors.block_id").
		Where("floors.is_active = ?", true).
		Preload("Block")
	if params.BlockID != 0 {
		q = q.Where("floors.block_id = ?", params.BlockID)
	}
	if params.SiteID != 0 {
		q = q.Where("blocks.site_id = ?", params.SiteID)
	}
	q = applySearch(q, params.Search, "floors.name")
	err := q.Order("blocks.name ASC").Order("floors.number ASC").Order("floors.id ASC").Find(&floors).Error
	return floors, err
}

func (r *FloorRepository) FindDetail(ctx context.Context, id uint) (*models.Floor, error) {
	var floor models.Floor
	err := r.getDB(ctx).
		Select(floorSelect, true, true).
		Preload("Block.Site").
		Preload("Apartments", activeOrdered("number ASC")).
		Preload("FloorAreas", activeOrdered("name ASC")).
		Where("floors.id = ?", id).
		First(&floor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

var _ IFloorRepository = (*FloorRepository)(nil)
