package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IInventoryRepository interface {
	IBaseRepository[models.InventoryItem]
	List(ctx context.Context, params queryparams.ListParams) ([]models.InventoryItem, error)
	FindDetail(ctx context.Context, id uint) (*models.InventoryItem, error)
}

type InventoryRepository struct {
	*BaseRepository[models.InventoryItem]
}

func NewInventoryRepository(db *gorm.DB) IInventoryRepository {
	return &InventoryRepository{BaseRepository: NewBaseRepository[models.InventoryItem](db)}
}

func (r *InventoryRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	q := r.getDB(ctx).Model(&models.InventoryItem{}).
		Where("inventory_items.is_active = ?", true).
		Preload("Site").
		Preload("CommonArea")
	if params.SiteID != 0 {
		q = q.Where("inventory_items.site_id = ?", params.SiteID)
	}
	if params.CommonAreaID != 0 {
		q = q.Where("inventory_items.common_area_id = ?", params.CommonAreaID)
	}
	if params.Category != "" {
		q = q.Where("inventory_items.category = ?", params.Category)
	}
	if params.Status != "" {
		q = q.Where("inventory_items.status = ?", params.Status)
	}
	q = applySearch(q, params.Search, "inventory_items.name", "inventory_items.serial_number")
	err := q.Order("inventory_items.name ASC").Order("inventory_items.id ASC").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindDetail(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.getDB(ctx).Preload("Site").Preload("CommonArea").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

var _ IInventoryRepository = (*InventoryRepository)(nil)
