package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IApartmentRepository interface {
	IBaseRepository[models.Apartment]
	List(ctx context.Context, params queryparams.ListParams) ([]models.Apartment, error)
	FindDetail(ctx context.Context, id uint) (*models.Apartment, error)
}

type ApartmentRepository struct {
	*BaseRepository[models.Apartment]
}

func NewApartmentRepository(db *gorm.DB) IApartmentRepository {
	return &ApartmentRepository{BaseRepository: NewBaseRepository[models.Apartment](db)}
}

const apartmentSelect = `apartments.*,
	(SELECT COUNT(*) FROM issues WHERE issues.location_kind = 'apartment' AND issues.location_id = apartments.id) AS issue_count`

// List aktif daireleri daire numarasına göre sıralar.
func (r *ApartmentRepository) List(ctx context.Context, params queryparams.ListParams) ([]models.Apartment, error) {
	var apartments []models.Apartment
	q := r.getDB(ctx).Model(&models.Apartment{}).
		Select(apartmentSelect).
		Joins("JOIN floors ON floors.id = apartments.floor_id").
		Joins("JOIN blocks ON blocks.id = floors.block_id").
		Where("apartments.is_active = ?", true).
		Preload("Floor.Block")
	if params.FloorID != 0 {
		q = q.Where("apartments.floor_id = ?", params.FloorID)
	}
	if params.BlockID != 0 {
		q = q.Where("floors.block_id = ?", params.BlockID)
	}
	if params.SiteID != 0 {
		q = q.Where("blocks.site_id = ?", params.SiteID)
	}
	if params.Status != "" {
		q = q.Where("apartments.status = ?", params.Status)
	}
	q = applySearch(q, params.Search, "apartments.number", "apartments.owner_name", "apartments.tenant_name")
	err := q.Order("apartments.number ASC").Order("apartments.id ASC").Find(&apartments).Error
	return apartments, err
}

func (r *ApartmentRepository) FindDetail(ctx context.Context, id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.getDB(ctx).
		Select(apartmentSelect).
		Preload("Floor.Block.Site").
		Where("apartments.id = ?", id).
		First(&apartment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

var _ IApartmentRepository = (*ApartmentRepository)(nil)
