package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IMaintenanceRepository interface {
	IBaseRepository[models.MaintenanceRecord]
	List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.MaintenanceRecord, error)
	FindDetail(ctx context.Context, id uint) (*models.MaintenanceRecord, error)
}

type MaintenanceRepository struct {
	*BaseRepository[models.MaintenanceRecord]
}

func NewMaintenanceRepository(db *gorm.DB) IMaintenanceRepository {
	return &MaintenanceRepository{BaseRepository: NewBaseRepository[models.MaintenanceRecord](db)}
}

func (r *MaintenanceRepository) List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	q := r.getDB(ctx).Model(&models.MaintenanceRecord{}).
		Where("maintenance_records.is_active = ?", true).
		Preload("Site").
		Preload("CommonArea")
	if params.SiteID != 0 {
		q = q.Where("maintenance_records.site_id = ?", params.SiteID)
	}
	if params.CommonAreaID != 0 {
		q = q.Where("maintenance_records.common_area_id = ?", params.CommonAreaID)
	}
	if params.Status != "" {
		q = q.Where("maintenance_records.status = ?", params.Status)
	}
	if params.Type != "" {
		q = q.Where("maintenance_records.type = ?", params.Type)
	}
	q = applyDateRange(q, "maintenance_records.date", from, to)
	q = applySearch(q, params.Search, "maintenance_records.title", "maintenance_records.technician")
	err := q.Order("maintenance_records.date DESC").Order("maintenance_records.id DESC").Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) FindDetail(ctx context.Context, id uint) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	err := r.getDB(ctx).Preload("Site").Preload("CommonArea").First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

var _ IMaintenanceRepository = (*MaintenanceRepository)(nil)
