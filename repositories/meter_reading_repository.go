package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
)

type IMeterReadingRepository interface {
	IBaseRepository[models.MeterReading]
	List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.MeterReading, error)
	FindDetail(ctx context.Context, id uint) (*models.MeterReading, error)
	LatestBefore(ctx context.Context, meterNumber string, before time.Time, excludeID uint) (*models.MeterReading, error)
}

type MeterReadingRepository struct {
	*BaseRepository[models.MeterReading]
}

func NewMeterReadingRepository(db *gorm.DB) IMeterReadingRepository {
	return &MeterReadingRepository{BaseRepository: NewBaseRepository[models.MeterReading](db)}
}

func (r *MeterReadingRepository) List(ctx context.Context, params queryparams.ListParams, from, to *time.Time) ([]models.MeterReading, error) {
	var readings []models.MeterReading
	q := r.getDB(ctx).Model(&models.MeterReading{}).Preload("Site").Preload("Apartment")
	if params.SiteID != 0 {
		q = q.Where("meter_readings.site_id = ?", params.SiteID)
	}
	if params.Type != "" {
		q = q.Where("meter_readings.type = ?", params.Type)
	}
	if params.MeterNumber != "" {
		q = q.Where("meter_readings.meter_number = ?", params.MeterNumber)
	}
	q = applyDateRange(q, "meter_readings.reading_date", from, to)
	q = applySearch(q, params.Search, "meter_readings.meter_number", "meter_readings.location")
	err := q.Order("meter_readings.reading_date DESC").Order("meter_readings.id DESC").Find(&readings).Error
	return readings, err
}

func (r *MeterReadingRepository) FindDetail(ctx context.Context, id uint) (*models.MeterReading, error) {
	var reading models.MeterReading
	err := r.getDB(ctx).Preload("Site").Preload("Apartment").First(&reading, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// LatestBefore aynı sayacın verilen tarihten önceki (veya aynı andaki) son okumasını bulur.
func (r *MeterReadingRepository) LatestBefore(ctx context.Context, meterNumber string, before time.Time, excludeID uint) (*models.MeterReading, error) {
	var reading models.MeterReading
	q := r.getDB(ctx).Where("meter_number = ? AND reading_date <= ?", meterNumber, before)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Order("reading_date DESC").Order("id DESC").First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

var _ IMeterReadingRepository = (*MeterReadingRepository)(nil)
