package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const ErrMeterReadingNotFound NotFoundError = "sayaç okuması bulunamadı"

const meterTypes = "ELECTRIC WATER GAS"

type MeterReadingInput struct {
	SiteID          uint     `json:"siteId" validate:"required"`
	ApartmentID     *uint    `json:"apartmentId"`
	Type            string   `json:"type" validate:"required,oneof=ELECTRIC WATER GAS"`
	MeterNumber     string   `json:"meterNumber" validate:"required,max=50"`
	Location        string   `json:"location" validate:"max=200"`
	PreviousReading *float64 `json:"previousReading" validate:"omitempty,gte=0"`
	CurrentReading  *float64 `json:"currentReading" validate:"required,gte=0"`
	ReadingDate     string   `json:"readingDate"`
}

type MeterReadingUpdateInput struct {
	SiteID          optional.Field[uint]    `json:"siteId"`
	ApartmentID     optional.Field[uint]    `json:"apartmentId"`
	Type            optional.Field[string]  `json:"type"`
	MeterNumber     optional.Field[string]  `json:"meterNumber"`
	Location        optional.Field[string]  `json:"location"`
	PreviousReading optional.Field[float64] `json:"previousReading"`
	CurrentReading  optional.Field[float64] `json:"currentReading"`
	ReadingDate     optional.Field[string]  `json:"readingDate"`
}

type IMeterReadingService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.MeterReading, error)
	Get(ctx context.Context, id uint) (*models.MeterReading, error)
	Create(ctx context.Context, in MeterReadingInput) (*models.MeterReading, error)
	Update(ctx context.Context, id uint, in MeterReadingUpdateInput) (*models.MeterReading, error)
	Delete(ctx context.Context, id uint) error
}

type MeterReadingService struct {
	repo          repositories.IMeterReadingRepository
	siteRepo      repositories.ISiteRepository
	apartmentRepo repositories.IApartmentRepository
	now           func() time.Time
}

func NewMeterReadingService(repo repositories.IMeterReadingRepository, siteRepo repositories.ISiteRepository, apartmentRepo repositories.IApartmentRepository) IMeterReadingService {
	return &MeterReadingService{repo: repo, siteRepo: siteRepo, apartmentRepo: apartmentRepo, now: time.Now}
}

func (s *MeterReadingService) List(ctx context.Context, params queryparams.ListParams) ([]models.MeterReading, error) {
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, params, from, to)
}

func (s *MeterReadingService) Get(ctx context.Context, id uint) (*models.MeterReading, error) {
	reading, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrMeterReadingNotFound, "MeterReadingService.Get", id)
	}
	return reading, nil
}

// Create okumayı kaydeder. Önceki okuma verilmezse aynı sayacın son okuması kullanılır.
func (s *MeterReadingService) Create(ctx context.Context, in MeterReadingInput) (*models.MeterReading, error) {
	in.MeterNumber = strings.TrimSpace(in.MeterNumber)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.siteRepo, in.SiteID, ErrSiteInvalid); err != nil {
		return nil, err
	}
	if in.ApartmentID != nil && *in.ApartmentID != 0 {
		if err := s.requireApartmentInSite(ctx, *in.ApartmentID, in.SiteID); err != nil {
			return nil, err
		}
	} else {
		in.ApartmentID = nil
	}

	readingDate := s.now()
	if strings.TrimSpace(in.ReadingDate) != "" {
		d, err := parseDateInput("readingDate", in.ReadingDate)
		if err != nil {
			return nil, err
		}
		readingDate = *d
	}

	previous := 0.0
	if in.PreviousReading != nil {
		previous = *in.PreviousReading
	} else {
		last, err := s.repo.LatestBefore(ctx, in.MeterNumber, readingDate, 0)
		switch {
		case err == nil:
			previous = last.CurrentReading
		case !errors.Is(err, repositories.ErrNotFound):
			configslog.Log.Error("Önceki sayaç okuması alınamadı", zap.String("meter_number", in.MeterNumber), zap.Error(err))
			return nil, err
		}
	}

	reading := &models.MeterReading{
		SiteID:          in.SiteID,
		ApartmentID:     in.ApartmentID,
		Type:            models.MeterType(in.Type),
		MeterNumber:     in.MeterNumber,
		Location:        strings.TrimSpace(in.Location),
		PreviousReading: previous,
		CurrentReading:  *in.CurrentReading,
		ReadingDate:     readingDate,
	}
	if err := s.repo.Create(ctx, reading); err != nil {
		configslog.Log.Error("Sayaç okuması oluşturulamadı", zap.String("meter_number", in.MeterNumber), zap.Error(err))
		return nil, err
	}
	return reading, nil
}

func (s *MeterReadingService) Update(ctx context.Context, id uint, in MeterReadingUpdateInput) (*models.MeterReading, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrMeterReadingNotFound, "MeterReadingService.Update", id)
	}

	changes := changeSet{}
	siteID := current.SiteID
	if in.SiteID.Set {
		if in.SiteID.Null {
			return nil, ErrSiteInvalid
		}
		if err := requireActiveParent(ctx, s.siteRepo, in.SiteID.Value, ErrSiteInvalid); err != nil {
			return nil, err
		}
		siteID = in.SiteID.Value
		changes["site_id"] = siteID
	}
	switch {
	case in.ApartmentID.Present() && in.ApartmentID.Value != 0:
		if err := s.requireApartmentInSite(ctx, in.ApartmentID.Value, siteID); err != nil {
			return nil, err
		}
		changes["apartment_id"] = in.ApartmentID.Value
	case in.ApartmentID.Set:
		changes["apartment_id"] = nil
	case siteID != current.SiteID && current.ApartmentID != nil:
		if err := s.requireApartmentInSite(ctx, *current.ApartmentID, siteID); err != nil {
			changes["apartment_id"] = nil
		}
	}
	if err := changes.enum("type", "type", in.Type, meterTypes); err != nil {
		return nil, err
	}
	if err := changes.requiredText("meter_number", "meterNumber", in.MeterNumber); err != nil {
		return nil, err
	}
	changes.text("location", in.Location)
	if err := changes.date("reading_date", "readingDate", in.ReadingDate, false); err != nil {
		return nil, err
	}

	// Map güncellemesinde model kancaları çalışmaz; tüketim burada yeniden hesaplanır
	previous, currentValue := current.PreviousReading, current.CurrentReading
	if err := value(changes, "previous_reading", "previousReading", in.PreviousReading); err != nil {
		return nil, err
	}
	if err := value(changes, "current_reading", "currentReading", in.CurrentReading); err != nil {
		return nil, err
	}
	if in.PreviousReading.Present() {
		previous = in.PreviousReading.Value
	}
	if in.CurrentReading.Present() {
		currentValue = in.CurrentReading.Value
	}
	if previous < 0 || currentValue < 0 {
		return nil, fmt.Errorf("%w: sayaç değeri negatif olamaz", ErrInvalidInput)
	}
	if in.PreviousReading.Set || in.CurrentReading.Set {
		changes["consumption"] = currentValue - previous
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrMeterReadingNotFound, "MeterReadingService.Update", id)
	}
	return s.Get(ctx, id)
}

func (s *MeterReadingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return notFoundOr(err, ErrMeterReadingNotFound, "MeterReadingService.Delete", id)
	}
	return nil
}

// requireApartmentInSite dairenin aktif olduğunu ve verilen sitedeki bir bloğa ait olduğunu doğrular.
func (s *MeterReadingService) requireApartmentInSite(ctx context.Context, apartmentID, siteID uint) error {
	apartment, err := s.apartmentRepo.FindDetail(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrApartmentInvalid
		}
		return err
	}
	if !apartment.IsActive || apartment.Floor == nil || apartment.Floor.Block == nil || apartment.Floor.Block.SiteID != siteID {
		return fmt.Errorf("%w (site: %d)", ErrApartmentInvalid, siteID)
	}
	return nil
}

var _ IMeterReadingService = (*MeterReadingService)(nil)
