package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const ErrMaintenanceNotFound NotFoundError = "bakım kaydı bulunamadı"

const (
	maintenanceTypes    = "PERIODIC REPAIR INSTALLATION INSPECTION"
	maintenanceStatuses = "SCHEDULED IN_PROGRESS COMPLETED CANCELLED"
)

type MaintenanceInput struct {
	SiteID       uint     `json:"siteId" validate:"required"`
	CommonAreaID *uint    `json:"commonAreaId"`
	Title        string   `json:"title" validate:"required,max=255"`
	Type         string   `json:"type" validate:"omitempty,oneof=PERIODIC REPAIR INSTALLATION INSPECTION"`
	Status       string   `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Date         string   `json:"date" validate:"required"`
	Technician   string   `json:"technician" validate:"max=150"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Description  string   `json:"description"`
}

type MaintenanceUpdateInput struct {
	SiteID       optional.Field[uint]    `json:"siteId"`
	CommonAreaID optional.Field[uint]    `json:"commonAreaId"`
	Title        optional.Field[string]  `json:"title"`
	Type         optional.Field[string]  `json:"type"`
	Status       optional.Field[string]  `json:"status"`
	Date         optional.Field[string]  `json:"date"`
	Technician   optional.Field[string]  `json:"technician"`
	Cost         optional.Field[float64] `json:"cost"`
	Description  optional.Field[string]  `json:"description"`
	IsActive     optional.Field[bool]    `json:"isActive"`
}

type IMaintenanceService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.MaintenanceRecord, error)
	Get(ctx context.Context, id uint) (*models.MaintenanceRecord, error)
	Create(ctx context.Context, in MaintenanceInput) (*models.MaintenanceRecord, error)
	Update(ctx context.Context, id uint, in MaintenanceUpdateInput) (*models.MaintenanceRecord, error)
	Delete(ctx context.Context, id uint) error
}

type MaintenanceService struct {
	repo           repositories.IMaintenanceRepository
	siteRepo       repositories.ISiteRepository
	commonAreaRepo repositories.ICommonAreaRepository
}

func NewMaintenanceService(repo repositories.IMaintenanceRepository, siteRepo repositories.ISiteRepository, commonAreaRepo repositories.ICommonAreaRepository) IMaintenanceService {
	return &MaintenanceService{repo: repo, siteRepo: siteRepo, commonAreaRepo: commonAreaRepo}
}

func (s *MaintenanceService) List(ctx context.Context, params queryparams.ListParams) ([]models.MaintenanceRecord, error) {
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, params, from, to)
}

func (s *MaintenanceService) Get(ctx context.Context, id uint) (*models.MaintenanceRecord, error) {
	record, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrMaintenanceNotFound, "MaintenanceService.Get", id)
	}
	if !record.IsActive {
		return nil, ErrMaintenanceNotFound
	}
	return record, nil
}

func (s *MaintenanceService) Create(ctx context.Context, in MaintenanceInput) (*models.MaintenanceRecord, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.siteRepo, in.SiteID, ErrSiteInvalid); err != nil {
		return nil, err
	}
	if in.CommonAreaID != nil && *in.CommonAreaID != 0 {
		if err := requireCommonAreaInSite(ctx, s.commonAreaRepo, *in.CommonAreaID, in.SiteID); err != nil {
			return nil, err
		}
	} else {
		in.CommonAreaID = nil
	}
	date, err := parseDateInput("date", in.Date)
	if err != nil {
		return nil, err
	}

	record := &models.MaintenanceRecord{
		SiteID:       in.SiteID,
		CommonAreaID: in.CommonAreaID,
		Title:        in.Title,
		Type:         orDefault(models.MaintenanceType(in.Type), models.MaintenanceTypePeriodic),
		Status:       orDefault(models.MaintenanceStatus(in.Status), models.MaintenanceStatusScheduled),
		Date:         *date,
		Technician:   strings.TrimSpace(in.Technician),
		Cost:         in.Cost,
		Description:  in.Description,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		configslog.Log.Error("Bakım kaydı oluşturulamadı", zap.Uint("site_id", in.SiteID), zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id uint, in MaintenanceUpdateInput) (*models.MaintenanceRecord, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrMaintenanceNotFound, "MaintenanceService.Update", id)
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
	case in.CommonAreaID.Present() && in.CommonAreaID.Value != 0:
		if err := requireCommonAreaInSite(ctx, s.commonAreaRepo, in.CommonAreaID.Value, siteID); err != nil {
			return nil, err
		}
		changes["common_area_id"] = in.CommonAreaID.Value
	case in.CommonAreaID.Set:
		changes["common_area_id"] = nil
	case siteID != current.SiteID && current.CommonAreaID != nil:
		changes["common_area_id"] = nil
	}
	if err := changes.requiredText("title", "title", in.Title); err != nil {
		return nil, err
	}
	if err := changes.enum("type", "type", in.Type, maintenanceTypes); err != nil {
		return nil, err
	}
	if err := changes.enum("status", "status", in.Status, maintenanceStatuses); err != nil {
		return nil, err
	}
	if err := changes.date("date", "date", in.Date, false); err != nil {
		return nil, err
	}
	changes.text("technician", in.Technician)
	nullable(changes, "cost", in.Cost)
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrMaintenanceNotFound, "MaintenanceService.Update", id)
	}
	record, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrMaintenanceNotFound, "MaintenanceService.Update", id)
	}
	return record, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrMaintenanceNotFound, "MaintenanceService.Delete", id)
	}
	return nil
}

var _ IMaintenanceService = (*MaintenanceService)(nil)
