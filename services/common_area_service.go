package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const (
	ErrCommonAreaNotFound NotFoundError   = "ortak alan bulunamadı"
	ErrCommonAreaInvalid  ValidationError = "ortak alan bulunamadı, pasif veya başka bir siteye ait"
)

const commonAreaTypes = "PLAYGROUND POOL GYM PARKING GARDEN PARK SPA SAUNA FITNESS HAMMAM GENERATOR TRANSFORMER PARKING_INDOOR MEETING_ROOM SECURITY MANAGEMENT_OFFICE WAREHOUSE OTHER"

type CommonAreaInput struct {
	SiteID      uint     `json:"siteId" validate:"required"`
	Name        string   `json:"name" validate:"required,max=150"`
	Type        string   `json:"type" validate:"omitempty,oneof=PLAYGROUND POOL GYM PARKING GARDEN PARK SPA SAUNA FITNESS HAMMAM GENERATOR TRANSFORMER PARKING_INDOOR MEETING_ROOM SECURITY MANAGEMENT_OFFICE WAREHOUSE OTHER"`
	Description string   `json:"description"`
	Area        *float64 `json:"area" validate:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" validate:"omitempty,min=0"`
}

type CommonAreaUpdateInput struct {
	SiteID      optional.Field[uint]    `json:"siteId"`
	Name        optional.Field[string]  `json:"name"`
	Type        optional.Field[string]  `json:"type"`
	Description optional.Field[string]  `json:"description"`
	Area        optional.Field[float64] `json:"area"`
	Capacity    optional.Field[int]     `json:"capacity"`
	IsActive    optional.Field[bool]    `json:"isActive"`
}

type ICommonAreaService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.CommonArea, error)
	Get(ctx context.Context, id uint) (*models.CommonArea, error)
	Create(ctx context.Context, in CommonAreaInput) (*models.CommonArea, error)
	Update(ctx context.Context, id uint, in CommonAreaUpdateInput) (*models.CommonArea, error)
	Delete(ctx context.Context, id uint) error
}

type CommonAreaService struct {
	repo     repositories.ICommonAreaRepository
	siteRepo repositories.ISiteRepository
}

func NewCommonAreaService(repo repositories.ICommonAreaRepository, siteRepo repositories.ISiteRepository) ICommonAreaService {
	return &CommonAreaService{repo: repo, siteRepo: siteRepo}
}

func (s *CommonAreaService) List(ctx context.Context, params queryparams.ListParams) ([]models.CommonArea, error) {
	return s.repo.List(ctx, params)
}

func (s *CommonAreaService) Get(ctx context.Context, id uint) (*models.CommonArea, error) {
	area, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrCommonAreaNotFound, "CommonAreaService.Get", id)
	}
	if !area.IsActive {
		return nil, ErrCommonAreaNotFound
	}
	return area, nil
}

func (s *CommonAreaService) Create(ctx context.Context, in CommonAreaInput) (*models.CommonArea, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.siteRepo, in.SiteID, ErrSiteInvalid); err != nil {
		return nil, err
	}
	area := &models.CommonArea{
		SiteID:      in.SiteID,
		Name:        in.Name,
		Type:        orDefault(models.CommonAreaType(in.Type), models.CommonAreaOther),
		Description: in.Description,
		Area:        in.Area,
		Capacity:    in.Capacity,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, area); err != nil {
		configslog.Log.Error("Ortak alan oluşturulamadı", zap.Uint("site_id", in.SiteID), zap.Error(err))
		return nil, err
	}
	return area, nil
}

func (s *CommonAreaService) Update(ctx context.Context, id uint, in CommonAreaUpdateInput) (*models.CommonArea, error) {
	changes := changeSet{}
	if in.SiteID.Set {
		if in.SiteID.Null {
			return nil, ErrSiteInvalid
		}
		if err := requireActiveParent(ctx, s.siteRepo, in.SiteID.Value, ErrSiteInvalid); err != nil {
			return nil, err
		}
		changes["site_id"] = in.SiteID.Value
	}
	if err := changes.requiredText("name", "name", in.Name); err != nil {
		return nil, err
	}
	if err := changes.enum("type", "type", in.Type, commonAreaTypes); err != nil {
		return nil, err
	}
	changes.text("description", in.Description)
	nullable(changes, "area", in.Area)
	nullable(changes, "capacity", in.Capacity)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrCommonAreaNotFound, "CommonAreaService.Update", id)
	}
	area, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrCommonAreaNotFound, "CommonAreaService.Update", id)
	}
	return area, nil
}

func (s *CommonAreaService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrCommonAreaNotFound, "CommonAreaService.Delete", id)
	}
	return nil
}

// requireCommonAreaInSite ortak alanın aktif olduğunu ve verilen siteye ait olduğunu doğrular.
func requireCommonAreaInSite(ctx context.Context, repo repositories.ICommonAreaRepository, id, siteID uint) error {
	area, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCommonAreaInvalid
		}
		return err
	}
	if !area.IsActive || area.SiteID != siteID {
		return ErrCommonAreaInvalid
	}
	return nil
}

var _ ICommonAreaService = (*CommonAreaService)(nil)
