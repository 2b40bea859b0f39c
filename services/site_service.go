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

const (
	ErrSiteNotFound NotFoundError   = "site bulunamadı"
	ErrSiteInvalid  ValidationError = "site bulunamadı veya pasif"
)

type SiteInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address     string `json:"address" validate:"max=500"`
	City        string `json:"city" validate:"max=100"`
	District    string `json:"district" validate:"max=100"`
	Description string `json:"description"`
}

type SiteUpdateInput struct {
	Name        optional.Field[string] `json:"name"`
	Address     optional.Field[string] `json:"address"`
	City        optional.Field[string] `json:"city"`
	District    optional.Field[string] `json:"district"`
	Description optional.Field[string] `json:"description"`
	IsActive    optional.Field[bool]   `json:"isActive"`
}

type ISiteService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.Site, error)
	Get(ctx context.Context, id uint) (*models.Site, error)
	Create(ctx context.Context, in SiteInput) (*models.Site, error)
	Update(ctx context.Context, id uint, in SiteUpdateInput) (*models.Site, error)
	Delete(ctx context.Context, id uint) error
}

type SiteService struct {
	repo repositories.ISiteRepository
}

func NewSiteService(repo repositories.ISiteRepository) ISiteService {
	return &SiteService{repo: repo}
}

func (s *SiteService) List(ctx context.Context, params queryparams.ListParams) ([]models.Site, error) {
	return s.repo.List(ctx, params)
}

func (s *SiteService) Get(ctx context.Context, id uint) (*models.Site, error) {
	site, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrSiteNotFound, "SiteService.Get", id)
	}
	if !site.IsActive {
		return nil, ErrSiteNotFound
	}
	return site, nil
}

func (s *SiteService) Create(ctx context.Context, in SiteInput) (*models.Site, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	site := &models.Site{
		Name:        in.Name,
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		District:    strings.TrimSpace(in.District),
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, site); err != nil {
		configslog.Log.Error("Site oluşturulamadı", zap.String("name", site.Name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Site oluşturuldu: %s (ID: %d)", site.Name, site.ID)
	return site, nil
}

func (s *SiteService) Update(ctx context.Context, id uint, in SiteUpdateInput) (*models.Site, error) {
	changes := changeSet{}
	if err := changes.requiredText("name", "name", in.Name); err != nil {
		return nil, err
	}
	changes.text("address", in.Address)
	changes.text("city", in.City)
	changes.text("district", in.District)
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrSiteNotFound, "SiteService.Update", id)
	}
	site, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrSiteNotFound, "SiteService.Update", id)
	}
	return site, nil
}

// Delete siteyi pasife çeker. Blok ve diğer alt kayıtlara dokunulmaz.
func (s *SiteService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrSiteNotFound, "SiteService.Delete", id)
	}
	return nil
}

var _ ISiteService = (*SiteService)(nil)
