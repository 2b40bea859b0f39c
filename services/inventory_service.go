package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const (
	ErrInventoryNotFound NotFoundError   = "demirbaş bulunamadı"
	ErrInventoryInvalid  ValidationError = "demirbaş bulunamadı veya pasif"
)

const (
	assetCategories = "FURNITURE ELECTRONICS GARDEN SPORTS TOOLS OTHER"
	assetStatuses   = "NEW GOOD NEEDS_MAINTENANCE BROKEN SCRAP"
)

type InventoryInput struct {
	SiteID       uint   `json:"siteId" validate:"required"`
	CommonAreaID *uint  `json:"commonAreaId"`
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"omitempty,oneof=FURNITURE ELECTRONICS GARDEN SPORTS TOOLS OTHER"`
	Quantity     *int   `json:"quantity" validate:"omitempty,min=0"`
	Status       string `json:"status" validate:"omitempty,oneof=NEW GOOD NEEDS_MAINTENANCE BROKEN SCRAP"`
	SerialNumber string `json:"serialNumber" validate:"max=100"`
	PurchaseDate string `json:"purchaseDate"`
	Description  string `json:"description"`
}

type InventoryUpdateInput struct {
	SiteID       optional.Field[uint]   `json:"siteId"`
	CommonAreaID optional.Field[uint]   `json:"commonAreaId"`
	Name         optional.Field[string] `json:"name"`
	Category     optional.Field[string] `json:"category"`
	Quantity     optional.Field[int]    `json:"quantity"`
	Status       optional.Field[string] `json:"status"`
	SerialNumber optional.Field[string] `json:"serialNumber"`
	PurchaseDate optional.Field[string] `json:"purchaseDate"`
	Description  optional.Field[string] `json:"description"`
	IsActive     optional.Field[bool]   `json:"isActive"`
}

type IInventoryService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.InventoryItem, error)
	Get(ctx context.Context, id uint) (*models.InventoryItem, error)
	Create(ctx context.Context, in InventoryInput) (*models.InventoryItem, error)
	Update(ctx context.Context, id uint, in InventoryUpdateInput) (*models.InventoryItem, error)
	Delete(ctx context.Context, id uint) error
}

type InventoryService struct {
	repo           repositories.IInventoryRepository
	siteRepo       repositories.ISiteRepository
	commonAreaRepo repositories.ICommonAreaRepository
}

func NewInventoryService(repo repositories.IInventoryRepository, siteRepo repositories.ISiteRepository, commonAreaRepo repositories.ICommonAreaRepository) IInventoryService {
	return &InventoryService{repo: repo, siteRepo: siteRepo, commonAreaRepo: commonAreaRepo}
}

func (s *InventoryService) List(ctx context.Context, params queryparams.ListParams) ([]models.InventoryItem, error) {
	return s.repo.List(ctx, params)
}

func (s *InventoryService) Get(ctx context.Context, id uint) (*models.InventoryItem, error) {
	item, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrInventoryNotFound, "InventoryService.Get", id)
	}
	if !item.IsActive {
		return nil, ErrInventoryNotFound
	}
	return item, nil
}

func (s *InventoryService) Create(ctx context.Context, in InventoryInput) (*models.InventoryItem, error) {
	in.Name = strings.TrimSpace(in.Name)
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
	purchaseDate, err := parseDateInput("purchaseDate", in.PurchaseDate)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		SiteID:       in.SiteID,
		CommonAreaID: in.CommonAreaID,
		Name:         in.Name,
		Category:     orDefault(models.AssetCategory(in.Category), models.AssetCategoryOther),
		Quantity:     1,
		Status:       orDefault(models.AssetStatus(in.Status), models.AssetStatusNew),
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		PurchaseDate: purchaseDate,
		Description:  in.Description,
		IsActive:     true,
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if err := s.repo.Create(ctx, item); err != nil {
		configslog.Log.Error("Demirbaş oluşturulamadı", zap.Uint("site_id", in.SiteID), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Update(ctx context.Context, id uint, in InventoryUpdateInput) (*models.InventoryItem, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrInventoryNotFound, "InventoryService.Update", id)
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
		// Site değiştiyse eski sitenin ortak alanı bağlı kalamaz
		changes["common_area_id"] = nil
	}
	if err := changes.requiredText("name", "name", in.Name); err != nil {
		return nil, err
	}
	if err := changes.enum("category", "category", in.Category, assetCategories); err != nil {
		return nil, err
	}
	if err := changes.enum("status", "status", in.Status, assetStatuses); err != nil {
		return nil, err
	}
	if in.Quantity.Present() && in.Quantity.Value < 0 {
		return nil, fmt.Errorf("%w: quantity negatif olamaz", ErrInvalidInput)
	}
	if err := value(changes, "quantity", "quantity", in.Quantity); err != nil {
		return nil, err
	}
	changes.text("serial_number", in.SerialNumber)
	if err := changes.date("purchase_date", "purchaseDate", in.PurchaseDate, true); err != nil {
		return nil, err
	}
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrInventoryNotFound, "InventoryService.Update", id)
	}
	item, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrInventoryNotFound, "InventoryService.Update", id)
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrInventoryNotFound, "InventoryService.Delete", id)
	}
	return nil
}

var _ IInventoryService = (*InventoryService)(nil)
