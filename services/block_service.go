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
	ErrBlockNotFound NotFoundError   = "blok bulunamadı"
	ErrBlockInvalid  ValidationError = "blok bulunamadı veya pasif"
)

type BlockInput struct {
	SiteID      uint   `json:"siteId" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	TotalFloors *int   `json:"totalFloors" validate:"omitempty,min=0"`
}

type BlockUpdateInput struct {
	SiteID      optional.Field[uint]   `json:"siteId"`
	Name        optional.Field[string] `json:"name"`
	Description optional.Field[string] `json:"description"`
	TotalFloors optional.Field[int]    `json:"totalFloors"`
	IsActive    optional.Field[bool]   `json:"isActive"`
}

type IBlockService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.Block, error)
	Get(ctx context.Context, id uint) (*models.Block, error)
	Create(ctx context.Context, in BlockInput) (*models.Block, error)
	Update(ctx context.Context, id uint, in BlockUpdateInput) (*models.Block, error)
	Delete(ctx context.Context, id uint) error
}

type BlockService struct {
	repo     repositories.IBlockRepository
	siteRepo repositories.ISiteRepository
}

func NewBlockService(repo repositories.IBlockRepository, siteRepo repositories.ISiteRepository) IBlockService {
	return &BlockService{repo: repo, siteRepo: siteRepo}
}

func (s *BlockService) List(ctx context.Context, params queryparams.ListParams) ([]models.Block, error) {
	return s.repo.List(ctx, params)
}

func (s *BlockService) Get(ctx context.Context, id uint) (*models.Block, error) {
	block, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrBlockNotFound, "BlockService.Get", id)
	}
	if !block.IsActive {
		return nil, ErrBlockNotFound
	}
	return block, nil
}

func (s *BlockService) Create(ctx context.Context, in BlockInput) (*models.Block, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.siteRepo, in.SiteID, ErrSiteInvalid); err != nil {
		return nil, err
	}
	block := &models.Block{
		SiteID:      in.SiteID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.TotalFloors != nil {
		block.TotalFloors = *in.TotalFloors
	}
	if err := s.repo.Create(ctx, block); err != nil {
		configslog.Log.Error("Blok oluşturulamadı", zap.Uint("site_id", in.SiteID), zap.Error(err))
		return nil, err
	}
	return block, nil
}

func (s *BlockService) Update(ctx context.Context, id uint, in BlockUpdateInput) (*models.Block, error) {
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
	changes.text("description", in.Description)
	if in.TotalFloors.Present() {
		if err := validateField("totalFloors", in.TotalFloors.Value, "min=0"); err != nil {
			return nil, err
		}
	}
	if err := value(changes, "total_floors", "totalFloors", in.TotalFloors); err != nil {
		return nil, err
	}
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrBlockNotFound, "BlockService.Update", id)
	}
	block, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrBlockNotFound, "BlockService.Update", id)
	}
	return block, nil
}

func (s *BlockService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrBlockNotFound, "BlockService.Delete", id)
	}
	return nil
}

var _ IBlockService = (*BlockService)(nil)
