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
	ErrFloorNotFound NotFoundError   = "kat bulunamadı"
	ErrFloorInvalid  ValidationError = "kat bulunamadı veya pasif"
)

// FloorInput kat numarası bodrum katlar için sıfır veya negatif olabilir.
type FloorInput struct {
	BlockID     uint   `json:"blockId" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Number      *int   `json:"number" validate:"required"`
	Description string `json:"description"`
}

type FloorUpdateInput struct {
	BlockID     optional.Field[uint]   `json:"blockId"`
	Name        optional.Field[string] `json:"name"`
	Number      optional.Field[int]    `json:"number"`
	Description optional.Field[string] `json:"description"`
	IsActive    optional.Field[bool]   `json:"isActive"`
}

type IFloorService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.Floor, error)
	Get(ctx context.Context, id uint) (*models.Floor, error)
	Create(ctx context.Context, in FloorInput) (*models.Floor, error)
	Update(ctx context.Context, id uint, in FloorUpdateInput) (*models.Floor, error)
	Delete(ctx context.Context, id uint) error
}

type FloorService struct {
	repo      repositories.IFloorRepository
	blockRepo repositories.IBlockRepository
}

func NewFloorService(repo repositories.IFloorRepository, blockRepo repositories.IBlockRepository) IFloorService {
	return &FloorService{repo: repo, blockRepo: blockRepo}
}

func (s *FloorService) List(ctx context.Context, params queryparams.ListParams) ([]models.Floor, error) {
	return s.repo.List(ctx, params)
}

func (s *FloorService) Get(ctx context.Context, id uint) (*models.Floor, error) {
	floor, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrFloorNotFound, "FloorService.Get", id)
	}
	if !floor.IsActive {
		return nil, ErrFloorNotFound
	}
	return floor, nil
}

func (s *FloorService) Create(ctx context.Context, in FloorInput) (*models.Floor, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.blockRepo, in.BlockID, ErrBlockInvalid); err != nil {
		return nil, err
	}
	floor := &models.Floor{
		BlockID:     in.BlockID,
		Name:        in.Name,
		Number:      *in.Number,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, floor); err != nil {
		configslog.Log.Error("Kat oluşturulamadı", zap.Uint("block_id", in.BlockID), zap.Error(err))
		return nil, err
	}
	return floor, nil
}

func (s *FloorService) Update(ctx context.Context, id uint, in FloorUpdateInput) (*models.Floor, error) {
	changes := changeSet{}
	if in.BlockID.Set {
		if in.BlockID.Null {
			return nil, ErrBlockInvalid
		}
		if err := requireActiveParent(ctx, s.blockRepo, in.BlockID.Value, ErrBlockInvalid); err != nil {
			return nil, err
		}
		changes["block_id"] = in.BlockID.Value
	}
	if err := changes.requiredText("name", "name", in.Name); err != nil {
		return nil, err
	}
	if err := value(changes, "number", "number", in.Number); err != nil {
		return nil, err
	}
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrFloorNotFound, "FloorService.Update", id)
	}
	floor, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrFloorNotFound, "FloorService.Update", id)
	}
	return floor, nil
}

func (s *FloorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrFloorNotFound, "FloorService.Delete", id)
	}
	return nil
}

var _ IFloorService = (*FloorService)(nil)
