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
	ErrFloorAreaNotFound NotFoundError   = "kat alanı bulunamadı"
	ErrFloorAreaInvalid  ValidationError = "kat alanı bulunamadı veya pasif"
)

const floorAreaTypes = "STAIRCASE ELEVATOR_PASSENGER ELEVATOR_FREIGHT ELEVATOR_SERVICE METER_SHAFT ELECTRICAL_ROOM GARBAGE_AREA FIRE_CABINET CORRIDOR LOBBY OTHER"

type FloorAreaInput struct {
	FloorID     uint   `json:"floorId" validate:"required"`
	Name        string `json:"name" validate:"required,max=150"`
	Type        string `json:"type" validate:"omitempty,oneof=STAIRCASE ELEVATOR_PASSENGER ELEVATOR_FREIGHT ELEVATOR_SERVICE METER_SHAFT ELECTRICAL_ROOM GARBAGE_AREA FIRE_CABINET CORRIDOR LOBBY OTHER"`
	Description string `json:"description"`
}

type FloorAreaUpdateInput struct {
	FloorID     optional.Field[uint]   `json:"floorId"`
	Name        optional.Field[string] `json:"name"`
	Type        optional.Field[string] `json:"type"`
	Description optional.Field[string] `json:"description"`
	IsActive    optional.Field[bool]   `json:"isActive"`
}

type IFloorAreaService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.FloorArea, error)
	Get(ctx context.Context, id uint) (*models.FloorArea, error)
	Create(ctx context.Context, in FloorAreaInput) (*models.FloorArea, error)
	Update(ctx context.Context, id uint, in FloorAreaUpdateInput) (*models.FloorArea, error)
	Delete(ctx context.Context, id uint) error
}

type FloorAreaService struct {
	repo      repositories.IFloorAreaRepository
	floorRepo repositories.IFloorRepository
}

func NewFloorAreaService(repo repositories.IFloorAreaRepository, floorRepo repositories.IFloorRepository) IFloorAreaService {
	return &FloorAreaService{repo: repo, floorRepo: floorRepo}
}

func (s *FloorAreaService) List(ctx context.Context, params queryparams.ListParams) ([]models.FloorArea, error) {
	return s.repo.List(ctx, params)
}

func (s *FloorAreaService) Get(ctx context.Context, id uint) (*models.FloorArea, error) {
	area, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrFloorAreaNotFound, "FloorAreaService.Get", id)
	}
	if !area.IsActive {
		return nil, ErrFloorAreaNotFound
	}
	return area, nil
}

func (s *FloorAreaService) Create(ctx context.Context, in FloorAreaInput) (*models.FloorArea, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.floorRepo, in.FloorID, ErrFloorInvalid); err != nil {
		return nil, err
	}
	area := &models.FloorArea{
		FloorID:     in.FloorID,
		Name:        in.Name,
		Type:        orDefault(models.FloorAreaType(in.Type), models.FloorAreaOther),
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, area); err != nil {
		configslog.Log.Error("Kat alanı oluşturulamadı", zap.Uint("floor_id", in.FloorID), zap.Error(err))
		return nil, err
	}
	return area, nil
}

func (s *FloorAreaService) Update(ctx context.Context, id uint, in FloorAreaUpdateInput) (*models.FloorArea, error) {
	changes := changeSet{}
	if in.FloorID.Set {
		if in.FloorID.Null {
			return nil, ErrFloorInvalid
		}
		if err := requireActiveParent(ctx, s.floorRepo, in.FloorID.Value, ErrFloorInvalid); err != nil {
			return nil, err
		}
		changes["floor_id"] = in.FloorID.Value
	}
	if err := changes.requiredText("name", "name", in.Name); err != nil {
		return nil, err
	}
	if err := changes.enum("type", "type", in.Type, floorAreaTypes); err != nil {
		return nil, err
	}
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrFloorAreaNotFound, "FloorAreaService.Update", id)
	}
	area, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrFloorAreaNotFound, "FloorAreaService.Update", id)
	}
	return area, nil
}

func (s *FloorAreaService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrFloorAreaNotFound, "FloorAreaService.Delete", id)
	}
	return nil
}

var _ IFloorAreaService = (*FloorAreaService)(nil)
