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
	ErrApartmentNotFound NotFoundError   = "daire bulunamadı"
	ErrApartmentInvalid  ValidationError = "daire bulunamadı veya pasif"
)

const apartmentStatuses = "OCCUPIED EMPTY MAINTENANCE RESERVED"

type ApartmentInput struct {
	FloorID     uint     `json:"floorId" validate:"required"`
	Number      string   `json:"number" validate:"required,max=20"`
	Type        string   `json:"type" validate:"max=30"`
	Area        *float64 `json:"area" validate:"omitempty,gte=0"`
	RoomCount   *int     `json:"roomCount" validate:"omitempty,min=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=OCCUPIED EMPTY MAINTENANCE RESERVED"`
	OwnerName   string   `json:"ownerName"`
	OwnerPhone  string   `json:"ownerPhone"`
	OwnerEmail  string   `json:"ownerEmail" validate:"omitempty,email"`
	TenantName  string   `json:"tenantName"`
	TenantPhone string   `json:"tenantPhone"`
	TenantEmail string   `json:"tenantEmail" validate:"omitempty,email"`
	Description string   `json:"description"`
}

type ApartmentUpdateInput struct {
	FloorID     optional.Field[uint]    `json:"floorId"`
	Number      optional.Field[string]  `json:"number"`
	Type        optional.Field[string]  `json:"type"`
	Area        optional.Field[float64] `json:"area"`
	RoomCount   optional.Field[int]     `json:"roomCount"`
	Status      optional.Field[string]  `json:"status"`
	OwnerName   optional.Field[string]  `json:"ownerName"`
	OwnerPhone  optional.Field[string]  `json:"ownerPhone"`
	OwnerEmail  optional.Field[string]  `json:"ownerEmail"`
	TenantName  optional.Field[string]  `json:"tenantName"`
	TenantPhone optional.Field[string]  `json:"tenantPhone"`
	TenantEmail optional.Field[string]  `json:"tenantEmail"`
	Description optional.Field[string]  `json:"description"`
	IsActive    optional.Field[bool]    `json:"isActive"`
}

type IApartmentService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.Apartment, error)
	Get(ctx context.Context, id uint) (*models.Apartment, error)
	Create(ctx context.Context, in ApartmentInput) (*models.Apartment, error)
	Update(ctx context.Context, id uint, in ApartmentUpdateInput) (*models.Apartment, error)
	Delete(ctx context.Context, id uint) error
}

type ApartmentService struct {
	repo      repositories.IApartmentRepository
	floorRepo repositories.IFloorRepository
}

func NewApartmentService(repo repositories.IApartmentRepository, floorRepo repositories.IFloorRepository) IApartmentService {
	return &ApartmentService{repo: repo, floorRepo: floorRepo}
}

func (s *ApartmentService) List(ctx context.Context, params queryparams.ListParams) ([]models.Apartment, error) {
	return s.repo.List(ctx, params)
}

func (s *ApartmentService) Get(ctx context.Context, id uint) (*models.Apartment, error) {
	apartment, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrApartmentNotFound, "ApartmentService.Get", id)
	}
	if !apartment.IsActive {
		return nil, ErrApartmentNotFound
	}
	return apartment, nil
}

func (s *ApartmentService) Create(ctx context.Context, in ApartmentInput) (*models.Apartment, error) {
	in.Number = strings.TrimSpace(in.Number)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requireActiveParent(ctx, s.floorRepo, in.FloorID, ErrFloorInvalid); err != nil {
		return nil, err
	}
	apartment := &models.Apartment{
		FloorID:     in.FloorID,
		Number:      in.Number,
		Type:        strings.TrimSpace(in.Type),
		Area:        in.Area,
		RoomCount:   in.RoomCount,
		Status:      orDefault(models.ApartmentStatus(in.Status), models.ApartmentStatusEmpty),
		OwnerName:   strings.TrimSpace(in.OwnerName),
		OwnerPhone:  strings.TrimSpace(in.OwnerPhone),
		OwnerEmail:  strings.TrimSpace(in.OwnerEmail),
		TenantName:  strings.TrimSpace(in.TenantName),
		TenantPhone: strings.TrimSpace(in.TenantPhone),
		TenantEmail: strings.TrimSpace(in.TenantEmail),
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, apartment); err != nil {
		configslog.Log.Error("Daire oluşturulamadı", zap.Uint("floor_id", in.FloorID), zap.String("number", in.Number), zap.Error(err))
		return nil, err
	}
	return apartment, nil
}

func (s *ApartmentService) Update(ctx context.Context, id uint, in ApartmentUpdateInput) (*models.Apartment, error) {
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
	if err := changes.requiredText("number", "number", in.Number); err != nil {
		return nil, err
	}
	changes.text("type", in.Type)
	nullable(changes, "area", in.Area)
	nullable(changes, "room_count", in.RoomCount)
	if err := changes.enum("status", "status", in.Status, apartmentStatuses); err != nil {
		return nil, err
	}
	for _, email := range []struct {
		field string
		f     optional.Field[string]
	}{{"ownerEmail", in.OwnerEmail}, {"tenantEmail", in.TenantEmail}} {
		if email.f.Present() && strings.TrimSpace(email.f.Value) != "" {
			if err := validateField(email.field, strings.TrimSpace(email.f.Value), "email"); err != nil {
				return nil, err
			}
		}
	}
	changes.text("owner_name", in.OwnerName)
	changes.text("owner_phone", in.OwnerPhone)
	changes.text("owner_email", in.OwnerEmail)
	changes.text("tenant_name", in.TenantName)
	changes.text("tenant_phone", in.TenantPhone)
	changes.text("tenant_email", in.TenantEmail)
	changes.text("description", in.Description)
	if err := value(changes, "is_active", "isActive", in.IsActive); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrApartmentNotFound, "ApartmentService.Update", id)
	}
	apartment, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrApartmentNotFound, "ApartmentService.Update", id)
	}
	return apartment, nil
}

func (s *ApartmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return notFoundOr(err, ErrApartmentNotFound, "ApartmentService.Delete", id)
	}
	return nil
}

var _ IApartmentService = (*ApartmentService)(nil)
