package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/repositories"
)

const ErrIssueNotFound NotFoundError = "eksiklik bulunamadı"

const (
	issueTypes      = "DEFICIENCY MALFUNCTION MAINTENANCE COMPLAINT SUGGESTION OTHER"
	issuePriorities = "LOW MEDIUM HIGH URGENT"
	issueStatuses   = "OPEN IN_PROGRESS WAITING RESOLVED CLOSED CANCELLED"
)

// IssueInput arıza oluşturma gövdesi. Konum "location" nesnesi veya eski tip kimliklerle verilir.
type IssueInput struct {
	LocationFields
	Title         string   `json:"title" validate:"required,max=255"`
	Description   string   `json:"description"`
	Type          string   `json:"type" validate:"omitempty,oneof=DEFICIENCY MALFUNCTION MAINTENANCE COMPLAINT SUGGESTION OTHER"`
	Priority      string   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status        string   `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS WAITING RESOLVED CLOSED CANCELLED"`
	AssetID       *uint    `json:"assetId"`
	AssignedToID  *uint    `json:"assignedToId"`
	DueDate       string   `json:"dueDate"`
	EstimatedCost *float64 `json:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost    *float64 `json:"actualCost" validate:"omitempty,gte=0"`
}

// IssueUpdateInput kısmi güncelleme. Konum alanları gönderilirse konum yeniden çözülür.
type IssueUpdateInput struct {
	LocationFields
	Title         optional.Field[string]  `json:"title"`
	Description   optional.Field[string]  `json:"description"`
	Type          optional.Field[string]  `json:"type"`
	Priority      optional.Field[string]  `json:"priority"`
	Status        optional.Field[string]  `json:"status"`
	AssetID       optional.Field[uint]    `json:"assetId"`
	AssignedToID  optional.Field[uint]    `json:"assignedToId"`
	DueDate       optional.Field[string]  `json:"dueDate"`
	EstimatedCost optional.Field[float64] `json:"estimatedCost"`
	ActualCost    optional.Field[float64] `json:"actualCost"`

	// ClearLocation gövdede "location": null gönderildiğinde true olur.
	ClearLocation bool `json:"-"`
}

func (in *IssueUpdateInput) UnmarshalJSON(data []byte) error {
	type plain IssueUpdateInput
	if err := json.Unmarshal(data, (*plain)(in)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	loc, ok := raw["location"]
	in.ClearLocation = ok && string(bytes.TrimSpace(loc)) == "null"
	return nil
}

type IIssueService interface {
	List(ctx context.Context, params queryparams.ListParams) ([]models.Issue, error)
	Get(ctx context.Context, id uint) (*models.Issue, error)
	Create(ctx context.Context, creatorID uint, in IssueInput) (*models.Issue, error)
	Update(ctx context.Context, id uint, in IssueUpdateInput) (*models.Issue, error)
	Delete(ctx context.Context, id uint) error
}

type IssueService struct {
	repo      repositories.IIssueRepository
	mediaRepo repositories.IMediaRepository
	assetRepo repositories.IInventoryRepository
	userRepo  repositories.IUserRepository
	locations ILocationResolver
	store     storage.BlobStore
	now       func() time.Time
}

func NewIssueService(
	repo repositories.IIssueRepository,
	mediaRepo repositories.IMediaRepository,
	assetRepo repositories.IInventoryRepository,
	userRepo repositories.IUserRepository,
	locations ILocationResolver,
	store storage.BlobStore,
) IIssueService {
	return &IssueService{
		repo: repo, mediaRepo: mediaRepo, assetRepo: assetRepo, userRepo: userRepo,
		locations: locations, store: store, now: time.Now,
	}
}

// List arızaları en yeniden eskiye listeler ve her birine konum yolunu ekler.
func (s *IssueService) List(ctx context.Context, params queryparams.ListParams) ([]models.Issue, error) {
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	issues, err := s.repo.List(ctx, params, from, to)
	if err != nil {
		return nil, err
	}
	cache := LocationCache{}
	for i := range issues {
		issues[i].LocationPath = s.locations.Path(ctx, issues[i].Location, cache)
	}
	return issues, nil
}

func (s *IssueService) Get(ctx context.Context, id uint) (*models.Issue, error) {
	issue, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrIssueNotFound, "IssueService.Get", id)
	}
	issue.LocationPath = s.locations.Path(ctx, issue.Location, nil)
	return issue, nil
}

func (s *IssueService) Create(ctx context.Context, creatorID uint, in IssueInput) (*models.Issue, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if creatorID == 0 {
		return nil, ErrSessionInvalid
	}
	loc, err := s.locations.Resolve(ctx, in.LocationFields)
	if err != nil {
		return nil, err
	}
	if in.AssetID != nil && *in.AssetID != 0 {
		if err := requireActiveParent(ctx, s.assetRepo, *in.AssetID, ErrInventoryInvalid); err != nil {
			return nil, err
		}
	} else {
		in.AssetID = nil
	}
	if in.AssignedToID != nil && *in.AssignedToID != 0 {
		if err := requireActiveUser(ctx, s.userRepo, *in.AssignedToID); err != nil {
			return nil, err
		}
	} else {
		in.AssignedToID = nil
	}
	dueDate, err := parseDateInput("dueDate", in.DueDate)
	if err != nil {
		return nil, err
	}

	issue := &models.Issue{
		Title:         in.Title,
		Description:   in.Description,
		Type:          orDefault(models.IssueType(in.Type), models.IssueTypeDeficiency),
		Priority:      orDefault(models.IssuePriority(in.Priority), models.IssuePriorityMedium),
		Status:        orDefault(models.IssueStatus(in.Status), models.IssueStatusOpen),
		AssetID:       in.AssetID,
		CreatedByID:   creatorID,
		AssignedToID:  in.AssignedToID,
		DueDate:       dueDate,
		EstimatedCost: in.EstimatedCost,
		ActualCost:    in.ActualCost,
	}
	if loc != nil {
		issue.Location = loc.Ref
		issue.SiteID = loc.SiteID
		issue.BlockID = loc.BlockID
	}
	if issue.Status.IsFinal() {
		now := s.now()
		issue.ResolvedAt = &now
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		configslog.Log.Error("Eksiklik oluşturulamadı", zap.Uint("created_by", creatorID), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Eksiklik oluşturuldu: %d (%s, %s)", issue.ID, issue.Priority, issue.Status)
	return s.Get(ctx, issue.ID)
}

// Update yalnızca gönderilen alanları uygular. Durum RESOLVED veya CLOSED olduğunda
// resolvedAt o anki zamana ayarlanır; önceki bir duruma dönüşte temizlenmez.
func (s *IssueService) Update(ctx context.Context, id uint, in IssueUpdateInput) (*models.Issue, error) {
	changes := changeSet{}
	if err := changes.requiredText("title", "title", in.Title); err != nil {
		return nil, err
	}
	if in.Description.Set {
		changes["description"] = in.Description.Value
	}
	if err := changes.enum("type", "type", in.Type, issueTypes); err != nil {
		return nil, err
	}
	if err := changes.enum("priority", "priority", in.Priority, issuePriorities); err != nil {
		return nil, err
	}
	if err := changes.enum("status", "status", in.Status, issueStatuses); err != nil {
		return nil, err
	}
	if in.Status.Present() && models.IssueStatus(in.Status.Value).IsFinal() {
		changes["resolved_at"] = s.now()
	}

	switch {
	case in.ClearLocation && in.LocationFields.IsEmpty():
		changes["location_kind"] = ""
		changes["location_id"] = 0
		changes["site_id"] = nil
		changes["block_id"] = nil
	case !in.LocationFields.IsEmpty():
		loc, err := s.locations.Resolve(ctx, in.LocationFields)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			changes["location_kind"] = loc.Ref.Kind
			changes["location_id"] = loc.Ref.ID
			changes["site_id"] = loc.SiteID
			changes["block_id"] = loc.BlockID
		}
	}

	switch {
	case in.AssetID.Present() && in.AssetID.Value != 0:
		if err := requireActiveParent(ctx, s.assetRepo, in.AssetID.Value, ErrInventoryInvalid); err != nil {
			return nil, err
		}
		changes["asset_id"] = in.AssetID.Value
	case in.AssetID.Set:
		changes["asset_id"] = nil
	}
	switch {
	case in.AssignedToID.Present() && in.AssignedToID.Value != 0:
		if err := requireActiveUser(ctx, s.userRepo, in.AssignedToID.Value); err != nil {
			return nil, err
		}
		changes["assigned_to_id"] = in.AssignedToID.Value
	case in.AssignedToID.Set:
		changes["assigned_to_id"] = nil
	}
	if err := changes.date("due_date", "dueDate", in.DueDate, true); err != nil {
		return nil, err
	}
	nullable(changes, "estimated_cost", in.EstimatedCost)
	nullable(changes, "actual_cost", in.ActualCost)

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, notFoundOr(err, ErrIssueNotFound, "IssueService.Update", id)
	}
	return s.Get(ctx, id)
}

// Delete arızayı yorum ve medya kayıtlarıyla birlikte kalıcı siler; dosyalar ardından temizlenir.
func (s *IssueService) Delete(ctx context.Context, id uint) error {
	media, err := s.mediaRepo.ListByIssue(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteWithChildren(ctx, id); err != nil {
		return notFoundOr(err, ErrIssueNotFound, "IssueService.Delete", id)
	}
	for _, m := range media {
		if m.StorageKey == "" {
			continue
		}
		if err := s.store.Delete(ctx, m.StorageKey); err != nil && !errors.Is(err, context.Canceled) {
			configslog.Log.Warn("Medya dosyası silinemedi", zap.Uint("media_id", m.ID), zap.String("key", m.StorageKey), zap.Error(err))
		}
	}
	return nil
}

var _ IIssueService = (*IssueService)(nil)
