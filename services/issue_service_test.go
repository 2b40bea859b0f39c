package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
)

func TestIssueService_CreateAppliesDefaultsAndLocation(t *testing.T) {
	env := newTestEnv(t)

	issue := env.createIssue(t, IssueInput{
		LocationFields: atApartment(env.h.Apartment.ID),
		Title:          "  Banyo tavanında su sızıntısı ",
		Priority:       "URGENT",
	})

	assert.Equal(t, "Banyo tavanında su sızıntısı", issue.Title)
	assert.Equal(t, models.IssueStatusOpen, issue.Status)
	assert.Equal(t, models.IssueTypeDeficiency, issue.Type)
	assert.Equal(t, models.IssuePriorityUrgent, issue.Priority)
	require.NotNil(t, issue.SiteID)
	require.NotNil(t, issue.BlockID)
	assert.Equal(t, env.h.Site.ID, *issue.SiteID)
	assert.Equal(t, env.h.Block.ID, *issue.BlockID)
	assert.Equal(t, "Test Sitesi > A Blok > 1. Kat > Daire 101", issue.LocationPath)
	assert.Nil(t, issue.ResolvedAt)
	require.NotNil(t, issue.CreatedBy)
	assert.Equal(t, env.admin.ID, issue.CreatedBy.ID)
}

func TestIssueService_CreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Issues.Create(env.ctx, env.admin.ID, IssueInput{Priority: "HIGH"})
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "title")
}

func TestIssueService_CreateRejectsInactiveAssignee(t *testing.T) {
	env := newTestEnv(t)
	env.deactivate(t, &models.User{}, env.admin.ID)

	_, err := env.svc.Issues.Create(env.ctx, env.admin.ID, IssueInput{Title: "Lamba", AssignedToID: uintPtr(env.admin.ID)})
	assert.ErrorIs(t, err, ErrUserInvalid)
}

func TestIssueService_ResolvedAtIsStampedAndKept(t *testing.T) {
	env := newTestEnv(t)
	resolvedAt := time.Date(2024, 5, 6, 10, 30, 0, 0, time.UTC)
	env.svc.Issues.(*IssueService).now = fixedClock(resolvedAt)

	issue := env.createIssue(t, IssueInput{Title: "Kapı kolu kırık"})

	updated, err := env.svc.Issues.Update(env.ctx, issue.ID, IssueUpdateInput{Status: optional.Of("RESOLVED")})
	require.NoError(t, err)
	assert.Equal(t, models.IssueStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	assert.WithinDuration(t, resolvedAt, *updated.ResolvedAt, time.Second)

	reopened, err := env.svc.Issues.Update(env.ctx, issue.ID, IssueUpdateInput{Status: optional.Of("OPEN")})
	require.NoError(t, err)
	assert.Equal(t, models.IssueStatusOpen, reopened.Status)
	require.NotNil(t, reopened.ResolvedAt)
	assert.WithinDuration(t, resolvedAt, *reopened.ResolvedAt, time.Second)
}

func TestIssueService_PartialUpdateKeepsOtherFields(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{
		LocationFields: atApartment(env.h.Apartment.ID),
		Title:          "Priz çalışmıyor",
		Description:    "Salon",
		Priority:       "HIGH",
		EstimatedCost:  float(150),
	})

	updated, err := env.svc.Issues.Update(env.ctx, issue.ID, IssueUpdateInput{Description: optional.Of("Salon ve mutfak")})
	require.NoError(t, err)

	assert.Equal(t, "Salon ve mutfak", updated.Description)
	assert.Equal(t, "Priz çalışmıyor", updated.Title)
	assert.Equal(t, models.IssuePriorityHigh, updated.Priority)
	assert.Equal(t, issue.Location, updated.Location)
	require.NotNil(t, updated.EstimatedCost)
	assert.InDelta(t, 150, *updated.EstimatedCost, 0.001)
	assert.Nil(t, updated.ResolvedAt)
}

func TestIssueService_UpdateNullClearsOptionalField(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Cam çatlak", EstimatedCost: float(90)})

	var in IssueUpdateInput
	in.EstimatedCost.Set, in.EstimatedCost.Null = true, true
	updated, err := env.svc.Issues.Update(env.ctx, issue.ID, in)
	require.NoError(t, err)
	assert.Nil(t, updated.EstimatedCost)
}

func TestIssueService_UpdateNullLocationClearsIt(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{LocationFields: atApartment(env.h.Apartment.ID), Title: "Kombi arızası"})
	require.NotNil(t, issue.SiteID)

	var keep IssueUpdateInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Kombi arızası (2)"}`), &keep))
	assert.False(t, keep.ClearLocation)
	updated, err := env.svc.Issues.Update(env.ctx, issue.ID, keep)
	require.NoError(t, err)
	assert.Equal(t, issue.Location, updated.Location)

	var clear IssueUpdateInput
	require.NoError(t, json.Unmarshal([]byte(`{"location": null}`), &clear))
	require.True(t, clear.ClearLocation)
	updated, err = env.svc.Issues.Update(env.ctx, issue.ID, clear)
	require.NoError(t, err)
	assert.True(t, updated.Location.IsZero())
	assert.Nil(t, updated.SiteID)
	assert.Nil(t, updated.BlockID)
	assert.Equal(t, "-", updated.LocationPath)
	assert.Equal(t, "Kombi arızası (2)", updated.Title)
}

func TestIssueService_UpdateRejectsEmptyTitleAndUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Boya"})

	_, err := env.svc.Issues.Update(env.ctx, issue.ID, IssueUpdateInput{Title: optional.Of("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Issues.Update(env.ctx, issue.ID, IssueUpdateInput{Status: optional.Of("DONE")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Issues.Update(env.ctx, 9999, IssueUpdateInput{Title: optional.Of("x")})
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestIssueService_ListFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	urgent := env.createIssue(t, IssueInput{Title: "Yangın dolabı boş", Priority: "URGENT"})

	open, err := env.svc.Issues.List(env.ctx, queryparams.ListParams{Status: "OPEN"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, urgent.ID, open[0].ID)

	resolved, err := env.svc.Issues.List(env.ctx, queryparams.ListParams{Status: "RESOLVED"})
	require.NoError(t, err)
	assert.Empty(t, resolved)

	bySite, err := env.svc.Issues.List(env.ctx, queryparams.ListParams{SiteID: env.h.Site.ID})
	require.NoError(t, err)
	assert.Empty(t, bySite, "konumsuz arıza site filtresine girmemeli")
}

func TestIssueService_ListSearchAndDateRange(t *testing.T) {
	env := newTestEnv(t)
	env.createIssue(t, IssueInput{Title: "Asansör kapısı sıkışıyor"})
	env.createIssue(t, IssueInput{Title: "Bahçe sulama"})

	found, err := env.svc.Issues.List(env.ctx, queryparams.ListParams{Search: "kapı"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Asansör kapısı sıkışıyor", found[0].Title)

	_, err = env.svc.Issues.List(env.ctx, queryparams.ListParams{StartDate: "dün"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	future, err := env.svc.Issues.List(env.ctx, queryparams.ListParams{StartDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02")})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestIssueService_DeleteRemovesChildren(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Çatı akıtıyor"})
	_, err := env.svc.Comments.Create(env.ctx, issue.ID, env.admin.ID, CommentInput{Content: "Usta çağrıldı"})
	require.NoError(t, err)
	result, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{memoryFile("cati.jpg", "image/jpeg", "jpeg", "")})
	require.NoError(t, err)
	require.Equal(t, 1, result.Uploaded)

	require.NoError(t, env.svc.Issues.Delete(env.ctx, issue.ID))

	_, err = env.svc.Issues.Get(env.ctx, issue.ID)
	assert.ErrorIs(t, err, ErrIssueNotFound)
	var comments, media int64
	require.NoError(t, env.db.Model(&models.Comment{}).Where("issue_id = ?", issue.ID).Count(&comments).Error)
	require.NoError(t, env.db.Model(&models.Media{}).Where("issue_id = ?", issue.ID).Count(&media).Error)
	assert.Zero(t, comments)
	assert.Zero(t, media)

	assert.ErrorIs(t, env.svc.Issues.Delete(env.ctx, issue.ID), ErrIssueNotFound)
}

func TestIssueService_GetIncludesCommentsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Su kesik"})
	_, err := env.svc.Comments.Create(env.ctx, issue.ID, env.admin.ID, CommentInput{Content: "ilk"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = env.svc.Comments.Create(env.ctx, issue.ID, env.admin.ID, CommentInput{Content: "ikinci"})
	require.NoError(t, err)

	got, err := env.svc.Issues.Get(env.ctx, issue.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "ikinci", got.Comments[0].Content)
	require.NotNil(t, got.Comments[0].User)
	assert.Equal(t, env.admin.ID, got.Comments[0].User.ID)
}
