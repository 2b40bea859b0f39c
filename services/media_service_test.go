package services

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/models"
)

func TestMediaService_UploadInfersTypeAndReportsCounts(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Duvarda çatlak"})

	result, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{
		memoryFile("duvar.jpg", "image/jpeg", "jpeg", ""),
		memoryFile("duvar.mp4", "video/mp4", "mp4", ""),
		memoryFile("teklif.pdf", "application/pdf", "pdf", ""),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Uploaded)
	assert.Zero(t, result.Failed)
	assert.Equal(t, "3 dosya yüklendi, 0 tekrar, 0 başarısız", result.Message)
	require.Len(t, result.Media, 3)
	assert.Equal(t, models.MediaTypeImage, result.Media[0].Type)
	assert.Equal(t, models.MediaTypeVideo, result.Media[1].Type)
	assert.Equal(t, models.MediaTypeDocument, result.Media[2].Type)
	assert.True(t, strings.HasPrefix(result.Media[0].URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(result.Media[0].URL, ".jpg"))
}

func TestMediaService_UploadIsIdempotentPerKey(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Kamera arızası"})

	first, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{memoryFile("a.jpg", "image/jpeg", "1", "key-1")})
	require.NoError(t, err)
	require.Equal(t, 1, first.Uploaded)

	second, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{memoryFile("a.jpg", "image/jpeg", "1", "key-1")})
	require.NoError(t, err)
	assert.Zero(t, second.Uploaded)
	assert.Equal(t, 1, second.Duplicates)
	require.Len(t, second.Media, 1)
	assert.Equal(t, first.Media[0].ID, second.Media[0].ID)

	var count int64
	require.NoError(t, env.db.Model(&models.Media{}).Where("issue_id = ?", issue.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMediaService_FailedFileDoesNotAbortOthers(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Bahçe kapısı"})

	big := memoryFile("buyuk.jpg", "image/jpeg", "x", "")
	big.Size = 2 << 20
	broken := memoryFile("bozuk.png", "image/png", "", "")
	broken.Open = func() (io.ReadCloser, error) { return nil, errors.New("okunamadı") }

	result, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{
		big,
		memoryFile("iyi.jpg", "image/jpeg", "ok", ""),
		broken,
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Uploaded)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "buyuk.jpg", result.Failures[0].Filename)
	assert.Equal(t, ErrFileTooLarge.Error(), result.Failures[0].Error)
	assert.Equal(t, "bozuk.png", result.Failures[1].Filename)
	assert.Equal(t, "1 dosya yüklendi, 0 tekrar, 2 başarısız", result.Message)
}

func TestMediaService_UploadRejectsUnknownIssueAndEmptyList(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Media.Upload(env.ctx, 9999, []UploadFile{memoryFile("a.jpg", "image/jpeg", "1", "")})
	assert.ErrorIs(t, err, ErrIssueNotFound)

	issue := env.createIssue(t, IssueInput{Title: "Boş yükleme"})
	_, err = env.svc.Media.Upload(env.ctx, issue.ID, nil)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestMediaService_DeleteChecksOwnership(t *testing.T) {
	env := newTestEnv(t)
	issue := env.createIssue(t, IssueInput{Title: "Sahiplik"})
	other := env.createIssue(t, IssueInput{Title: "Başka"})
	result, err := env.svc.Media.Upload(env.ctx, issue.ID, []UploadFile{memoryFile("a.jpg", "image/jpeg", "1", "")})
	require.NoError(t, err)
	mediaID := result.Media[0].ID

	assert.ErrorIs(t, env.svc.Media.Delete(env.ctx, other.ID, mediaID), ErrMediaNotFound)
	require.NoError(t, env.svc.Media.Delete(env.ctx, issue.ID, mediaID))
	assert.ErrorIs(t, env.svc.Media.Delete(env.ctx, issue.ID, mediaID), ErrMediaNotFound)
}

func TestMediaService_StoreWithoutIssue(t *testing.T) {
	env := newTestEnv(t)

	stored, err := env.svc.Media.Store(env.ctx, memoryFile("plan.pdf", "application/pdf", "pdf-data", ""))
	require.NoError(t, err)
	assert.Equal(t, "plan.pdf", stored.Filename)
	assert.EqualValues(t, len("pdf-data"), stored.Size)
	assert.True(t, strings.HasSuffix(stored.URL, ".pdf"))
}
