package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"siteyonetim.app/internal/testutil"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/repositories"
)

type testEnv struct {
	ctx       context.Context
	db        *gorm.DB
	svc       *Services
	locations *LocationResolver
	h         *testutil.Hierarchy
	admin     *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := testutil.Config(t)
	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	require.NoError(t, err)

	return &testEnv{
		ctx: context.Background(),
		db:  db,
		svc: New(db, store, Options{
			TokenSecret:    testutil.TokenSecret,
			TokenTTL:       time.Hour,
			UploadMaxBytes: cfg.UploadMaxBytes,
		}),
		locations: NewLocationResolver(
			repositories.NewSiteRepository(db),
			repositories.NewBlockRepository(db),
			repositories.NewFloorRepository(db),
			repositories.NewApartmentRepository(db),
			repositories.NewFloorAreaRepository(db),
			repositories.NewCommonAreaRepository(db),
		),
		h:     testutil.CreateHierarchy(t, db),
		admin: testutil.CreateUser(t, db, models.RoleAdmin),
	}
}

func (e *testEnv) deactivate(t *testing.T, model interface{}, id uint) {
	t.Helper()
	require.NoError(t, e.db.Model(model).Where("id = ?", id).Update("is_active", false).Error)
}

func (e *testEnv) createIssue(t *testing.T, in IssueInput) *models.Issue {
	t.Helper()
	issue, err := e.svc.Issues.Create(e.ctx, e.admin.ID, in)
	require.NoError(t, err)
	return issue
}

func atApartment(id uint) LocationFields {
	return LocationFields{Location: &models.LocationRef{Kind: models.LocationApartment, ID: id}}
}

func uintPtr(v uint) *uint { return &v }

func float(v float64) *float64 { return &v }

func memoryFile(name, contentType, content, key string) UploadFile {
	return UploadFile{
		Filename:       name,
		ContentType:    contentType,
		Size:           int64(len(content)),
		IdempotencyKey: key,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
