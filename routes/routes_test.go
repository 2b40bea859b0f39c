package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"siteyonetim.app/internal/testutil"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/routes"
	"siteyonetim.app/services"
)

type testServer struct {
	app   *fiber.App
	db    *gorm.DB
	admin *models.User
	token string
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := testutil.Config(t)
	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	require.NoError(t, err)
	svc := services.New(db, store, services.Options{
		TokenSecret:    testutil.TokenSecret,
		TokenTTL:       time.Hour,
		UploadMaxBytes: cfg.UploadMaxBytes,
	})
	app := routes.NewApp(routes.Options{Config: cfg, Services: svc, Sessions: session.New()})
	admin := testutil.CreateUser(t, db, models.RoleAdmin)
	return &testServer{app: app, db: db, admin: admin, token: testutil.Token(t, admin)}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func (s *testServer) list(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var items []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return items
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

func id(t *testing.T, body map[string]interface{}) uint {
	t.Helper()
	v, ok := body["id"].(float64)
	require.True(t, ok, "yanıtta id yok: %v", body)
	return uint(v)
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestAPI_RequiresSession(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/sites", "/api/issues", "/api/dashboard/stats"} {
		resp, body := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "Unauthorized", body["error"], path)
	}

	resp, _ := s.do(t, http.MethodGet, "/api/sites", "bozuk-jeton", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_LoginIssuesToken(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    s.admin.Email,
		"password": testutil.DefaultPassword,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, _ = s.do(t, http.MethodGet, "/api/sites", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    s.admin.Email,
		"password": "yanlis",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestAPI_SiteLifecycle(t *testing.T) {
	s := newServer(t)

	resp, site := s.do(t, http.MethodPost, "/api/sites", s.token, map[string]string{"name": "Yeşil Vadi"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, site["isActive"])
	siteID := id(t, site)

	sites := s.list(t, "/api/sites")
	require.Len(t, sites, 1)
	assert.Equal(t, "Yeşil Vadi", sites[0]["name"])

	resp, updated := s.do(t, http.MethodPut, "/api/sites/"+itoa(siteID), s.token, map[string]string{"city": "Bursa"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bursa", updated["city"])
	assert.Equal(t, "Yeşil Vadi", updated["name"])

	resp, body := s.do(t, http.MethodDelete, "/api/sites/"+itoa(siteID), s.token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	assert.Empty(t, s.list(t, "/api/sites"))
	resp, _ = s.do(t, http.MethodGet, "/api/sites/"+itoa(siteID), s.token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/sites/abc", s.token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_BlockRequiresSite(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/blocks", s.token, map[string]string{"name": "A Blok"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestAPI_HierarchyScenario(t *testing.T) {
	s := newServer(t)

	_, site := s.do(t, http.MethodPost, "/api/sites", s.token, map[string]string{"name": "Örnek Site"})
	resp, block := s.do(t, http.MethodPost, "/api/blocks", s.token, map[string]interface{}{"siteId": id(t, site), "name": "A Blok"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, floor := s.do(t, http.MethodPost, "/api/floors", s.token, map[string]interface{}{"blockId": id(t, block), "name": "1. Kat", "number": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, apt := s.do(t, http.MethodPost, "/api/apartments", s.token, map[string]interface{}{"floorId": id(t, floor), "number": "101"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	apartments := s.list(t, "/api/apartments?floorId="+itoa(id(t, floor)))
	require.Len(t, apartments, 1)
	assert.Equal(t, "101", apartments[0]["number"])

	resp, issue := s.do(t, http.MethodPost, "/api/issues", s.token, map[string]interface{}{
		"title":    "Kombi arızası",
		"priority": "URGENT",
		"location": map[string]interface{}{"kind": "apartment", "id": id(t, apt)},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "OPEN", issue["status"])
	assert.Equal(t, "Örnek Site > A Blok > 1. Kat > Daire 101", issue["locationPath"])

	open := s.list(t, "/api/issues?status=OPEN")
	require.Len(t, open, 1)
	assert.Equal(t, "Kombi arızası", open[0]["title"])
	assert.Empty(t, s.list(t, "/api/issues?status=RESOLVED"))

	resp, resolved := s.do(t, http.MethodPut, "/api/issues/"+itoa(id(t, issue)), s.token, map[string]string{"status": "RESOLVED"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, resolved["resolvedAt"])
	assert.Len(t, s.list(t, "/api/issues?status=RESOLVED"), 1)
}

func TestAPI_RoleMatrix(t *testing.T) {
	s := newServer(t)
	resident := testutil.CreateUser(t, s.db, models.RoleUser)
	token := testutil.Token(t, resident)

	resp, body := s.do(t, http.MethodPost, "/api/sites", token, map[string]string{"name": "Yetkisiz"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, _ = s.do(t, http.MethodGet, "/api/sites", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/transactions", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, issue := s.do(t, http.MethodPost, "/api/issues", token, map[string]string{"title": "Asansör"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPut, "/api/issues/"+itoa(id(t, issue)), token, map[string]string{"status": "CLOSED"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAPI_CommentsAndMedia(t *testing.T) {
	s := newServer(t)
	_, issue := s.do(t, http.MethodPost, "/api/issues", s.token, map[string]string{"title": "Kapı"})
	issueID := itoa(id(t, issue))

	resp, comment := s.do(t, http.MethodPost, "/api/issues/"+issueID+"/comments", s.token, map[string]string{"content": "Bakıldı"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Bakıldı", comment["content"])
	assert.Len(t, s.list(t, "/api/issues/"+issueID+"/comments"), 1)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("images", "kapi.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-data"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("imageKeys", "k1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/issues/"+issueID+"/media", &buf)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	res, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	result := decode(t, res)
	assert.EqualValues(t, 1, result["uploaded"])
	assert.Equal(t, true, result["success"])

	resp, _ = s.do(t, http.MethodDelete, "/api/issues/"+issueID, s.token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/issues/"+issueID+"/comments", s.token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAPI_WordReport(t *testing.T) {
	s := newServer(t)
	s.do(t, http.MethodPost, "/api/issues", s.token, map[string]string{"title": "Rapor kaydı", "priority": "HIGH"})

	req := httptest.NewRequest(http.MethodPost, "/api/reports/word", strings.NewReader(`{"priority":"HIGH"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `attachment; filename="eksiklik-raporu-`)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "wordprocessingml")

	resp, _ = s.do(t, http.MethodPost, "/api/reports/word", s.token, map[string]string{"priority": "ACIL"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodGet, "/api/olmayan", s.token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func contains(items []map[string]interface{}, want uint) bool {
	for _, item := range items {
		if v, ok := item["id"].(float64); ok && uint(v) == want {
			return true
		}
	}
	return false
}

func TestAPI_EntityLifecycle(t *testing.T) {
	s := newServer(t)
	h := testutil.CreateHierarchy(t, s.db)

	tests := []struct {
		path       string
		body       map[string]interface{}
		softDelete bool
	}{
		{"/api/blocks", map[string]interface{}{"siteId": h.Site.ID, "name": "Z Blok"}, true},
		{"/api/floors", map[string]interface{}{"blockId": h.Block.ID, "name": "7. Kat", "number": 7}, true},
		{"/api/floor-areas", map[string]interface{}{"floorId": h.Floor.ID, "name": "Yangın Merdiveni"}, true},
		{"/api/apartments", map[string]interface{}{"floorId": h.Floor.ID, "number": "199"}, true},
		{"/api/common-areas", map[string]interface{}{"siteId": h.Site.ID, "name": "Kapalı Havuz", "type": "POOL"}, true},
		{"/api/inventory", map[string]interface{}{"siteId": h.Site.ID, "name": "Çim Biçme Makinesi"}, true},
		{"/api/maintenance", map[string]interface{}{"siteId": h.Site.ID, "title": "Asansör bakımı", "date": "2024-05-01"}, true},
		{"/api/users", map[string]interface{}{"email": "sakin@site.test", "password": "gizli123"}, true},
		{"/api/transactions", map[string]interface{}{"siteId": h.Site.ID, "type": "INCOME", "amount": 1500, "date": "2024-05-01"}, false},
		{"/api/meter-readings", map[string]interface{}{"siteId": h.Site.ID, "type": "WATER", "meterNumber": "SU-42", "currentReading": 120}, false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/api/"), func(t *testing.T) {
			resp, created := s.do(t, http.MethodPost, tt.path, s.token, tt.body)
			require.Equal(t, fiber.StatusCreated, resp.StatusCode, "%v", created)
			itemID := id(t, created)
			item := tt.path + "/" + itoa(itemID)

			assert.True(t, contains(s.list(t, tt.path), itemID))
			resp, _ = s.do(t, http.MethodGet, item, s.token, nil)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			resp, _ = s.do(t, http.MethodDelete, item, s.token, nil)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.False(t, contains(s.list(t, tt.path), itemID))
			resp, _ = s.do(t, http.MethodGet, item, s.token, nil)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

			resp, _ = s.do(t, http.MethodDelete, item, s.token, nil)
			if tt.softDelete {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			} else {
				assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			}
		})
	}

	resp, _ := s.do(t, http.MethodDelete, "/api/apartments/99999", s.token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
