package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/internal/testutil"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
)

func intPtr(v int) *int { return &v }

func TestSiteService_CreateAndSoftDelete(t *testing.T) {
	env := newTestEnv(t)

	site, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: "  Yeni Site ", City: "İzmir"})
	require.NoError(t, err)
	assert.Equal(t, "Yeni Site", site.Name)
	assert.True(t, site.IsActive)

	sites, err := env.svc.Sites.List(env.ctx, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Len(t, sites, 2)

	require.NoError(t, env.svc.Sites.Delete(env.ctx, site.ID))
	_, err = env.svc.Sites.Get(env.ctx, site.ID)
	assert.ErrorIs(t, err, ErrSiteNotFound)

	sites, err = env.svc.Sites.List(env.ctx, queryparams.ListParams{})
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, env.h.Site.ID, sites[0].ID)

	// Pasif kaydı tekrar silmek hata değildir, satır hâlâ veritabanındadır
	require.NoError(t, env.svc.Sites.Delete(env.ctx, site.ID))
	var stored models.Site
	require.NoError(t, env.db.First(&stored, site.ID).Error)
	assert.False(t, stored.IsActive)

	assert.ErrorIs(t, env.svc.Sites.Delete(env.ctx, 9999), ErrSiteNotFound)
}

func TestSiteService_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "name")

	_, err = env.svc.Sites.Update(env.ctx, env.h.Site.ID, SiteUpdateInput{Name: optional.Of("")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Sites.Update(env.ctx, 9999, SiteUpdateInput{City: optional.Of("Bursa")})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestSiteService_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	site, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: "Çamlık Evleri", Address: "Çınar Sk. 4", City: "Ankara"})
	require.NoError(t, err)

	updated, err := env.svc.Sites.Update(env.ctx, site.ID, SiteUpdateInput{District: optional.Of("Çankaya")})
	require.NoError(t, err)
	assert.Equal(t, "Çankaya", updated.District)
	assert.Equal(t, "Çamlık Evleri", updated.Name)
	assert.Equal(t, "Çınar Sk. 4", updated.Address)
	assert.Equal(t, "Ankara", updated.City)
}

func TestSiteService_SearchIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: "Deniz Konutları"})
	require.NoError(t, err)

	sites, err := env.svc.Sites.List(env.ctx, queryparams.ListParams{Search: "deniz"})
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "Deniz Konutları", sites[0].Name)
}

func TestSiteService_SearchFoldsTurkishCapitals(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"Isıtma Merkezi", "İstanbul Evleri", "Çamlık Sitesi"} {
		_, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: name})
		require.NoError(t, err)
	}

	tests := []struct {
		term string
		want string
	}{
		{"Isıtma", "Isıtma Merkezi"},
		{"ısıtma merkezi", "Isıtma Merkezi"},
		{"İstanbul Evleri", "İstanbul Evleri"},
		{"istanbul evleri", "İstanbul Evleri"},
		{"Çamlık", "Çamlık Sitesi"},
		{"çamlık", "Çamlık Sitesi"},
		{"ÇAMLIK", "Çamlık Sitesi"},
	}
	for _, tt := range tests {
		sites, err := env.svc.Sites.List(env.ctx, queryparams.ListParams{Search: tt.term})
		require.NoError(t, err, tt.term)
		require.Len(t, sites, 1, tt.term)
		assert.Equal(t, tt.want, sites[0].Name, tt.term)
	}

	sites, err := env.svc.Sites.List(env.ctx, queryparams.ListParams{Search: "isıtma"})
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestBlockService_RequiresActiveSite(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Blocks.Create(env.ctx, BlockInput{Name: "C Blok"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "siteId")

	_, err = env.svc.Blocks.Create(env.ctx, BlockInput{SiteID: 9999, Name: "C Blok"})
	assert.ErrorIs(t, err, ErrSiteInvalid)

	inactive := testutil.CreateSite(t, env.db, "Eski Site")
	env.deactivate(t, &models.Site{}, inactive.ID)
	_, err = env.svc.Blocks.Create(env.ctx, BlockInput{SiteID: inactive.ID, Name: "C Blok"})
	assert.ErrorIs(t, err, ErrSiteInvalid)

	block, err := env.svc.Blocks.Create(env.ctx, BlockInput{SiteID: env.h.Site.ID, Name: "C Blok", TotalFloors: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, block.TotalFloors)
	assert.True(t, block.IsActive)
}

func TestSiteService_CountsOnlyWhenComputed(t *testing.T) {
	env := newTestEnv(t)
	empty, err := env.svc.Sites.Create(env.ctx, SiteInput{Name: "Zeytin Sitesi"})
	require.NoError(t, err)

	sites, err := env.svc.Sites.List(env.ctx, queryparams.ListParams{Search: "Zeytin"})
	require.NoError(t, err)
	require.Len(t, sites, 1)
	require.Equal(t, empty.ID, sites[0].ID)
	require.NotNil(t, sites[0].BlockCount)
	assert.Equal(t, int64(0), *sites[0].BlockCount)
	body, err := json.Marshal(sites[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"blockCount":0`)

	blocks, err := env.svc.Blocks.List(env.ctx, queryparams.ListParams{SiteID: env.h.Site.ID})
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	require.NotNil(t, blocks[0].FloorCount)
	require.NotNil(t, blocks[0].Site)
	assert.Nil(t, blocks[0].Site.BlockCount)
	body, err = json.Marshal(blocks[0])
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"blockCount"`)
	assert.NotContains(t, string(body), `"assetCount"`)
}

func TestBlockService_ListBySite(t *testing.T) {
	env := newTestEnv(t)
	other := testutil.CreateSite(t, env.db, "Diğer Site")
	testutil.CreateBlock(t, env.db, other.ID, "Z Blok")

	blocks, err := env.svc.Blocks.List(env.ctx, queryparams.ListParams{SiteID: env.h.Site.ID})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "A Blok", blocks[0].Name)
}

func TestFloorService_CreateRequiresNumber(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Floors.Create(env.ctx, FloorInput{BlockID: env.h.Block.ID, Name: "Zemin Kat"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	floor, err := env.svc.Floors.Create(env.ctx, FloorInput{BlockID: env.h.Block.ID, Name: "Zemin Kat", Number: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, floor.Number)
}

func TestApartmentService_ScopedByFloor(t *testing.T) {
	env := newTestEnv(t)
	second := testutil.CreateFloor(t, env.db, env.h.Block.ID, 2)
	testutil.CreateApartment(t, env.db, second.ID, "201")

	apartments, err := env.svc.Apartments.List(env.ctx, queryparams.ListParams{FloorID: env.h.Floor.ID})
	require.NoError(t, err)
	require.Len(t, apartments, 1)
	assert.Equal(t, "101", apartments[0].Number)

	all, err := env.svc.Apartments.List(env.ctx, queryparams.ListParams{BlockID: env.h.Block.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestApartmentService_CreateDefaultsAndValidation(t *testing.T) {
	env := newTestEnv(t)

	apt, err := env.svc.Apartments.Create(env.ctx, ApartmentInput{FloorID: env.h.Floor.ID, Number: " 102 ", RoomCount: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "102", apt.Number)
	assert.Equal(t, models.ApartmentStatusEmpty, apt.Status)

	_, err = env.svc.Apartments.Create(env.ctx, ApartmentInput{FloorID: env.h.Floor.ID, Number: "103", OwnerEmail: "geçersiz"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	env.deactivate(t, &models.Floor{}, env.h.Floor.ID)
	_, err = env.svc.Apartments.Create(env.ctx, ApartmentInput{FloorID: env.h.Floor.ID, Number: "104"})
	assert.ErrorIs(t, err, ErrFloorInvalid)
}

func TestCommonAreaService_CreateUnderSite(t *testing.T) {
	env := newTestEnv(t)

	area, err := env.svc.CommonAreas.Create(env.ctx, CommonAreaInput{SiteID: env.h.Site.ID, Name: "Spor Salonu", Type: "GYM", Capacity: intPtr(20)})
	require.NoError(t, err)
	assert.True(t, area.IsActive)

	_, err = env.svc.CommonAreas.Create(env.ctx, CommonAreaInput{SiteID: env.h.Site.ID, Name: "Sera", Type: "GREENHOUSE"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
