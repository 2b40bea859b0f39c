package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/internal/testutil"
	"siteyonetim.app/models"
)

func TestLocationResolver_ResolveApartment(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.locations.Resolve(env.ctx, atApartment(env.h.Apartment.ID))
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, models.LocationRef{Kind: models.LocationApartment, ID: env.h.Apartment.ID}, loc.Ref)
	assert.Equal(t, env.h.Site.ID, *loc.SiteID)
	assert.Equal(t, env.h.Block.ID, *loc.BlockID)
	assert.Equal(t, "Test Sitesi > A Blok > 1. Kat > Daire 101", loc.Path)
}

func TestLocationResolver_LegacyFieldsPickMostSpecific(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.locations.Resolve(env.ctx, LocationFields{
		SiteID:      uintPtr(env.h.Site.ID),
		BlockID:     uintPtr(env.h.Block.ID),
		FloorID:     uintPtr(env.h.Floor.ID),
		FloorAreaID: uintPtr(env.h.FloorArea.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LocationFloorArea, loc.Ref.Kind)
	assert.Equal(t, env.h.FloorArea.ID, loc.Ref.ID)
	assert.Equal(t, "Test Sitesi > A Blok > 1. Kat > Merdiven", loc.Path)
}

func TestLocationResolver_CommonAreaHasNoBlock(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.locations.Resolve(env.ctx, LocationFields{CommonAreaID: uintPtr(env.h.CommonArea.ID)})
	require.NoError(t, err)
	assert.Equal(t, env.h.Site.ID, *loc.SiteID)
	assert.Nil(t, loc.BlockID)
	assert.Equal(t, "Test Sitesi > Havuz", loc.Path)
}

func TestLocationResolver_Rejects(t *testing.T) {
	env := newTestEnv(t)
	otherBlock := testutil.CreateBlock(t, env.db, env.h.Site.ID, "B Blok")

	tests := []struct {
		name   string
		fields LocationFields
		want   error
	}{
		{
			name:   "ata başka bloğa ait",
			fields: LocationFields{BlockID: uintPtr(otherBlock.ID), ApartmentID: uintPtr(env.h.Apartment.ID)},
			want:   ErrLocationInconsistent,
		},
		{
			name:   "daire ve kat alanı birlikte",
			fields: LocationFields{ApartmentID: uintPtr(env.h.Apartment.ID), FloorAreaID: uintPtr(env.h.FloorArea.ID)},
			want:   ErrLocationInconsistent,
		},
		{
			name:   "ortak alan ve blok birlikte",
			fields: LocationFields{CommonAreaID: uintPtr(env.h.CommonArea.ID), BlockID: uintPtr(env.h.Block.ID)},
			want:   ErrLocationInconsistent,
		},
		{
			name:   "nesne ile eski alan çelişiyor",
			fields: LocationFields{Location: &models.LocationRef{Kind: models.LocationBlock, ID: env.h.Block.ID}, BlockID: uintPtr(otherBlock.ID)},
			want:   ErrLocationInconsistent,
		},
		{
			name:   "bilinmeyen tür",
			fields: LocationFields{Location: &models.LocationRef{Kind: "room", ID: 1}},
			want:   ErrInvalidLocation,
		},
		{
			name:   "olmayan daire",
			fields: atApartment(9999),
			want:   ErrLocationInactive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.locations.Resolve(env.ctx, tt.fields)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLocationResolver_InactiveAncestor(t *testing.T) {
	env := newTestEnv(t)
	env.deactivate(t, &models.Block{}, env.h.Block.ID)

	_, err := env.locations.Resolve(env.ctx, atApartment(env.h.Apartment.ID))
	assert.ErrorIs(t, err, ErrLocationInactive)

	// Görüntüleme yolu pasif düğümleri de gösterir
	path := env.locations.Path(env.ctx, models.LocationRef{Kind: models.LocationApartment, ID: env.h.Apartment.ID}, nil)
	assert.Equal(t, "Test Sitesi > A Blok > 1. Kat > Daire 101", path)
}

func TestLocationResolver_EmptyFields(t *testing.T) {
	env := newTestEnv(t)

	loc, err := env.locations.Resolve(env.ctx, LocationFields{})
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Equal(t, "-", env.locations.Path(env.ctx, models.LocationRef{}, nil))
}
