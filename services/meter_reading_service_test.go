package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/pkg/optional"
)

func TestMeterReadingService_PreviousDefaultsToLatestReading(t *testing.T) {
	env := newTestEnv(t)
	meters := env.svc.Meters

	first, err := meters.Create(env.ctx, MeterReadingInput{
		SiteID:         env.h.Site.ID,
		ApartmentID:    uintPtr(env.h.Apartment.ID),
		Type:           "WATER",
		MeterNumber:    "SU-101",
		CurrentReading: float(120.5),
		ReadingDate:    "2024-01-31",
	})
	require.NoError(t, err)
	assert.Zero(t, first.PreviousReading)
	assert.InDelta(t, 120.5, first.Consumption, 0.0001)

	second, err := meters.Create(env.ctx, MeterReadingInput{
		SiteID:         env.h.Site.ID,
		Type:           "WATER",
		MeterNumber:    "SU-101",
		CurrentReading: float(131),
		ReadingDate:    "2024-02-29",
	})
	require.NoError(t, err)
	assert.InDelta(t, 120.5, second.PreviousReading, 0.0001)
	assert.InDelta(t, 10.5, second.Consumption, 0.0001)
}

func TestMeterReadingService_UpdateRecomputesConsumption(t *testing.T) {
	env := newTestEnv(t)
	reading, err := env.svc.Meters.Create(env.ctx, MeterReadingInput{
		SiteID:          env.h.Site.ID,
		Type:            "ELECTRIC",
		MeterNumber:     "EL-1",
		PreviousReading: float(1000),
		CurrentReading:  float(1100),
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, reading.Consumption, 0.0001)

	updated, err := env.svc.Meters.Update(env.ctx, reading.ID, MeterReadingUpdateInput{CurrentReading: optional.Of(1250.0)})
	require.NoError(t, err)
	assert.InDelta(t, 1000, updated.PreviousReading, 0.0001)
	assert.InDelta(t, 250, updated.Consumption, 0.0001)

	renamed, err := env.svc.Meters.Update(env.ctx, reading.ID, MeterReadingUpdateInput{Location: optional.Of("Kazan dairesi")})
	require.NoError(t, err)
	assert.Equal(t, "Kazan dairesi", renamed.Location)
	assert.InDelta(t, 250, renamed.Consumption, 0.0001)
}

func TestMeterReadingService_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Meters.Create(env.ctx, MeterReadingInput{SiteID: env.h.Site.ID, Type: "STEAM", MeterNumber: "X", CurrentReading: float(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Meters.Create(env.ctx, MeterReadingInput{SiteID: env.h.Site.ID, Type: "GAS", MeterNumber: "X"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Meters.Create(env.ctx, MeterReadingInput{SiteID: 9999, Type: "GAS", MeterNumber: "X", CurrentReading: float(1)})
	assert.ErrorIs(t, err, ErrSiteInvalid)

	_, err = env.svc.Meters.Update(env.ctx, 9999, MeterReadingUpdateInput{Location: optional.Of("x")})
	assert.ErrorIs(t, err, ErrMeterReadingNotFound)
}
