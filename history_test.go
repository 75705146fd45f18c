package gearmatch

import (
	"context"
	"testing"
	"time"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistoryDB(t *testing.T) *HistoryDB {
	t.Helper()

	db, err := NewMemoryHistoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Twenty July bookings at steady demand, enough to train on.
	var reservations []*core.Reservation
	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		start := base.AddDate(0, 0, i)
		reservations = append(reservations, &core.Reservation{
			Id:         core.ID(i + 1),
			MaterialId: 7,
			ClientId:   core.ID(100 + i),
			Quantity:   3,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 2),
			Status:     core.StatusConfirmed,
		})
	}
	materials := []*core.Material{
		{Id: 7, Name: "Camera Canon R6", Category: "camera", Stock: 10},
	}

	require.NoError(t, db.Seed(context.Background(), reservations, materials))
	return db
}

func TestHistoryDBSeedAndForecast(t *testing.T) {
	db := seedHistoryDB(t)
	ctx := context.Background()

	all, err := db.ReservationRepository().GetAllReservations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	material, err := db.MaterialRepository().GetMaterial(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Camera Canon R6", material.Name)

	forecaster, err := db.NewForecaster(ctx)
	require.NoError(t, err)
	require.True(t, forecaster.Trained())

	forecast, err := forecaster.Forecast(7,
		time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Camera Canon R6", forecast.MaterialName)
	assert.Len(t, forecast.Daily, 5)
}

func TestHistoryDBForecasterNeedsHistory(t *testing.T) {
	db, err := NewMemoryHistoryDB()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.NewForecaster(context.Background())
	assert.ErrorIs(t, err, planning.ErrInsufficientHistory)
}
