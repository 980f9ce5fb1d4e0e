package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

func TestMetrics_DemoDataset(t *testing.T) {
	s := setupDemoStore(t)

	m := Metrics(s)

	assert.Equal(t, 3, m.TotalProperties)
	assert.Equal(t, 10, m.TotalUnits)
	assert.Equal(t, 5, m.OccupiedUnits)
	assert.Equal(t, 50, m.OccupancyRate)
	assert.Equal(t, 3, m.AvailableUnits)
	assert.Equal(t, 2500+4500+3200+1200+5000, m.TotalMonthlyRent)
	assert.Equal(t, 1200, m.PendingAmount)
	assert.Equal(t, 0, m.OverdueAmount)
	assert.Equal(t, 3, m.OpenMaintenance)
	assert.Equal(t, 5, m.ActiveLeases)
	assert.Equal(t, 5, m.ActiveTenants)
}

func TestMetrics_EmptyStoreHasNoDivisionByZero(t *testing.T) {
	s := store.New()

	m := Metrics(s)
	assert.Equal(t, 0, m.TotalUnits)
	assert.Equal(t, 0, m.OccupancyRate)
}

func TestMetrics_OccupancyRateRange(t *testing.T) {
	s := store.New()
	p, err := s.CreateProperty(store.PropertyInput{Name: "P", Address: "A"}, time.Now())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.CreateUnit(p.ID, store.UnitInput{
			UnitNumber: string(rune('A' + i)),
			Size:       500,
			BaseRent:   1000,
			Status:     models.UnitStatusOccupied,
		})
		require.NoError(t, err)
	}

	m := Metrics(s)
	assert.Equal(t, 100, m.OccupancyRate)
	assert.GreaterOrEqual(t, m.OccupancyRate, 0)
	assert.LessOrEqual(t, m.OccupancyRate, 100)
}

func TestMetrics_RateRoundsToNearestInteger(t *testing.T) {
	s := store.New()
	p, err := s.CreateProperty(store.PropertyInput{Name: "P", Address: "A"}, time.Now())
	require.NoError(t, err)

	statuses := []models.UnitStatus{
		models.UnitStatusOccupied,
		models.UnitStatusOccupied,
		models.UnitStatusAvailable,
	}
	for i, st := range statuses {
		_, err := s.CreateUnit(p.ID, store.UnitInput{
			UnitNumber: string(rune('A' + i)),
			Size:       500,
			BaseRent:   1000,
			Status:     st,
		})
		require.NoError(t, err)
	}

	// 2/3 = 66.67 -> 67
	assert.Equal(t, 67, Metrics(s).OccupancyRate)
}

func TestOccupancyByProperty(t *testing.T) {
	s := setupDemoStore(t)

	occ := OccupancyByProperty(s)
	require.Len(t, occ, 3)

	assert.Equal(t, PropertyOccupancy{PropertyID: "prop-1", Name: "Downtown Business Center", Occupied: 2, Total: 4}, occ[0])
	assert.Equal(t, PropertyOccupancy{PropertyID: "prop-2", Name: "Westside Mall", Occupied: 1, Total: 3}, occ[1])
	assert.Equal(t, PropertyOccupancy{PropertyID: "prop-3", Name: "Tech Hub Plaza", Occupied: 2, Total: 3}, occ[2])
}

func TestOccupancyByProperty_NoUnits(t *testing.T) {
	s := store.New()
	p, err := s.CreateProperty(store.PropertyInput{Name: "Empty Lot", Address: "0 Nowhere"}, time.Now())
	require.NoError(t, err)

	occ := OccupancyByProperty(s)
	require.Len(t, occ, 1)
	assert.Equal(t, p.ID, occ[0].PropertyID)
	assert.Equal(t, 0, occ[0].Total)
	assert.Equal(t, 0, occ[0].Occupied)
}

func TestRevenueTrend(t *testing.T) {
	s := setupDemoStore(t)
	now := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	trend := RevenueTrend(s, now, 3)
	require.Len(t, trend, 3)

	assert.Equal(t, "2024-11", trend[0].Month)
	assert.Equal(t, 4500, trend[0].Revenue)
	assert.Equal(t, "2024-12", trend[1].Month)
	assert.Equal(t, 2500+5000, trend[1].Revenue)
	assert.Equal(t, "2025-01", trend[2].Month)
	assert.Equal(t, 2500+4500+3200, trend[2].Revenue, "pending payments are excluded")
}

func TestRevenueTrend_EmptyWindow(t *testing.T) {
	s := store.New()

	trend := RevenueTrend(s, time.Now(), 2)
	require.Len(t, trend, 2)
	assert.Equal(t, 0, trend[0].Revenue)
	assert.Equal(t, 0, trend[1].Revenue)

	assert.Nil(t, RevenueTrend(s, time.Now(), 0))
}
