package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

func TestRecentLeases(t *testing.T) {
	s := setupDemoStore(t)

	got := RecentLeases(s, 4)
	require.Len(t, got, 4)

	// Newest start dates first, oldest lease dropped by the cap
	want := []string{"lease-3", "lease-5", "lease-2", "lease-4"}
	for i, id := range want {
		assert.Equal(t, id, got[i].ID, "position %d", i)
	}

	// No cap returns the whole active set
	assert.Len(t, RecentLeases(s, 0), 5)
}

func TestRecentLeases_ExcludesTerminated(t *testing.T) {
	s := setupDemoStore(t)

	_, err := s.TerminateLease("lease-3")
	require.NoError(t, err)

	got := RecentLeases(s, 4)
	require.Len(t, got, 4)
	for _, l := range got {
		assert.NotEqual(t, "lease-3", l.ID)
		assert.Equal(t, models.LeaseStatusActive, l.Status)
	}
}

func TestOpenMaintenance(t *testing.T) {
	s := setupDemoStore(t)

	got := OpenMaintenance(s, 10)
	require.Len(t, got, 3, "completed requests stay out")

	// Newest submissions first
	want := []string{"maint-4", "maint-2", "maint-1"}
	for i, id := range want {
		assert.Equal(t, id, got[i].ID, "position %d", i)
	}

	got = OpenMaintenance(s, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "maint-4", got[0].ID)
	assert.Equal(t, "maint-2", got[1].ID)
}

func TestOpenMaintenance_NewSubmissionLeads(t *testing.T) {
	s := setupDemoStore(t)

	created, err := s.SubmitMaintenanceRequest(store.MaintenanceInput{
		TenantID:    "tenant-1",
		UnitID:      "unit-1",
		Category:    models.MaintenanceCategoryPlumbing,
		Description: "Leaking pipe under sink",
	}, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	got := OpenMaintenance(s, 4)
	require.Len(t, got, 4)
	assert.Equal(t, created.ID, got[0].ID)
}
