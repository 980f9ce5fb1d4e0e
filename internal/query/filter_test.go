package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

func setupDemoStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.LoadDemoData()
	return s
}

func TestFilterProperties_SearchIsCaseInsensitive(t *testing.T) {
	s := setupDemoStore(t)

	got := FilterProperties(s, PropertyFilter{Search: "DOWNTOWN"})
	require.Len(t, got, 1)
	assert.Equal(t, "prop-1", got[0].ID)

	// Address matches too
	got = FilterProperties(s, PropertyFilter{Search: "west ave"})
	require.Len(t, got, 1)
	assert.Equal(t, "prop-2", got[0].ID)
}

func TestFilterProperties_AllSentinel(t *testing.T) {
	s := setupDemoStore(t)

	assert.Len(t, FilterProperties(s, PropertyFilter{Status: FilterAll}), 3)
	assert.Len(t, FilterProperties(s, PropertyFilter{}), 3)
	assert.Empty(t, FilterProperties(s, PropertyFilter{Status: "inactive"}))
}

func TestFilterUnits(t *testing.T) {
	s := setupDemoStore(t)

	got := FilterUnits(s, UnitFilter{PropertyID: "prop-1", Status: "occupied"})
	require.Len(t, got, 2)
	assert.Equal(t, "unit-1", got[0].ID)
	assert.Equal(t, "unit-3", got[1].ID)

	got = FilterUnits(s, UnitFilter{Search: "a1"})
	require.Len(t, got, 1)
	assert.Equal(t, "unit-5", got[0].ID)
}

func TestFilterTenants(t *testing.T) {
	s := setupDemoStore(t)

	// Search spans name, email and contact person
	got := FilterTenants(s, TenantFilter{Search: "sarah"})
	require.Len(t, got, 1)
	assert.Equal(t, "tenant-2", got[0].ID)

	got = FilterTenants(s, TenantFilter{BusinessType: "Technology"})
	assert.Len(t, got, 2)

	got = FilterTenants(s, TenantFilter{Search: "acme", BusinessType: "Retail"})
	assert.Empty(t, got, "predicates combine with AND")
}

func TestFilterLeases_SearchJoinsTenantName(t *testing.T) {
	s := setupDemoStore(t)

	got := FilterLeases(s, LeaseFilter{Search: "legal eagles"})
	require.Len(t, got, 1)
	assert.Equal(t, "lease-3", got[0].ID)

	got = FilterLeases(s, LeaseFilter{PropertyID: "prop-3"})
	assert.Len(t, got, 2)
}

func TestFilterPayments_SearchAndOrder(t *testing.T) {
	s := setupDemoStore(t)

	// Reference search
	got := FilterPayments(s, PaymentFilter{Search: "chq-10234"})
	require.Len(t, got, 1)
	assert.Equal(t, "pay-1", got[0].ID)

	// Tenant-name search joins through lease
	got = FilterPayments(s, PaymentFilter{Search: "bean & brew"})
	require.Len(t, got, 2)

	// Date descending
	got = FilterPayments(s, PaymentFilter{})
	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].Date.Before(got[i].Date), "payments must be newest first")
	}
}

func TestFilterComposition(t *testing.T) {
	s := setupDemoStore(t)

	// Applying predicates together equals intersecting individual results
	combined := FilterTenants(s, TenantFilter{Search: "o", Status: "active", BusinessType: "Technology"})

	bySearch := map[string]bool{}
	for _, tn := range FilterTenants(s, TenantFilter{Search: "o"}) {
		bySearch[tn.ID] = true
	}
	byType := map[string]bool{}
	for _, tn := range FilterTenants(s, TenantFilter{BusinessType: "Technology"}) {
		byType[tn.ID] = true
	}

	for _, tn := range combined {
		assert.True(t, bySearch[tn.ID] && byType[tn.ID])
	}
	for id := range bySearch {
		if byType[id] {
			found := false
			for _, tn := range combined {
				if tn.ID == id {
					found = true
				}
			}
			assert.True(t, found, "tenant %s satisfies both predicates but is missing from combined", id)
		}
	}
}

func TestSortMaintenance_StatusDominatesUrgency(t *testing.T) {
	requests := []models.MaintenanceRequest{
		{ID: "a", Status: models.MaintenanceStatusCompleted, Urgency: models.MaintenanceUrgencyCritical},
		{ID: "b", Status: models.MaintenanceStatusNew, Urgency: models.MaintenanceUrgencyLow},
	}

	SortMaintenance(requests)
	assert.Equal(t, "b", requests[0].ID, "new sorts ahead of completed regardless of urgency")
}

func TestSortMaintenance_FullOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []models.MaintenanceRequest{
		{ID: "old-new-high", Status: models.MaintenanceStatusNew, Urgency: models.MaintenanceUrgencyHigh, CreatedAt: base},
		{ID: "cancelled", Status: models.MaintenanceStatusCancelled, Urgency: models.MaintenanceUrgencyCritical, CreatedAt: base},
		{ID: "new-critical", Status: models.MaintenanceStatusNew, Urgency: models.MaintenanceUrgencyCritical, CreatedAt: base},
		{ID: "recent-new-high", Status: models.MaintenanceStatusNew, Urgency: models.MaintenanceUrgencyHigh, CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "in-progress", Status: models.MaintenanceStatusInProgress, Urgency: models.MaintenanceUrgencyCritical, CreatedAt: base},
	}

	SortMaintenance(requests)

	want := []string{"new-critical", "recent-new-high", "old-new-high", "in-progress", "cancelled"}
	for i, id := range want {
		assert.Equal(t, id, requests[i].ID, "position %d", i)
	}
}

func TestFilterMaintenance(t *testing.T) {
	s := setupDemoStore(t)

	got := FilterMaintenance(s, MaintenanceFilter{Status: "new"})
	require.Len(t, got, 2)
	// critical before medium within the same status
	assert.Equal(t, "maint-4", got[0].ID)
	assert.Equal(t, "maint-2", got[1].ID)

	got = FilterMaintenance(s, MaintenanceFilter{Search: "drain"})
	require.Len(t, got, 1)
	assert.Equal(t, "maint-2", got[0].ID)

	got = FilterMaintenance(s, MaintenanceFilter{Search: "acme corporation"})
	require.Len(t, got, 1)
	assert.Equal(t, "maint-1", got[0].ID)
}
