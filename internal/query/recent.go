package query

import (
	"sort"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

// RecentLeases returns active leases ordered by start date, most recent
// first, capped at limit. A limit of zero or less means no cap.
func RecentLeases(s *store.Store, limit int) []models.Lease {
	var out []models.Lease
	for _, l := range s.Leases() {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OpenMaintenance returns maintenance requests still in flight (new or
// in-progress) ordered by creation date, most recent first, capped at limit.
// A limit of zero or less means no cap.
func OpenMaintenance(s *store.Store, limit int) []models.MaintenanceRequest {
	var out []models.MaintenanceRequest
	for _, m := range s.MaintenanceRequests() {
		if !m.Status.IsTerminal() {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
