// Package query holds the pure derivation layer: filtered views, cross-entity
// joins, rent schedules and portfolio metrics computed from store snapshots.
// Nothing here mutates its inputs.
package query

import (
	"sort"
	"strings"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

// FilterAll is the sentinel filter value meaning "no constraint". An empty
// string is treated the same way.
const FilterAll = "all"

// PropertyFilter selects properties by free-text search and status
type PropertyFilter struct {
	Search string
	Status string
}

// UnitFilter selects units by free-text search, owning property and status
type UnitFilter struct {
	Search     string
	PropertyID string
	Status     string
}

// TenantFilter selects tenants by free-text search, status and business type
type TenantFilter struct {
	Search       string
	Status       string
	BusinessType string
}

// LeaseFilter selects leases by tenant-name search, status and property
type LeaseFilter struct {
	Search     string
	Status     string
	PropertyID string
}

// PaymentFilter selects payments by tenant-name or reference search and status
type PaymentFilter struct {
	Search string
	Status string
}

// MaintenanceFilter selects maintenance requests by tenant-name or
// description search, status and urgency
type MaintenanceFilter struct {
	Search  string
	Status  string
	Urgency string
}

// matchText reports whether the query is a case-insensitive substring of any
// field. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchEnum reports whether value satisfies an enum constraint, where "" and
// "all" mean unconstrained.
func matchEnum(constraint, value string) bool {
	return constraint == "" || constraint == FilterAll || constraint == value
}

// FilterProperties returns the properties matching all predicates, in
// insertion order. Search covers name and address.
func FilterProperties(s *store.Store, f PropertyFilter) []models.Property {
	var out []models.Property
	for _, p := range s.Properties() {
		if !matchText(f.Search, p.Name, p.Address) {
			continue
		}
		if !matchEnum(f.Status, string(p.Status)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterUnits returns the units matching all predicates, in insertion order.
// Search covers the unit number.
func FilterUnits(s *store.Store, f UnitFilter) []models.Unit {
	var out []models.Unit
	for _, u := range s.Units() {
		if !matchText(f.Search, u.UnitNumber) {
			continue
		}
		if !matchEnum(f.PropertyID, u.PropertyID) {
			continue
		}
		if !matchEnum(f.Status, string(u.Status)) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// FilterTenants returns the tenants matching all predicates, in insertion
// order. Search covers name, email and contact person.
func FilterTenants(s *store.Store, f TenantFilter) []models.Tenant {
	var out []models.Tenant
	for _, t := range s.Tenants() {
		if !matchText(f.Search, t.Name, t.Email, t.ContactPerson) {
			continue
		}
		if !matchEnum(f.Status, string(t.Status)) {
			continue
		}
		if !matchEnum(f.BusinessType, t.BusinessType) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterLeases returns the leases matching all predicates, in insertion
// order. Search covers the name of the tenant holding the lease; a lease with
// a dangling tenant id only matches an empty search.
func FilterLeases(s *store.Store, f LeaseFilter) []models.Lease {
	var out []models.Lease
	for _, l := range s.Leases() {
		tenantName := ""
		if t, err := s.TenantByID(l.TenantID); err == nil {
			tenantName = t.Name
		}
		if !matchText(f.Search, tenantName) {
			continue
		}
		if !matchEnum(f.Status, string(l.Status)) {
			continue
		}
		if !matchEnum(f.PropertyID, l.PropertyID) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterPayments returns the payments matching all predicates, sorted by
// payment date, most recent first. Search covers the paying tenant's name and
// the payment reference.
func FilterPayments(s *store.Store, f PaymentFilter) []models.Payment {
	var out []models.Payment
	for _, p := range s.Payments() {
		tenantName := ""
		if l, err := s.LeaseByID(p.LeaseID); err == nil {
			if t, err := s.TenantByID(l.TenantID); err == nil {
				tenantName = t.Name
			}
		}
		if !matchText(f.Search, tenantName, p.Reference) {
			continue
		}
		if !matchEnum(f.Status, string(p.Status)) {
			continue
		}
		out = append(out, p)
	}
	SortPaymentsByDate(out)
	return out
}

// FilterMaintenance returns the maintenance requests matching all predicates
// in the composite display order. Search covers the requesting tenant's name
// and the request description.
func FilterMaintenance(s *store.Store, f MaintenanceFilter) []models.MaintenanceRequest {
	var out []models.MaintenanceRequest
	for _, m := range s.MaintenanceRequests() {
		tenantName := ""
		if t, err := s.TenantByID(m.TenantID); err == nil {
			tenantName = t.Name
		}
		if !matchText(f.Search, tenantName, m.Description) {
			continue
		}
		if !matchEnum(f.Status, string(m.Status)) {
			continue
		}
		if !matchEnum(f.Urgency, string(m.Urgency)) {
			continue
		}
		out = append(out, m)
	}
	SortMaintenance(out)
	return out
}

// SortPaymentsByDate orders payments in place, most recent first
func SortPaymentsByDate(payments []models.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
}

// SortMaintenance orders requests in place by status rank, then urgency rank,
// then creation date descending. Open work always sorts ahead of finished
// work regardless of urgency.
func SortMaintenance(requests []models.MaintenanceRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		a, b := requests[i], requests[j]
		if a.Status.Rank() != b.Status.Rank() {
			return a.Status.Rank() < b.Status.Rank()
		}
		if a.Urgency.Rank() != b.Urgency.Rank() {
			return a.Urgency.Rank() < b.Urgency.Rank()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
