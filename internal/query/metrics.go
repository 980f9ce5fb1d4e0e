package query

import (
	"math"
	"time"

	"property-dashboard/internal/models"
	"property-dashboard/internal/store"
)

// DashboardMetrics is the portfolio-wide aggregate shown on the dashboard.
// Pending and overdue payment totals are reported separately.
type DashboardMetrics struct {
	TotalProperties  int `json:"total_properties"`
	TotalUnits       int `json:"total_units"`
	OccupiedUnits    int `json:"occupied_units"`
	OccupancyRate    int `json:"occupancy_rate"` // rounded percentage, 0 when no units
	AvailableUnits   int `json:"available_units"`
	TotalMonthlyRent int `json:"total_monthly_rent"` // sum over active leases
	PendingAmount    int `json:"pending_amount"`
	OverdueAmount    int `json:"overdue_amount"`
	OpenMaintenance  int `json:"open_maintenance"` // new or in-progress
	ActiveLeases     int `json:"active_leases"`
	ActiveTenants    int `json:"active_tenants"`
}

// Metrics aggregates the dashboard numbers from the current store contents
func Metrics(s *store.Store) DashboardMetrics {
	m := DashboardMetrics{
		TotalProperties: len(s.Properties()),
	}

	units := s.Units()
	m.TotalUnits = len(units)
	for _, u := range units {
		switch u.Status {
		case models.UnitStatusOccupied:
			m.OccupiedUnits++
		case models.UnitStatusAvailable:
			m.AvailableUnits++
		}
	}
	if m.TotalUnits > 0 {
		m.OccupancyRate = int(math.Round(float64(m.OccupiedUnits) / float64(m.TotalUnits) * 100))
	}

	for _, l := range s.Leases() {
		if l.Status == models.LeaseStatusActive {
			m.ActiveLeases++
			m.TotalMonthlyRent += l.MonthlyRent
		}
	}

	for _, p := range s.Payments() {
		switch p.Status {
		case models.PaymentStatusPending:
			m.PendingAmount += p.Amount
		case models.PaymentStatusOverdue:
			m.OverdueAmount += p.Amount
		}
	}

	for _, r := range s.MaintenanceRequests() {
		if r.Status == models.MaintenanceStatusNew || r.Status == models.MaintenanceStatusInProgress {
			m.OpenMaintenance++
		}
	}

	for _, t := range s.Tenants() {
		if t.Status == models.TenantStatusActive {
			m.ActiveTenants++
		}
	}

	return m
}

// PropertyOccupancy is one slice of the occupancy-by-property breakdown
type PropertyOccupancy struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Occupied   int    `json:"occupied"`
	Total      int    `json:"total"`
}

// OccupancyByProperty counts occupied and total units per property, in
// property insertion order. Properties with no units report 0/0.
func OccupancyByProperty(s *store.Store) []PropertyOccupancy {
	var out []PropertyOccupancy
	for _, p := range s.Properties() {
		entry := PropertyOccupancy{PropertyID: p.ID, Name: p.Name}
		for _, u := range s.UnitsByProperty(p.ID) {
			entry.Total++
			if u.Status == models.UnitStatusOccupied {
				entry.Occupied++
			}
		}
		out = append(out, entry)
	}
	return out
}

// MonthRevenue is one point of the trailing revenue series
type MonthRevenue struct {
	Month   string `json:"month"` // formatted as 2006-01
	Revenue int    `json:"revenue"`
}

// RevenueTrend sums completed payment amounts per calendar month for the
// trailing months window ending at now, oldest month first. Months with no
// payments report zero.
func RevenueTrend(s *store.Store, now time.Time, months int) []MonthRevenue {
	if months <= 0 {
		return nil
	}

	payments := s.Payments()
	out := make([]MonthRevenue, 0, months)
	// Anchor on the first of the month so stepping back never skips short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := months - 1; i >= 0; i-- {
		ref := anchor.AddDate(0, -i, 0)
		point := MonthRevenue{Month: ref.Format("2006-01")}
		for _, p := range payments {
			if p.Status != models.PaymentStatusCompleted {
				continue
			}
			if p.Date.Year() == ref.Year() && p.Date.Month() == ref.Month() {
				point.Revenue += p.Amount
			}
		}
		out = append(out, point)
	}
	return out
}
