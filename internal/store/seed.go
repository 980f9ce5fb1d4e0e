package store

import (
	"time"

	"property-dashboard/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: bad date " + s)
	}
	return t
}

// LoadDemoData populates the store with the demo portfolio: three Toronto
// commercial properties with units, tenants, leases, payments and
// maintenance requests. Ids are stable so the dataset is addressable from
// tests and API clients.
func (s *Store) LoadDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.properties = []models.Property{
		{
			ID:          "prop-1",
			Name:        "Downtown Business Center",
			Address:     "123 Main Street, Toronto, ON",
			Description: "Premium office space in the heart of downtown",
			TotalUnits:  45,
			Status:      models.PropertyStatusActive,
			CreatedAt:   date("2024-01-15"),
		},
		{
			ID:          "prop-2",
			Name:        "Westside Mall",
			Address:     "456 West Ave, Toronto, ON",
			Description: "Major retail shopping center with high foot traffic",
			TotalUnits:  120,
			Status:      models.PropertyStatusActive,
			CreatedAt:   date("2023-06-20"),
		},
		{
			ID:          "prop-3",
			Name:        "Tech Hub Plaza",
			Address:     "789 Innovation Drive, Toronto, ON",
			Description: "Modern co-working and office spaces for tech companies",
			TotalUnits:  60,
			Status:      models.PropertyStatusActive,
			CreatedAt:   date("2024-03-10"),
		},
	}

	s.units = []models.Unit{
		{ID: "unit-1", PropertyID: "prop-1", UnitNumber: "101", Floor: 1, Size: 1200, BaseRent: 2500, Status: models.UnitStatusOccupied},
		{ID: "unit-2", PropertyID: "prop-1", UnitNumber: "102", Floor: 1, Size: 800, BaseRent: 1800, Status: models.UnitStatusAvailable},
		{ID: "unit-3", PropertyID: "prop-1", UnitNumber: "201", Floor: 2, Size: 1500, BaseRent: 3200, Status: models.UnitStatusOccupied},
		{ID: "unit-4", PropertyID: "prop-1", UnitNumber: "202", Floor: 2, Size: 1000, BaseRent: 2200, Status: models.UnitStatusReserved},
		{ID: "unit-5", PropertyID: "prop-2", UnitNumber: "A1", Floor: 1, Size: 2000, BaseRent: 4500, Status: models.UnitStatusOccupied},
		{ID: "unit-6", PropertyID: "prop-2", UnitNumber: "A2", Floor: 1, Size: 1800, BaseRent: 4000, Status: models.UnitStatusAvailable},
		{ID: "unit-7", PropertyID: "prop-2", UnitNumber: "B1", Floor: 2, Size: 1500, BaseRent: 3500, Status: models.UnitStatusMaintenance},
		{ID: "unit-8", PropertyID: "prop-3", UnitNumber: "S1", Floor: 1, Size: 500, BaseRent: 1200, Status: models.UnitStatusOccupied},
		{ID: "unit-9", PropertyID: "prop-3", UnitNumber: "S2", Floor: 1, Size: 600, BaseRent: 1400, Status: models.UnitStatusAvailable},
		{ID: "unit-10", PropertyID: "prop-3", UnitNumber: "L1", Floor: 2, Size: 2500, BaseRent: 5000, Status: models.UnitStatusOccupied},
	}

	s.tenants = []models.Tenant{
		{ID: "tenant-1", Name: "Acme Corporation", Email: "contact@acmecorp.com", Phone: "416-555-0101", BusinessType: "Technology", ContactPerson: "John Smith", Status: models.TenantStatusActive},
		{ID: "tenant-2", Name: "Bean & Brew Coffee", Email: "info@beanbrew.com", Phone: "416-555-0102", BusinessType: "Food & Beverage", ContactPerson: "Sarah Johnson", Status: models.TenantStatusActive},
		{ID: "tenant-3", Name: "Legal Eagles LLP", Email: "office@legaleagles.com", Phone: "416-555-0103", BusinessType: "Legal Services", ContactPerson: "Michael Brown", Status: models.TenantStatusActive},
		{ID: "tenant-4", Name: "Fashion Forward", Email: "hello@fashionforward.com", Phone: "416-555-0104", BusinessType: "Retail", ContactPerson: "Emily Davis", Status: models.TenantStatusActive},
		{ID: "tenant-5", Name: "StartUp Ventures", Email: "team@startupventures.com", Phone: "416-555-0105", BusinessType: "Technology", ContactPerson: "David Wilson", Status: models.TenantStatusActive},
	}

	s.leases = []models.Lease{
		{ID: "lease-1", TenantID: "tenant-1", UnitID: "unit-1", PropertyID: "prop-1", StartDate: date("2024-01-01"), EndDate: date("2026-12-31"), MonthlyRent: 2500, DepositAmount: 5000, Status: models.LeaseStatusActive},
		{ID: "lease-2", TenantID: "tenant-2", UnitID: "unit-5", PropertyID: "prop-2", StartDate: date("2024-03-01"), EndDate: date("2027-02-28"), MonthlyRent: 4500, DepositAmount: 9000, Status: models.LeaseStatusActive},
		{ID: "lease-3", TenantID: "tenant-3", UnitID: "unit-3", PropertyID: "prop-1", StartDate: date("2024-06-01"), EndDate: date("2025-05-31"), MonthlyRent: 3200, DepositAmount: 6400, Status: models.LeaseStatusActive},
		{ID: "lease-4", TenantID: "tenant-5", UnitID: "unit-8", PropertyID: "prop-3", StartDate: date("2024-02-15"), EndDate: date("2025-02-14"), MonthlyRent: 1200, DepositAmount: 2400, Status: models.LeaseStatusActive},
		{ID: "lease-5", TenantID: "tenant-4", UnitID: "unit-10", PropertyID: "prop-3", StartDate: date("2024-04-01"), EndDate: date("2026-03-31"), MonthlyRent: 5000, DepositAmount: 10000, Status: models.LeaseStatusActive},
	}

	s.payments = []models.Payment{
		{ID: "pay-1", LeaseID: "lease-1", Amount: 2500, Date: date("2025-01-05"), Reference: "CHQ-10234", Status: models.PaymentStatusCompleted},
		{ID: "pay-2", LeaseID: "lease-1", Amount: 2500, Date: date("2024-12-03"), Reference: "CHQ-10198", Status: models.PaymentStatusCompleted},
		{ID: "pay-3", LeaseID: "lease-2", Amount: 4500, Date: date("2025-01-10"), Reference: "EFT-8821", Status: models.PaymentStatusCompleted},
		{ID: "pay-4", LeaseID: "lease-3", Amount: 3200, Date: date("2025-01-02"), Reference: "CHQ-7645", Status: models.PaymentStatusCompleted},
		{ID: "pay-5", LeaseID: "lease-4", Amount: 1200, Date: date("2025-01-15"), Reference: "EFT-9012", Status: models.PaymentStatusPending},
		{ID: "pay-6", LeaseID: "lease-5", Amount: 5000, Date: date("2024-12-28"), Reference: "EFT-8900", Status: models.PaymentStatusCompleted},
		{ID: "pay-7", LeaseID: "lease-2", Amount: 4500, Date: date("2024-11-08"), Reference: "EFT-8750", Status: models.PaymentStatusCompleted},
	}

	s.maintenance = []models.MaintenanceRequest{
		{
			ID:          "maint-1",
			TenantID:    "tenant-1",
			UnitID:      "unit-1",
			Category:    models.MaintenanceCategoryHVAC,
			Description: "Air conditioning unit making loud noise and not cooling properly",
			Urgency:     models.MaintenanceUrgencyHigh,
			Status:      models.MaintenanceStatusInProgress,
			CreatedAt:   date("2025-01-20"),
			UpdatedAt:   date("2025-01-22"),
			Notes:       "Technician scheduled for Jan 25",
		},
		{
			ID:          "maint-2",
			TenantID:    "tenant-2",
			UnitID:      "unit-5",
			Category:    models.MaintenanceCategoryPlumbing,
			Description: "Slow drain in kitchen sink area",
			Urgency:     models.MaintenanceUrgencyMedium,
			Status:      models.MaintenanceStatusNew,
			CreatedAt:   date("2025-01-25"),
			UpdatedAt:   date("2025-01-25"),
		},
		{
			ID:          "maint-3",
			TenantID:    "tenant-3",
			UnitID:      "unit-3",
			Category:    models.MaintenanceCategoryElectrical,
			Description: "Flickering lights in conference room",
			Urgency:     models.MaintenanceUrgencyLow,
			Status:      models.MaintenanceStatusCompleted,
			CreatedAt:   date("2025-01-10"),
			UpdatedAt:   date("2025-01-15"),
			Notes:       "Replaced faulty ballast in fluorescent fixture",
		},
		{
			ID:          "maint-4",
			TenantID:    "tenant-5",
			UnitID:      "unit-8",
			Category:    models.MaintenanceCategoryStructural,
			Description: "Door handle broken, unable to lock office properly",
			Urgency:     models.MaintenanceUrgencyCritical,
			Status:      models.MaintenanceStatusNew,
			CreatedAt:   date("2025-01-28"),
			UpdatedAt:   date("2025-01-28"),
		},
	}
}
