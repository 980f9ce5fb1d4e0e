package models

import "time"

type Lease struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	UnitID   string `json:"unit_id"`

	// Denormalized from the referenced unit so "leases of a property" never
	// needs a join. The store derives it from the unit on create.
	PropertyID string `json:"property_id"`

	StartDate     time.Time   `json:"start_date"`
	EndDate       time.Time   `json:"end_date"` // always >= StartDate
	MonthlyRent   int         `json:"monthly_rent"`
	DepositAmount int         `json:"deposit_amount"`
	Status        LeaseStatus `json:"status"`
}

// LeaseStatus is the lifecycle status of a lease
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusTerminated LeaseStatus = "terminated"
	LeaseStatusExpired    LeaseStatus = "expired"
)

// IsActive reports whether the lease is currently in force
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}
