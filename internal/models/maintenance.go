package models

import "time"

type MaintenanceRequest struct {
	ID          string              `json:"id"`
	TenantID    string              `json:"tenant_id"`
	UnitID      string              `json:"unit_id"`
	Category    MaintenanceCategory `json:"category"`
	Description string              `json:"description"`
	Urgency     MaintenanceUrgency  `json:"urgency"`
	Status      MaintenanceStatus   `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"` // always >= CreatedAt
	Notes       string              `json:"notes,omitempty"`
}

// MaintenanceCategory classifies the kind of repair work requested
type MaintenanceCategory string

const (
	MaintenanceCategoryElectrical MaintenanceCategory = "electrical"
	MaintenanceCategoryPlumbing   MaintenanceCategory = "plumbing"
	MaintenanceCategoryHVAC       MaintenanceCategory = "hvac"
	MaintenanceCategoryStructural MaintenanceCategory = "structural"
	MaintenanceCategoryOther      MaintenanceCategory = "other"
)

// MaintenanceUrgency grades how quickly a request needs attention
type MaintenanceUrgency string

const (
	MaintenanceUrgencyLow      MaintenanceUrgency = "low"
	MaintenanceUrgencyMedium   MaintenanceUrgency = "medium"
	MaintenanceUrgencyHigh     MaintenanceUrgency = "high"
	MaintenanceUrgencyCritical MaintenanceUrgency = "critical"
)

// MaintenanceStatus is the workflow state of a request
type MaintenanceStatus string

const (
	MaintenanceStatusNew        MaintenanceStatus = "new"
	MaintenanceStatusInProgress MaintenanceStatus = "in-progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// Rank orders statuses for display: open work sorts ahead of finished work.
func (s MaintenanceStatus) Rank() int {
	switch s {
	case MaintenanceStatusNew:
		return 0
	case MaintenanceStatusInProgress:
		return 1
	case MaintenanceStatusCompleted:
		return 2
	case MaintenanceStatusCancelled:
		return 3
	}
	return 4
}

// IsTerminal reports whether no further transitions are allowed
func (s MaintenanceStatus) IsTerminal() bool {
	return s == MaintenanceStatusCompleted || s == MaintenanceStatusCancelled
}

// CanTransitionTo reports whether the workflow allows moving from s to target.
// Legal moves: new -> in-progress, new|in-progress -> cancelled,
// in-progress -> completed. Completed and cancelled are terminal.
func (s MaintenanceStatus) CanTransitionTo(target MaintenanceStatus) bool {
	switch s {
	case MaintenanceStatusNew:
		return target == MaintenanceStatusInProgress || target == MaintenanceStatusCancelled
	case MaintenanceStatusInProgress:
		return target == MaintenanceStatusCompleted || target == MaintenanceStatusCancelled
	}
	return false
}

// Rank orders urgencies for display, most urgent first.
func (u MaintenanceUrgency) Rank() int {
	switch u {
	case MaintenanceUrgencyCritical:
		return 0
	case MaintenanceUrgencyHigh:
		return 1
	case MaintenanceUrgencyMedium:
		return 2
	case MaintenanceUrgencyLow:
		return 3
	}
	return 4
}

// ValidMaintenanceCategory reports whether c is a known category
func ValidMaintenanceCategory(c MaintenanceCategory) bool {
	switch c {
	case MaintenanceCategoryElectrical, MaintenanceCategoryPlumbing,
		MaintenanceCategoryHVAC, MaintenanceCategoryStructural, MaintenanceCategoryOther:
		return true
	}
	return false
}

// ValidMaintenanceUrgency reports whether u is a known urgency
func ValidMaintenanceUrgency(u MaintenanceUrgency) bool {
	switch u {
	case MaintenanceUrgencyLow, MaintenanceUrgencyMedium,
		MaintenanceUrgencyHigh, MaintenanceUrgencyCritical:
		return true
	}
	return false
}
