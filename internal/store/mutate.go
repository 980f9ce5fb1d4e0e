package store

import (
	"fmt"
	"time"

	"property-dashboard/internal/models"
)

// PropertyInput carries the caller-supplied fields for a new property
type PropertyInput struct {
	Name        string
	Address     string
	Description string
}

// UnitInput carries the caller-supplied fields for a new unit
type UnitInput struct {
	UnitNumber string
	Floor      int
	Size       int
	BaseRent   int
	Status     models.UnitStatus // defaults to available
}

// TenantInput carries the caller-supplied fields for a new tenant
type TenantInput struct {
	Name          string
	Email         string
	Phone         string
	BusinessType  string
	ContactPerson string
}

// LeaseInput carries the caller-supplied fields for a new lease. The
// property id is derived from the unit, never supplied.
type LeaseInput struct {
	TenantID      string
	UnitID        string
	StartDate     time.Time
	EndDate       time.Time
	MonthlyRent   int
	DepositAmount int
}

// PaymentInput carries the caller-supplied fields for a recorded payment
type PaymentInput struct {
	LeaseID   string
	Amount    int
	Date      time.Time
	Reference string
}

// MaintenanceInput carries the caller-supplied fields for a new maintenance request
type MaintenanceInput struct {
	TenantID    string
	UnitID      string
	Category    models.MaintenanceCategory
	Description string
	Urgency     models.MaintenanceUrgency // defaults to medium
}

// CreateProperty appends a new active property with zero units
func (s *Store) CreateProperty(in PropertyInput, now time.Time) (models.Property, error) {
	if in.Name == "" {
		return models.Property{}, fmt.Errorf("property name is required: %w", ErrInvalidInput)
	}
	if in.Address == "" {
		return models.Property{}, fmt.Errorf("property address is required: %w", ErrInvalidInput)
	}

	p := models.Property{
		ID:          newID("prop"),
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		TotalUnits:  0,
		Status:      models.PropertyStatusActive,
		CreatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = append(s.properties, p)
	return p, nil
}

// CreateUnit appends a new unit under the given property and increments the
// owning property's TotalUnits. This is the only cross-entity denormalization
// update in the system.
func (s *Store) CreateUnit(propertyID string, in UnitInput) (models.Unit, error) {
	if propertyID == "" {
		return models.Unit{}, fmt.Errorf("property id is required: %w", ErrInvalidInput)
	}
	if in.UnitNumber == "" {
		return models.Unit{}, fmt.Errorf("unit number is required: %w", ErrInvalidInput)
	}
	if in.Size <= 0 {
		return models.Unit{}, fmt.Errorf("unit size must be positive: %w", ErrInvalidInput)
	}
	if in.BaseRent <= 0 {
		return models.Unit{}, fmt.Errorf("base rent must be positive: %w", ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = models.UnitStatusAvailable
	}
	if !models.ValidUnitStatus(status) {
		return models.Unit{}, fmt.Errorf("unknown unit status %q: %w", status, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.propertyIndex(propertyID)
	if pi < 0 {
		return models.Unit{}, fmt.Errorf("property %q: %w", propertyID, ErrNotFound)
	}
	for _, u := range s.units {
		if u.PropertyID == propertyID && u.UnitNumber == in.UnitNumber {
			return models.Unit{}, fmt.Errorf("unit number %q already exists in property %q: %w",
				in.UnitNumber, propertyID, ErrInvalidInput)
		}
	}

	u := models.Unit{
		ID:         newID("unit"),
		PropertyID: propertyID,
		UnitNumber: in.UnitNumber,
		Floor:      in.Floor,
		Size:       in.Size,
		BaseRent:   in.BaseRent,
		Status:     status,
	}
	s.units = append(s.units, u)
	s.properties[pi].TotalUnits++
	return u, nil
}

// CreateTenant appends a new active tenant
func (s *Store) CreateTenant(in TenantInput) (models.Tenant, error) {
	if in.Name == "" {
		return models.Tenant{}, fmt.Errorf("tenant name is required: %w", ErrInvalidInput)
	}
	if in.Email == "" {
		return models.Tenant{}, fmt.Errorf("tenant email is required: %w", ErrInvalidInput)
	}

	t := models.Tenant{
		ID:            newID("tenant"),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		BusinessType:  in.BusinessType,
		ContactPerson: in.ContactPerson,
		Status:        models.TenantStatusActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append(s.tenants, t)
	return t, nil
}

// CreateLease appends a new active lease and marks the leased unit occupied
// in the same critical section, so the two can never be observed out of sync.
func (s *Store) CreateLease(in LeaseInput) (models.Lease, error) {
	if in.TenantID == "" {
		return models.Lease{}, fmt.Errorf("tenant id is required: %w", ErrInvalidInput)
	}
	if in.UnitID == "" {
		return models.Lease{}, fmt.Errorf("unit id is required: %w", ErrInvalidInput)
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return models.Lease{}, fmt.Errorf("lease start and end dates are required: %w", ErrInvalidInput)
	}
	if in.EndDate.Before(in.StartDate) {
		return models.Lease{}, fmt.Errorf("lease end date precedes start date: %w", ErrInvalidInput)
	}
	if in.MonthlyRent <= 0 {
		return models.Lease{}, fmt.Errorf("monthly rent must be positive: %w", ErrInvalidInput)
	}
	if in.DepositAmount < 0 {
		return models.Lease{}, fmt.Errorf("deposit amount must not be negative: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tenantIndex(in.TenantID) < 0 {
		return models.Lease{}, fmt.Errorf("tenant %q: %w", in.TenantID, ErrNotFound)
	}
	ui := s.unitIndex(in.UnitID)
	if ui < 0 {
		return models.Lease{}, fmt.Errorf("unit %q: %w", in.UnitID, ErrNotFound)
	}

	l := models.Lease{
		ID:            newID("lease"),
		TenantID:      in.TenantID,
		UnitID:        in.UnitID,
		PropertyID:    s.units[ui].PropertyID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		MonthlyRent:   in.MonthlyRent,
		DepositAmount: in.DepositAmount,
		Status:        models.LeaseStatusActive,
	}
	s.leases = append(s.leases, l)
	s.units[ui].Status = models.UnitStatusOccupied
	return l, nil
}

// TerminateLease marks an active lease terminated and frees its unit back to
// available. Terminating a non-active lease is rejected.
func (s *Store) TerminateLease(id string) (models.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	li := s.leaseIndex(id)
	if li < 0 {
		return models.Lease{}, fmt.Errorf("lease %q: %w", id, ErrNotFound)
	}
	if s.leases[li].Status != models.LeaseStatusActive {
		return models.Lease{}, fmt.Errorf("lease %q is %s: %w", id, s.leases[li].Status, ErrInvalidTransition)
	}

	s.leases[li].Status = models.LeaseStatusTerminated
	if ui := s.unitIndex(s.leases[li].UnitID); ui >= 0 {
		s.units[ui].Status = models.UnitStatusAvailable
	}
	return s.leases[li], nil
}

// RecordPayment appends a completed payment against a lease. This models
// recording a payment already received, not initiating one.
func (s *Store) RecordPayment(in PaymentInput) (models.Payment, error) {
	if in.LeaseID == "" {
		return models.Payment{}, fmt.Errorf("lease id is required: %w", ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return models.Payment{}, fmt.Errorf("payment amount must be positive: %w", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return models.Payment{}, fmt.Errorf("payment date is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.leaseIndex(in.LeaseID) < 0 {
		return models.Payment{}, fmt.Errorf("lease %q: %w", in.LeaseID, ErrNotFound)
	}

	p := models.Payment{
		ID:        newID("pay"),
		LeaseID:   in.LeaseID,
		Amount:    in.Amount,
		Date:      in.Date,
		Reference: in.Reference,
		Status:    models.PaymentStatusCompleted,
	}
	s.payments = append(s.payments, p)
	return p, nil
}

// SubmitMaintenanceRequest prepends a new request so the collection stays
// most-recent-first, unlike the other creators which append.
func (s *Store) SubmitMaintenanceRequest(in MaintenanceInput, now time.Time) (models.MaintenanceRequest, error) {
	if in.TenantID == "" {
		return models.MaintenanceRequest{}, fmt.Errorf("tenant id is required: %w", ErrInvalidInput)
	}
	if in.UnitID == "" {
		return models.MaintenanceRequest{}, fmt.Errorf("unit id is required: %w", ErrInvalidInput)
	}
	if in.Description == "" {
		return models.MaintenanceRequest{}, fmt.Errorf("description is required: %w", ErrInvalidInput)
	}
	if !models.ValidMaintenanceCategory(in.Category) {
		return models.MaintenanceRequest{}, fmt.Errorf("unknown category %q: %w", in.Category, ErrInvalidInput)
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = models.MaintenanceUrgencyMedium
	}
	if !models.ValidMaintenanceUrgency(urgency) {
		return models.MaintenanceRequest{}, fmt.Errorf("unknown urgency %q: %w", urgency, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tenantIndex(in.TenantID) < 0 {
		return models.MaintenanceRequest{}, fmt.Errorf("tenant %q: %w", in.TenantID, ErrNotFound)
	}
	if s.unitIndex(in.UnitID) < 0 {
		return models.MaintenanceRequest{}, fmt.Errorf("unit %q: %w", in.UnitID, ErrNotFound)
	}

	m := models.MaintenanceRequest{
		ID:          newID("maint"),
		TenantID:    in.TenantID,
		UnitID:      in.UnitID,
		Category:    in.Category,
		Description: in.Description,
		Urgency:     urgency,
		Status:      models.MaintenanceStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.maintenance = append([]models.MaintenanceRequest{m}, s.maintenance...)
	return m, nil
}

// UpdateMaintenanceStatus moves a request along the workflow, bumping
// UpdatedAt and setting notes when provided. The transition table is enforced
// here rather than trusted to callers.
func (s *Store) UpdateMaintenanceStatus(id string, target models.MaintenanceStatus, notes string, now time.Time) (models.MaintenanceRequest, error) {
	switch target {
	case models.MaintenanceStatusInProgress, models.MaintenanceStatusCompleted, models.MaintenanceStatusCancelled:
	default:
		return models.MaintenanceRequest{}, fmt.Errorf("unknown target status %q: %w", target, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mi := s.maintenanceIndex(id)
	if mi < 0 {
		return models.MaintenanceRequest{}, fmt.Errorf("maintenance request %q: %w", id, ErrNotFound)
	}
	current := s.maintenance[mi].Status
	if !current.CanTransitionTo(target) {
		return models.MaintenanceRequest{}, fmt.Errorf("cannot move %q from %s to %s: %w",
			id, current, target, ErrInvalidTransition)
	}

	s.maintenance[mi].Status = target
	s.maintenance[mi].UpdatedAt = now
	if notes != "" {
		s.maintenance[mi].Notes = notes
	}
	return s.maintenance[mi], nil
}
