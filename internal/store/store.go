package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"property-dashboard/internal/models"
)

// Store owns the six entity collections and is the single serialization
// point for reads and writes. Collections keep insertion order. Every read
// returns a copy, so callers never alias store-owned memory.
type Store struct {
	mu sync.RWMutex

	properties  []models.Property
	units       []models.Unit
	tenants     []models.Tenant
	leases      []models.Lease
	payments    []models.Payment
	maintenance []models.MaintenanceRequest
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// newID returns a fresh collection-scoped identifier. UUID-based rather than
// timestamp-based so rapid successive creations cannot collide.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Properties returns a snapshot of all properties in insertion order
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Property(nil), s.properties...)
}

// Units returns a snapshot of all units in insertion order
func (s *Store) Units() []models.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Unit(nil), s.units...)
}

// Tenants returns a snapshot of all tenants in insertion order
func (s *Store) Tenants() []models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Tenant(nil), s.tenants...)
}

// Leases returns a snapshot of all leases in insertion order
func (s *Store) Leases() []models.Lease {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Lease(nil), s.leases...)
}

// Payments returns a snapshot of all payments in insertion order
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

// MaintenanceRequests returns a snapshot of all maintenance requests.
// Newly submitted requests sit at the front of the slice.
func (s *Store) MaintenanceRequests() []models.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MaintenanceRequest(nil), s.maintenance...)
}

// PropertyByID looks up a property by primary key
func (s *Store) PropertyByID(id string) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.propertyIndex(id); i >= 0 {
		return s.properties[i], nil
	}
	return models.Property{}, fmt.Errorf("property %q: %w", id, ErrNotFound)
}

// UnitByID looks up a unit by primary key
func (s *Store) UnitByID(id string) (models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.unitIndex(id); i >= 0 {
		return s.units[i], nil
	}
	return models.Unit{}, fmt.Errorf("unit %q: %w", id, ErrNotFound)
}

// TenantByID looks up a tenant by primary key
func (s *Store) TenantByID(id string) (models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.tenantIndex(id); i >= 0 {
		return s.tenants[i], nil
	}
	return models.Tenant{}, fmt.Errorf("tenant %q: %w", id, ErrNotFound)
}

// LeaseByID looks up a lease by primary key
func (s *Store) LeaseByID(id string) (models.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.leaseIndex(id); i >= 0 {
		return s.leases[i], nil
	}
	return models.Lease{}, fmt.Errorf("lease %q: %w", id, ErrNotFound)
}

// PaymentByID looks up a payment by primary key
func (s *Store) PaymentByID(id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.paymentIndex(id); i >= 0 {
		return s.payments[i], nil
	}
	return models.Payment{}, fmt.Errorf("payment %q: %w", id, ErrNotFound)
}

// MaintenanceRequestByID looks up a maintenance request by primary key
func (s *Store) MaintenanceRequestByID(id string) (models.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.maintenanceIndex(id); i >= 0 {
		return s.maintenance[i], nil
	}
	return models.MaintenanceRequest{}, fmt.Errorf("maintenance request %q: %w", id, ErrNotFound)
}

// UnitsByProperty returns the units of a property in insertion order.
// A dangling or unknown property id yields an empty result, not an error.
func (s *Store) UnitsByProperty(propertyID string) []models.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Unit
	for _, u := range s.units {
		if u.PropertyID == propertyID {
			out = append(out, u)
		}
	}
	return out
}

// LeasesByTenant returns the leases held by a tenant in insertion order
func (s *Store) LeasesByTenant(tenantID string) []models.Lease {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Lease
	for _, l := range s.leases {
		if l.TenantID == tenantID {
			out = append(out, l)
		}
	}
	return out
}

// PaymentsByLease returns the payments recorded against a lease in insertion order
func (s *Store) PaymentsByLease(leaseID string) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Payment
	for _, p := range s.payments {
		if p.LeaseID == leaseID {
			out = append(out, p)
		}
	}
	return out
}

// MaintenanceByTenant returns the maintenance requests raised by a tenant
func (s *Store) MaintenanceByTenant(tenantID string) []models.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MaintenanceRequest
	for _, m := range s.maintenance {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out
}

// index helpers; callers must hold the lock

func (s *Store) propertyIndex(id string) int {
	for i := range s.properties {
		if s.properties[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) unitIndex(id string) int {
	for i := range s.units {
		if s.units[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) tenantIndex(id string) int {
	for i := range s.tenants {
		if s.tenants[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) leaseIndex(id string) int {
	for i := range s.leases {
		if s.leases[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) paymentIndex(id string) int {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) maintenanceIndex(id string) int {
	for i := range s.maintenance {
		if s.maintenance[i].ID == id {
			return i
		}
	}
	return -1
}
