package models

type Tenant struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	BusinessType  string       `json:"business_type"`
	ContactPerson string       `json:"contact_person"`
	Status        TenantStatus `json:"status"`
}

// TenantStatus is the lifecycle status of a tenant
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
)
