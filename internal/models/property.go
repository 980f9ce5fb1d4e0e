package models

import "time"

type Property struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`

	// Denormalized count of units under this property. Maintained by the
	// store's CreateUnit; never written anywhere else.
	TotalUnits int `json:"total_units"`

	Status    PropertyStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// PropertyStatus is the lifecycle status of a property
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

// IsActive reports whether the property is active
func (p *Property) IsActive() bool {
	return p.Status == PropertyStatusActive
}
