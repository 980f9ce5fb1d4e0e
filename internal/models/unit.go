package models

type Unit struct {
	ID         string     `json:"id"`
	PropertyID string     `json:"property_id"`
	UnitNumber string     `json:"unit_number"` // unique within a property, not globally
	Floor      int        `json:"floor"`
	Size       int        `json:"size"`      // square feet
	BaseRent   int        `json:"base_rent"` // whole currency units per month
	Status     UnitStatus `json:"status"`
}

// UnitStatus is the occupancy status of a unit
type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusReserved    UnitStatus = "reserved"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// ValidUnitStatus reports whether s is one of the known unit statuses
func ValidUnitStatus(s UnitStatus) bool {
	switch s {
	case UnitStatusAvailable, UnitStatusOccupied, UnitStatusReserved, UnitStatusMaintenance:
		return true
	}
	return false
}
