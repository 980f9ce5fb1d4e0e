package models

import "time"

type Payment struct {
	ID      string    `json:"id"`
	LeaseID string    `json:"lease_id"`
	Amount  int       `json:"amount"`
	Date    time.Time `json:"date"`

	// Free-text payment reference (cheque or transfer number). Searchable,
	// not guaranteed unique.
	Reference string        `json:"reference"`
	Status    PaymentStatus `json:"status"`
}

// PaymentStatus is the settlement status of a recorded payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusOverdue   PaymentStatus = "overdue"
)
