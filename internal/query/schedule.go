package query

import (
	"time"

	"property-dashboard/internal/models"
)

// maxScheduleEntries caps a rent schedule at the first year of the lease
const maxScheduleEntries = 12

// ScheduleStatus is the derived settlement state of one rent installment
type ScheduleStatus string

const (
	SchedulePaid    ScheduleStatus = "paid"
	ScheduleOverdue ScheduleStatus = "overdue"
	SchedulePending ScheduleStatus = "pending"
)

// ScheduleEntry is one expected monthly rent installment
type ScheduleEntry struct {
	DueDate time.Time      `json:"due_date"`
	Amount  int            `json:"amount"`
	Status  ScheduleStatus `json:"status"`
}

// RentSchedule derives the per-month installment list for a lease from its
// recorded payments: one entry per calendar month from the start date through
// the end date, capped at the first 12 months. An installment is paid when a
// completed payment on the lease falls in the same calendar month, overdue
// when unpaid and due strictly before now, otherwise pending.
//
// Stepping uses time.AddDate, which normalizes days that do not exist in the
// target month (Jan 31 + 1 month = Mar 2/3).
func RentSchedule(lease models.Lease, payments []models.Payment, now time.Time) []ScheduleEntry {
	var schedule []ScheduleEntry

	for due := lease.StartDate; !due.After(lease.EndDate); due = due.AddDate(0, 1, 0) {
		status := SchedulePending
		if paidInMonth(payments, due) {
			status = SchedulePaid
		} else if due.Before(now) {
			status = ScheduleOverdue
		}

		schedule = append(schedule, ScheduleEntry{
			DueDate: due,
			Amount:  lease.MonthlyRent,
			Status:  status,
		})
		if len(schedule) == maxScheduleEntries {
			break
		}
	}
	return schedule
}

// paidInMonth reports whether a completed payment falls in the same calendar
// month and year as the due date
func paidInMonth(payments []models.Payment, due time.Time) bool {
	for _, p := range payments {
		if p.Status != models.PaymentStatusCompleted {
			continue
		}
		if p.Date.Year() == due.Year() && p.Date.Month() == due.Month() {
			return true
		}
	}
	return false
}

// MonthsRemaining counts whole calendar months between now and the lease end,
// ignoring day-of-month, floored at zero.
func MonthsRemaining(endDate, now time.Time) int {
	months := (endDate.Year()-now.Year())*12 + int(endDate.Month()) - int(now.Month())
	if months < 0 {
		return 0
	}
	return months
}

// ExpiringSoon reports whether an active lease has three months or less left
func ExpiringSoon(lease models.Lease, now time.Time) bool {
	return lease.IsActive() && MonthsRemaining(lease.EndDate, now) <= 3
}

// TotalPaid sums the completed payments in the given slice
func TotalPaid(payments []models.Payment) int {
	total := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total
}
