package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-dashboard/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentSchedule_ThreeMonthsWithFebruaryPaid(t *testing.T) {
	lease := models.Lease{
		ID:          "lease-x",
		StartDate:   day(2024, time.January, 1),
		EndDate:     day(2024, time.March, 15),
		MonthlyRent: 1000,
		Status:      models.LeaseStatusActive,
	}
	payments := []models.Payment{
		{LeaseID: "lease-x", Amount: 1000, Date: day(2024, time.February, 10), Status: models.PaymentStatusCompleted},
	}
	now := day(2024, time.February, 20)

	schedule := RentSchedule(lease, payments, now)
	require.Len(t, schedule, 3)

	assert.Equal(t, day(2024, time.January, 1), schedule[0].DueDate)
	assert.Equal(t, day(2024, time.February, 1), schedule[1].DueDate)
	assert.Equal(t, day(2024, time.March, 1), schedule[2].DueDate)

	assert.Equal(t, ScheduleOverdue, schedule[0].Status, "January is unpaid and past")
	assert.Equal(t, SchedulePaid, schedule[1].Status, "February has a completed payment")
	assert.Equal(t, SchedulePending, schedule[2].Status, "March is still in the future")

	for _, e := range schedule {
		assert.Equal(t, 1000, e.Amount)
	}
}

func TestRentSchedule_NonCompletedPaymentsDoNotCount(t *testing.T) {
	lease := models.Lease{
		StartDate:   day(2024, time.January, 1),
		EndDate:     day(2024, time.January, 31),
		MonthlyRent: 500,
	}
	payments := []models.Payment{
		{Amount: 500, Date: day(2024, time.January, 5), Status: models.PaymentStatusPending},
	}

	schedule := RentSchedule(lease, payments, day(2024, time.March, 1))
	require.Len(t, schedule, 1)
	assert.Equal(t, ScheduleOverdue, schedule[0].Status)
}

func TestRentSchedule_CappedAtTwelveEntries(t *testing.T) {
	lease := models.Lease{
		StartDate:   day(2024, time.January, 1),
		EndDate:     day(2029, time.December, 31),
		MonthlyRent: 2000,
	}

	schedule := RentSchedule(lease, nil, day(2024, time.January, 1))
	assert.Len(t, schedule, 12, "only the first year is produced")
	assert.Equal(t, day(2024, time.December, 1), schedule[11].DueDate)
}

func TestRentSchedule_BoundsAndOrdering(t *testing.T) {
	lease := models.Lease{
		StartDate:   day(2024, time.March, 15),
		EndDate:     day(2024, time.August, 20),
		MonthlyRent: 900,
	}

	schedule := RentSchedule(lease, nil, day(2024, time.January, 1))
	require.NotEmpty(t, schedule)
	require.LessOrEqual(t, len(schedule), 12)

	seen := map[string]bool{}
	for i, e := range schedule {
		assert.False(t, e.DueDate.Before(lease.StartDate), "entry %d before lease start", i)
		assert.False(t, e.DueDate.After(lease.EndDate), "entry %d after lease end", i)
		if i > 0 {
			assert.True(t, e.DueDate.After(schedule[i-1].DueDate), "entries must ascend")
		}
		key := e.DueDate.Format("2006-01")
		assert.False(t, seen[key], "duplicate month %s", key)
		seen[key] = true
	}
}

func TestRentSchedule_SingleMonthLease(t *testing.T) {
	lease := models.Lease{
		StartDate:   day(2024, time.June, 1),
		EndDate:     day(2024, time.June, 1),
		MonthlyRent: 700,
	}

	schedule := RentSchedule(lease, nil, day(2024, time.May, 1))
	require.Len(t, schedule, 1)
	assert.Equal(t, SchedulePending, schedule[0].Status)
}

func TestMonthsRemaining(t *testing.T) {
	now := day(2025, time.February, 20)

	// Day-of-month is ignored: the 1st and the 28th of next month agree
	assert.Equal(t, 1, MonthsRemaining(day(2025, time.March, 1), now))
	assert.Equal(t, 1, MonthsRemaining(day(2025, time.March, 28), now))

	assert.Equal(t, 0, MonthsRemaining(day(2025, time.February, 28), now))
	assert.Equal(t, 0, MonthsRemaining(day(2024, time.June, 1), now), "past leases floor at zero")
	assert.Equal(t, 22, MonthsRemaining(day(2026, time.December, 31), now))
}

func TestExpiringSoon(t *testing.T) {
	now := day(2025, time.February, 20)

	active := models.Lease{Status: models.LeaseStatusActive, EndDate: day(2025, time.April, 30)}
	assert.True(t, ExpiringSoon(active, now))

	farOut := models.Lease{Status: models.LeaseStatusActive, EndDate: day(2026, time.April, 30)}
	assert.False(t, ExpiringSoon(farOut, now))

	terminated := models.Lease{Status: models.LeaseStatusTerminated, EndDate: day(2025, time.March, 1)}
	assert.False(t, ExpiringSoon(terminated, now))
}

func TestTotalPaid(t *testing.T) {
	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentStatusCompleted},
		{Amount: 250, Status: models.PaymentStatusCompleted},
		{Amount: 999, Status: models.PaymentStatusPending},
		{Amount: 400, Status: models.PaymentStatusOverdue},
	}
	assert.Equal(t, 350, TotalPaid(payments))
	assert.Equal(t, 0, TotalPaid(nil))
}
