package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakalashes/booking-api/models"
)

func date(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
}

func TestDaySlots_FullGrid(t *testing.T) {
	slots := DaySlots(date(t))

	require.Len(t, slots, 18)
	assert.Equal(t, date(t).Add(9*time.Hour), slots[0])
	assert.Equal(t, date(t).Add(17*time.Hour+30*time.Minute), slots[len(slots)-1])
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	slots := AvailableSlots(date(t), nil)
	assert.Len(t, slots, 18)
}

func TestAvailableSlots_BookingBlocksTwoSlots(t *testing.T) {
	day := date(t)
	appointments := []models.Appointment{
		{StartTime: day.Add(10 * time.Hour), Status: models.StatusPending},
	}

	slots := AvailableSlots(day, appointments)

	require.Len(t, slots, 16)
	assert.NotContains(t, slots, day.Add(10*time.Hour))
	assert.NotContains(t, slots, day.Add(10*time.Hour+30*time.Minute))
	assert.Contains(t, slots, day.Add(9*time.Hour+30*time.Minute))
	assert.Contains(t, slots, day.Add(11*time.Hour))
}

func TestAvailableSlots_CancelledDoesNotBlock(t *testing.T) {
	day := date(t)
	appointments := []models.Appointment{
		{StartTime: day.Add(10 * time.Hour), Status: models.StatusCancelled},
	}

	slots := AvailableSlots(day, appointments)

	assert.Len(t, slots, 18)
	assert.Contains(t, slots, day.Add(10*time.Hour))
}

func TestAvailableSlots_OffGridStart(t *testing.T) {
	day := date(t)
	// An appointment at 10:15 occupies [10:15, 11:15), blocking 10:30 and 11:00
	appointments := []models.Appointment{
		{StartTime: day.Add(10*time.Hour + 15*time.Minute), Status: models.StatusConfirmed},
	}

	slots := AvailableSlots(day, appointments)

	assert.Contains(t, slots, day.Add(10*time.Hour))
	assert.NotContains(t, slots, day.Add(10*time.Hour+30*time.Minute))
	assert.NotContains(t, slots, day.Add(11*time.Hour))
	assert.Contains(t, slots, day.Add(11*time.Hour+30*time.Minute))
}
