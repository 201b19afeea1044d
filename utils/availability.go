package utils

import (
	"time"

	"github.com/barakalashes/booking-api/models"
)

// Opening hours of the salon. Slots are generated every half hour from
// OpeningHour up to (not including) ClosingHour.
const (
	OpeningHour = 9
	ClosingHour = 18
	SlotStep    = 30 * time.Minute
)

// DaySlots generates the fixed half-hour booking grid for a calendar date:
// 09:00, 09:30, ... 17:30 in the date's location.
func DaySlots(date time.Time) []time.Time {
	var slots []time.Time
	slot := time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, date.Location())

	for slot.Hour() < ClosingHour {
		slots = append(slots, slot)
		slot = slot.Add(SlotStep)
	}

	return slots
}

// AvailableSlots filters the day's grid against existing appointments. A slot
// is taken when it falls within [start, start+1h) of any non-cancelled
// appointment.
func AvailableSlots(date time.Time, appointments []models.Appointment) []time.Time {
	var available []time.Time
	for _, slot := range DaySlots(date) {
		if !slotTaken(slot, appointments) {
			available = append(available, slot)
		}
	}
	return available
}

func slotTaken(slot time.Time, appointments []models.Appointment) bool {
	for _, appointment := range appointments {
		if appointment.Status == models.StatusCancelled {
			continue
		}
		start := appointment.StartTime
		end := start.Add(models.AppointmentDuration)
		if !slot.Before(start) && slot.Before(end) {
			return true
		}
	}
	return false
}
