package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barakalashes/booking-api/models"
)

func TestToCalendarEvent(t *testing.T) {
	start := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	appointment := models.Appointment{
		Title:     "Lash fill",
		StartTime: start,
		Status:    models.StatusConfirmed,
		Services:  models.ServiceList{models.ServiceClassicLashes},
		Customer:  models.User{Email: "ana@example.com"},
	}

	event := ToCalendarEvent(appointment)

	assert.Equal(t, "Lash fill", event.Title)
	assert.Equal(t, start, event.Start)
	assert.Equal(t, start.Add(time.Hour), event.End)
	assert.Equal(t, "ana@example.com", event.Customer)
	assert.Equal(t, "#28a745", event.BackgroundColor)
}

func TestSummarizeAppointments(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusConfirmed},
		{Status: models.StatusCancelled},
		{Status: models.StatusCompleted},
	}

	summary := SummarizeAppointments(appointments)

	assert.Equal(t, int64(5), summary.Total)
	assert.Equal(t, int64(2), summary.Pending)
	assert.Equal(t, int64(1), summary.Confirmed)
	assert.Equal(t, int64(1), summary.Cancelled)
	assert.Equal(t, int64(1), summary.Completed)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#ffc107", StatusColor(models.StatusPending))
	assert.Equal(t, "#dc3545", StatusColor(models.StatusCancelled))
	assert.Equal(t, "#17a2b8", StatusColor(models.StatusCompleted))
	assert.Equal(t, "#6c757d", StatusColor(models.AppointmentStatus("unknown")))
}
