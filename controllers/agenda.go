package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/utils"
)

// CalendarEvent is the projection consumed by the dashboard calendar widget.
type CalendarEvent struct {
	ID              uint                     `json:"id"`
	Title           string                   `json:"title"`
	Start           time.Time                `json:"start"`
	End             time.Time                `json:"end"`
	Customer        string                   `json:"customer"`
	Services        models.ServiceList       `json:"services"`
	Status          models.AppointmentStatus `json:"status"`
	BackgroundColor string                   `json:"backgroundColor"`
}

// AppointmentSummary aggregates a date range by status.
type AppointmentSummary struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

// GetCalendar returns the appointments in a range as calendar events,
// optionally narrowed to one customer and/or one business.
func GetCalendar(c *fiber.Ctx) error {
	from, to, ok, err := parseRange(c)
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "A from/to date range is required",
		})
	}

	query := db.DB.Preload("Customer").Where("start_time BETWEEN ? AND ?", from, to)
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if businessID := c.Query("business_id"); businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	events := make([]CalendarEvent, 0, len(appointments))
	for _, a := range appointments {
		events = append(events, ToCalendarEvent(a))
	}
	return c.JSON(events)
}

// GetSummary counts a business's appointments by status over a date range.
func GetSummary(c *fiber.Ctx) error {
	from, to, ok, err := parseRange(c)
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "A from/to date range is required",
		})
	}

	query := db.DB.Where("start_time BETWEEN ? AND ?", from, to)
	if businessID := c.Query("business_id"); businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(SummarizeAppointments(appointments))
}

// GetTodayAgenda is the employee dashboard view: today's non-cancelled
// appointments in order.
func GetTodayAgenda(c *fiber.Ctx) error {
	now := utils.ToBogota(time.Now())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	query := db.DB.Preload("Customer").
		Where("start_time BETWEEN ? AND ?", dayStart, dayEnd).
		Where("status <> ?", models.StatusCancelled)
	if businessID := c.Query("business_id"); businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch today's agenda",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// ToCalendarEvent projects an appointment onto the calendar shape, with the
// fixed one-hour duration and a status color.
func ToCalendarEvent(a models.Appointment) CalendarEvent {
	return CalendarEvent{
		ID:              a.ID,
		Title:           a.Title,
		Start:           a.StartTime,
		End:             a.EndTime(),
		Customer:        a.Customer.Email,
		Services:        a.Services,
		Status:          a.Status,
		BackgroundColor: StatusColor(a.Status),
	}
}

// SummarizeAppointments tallies appointments by status.
func SummarizeAppointments(appointments []models.Appointment) AppointmentSummary {
	summary := AppointmentSummary{Total: int64(len(appointments))}
	for _, a := range appointments {
		switch a.Status {
		case models.StatusPending:
			summary.Pending++
		case models.StatusConfirmed:
			summary.Confirmed++
		case models.StatusCancelled:
			summary.Cancelled++
		case models.StatusCompleted:
			summary.Completed++
		}
	}
	return summary
}

// StatusColor matches the color coding used by the calendar frontend.
func StatusColor(status models.AppointmentStatus) string {
	switch status {
	case models.StatusConfirmed:
		return "#28a745"
	case models.StatusPending:
		return "#ffc107"
	case models.StatusCancelled:
		return "#dc3545"
	case models.StatusCompleted:
		return "#17a2b8"
	default:
		return "#6c757d"
	}
}
