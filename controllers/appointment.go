package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/utils"
)

// AppointmentInput is the request body for creating and updating
// appointments. The customer is resolved by email.
type AppointmentInput struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	StartTime     time.Time          `json:"start_time"`
	Status        string             `json:"status"`
	Services      models.ServiceList `json:"services"`
	CustomerEmail string             `json:"customer_email"`
	BusinessID    uint               `json:"business_id"`
}

// GetAllAppointments lists appointments, optionally narrowed by one filter
// predicate (email, email+status, customer_id, status or service) plus an
// optional date range. Combining customer and service filters is not part of
// the query surface.
func GetAllAppointments(c *fiber.Ctx) error {
	email := c.Query("email")
	status := c.Query("status")
	service := c.Query("service")
	customerID := c.Query("customer_id")

	query := db.DB.Preload("Customer")

	switch {
	case email != "" && status != "":
		query = query.
			Joins("JOIN users ON users.id = appointments.customer_id").
			Where("users.email = ? AND appointments.status = ?", email, status)
	case email != "":
		query = query.
			Joins("JOIN users ON users.id = appointments.customer_id").
			Where("users.email = ?", email)
	case customerID != "":
		query = query.Where("customer_id = ?", customerID)
	case status != "":
		query = query.Where("status = ?", status)
	case service != "":
		if !models.ServiceType(service).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown service type: " + service,
			})
		}
		query = query.Where("services @> ?", fmt.Sprintf(`["%s"]`, service))
	}

	if from, to, ok, err := parseRange(c); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date range",
			Error:   err.Error(),
		})
	} else if ok {
		query = query.Where("start_time BETWEEN ? AND ?", from, to)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns a single appointment by ID.
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Customer").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a new appointment in pending status for the
// customer identified by email.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Customer email is required",
		})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Title is required",
		})
	}
	if input.StartTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Start time is required",
		})
	}
	if len(input.Services) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "At least one service must be selected",
		})
	}
	if err := input.Services.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service selection",
			Error:   err.Error(),
		})
	}

	var customer models.User
	if err := db.DB.Where("email = ?", input.CustomerEmail).First(&customer).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No registered user with the provided email",
			Error:   err.Error(),
		})
	}

	businessID := input.BusinessID
	if businessID == 0 {
		businessID = customer.BusinessID
	}

	appointment := models.Appointment{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   utils.ToBogota(input.StartTime),
		Status:      models.StatusPending,
		Services:    input.Services.Distinct(),
		CustomerID:  customer.ID,
		BusinessID:  businessID,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	// Booking confirmation is fire-and-forget so a slow SMTP server does not
	// hold the response.
	go func(appt models.Appointment, to, name string) {
		if err := sendBookingEmail(&appt, to, name); err != nil {
			log.Printf("Failed to send booking email for appointment %d: %v", appt.ID, err)
		}
	}(appointment, customer.Email, customer.Name)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment replaces the mutable fields of an appointment: title,
// description, start time, status and service set.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if !appointment.Editable() {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot modify an appointment in status " + string(appointment.Status),
		})
	}

	if input.Status != "" && !models.AppointmentStatus(input.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown appointment status: " + input.Status,
		})
	}
	if err := input.Services.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service selection",
			Error:   err.Error(),
		})
	}

	appointment.Title = input.Title
	appointment.Description = input.Description
	if !input.StartTime.IsZero() {
		appointment.StartTime = utils.ToBogota(input.StartTime)
	}
	if input.Status != "" {
		appointment.Status = models.AppointmentStatus(input.Status)
	}
	if input.Services != nil {
		appointment.Services = input.Services.Distinct()
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// RescheduleAppointment is the partial update: it replaces only the start
// time and the service set.
func RescheduleAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	type rescheduleInput struct {
		StartTime time.Time          `json:"start_time"`
		Services  models.ServiceList `json:"services"`
	}

	input := new(rescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if !appointment.Editable() {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot modify an appointment in status " + string(appointment.Status),
		})
	}

	if err := input.Services.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service selection",
			Error:   err.Error(),
		})
	}

	if !input.StartTime.IsZero() {
		appointment.StartTime = utils.ToBogota(input.StartTime)
	}
	if input.Services != nil {
		appointment.Services = input.Services.Distinct()
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CancelAppointment enforces the cancellation policy before marking the
// appointment cancelled.
func CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.CanCancel(time.Now()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment cannot be cancelled",
			Error:   err.Error(),
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return appointment.UpdateStatus(tx, models.StatusCancelled)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// DeleteAppointment removes the record outright.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAvailability returns the free half-hour slots for a date and business.
func GetAvailability(c *fiber.Ctx) error {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), utils.BogotaLocation())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid or missing date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	businessID := c.Query("business_id")

	dayStart := date
	dayEnd := date.Add(24*time.Hour - time.Second)

	query := db.DB.Where("start_time BETWEEN ? AND ?", dayStart, dayEnd)
	if businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":  c.Query("date"),
		"slots": utils.AvailableSlots(date, appointments),
	})
}

// GetCustomerHistory lists every appointment of the customer with the given
// email, newest first.
func GetCustomerHistory(c *fiber.Ctx) error {
	email := c.Params("email")

	var customer models.User
	if err := db.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found: " + email,
			Error:   err.Error(),
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Where("customer_id = ?", customer.ID).
		Order("start_time desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment history",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// parseRange reads optional from/to query params. Dates may come as
// YYYY-MM-DD (expanded to the whole day) or RFC 3339 timestamps.
func parseRange(c *fiber.Ctx) (from, to time.Time, ok bool, err error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return from, to, false, nil
	}

	from, err = parseDateOrTime(fromStr, false)
	if err != nil {
		return from, to, false, err
	}
	to, err = parseDateOrTime(toStr, true)
	if err != nil {
		return from, to, false, err
	}
	return from, to, true, nil
}

func parseDateOrTime(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, utils.BogotaLocation()); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// sendBookingEmail notifies the customer that the booking was registered.
func sendBookingEmail(appointment *models.Appointment, to, name string) error {
	subject := fmt.Sprintf("Appointment Booked - %s", appointment.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been successfully registered.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Title:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Thank you for choosing Baraka Lashes!</p>
		<p>Best regards,</p>
		<p>Baraka Lashes</p>
	`, name, appointment.Title,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.Status)

	return utils.SendEmail(to, subject, body)
}
