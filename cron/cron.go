package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/redis"
	"github.com/barakalashes/booking-api/utils"
)

// ReminderLookahead is how far into the future the daily run looks for
// appointments to remind about.
const ReminderLookahead = 48 * time.Hour

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		log.Fatalf("Failed to load scheduler timezone: %v", err)
	}

	c := cron.New(cron.WithLocation(bogota))
	// Run every day at 08:00 local time
	_, err = c.AddFunc("0 8 * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// ReminderWindow returns the time span covered by a reminder run starting at
// now.
func ReminderWindow(now time.Time) (start, end time.Time) {
	return now, now.Add(ReminderLookahead)
}

// sendAppointmentReminders fetches the appointments due in the next 48 hours
// and emails each customer. One failed send never aborts the rest of the run.
func sendAppointmentReminders() {
	start, end := ReminderWindow(time.Now())

	var appointments []models.Appointment
	err := db.DB.Preload("Customer").
		Where("status <> ? AND start_time BETWEEN ? AND ?", models.StatusCancelled, start, end).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	log.Printf("Found %d appointments for reminders", len(appointments))

	for _, appointment := range appointments {
		sent, err := markReminderSent(&appointment)
		if err != nil {
			log.Printf("Reminder ledger unavailable for appointment %d: %v", appointment.ID, err)
		} else if !sent {
			continue // already reminded today
		}

		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Customer.Email)
	}
}

// markReminderSent records the reminder in redis so overlapping or repeated
// runs on the same day do not mail the customer twice. Returns false when a
// reminder was already recorded.
func markReminderSent(appointment *models.Appointment) (bool, error) {
	key := ReminderKey(appointment.ID, time.Now())
	return redis.Client.SetNX(redis.Ctx, key, 1, ReminderLookahead).Result()
}

// ReminderKey identifies one appointment's reminder for one calendar day.
func ReminderKey(appointmentID uint, day time.Time) string {
	return fmt.Sprintf("reminder:%d:%s", appointmentID, day.Format("2006-01-02"))
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Title:</strong> %s</li>
			<li><strong>Description:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Baraka Lashes</p>
	`, appointment.Customer.Name, appointment.Title, appointment.Description,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.Status)

	return utils.SendEmail(appointment.Customer.Email, subject, body)
}
