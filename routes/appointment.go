package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/controllers"
	"github.com/barakalashes/booking-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/availability", controllers.GetAvailability)
	appointment.Get("/customer/:email", middleware.Protected(), controllers.GetCustomerHistory)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", middleware.Protected(), controllers.CreateAppointment)
	appointment.Put("/:id", middleware.Protected(), controllers.UpdateAppointment)
	appointment.Patch("/:id", middleware.Protected(), controllers.RescheduleAppointment)
	appointment.Post("/:id/cancel", middleware.Protected(), controllers.CancelAppointment)
	appointment.Delete("/:id", middleware.Protected(), controllers.DeleteAppointment)
}
