package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/controllers"
	"github.com/barakalashes/booking-api/middleware"
)

// SetupAgendaRoutes configures the employee dashboard views. The whole prefix
// is admin only.
func SetupAgendaRoutes(app *fiber.App) {
	agenda := app.Group("/agenda", middleware.Protected(), middleware.RequireAdmin())
	agenda.Get("/today", controllers.GetTodayAgenda)
	agenda.Get("/calendar", controllers.GetCalendar)
	agenda.Get("/summary", controllers.GetSummary)
}
