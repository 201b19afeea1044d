package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/controllers"
	"github.com/barakalashes/booking-api/middleware"
)

// SetupInvoiceRoutes configures billing and the payment-simulation flow
func SetupInvoiceRoutes(app *fiber.App) {
	invoice := app.Group("/invoices")
	invoice.Get("/prices", controllers.GetServicePrices)
	invoice.Post("/appointments/:id", middleware.Protected(), controllers.CreateInvoiceFromAppointment)
	invoice.Get("/customer/:email", middleware.Protected(), controllers.GetCustomerInvoices)
	invoice.Get("/:id", middleware.Protected(), controllers.GetInvoice)
}
