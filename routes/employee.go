package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/controllers"
	"github.com/barakalashes/booking-api/middleware"
)

// SetupEmployeeRoutes configures employee management (admin only)
func SetupEmployeeRoutes(app *fiber.App) {
	employee := app.Group("/employees", middleware.Protected(), middleware.RequireAdmin())
	employee.Get("/", controllers.GetAllEmployees)
	employee.Get("/:id", controllers.GetEmployee)
	employee.Post("/", controllers.CreateEmployee)
	employee.Put("/:id", controllers.UpdateEmployee)
	employee.Delete("/:id", controllers.DeleteEmployee)
}
