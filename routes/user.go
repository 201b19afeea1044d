package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/controllers"
	"github.com/barakalashes/booking-api/middleware"
)

// SetupUserRoutes configures user management (admin only)
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.Protected(), middleware.RequireAdmin())
	user.Get("/", controllers.GetAllUsers)
	user.Get("/:id", controllers.GetUserByID)
	user.Put("/:id", controllers.UpdateUser)
	user.Delete("/:id", controllers.DeleteUser)
}
