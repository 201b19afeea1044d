package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/barakalashes/booking-api/cron"
	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/redis"
	"github.com/barakalashes/booking-api/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Baraka Lashes booking API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupAgendaRoutes(app)
	routes.SetupInvoiceRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupEmployeeRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
