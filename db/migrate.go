package db

import (
	"fmt"
	"log"

	"github.com/barakalashes/booking-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Employee{},
		&models.Appointment{},
		&models.Invoice{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaultBusiness()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaultBusiness makes sure the salon itself exists so registrations and
// bookings always have a business to attach to.
func seedDefaultBusiness() {
	var business models.Business
	if DB.Where("name = ?", "Baraka Lashes").First(&business).RowsAffected == 0 {
		DB.Create(&models.Business{
			Name:    "Baraka Lashes",
			Address: "Armenia, Quindío",
		})
	}
}
