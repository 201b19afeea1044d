package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/utils"
)

// GetAllEmployees lists the salon's employees.
func GetAllEmployees(c *fiber.Ctx) error {
	var employees []models.Employee
	query := db.DB
	if businessID := c.Query("business_id"); businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}
	if err := query.Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	return c.JSON(employees)
}

// GetEmployee returns a single employee.
func GetEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(employee)
}

// CreateEmployee registers a new employee.
func CreateEmployee(c *fiber.Ctx) error {
	employee := new(models.Employee)
	if err := c.BodyParser(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if employee.Name == "" || employee.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
	}

	if employee.BusinessID == 0 {
		var business models.Business
		if err := db.DB.First(&business).Error; err == nil {
			employee.BusinessID = business.ID
		}
	}

	if err := db.DB.Create(employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// UpdateEmployee updates an employee's details.
func UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	updates := new(models.Employee)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&employee).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
	}
	return c.JSON(employee)
}

// DeleteEmployee removes an employee.
func DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete employee",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
