package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/utils"
)

// GetAllUsers lists every registered user (admin only).
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// GetUserByID returns a single user.
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// UpdateUser updates profile fields, keeping email and cedula unique.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	type updateInput struct {
		Name     string `json:"name"`
		LastName string `json:"last_name"`
		Cedula   string `json:"cedula"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}

	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	if input.Email != "" && input.Email != user.Email {
		var other models.User
		if db.DB.Where("email = ? AND id <> ?", input.Email, user.ID).First(&other).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Email already in use by another user",
			})
		}
		user.Email = input.Email
	}
	if input.Cedula != "" && input.Cedula != user.Cedula {
		var other models.User
		if db.DB.Where("cedula = ? AND id <> ?", input.Cedula, user.ID).First(&other).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Cedula already in use by another user",
			})
		}
		user.Cedula = input.Cedula
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// DeleteUser removes a user (admin only).
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
