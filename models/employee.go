package models

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Name       string  `json:"name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email" gorm:"unique"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Salary     float64 `json:"salary"`
	BusinessID uint    `json:"business_id"`
}
