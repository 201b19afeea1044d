package models

import (
	"gorm.io/gorm"
)

// Business groups customers, employees, appointments and invoices under a
// single salon location.
type Business struct {
	gorm.Model
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:BusinessID"`
}
