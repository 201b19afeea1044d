package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// AdminCedula is the national ID that registers with the admin role. Kept for
// parity with the salon's onboarding flow.
const AdminCedula = "1000000000"

// RoleForCedula decides the role assigned at registration time.
func RoleForCedula(cedula string) UserRole {
	if cedula == AdminCedula {
		return RoleAdmin
	}
	return RoleCustomer
}

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	LastName     string        `json:"last_name"`
	Cedula       string        `json:"cedula" gorm:"unique"`
	Email        string        `json:"email" gorm:"unique"`
	Phone        string        `json:"phone"`
	Password     string        `json:"password,omitempty"`
	Role         UserRole      `json:"role"`
	BusinessID   uint          `json:"business_id"`
	Business     Business      `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:CustomerID"`
	Invoices     []Invoice     `json:"invoices,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
