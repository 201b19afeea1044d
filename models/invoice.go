package models

import (
	"time"

	"gorm.io/gorm"
)

// TaxRate is the flat IVA applied to every invoice.
const TaxRate = 0.19

// Invoice is created once per paid appointment and never mutated afterwards.
type Invoice struct {
	gorm.Model
	Number        string      `json:"number" gorm:"unique"`
	CustomerID    uint        `json:"customer_id"`
	Customer      User        `json:"customer" gorm:"foreignKey:CustomerID"`
	Services      ServiceList `json:"services" gorm:"type:jsonb"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	IssuedAt      time.Time   `json:"issued_at"`
	AppointmentID *uint       `json:"appointment_id,omitempty"`
	BusinessID    uint        `json:"business_id"`
}

// InvoiceTotals prices each distinct requested service against the given
// price list and applies the flat tax. Services missing from the list bill
// at zero.
func InvoiceTotals(services ServiceList, prices PriceList) (subtotal, tax, total float64) {
	for _, s := range services.Distinct() {
		subtotal += prices.PriceOf(s)
	}
	tax = subtotal * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}
