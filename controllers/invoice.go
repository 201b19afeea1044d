package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barakalashes/booking-api/db"
	"github.com/barakalashes/booking-api/models"
	"github.com/barakalashes/booking-api/utils"
)

// priceList is injected at startup; tests and deployments can swap it without
// touching the billing logic.
var priceList = models.DefaultPriceList()

// SetPriceList replaces the price table used for new invoices.
func SetPriceList(p models.PriceList) {
	priceList = p
}

// CreateInvoiceFromAppointment simulates the payment of an appointment: it
// prices the requested services, applies the flat tax, persists the invoice
// and confirms the appointment, all in one transaction.
func CreateInvoiceFromAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.Preload("Customer").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	subtotal, tax, total := models.InvoiceTotals(appointment.Services, priceList)

	appointmentID := appointment.ID
	invoice := models.Invoice{
		Number:        uuid.NewString(),
		CustomerID:    appointment.CustomerID,
		Services:      appointment.Services,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		IssuedAt:      time.Now(),
		AppointmentID: &appointmentID,
		BusinessID:    appointment.BusinessID,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		// Payment confirms the appointment
		if appointment.Status == models.StatusPending {
			return appointment.UpdateStatus(tx, models.StatusConfirmed)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create invoice",
			Error:   err.Error(),
		})
	}

	go func(inv models.Invoice, to, name string) {
		if err := sendReceiptEmail(&inv, to, name); err != nil {
			log.Printf("Failed to send receipt for invoice %s: %v", inv.Number, err)
		}
	}(invoice, appointment.Customer.Email, appointment.Customer.Name)

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetInvoice returns a single invoice by ID.
func GetInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	var invoice models.Invoice
	if err := db.DB.Preload("Customer").First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Invoice not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// GetCustomerInvoices lists a customer's invoices, newest first.
func GetCustomerInvoices(c *fiber.Ctx) error {
	email := c.Params("email")

	var customer models.User
	if err := db.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found: " + email,
			Error:   err.Error(),
		})
	}

	var invoices []models.Invoice
	if err := db.DB.Where("customer_id = ?", customer.ID).
		Order("issued_at desc").
		Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch invoices",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoices)
}

// GetServicePrices exposes the service catalog with current prices.
func GetServicePrices(c *fiber.Ctx) error {
	type catalogEntry struct {
		Service models.ServiceType `json:"service"`
		Price   float64            `json:"price"`
	}

	catalog := make([]catalogEntry, 0, len(models.AllServices()))
	for _, s := range models.AllServices() {
		catalog = append(catalog, catalogEntry{Service: s, Price: priceList.PriceOf(s)})
	}
	return c.JSON(catalog)
}

// sendReceiptEmail sends the payment receipt to the customer.
func sendReceiptEmail(invoice *models.Invoice, to, name string) error {
	subject := fmt.Sprintf("Payment Receipt - Invoice %s", invoice.Number)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment has been processed and your appointment is confirmed.</p>
		<p><strong>Invoice:</strong></p>
		<ul>
			<li><strong>Number:</strong> %s</li>
			<li><strong>Subtotal:</strong> $%.0f</li>
			<li><strong>IVA (19%%):</strong> $%.0f</li>
			<li><strong>Total:</strong> $%.0f</li>
		</ul>
		<p>Thank you for choosing Baraka Lashes!</p>
		<p>Best regards,</p>
		<p>Baraka Lashes</p>
	`, name, invoice.Number, invoice.Subtotal, invoice.Tax, invoice.Total)

	return utils.SendEmail(to, subject, body)
}
