package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceTotals_SingleService(t *testing.T) {
	subtotal, tax, total := InvoiceTotals(ServiceList{ServiceClassicLashes}, DefaultPriceList())

	assert.Equal(t, 80000.0, subtotal)
	assert.InDelta(t, 15200.0, tax, 0.001)
	assert.InDelta(t, 95200.0, total, 0.001)
}

func TestInvoiceTotals_MultipleServices(t *testing.T) {
	services := ServiceList{ServiceVolumeLashes, ServiceEyebrows, ServiceTint}
	subtotal, tax, total := InvoiceTotals(services, DefaultPriceList())

	assert.Equal(t, 200000.0, subtotal)
	assert.InDelta(t, 38000.0, tax, 0.001)
	assert.InDelta(t, 238000.0, total, 0.001)
}

func TestInvoiceTotals_DuplicateServiceBilledOnce(t *testing.T) {
	services := ServiceList{ServiceClassicLashes, ServiceClassicLashes}
	subtotal, tax, total := InvoiceTotals(services, DefaultPriceList())

	assert.Equal(t, 80000.0, subtotal)
	assert.InDelta(t, 15200.0, tax, 0.001)
	assert.InDelta(t, 95200.0, total, 0.001)
}

func TestInvoiceTotals_UnknownServiceBillsZero(t *testing.T) {
	subtotal, tax, total := InvoiceTotals(ServiceList{ServiceType("massage")}, DefaultPriceList())

	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestInvoiceTotals_EmptyList(t *testing.T) {
	subtotal, _, total := InvoiceTotals(nil, DefaultPriceList())

	assert.Zero(t, subtotal)
	assert.Zero(t, total)
}
