package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ServiceType is the closed catalog of bookable salon services.
type ServiceType string

const (
	ServiceClassicLashes ServiceType = "classic_lashes"
	ServiceVolumeLashes  ServiceType = "volume_lashes"
	ServiceEyebrows      ServiceType = "eyebrows"
	ServiceTint          ServiceType = "tint"
	ServicePerm          ServiceType = "perm"
)

// AllServices returns the catalog in display order.
func AllServices() []ServiceType {
	return []ServiceType{
		ServiceClassicLashes,
		ServiceVolumeLashes,
		ServiceEyebrows,
		ServiceTint,
		ServicePerm,
	}
}

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceClassicLashes, ServiceVolumeLashes, ServiceEyebrows, ServiceTint, ServicePerm:
		return true
	}
	return false
}

// ServiceList stores the set of services requested in an appointment or
// billed in an invoice as a JSONB column.
type ServiceList []ServiceType

// Value implements the driver.Valuer interface
func (l ServiceList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *ServiceList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal ServiceList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// Contains reports whether the list includes the given service.
func (l ServiceList) Contains(s ServiceType) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// Distinct returns the list with duplicates removed, keeping first-seen
// order. The service set of an appointment holds each service at most once.
func (l ServiceList) Distinct() ServiceList {
	var distinct ServiceList
	for _, item := range l {
		if !distinct.Contains(item) {
			distinct = append(distinct, item)
		}
	}
	return distinct
}

// Validate rejects services outside the catalog.
func (l ServiceList) Validate() error {
	for _, item := range l {
		if !item.Valid() {
			return fmt.Errorf("unknown service type: %s", item)
		}
	}
	return nil
}

// PriceList maps each service to its fixed price in COP. Billing code
// receives it injected rather than reading a package global.
type PriceList map[ServiceType]float64

// DefaultPriceList returns the salon's current fixed prices.
func DefaultPriceList() PriceList {
	return PriceList{
		ServiceClassicLashes: 80000,
		ServiceVolumeLashes:  120000,
		ServiceEyebrows:      45000,
		ServiceTint:          35000,
		ServicePerm:          55000,
	}
}

// PriceOf returns the price of a service, or 0 for services missing from the
// list.
func (p PriceList) PriceOf(s ServiceType) float64 {
	return p[s]
}
