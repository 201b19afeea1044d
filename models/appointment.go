package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CancelNotice is the minimum anticipation required to cancel an appointment.
const CancelNotice = 24 * time.Hour

// AppointmentDuration is the fixed length of every appointment regardless of
// how many services were requested.
const AppointmentDuration = time.Hour

type Appointment struct {
	gorm.Model
	Title       string            `json:"title"`
	Description string            `json:"description"`
	StartTime   time.Time         `json:"start_time"`
	Status      AppointmentStatus `json:"status"`
	Services    ServiceList       `json:"services" gorm:"type:jsonb"`
	CustomerID  uint              `json:"customer_id"`
	Customer    User              `json:"customer" gorm:"foreignKey:CustomerID"`
	BusinessID  uint              `json:"business_id"`
	Business    Business          `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// EndTime is the projected end of the appointment (fixed one-hour duration).
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(AppointmentDuration)
}

// Editable reports whether the appointment can still be modified or
// cancelled. Cancelled and completed appointments are frozen.
func (a *Appointment) Editable() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanCancel enforces the cancellation policy: only pending or confirmed
// appointments, and only with at least 24 hours of anticipation.
func (a *Appointment) CanCancel(now time.Time) error {
	if !a.Editable() {
		return fmt.Errorf("appointment cannot be cancelled in status %s", a.Status)
	}
	if !now.Before(a.StartTime.Add(-CancelNotice)) {
		return fmt.Errorf("appointments can only be cancelled at least 24 hours in advance")
	}
	return nil
}

// CanTransition reports whether the lifecycle allows moving the appointment
// to newStatus. Pending appointments can be confirmed or cancelled, confirmed
// ones completed or cancelled; completed and cancelled are terminal.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}

// UpdateStatus applies a status transition and persists it, rejecting
// transitions the lifecycle does not allow.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := a.CanTransition(newStatus); err != nil {
		return err
	}
	a.Status = newStatus
	return tx.Model(a).Update("status", newStatus).Error
}
