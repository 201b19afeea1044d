package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCancel(t *testing.T) {
	now := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  AppointmentStatus
		start   time.Time
		wantErr bool
	}{
		{
			name:   "pending with enough notice",
			status: StatusPending,
			start:  now.Add(48 * time.Hour),
		},
		{
			name:   "confirmed with enough notice",
			status: StatusConfirmed,
			start:  now.Add(25 * time.Hour),
		},
		{
			name:    "pending but too late",
			status:  StatusPending,
			start:   now.Add(23 * time.Hour),
			wantErr: true,
		},
		{
			name:    "exactly 24 hours is too late",
			status:  StatusConfirmed,
			start:   now.Add(24 * time.Hour),
			wantErr: true,
		},
		{
			name:    "already cancelled",
			status:  StatusCancelled,
			start:   now.Add(48 * time.Hour),
			wantErr: true,
		},
		{
			name:    "completed",
			status:  StatusCompleted,
			start:   now.Add(48 * time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.status, StartTime: tt.start}
			err := a.CanCancel(now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		wantErr bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled},
		{name: "pending straight to completed", from: StatusPending, to: StatusCompleted, wantErr: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, wantErr: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusPending, wantErr: true},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, wantErr: true},
		{name: "cancelled cannot be cancelled again", from: StatusCancelled, to: StatusCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			err := a.CanTransition(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, AppointmentStatus("archived").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestEditable(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).Editable())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).Editable())
	assert.False(t, (&Appointment{Status: StatusCancelled}).Editable())
	assert.False(t, (&Appointment{Status: StatusCompleted}).Editable())
}

func TestEndTime_FixedHour(t *testing.T) {
	start := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	a := Appointment{StartTime: start}

	require.Equal(t, start.Add(time.Hour), a.EndTime())
}
