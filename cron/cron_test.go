package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderWindow(t *testing.T) {
	now := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	start, end := ReminderWindow(now)

	assert.Equal(t, now, start)
	assert.Equal(t, now.Add(48*time.Hour), end)
}

func TestReminderKey_StablePerDay(t *testing.T) {
	morning := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 12, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, ReminderKey(42, morning), ReminderKey(42, evening))
	assert.Equal(t, "reminder:42:2026-03-12", ReminderKey(42, morning))
	assert.NotEqual(t, ReminderKey(42, morning), ReminderKey(43, morning))
}
