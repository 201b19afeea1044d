package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBogotaLocation_DateParsing(t *testing.T) {
	date, err := time.ParseInLocation("2006-01-02", "2026-03-12", BogotaLocation())
	require.NoError(t, err)

	// Bogota is UTC-5 year-round, so local midnight is 05:00 UTC.
	assert.Equal(t, time.Date(2026, 3, 12, 5, 0, 0, 0, time.UTC), date.UTC())
}

func TestToBogota_PreservesInstant(t *testing.T) {
	utc := time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC)
	local := ToBogota(utc)

	assert.True(t, local.Equal(utc))
	assert.Equal(t, 9, local.Hour())
}
