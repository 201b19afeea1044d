package utils

import "time"

// BogotaLocation returns the salon's local timezone. Falls back to UTC if the
// timezone database is unavailable.
func BogotaLocation() *time.Location {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		return time.UTC
	}
	return bogota
}

// ToBogota converts a timestamp to the salon's local timezone.
func ToBogota(t time.Time) time.Time {
	return t.In(BogotaLocation())
}
