package utils

import (
	"fmt"
	"strings"
	"time"

	"voyagebj-service/internal/domain/entity"
)

// ParseDate parses a calendar date in DATE_LAYOUT. The result is midnight UTC
// so the weekday never shifts with the host timezone.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DATE_LAYOUT, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// DayCodeOf returns the day code for t
func DayCodeOf(t time.Time) entity.DayCode {
	switch t.Weekday() {
	case time.Monday:
		return entity.Monday
	case time.Tuesday:
		return entity.Tuesday
	case time.Wednesday:
		return entity.Wednesday
	case time.Thursday:
		return entity.Thursday
	case time.Friday:
		return entity.Friday
	case time.Saturday:
		return entity.Saturday
	default:
		return entity.Sunday
	}
}

// IsClock reports whether value is a HH:MM time of day
func IsClock(value string) bool {
	_, err := time.Parse(CLOCK_LAYOUT, value)
	return err == nil && len(value) == len(CLOCK_LAYOUT)
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FormatPrice renders an amount in FCFA without decimals
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.0f FCFA", amount)
}
