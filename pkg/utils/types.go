package utils

// Constants
const (
	DATE_LAYOUT  = "2006-01-02"
	CLOCK_LAYOUT = "15:04"

	// DEFAULT_DEPARTURE is used when a route has no departure hour for the chosen slot
	DEFAULT_DEPARTURE = "00:00"

	// PREMIUM_MULTIPLIER prices a premium seat on routes without a premium fare
	PREMIUM_MULTIPLIER = 1.5
)
