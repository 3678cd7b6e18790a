// Package market holds the pure derived-state computations of the
// marketplace: freshness classification, catalog filtering, cart
// aggregation, and producer analytics. Nothing in this package performs
// I/O or mutates its inputs.
package market

import "time"

// Spoilage classifies the freshness of a listing relative to a calendar day.
type Spoilage string

const (
	// SpoilageNone means the listing has no expiration date.
	SpoilageNone Spoilage = "none"
	// SpoilageExpired means the expiration date lies strictly before today.
	SpoilageExpired Spoilage = "expired"
	// SpoilageExpiringSoon means the listing expires within the next 7 days,
	// today included.
	SpoilageExpiringSoon Spoilage = "expiring-soon"
	// SpoilageFresh means more than 7 days remain. Rendered the same as
	// SpoilageNone but kept distinct.
	SpoilageFresh Spoilage = "fresh"
)

// DateLayout is the wire format for harvest and expiration dates.
const DateLayout = "2006-01-02"

const expiringSoonWindowDays = 7

// EvaluateSpoilage classifies an expiration date against today, comparing at
// day granularity. It is total: an empty or malformed date yields
// SpoilageNone rather than an error.
func EvaluateSpoilage(expirationDate string, today time.Time) Spoilage {
	if expirationDate == "" {
		return SpoilageNone
	}
	exp, err := time.ParseInLocation(DateLayout, expirationDate, time.UTC)
	if err != nil {
		return SpoilageNone
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(exp.Sub(day) / (24 * time.Hour))

	switch {
	case remaining < 0:
		return SpoilageExpired
	case remaining <= expiringSoonWindowDays:
		return SpoilageExpiringSoon
	default:
		return SpoilageFresh
	}
}

// DaysUntilExpiration returns the whole days remaining until the expiration
// date, negative when already expired. The boolean is false when the listing
// has no parseable expiration date.
func DaysUntilExpiration(expirationDate string, today time.Time) (int, bool) {
	if expirationDate == "" {
		return 0, false
	}
	exp, err := time.ParseInLocation(DateLayout, expirationDate, time.UTC)
	if err != nil {
		return 0, false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(day) / (24 * time.Hour)), true
}
