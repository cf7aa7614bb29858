package domain

import "time"

// DefaultFormat is the display format used when no format qualifier is given.
// Whether the trailing zone abbreviation is included is a configuration
// concern; this is only the fallback when configuration is silent.
const DefaultFormat = "%Y-%m-%d %H:%M:%S %Z"

// Zone is a resolved timezone identity: an IANA zone, a fixed UTC offset, or
// the UTC default. Name is the canonical identity used in cache keys;
// Location carries the wall-clock rules used for rendering.
type Zone struct {
	Name     string
	Location *time.Location
}

// UTCZone returns the default zone.
func UTCZone() Zone {
	return Zone{Name: "UTC", Location: time.UTC}
}

// ParsedTimeSpec is the canonical result of parsing a raw token. Instant is
// always an absolute point in time regardless of Mode; Mode only governs how
// it is rendered.
type ParsedTimeSpec struct {
	Mode    DisplayMode
	Instant time.Time
	Zone    Zone
	Format  string
}
