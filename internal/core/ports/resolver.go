package ports

import "github.com/timebanner/timebanner/internal/core/domain"

// ZoneResolver resolves a timezone token into a canonical zone identity.
// Accepted shapes are IANA identifiers, fixed numeric offsets, and
// table-listed abbreviations. Ambiguous abbreviations resolve to the table's
// single documented preferred zone.
type ZoneResolver interface {
	// Resolve returns the zone for token, or domain.ErrUnknownZone when the
	// token matches nothing.
	Resolve(token string) (domain.Zone, error)
}
