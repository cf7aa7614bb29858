// Package tz resolves timezone tokens against a static abbreviation table,
// fixed numeric offsets, and the IANA database.
package tz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	// Embed the IANA database so abbreviation rows resolve to their
	// canonical zones on hosts without a system tzdata.
	_ "time/tzdata"

	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ZoneResolver = (*Resolver)(nil)

// Matches fixed numeric offsets: +0600, -06:00, -06, +6.
var offsetPattern = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)

// Resolver maps timezone tokens to canonical zone identities. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	table map[string]Entry
}

// NewResolver builds a resolver from the embedded abbreviation table.
func NewResolver() (*Resolver, error) {
	table, err := loadTable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load abbreviation table")
	}
	return &Resolver{table: table}, nil
}

// Resolve returns the zone identity for token.
//
// Abbreviations are checked before the IANA database so that an ambiguous
// token like "EST" always resolves to the table's documented preferred zone
// rather than a deprecated IANA link of the same name.
func (r *Resolver) Resolve(token string) (domain.Zone, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Zone{}, zerr.Wrap(domain.ErrUnknownZone, "empty zone token")
	}

	if m := offsetPattern.FindStringSubmatch(token); m != nil {
		return resolveOffset(m)
	}

	if entry, ok := r.table[token]; ok {
		return resolveEntry(entry), nil
	}

	// "Local" would make resolution depend on the host environment.
	if token != "Local" {
		if loc, err := time.LoadLocation(token); err == nil {
			return domain.Zone{Name: loc.String(), Location: loc}, nil
		}
	}

	return domain.Zone{}, zerr.With(zerr.Wrap(domain.ErrUnknownZone, "no abbreviation or IANA match"), "token", token)
}

// Entry returns the raw table entry for an abbreviation, for introspection.
func (r *Resolver) Entry(abbreviation string) (Entry, bool) {
	entry, ok := r.table[abbreviation]
	return entry, ok
}

func resolveEntry(entry Entry) domain.Zone {
	if entry.CanonicalZone == "UTC" {
		return domain.UTCZone()
	}
	if loc, err := time.LoadLocation(entry.CanonicalZone); err == nil {
		return domain.Zone{Name: entry.CanonicalZone, Location: loc}
	}
	// Offset fallback keeps the abbreviation usable without its zone file.
	return domain.Zone{
		Name:     offsetName(entry.OffsetSeconds),
		Location: time.FixedZone(entry.Abbreviation, entry.OffsetSeconds),
	}
}

func resolveOffset(m []string) (domain.Zone, error) {
	hours, err := strconv.Atoi(m[2])
	if err != nil {
		return domain.Zone{}, zerr.With(zerr.Wrap(domain.ErrUnknownZone, "bad offset hours"), "token", m[0])
	}
	minutes := 0
	if m[3] != "" {
		minutes, err = strconv.Atoi(m[3])
		if err != nil {
			return domain.Zone{}, zerr.With(zerr.Wrap(domain.ErrUnknownZone, "bad offset minutes"), "token", m[0])
		}
	}
	if hours > 23 || minutes > 59 {
		return domain.Zone{}, zerr.With(zerr.Wrap(domain.ErrUnknownZone, "offset outside valid range"), "token", m[0])
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}
	if seconds == 0 {
		return domain.UTCZone(), nil
	}

	name := offsetName(seconds)
	return domain.Zone{Name: name, Location: time.FixedZone(name, seconds)}, nil
}

// offsetName renders the canonical identity of a fixed offset, e.g.
// "UTC-06:00". Every distinct offset has exactly one name so cache keys stay
// deterministic across the spellings "+0600", "+06:00" and "+6".
func offsetName(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
