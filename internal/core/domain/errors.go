package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMalformedToken is returned when a raw token matches no recognized
	// time shape.
	ErrMalformedToken = zerr.New("malformed time token")

	// ErrMissingHour is returned when a sub-hour time component is present
	// but the hour component is not. The parser fails closed rather than
	// guessing which component was meant.
	ErrMissingHour = zerr.New("time component present without an hour")

	// ErrFieldOutOfRange is returned when a numeric date or time field is
	// outside its valid range. The offending field and value are attached.
	ErrFieldOutOfRange = zerr.New("field out of range")

	// ErrInvalidTimezoneSuffix is returned when a trailing suffix fails to
	// resolve as a timezone. The suffix is never silently dropped.
	ErrInvalidTimezoneSuffix = zerr.New("invalid timezone suffix")

	// ErrUnknownZone is returned when a token matches no abbreviation table
	// entry and is not a valid IANA identifier or numeric offset.
	ErrUnknownZone = zerr.New("unknown timezone")

	// ErrUnsupportedFormatDirective is returned when a format string uses a
	// directive outside the allow-listed subset.
	ErrUnsupportedFormatDirective = zerr.New("unsupported format directive")

	// ErrInconsistentSeparators is returned when a date or time section
	// mixes separator characters.
	ErrInconsistentSeparators = zerr.New("inconsistent separators")

	// ErrRender is returned when the external render step fails.
	ErrRender = zerr.New("render failed")
)

// IsParseError reports whether err belongs to the user-caused parse taxonomy,
// as opposed to a render failure. Routing layers map parse errors to client
// errors and everything else to server errors.
func IsParseError(err error) bool {
	for _, target := range []error{
		ErrMalformedToken,
		ErrMissingHour,
		ErrFieldOutOfRange,
		ErrInvalidTimezoneSuffix,
		ErrUnknownZone,
		ErrUnsupportedFormatDirective,
		ErrInconsistentSeparators,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
