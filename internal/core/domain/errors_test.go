package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// Annotating a sentinel must preserve its identity. zerr.With on a bare
// sentinel copies it and drops the cause chain, so every annotation site
// wraps first and attaches fields to the wrapper.
func TestSentinelIdentitySurvivesAnnotation(t *testing.T) {
	sentinels := []error{
		domain.ErrMalformedToken,
		domain.ErrMissingHour,
		domain.ErrFieldOutOfRange,
		domain.ErrInvalidTimezoneSuffix,
		domain.ErrUnknownZone,
		domain.ErrUnsupportedFormatDirective,
		domain.ErrInconsistentSeparators,
		domain.ErrRender,
	}

	for _, sentinel := range sentinels {
		err := zerr.With(zerr.Wrap(sentinel, "while parsing"), "token", "3PM")
		require.True(t, errors.Is(err, sentinel), "wrapped %v lost identity", sentinel)

		// Stacking further fields must not sever the chain either.
		err = zerr.With(err, "value", 42)
		require.True(t, errors.Is(err, sentinel), "chained With on %v lost identity", sentinel)
	}
}

func TestIsParseErrorOnAnnotatedErrors(t *testing.T) {
	parseErr := zerr.With(zerr.Wrap(domain.ErrMissingHour, "lone sub-hour value"), "value", 45)
	require.True(t, domain.IsParseError(parseErr))

	renderErr := zerr.With(zerr.Wrap(domain.ErrRender, "renderer exited"), "text", "now")
	require.False(t, domain.IsParseError(renderErr))
	require.True(t, errors.Is(renderErr, domain.ErrRender))

	require.False(t, domain.IsParseError(nil))
	require.False(t, domain.IsParseError(errors.New("unrelated")))
}
