package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CacheKey is the canonical encoding of a parsed spec plus output format.
// Two tokens that parse to the same spec and output format always produce an
// identical key; no two distinct specs produce the same encoding.
type CacheKey struct {
	enc string
	sum uint64
}

// Canonicalize derives the cache key for a spec and output format.
//
// Relative specs have their instant rounded down to the enclosing minute so
// that all requests within the same minute share one entry, which is what
// makes the minute-granularity purge coherent. Absolute specs keep full
// precision.
//
// The encoding is injective: every field except the format string is free of
// the '|' separator, and the free-form format string is placed last so a
// separator inside it cannot shift field boundaries.
func Canonicalize(spec ParsedTimeSpec, format OutputFormat) CacheKey {
	instant := spec.Instant.UTC()
	if spec.Mode == ModeRelative {
		instant = instant.Truncate(time.Minute)
	}
	enc := fmt.Sprintf("%s|%d.%09d|%s|%s|%s",
		spec.Mode, instant.Unix(), instant.Nanosecond(), spec.Zone.Name, format, spec.Format)
	return CacheKey{enc: enc, sum: xxhash.Sum64String(enc)}
}

// String returns the full canonical encoding.
func (k CacheKey) String() string { return k.enc }

// Sum returns the xxhash fingerprint of the encoding. Compartments index on
// the fingerprint and verify the full encoding on insert; a mismatch is a
// programming error.
func (k CacheKey) Sum() uint64 { return k.sum }
