package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/timebanner/timebanner/internal/core/domain"
)

func spec(mode domain.DisplayMode, instant time.Time) domain.ParsedTimeSpec {
	return domain.ParsedTimeSpec{
		Mode:    mode,
		Instant: instant,
		Zone:    domain.UTCZone(),
		Format:  domain.DefaultFormat,
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	s := spec(domain.ModeAbsolute, time.Unix(1752170474, 123456789).UTC())

	a := domain.Canonicalize(s, domain.FormatSVG)
	b := domain.Canonicalize(s, domain.FormatSVG)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Sum(), b.Sum())
}

func TestCanonicalize_RelativeRoundsToMinute(t *testing.T) {
	base := time.Date(2025, 7, 10, 18, 41, 5, 0, time.UTC)

	a := domain.Canonicalize(spec(domain.ModeRelative, base), domain.FormatSVG)
	b := domain.Canonicalize(spec(domain.ModeRelative, base.Add(15*time.Second)), domain.FormatSVG)
	assert.Equal(t, a.String(), b.String(), "same minute must share one key")

	c := domain.Canonicalize(spec(domain.ModeRelative, base.Add(time.Minute)), domain.FormatSVG)
	assert.NotEqual(t, a.String(), c.String(), "adjacent minutes must differ")
}

func TestCanonicalize_AbsoluteKeepsFullPrecision(t *testing.T) {
	base := time.Date(2025, 7, 10, 18, 41, 5, 0, time.UTC)

	a := domain.Canonicalize(spec(domain.ModeAbsolute, base), domain.FormatSVG)
	b := domain.Canonicalize(spec(domain.ModeAbsolute, base.Add(time.Second)), domain.FormatSVG)
	assert.NotEqual(t, a.String(), b.String())

	c := domain.Canonicalize(spec(domain.ModeAbsolute, base.Add(time.Nanosecond)), domain.FormatSVG)
	assert.NotEqual(t, a.String(), c.String())
}

func TestCanonicalize_DistinguishesEveryField(t *testing.T) {
	base := spec(domain.ModeAbsolute, time.Unix(1752170474, 0).UTC())
	key := domain.Canonicalize(base, domain.FormatSVG)

	mutations := []domain.ParsedTimeSpec{}

	m := base
	m.Mode = domain.ModeRelative
	mutations = append(mutations, m)

	m = base
	m.Zone = domain.Zone{Name: "America/Chicago", Location: time.UTC}
	mutations = append(mutations, m)

	m = base
	m.Format = "%H:%M"
	mutations = append(mutations, m)

	for _, mutated := range mutations {
		assert.NotEqual(t, key.String(), domain.Canonicalize(mutated, domain.FormatSVG).String())
	}

	assert.NotEqual(t, key.String(), domain.Canonicalize(base, domain.FormatPNG).String())
}

func TestCanonicalize_SeparatorInFormatCannotCollide(t *testing.T) {
	a := spec(domain.ModeAbsolute, time.Unix(0, 0).UTC())
	a.Format = "%H|svg"
	b := spec(domain.ModeAbsolute, time.Unix(0, 0).UTC())
	b.Format = "%H"

	ka := domain.Canonicalize(a, domain.FormatSVG)
	kb := domain.Canonicalize(b, domain.FormatSVG)
	assert.NotEqual(t, ka.String(), kb.String())
}
