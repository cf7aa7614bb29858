// Package parse turns raw time tokens into canonical parsed specifications.
package parse

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
)

// Parser tokenizes raw time strings into ParsedTimeSpec values. Parsing
// never partially succeeds: any stage failure discards the in-progress spec
// and returns a typed error.
type Parser struct {
	resolver      ports.ZoneResolver
	defaultFormat string
	defaultOrder  domain.DateOrder
}

// NewParser creates a Parser. Empty defaults fall back to
// domain.DefaultFormat and Year-Month-Day order.
func NewParser(resolver ports.ZoneResolver, defaultFormat string, defaultOrder domain.DateOrder) *Parser {
	if defaultFormat == "" {
		defaultFormat = domain.DefaultFormat
	}
	if defaultOrder == "" {
		defaultOrder = domain.OrderYMD
	}
	return &Parser{
		resolver:      resolver,
		defaultFormat: defaultFormat,
		defaultOrder:  defaultOrder,
	}
}

// Parse resolves raw against the supplied qualifiers and reference instant.
// The result is deterministic: the same inputs always yield the same spec or
// the same error.
func (p *Parser) Parse(raw string, q domain.Qualifiers, now time.Time) (domain.ParsedTimeSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.ParsedTimeSpec{}, zerr.Wrap(domain.ErrMalformedToken, "empty token")
	}

	format := q.Format
	if format == "" {
		format = p.defaultFormat
	}
	if err := ValidateFormat(format); err != nil {
		return domain.ParsedTimeSpec{}, err
	}

	if raw[0] == '+' || raw[0] == '-' {
		return p.parseRelative(raw, q, format, now)
	}
	if isDigits(raw) {
		return p.parseEpoch(raw, q, format)
	}
	return p.parseCalendar(raw, q, format)
}

// parseRelative handles sign-prefixed tokens: a plain numeric offset in
// seconds, or a compound duration body like "1y2d".
func (p *Parser) parseRelative(raw string, q domain.Qualifiers, format string, now time.Time) (domain.ParsedTimeSpec, error) {
	body := raw[1:]
	if body == "" {
		return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "sign without offset"), "token", raw)
	}

	var offset time.Duration
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		offset = time.Duration(secs) * time.Second
	} else if d, ok := parseDuration(body); ok {
		offset = d
		if raw[0] == '-' {
			offset = -offset
		}
	} else {
		return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "unparseable offset"), "token", raw)
	}

	zone, err := p.qualifierZone(q)
	if err != nil {
		return domain.ParsedTimeSpec{}, err
	}

	return domain.ParsedTimeSpec{
		Mode:    modeOr(q, domain.ModeRelative),
		Instant: now.Add(offset).UTC(),
		Zone:    zone,
		Format:  format,
	}, nil
}

// parseEpoch handles bare integer tokens as Unix timestamps.
func (p *Parser) parseEpoch(raw string, q domain.Qualifiers, format string) (domain.ParsedTimeSpec, error) {
	epoch, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "unparseable epoch"), "token", raw)
	}

	zone, err := p.qualifierZone(q)
	if err != nil {
		return domain.ParsedTimeSpec{}, err
	}

	return domain.ParsedTimeSpec{
		Mode:    modeOr(q, domain.ModeAbsolute),
		Instant: time.Unix(epoch, 0).UTC(),
		Zone:    zone,
		Format:  format,
	}, nil
}

// parseCalendar handles fully qualified calendar tokens, optionally carrying
// a trailing dash-separated timezone suffix.
func (p *Parser) parseCalendar(raw string, q domain.Qualifiers, format string) (domain.ParsedTimeSpec, error) {
	body, suffix := splitZoneSuffix(raw)

	zone := domain.UTCZone()
	if suffix != "" {
		resolved, err := p.resolver.Resolve(suffix)
		if err != nil {
			return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrInvalidTimezoneSuffix, "unresolvable suffix"), "suffix", suffix)
		}
		zone = resolved
	}
	// A query-level tz qualifier overrides any in-string timezone.
	if q.Zone != "" {
		resolved, err := p.resolver.Resolve(q.Zone)
		if err != nil {
			return domain.ParsedTimeSpec{}, err
		}
		zone = resolved
	}

	fields, seps, ok := tokenize(body)
	if !ok || len(fields) < 3 {
		return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "incomplete calendar date"), "token", raw)
	}

	// Date section: all three components required, one consistent separator.
	if seps[0] != seps[1] {
		return domain.ParsedTimeSpec{}, zerr.With(zerr.Wrap(domain.ErrInconsistentSeparators, "mixed separators"), "section", "date")
	}

	order := p.defaultOrder
	if q.Order != "" {
		order = q.Order
	}
	year, mon, dayOfMonth, err := dateComponents(fields[:3], order)
	if err != nil {
		return domain.ParsedTimeSpec{}, err
	}

	// seps[2] joins the date and time sections and is allowed to differ from
	// both; only the separators inside each section must be consistent.
	var timeSeps []byte
	if len(seps) > 3 {
		timeSeps = seps[3:]
	}
	hour, minute, sec, nanos, err := timeComponents(fields[3:], timeSeps)
	if err != nil {
		return domain.ParsedTimeSpec{}, err
	}

	instant := time.Date(year, time.Month(mon), dayOfMonth, hour, minute, sec, nanos, zone.Location)
	return domain.ParsedTimeSpec{
		Mode:    modeOr(q, domain.ModeAbsolute),
		Instant: instant.UTC(),
		Zone:    zone,
		Format:  format,
	}, nil
}

func (p *Parser) qualifierZone(q domain.Qualifiers) (domain.Zone, error) {
	if q.Zone == "" {
		return domain.UTCZone(), nil
	}
	return p.resolver.Resolve(q.Zone)
}

// splitZoneSuffix splits a trailing dash-separated timezone suffix off the
// token body. The suffix starts at the first '-' that is directly followed
// by a letter; date and time fields always start with a digit, so this never
// consumes part of the calendar body. IANA names containing dashes (such as
// America/Port-au-Prince) are kept intact because the split point is the
// first such dash, not the last.
func splitZoneSuffix(raw string) (body, suffix string) {
	for i := 0; i < len(raw)-1; i++ {
		if raw[i] == '-' && isLetter(raw[i+1]) {
			return raw[:i], raw[i+1:]
		}
	}
	return raw, ""
}

func dateComponents(fields []string, order domain.DateOrder) (year, month, day int, err error) {
	nums := make([]int, 3)
	for i, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "non-numeric date field"), "field", f)
		}
		nums[i] = n
	}

	switch order {
	case domain.OrderDMY:
		day, month, year = nums[0], nums[1], nums[2]
	case domain.OrderMDY:
		month, day, year = nums[0], nums[1], nums[2]
	default:
		year, month, day = nums[0], nums[1], nums[2]
	}

	if month < 1 || month > 12 {
		return 0, 0, 0, fieldOutOfRange("month", month)
	}
	if max := daysIn(year, month); day < 1 || day > max {
		return 0, 0, 0, fieldOutOfRange("day", day)
	}
	return year, month, day, nil
}

// timeComponents parses the optional time section. Components are
// progressively optional from the right: minutes, seconds, and fractional
// seconds each default to 0, but a sub-hour component can never appear
// without an hour.
func timeComponents(fields []string, seps []byte) (hour, minute, sec, nanos int, err error) {
	if len(fields) == 0 {
		return 0, 0, 0, 0, nil
	}
	if len(fields) > 4 {
		return 0, 0, 0, 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "too many time fields"), "section", "time")
	}

	// Separator consistency within the time section. The final separator may
	// be the '.' introducing a fraction field.
	for i := 1; i < len(seps); i++ {
		if seps[i] == seps[0] {
			continue
		}
		if i == len(seps)-1 && seps[i] == '.' && len(fields) == 4 {
			continue
		}
		return 0, 0, 0, 0, zerr.With(zerr.Wrap(domain.ErrInconsistentSeparators, "mixed separators"), "section", "time")
	}
	// A fourth field is only meaningful as a fraction of seconds.
	if len(fields) == 4 && seps[len(seps)-1] != '.' {
		return 0, 0, 0, 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "fourth time field is not a fraction"), "section", "time")
	}

	hour, err = hourComponent(fields)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	if len(fields) > 1 {
		if minute, err = rangedComponent("minute", fields[1]); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	if len(fields) > 2 {
		if sec, err = rangedComponent("second", fields[2]); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	if len(fields) > 3 {
		if nanos, err = fractionComponent(fields[3]); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return hour, minute, sec, nanos, nil
}

// hourComponent parses the hour field, which may carry an AM/PM suffix.
// A lone time field whose value only makes sense as minutes or seconds means
// the hour was omitted; the parser fails closed instead of guessing upward.
func hourComponent(fields []string) (int, error) {
	raw := fields[0]

	meridiem := ""
	if len(raw) > 2 {
		if tail := strings.ToUpper(raw[len(raw)-2:]); tail == "AM" || tail == "PM" {
			meridiem = tail
			raw = raw[:len(raw)-2]
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "non-numeric hour"), "field", fields[0])
	}

	if meridiem != "" {
		if n < 1 || n > 12 {
			return 0, fieldOutOfRange("hour", n)
		}
		n %= 12
		if meridiem == "PM" {
			n += 12
		}
		return n, nil
	}

	if n > 23 {
		if len(fields) == 1 && n < 60 {
			return 0, zerr.With(zerr.Wrap(domain.ErrMissingHour, "lone sub-hour value"), "value", n)
		}
		return 0, fieldOutOfRange("hour", n)
	}
	return n, nil
}

func rangedComponent(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "non-numeric field"), "field", raw)
	}
	if n < 0 || n > 59 {
		return 0, fieldOutOfRange(name, n)
	}
	return n, nil
}

// fractionComponent converts a fractional-seconds field to nanoseconds.
func fractionComponent(raw string) (int, error) {
	if raw == "" || len(raw) > 9 || !isDigits(raw) {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "bad fraction"), "field", raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedToken, "bad fraction"), "field", raw)
	}
	for i := len(raw); i < 9; i++ {
		n *= 10
	}
	return n, nil
}

func fieldOutOfRange(field string, value int) error {
	err := zerr.With(zerr.Wrap(domain.ErrFieldOutOfRange, "value outside valid range"), "field", field)
	return zerr.With(err, "value", value)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func modeOr(q domain.Qualifiers, def domain.DisplayMode) domain.DisplayMode {
	if q.Mode != "" {
		return q.Mode
	}
	return def
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
