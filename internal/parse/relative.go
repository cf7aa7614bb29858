package parse

import (
	"regexp"
	"strconv"
	"time"
)

// durationPattern matches compound duration bodies like "1y2mon3w4d5h6m7s".
// Units must appear in descending order of magnitude; the sign is stripped
// before matching. The pattern is anchored so trailing garbage fails the
// whole parse instead of being ignored.
var durationPattern = regexp.MustCompile(`^` +
	`(?:(?P<year>\d+)\s?(?:years?|yrs?|y)\s*)?` +
	`(?:(?P<month>\d+)\s?(?:months?|mon)\s*)?` +
	`(?:(?P<week>\d+)\s?(?:weeks?|wks?|w)\s*)?` +
	`(?:(?P<day>\d+)\s?(?:days?|d)\s*)?` +
	`(?:(?P<hour>\d+)\s?(?:hours?|hrs?|h)\s*)?` +
	`(?:(?P<minute>\d+)\s?(?:minutes?|mins?|m)\s*)?` +
	`(?:(?P<second>\d+)\s?(?:seconds?|secs?|s)\s*)?` +
	`$`)

const (
	day = 24 * time.Hour
	// A calendar month approximated as 365.25/12 days.
	month = time.Duration(float64(day) * 365.25 / 12)
)

// parseDuration parses a compound duration body (without sign). It returns
// false when the body is empty or contains anything but a descending run of
// unit terms.
//
// Years include leap compensation: one year is 365 days plus 6 hours.
func parseDuration(body string) (time.Duration, bool) {
	m := durationPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, false
	}

	var total time.Duration
	matched := false
	for i, name := range durationPattern.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i], 10, 64)
		if err != nil {
			return 0, false
		}
		matched = true
		d := time.Duration(n)
		switch name {
		case "year":
			total += d*365*day + d*6*time.Hour
		case "month":
			total += d * month
		case "week":
			total += d * 7 * day
		case "day":
			total += d * day
		case "hour":
			total += d * time.Hour
		case "minute":
			total += d * time.Minute
		case "second":
			total += d * time.Second
		}
	}
	return total, matched
}
