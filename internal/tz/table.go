package tz

import (
	"bufio"
	"bytes"
	_ "embed"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

//go:embed abbreviations.tsv
var abbreviationData []byte

// Entry is one row of the abbreviation table: an abbreviation mapped to its
// single documented preferred canonical zone, with a UTC-offset fallback for
// hosts without that zone in their database.
type Entry struct {
	Abbreviation  string
	CanonicalZone string
	OffsetSeconds int
	Comment       string
}

// loadTable parses the embedded abbreviation file into a lookup map. The
// table is built once at startup and is read-only afterward.
func loadTable() (map[string]Entry, error) {
	table := make(map[string]Entry)

	scanner := bufio.NewScanner(bytes.NewReader(abbreviationData))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, zerr.With(zerr.New("malformed abbreviation table line"), "line", line)
		}

		offset, err := parseTableOffset(fields[2])
		if err != nil {
			return nil, zerr.With(err, "abbreviation", fields[0])
		}

		entry := Entry{
			Abbreviation:  fields[0],
			CanonicalZone: fields[1],
			OffsetSeconds: offset,
		}
		if len(fields) > 3 {
			entry.Comment = fields[3]
		}

		if _, exists := table[entry.Abbreviation]; exists {
			return nil, zerr.With(zerr.New("duplicate abbreviation"), "abbreviation", entry.Abbreviation)
		}
		table[entry.Abbreviation] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read abbreviation table")
	}

	return table, nil
}

// parseTableOffset parses a "+HH:MM" / "-HH:MM" offset into seconds.
func parseTableOffset(raw string) (int, error) {
	if len(raw) != 6 || (raw[0] != '+' && raw[0] != '-') || raw[3] != ':' {
		return 0, zerr.With(zerr.New("malformed table offset"), "offset", raw)
	}

	hours, err := strconv.Atoi(raw[1:3])
	if err != nil {
		return 0, zerr.Wrap(err, "malformed offset hours")
	}
	minutes, err := strconv.Atoi(raw[4:6])
	if err != nil {
		return 0, zerr.Wrap(err, "malformed offset minutes")
	}
	if hours > 23 || minutes > 59 {
		return 0, zerr.With(zerr.New("table offset out of range"), "offset", raw)
	}

	seconds := hours*3600 + minutes*60
	if raw[0] == '-' {
		seconds = -seconds
	}
	return seconds, nil
}
