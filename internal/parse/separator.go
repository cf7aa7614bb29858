package parse

// isSeparator reports whether r belongs to the allow-listed separator set for
// date/time tokens.
func isSeparator(r byte) bool {
	switch r {
	case ' ', '-', ',', ':', '.':
		return true
	}
	return false
}

// tokenize splits body into fields on the allowed separator set, returning
// the fields and the separator between each adjacent pair. Empty fields
// (doubled, leading, or trailing separators) are rejected by returning false.
func tokenize(body string) (fields []string, seps []byte, ok bool) {
	start := 0
	for i := 0; i < len(body); i++ {
		if !isSeparator(body[i]) {
			continue
		}
		if i == start {
			return nil, nil, false
		}
		fields = append(fields, body[start:i])
		seps = append(seps, body[i])
		start = i + 1
	}
	if start == len(body) {
		return nil, nil, false
	}
	fields = append(fields, body[start:])
	return fields, seps, true
}
