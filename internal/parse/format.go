package parse

import (
	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// allowedDirectives is the strftime subset accepted in format qualifiers.
// It mirrors what the render pipeline can actually produce.
var allowedDirectives = map[byte]struct{}{
	'Y': {}, 'y': {}, 'm': {}, 'd': {}, 'e': {}, 'j': {},
	'H': {}, 'I': {}, 'M': {}, 'S': {}, 'p': {},
	'a': {}, 'A': {}, 'b': {}, 'B': {},
	'z': {}, 'Z': {}, '%': {},
}

// ValidateFormat checks a display format string against the allow-listed
// strftime subset. Unrecognized directives fail closed.
func ValidateFormat(format string) error {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormatDirective, "trailing percent"), "directive", "%")
		}
		i++
		if _, ok := allowedDirectives[format[i]]; !ok {
			return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormatDirective, "directive not in allow list"), "directive", "%"+string(format[i]))
		}
	}
	return nil
}
