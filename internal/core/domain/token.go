// Package domain contains the core types of the time banner pipeline.
package domain

import "time"

// DisplayMode selects how a resolved instant is rendered: as a clock-face
// string or as "N minutes ago" phrasing. It never affects how the instant
// itself is resolved.
type DisplayMode string

const (
	// ModeRelative renders the instant as an offset from the viewer's now.
	ModeRelative DisplayMode = "relative"
	// ModeAbsolute renders the instant as a formatted calendar date/time.
	ModeAbsolute DisplayMode = "absolute"
)

// OutputFormat is the requested image encoding of a render.
type OutputFormat string

const (
	// FormatSVG is the vector output format.
	FormatSVG OutputFormat = "svg"
	// FormatPNG is the raster output format.
	FormatPNG OutputFormat = "png"
)

// OutputFormatFromExtension maps a path extension to an OutputFormat.
// Unknown extensions default to SVG.
func OutputFormatFromExtension(ext string) OutputFormat {
	if ext == "png" {
		return FormatPNG
	}
	return FormatSVG
}

// MIMEType returns the content type to serve for this format.
func (f OutputFormat) MIMEType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// DateOrder is the component order of the date section of an absolute token.
type DateOrder string

const (
	// OrderYMD is the default Year-Month-Day order.
	OrderYMD DateOrder = "ymd"
	// OrderDMY is Day-Month-Year order.
	OrderDMY DateOrder = "dmy"
	// OrderMDY is Month-Day-Year order.
	OrderMDY DateOrder = "mdy"
)

// ParseDateOrder maps a user-supplied order string to a DateOrder. The empty
// string reports ok with a zero DateOrder so callers can apply their default.
func ParseDateOrder(s string) (DateOrder, bool) {
	switch DateOrder(s) {
	case "":
		return "", true
	case OrderYMD, OrderDMY, OrderMDY:
		return DateOrder(s), true
	}
	return "", false
}

// Qualifiers carries the side-channel inputs that accompany a raw time token:
// query- or header-supplied overrides extracted by the transport layer.
type Qualifiers struct {
	// Zone overrides any timezone found inside the token when non-empty.
	Zone string
	// Format overrides the default display format string when non-empty.
	Format string
	// Order overrides the default date component order when non-empty.
	Order DateOrder
	// Mode overrides the display mode implied by the token shape when non-empty.
	Mode DisplayMode
	// Now is an externally supplied reference instant for relative tokens.
	// When zero the pipeline's clock supplies the reference.
	Now time.Time
}

// RawTimeToken is the unparsed path segment plus its qualifiers, constructed
// once per request and never mutated.
type RawTimeToken struct {
	Body       string
	Qualifiers Qualifiers
}
