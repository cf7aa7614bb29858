package render

import (
	"bytes"
	_ "embed"
	"text/template"

	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
)

//go:embed basic.svg
var bannerTemplate string

var bannerTmpl = template.Must(template.New("banner").Parse(bannerTemplate))

// glyphWidth approximates the pixel advance of one monospace glyph at the
// banner's font size. The banner width scales with the text so long
// timestamps do not clip.
const (
	glyphWidth  = 10
	bannerPadPx = 24
)

type bannerData struct {
	Text  string
	Width int
}

func renderSVG(text string) ([]byte, error) {
	var buf bytes.Buffer
	data := bannerData{
		// Rendered text can carry format-qualifier input, so it must never
		// reach the XML unescaped. Width is sized from the raw text.
		Text:  template.HTMLEscapeString(text),
		Width: len(text)*glyphWidth + bannerPadPx,
	}
	if err := bannerTmpl.Execute(&buf, data); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRender, err.Error()), "text", text)
	}
	return buf.Bytes(), nil
}
