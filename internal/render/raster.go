package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"go.trai.ch/zerr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/timebanner/timebanner/internal/core/domain"
)

const bannerHeight = 48

var (
	bannerBG = color.RGBA{R: 0x1f, G: 0x24, B: 0x30, A: 0xff}
	bannerFG = color.RGBA{R: 0xe6, G: 0xe1, B: 0xcf, A: 0xff}
)

func renderPNG(text string) ([]byte, error) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	width := textWidth + bannerPadPx

	img := image.NewRGBA(image.Rect(0, 0, width, bannerHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(bannerBG), image.Point{}, draw.Src)

	metrics := face.Metrics()
	baseline := bannerHeight/2 + metrics.Ascent.Ceil()/2
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(bannerFG),
		Face: face,
		Dot:  fixed.P((width-textWidth)/2, baseline),
	}
	drawer.DrawString(text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRender, err.Error()), "text", text)
	}
	return buf.Bytes(), nil
}
