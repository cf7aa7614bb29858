package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/timebanner/timebanner/internal/core/domain"
)

func TestRenderAbsoluteSVG(t *testing.T) {
	r := NewRenderer(clockwork.NewFakeClock())
	spec := domain.ParsedTimeSpec{
		Mode:    domain.ModeAbsolute,
		Instant: time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC),
		Zone:    domain.UTCZone(),
		Format:  "%Y-%m-%d %H:%M:%S %Z",
	}

	out, err := r.Render(context.Background(), spec, domain.FormatSVG)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("<svg")))
	require.Contains(t, string(out), "2023-06-14 20:00:00 UTC")
}

func TestRenderAbsoluteHonorsZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	r := NewRenderer(clockwork.NewFakeClock())
	spec := domain.ParsedTimeSpec{
		Mode:    domain.ModeAbsolute,
		Instant: time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC),
		Zone:    domain.Zone{Name: "Asia/Tokyo", Location: tokyo},
		Format:  "%Y-%m-%d %H:%M",
	}

	out, err := r.Render(context.Background(), spec, domain.FormatSVG)
	require.NoError(t, err)
	require.Contains(t, string(out), "2023-06-15 05:00")
}

func TestRenderRelativePhrasing(t *testing.T) {
	now := time.Date(2023, 6, 14, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	r := NewRenderer(clock)

	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{name: "past", instant: now.Add(-5 * time.Minute), want: "5 minutes ago"},
		{name: "future", instant: now.Add(2 * time.Hour), want: "2 hours from now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.ParsedTimeSpec{
				Mode:    domain.ModeRelative,
				Instant: tt.instant,
				Zone:    domain.UTCZone(),
				Format:  domain.DefaultFormat,
			}
			out, err := r.Render(context.Background(), spec, domain.FormatSVG)
			require.NoError(t, err)
			require.Contains(t, string(out), tt.want)
		})
	}
}

func TestRenderSVGEscapesMarkup(t *testing.T) {
	r := NewRenderer(clockwork.NewFakeClock())
	spec := domain.ParsedTimeSpec{
		Mode:    domain.ModeAbsolute,
		Instant: time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC),
		Zone:    domain.UTCZone(),
		// Literal format text flows straight into the banner, so markup in
		// it must come out inert.
		Format: `%H:%M <script href="https://evil.example">`,
	}

	out, err := r.Render(context.Background(), spec, domain.FormatSVG)
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script")
	require.Contains(t, string(out), "&lt;script href=&#34;https://evil.example&#34;&gt;")
}

func TestRenderPNG(t *testing.T) {
	r := NewRenderer(clockwork.NewFakeClock())
	spec := domain.ParsedTimeSpec{
		Mode:    domain.ModeAbsolute,
		Instant: time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC),
		Zone:    domain.UTCZone(),
		Format:  domain.DefaultFormat,
	}

	out, err := r.Render(context.Background(), spec, domain.FormatPNG)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, bannerHeight, img.Bounds().Dy())
	require.Greater(t, img.Bounds().Dx(), bannerPadPx)
}

func TestRenderWidthScalesWithText(t *testing.T) {
	r := NewRenderer(clockwork.NewFakeClock())
	short := domain.ParsedTimeSpec{
		Mode:    domain.ModeAbsolute,
		Instant: time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC),
		Zone:    domain.UTCZone(),
		Format:  "%H:%M",
	}
	long := short
	long.Format = "%A, %d %B %Y %H:%M:%S %Z"

	a, err := r.Render(context.Background(), short, domain.FormatPNG)
	require.NoError(t, err)
	b, err := r.Render(context.Background(), long, domain.FormatPNG)
	require.NoError(t, err)

	imgA, err := png.Decode(bytes.NewReader(a))
	require.NoError(t, err)
	imgB, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Greater(t, imgB.Bounds().Dx(), imgA.Bounds().Dx())
}
