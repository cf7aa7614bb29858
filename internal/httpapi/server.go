// Package httpapi exposes the banner pipeline over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/timebanner/timebanner/internal/app"
	"github.com/timebanner/timebanner/internal/cache"
	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
)

const shutdownTimeout = 5 * time.Second

// Server serves banner and stats endpoints and owns the cache sweeper's
// lifecycle.
type Server struct {
	app   *app.App
	cache *cache.Cache
	log   ports.Logger
	http  *http.Server
}

// NewServer creates a Server listening on addr.
func NewServer(a *app.App, c *cache.Cache, log ports.Logger, addr string) *Server {
	s := &Server{
		app:   a,
		cache: c,
		log:   log,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /relative/{token}", s.handleBanner(domain.ModeRelative))
	mux.HandleFunc("GET /absolute/{token}", s.handleBanner(domain.ModeAbsolute))
	mux.HandleFunc("GET /{token}", s.handleBanner(""))
	// Everything the patterns above do not claim, so misses get the same
	// JSON error envelope as the rest of the API.
	mux.HandleFunc("/", s.handleNotFound)
	return mux
}

// Run serves HTTP and runs the cache's expiry sweeper until ctx is
// cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.cache.Run(ctx)
	})

	g.Go(func() error {
		s.log.Info("listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleIndex redirects to the relative banner for the current instant, which
// doubles as a liveness probe.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	target := fmt.Sprintf("/relative/%d", s.app.Now())
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, zerr.With(zerr.Wrap(ErrNotFound, "no such route"), "path", r.URL.Path))
}

func (s *Server) handleBanner(mode domain.DisplayMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, format := splitExtension(r.PathValue("token"))

		q, err := qualifiersFromRequest(r, mode)
		if err != nil {
			s.writeError(w, err)
			return
		}

		banner, err := s.app.Banner(r.Context(), body, q, format)
		if err != nil {
			s.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", banner.ContentType)
		w.Header().Set("Cache-Control", cacheControl(banner.Mode))
		w.Header().Set(nowHeader, strconv.FormatInt(banner.ResolvedNow.Unix(), 10))
		if _, err := w.Write(banner.Bytes); err != nil {
			s.log.Warn("failed to write response", "error", err)
		}
	}
}

// splitExtension strips a trailing ".svg" or ".png" from the token and
// returns the requested output format. Any other suffix stays part of the
// token so fractional-second time sections survive, and the format defaults
// to SVG.
func splitExtension(token string) (string, domain.OutputFormat) {
	idx := strings.LastIndexByte(token, '.')
	if idx <= 0 {
		return token, domain.FormatSVG
	}
	switch ext := strings.ToLower(token[idx+1:]); ext {
	case string(domain.FormatSVG), string(domain.FormatPNG):
		return token[:idx], domain.OutputFormatFromExtension(ext)
	}
	return token, domain.FormatSVG
}

// cacheControl picks client caching appropriate to the display mode.
// Relative banners go stale at the minute boundary; absolute banners for a
// fixed instant and format never change.
func cacheControl(mode domain.DisplayMode) string {
	if mode == domain.ModeRelative {
		return "public, max-age=60"
	}
	return "public, max-age=86400"
}
