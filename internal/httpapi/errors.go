package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// ErrNotFound is returned for paths no route claims.
var ErrNotFound = zerr.New("not found")

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorCode maps an error to its stable machine-readable code. Clients match
// on the code, never on the message text.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingHour):
		return "missing_hour"
	case errors.Is(err, domain.ErrFieldOutOfRange):
		return "field_out_of_range"
	case errors.Is(err, domain.ErrInvalidTimezoneSuffix):
		return "invalid_timezone_suffix"
	case errors.Is(err, domain.ErrUnknownZone):
		return "unknown_zone"
	case errors.Is(err, domain.ErrUnsupportedFormatDirective):
		return "unsupported_format_directive"
	case errors.Is(err, domain.ErrInconsistentSeparators):
		return "inconsistent_separators"
	case errors.Is(err, domain.ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, ErrBadQualifier):
		return "bad_qualifier"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRender):
		return "render_failed"
	}
	return "internal"
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsParseError(err) || errors.Is(err, ErrBadQualifier):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	default:
		s.log.Error(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    errorCode(err),
		Message: err.Error(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.app.Stats()); err != nil {
		s.log.Warn("failed to encode stats", "error", err)
	}
}
