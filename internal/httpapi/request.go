package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// ErrBadQualifier reports an invalid query parameter or header, as opposed
// to a failure inside the token itself.
var ErrBadQualifier = zerr.New("invalid request qualifier")

// nowHeader lets clients pin the reference instant for relative tokens
// without touching the URL, so shared links stay cache-friendly.
const nowHeader = "X-Time-Now"

// qualifiersFromRequest extracts the side-channel parse inputs from query
// parameters and headers. mode is the display mode forced by the route, or
// empty when the token's own shape decides.
func qualifiersFromRequest(r *http.Request, mode domain.DisplayMode) (domain.Qualifiers, error) {
	query := r.URL.Query()

	q := domain.Qualifiers{
		Mode:   mode,
		Zone:   query.Get("tz"),
		Format: query.Get("format"),
	}

	order, ok := domain.ParseDateOrder(query.Get("order"))
	if !ok {
		return q, zerr.With(zerr.Wrap(ErrBadQualifier, "unrecognized date order"), "order", query.Get("order"))
	}
	q.Order = order

	rawNow := query.Get("now")
	if rawNow == "" {
		rawNow = r.Header.Get(nowHeader)
	}
	if rawNow != "" {
		secs, err := strconv.ParseInt(rawNow, 10, 64)
		if err != nil {
			return q, zerr.With(zerr.Wrap(ErrBadQualifier, "now is not epoch seconds"), "now", rawNow)
		}
		q.Now = time.Unix(secs, 0).UTC()
	}

	return q, nil
}
