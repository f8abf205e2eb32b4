package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/spf13/cast"

	"github.com/okian/uom/internal/domain/prefs"
)

// formatRequest renders a base value for a metric key. Value may be null:
// missing measurements still render with the unit that would have been used.
type formatRequest struct {
	Key       string `json:"key"`
	Value     any    `json:"value"`
	Precision *int   `json:"precision"`
}

// handleFormat handles POST /format.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "missing key")
		return
	}

	var base *float64
	if req.Value != nil {
		v, err := cast.ToFloat64E(req.Value)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", "value is not numeric")
			return
		}
		base = &v
	}

	precision := -1
	if req.Precision != nil {
		precision = *req.Precision
	}

	out, err := s.deps.Format(r.Context(), req.Key, base, precision)
	switch {
	case errors.Is(err, prefs.ErrNoPreference):
		writeError(w, r, http.StatusConflict, "no_preference", err.Error())
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	render.JSON(w, r, out)
}
