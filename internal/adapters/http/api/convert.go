package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/spf13/cast"

	"github.com/okian/uom/internal/domain/unit"
)

// convertRequest carries a conversion between two display units. Value is
// accepted as any JSON scalar; legacy clients send numbers as strings.
type convertRequest struct {
	Value any    `json:"value"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func (c convertRequest) validate() error {
	switch {
	case c.Value == nil:
		return fmt.Errorf("%w: missing value", ErrBadRequest)
	case strings.TrimSpace(c.From) == "":
		return fmt.Errorf("%w: missing from", ErrBadRequest)
	case strings.TrimSpace(c.To) == "":
		return fmt.Errorf("%w: missing to", ErrBadRequest)
	}
	return nil
}

type convertResponse struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

// handleConvert handles POST /convert.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	value, err := cast.ToFloat64E(req.Value)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "value is not numeric")
		return
	}

	out, err := s.deps.Convert(r.Context(), value, unit.Unit(req.From), unit.Unit(req.To))
	switch {
	case errors.Is(err, unit.ErrIncompatibleUnits):
		writeError(w, r, http.StatusUnprocessableEntity, "incompatible_units", err.Error())
		return
	case errors.Is(err, unit.ErrUnknownUnit):
		writeError(w, r, http.StatusBadRequest, "unknown_unit", err.Error())
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	render.JSON(w, r, convertResponse{Value: out, From: req.From, To: req.To})
}
