package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/domain/unit"
)

type preferencesResponse struct {
	Version uint64            `json:"version"`
	Units   map[string]string `json:"units"`
}

// handleGetPreferences handles GET /preferences.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	units, version := s.deps.Preferences(r.Context())
	out := preferencesResponse{Version: version, Units: make(map[string]string, len(units))}
	for f, u := range units {
		out.Units[string(f)] = string(u)
	}
	render.JSON(w, r, out)
}

type putPreferenceRequest struct {
	Family string `json:"family"`
	Unit   string `json:"unit"`
}

type putPreferenceResponse struct {
	Version uint64 `json:"version"`
}

// handlePutPreferences handles PUT /preferences.
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var req putPreferenceRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Family) == "" || strings.TrimSpace(req.Unit) == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "missing family or unit")
		return
	}

	version, err := s.deps.SetPreference(r.Context(), unit.Family(req.Family), unit.Unit(req.Unit))
	switch {
	case errors.Is(err, prefs.ErrUnknownFamily), errors.Is(err, prefs.ErrWrongFamily):
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	render.JSON(w, r, putPreferenceResponse{Version: version})
}

// resolveRequest resolves a display unit for a legacy payload carrying an
// explicit unit descriptor.
type resolveRequest struct {
	RawUnit string        `json:"raw_unit"`
	Ref     prefs.UnitRef `json:"ref"`
}

type resolveResponse struct {
	Unit string `json:"unit"`
}

// handleResolve handles POST /resolve.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	u, err := s.deps.ResolveFromUnitRef(r.Context(), req.RawUnit, req.Ref)
	switch {
	case errors.Is(err, prefs.ErrNoPreference):
		writeError(w, r, http.StatusConflict, "no_preference", err.Error())
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	render.JSON(w, r, resolveResponse{Unit: string(u)})
}
