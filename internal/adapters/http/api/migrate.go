package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/internal/migrate"
)

type migrateRequest struct {
	Records []model.TestResult `json:"records"`
}

type migrateResponse struct {
	Results []model.MigratedResult `json:"results"`
	Report  migrate.Report         `json:"report"`
}

// handleMigrate handles POST /migrate: batch-converts legacy records and
// returns the migrated triples with the validation report.
func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	var req migrateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if len(req.Records) == 0 {
		writeError(w, r, http.StatusBadRequest, "bad_request", "no records")
		return
	}

	results, report := s.deps.MigrateBatch(r.Context(), req.Records)
	render.JSON(w, r, migrateResponse{Results: results, Report: report})
}
