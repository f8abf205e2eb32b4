// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/okian/uom/internal/app"
	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/internal/migrate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Convert(ctx context.Context, value float64, from, to unit.Unit) (float64, error)
	ToBase(ctx context.Context, value float64, u unit.Unit) (float64, error)
	FromBase(ctx context.Context, base float64, u unit.Unit) (float64, error)
	Classify(ctx context.Context, metricKey string) unit.Family
	Format(ctx context.Context, metricKey string, base *float64, precision int) (app.FormattedValue, error)
	ResolveFromUnitRef(ctx context.Context, rawUnit string, ref prefs.UnitRef) (unit.Unit, error)
	Preferences(ctx context.Context) (map[unit.Family]unit.Unit, uint64)
	SetPreference(ctx context.Context, f unit.Family, u unit.Unit) (uint64, error)
	MigrateBatch(ctx context.Context, records []model.TestResult) ([]model.MigratedResult, migrate.Report)
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps Dependencies
}

// NewServer creates a new API server.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Post("/convert", s.handleConvert)
	r.Get("/classify", s.handleClassify)
	r.Post("/format", s.handleFormat)
	r.Post("/resolve", s.handleResolve)
	r.Get("/preferences", s.handleGetPreferences)
	r.Put("/preferences", s.handlePutPreferences)
	r.Post("/migrate", s.handleMigrate)

	return r
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Code: code, Message: message})
}
