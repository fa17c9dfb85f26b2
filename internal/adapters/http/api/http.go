// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	service "github.com/kselvam/pulseboard/internal/app"
	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/frame"
	"github.com/kselvam/pulseboard/internal/domain/kpi"
)

// Group mirrors the read shape returned by grouped table queries.
type Group = kpi.Group

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Categories lists every resolvable category config.
	Categories(ctx context.Context) []catalog.Config

	// Overview runs the full dashboard pipeline for one category.
	Overview(ctx context.Context, category string, sel *frame.Selection) (*service.Overview, error)

	// GroupedTable returns a single grouped table for charting.
	GroupedTable(ctx context.Context, category string, sel *frame.Selection, groupBy string, limit int) ([]Group, error)

	// Stats reports service-level counters.
	Stats(ctx context.Context) service.Stats
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	categoriesHandler *CategoriesHandler
	kpisHandler       *KPIsHandler
	tableHandler      *TableHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(deps),
		categoriesHandler: NewCategoriesHandler(deps),
		kpisHandler:       NewKPIsHandler(deps),
		tableHandler:      NewTableHandler(deps),
		dashboardHandler:  newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.categoriesHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/kpis", MetricsMiddleware(s.kpisHandler.HandleGetKPIs, "kpis"))
	mux.HandleFunc("/table", MetricsMiddleware(s.tableHandler.HandleGetTable, "table"))
}

// Query parameters mapped to label dimensions of the datasets.
var labelParams = map[string]string{
	"states":       "state",
	"brands":       "phone_brand",
	"types":        "type_of_transaction",
	"entity_types": "entity_type",
}

// parseSelection builds a row selection from request query parameters.
// Absent parameters leave their dimension unconstrained.
func parseSelection(r *http.Request) (*frame.Selection, error) {
	q := r.URL.Query()
	sel := &frame.Selection{Labels: map[string][]string{}}

	var err error
	if sel.Years, err = parseInts(q.Get("years")); err != nil {
		return nil, err
	}
	if sel.Quarters, err = parseInts(q.Get("quarters")); err != nil {
		return nil, err
	}
	for param, dim := range labelParams {
		if vals := parseStrings(q.Get(param)); len(vals) > 0 {
			sel.Labels[dim] = vals
		}
	}
	return sel, nil
}

func parseInts(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, ErrBadRequest
		}
		out = append(out, n)
	}
	return out, nil
}

func parseStrings(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
