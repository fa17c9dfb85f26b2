// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	service "github.com/kselvam/pulseboard/internal/app"
	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/frame"
)

// KPIsDependencies defines the interface for overview queries.
type KPIsDependencies interface {
	Overview(ctx context.Context, category string, sel *frame.Selection) (*service.Overview, error)
}

// KPIsHandler handles KPI bundle requests.
type KPIsHandler struct {
	deps KPIsDependencies
}

// NewKPIsHandler creates a new KPIs handler.
func NewKPIsHandler(deps KPIsDependencies) *KPIsHandler {
	return &KPIsHandler{deps: deps}
}

// HandleGetKPIs handles GET /kpis requests. An empty filter result is a
// valid response with neutral metrics; only an unknown category is a 404.
func (h *KPIsHandler) HandleGetKPIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing_category", ErrBadRequest)
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	overview, err := h.deps.Overview(r.Context(), category, sel)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			writeError(w, http.StatusNotFound, "unknown_category", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
