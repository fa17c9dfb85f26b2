// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	service "github.com/kselvam/pulseboard/internal/app"
	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/frame"
)

// TableDependencies defines the interface for grouped table queries.
type TableDependencies interface {
	GroupedTable(ctx context.Context, category string, sel *frame.Selection, groupBy string, limit int) ([]Group, error)
}

// TableHandler handles grouped table requests.
type TableHandler struct {
	deps TableDependencies
}

// NewTableHandler creates a new table handler.
func NewTableHandler(deps TableDependencies) *TableHandler {
	return &TableHandler{deps: deps}
}

// HandleGetTable handles GET /table?category=...&group_by=...&limit=N requests.
func (h *TableHandler) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()

	category := strings.TrimSpace(q.Get("category"))
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing_category", ErrBadRequest)
		return
	}
	groupBy := strings.TrimSpace(q.Get("group_by"))
	if groupBy == "" {
		groupBy = service.GroupByEntity
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		limit = n
	}
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	groups, err := h.deps.GroupedTable(r.Context(), category, sel, groupBy, limit)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownCategory):
			writeError(w, http.StatusNotFound, "unknown_category", err)
		case errors.Is(err, service.ErrInvalidGroupBy):
			writeError(w, http.StatusBadRequest, "invalid_group_by", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
