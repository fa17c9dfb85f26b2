// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/kselvam/pulseboard/internal/domain/catalog"
)

// CategoriesDependencies defines the interface for catalog listing.
type CategoriesDependencies interface {
	Categories(ctx context.Context) []catalog.Config
}

// CategoriesHandler handles catalog listing requests.
type CategoriesHandler struct {
	deps CategoriesDependencies
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps CategoriesDependencies) *CategoriesHandler {
	return &CategoriesHandler{deps: deps}
}

// HandleGetCategories handles GET /categories requests.
func (h *CategoriesHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Categories(r.Context()))
}
