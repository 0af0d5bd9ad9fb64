package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/azwatch/campfin-backend/internal/models"
	"github.com/azwatch/campfin-backend/internal/response"
)

type searchService interface {
	Search(ctx context.Context, q string, limit, offset int) []models.SearchResult
}

type searchHandlers struct {
	ResponseHandler response.ResponseHandler
	SearchSvc       searchService
}

func NewSearchHandlers(deps *Deps) *searchHandlers {
	return &searchHandlers{
		ResponseHandler: deps.ResponseHandler,
		SearchSvc:       deps.SearchSvc,
	}
}

// Search never fails: a blank query, a bad limit, or an unreachable
// facade all come back as 200 with whatever results exist.
func (h *searchHandlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	results := h.SearchSvc.Search(r.Context(), q, limit, offset)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, results)
}
