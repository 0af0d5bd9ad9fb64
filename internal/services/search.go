package services

import (
	"context"
	"strings"

	"github.com/azwatch/campfin-backend/internal/models"
	"github.com/azwatch/campfin-backend/pkg/logger"
)

type searchFacade interface {
	Invoke(ctx context.Context, procedure string, params any, out any) error
}

type searchService struct {
	facade       searchFacade
	defaultLimit int
}

func NewSearchService(facade searchFacade, defaultLimit int) *searchService {
	return &searchService{facade: facade, defaultLimit: defaultLimit}
}

// Search forwards a trimmed free-text query to the external ranking
// procedure. Two deliberate non-error paths keep the search page renderable:
// an empty or whitespace-only query returns an empty list without touching
// the facade, and an upstream failure degrades to an empty list.
func (s *searchService) Search(ctx context.Context, query string, limit, offset int) []models.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SearchResult{}
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	var results []models.SearchResult
	err := s.facade.Invoke(ctx, "search_entities", map[string]any{
		"q":   query,
		"lim": limit,
		"off": offset,
	}, &results)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn("search degraded to empty results", "query", query, "error", err)
		return []models.SearchResult{}
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results
}
