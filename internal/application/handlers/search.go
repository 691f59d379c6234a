package handlers

import (
	"context"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// SearchHandler handles name searches.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchResult contains one page of a name search. Count is the number of
// results in this page; Total is the match count before paging.
type SearchResult struct {
	Query   string                  `json:"query"`
	Results []services.ScoredPerson `json:"results"`
	Count   int                     `json:"count"`
	Total   int                     `json:"total"`
	Offset  int                     `json:"offset"`
}

// Handle searches for persons matching the term.
func (h *SearchHandler) Handle(ctx context.Context, term string) (*SearchResult, error) {
	return h.HandlePaged(ctx, term, 0, 0)
}

// HandlePaged searches and returns one page of ranked results. A limit of 0
// returns everything from offset onward.
func (h *SearchHandler) HandlePaged(ctx context.Context, term string, limit, offset int) (*SearchResult, error) {
	results, err := h.searchService.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("searching persons: %w", err)
	}

	total := len(results)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	page := results[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}

	return &SearchResult{
		Query:   term,
		Results: page,
		Count:   len(page),
		Total:   total,
		Offset:  offset,
	}, nil
}
