package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// Candidate fetch limits before in-memory scoring. Multi-token searches cast
// a wider net at the store because the ALL-tokens filter happens here.
const (
	singleTokenCandidateLimit = 200
	multiTokenCandidateLimit  = 500
)

// Relevance scores, lower is better.
const (
	// Single-token: exact match on given name or surname.
	relevanceExact = 1
	// Single-token: given name or surname starts with the token.
	relevancePrefix = 2
	// Single-token: exact match on middle name.
	relevanceMiddleExact = 3
	// Single-token: middle name starts with the token.
	relevanceMiddlePrefix = 4
	// Single-token: substring match anywhere.
	relevanceSubstring = 5

	// Multi-token: full name equals the search string.
	relevanceFullExact = 1
	// Multi-token: full name starts with the search string.
	relevanceFullPrefix = 2
	// Multi-token: all tokens present, order-independent.
	relevanceAllTokens = 3
)

// ScoredPerson is a search hit with its relevance score and display name.
type ScoredPerson struct {
	Person      entities.Person `json:"person"`
	DisplayName string          `json:"display_name"`
	Relevance   int             `json:"relevance"`
}

// SearchService finds persons by name with relevance ranking.
type SearchService struct {
	store ports.Store
}

// NewSearchService creates a new SearchService.
func NewSearchService(store ports.Store) *SearchService {
	return &SearchService{store: store}
}

// Search tokenizes the term on whitespace and ranks matching persons.
// Single-token searches match any name field; multi-token searches require
// every token to appear somewhere in the full name. Results are ordered by
// relevance ascending, then display name ascending, and are stable across
// identical calls on unmodified data.
func (s *SearchService) Search(ctx context.Context, term string) ([]ScoredPerson, error) {
	tokens := strings.Fields(term)
	if len(tokens) == 0 {
		return []ScoredPerson{}, nil
	}

	limit := singleTokenCandidateLimit
	if len(tokens) > 1 {
		limit = multiTokenCandidateLimit
	}

	candidates, err := s.store.SearchPersons(ctx, tokens, limit)
	if err != nil {
		return nil, fmt.Errorf("searching persons: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(term))
	results := make([]ScoredPerson, 0, len(candidates))
	for i := range candidates {
		person := &candidates[i]
		fullName := strings.ToLower(person.FullName())

		if len(tokens) > 1 && !containsAllTokens(fullName, tokens) {
			continue
		}

		var relevance int
		if len(tokens) > 1 {
			relevance = scoreMultiToken(fullName, search)
		} else {
			relevance = scoreSingleToken(person, search)
		}

		results = append(results, ScoredPerson{
			Person:      *person,
			DisplayName: person.DisplayName(),
			Relevance:   relevance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance < results[j].Relevance
		}
		return results[i].DisplayName < results[j].DisplayName
	})
	return results, nil
}

func containsAllTokens(fullName string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(fullName, strings.ToLower(token)) {
			return false
		}
	}
	return true
}

func scoreMultiToken(fullName, search string) int {
	switch {
	case fullName == search:
		return relevanceFullExact
	case strings.HasPrefix(fullName, search):
		return relevanceFullPrefix
	default:
		return relevanceAllTokens
	}
}

func scoreSingleToken(person *entities.Person, token string) int {
	given := strings.ToLower(person.GivenName)
	middle := strings.ToLower(person.MiddleName)
	surname := strings.ToLower(person.Surname)

	switch {
	case given == token || surname == token:
		return relevanceExact
	case strings.HasPrefix(given, token) || strings.HasPrefix(surname, token):
		return relevancePrefix
	case middle == token:
		return relevanceMiddleExact
	case middle != "" && strings.HasPrefix(middle, token):
		return relevanceMiddlePrefix
	default:
		return relevanceSubstring
	}
}
