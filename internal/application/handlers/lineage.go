package handlers

import (
	"context"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// LineageHandler handles ancestor path queries.
type LineageHandler struct {
	lineageService *services.LineageService
	personService  *services.PersonService
	defaultSurname string
}

// NewLineageHandler creates a new lineage handler. defaultSurname is used
// when a query names no target family.
func NewLineageHandler(
	lineageService *services.LineageService,
	personService *services.PersonService,
	defaultSurname string,
) *LineageHandler {
	return &LineageHandler{
		lineageService: lineageService,
		personService:  personService,
		defaultSurname: defaultSurname,
	}
}

// LineageResult contains a person's resolved ancestor path.
type LineageResult struct {
	Person  entities.Person        `json:"person"`
	Surname string                 `json:"surname"`
	Path    *services.AncestorPath `json:"path"`
}

// Handle resolves the path from a person up to their earliest ancestor in
// the given family. An empty surname falls back to the configured default.
// Path is nil when no ancestor of that family is reachable.
func (h *LineageHandler) Handle(ctx context.Context, personID int64, surname string) (*LineageResult, error) {
	person, err := h.personService.Get(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: %d", ports.ErrPersonNotFound, personID)
	}

	if surname == "" {
		surname = h.defaultSurname
	}

	path, err := h.lineageService.AncestorPath(ctx, personID, surname)
	if err != nil {
		return nil, err
	}

	return &LineageResult{
		Person:  *person,
		Surname: surname,
		Path:    path,
	}, nil
}

// HandleRootPaths returns every root-to-person path, regardless of family.
func (h *LineageHandler) HandleRootPaths(ctx context.Context, personID int64) ([]entities.LineagePath, error) {
	person, err := h.personService.Get(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: %d", ports.ErrPersonNotFound, personID)
	}
	return h.lineageService.FindRootPaths(ctx, personID)
}
