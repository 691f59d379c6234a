// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// PersonHandler handles person record use cases.
type PersonHandler struct {
	personService *services.PersonService
}

// NewPersonHandler creates a new person handler.
func NewPersonHandler(personService *services.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// HandleAdd creates a new person record.
func (h *PersonHandler) HandleAdd(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	id, err := h.personService.Create(ctx, person)
	if err != nil {
		return nil, err
	}
	person.ID = id
	return person, nil
}

// HandleEdit updates an existing person record.
func (h *PersonHandler) HandleEdit(ctx context.Context, person *entities.Person) error {
	return h.personService.Update(ctx, person)
}

// HandleShow returns a person by id, or an error when absent.
func (h *PersonHandler) HandleShow(ctx context.Context, id int64) (*entities.Person, error) {
	person, err := h.personService.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: %d", ports.ErrPersonNotFound, id)
	}
	return person, nil
}

// PersonDetail is a person payload with the derived names included.
type PersonDetail struct {
	entities.Person
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
}

// HandleDetail returns a person with derived name fields, or an error when
// absent.
func (h *PersonHandler) HandleDetail(ctx context.Context, id int64) (*PersonDetail, error) {
	person, err := h.HandleShow(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PersonDetail{
		Person:      *person,
		FullName:    person.FullName(),
		DisplayName: person.DisplayName(),
	}, nil
}

// HandleList lists persons with optional name filters.
func (h *PersonHandler) HandleList(ctx context.Context, givenFilter, surnameFilter string) ([]entities.Person, error) {
	return h.personService.List(ctx, givenFilter, surnameFilter)
}

// SurnamesResult contains the distinct surnames and the person count.
type SurnamesResult struct {
	Surnames []string `json:"surnames"`
	Total    int      `json:"total_people"`
}

// HandleSurnames lists the distinct surnames in the store.
func (h *PersonHandler) HandleSurnames(ctx context.Context) (*SurnamesResult, error) {
	surnames, err := h.personService.Surnames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing surnames: %w", err)
	}
	total, err := h.personService.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting persons: %w", err)
	}
	return &SurnamesResult{Surnames: surnames, Total: total}, nil
}
