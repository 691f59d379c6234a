package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// FamilyHandler handles direct-family queries.
type FamilyHandler struct {
	familyService *services.FamilyService
	personService *services.PersonService
}

// NewFamilyHandler creates a new family handler.
func NewFamilyHandler(
	familyService *services.FamilyService,
	personService *services.PersonService,
) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		personService: personService,
	}
}

// SpouseDetail is a partner with a human-readable partnership summary.
type SpouseDetail struct {
	Person  entities.Person `json:"person"`
	Details string          `json:"details"`
}

// FamilyResult contains a person's direct family.
type FamilyResult struct {
	Person   entities.Person   `json:"person"`
	Parents  []entities.Person `json:"parents"`
	Siblings []entities.Person `json:"siblings"`
	Spouses  []SpouseDetail    `json:"spouses"`
	Children []entities.Person `json:"children"`
}

// Handle assembles the direct family of a person: parents, siblings, spouses
// with partnership details, and children.
func (h *FamilyHandler) Handle(ctx context.Context, personID int64) (*FamilyResult, error) {
	person, err := h.personService.Get(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if person == nil {
		return nil, fmt.Errorf("%w: %d", ports.ErrPersonNotFound, personID)
	}

	parents, err := h.familyService.Parents(ctx, personID)
	if err != nil {
		return nil, err
	}
	siblings, err := h.familyService.Siblings(ctx, personID)
	if err != nil {
		return nil, err
	}
	partners, err := h.familyService.Partners(ctx, personID)
	if err != nil {
		return nil, err
	}
	childLinks, err := h.familyService.Children(ctx, personID)
	if err != nil {
		return nil, err
	}

	spouses := make([]SpouseDetail, 0, len(partners))
	for i := range partners {
		spouses = append(spouses, SpouseDetail{
			Person:  partners[i].Person,
			Details: describePartnership(&partners[i].Partnership),
		})
	}

	children := make([]entities.Person, 0, len(childLinks))
	for i := range childLinks {
		children = append(children, childLinks[i].Person)
	}

	return &FamilyResult{
		Person:   *person,
		Parents:  parents,
		Siblings: siblings,
		Spouses:  spouses,
		Children: children,
	}, nil
}

// describePartnership renders a partnership edge as a short summary, e.g.
// "married 1870 to 1920, marriage #2".
func describePartnership(edge *entities.PartnershipEdge) string {
	var parts []string

	verb := "partnered"
	if edge.Type == entities.PartnershipMarriage {
		verb = "married"
	}
	switch {
	case edge.StartYear != nil && edge.EndYear != nil:
		parts = append(parts, fmt.Sprintf("%s %d to %d", verb, *edge.StartYear, *edge.EndYear))
	case edge.StartYear != nil:
		parts = append(parts, fmt.Sprintf("%s %d", verb, *edge.StartYear))
	default:
		parts = append(parts, verb)
	}

	if edge.SequenceNumber != nil {
		noun := "partnership"
		if edge.Type == entities.PartnershipMarriage {
			noun = "marriage"
		}
		parts = append(parts, fmt.Sprintf("%s #%d", noun, *edge.SequenceNumber))
	}

	return strings.Join(parts, ", ")
}
