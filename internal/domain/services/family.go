package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// Partner pairs a partner with the partnership edge connecting them, so
// callers can render marriage metadata alongside the person.
type Partner struct {
	Person      entities.Person          `json:"person"`
	Partnership entities.PartnershipEdge `json:"partnership"`
}

// ChildLink pairs a child with the parent-child edge connecting them.
type ChildLink struct {
	Person entities.Person          `json:"person"`
	Edge   entities.ParentChildEdge `json:"edge"`
}

// FamilyService derives direct family relationships from the edge sets.
// All operations are read-only; an unknown person yields empty results.
type FamilyService struct {
	store ports.Store
}

// NewFamilyService creates a new FamilyService.
func NewFamilyService(store ports.Store) *FamilyService {
	return &FamilyService{store: store}
}

// Parents returns every person recorded as a parent of personID, in edge
// order.
func (s *FamilyService) Parents(ctx context.Context, personID int64) ([]entities.Person, error) {
	edges, err := s.store.FindParentEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding parent edges: %w", err)
	}

	parents := make([]entities.Person, 0, len(edges))
	for i := range edges {
		parent, err := s.store.FindPersonByID(ctx, edges[i].ParentID)
		if err != nil {
			return nil, fmt.Errorf("finding parent %d: %w", edges[i].ParentID, err)
		}
		if parent != nil {
			parents = append(parents, *parent)
		}
	}
	return parents, nil
}

// Siblings returns every other person sharing at least one parent with
// personID, deduplicated and sorted by id ascending. Half and full siblings
// are not distinguished.
func (s *FamilyService) Siblings(ctx context.Context, personID int64) ([]entities.Person, error) {
	parentEdges, err := s.store.FindParentEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding parent edges: %w", err)
	}

	siblingIDs := make(map[int64]bool)
	for i := range parentEdges {
		childEdges, err := s.store.FindChildEdges(ctx, parentEdges[i].ParentID)
		if err != nil {
			return nil, fmt.Errorf("finding children of parent %d: %w", parentEdges[i].ParentID, err)
		}
		for j := range childEdges {
			if childEdges[j].ChildID != personID {
				siblingIDs[childEdges[j].ChildID] = true
			}
		}
	}
	if len(siblingIDs) == 0 {
		return []entities.Person{}, nil
	}

	ids := make([]int64, 0, len(siblingIDs))
	for id := range siblingIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	siblings, err := s.store.FindPersonsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("finding siblings: %w", err)
	}
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].ID < siblings[j].ID })
	return siblings, nil
}

// Partners returns every partner of personID together with the partnership
// edge, resolving either direction of the symmetric relation.
func (s *FamilyService) Partners(ctx context.Context, personID int64) ([]Partner, error) {
	edges, err := s.store.FindPartnerships(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding partnerships: %w", err)
	}

	partners := make([]Partner, 0, len(edges))
	for i := range edges {
		otherID := edges[i].OtherPerson(personID)
		other, err := s.store.FindPersonByID(ctx, otherID)
		if err != nil {
			return nil, fmt.Errorf("finding partner %d: %w", otherID, err)
		}
		if other != nil {
			partners = append(partners, Partner{Person: *other, Partnership: edges[i]})
		}
	}
	return partners, nil
}

// Children returns every child of personID together with the parent-child
// edge, in edge order.
func (s *FamilyService) Children(ctx context.Context, personID int64) ([]ChildLink, error) {
	edges, err := s.store.FindChildEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding child edges: %w", err)
	}

	children := make([]ChildLink, 0, len(edges))
	for i := range edges {
		child, err := s.store.FindPersonByID(ctx, edges[i].ChildID)
		if err != nil {
			return nil, fmt.Errorf("finding child %d: %w", edges[i].ChildID, err)
		}
		if child != nil {
			children = append(children, ChildLink{Person: *child, Edge: edges[i]})
		}
	}
	return children, nil
}
