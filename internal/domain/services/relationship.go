package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// RelationshipService creates parent-child and partnership edges with
// validation: both persons must exist, self-loops are rejected and
// duplicates are refused.
type RelationshipService struct {
	store ports.Store
}

// NewRelationshipService creates a new RelationshipService.
func NewRelationshipService(store ports.Store) *RelationshipService {
	return &RelationshipService{store: store}
}

// AddParentChild creates a parent-child edge between two existing persons.
func (s *RelationshipService) AddParentChild(
	ctx context.Context,
	parentID, childID int64,
	relType entities.ParentChildType,
	confidence entities.ConfidenceLevel,
) (*entities.ParentChildEdge, error) {
	if parentID == childID {
		return nil, errors.New("a person cannot be their own parent")
	}
	if err := s.requirePersons(ctx, parentID, childID); err != nil {
		return nil, err
	}

	exists, err := s.store.HasParentChild(ctx, parentID, childID, relType)
	if err != nil {
		return nil, fmt.Errorf("checking existing relationship: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("relationship already exists between %d and %d", parentID, childID)
	}

	edge := &entities.ParentChildEdge{
		ParentID:   parentID,
		ChildID:    childID,
		Type:       relType,
		Confidence: confidence,
	}
	if _, err := s.store.AddParentChild(ctx, edge); err != nil {
		return nil, fmt.Errorf("adding relationship: %w", err)
	}

	details := map[string]any{"parent_id": parentID, "child_id": childID, "type": string(relType)}
	if err := s.store.LogAction(ctx, "add_relationship", childID, details); err != nil {
		return nil, fmt.Errorf("logging add_relationship: %w", err)
	}
	return edge, nil
}

// AddPartnership creates a partnership edge between two existing persons.
func (s *RelationshipService) AddPartnership(
	ctx context.Context,
	edge *entities.PartnershipEdge,
) (*entities.PartnershipEdge, error) {
	if edge.Person1ID == edge.Person2ID {
		return nil, errors.New("a person cannot be partnered with themselves")
	}
	if err := s.requirePersons(ctx, edge.Person1ID, edge.Person2ID); err != nil {
		return nil, err
	}

	exists, err := s.store.HasPartnership(ctx, edge.Person1ID, edge.Person2ID)
	if err != nil {
		return nil, fmt.Errorf("checking existing partnership: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("partnership already exists between %d and %d", edge.Person1ID, edge.Person2ID)
	}

	if _, err := s.store.AddPartnership(ctx, edge); err != nil {
		return nil, fmt.Errorf("adding partnership: %w", err)
	}

	details := map[string]any{"person1_id": edge.Person1ID, "person2_id": edge.Person2ID, "type": string(edge.Type)}
	if err := s.store.LogAction(ctx, "add_partnership", edge.Person1ID, details); err != nil {
		return nil, fmt.Errorf("logging add_partnership: %w", err)
	}
	return edge, nil
}

// Edges returns every parent-child edge touching personID, in either role.
func (s *RelationshipService) Edges(ctx context.Context, personID int64) ([]entities.ParentChildEdge, error) {
	asChild, err := s.store.FindParentEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding parent edges: %w", err)
	}
	asParent, err := s.store.FindChildEdges(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding child edges: %w", err)
	}
	return append(asChild, asParent...), nil
}

func (s *RelationshipService) requirePersons(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		person, err := s.store.FindPersonByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding person %d: %w", id, err)
		}
		if person == nil {
			return fmt.Errorf("%w: %d", ports.ErrPersonNotFound, id)
		}
	}
	return nil
}
