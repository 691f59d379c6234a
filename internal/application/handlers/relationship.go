package handlers

import (
	"context"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

// RelationshipHandler handles edge creation and inspection use cases.
type RelationshipHandler struct {
	relationshipService *services.RelationshipService
	personService       *services.PersonService
}

// NewRelationshipHandler creates a new relationship handler.
func NewRelationshipHandler(
	relationshipService *services.RelationshipService,
	personService *services.PersonService,
) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: relationshipService,
		personService:       personService,
	}
}

// HandleRelate creates a parent-child edge.
func (h *RelationshipHandler) HandleRelate(
	ctx context.Context,
	parentID, childID int64,
	relType, confidence string,
) (*entities.ParentChildEdge, error) {
	parsedType := entities.ParentChildBiological
	if relType != "" {
		var err error
		if parsedType, err = entities.ParseParentChildType(relType); err != nil {
			return nil, err
		}
	}
	parsedConfidence := entities.ConfidenceLikely
	if confidence != "" {
		var err error
		if parsedConfidence, err = entities.ParseConfidence(confidence); err != nil {
			return nil, err
		}
	}
	return h.relationshipService.AddParentChild(ctx, parentID, childID, parsedType, parsedConfidence)
}

// PartnerOptions carries the optional attributes of a partnership.
type PartnerOptions struct {
	Type           string
	StartYear      *int
	EndYear        *int
	SequenceNumber *int
	Confidence     string
}

// HandlePartner creates a partnership edge.
func (h *RelationshipHandler) HandlePartner(
	ctx context.Context,
	person1ID, person2ID int64,
	opts PartnerOptions,
) (*entities.PartnershipEdge, error) {
	ptype := entities.PartnershipMarriage
	if opts.Type != "" {
		var err error
		if ptype, err = entities.ParsePartnershipType(opts.Type); err != nil {
			return nil, err
		}
	}
	confidence := entities.ConfidenceLikely
	if opts.Confidence != "" {
		var err error
		if confidence, err = entities.ParseConfidence(opts.Confidence); err != nil {
			return nil, err
		}
	}

	return h.relationshipService.AddPartnership(ctx, &entities.PartnershipEdge{
		Person1ID:      person1ID,
		Person2ID:      person2ID,
		Type:           ptype,
		StartYear:      opts.StartYear,
		EndYear:        opts.EndYear,
		SequenceNumber: opts.SequenceNumber,
		Confidence:     confidence,
	})
}

// EdgeDetail pairs a parent-child edge with resolved person names.
type EdgeDetail struct {
	Edge   entities.ParentChildEdge `json:"edge"`
	Parent string                   `json:"parent"`
	Child  string                   `json:"child"`
}

// HandleEdges returns every parent-child edge touching a person with the
// endpoint names resolved.
func (h *RelationshipHandler) HandleEdges(ctx context.Context, personID int64) ([]EdgeDetail, error) {
	edges, err := h.relationshipService.Edges(ctx, personID)
	if err != nil {
		return nil, err
	}

	details := make([]EdgeDetail, 0, len(edges))
	for i := range edges {
		detail := EdgeDetail{Edge: edges[i]}
		if parent, err := h.personService.Get(ctx, edges[i].ParentID); err != nil {
			return nil, fmt.Errorf("finding parent: %w", err)
		} else if parent != nil {
			detail.Parent = parent.FullName()
		}
		if child, err := h.personService.Get(ctx, edges[i].ChildID); err != nil {
			return nil, fmt.Errorf("finding child: %w", err)
		} else if child != nil {
			detail.Child = child.FullName()
		}
		details = append(details, detail)
	}
	return details, nil
}
