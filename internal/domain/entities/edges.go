package entities

import "fmt"

// ParentChildType classifies a parent-child edge.
type ParentChildType string

const (
	ParentChildBiological ParentChildType = "biological"
	ParentChildAdoptive   ParentChildType = "adoptive"
	ParentChildStep       ParentChildType = "step"
)

// ParseParentChildType validates and converts a string to a ParentChildType.
func ParseParentChildType(s string) (ParentChildType, error) {
	switch s {
	case "biological":
		return ParentChildBiological, nil
	case "adoptive":
		return ParentChildAdoptive, nil
	case "step":
		return ParentChildStep, nil
	default:
		return "", fmt.Errorf("invalid relationship type: %s (valid: biological, adoptive, step)", s)
	}
}

// ParentChildEdge is a directed parent-of edge between two persons.
// The relation may contain cycles in malformed data; traversals never assume
// acyclicity.
type ParentChildEdge struct {
	ID         int64           `json:"id"`
	ParentID   int64           `json:"parent_id"`
	ChildID    int64           `json:"child_id"`
	Type       ParentChildType `json:"relationship_type"`
	Confidence ConfidenceLevel `json:"confidence"`
}

// PartnershipType classifies a partnership edge.
type PartnershipType string

const (
	PartnershipMarriage    PartnershipType = "marriage"
	PartnershipPartnership PartnershipType = "partnership"
)

// ParsePartnershipType validates and converts a string to a PartnershipType.
func ParsePartnershipType(s string) (PartnershipType, error) {
	switch s {
	case "marriage":
		return PartnershipMarriage, nil
	case "partnership":
		return PartnershipPartnership, nil
	default:
		return "", fmt.Errorf("invalid partnership type: %s (valid: marriage, partnership)", s)
	}
}

// PartnershipEdge is a symmetric marriage/partnership edge. Person1/Person2
// carry no ordering semantics; queries match either direction.
type PartnershipEdge struct {
	ID             int64           `json:"id"`
	Person1ID      int64           `json:"person1_id"`
	Person2ID      int64           `json:"person2_id"`
	Type           PartnershipType `json:"partnership_type"`
	StartYear      *int            `json:"start_year,omitempty"`
	EndYear        *int            `json:"end_year,omitempty"`
	SequenceNumber *int            `json:"sequence_number,omitempty"`
	Confidence     ConfidenceLevel `json:"confidence"`
}

// OtherPerson returns the partner of personID on this edge.
func (e *PartnershipEdge) OtherPerson(personID int64) int64 {
	if e.Person1ID == personID {
		return e.Person2ID
	}
	return e.Person1ID
}
