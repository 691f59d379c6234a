package entities

import (
	"fmt"
	"strings"
)

// ConfidenceLevel grades how well a piece of genealogical data is supported
// by the underlying records.
type ConfidenceLevel string

const (
	ConfidenceConfirmed ConfidenceLevel = "confirmed"
	ConfidenceLikely    ConfidenceLevel = "likely"
	ConfidencePossible  ConfidenceLevel = "possible"
	ConfidenceUncertain ConfidenceLevel = "uncertain"
)

// ParseConfidence validates and converts a string to a ConfidenceLevel.
func ParseConfidence(s string) (ConfidenceLevel, error) {
	switch s {
	case "confirmed":
		return ConfidenceConfirmed, nil
	case "likely":
		return ConfidenceLikely, nil
	case "possible":
		return ConfidencePossible, nil
	case "uncertain":
		return ConfidenceUncertain, nil
	default:
		return "", fmt.Errorf("invalid confidence level: %s (valid: confirmed, likely, possible, uncertain)", s)
	}
}

// Person is a single person in the genealogy. The ID is store-assigned.
//
// Generation is the operator-assigned chart generation number transcribed
// from historical charts. It is not derived by any traversal and must not
// be confused with the BFS layout generation computed for subgraphs.
type Person struct {
	ID         int64           `json:"id"`
	GivenName  string          `json:"given_name"`
	MiddleName string          `json:"middle_name,omitempty"`
	Surname    string          `json:"surname"`
	MaidenName string          `json:"maiden_name,omitempty"`
	BirthYear  *int            `json:"birth_year,omitempty"`
	DeathYear  *int            `json:"death_year,omitempty"`
	Generation *int            `json:"generation,omitempty"`
	Confidence ConfidenceLevel `json:"confidence"`
}

// FullName joins given, middle and surname with single spaces.
func (p *Person) FullName() string {
	parts := make([]string, 0, 3)
	if p.GivenName != "" {
		parts = append(parts, p.GivenName)
	}
	if p.MiddleName != "" {
		parts = append(parts, p.MiddleName)
	}
	if p.Surname != "" {
		parts = append(parts, p.Surname)
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " ")
}

// DisplayName is the full name followed by "(birth-death)" whenever either
// year is recorded, with "?" standing in for a missing year.
func (p *Person) DisplayName() string {
	name := p.FullName()
	if dates := p.DateString(); dates != "" {
		name += " (" + dates + ")"
	}
	return name
}

// DateString renders "birth-death" with "?" for missing years, or "" when
// neither year is recorded.
func (p *Person) DateString() string {
	if p.BirthYear == nil && p.DeathYear == nil {
		return ""
	}
	birth := "?"
	if p.BirthYear != nil {
		birth = fmt.Sprintf("%d", *p.BirthYear)
	}
	death := "?"
	if p.DeathYear != nil {
		death = fmt.Sprintf("%d", *p.DeathYear)
	}
	return birth + "-" + death
}
