// Package parsers reads genealogy records from CSV files for bulk import.
//
// People files carry a per-file "ref" column; relationship and partnership
// files reference people by those refs, so a whole family can be described
// without knowing store-assigned ids up front.
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PersonRecord is a person row parsed from CSV, keyed by its file-local ref.
type PersonRecord struct {
	Ref        string
	GivenName  string
	MiddleName string
	Surname    string
	MaidenName string
	BirthYear  *int
	DeathYear  *int
	Generation *int
	Confidence string
	Line       int
}

// RelationshipRecord is a parent-child row referencing people by ref.
type RelationshipRecord struct {
	ParentRef  string
	ChildRef   string
	Type       string
	Confidence string
	Line       int
}

// PartnershipRecord is a partnership row referencing people by ref.
type PartnershipRecord struct {
	Person1Ref     string
	Person2Ref     string
	Type           string
	StartYear      *int
	EndYear        *int
	SequenceNumber *int
	Confidence     string
	Line           int
}

// ParsePeopleCSV reads person rows. Required columns: ref, given_name,
// surname. Optional: middle_name, maiden_name, birth_year, death_year,
// generation, confidence.
func ParsePeopleCSV(r io.Reader) ([]PersonRecord, error) {
	reader := csv.NewReader(r)
	cols, err := readHeader(reader, "ref", "given_name", "surname")
	if err != nil {
		return nil, err
	}

	var records []PersonRecord
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := PersonRecord{
			Ref:        column(row, cols, "ref"),
			GivenName:  column(row, cols, "given_name"),
			MiddleName: column(row, cols, "middle_name"),
			Surname:    column(row, cols, "surname"),
			MaidenName: column(row, cols, "maiden_name"),
			Confidence: column(row, cols, "confidence"),
			Line:       line,
		}
		if rec.BirthYear, err = optionalInt(row, cols, "birth_year", line); err != nil {
			return nil, err
		}
		if rec.DeathYear, err = optionalInt(row, cols, "death_year", line); err != nil {
			return nil, err
		}
		if rec.Generation, err = optionalInt(row, cols, "generation", line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseRelationshipsCSV reads parent-child rows. Required columns:
// parent_ref, child_ref. Optional: relationship_type, confidence.
func ParseRelationshipsCSV(r io.Reader) ([]RelationshipRecord, error) {
	reader := csv.NewReader(r)
	cols, err := readHeader(reader, "parent_ref", "child_ref")
	if err != nil {
		return nil, err
	}

	var records []RelationshipRecord
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, RelationshipRecord{
			ParentRef:  column(row, cols, "parent_ref"),
			ChildRef:   column(row, cols, "child_ref"),
			Type:       column(row, cols, "relationship_type"),
			Confidence: column(row, cols, "confidence"),
			Line:       line,
		})
	}
	return records, nil
}

// ParsePartnershipsCSV reads partnership rows. Required columns: person1_ref,
// person2_ref. Optional: partnership_type, start_year, end_year,
// sequence_number, confidence.
func ParsePartnershipsCSV(r io.Reader) ([]PartnershipRecord, error) {
	reader := csv.NewReader(r)
	cols, err := readHeader(reader, "person1_ref", "person2_ref")
	if err != nil {
		return nil, err
	}

	var records []PartnershipRecord
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := PartnershipRecord{
			Person1Ref: column(row, cols, "person1_ref"),
			Person2Ref: column(row, cols, "person2_ref"),
			Type:       column(row, cols, "partnership_type"),
			Confidence: column(row, cols, "confidence"),
			Line:       line,
		}
		if rec.StartYear, err = optionalInt(row, cols, "start_year", line); err != nil {
			return nil, err
		}
		if rec.EndYear, err = optionalInt(row, cols, "end_year", line); err != nil {
			return nil, err
		}
		if rec.SequenceNumber, err = optionalInt(row, cols, "sequence_number", line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// readHeader reads the header row and verifies the required columns exist.
func readHeader(reader *csv.Reader, required ...string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.TrimSpace(col)] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}
	return cols, nil
}

func column(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalInt(row []string, cols map[string]int, name string, line int) (*int, error) {
	raw := column(row, cols, name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid %s: %q", line, name, raw)
	}
	return &value, nil
}
