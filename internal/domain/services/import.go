package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/infrastructure/parsers"
)

// ImportError describes a problem with a single CSV row. The row is skipped;
// the rest of the import proceeds.
type ImportError struct {
	File    string
	Line    int
	Message string
}

func (e ImportError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.File, e.Line, e.Message)
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	// DryRun validates and counts without writing to the store.
	DryRun bool
}

// ImportResult summarizes an import batch.
type ImportResult struct {
	BatchID       string
	People        int
	Relationships int
	Partnerships  int
	Skipped       int
	Errors        []ImportError
}

// ImportData holds the parsed contents of an import bundle.
type ImportData struct {
	People        []parsers.PersonRecord
	Relationships []parsers.RelationshipRecord
	Partnerships  []parsers.PartnershipRecord
}

// ImportService bulk-loads people and edges parsed from CSV files. Rows
// reference each other by file-local refs which the service maps onto
// store-assigned ids. Each run is audit-logged under a batch id.
type ImportService struct {
	store ports.Store
}

// NewImportService creates a new ImportService.
func NewImportService(store ports.Store) *ImportService {
	return &ImportService{store: store}
}

// Import inserts the parsed records. Invalid rows are collected as
// ImportErrors and skipped; duplicate edges count as skipped.
func (s *ImportService) Import(ctx context.Context, data *ImportData, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{BatchID: uuid.New().String()}
	refs := make(map[string]int64, len(data.People))

	for i := range data.People {
		rec := &data.People[i]
		person, importErr := personFromRecord(rec)
		if importErr != nil {
			result.Errors = append(result.Errors, *importErr)
			continue
		}
		if _, dup := refs[rec.Ref]; dup {
			result.Errors = append(result.Errors, ImportError{
				File: "people", Line: rec.Line, Message: fmt.Sprintf("duplicate ref: %s", rec.Ref),
			})
			continue
		}

		if opts.DryRun {
			refs[rec.Ref] = int64(-len(refs) - 1)
			result.People++
			continue
		}

		id, err := s.store.AddPerson(ctx, person)
		if err != nil {
			return nil, fmt.Errorf("adding person %q: %w", rec.Ref, err)
		}
		refs[rec.Ref] = id
		result.People++
	}

	if err := s.importRelationships(ctx, data.Relationships, refs, opts, result); err != nil {
		return nil, err
	}
	if err := s.importPartnerships(ctx, data.Partnerships, refs, opts, result); err != nil {
		return nil, err
	}

	if !opts.DryRun {
		details := map[string]any{
			"batch_id":      result.BatchID,
			"people":        result.People,
			"relationships": result.Relationships,
			"partnerships":  result.Partnerships,
			"skipped":       result.Skipped,
		}
		if err := s.store.LogAction(ctx, "import", 0, details); err != nil {
			return nil, fmt.Errorf("logging import: %w", err)
		}
	}
	return result, nil
}

func (s *ImportService) importRelationships(
	ctx context.Context,
	records []parsers.RelationshipRecord,
	refs map[string]int64,
	opts ImportOptions,
	result *ImportResult,
) error {
	for i := range records {
		rec := &records[i]

		parentID, ok := refs[rec.ParentRef]
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				File: "relationships", Line: rec.Line, Message: fmt.Sprintf("unknown parent ref: %s", rec.ParentRef),
			})
			continue
		}
		childID, ok := refs[rec.ChildRef]
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				File: "relationships", Line: rec.Line, Message: fmt.Sprintf("unknown child ref: %s", rec.ChildRef),
			})
			continue
		}
		if parentID == childID {
			result.Errors = append(result.Errors, ImportError{
				File: "relationships", Line: rec.Line, Message: "parent and child refs are the same person",
			})
			continue
		}

		relType, confidence, importErr := edgeAttrs(rec.Type, rec.Confidence, "relationships", rec.Line)
		if importErr != nil {
			result.Errors = append(result.Errors, *importErr)
			continue
		}

		if opts.DryRun {
			result.Relationships++
			continue
		}

		exists, err := s.store.HasParentChild(ctx, parentID, childID, relType)
		if err != nil {
			return fmt.Errorf("checking relationship: %w", err)
		}
		if exists {
			result.Skipped++
			continue
		}

		edge := &entities.ParentChildEdge{
			ParentID:   parentID,
			ChildID:    childID,
			Type:       relType,
			Confidence: confidence,
		}
		if _, err := s.store.AddParentChild(ctx, edge); err != nil {
			return fmt.Errorf("adding relationship: %w", err)
		}
		result.Relationships++
	}
	return nil
}

func (s *ImportService) importPartnerships(
	ctx context.Context,
	records []parsers.PartnershipRecord,
	refs map[string]int64,
	opts ImportOptions,
	result *ImportResult,
) error {
	for i := range records {
		rec := &records[i]

		person1ID, ok := refs[rec.Person1Ref]
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				File: "partnerships", Line: rec.Line, Message: fmt.Sprintf("unknown ref: %s", rec.Person1Ref),
			})
			continue
		}
		person2ID, ok := refs[rec.Person2Ref]
		if !ok {
			result.Errors = append(result.Errors, ImportError{
				File: "partnerships", Line: rec.Line, Message: fmt.Sprintf("unknown ref: %s", rec.Person2Ref),
			})
			continue
		}

		ptype := entities.PartnershipMarriage
		if rec.Type != "" {
			var err error
			if ptype, err = entities.ParsePartnershipType(rec.Type); err != nil {
				result.Errors = append(result.Errors, ImportError{
					File: "partnerships", Line: rec.Line, Message: err.Error(),
				})
				continue
			}
		}
		confidence := entities.ConfidenceLikely
		if rec.Confidence != "" {
			var err error
			if confidence, err = entities.ParseConfidence(rec.Confidence); err != nil {
				result.Errors = append(result.Errors, ImportError{
					File: "partnerships", Line: rec.Line, Message: err.Error(),
				})
				continue
			}
		}

		if opts.DryRun {
			result.Partnerships++
			continue
		}

		exists, err := s.store.HasPartnership(ctx, person1ID, person2ID)
		if err != nil {
			return fmt.Errorf("checking partnership: %w", err)
		}
		if exists {
			result.Skipped++
			continue
		}

		edge := &entities.PartnershipEdge{
			Person1ID:      person1ID,
			Person2ID:      person2ID,
			Type:           ptype,
			StartYear:      rec.StartYear,
			EndYear:        rec.EndYear,
			SequenceNumber: rec.SequenceNumber,
			Confidence:     confidence,
		}
		if _, err := s.store.AddPartnership(ctx, edge); err != nil {
			return fmt.Errorf("adding partnership: %w", err)
		}
		result.Partnerships++
	}
	return nil
}

func personFromRecord(rec *parsers.PersonRecord) (*entities.Person, *ImportError) {
	if rec.Ref == "" {
		return nil, &ImportError{File: "people", Line: rec.Line, Message: "ref is required"}
	}
	if rec.GivenName == "" || rec.Surname == "" {
		return nil, &ImportError{File: "people", Line: rec.Line, Message: "given_name and surname are required"}
	}

	confidence := entities.ConfidenceLikely
	if rec.Confidence != "" {
		var err error
		if confidence, err = entities.ParseConfidence(rec.Confidence); err != nil {
			return nil, &ImportError{File: "people", Line: rec.Line, Message: err.Error()}
		}
	}

	return &entities.Person{
		GivenName:  rec.GivenName,
		MiddleName: rec.MiddleName,
		Surname:    rec.Surname,
		MaidenName: rec.MaidenName,
		BirthYear:  rec.BirthYear,
		DeathYear:  rec.DeathYear,
		Generation: rec.Generation,
		Confidence: confidence,
	}, nil
}

func edgeAttrs(relType, confidence, file string, line int) (entities.ParentChildType, entities.ConfidenceLevel, *ImportError) {
	parsedType := entities.ParentChildBiological
	if relType != "" {
		var err error
		if parsedType, err = entities.ParseParentChildType(relType); err != nil {
			return "", "", &ImportError{File: file, Line: line, Message: err.Error()}
		}
	}
	parsedConfidence := entities.ConfidenceLikely
	if confidence != "" {
		var err error
		if parsedConfidence, err = entities.ParseConfidence(confidence); err != nil {
			return "", "", &ImportError{File: file, Line: line, Message: err.Error()}
		}
	}
	return parsedType, parsedConfidence, nil
}
