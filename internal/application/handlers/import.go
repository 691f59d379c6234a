package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jkeenum/kindred-core/internal/domain/services"
	"github.com/jkeenum/kindred-core/internal/infrastructure/parsers"
)

// Import bundle file names, looked up inside the import directory.
const (
	peopleFile        = "people.csv"
	relationshipsFile = "relationships.csv"
	partnershipsFile  = "partnerships.csv"
)

// ImportHandler handles importing records from a CSV bundle directory.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	// DryRun validates and counts without writing.
	DryRun bool
}

// Handle imports a directory containing people.csv and optionally
// relationships.csv and partnerships.csv.
func (h *ImportHandler) Handle(ctx context.Context, dir string, opts ImportOptions) (*services.ImportResult, error) {
	peoplePath := filepath.Join(dir, peopleFile)
	if _, err := os.Stat(peoplePath); err != nil {
		return nil, fmt.Errorf("%s not found in %s", peopleFile, dir)
	}

	data := &services.ImportData{}
	var err error
	if data.People, err = parseFile(peoplePath, parsers.ParsePeopleCSV); err != nil {
		return nil, err
	}
	if data.Relationships, err = parseFile(filepath.Join(dir, relationshipsFile), parsers.ParseRelationshipsCSV); err != nil {
		return nil, err
	}
	if data.Partnerships, err = parseFile(filepath.Join(dir, partnershipsFile), parsers.ParsePartnershipsCSV); err != nil {
		return nil, err
	}

	return h.service.Import(ctx, data, services.ImportOptions{DryRun: opts.DryRun})
}

// parseFile parses an optional bundle file; a missing file yields nil records
// without error.
func parseFile[T any](path string, parse func(r io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	records, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
