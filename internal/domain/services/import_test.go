package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/domain/mocks"
	"github.com/jkeenum/kindred-core/internal/infrastructure/parsers"
)

func importData() *ImportData {
	return &ImportData{
		People: []parsers.PersonRecord{
			{Ref: "p1", GivenName: "John", Surname: "Keenum", BirthYear: intp(1840), Line: 2},
			{Ref: "p2", GivenName: "Mary", Surname: "Hollis", Line: 3},
			{Ref: "p3", GivenName: "Anna", Surname: "Keenum", Line: 4},
		},
		Relationships: []parsers.RelationshipRecord{
			{ParentRef: "p1", ChildRef: "p3", Line: 2},
			{ParentRef: "p2", ChildRef: "p3", Type: "biological", Confidence: "confirmed", Line: 3},
		},
		Partnerships: []parsers.PartnershipRecord{
			{Person1Ref: "p1", Person2Ref: "p2", StartYear: intp(1865), Line: 2},
		},
	}
}

func TestImport(t *testing.T) {
	store := mocks.NewStore()
	svc := NewImportService(store)

	result, err := svc.Import(context.Background(), importData(), ImportOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 3, result.People)
	assert.Equal(t, 2, result.Relationships)
	assert.Equal(t, 1, result.Partnerships)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Errors)

	assert.Len(t, store.Persons, 3)
	assert.Len(t, store.ParentChild, 2)
	assert.Len(t, store.Partnerships, 1)

	require.Len(t, store.Audit, 1)
	assert.Equal(t, "import", store.Audit[0].Action)
	assert.Equal(t, result.BatchID, store.Audit[0].Details["batch_id"])
	assert.Equal(t, 3, store.Audit[0].Details["people"])
}

func TestImportDryRun(t *testing.T) {
	store := mocks.NewStore()
	svc := NewImportService(store)

	result, err := svc.Import(context.Background(), importData(), ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 3, result.People)
	assert.Equal(t, 2, result.Relationships)
	assert.Equal(t, 1, result.Partnerships)

	assert.Empty(t, store.Persons)
	assert.Empty(t, store.ParentChild)
	assert.Empty(t, store.Partnerships)
	assert.Empty(t, store.Audit)
}

func TestImportRowErrorsAreSkipped(t *testing.T) {
	data := importData()
	data.People = append(data.People, parsers.PersonRecord{Ref: "p4", GivenName: "NoSurname", Line: 5})
	data.Relationships = append(data.Relationships, parsers.RelationshipRecord{ParentRef: "ghost", ChildRef: "p3", Line: 4})
	svc := NewImportService(mocks.NewStore())

	result, err := svc.Import(context.Background(), data, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.People)
	assert.Equal(t, 2, result.Relationships)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "people", result.Errors[0].File)
	assert.Equal(t, 5, result.Errors[0].Line)
	assert.Equal(t, "relationships", result.Errors[1].File)
	assert.Contains(t, result.Errors[1].Message, "ghost")
}

func TestImportDuplicateRef(t *testing.T) {
	data := importData()
	data.People = append(data.People, parsers.PersonRecord{Ref: "p1", GivenName: "Again", Surname: "Keenum", Line: 5})
	svc := NewImportService(mocks.NewStore())

	result, err := svc.Import(context.Background(), data, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.People)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "duplicate ref")
}

func TestImportSelfLoopRelationship(t *testing.T) {
	data := importData()
	data.Relationships = append(data.Relationships, parsers.RelationshipRecord{ParentRef: "p1", ChildRef: "p1", Line: 4})
	svc := NewImportService(mocks.NewStore())

	result, err := svc.Import(context.Background(), data, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Relationships)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "same person")
}

func TestImportDuplicateEdgesSkipped(t *testing.T) {
	data := importData()
	data.Relationships = append(data.Relationships, parsers.RelationshipRecord{ParentRef: "p1", ChildRef: "p3", Line: 4})
	data.Partnerships = append(data.Partnerships, parsers.PartnershipRecord{Person1Ref: "p2", Person2Ref: "p1", Line: 3})
	svc := NewImportService(mocks.NewStore())

	result, err := svc.Import(context.Background(), data, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Relationships)
	assert.Equal(t, 1, result.Partnerships)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestImportInvalidEnums(t *testing.T) {
	data := importData()
	data.Relationships[1].Type = "cousin"
	data.Partnerships[0].Confidence = "certainish"
	svc := NewImportService(mocks.NewStore())

	result, err := svc.Import(context.Background(), data, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Relationships)
	assert.Zero(t, result.Partnerships)
	assert.Len(t, result.Errors, 2)
}

func TestImportStoreError(t *testing.T) {
	store := mocks.NewStore()
	store.Err = assert.AnError
	svc := NewImportService(store)

	_, err := svc.Import(context.Background(), importData(), ImportOptions{})
	assert.Error(t, err)
}
