package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/services"
	"github.com/jkeenum/kindred-core/internal/infrastructure/config"
	"github.com/jkeenum/kindred-core/internal/infrastructure/store/sqlite"
)

// env bundles a file-backed repository with the services under test.
type env struct {
	repo          *sqlite.Repository
	persons       *services.PersonService
	relationships *services.RelationshipService
	family        *services.FamilyService
	lineage       *services.LineageService
	tree          *services.TreeService
	search        *services.SearchService
	imports       *services.ImportService
}

func newTestEnv(t *testing.T) *env {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "kindred.db")
	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.EnsureSchema(context.Background()))

	return &env{
		repo:          repo,
		persons:       services.NewPersonService(repo),
		relationships: services.NewRelationshipService(repo),
		family:        services.NewFamilyService(repo),
		lineage:       services.NewLineageService(repo),
		tree:          services.NewTreeService(repo),
		search:        services.NewSearchService(repo),
		imports:       services.NewImportService(repo),
	}
}

// addPerson creates a person and returns the assigned id.
func (e *env) addPerson(t *testing.T, given, surname string, birthYear *int) int64 {
	t.Helper()
	id, err := e.persons.Create(context.Background(), &entities.Person{
		GivenName: given,
		Surname:   surname,
		BirthYear: birthYear,
	})
	require.NoError(t, err)
	return id
}

// relate records a biological parent-child edge.
func (e *env) relate(t *testing.T, parentID, childID int64) {
	t.Helper()
	_, err := e.relationships.AddParentChild(
		context.Background(),
		parentID, childID,
		entities.ParentChildBiological,
		entities.ConfidenceConfirmed,
	)
	require.NoError(t, err)
}

func intp(v int) *int {
	return &v
}
