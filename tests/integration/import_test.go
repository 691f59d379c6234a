package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
)

const testPeopleCSV = `ref,given_name,middle_name,surname,birth_year,death_year,confidence
alex,Alexander,,Keenum,1790,1861,confirmed
james,James,Madison,Keenum,1820,1899,confirmed
mary,Mary,,Hollis,1824,,likely
william,William,,Keenum,1850,1921,confirmed
`

const testRelationshipsCSV = `parent_ref,child_ref,relationship_type
alex,james,biological
james,william,biological
mary,william,biological
`

const testPartnershipsCSV = `person1_ref,person2_ref,partnership_type,start_year
james,mary,marriage,1848
`

func writeBundle(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestImportIntegration_FullBundle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	e := newTestEnv(t)
	ctx := context.Background()
	handler := handlers.NewImportHandler(e.imports)

	dir := writeBundle(t, map[string]string{
		"people.csv":        testPeopleCSV,
		"relationships.csv": testRelationshipsCSV,
		"partnerships.csv":  testPartnershipsCSV,
	})

	result, err := handler.Handle(ctx, dir, handlers.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, result.People)
	assert.Equal(t, 3, result.Relationships)
	assert.Equal(t, 1, result.Partnerships)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.BatchID)

	// The imported graph answers lineage queries.
	results, err := e.search.Search(ctx, "William Keenum")
	require.NoError(t, err)
	require.Len(t, results, 1)

	path, err := e.lineage.AncestorPath(ctx, results[0].Person.ID, "Keenum")
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, "grandchild", path.Relationship)

	partners, err := e.family.Partners(ctx, results[0].Person.ID)
	require.NoError(t, err)
	assert.Empty(t, partners)

	entries, err := e.repo.FindAuditLogByAction(ctx, "import", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, result.BatchID, entries[0].Details["batch_id"])
}

func TestImportIntegration_DryRunWritesNothing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	e := newTestEnv(t)
	ctx := context.Background()
	handler := handlers.NewImportHandler(e.imports)

	dir := writeBundle(t, map[string]string{
		"people.csv":        testPeopleCSV,
		"relationships.csv": testRelationshipsCSV,
	})

	result, err := handler.Handle(ctx, dir, handlers.ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 4, result.People)
	assert.Equal(t, 3, result.Relationships)

	count, err := e.persons.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportIntegration_PeopleOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	e := newTestEnv(t)
	ctx := context.Background()
	handler := handlers.NewImportHandler(e.imports)

	dir := writeBundle(t, map[string]string{"people.csv": testPeopleCSV})

	result, err := handler.Handle(ctx, dir, handlers.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, result.People)
	assert.Zero(t, result.Relationships)
	assert.Zero(t, result.Partnerships)

	surnames, err := e.persons.Surnames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hollis", "Keenum"}, surnames)
}

func TestImportIntegration_MissingPeopleFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	e := newTestEnv(t)
	handler := handlers.NewImportHandler(e.imports)

	_, err := handler.Handle(context.Background(), t.TempDir(), handlers.ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "people.csv not found")
}
