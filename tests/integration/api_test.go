package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
	"github.com/jkeenum/kindred-core/internal/server"
)

func newTestAPI(t *testing.T, e *env) *server.Server {
	t.Helper()

	personHandler := handlers.NewPersonHandler(e.persons)
	return server.New(server.Handlers{
		Person:       personHandler,
		Search:       handlers.NewSearchHandler(e.search),
		Lineage:      handlers.NewLineageHandler(e.lineage, e.persons, "Keenum"),
		Family:       handlers.NewFamilyHandler(e.family, e.persons),
		Tree:         handlers.NewTreeHandler(e.tree),
		Relationship: handlers.NewRelationshipHandler(e.relationships, e.persons),
	})
}

func TestAPIIntegration_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	e := newTestEnv(t)

	grandfather := e.addPerson(t, "Alexander", "Keenum", intp(1790))
	father := e.addPerson(t, "James", "Keenum", intp(1820))
	son := e.addPerson(t, "William", "Keenum", intp(1850))
	e.relate(t, grandfather, father)
	e.relate(t, father, son)

	api := newTestAPI(t, e)

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		api.Echo().ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := get("/health")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("search", func(t *testing.T) {
		rec := get("/api/genealogy/search?q=james")
		require.Equal(t, http.StatusOK, rec.Code)

		var result handlers.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Count)
	})

	t.Run("lineage", func(t *testing.T) {
		rec := get("/api/genealogy/lineage/3")
		require.Equal(t, http.StatusOK, rec.Code)

		var result handlers.LineageResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.NotNil(t, result.Path)
		assert.Equal(t, "grandchild", result.Path.Relationship)
		assert.Equal(t, grandfather, result.Path.Path.Root().ID)
	})

	t.Run("graph", func(t *testing.T) {
		rec := get("/api/genealogy/graph")
		require.Equal(t, http.StatusOK, rec.Code)

		var result handlers.TreeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 3, result.Metadata.TotalPeople)
		assert.Equal(t, 2, result.Metadata.TotalEdges)
	})

	t.Run("family", func(t *testing.T) {
		rec := get("/api/genealogy/family/2")
		require.Equal(t, http.StatusOK, rec.Code)

		var result handlers.FamilyResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, father, result.Person.ID)
		require.Len(t, result.Parents, 1)
		require.Len(t, result.Children, 1)
		assert.Equal(t, son, result.Children[0].ID)
	})

	t.Run("unknown person", func(t *testing.T) {
		rec := get("/api/genealogy/person/99")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
