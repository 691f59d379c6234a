package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func intp(v int) *int { return &v }

func addTestPerson(t *testing.T, repo *Repository, given, surname string) int64 {
	t.Helper()
	id, err := repo.AddPerson(context.Background(), &entities.Person{
		GivenName:  given,
		Surname:    surname,
		Confidence: entities.ConfidenceLikely,
	})
	require.NoError(t, err)
	return id
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	// Verify tables exist
	tables := []string{"persons", "parent_child", "partnerships", "audit_log"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Should not error when called again
	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_Persons(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("add and find round-trip", func(t *testing.T) {
		person := &entities.Person{
			GivenName:  "Mary",
			MiddleName: "Elizabeth",
			Surname:    "Keenum",
			MaidenName: "Hollis",
			BirthYear:  intp(1850),
			DeathYear:  intp(1920),
			Generation: intp(2),
			Confidence: entities.ConfidenceConfirmed,
		}

		id, err := repo.AddPerson(ctx, person)
		require.NoError(t, err)
		assert.Positive(t, id)

		found, err := repo.FindPersonByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, *person, *found)
	})

	t.Run("nullable fields survive round-trip", func(t *testing.T) {
		id, err := repo.AddPerson(ctx, &entities.Person{
			GivenName:  "John",
			Surname:    "Keenum",
			Confidence: entities.ConfidenceUncertain,
		})
		require.NoError(t, err)

		found, err := repo.FindPersonByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found.MiddleName)
		assert.Empty(t, found.MaidenName)
		assert.Nil(t, found.BirthYear)
		assert.Nil(t, found.DeathYear)
		assert.Nil(t, found.Generation)
	})

	t.Run("find missing returns nil", func(t *testing.T) {
		found, err := repo.FindPersonByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update", func(t *testing.T) {
		id := addTestPerson(t, repo, "Anna", "Keenum")

		err := repo.UpdatePerson(ctx, &entities.Person{
			ID:         id,
			GivenName:  "Anna",
			Surname:    "Walker",
			DeathYear:  intp(1930),
			Confidence: entities.ConfidenceConfirmed,
		})
		require.NoError(t, err)

		found, err := repo.FindPersonByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Walker", found.Surname)
		assert.Equal(t, intp(1930), found.DeathYear)
	})

	t.Run("update missing errors", func(t *testing.T) {
		err := repo.UpdatePerson(ctx, &entities.Person{
			ID:        9999,
			GivenName: "Ghost",
			Surname:   "Nobody",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ports.ErrPersonNotFound)
	})
}

func TestRepository_FindPersonsByIDs(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id1 := addTestPerson(t, repo, "A", "Keenum")
	id2 := addTestPerson(t, repo, "B", "Keenum")

	found, err := repo.FindPersonsByIDs(ctx, []int64{id2, id1, 9999})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, id1, found[0].ID)
	assert.Equal(t, id2, found[1].ID)

	empty, err := repo.FindPersonsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_ListPersons(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestPerson(t, repo, "James", "Keenum")
	addTestPerson(t, repo, "Mary", "Walker")
	addTestPerson(t, repo, "Jamison", "Keenum")

	all, err := repo.ListPersons(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	keenums, err := repo.ListPersons(ctx, "", "keen")
	require.NoError(t, err)
	assert.Len(t, keenums, 2)

	james, err := repo.ListPersons(ctx, "james", "keenum")
	require.NoError(t, err)
	require.Len(t, james, 1)
	assert.Equal(t, "James", james[0].GivenName)
}

func TestRepository_SearchPersons(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestPerson(t, repo, "Mary", "Keenum")
	addTestPerson(t, repo, "John", "Walker")
	_, err := repo.AddPerson(ctx, &entities.Person{
		GivenName:  "Tom",
		MiddleName: "Mario",
		Surname:    "Hollis",
		Confidence: entities.ConfidenceLikely,
	})
	require.NoError(t, err)

	t.Run("matches any name field", func(t *testing.T) {
		found, err := repo.SearchPersons(ctx, []string{"mar"}, 10)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("multiple tokens widen the match", func(t *testing.T) {
		found, err := repo.SearchPersons(ctx, []string{"mary", "walker"}, 10)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("limit applies", func(t *testing.T) {
		found, err := repo.SearchPersons(ctx, []string{"o"}, 1)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("no tokens", func(t *testing.T) {
		found, err := repo.SearchPersons(ctx, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestRepository_ListSurnames(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestPerson(t, repo, "A", "Walker")
	addTestPerson(t, repo, "B", "Keenum")
	addTestPerson(t, repo, "C", "Keenum")

	surnames, err := repo.ListSurnames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keenum", "Walker"}, surnames)
}

func TestRepository_CountPersons(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountPersons(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	addTestPerson(t, repo, "A", "Keenum")
	addTestPerson(t, repo, "B", "Keenum")

	count, err = repo.CountPersons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_ParentChild(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	parent := addTestPerson(t, repo, "John", "Keenum")
	child := addTestPerson(t, repo, "Anna", "Keenum")

	t.Run("add and query", func(t *testing.T) {
		edge := &entities.ParentChildEdge{
			ParentID:   parent,
			ChildID:    child,
			Type:       entities.ParentChildBiological,
			Confidence: entities.ConfidenceConfirmed,
		}
		id, err := repo.AddParentChild(ctx, edge)
		require.NoError(t, err)
		assert.Positive(t, id)

		parentEdges, err := repo.FindParentEdges(ctx, child)
		require.NoError(t, err)
		require.Len(t, parentEdges, 1)
		assert.Equal(t, *edge, parentEdges[0])

		childEdges, err := repo.FindChildEdges(ctx, parent)
		require.NoError(t, err)
		require.Len(t, childEdges, 1)
		assert.Equal(t, child, childEdges[0].ChildID)
	})

	t.Run("has edge", func(t *testing.T) {
		exists, err := repo.HasParentChild(ctx, parent, child, entities.ParentChildBiological)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.HasParentChild(ctx, parent, child, entities.ParentChildAdoptive)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("self-loop rejected by schema", func(t *testing.T) {
		_, err := repo.AddParentChild(ctx, &entities.ParentChildEdge{
			ParentID:   parent,
			ChildID:    parent,
			Type:       entities.ParentChildBiological,
			Confidence: entities.ConfidenceLikely,
		})
		require.Error(t, err)
	})

	t.Run("duplicate rejected by schema", func(t *testing.T) {
		_, err := repo.AddParentChild(ctx, &entities.ParentChildEdge{
			ParentID:   parent,
			ChildID:    child,
			Type:       entities.ParentChildBiological,
			Confidence: entities.ConfidenceLikely,
		})
		require.Error(t, err)
	})
}

func TestRepository_ParentChildBatch(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	a := addTestPerson(t, repo, "A", "Keenum")
	b := addTestPerson(t, repo, "B", "Keenum")
	c := addTestPerson(t, repo, "C", "Keenum")
	d := addTestPerson(t, repo, "D", "Keenum")

	for _, pair := range [][2]int64{{a, c}, {b, c}, {c, d}} {
		_, err := repo.AddParentChild(ctx, &entities.ParentChildEdge{
			ParentID:   pair[0],
			ChildID:    pair[1],
			Type:       entities.ParentChildBiological,
			Confidence: entities.ConfidenceLikely,
		})
		require.NoError(t, err)
	}

	childEdges, err := repo.FindChildEdgesOf(ctx, []int64{a, b})
	require.NoError(t, err)
	assert.Len(t, childEdges, 2)

	parentEdges, err := repo.FindParentEdgesOf(ctx, []int64{c, d})
	require.NoError(t, err)
	assert.Len(t, parentEdges, 3)

	among, err := repo.FindParentChildAmong(ctx, []int64{a, c})
	require.NoError(t, err)
	require.Len(t, among, 1)
	assert.Equal(t, a, among[0].ParentID)
	assert.Equal(t, c, among[0].ChildID)

	empty, err := repo.FindChildEdgesOf(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_Partnerships(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p1 := addTestPerson(t, repo, "John", "Keenum")
	p2 := addTestPerson(t, repo, "Mary", "Hollis")
	p3 := addTestPerson(t, repo, "Eve", "Walker")

	t.Run("add and round-trip", func(t *testing.T) {
		edge := &entities.PartnershipEdge{
			Person1ID:      p1,
			Person2ID:      p2,
			Type:           entities.PartnershipMarriage,
			StartYear:      intp(1870),
			EndYear:        intp(1920),
			SequenceNumber: intp(1),
			Confidence:     entities.ConfidenceConfirmed,
		}
		id, err := repo.AddPartnership(ctx, edge)
		require.NoError(t, err)
		assert.Positive(t, id)

		found, err := repo.FindPartnerships(ctx, p2)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, *edge, found[0])
	})

	t.Run("has partnership either direction", func(t *testing.T) {
		exists, err := repo.HasPartnership(ctx, p2, p1)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.HasPartnership(ctx, p1, p3)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("touching and among", func(t *testing.T) {
		touching, err := repo.FindPartnershipsTouching(ctx, []int64{p1})
		require.NoError(t, err)
		assert.Len(t, touching, 1)

		among, err := repo.FindPartnershipsAmong(ctx, []int64{p1, p3})
		require.NoError(t, err)
		assert.Empty(t, among)

		among, err = repo.FindPartnershipsAmong(ctx, []int64{p1, p2})
		require.NoError(t, err)
		assert.Len(t, among, 1)
	})
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	personID := addTestPerson(t, repo, "James", "Keenum")

	err := repo.LogAction(ctx, "add_person", personID, map[string]any{"name": "James Keenum"})
	require.NoError(t, err)
	err = repo.LogAction(ctx, "import", 0, map[string]any{"people": 3})
	require.NoError(t, err)

	t.Run("find by person", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, personID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "add_person", entries[0].Action)
		assert.Equal(t, "James Keenum", entries[0].Details["name"])
		assert.False(t, entries[0].CreatedAt.IsZero())
	})

	t.Run("find by action", func(t *testing.T) {
		entries, err := repo.FindAuditLogByAction(ctx, "import", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Zero(t, entries[0].PersonID)
	})

	t.Run("nil details", func(t *testing.T) {
		err := repo.LogAction(ctx, "ping", 0, nil)
		require.NoError(t, err)

		entries, err := repo.FindAuditLogByAction(ctx, "ping", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Details)
	})
}
