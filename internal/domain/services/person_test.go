package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/mocks"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

func TestCreatePerson(t *testing.T) {
	store := mocks.NewStore()
	svc := NewPersonService(store)

	id, err := svc.Create(context.Background(), &entities.Person{
		GivenName: "James",
		Surname:   "Keenum",
		BirthYear: intp(1850),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	saved := store.Persons[id]
	require.NotNil(t, saved)
	assert.Equal(t, entities.ConfidenceUncertain, saved.Confidence)

	require.Len(t, store.Audit, 1)
	assert.Equal(t, "add_person", store.Audit[0].Action)
	assert.Equal(t, id, store.Audit[0].PersonID)
	assert.Equal(t, "James Keenum", store.Audit[0].Details["name"])
}

func TestCreatePersonKeepsConfidence(t *testing.T) {
	store := mocks.NewStore()
	svc := NewPersonService(store)

	id, err := svc.Create(context.Background(), &entities.Person{
		GivenName:  "James",
		Surname:    "Keenum",
		Confidence: entities.ConfidenceConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ConfidenceConfirmed, store.Persons[id].Confidence)
}

func TestCreatePersonValidation(t *testing.T) {
	svc := NewPersonService(mocks.NewStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, &entities.Person{Surname: "Keenum"})
	assert.Error(t, err)
	_, err = svc.Create(ctx, &entities.Person{GivenName: "James"})
	assert.Error(t, err)
}

func TestCreatePersonAllowsDuplicateNames(t *testing.T) {
	svc := NewPersonService(mocks.NewStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, &entities.Person{GivenName: "James", Surname: "Keenum"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &entities.Person{GivenName: "James", Surname: "Keenum"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestUpdatePerson(t *testing.T) {
	store := mocks.NewStore()
	fixture := store.MustAddPerson(entities.Person{
		GivenName:  "James",
		Surname:    "Keenum",
		Confidence: entities.ConfidenceConfirmed,
	})
	svc := NewPersonService(store)

	err := svc.Update(context.Background(), &entities.Person{
		ID:        fixture.ID,
		GivenName: "James",
		Surname:   "Keenum",
		DeathYear: intp(1920),
	})
	require.NoError(t, err)

	saved := store.Persons[fixture.ID]
	assert.Equal(t, intp(1920), saved.DeathYear)
	// Empty confidence keeps the stored value.
	assert.Equal(t, entities.ConfidenceConfirmed, saved.Confidence)

	require.Len(t, store.Audit, 1)
	assert.Equal(t, "update_person", store.Audit[0].Action)
}

func TestUpdatePersonNotFound(t *testing.T) {
	svc := NewPersonService(mocks.NewStore())

	err := svc.Update(context.Background(), &entities.Person{
		ID:        42,
		GivenName: "James",
		Surname:   "Keenum",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrPersonNotFound)
	assert.Contains(t, err.Error(), "42")
}

func TestUpdatePersonInvalidID(t *testing.T) {
	svc := NewPersonService(mocks.NewStore())

	err := svc.Update(context.Background(), &entities.Person{
		GivenName: "James",
		Surname:   "Keenum",
	})
	assert.Error(t, err)
}

func TestGetPerson(t *testing.T) {
	store := mocks.NewStore()
	fixture := store.MustAddPerson(entities.Person{GivenName: "James", Surname: "Keenum"})
	svc := NewPersonService(store)
	ctx := context.Background()

	person, err := svc.Get(ctx, fixture.ID)
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "James Keenum", person.FullName())

	missing, err := svc.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListPersons(t *testing.T) {
	store := mocks.NewStore()
	store.MustAddPerson(entities.Person{GivenName: "James", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{GivenName: "Mary", Surname: "Walker"})
	svc := NewPersonService(store)
	ctx := context.Background()

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	walkers, err := svc.List(ctx, "", "walk")
	require.NoError(t, err)
	require.Len(t, walkers, 1)
	assert.Equal(t, "Mary", walkers[0].GivenName)
}

func TestSurnamesAndCount(t *testing.T) {
	store := mocks.NewStore()
	store.MustAddPerson(entities.Person{GivenName: "James", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{GivenName: "Anna", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{GivenName: "Mary", Surname: "Walker"})
	svc := NewPersonService(store)
	ctx := context.Background()

	surnames, err := svc.Surnames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keenum", "Walker"}, surnames)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPersonServiceStoreError(t *testing.T) {
	store := mocks.NewStore()
	store.Err = assert.AnError
	svc := NewPersonService(store)

	_, err := svc.Create(context.Background(), &entities.Person{GivenName: "James", Surname: "Keenum"})
	assert.Error(t, err)
}
