package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/mocks"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

func intp(v int) *int { return &v }

func newFamilyHandler(store *mocks.Store) *FamilyHandler {
	return NewFamilyHandler(
		services.NewFamilyService(store),
		services.NewPersonService(store),
	)
}

func TestFamilyHandler(t *testing.T) {
	store := mocks.NewStore()
	store.MustAddPerson(entities.Person{ID: 1, GivenName: "John", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{ID: 2, GivenName: "Mary", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{ID: 3, GivenName: "Anna", Surname: "Keenum"})
	store.MustAddPerson(entities.Person{ID: 4, GivenName: "Ben", Surname: "Keenum"})
	store.MustAddParentChild(1, 3)
	store.MustAddParentChild(2, 3)
	store.MustAddParentChild(1, 4)
	store.MustAddParentChild(2, 4)
	store.MustAddPartnership(entities.PartnershipEdge{
		Person1ID:      1,
		Person2ID:      2,
		Type:           entities.PartnershipMarriage,
		StartYear:      intp(1870),
		EndYear:        intp(1920),
		SequenceNumber: intp(2),
	})
	handler := newFamilyHandler(store)

	result, err := handler.Handle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Anna Keenum", result.Person.FullName())
	require.Len(t, result.Parents, 2)
	require.Len(t, result.Siblings, 1)
	assert.Equal(t, int64(4), result.Siblings[0].ID)
	assert.Empty(t, result.Spouses)
	assert.Empty(t, result.Children)

	parent, err := handler.Handle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, parent.Spouses, 1)
	assert.Equal(t, "Mary Keenum", parent.Spouses[0].Person.FullName())
	assert.Equal(t, "married 1870 to 1920, marriage #2", parent.Spouses[0].Details)
	assert.Len(t, parent.Children, 2)
}

func TestFamilyHandlerUnknownPerson(t *testing.T) {
	handler := newFamilyHandler(mocks.NewStore())

	_, err := handler.Handle(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrPersonNotFound)
}

func TestDescribePartnership(t *testing.T) {
	tests := []struct {
		name string
		edge entities.PartnershipEdge
		want string
	}{
		{
			name: "marriage with full dates and sequence",
			edge: entities.PartnershipEdge{
				Type:           entities.PartnershipMarriage,
				StartYear:      intp(1870),
				EndYear:        intp(1920),
				SequenceNumber: intp(2),
			},
			want: "married 1870 to 1920, marriage #2",
		},
		{
			name: "marriage with start only",
			edge: entities.PartnershipEdge{
				Type:      entities.PartnershipMarriage,
				StartYear: intp(1870),
			},
			want: "married 1870",
		},
		{
			name: "marriage with no dates",
			edge: entities.PartnershipEdge{Type: entities.PartnershipMarriage},
			want: "married",
		},
		{
			name: "partnership",
			edge: entities.PartnershipEdge{
				Type:           entities.PartnershipPartnership,
				StartYear:      intp(1900),
				SequenceNumber: intp(1),
			},
			want: "partnered 1900, partnership #1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describePartnership(&tt.edge))
		})
	}
}
