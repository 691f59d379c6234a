package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// PersonService manages person records.
type PersonService struct {
	store ports.Store
}

// NewPersonService creates a new PersonService.
func NewPersonService(store ports.Store) *PersonService {
	return &PersonService{store: store}
}

// Create validates and inserts a new person, returning the store-assigned id.
// Duplicate names are allowed; reusing names across generations is common.
func (s *PersonService) Create(ctx context.Context, person *entities.Person) (int64, error) {
	if err := validatePerson(person); err != nil {
		return 0, err
	}
	if person.Confidence == "" {
		person.Confidence = entities.ConfidenceUncertain
	}

	id, err := s.store.AddPerson(ctx, person)
	if err != nil {
		return 0, fmt.Errorf("adding person: %w", err)
	}

	if err := s.store.LogAction(ctx, "add_person", id, map[string]any{"name": person.FullName()}); err != nil {
		return 0, fmt.Errorf("logging add_person: %w", err)
	}
	return id, nil
}

// Update overwrites an existing person's fields.
func (s *PersonService) Update(ctx context.Context, person *entities.Person) error {
	if person.ID <= 0 {
		return fmt.Errorf("invalid person id: %d", person.ID)
	}
	if err := validatePerson(person); err != nil {
		return err
	}

	existing, err := s.store.FindPersonByID(ctx, person.ID)
	if err != nil {
		return fmt.Errorf("finding person: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", ports.ErrPersonNotFound, person.ID)
	}
	if person.Confidence == "" {
		person.Confidence = existing.Confidence
	}

	if err := s.store.UpdatePerson(ctx, person); err != nil {
		return fmt.Errorf("updating person: %w", err)
	}

	if err := s.store.LogAction(ctx, "update_person", person.ID, map[string]any{"name": person.FullName()}); err != nil {
		return fmt.Errorf("logging update_person: %w", err)
	}
	return nil
}

// Get finds a person by id, returning nil when absent.
func (s *PersonService) Get(ctx context.Context, id int64) (*entities.Person, error) {
	return s.store.FindPersonByID(ctx, id)
}

// List returns persons optionally filtered by given-name and surname
// substrings, ordered by id.
func (s *PersonService) List(ctx context.Context, givenFilter, surnameFilter string) ([]entities.Person, error) {
	return s.store.ListPersons(ctx, givenFilter, surnameFilter)
}

// Surnames returns the distinct surnames in the store, sorted.
func (s *PersonService) Surnames(ctx context.Context) ([]string, error) {
	return s.store.ListSurnames(ctx)
}

// Count returns the number of persons in the store.
func (s *PersonService) Count(ctx context.Context) (int, error) {
	return s.store.CountPersons(ctx)
}

func validatePerson(person *entities.Person) error {
	if person.GivenName == "" || person.Surname == "" {
		return errors.New("given name and surname are required")
	}
	return nil
}
