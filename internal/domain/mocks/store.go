// Package mocks provides in-memory implementations of the domain ports for
// unit tests.
package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

// Store is a map-backed mock implementation of ports.Store. Edges keep
// insertion order, matching the stable query order of the sqlite store.
// Setting Err makes every operation fail with it.
type Store struct {
	Persons      map[int64]*entities.Person
	ParentChild  []entities.ParentChildEdge
	Partnerships []entities.PartnershipEdge
	Audit        []entities.AuditEntry
	Err          error

	nextPersonID int64
	nextEdgeID   int64
}

// NewStore creates an empty mock Store.
func NewStore() *Store {
	return &Store{
		Persons: make(map[int64]*entities.Person),
	}
}

// MustAddPerson inserts a person directly, for test fixtures.
func (m *Store) MustAddPerson(p entities.Person) entities.Person {
	if p.ID == 0 {
		m.nextPersonID++
		p.ID = m.nextPersonID
	} else if p.ID > m.nextPersonID {
		m.nextPersonID = p.ID
	}
	m.Persons[p.ID] = &p
	return p
}

// MustAddParentChild inserts a parent-child edge directly, for test fixtures.
func (m *Store) MustAddParentChild(parentID, childID int64) {
	m.nextEdgeID++
	m.ParentChild = append(m.ParentChild, entities.ParentChildEdge{
		ID:         m.nextEdgeID,
		ParentID:   parentID,
		ChildID:    childID,
		Type:       entities.ParentChildBiological,
		Confidence: entities.ConfidenceLikely,
	})
}

// MustAddPartnership inserts a partnership edge directly, for test fixtures.
func (m *Store) MustAddPartnership(edge entities.PartnershipEdge) {
	m.nextEdgeID++
	edge.ID = m.nextEdgeID
	if edge.Type == "" {
		edge.Type = entities.PartnershipMarriage
	}
	m.Partnerships = append(m.Partnerships, edge)
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *Store) EnsureSchema(_ context.Context) error { return m.Err }

// Close closes the database connection.
func (m *Store) Close() error { return nil }

// AddPerson inserts a person and returns the store-assigned id.
func (m *Store) AddPerson(_ context.Context, person *entities.Person) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextPersonID++
	person.ID = m.nextPersonID
	copied := *person
	m.Persons[person.ID] = &copied
	return person.ID, nil
}

// UpdatePerson overwrites an existing person's fields.
func (m *Store) UpdatePerson(_ context.Context, person *entities.Person) error {
	if m.Err != nil {
		return m.Err
	}
	copied := *person
	m.Persons[person.ID] = &copied
	return nil
}

// FindPersonByID finds a person by id.
func (m *Store) FindPersonByID(_ context.Context, id int64) (*entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Persons[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

// FindPersonsByIDs finds multiple persons, dropping missing ids.
func (m *Store) FindPersonsByIDs(_ context.Context, ids []int64) ([]entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.Persons[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ListPersons lists persons ordered by id with optional name filters.
func (m *Store) ListPersons(_ context.Context, givenFilter, surnameFilter string) ([]entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Person, 0, len(m.Persons))
	for _, p := range m.Persons {
		if givenFilter != "" && !strings.Contains(strings.ToLower(p.GivenName), strings.ToLower(givenFilter)) {
			continue
		}
		if surnameFilter != "" && !strings.Contains(strings.ToLower(p.Surname), strings.ToLower(surnameFilter)) {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SearchPersons returns persons where any name field contains any token.
func (m *Store) SearchPersons(_ context.Context, tokens []string, limit int) ([]entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Person, 0, len(m.Persons))
	for _, p := range m.Persons {
		if matchesAnyToken(p, tokens) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func matchesAnyToken(p *entities.Person, tokens []string) bool {
	fields := []string{
		strings.ToLower(p.GivenName),
		strings.ToLower(p.MiddleName),
		strings.ToLower(p.Surname),
	}
	for _, token := range tokens {
		lower := strings.ToLower(token)
		for _, field := range fields {
			if field != "" && strings.Contains(field, lower) {
				return true
			}
		}
	}
	return false
}

// ListSurnames returns the distinct non-empty surnames, sorted.
func (m *Store) ListSurnames(_ context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	seen := make(map[string]bool)
	for _, p := range m.Persons {
		if p.Surname != "" {
			seen[p.Surname] = true
		}
	}
	surnames := make([]string, 0, len(seen))
	for s := range seen {
		surnames = append(surnames, s)
	}
	sort.Strings(surnames)
	return surnames, nil
}

// CountPersons returns the total number of persons.
func (m *Store) CountPersons(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Persons), nil
}

// AddParentChild inserts a parent-child edge.
func (m *Store) AddParentChild(_ context.Context, edge *entities.ParentChildEdge) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextEdgeID++
	edge.ID = m.nextEdgeID
	m.ParentChild = append(m.ParentChild, *edge)
	return edge.ID, nil
}

// HasParentChild reports whether a matching edge already exists.
func (m *Store) HasParentChild(_ context.Context, parentID, childID int64, relType entities.ParentChildType) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.ParentChild {
		e := &m.ParentChild[i]
		if e.ParentID == parentID && e.ChildID == childID && e.Type == relType {
			return true, nil
		}
	}
	return false, nil
}

// FindParentEdges returns the edges where childID is the child.
func (m *Store) FindParentEdges(_ context.Context, childID int64) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.ParentChildEdge
	for i := range m.ParentChild {
		if m.ParentChild[i].ChildID == childID {
			result = append(result, m.ParentChild[i])
		}
	}
	return result, nil
}

// FindChildEdges returns the edges where parentID is the parent.
func (m *Store) FindChildEdges(_ context.Context, parentID int64) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.ParentChildEdge
	for i := range m.ParentChild {
		if m.ParentChild[i].ParentID == parentID {
			result = append(result, m.ParentChild[i])
		}
	}
	return result, nil
}

// FindChildEdgesOf returns every edge whose parent is in parentIDs.
func (m *Store) FindChildEdgesOf(_ context.Context, parentIDs []int64) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	idSet := toSet(parentIDs)
	var result []entities.ParentChildEdge
	for i := range m.ParentChild {
		if idSet[m.ParentChild[i].ParentID] {
			result = append(result, m.ParentChild[i])
		}
	}
	return result, nil
}

// FindParentEdgesOf returns every edge whose child is in childIDs.
func (m *Store) FindParentEdgesOf(_ context.Context, childIDs []int64) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	idSet := toSet(childIDs)
	var result []entities.ParentChildEdge
	for i := range m.ParentChild {
		if idSet[m.ParentChild[i].ChildID] {
			result = append(result, m.ParentChild[i])
		}
	}
	return result, nil
}

// FindParentChildAmong returns the edges with both endpoints in ids.
func (m *Store) FindParentChildAmong(_ context.Context, ids []int64) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	idSet := toSet(ids)
	var result []entities.ParentChildEdge
	for i := range m.ParentChild {
		e := &m.ParentChild[i]
		if idSet[e.ParentID] && idSet[e.ChildID] {
			result = append(result, *e)
		}
	}
	return result, nil
}

// AddPartnership inserts a partnership edge.
func (m *Store) AddPartnership(_ context.Context, edge *entities.PartnershipEdge) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextEdgeID++
	edge.ID = m.nextEdgeID
	m.Partnerships = append(m.Partnerships, *edge)
	return edge.ID, nil
}

// HasPartnership reports whether a partnership exists in either direction.
func (m *Store) HasPartnership(_ context.Context, person1ID, person2ID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Partnerships {
		e := &m.Partnerships[i]
		if (e.Person1ID == person1ID && e.Person2ID == person2ID) ||
			(e.Person1ID == person2ID && e.Person2ID == person1ID) {
			return true, nil
		}
	}
	return false, nil
}

// FindPartnerships returns every partnership edge touching personID.
func (m *Store) FindPartnerships(_ context.Context, personID int64) ([]entities.PartnershipEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.PartnershipEdge
	for i := range m.Partnerships {
		e := &m.Partnerships[i]
		if e.Person1ID == personID || e.Person2ID == personID {
			result = append(result, *e)
		}
	}
	return result, nil
}

// FindPartnershipsTouching returns every edge with at least one endpoint in ids.
func (m *Store) FindPartnershipsTouching(_ context.Context, ids []int64) ([]entities.PartnershipEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	idSet := toSet(ids)
	var result []entities.PartnershipEdge
	for i := range m.Partnerships {
		e := &m.Partnerships[i]
		if idSet[e.Person1ID] || idSet[e.Person2ID] {
			result = append(result, *e)
		}
	}
	return result, nil
}

// FindPartnershipsAmong returns the edges with both endpoints in ids.
func (m *Store) FindPartnershipsAmong(_ context.Context, ids []int64) ([]entities.PartnershipEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	idSet := toSet(ids)
	var result []entities.PartnershipEdge
	for i := range m.Partnerships {
		e := &m.Partnerships[i]
		if idSet[e.Person1ID] && idSet[e.Person2ID] {
			result = append(result, *e)
		}
	}
	return result, nil
}

// LogAction logs an action to the audit log.
func (m *Store) LogAction(_ context.Context, action string, personID int64, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:        int64(len(m.Audit) + 1),
		Action:    action,
		PersonID:  personID,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// FindAuditLog finds audit log entries for a specific person.
func (m *Store) FindAuditLog(_ context.Context, personID int64) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.AuditEntry
	for _, e := range m.Audit {
		if e.PersonID == personID {
			result = append(result, e)
		}
	}
	return result, nil
}

// FindAuditLogByAction finds audit log entries by action type.
func (m *Store) FindAuditLogByAction(_ context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.AuditEntry
	for _, e := range m.Audit {
		if e.Action == action {
			result = append(result, e)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
