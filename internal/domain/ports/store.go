package ports

import (
	"context"
	"errors"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
)

// ErrPersonNotFound reports a person id that matches no record. Producers
// wrap it with the offending id; callers check it with errors.Is.
var ErrPersonNotFound = errors.New("person not found")

// Store defines the person/edge store the engine is built against. Every
// service receives a Store at construction; session lifecycle (scoped
// acquisition per call, guaranteed release) is the implementation's contract.
//
// Lookup methods return (nil, nil) for missing records: absent data is an
// expected outcome over incomplete genealogical records, not an error.
type Store interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Person operations

	// AddPerson inserts a person and returns the store-assigned id.
	AddPerson(ctx context.Context, person *entities.Person) (int64, error)

	// UpdatePerson overwrites an existing person's fields.
	UpdatePerson(ctx context.Context, person *entities.Person) error

	// FindPersonByID finds a person by id.
	FindPersonByID(ctx context.Context, id int64) (*entities.Person, error)

	// FindPersonsByIDs finds multiple persons in a single query. Missing ids
	// are silently dropped from the result.
	FindPersonsByIDs(ctx context.Context, ids []int64) ([]entities.Person, error)

	// ListPersons lists persons ordered by id, optionally filtered by
	// case-insensitive given-name and surname substrings.
	ListPersons(ctx context.Context, givenFilter, surnameFilter string) ([]entities.Person, error)

	// SearchPersons returns persons where any of given, middle or surname
	// contains any of the tokens (case-insensitive), up to limit.
	SearchPersons(ctx context.Context, tokens []string, limit int) ([]entities.Person, error)

	// ListSurnames returns the distinct non-empty surnames, sorted.
	ListSurnames(ctx context.Context) ([]string, error)

	// CountPersons returns the total number of persons.
	CountPersons(ctx context.Context) (int, error)

	// Parent-child edge operations

	// AddParentChild inserts a parent-child edge and returns its id.
	// Self-loops (parent == child) are rejected.
	AddParentChild(ctx context.Context, edge *entities.ParentChildEdge) (int64, error)

	// HasParentChild reports whether an edge with the same endpoints and type
	// already exists.
	HasParentChild(ctx context.Context, parentID, childID int64, relType entities.ParentChildType) (bool, error)

	// FindParentEdges returns the edges where childID is the child.
	FindParentEdges(ctx context.Context, childID int64) ([]entities.ParentChildEdge, error)

	// FindChildEdges returns the edges where parentID is the parent.
	FindChildEdges(ctx context.Context, parentID int64) ([]entities.ParentChildEdge, error)

	// FindChildEdgesOf returns every edge whose parent is in parentIDs.
	// Used for level-by-level descendant expansion.
	FindChildEdgesOf(ctx context.Context, parentIDs []int64) ([]entities.ParentChildEdge, error)

	// FindParentEdgesOf returns every edge whose child is in childIDs.
	// Used for level-by-level ancestor expansion.
	FindParentEdgesOf(ctx context.Context, childIDs []int64) ([]entities.ParentChildEdge, error)

	// FindParentChildAmong returns the edges with both endpoints in ids
	// (induced edge set).
	FindParentChildAmong(ctx context.Context, ids []int64) ([]entities.ParentChildEdge, error)

	// Partnership edge operations

	// AddPartnership inserts a partnership edge and returns its id.
	AddPartnership(ctx context.Context, edge *entities.PartnershipEdge) (int64, error)

	// HasPartnership reports whether a partnership between the two persons
	// already exists, in either direction.
	HasPartnership(ctx context.Context, person1ID, person2ID int64) (bool, error)

	// FindPartnerships returns every partnership edge touching personID.
	FindPartnerships(ctx context.Context, personID int64) ([]entities.PartnershipEdge, error)

	// FindPartnershipsTouching returns every partnership edge with at least
	// one endpoint in ids.
	FindPartnershipsTouching(ctx context.Context, ids []int64) ([]entities.PartnershipEdge, error)

	// FindPartnershipsAmong returns the partnership edges with both endpoints
	// in ids (induced edge set).
	FindPartnershipsAmong(ctx context.Context, ids []int64) ([]entities.PartnershipEdge, error)

	// Audit log

	// LogAction logs an action to the audit log. personID may be 0 for
	// actions not tied to a single person.
	LogAction(ctx context.Context, action string, personID int64, details map[string]any) error

	// FindAuditLog finds audit log entries for a specific person.
	FindAuditLog(ctx context.Context, personID int64) ([]entities.AuditEntry, error)

	// FindAuditLogByAction finds audit log entries by action type.
	FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error)
}
