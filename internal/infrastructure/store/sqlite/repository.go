// Package sqlite provides a SQLite implementation of the Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/infrastructure/config"
)

// Repository implements ports.Store using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Persons (the nodes of the family graph)
	CREATE TABLE IF NOT EXISTS persons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		given_name TEXT NOT NULL,
		middle_name TEXT,
		surname TEXT NOT NULL,
		maiden_name TEXT,
		birth_year INTEGER,
		death_year INTEGER,
		generation INTEGER,
		confidence TEXT NOT NULL DEFAULT 'uncertain',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_persons_surname ON persons(surname);
	CREATE INDEX IF NOT EXISTS idx_persons_given ON persons(given_name);

	-- Parent-child edges (directed, parent to child)
	CREATE TABLE IF NOT EXISTS parent_child (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		parent_id INTEGER NOT NULL REFERENCES persons(id),
		child_id INTEGER NOT NULL REFERENCES persons(id),
		type TEXT NOT NULL DEFAULT 'biological',
		confidence TEXT NOT NULL DEFAULT 'likely',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CHECK (parent_id != child_id),
		UNIQUE(parent_id, child_id, type)
	);
	CREATE INDEX IF NOT EXISTS idx_parent_child_parent ON parent_child(parent_id);
	CREATE INDEX IF NOT EXISTS idx_parent_child_child ON parent_child(child_id);

	-- Partnership edges (symmetric, stored once)
	CREATE TABLE IF NOT EXISTS partnerships (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person1_id INTEGER NOT NULL REFERENCES persons(id),
		person2_id INTEGER NOT NULL REFERENCES persons(id),
		type TEXT NOT NULL DEFAULT 'marriage',
		start_year INTEGER,
		end_year INTEGER,
		sequence_number INTEGER,
		confidence TEXT NOT NULL DEFAULT 'likely',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CHECK (person1_id != person2_id)
	);
	CREATE INDEX IF NOT EXISTS idx_partnerships_person1 ON partnerships(person1_id);
	CREATE INDEX IF NOT EXISTS idx_partnerships_person2 ON partnerships(person2_id);

	-- Audit log (tracks all mutations)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		person_id INTEGER,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_person ON audit_log(person_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	CREATE INDEX IF NOT EXISTS idx_audit_log_created ON audit_log(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

const personColumns = "id, given_name, middle_name, surname, maiden_name, birth_year, death_year, generation, confidence"

// AddPerson inserts a person and returns the store-assigned id.
func (r *Repository) AddPerson(ctx context.Context, person *entities.Person) (int64, error) {
	query := `
		INSERT INTO persons (given_name, middle_name, surname, maiden_name, birth_year, death_year, generation, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		person.GivenName,
		nullString(person.MiddleName),
		person.Surname,
		nullString(person.MaidenName),
		nullInt(person.BirthYear),
		nullInt(person.DeathYear),
		nullInt(person.Generation),
		string(person.Confidence),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	person.ID = id
	return id, nil
}

// UpdatePerson overwrites an existing person's fields.
func (r *Repository) UpdatePerson(ctx context.Context, person *entities.Person) error {
	query := `
		UPDATE persons
		SET given_name = ?, middle_name = ?, surname = ?, maiden_name = ?,
			birth_year = ?, death_year = ?, generation = ?, confidence = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		person.GivenName,
		nullString(person.MiddleName),
		person.Surname,
		nullString(person.MaidenName),
		nullInt(person.BirthYear),
		nullInt(person.DeathYear),
		nullInt(person.Generation),
		string(person.Confidence),
		person.ID,
	)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", ports.ErrPersonNotFound, person.ID)
	}
	return nil
}

// FindPersonByID finds a person by id, returning nil when absent.
func (r *Repository) FindPersonByID(ctx context.Context, id int64) (*entities.Person, error) {
	query := fmt.Sprintf("SELECT %s FROM persons WHERE id = ?", personColumns)
	row := r.db.QueryRowContext(ctx, query, id)

	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	return person, nil
}

// FindPersonsByIDs finds multiple persons by id in a single query, dropping
// missing ids.
func (r *Repository) FindPersonsByIDs(ctx context.Context, ids []int64) ([]entities.Person, error) {
	if len(ids) == 0 {
		return []entities.Person{}, nil
	}

	query := fmt.Sprintf(
		"SELECT %s FROM persons WHERE id IN (%s) ORDER BY id ASC",
		personColumns, placeholders(len(ids)),
	)
	return r.queryPersons(ctx, query, idArgs(ids)...)
}

// ListPersons lists persons ordered by id with optional case-insensitive
// name filters.
func (r *Repository) ListPersons(ctx context.Context, givenFilter, surnameFilter string) ([]entities.Person, error) {
	query := fmt.Sprintf("SELECT %s FROM persons", personColumns)

	var conditions []string
	var args []any
	if givenFilter != "" {
		conditions = append(conditions, "LOWER(given_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(givenFilter)+"%")
	}
	if surnameFilter != "" {
		conditions = append(conditions, "LOWER(surname) LIKE ?")
		args = append(args, "%"+strings.ToLower(surnameFilter)+"%")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return r.queryPersons(ctx, query, args...)
}

// SearchPersons returns persons where any name field contains any token,
// case-insensitive, ordered by id for stable results.
func (r *Repository) SearchPersons(ctx context.Context, tokens []string, limit int) ([]entities.Person, error) {
	if len(tokens) == 0 {
		return []entities.Person{}, nil
	}

	conditions := make([]string, 0, len(tokens))
	args := make([]any, 0, len(tokens)*3)
	for _, token := range tokens {
		pattern := "%" + strings.ToLower(token) + "%"
		conditions = append(conditions,
			"(LOWER(given_name) LIKE ? OR LOWER(middle_name) LIKE ? OR LOWER(surname) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		"SELECT %s FROM persons WHERE %s ORDER BY id ASC LIMIT ?",
		personColumns, strings.Join(conditions, " OR "),
	)
	return r.queryPersons(ctx, query, args...)
}

// ListSurnames returns the distinct non-empty surnames, sorted.
func (r *Repository) ListSurnames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT surname FROM persons WHERE surname != '' ORDER BY surname ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying surnames: %w", err)
	}
	defer rows.Close()

	surnames := make([]string, 0, 16)
	for rows.Next() {
		var surname string
		if err := rows.Scan(&surname); err != nil {
			return nil, fmt.Errorf("scanning surname: %w", err)
		}
		surnames = append(surnames, surname)
	}
	return surnames, rows.Err()
}

// CountPersons returns the total number of persons.
func (r *Repository) CountPersons(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting persons: %w", err)
	}
	return count, nil
}

// queryPersons is a helper to execute person queries.
func (r *Repository) queryPersons(ctx context.Context, query string, args ...any) ([]entities.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	persons := make([]entities.Person, 0, 16)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		persons = append(persons, *person)
	}
	return persons, rows.Err()
}

const parentChildColumns = "id, parent_id, child_id, type, confidence"

// AddParentChild inserts a parent-child edge.
func (r *Repository) AddParentChild(ctx context.Context, edge *entities.ParentChildEdge) (int64, error) {
	query := `
		INSERT INTO parent_child (parent_id, child_id, type, confidence)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		edge.ParentID,
		edge.ChildID,
		string(edge.Type),
		string(edge.Confidence),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting parent-child edge: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	edge.ID = id
	return id, nil
}

// HasParentChild reports whether a matching edge already exists.
func (r *Repository) HasParentChild(ctx context.Context, parentID, childID int64, relType entities.ParentChildType) (bool, error) {
	query := `SELECT COUNT(*) FROM parent_child WHERE parent_id = ? AND child_id = ? AND type = ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, parentID, childID, string(relType)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking parent-child edge: %w", err)
	}
	return count > 0, nil
}

// FindParentEdges returns the edges where childID is the child, in insertion
// order.
func (r *Repository) FindParentEdges(ctx context.Context, childID int64) ([]entities.ParentChildEdge, error) {
	query := fmt.Sprintf("SELECT %s FROM parent_child WHERE child_id = ? ORDER BY id ASC", parentChildColumns)
	return r.queryParentChild(ctx, query, childID)
}

// FindChildEdges returns the edges where parentID is the parent, in insertion
// order.
func (r *Repository) FindChildEdges(ctx context.Context, parentID int64) ([]entities.ParentChildEdge, error) {
	query := fmt.Sprintf("SELECT %s FROM parent_child WHERE parent_id = ? ORDER BY id ASC", parentChildColumns)
	return r.queryParentChild(ctx, query, parentID)
}

// FindChildEdgesOf returns every edge whose parent is in parentIDs.
func (r *Repository) FindChildEdgesOf(ctx context.Context, parentIDs []int64) ([]entities.ParentChildEdge, error) {
	if len(parentIDs) == 0 {
		return []entities.ParentChildEdge{}, nil
	}
	query := fmt.Sprintf(
		"SELECT %s FROM parent_child WHERE parent_id IN (%s) ORDER BY id ASC",
		parentChildColumns, placeholders(len(parentIDs)),
	)
	return r.queryParentChild(ctx, query, idArgs(parentIDs)...)
}

// FindParentEdgesOf returns every edge whose child is in childIDs.
func (r *Repository) FindParentEdgesOf(ctx context.Context, childIDs []int64) ([]entities.ParentChildEdge, error) {
	if len(childIDs) == 0 {
		return []entities.ParentChildEdge{}, nil
	}
	query := fmt.Sprintf(
		"SELECT %s FROM parent_child WHERE child_id IN (%s) ORDER BY id ASC",
		parentChildColumns, placeholders(len(childIDs)),
	)
	return r.queryParentChild(ctx, query, idArgs(childIDs)...)
}

// FindParentChildAmong returns the edges with both endpoints in ids.
func (r *Repository) FindParentChildAmong(ctx context.Context, ids []int64) ([]entities.ParentChildEdge, error) {
	if len(ids) == 0 {
		return []entities.ParentChildEdge{}, nil
	}
	ph := placeholders(len(ids))
	query := fmt.Sprintf(
		"SELECT %s FROM parent_child WHERE parent_id IN (%s) AND child_id IN (%s) ORDER BY id ASC",
		parentChildColumns, ph, ph,
	)
	args := append(idArgs(ids), idArgs(ids)...)
	return r.queryParentChild(ctx, query, args...)
}

// queryParentChild is a helper to execute parent-child edge queries.
func (r *Repository) queryParentChild(ctx context.Context, query string, args ...any) ([]entities.ParentChildEdge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying parent-child edges: %w", err)
	}
	defer rows.Close()

	edges := make([]entities.ParentChildEdge, 0, 16)
	for rows.Next() {
		var edge entities.ParentChildEdge
		var relType, confidence string
		if err := rows.Scan(&edge.ID, &edge.ParentID, &edge.ChildID, &relType, &confidence); err != nil {
			return nil, fmt.Errorf("scanning parent-child edge: %w", err)
		}
		edge.Type = entities.ParentChildType(relType)
		edge.Confidence = entities.ConfidenceLevel(confidence)
		edges = append(edges, edge)
	}
	return edges, rows.Err()
}

const partnershipColumns = "id, person1_id, person2_id, type, start_year, end_year, sequence_number, confidence"

// AddPartnership inserts a partnership edge.
func (r *Repository) AddPartnership(ctx context.Context, edge *entities.PartnershipEdge) (int64, error) {
	query := `
		INSERT INTO partnerships (person1_id, person2_id, type, start_year, end_year, sequence_number, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		edge.Person1ID,
		edge.Person2ID,
		string(edge.Type),
		nullInt(edge.StartYear),
		nullInt(edge.EndYear),
		nullInt(edge.SequenceNumber),
		string(edge.Confidence),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting partnership: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	edge.ID = id
	return id, nil
}

// HasPartnership reports whether a partnership exists in either direction.
func (r *Repository) HasPartnership(ctx context.Context, person1ID, person2ID int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM partnerships
		WHERE (person1_id = ? AND person2_id = ?) OR (person1_id = ? AND person2_id = ?)
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, person1ID, person2ID, person2ID, person1ID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking partnership: %w", err)
	}
	return count > 0, nil
}

// FindPartnerships returns every partnership edge touching personID.
func (r *Repository) FindPartnerships(ctx context.Context, personID int64) ([]entities.PartnershipEdge, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM partnerships WHERE person1_id = ? OR person2_id = ? ORDER BY id ASC",
		partnershipColumns,
	)
	return r.queryPartnerships(ctx, query, personID, personID)
}

// FindPartnershipsTouching returns every edge with at least one endpoint in ids.
func (r *Repository) FindPartnershipsTouching(ctx context.Context, ids []int64) ([]entities.PartnershipEdge, error) {
	if len(ids) == 0 {
		return []entities.PartnershipEdge{}, nil
	}
	ph := placeholders(len(ids))
	query := fmt.Sprintf(
		"SELECT %s FROM partnerships WHERE person1_id IN (%s) OR person2_id IN (%s) ORDER BY id ASC",
		partnershipColumns, ph, ph,
	)
	args := append(idArgs(ids), idArgs(ids)...)
	return r.queryPartnerships(ctx, query, args...)
}

// FindPartnershipsAmong returns the edges with both endpoints in ids.
func (r *Repository) FindPartnershipsAmong(ctx context.Context, ids []int64) ([]entities.PartnershipEdge, error) {
	if len(ids) == 0 {
		return []entities.PartnershipEdge{}, nil
	}
	ph := placeholders(len(ids))
	query := fmt.Sprintf(
		"SELECT %s FROM partnerships WHERE person1_id IN (%s) AND person2_id IN (%s) ORDER BY id ASC",
		partnershipColumns, ph, ph,
	)
	args := append(idArgs(ids), idArgs(ids)...)
	return r.queryPartnerships(ctx, query, args...)
}

// queryPartnerships is a helper to execute partnership queries.
func (r *Repository) queryPartnerships(ctx context.Context, query string, args ...any) ([]entities.PartnershipEdge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying partnerships: %w", err)
	}
	defer rows.Close()

	edges := make([]entities.PartnershipEdge, 0, 16)
	for rows.Next() {
		var edge entities.PartnershipEdge
		var ptype, confidence string
		var startYear, endYear, sequence sql.NullInt64
		if err := rows.Scan(
			&edge.ID,
			&edge.Person1ID,
			&edge.Person2ID,
			&ptype,
			&startYear,
			&endYear,
			&sequence,
			&confidence,
		); err != nil {
			return nil, fmt.Errorf("scanning partnership: %w", err)
		}
		edge.Type = entities.PartnershipType(ptype)
		edge.Confidence = entities.ConfidenceLevel(confidence)
		edge.StartYear = intPtr(startYear)
		edge.EndYear = intPtr(endYear)
		edge.SequenceNumber = intPtr(sequence)
		edges = append(edges, edge)
	}
	return edges, rows.Err()
}

// LogAction logs an action to the audit log. A personID of zero records an
// action not tied to a single person.
func (r *Repository) LogAction(ctx context.Context, action string, personID int64, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var personIDPtr sql.NullInt64
	if personID != 0 {
		personIDPtr = sql.NullInt64{Int64: personID, Valid: true}
	}

	query := `INSERT INTO audit_log (action, person_id, details) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, action, personIDPtr, detailsJSON)
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for a specific person.
func (r *Repository) FindAuditLog(ctx context.Context, personID int64) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, person_id, details, created_at
		FROM audit_log
		WHERE person_id = ?
		ORDER BY created_at DESC
	`
	return r.queryAuditLog(ctx, query, personID)
}

// FindAuditLogByAction finds audit log entries by action type.
func (r *Repository) FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, person_id, details, created_at
		FROM audit_log
		WHERE action = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	return r.queryAuditLog(ctx, query, action, limit)
}

// queryAuditLog is a helper to execute audit log queries.
func (r *Repository) queryAuditLog(ctx context.Context, query string, args ...any) ([]entities.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []entities.AuditEntry
	for rows.Next() {
		var entry entities.AuditEntry
		var personID sql.NullInt64
		var details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&personID,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.PersonID = personID.Int64

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for person scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (*entities.Person, error) {
	var person entities.Person
	var middle, maiden sql.NullString
	var birth, death, generation sql.NullInt64
	var confidence string

	err := row.Scan(
		&person.ID,
		&person.GivenName,
		&middle,
		&person.Surname,
		&maiden,
		&birth,
		&death,
		&generation,
		&confidence,
	)
	if err != nil {
		return nil, err
	}

	person.MiddleName = middle.String
	person.MaidenName = maiden.String
	person.BirthYear = intPtr(birth)
	person.DeathYear = intPtr(death)
	person.Generation = intPtr(generation)
	person.Confidence = entities.ConfidenceLevel(confidence)
	return &person, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
