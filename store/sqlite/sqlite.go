/*
Package sqlite provides SQLite persistence for saved birth profiles.

PURPOSE:
  Stores named birth records (a person, a celebrity, a roster entry) along
  with the constitution the engine computed when the record was saved. The
  engine itself never touches the store; callers compute and then persist.

KEY TABLES:
  profiles: One row per saved profile, keyed by id.

INDEXES:
  - idx_profiles_constitution: ListByConstitution
  - idx_profiles_category:     roster category filters

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's own locking.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./data/saju.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - api/handlers.go: HTTP access to saved profiles
  - roster/roster.go: Bulk import source
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/saju-engine/saju"
)

// Store persists profiles in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each :memory: connection is its own database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT,
		birth_date TEXT NOT NULL,
		birth_hour INTEGER,
		constitution TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_constitution
		ON profiles(constitution);
	CREATE INDEX IF NOT EXISTS idx_profiles_category
		ON profiles(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PROFILE STORE
// =============================================================================

// Profile is a stored birth record.
type Profile struct {
	ID           string
	Name         string
	Category     string
	BirthDate    string // YYYY-MM-DD
	BirthHour    *int
	Constitution saju.ConstitutionType
	CreatedAt    time.Time
}

const profileColumns = "id, name, category, birth_date, birth_hour, constitution, created_at"

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SaveProfile creates or updates a profile. created_at is kept on update.
func (s *Store) SaveProfile(ctx context.Context, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return saveProfile(ctx, s.db, p)
}

func saveProfile(ctx context.Context, db execer, p Profile) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	if !p.Constitution.Valid() {
		return fmt.Errorf("profile %s: invalid constitution %q", p.ID, p.Constitution)
	}

	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			birth_date = excluded.birth_date,
			birth_hour = excluded.birth_hour,
			constitution = excluded.constitution
	`

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := db.ExecContext(ctx, query,
		p.ID, p.Name, nullString(p.Category), p.BirthDate,
		nullInt(p.BirthHour), string(p.Constitution),
		createdAt.UTC().Format(time.RFC3339),
	)
	return err
}

// SaveProfiles upserts a batch in one transaction. Either all rows are
// written or none are.
func (s *Store) SaveProfiles(ctx context.Context, profiles []Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	for _, p := range profiles {
		if err := saveProfile(ctx, sqlTx, p); err != nil {
			return err
		}
	}

	return sqlTx.Commit()
}

// GetProfile retrieves a profile by ID. A missing profile is (nil, nil).
func (s *Store) GetProfile(ctx context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE id = ?",
		id,
	)

	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns all profiles ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryProfiles(ctx,
		"SELECT "+profileColumns+" FROM profiles ORDER BY name, id",
	)
}

// ListByConstitution returns the profiles stored with constitution c.
func (s *Store) ListByConstitution(ctx context.Context, c saju.ConstitutionType) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryProfiles(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE constitution = ? ORDER BY name, id",
		string(c),
	)
}

// CountByConstitution returns how many stored profiles have each type.
// Types with no profiles are present with a zero count.
func (s *Store) CountByConstitution(ctx context.Context) (map[saju.ConstitutionType]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT constitution, COUNT(*) FROM profiles GROUP BY constitution",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[saju.ConstitutionType]int, len(saju.ConstitutionTypes))
	for _, c := range saju.ConstitutionTypes {
		counts[c] = 0
	}
	for rows.Next() {
		var c string
		var n int
		if err := rows.Scan(&c, &n); err != nil {
			return nil, err
		}
		counts[saju.ConstitutionType(c)] = n
	}
	return counts, rows.Err()
}

// DeleteProfile removes a profile. It reports whether a row was removed.
func (s *Store) DeleteProfile(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reset clears all data.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM profiles")
	return err
}

func (s *Store) queryProfiles(ctx context.Context, query string, args ...any) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (Profile, error) {
	var p Profile
	var category sql.NullString
	var hour sql.NullInt64
	var constitution, createdAt string

	if err := row.Scan(&p.ID, &p.Name, &category, &p.BirthDate, &hour, &constitution, &createdAt); err != nil {
		return Profile{}, err
	}

	p.Category = category.String
	if hour.Valid {
		h := int(hour.Int64)
		p.BirthHour = &h
	}
	p.Constitution = saju.ConstitutionType(constitution)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return p, nil
}

// Helper functions

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

