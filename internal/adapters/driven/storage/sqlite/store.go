package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/typepair-labs/typepair-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for favourites.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.typepair/data/typepair.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".typepair", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "typepair.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FavouriteStore returns a FavouriteStore interface backed by this store.
func (s *Store) FavouriteStore() driven.FavouriteStore {
	return &favouriteStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Favourite Store ====================

// favouriteStore implements driven.FavouriteStore.
type favouriteStore struct {
	store *Store
}

var _ driven.FavouriteStore = (*favouriteStore)(nil)

// Save stores a favourite.
func (s *favouriteStore) Save(ctx context.Context, fav domain.Favourite) error {
	if fav.ID == "" {
		return domain.ErrInvalidInput
	}

	stateJSON, err := json.Marshal(fav.State)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO favourites (id, created_at, state)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			state = excluded.state
	`, fav.ID, fav.CreatedAt.UTC(), string(stateJSON))

	if err != nil {
		return fmt.Errorf("saving favourite: %w", err)
	}
	return nil
}

// Get retrieves a favourite by ID.
func (s *favouriteStore) Get(ctx context.Context, id string) (*domain.Favourite, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, created_at, state
		FROM favourites WHERE id = ?
	`, id)

	var fav domain.Favourite
	var stateJSON string
	if err := row.Scan(&fav.ID, &fav.CreatedAt, &stateJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning favourite: %w", err)
	}

	if err := json.Unmarshal([]byte(stateJSON), &fav.State); err != nil {
		return nil, fmt.Errorf("unmarshalling state: %w", err)
	}

	return &fav, nil
}

// Delete removes a favourite.
func (s *favouriteStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM favourites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting favourite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all favourites, newest first.
func (s *favouriteStore) List(ctx context.Context) ([]domain.Favourite, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, created_at, state
		FROM favourites
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying favourites: %w", err)
	}
	defer rows.Close()

	var favs []domain.Favourite //nolint:prealloc // size unknown from query
	for rows.Next() {
		var fav domain.Favourite
		var stateJSON string
		if err := rows.Scan(&fav.ID, &fav.CreatedAt, &stateJSON); err != nil {
			return nil, fmt.Errorf("scanning favourite: %w", err)
		}

		if err := json.Unmarshal([]byte(stateJSON), &fav.State); err != nil {
			return nil, fmt.Errorf("unmarshalling state: %w", err)
		}
		favs = append(favs, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favourites: %w", err)
	}

	return favs, nil
}

// Prune removes the oldest favourites beyond keep.
func (s *favouriteStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM favourites
		WHERE id NOT IN (
			SELECT id FROM favourites
			ORDER BY created_at DESC, id
			LIMIT ?
		)
	`, keep)

	if err != nil {
		return fmt.Errorf("pruning favourites: %w", err)
	}
	return nil
}
