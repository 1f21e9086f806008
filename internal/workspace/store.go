// Package workspace persists the small bits of local state the search
// screen reads at startup: the active workspace selection and the
// user's recent queries. Selection itself happens outside the screen,
// through the workspace subcommand.
package workspace

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const activeKey = "active_workspace"

// Workspace is the persisted selection. Stored as JSON so additional
// fields from the selection flow survive round-trips untouched.
type Workspace struct {
	Name string `json:"name"`
}

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS recent_searches (
			query       TEXT PRIMARY KEY,
			searched_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recent_searches_at ON recent_searches(searched_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Active returns the selected workspace, or nil when none is set.
func (s *Store) Active() (*Workspace, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = ?", activeKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading active workspace: %w", err)
	}

	var ws Workspace
	if err := json.Unmarshal([]byte(value), &ws); err != nil {
		return nil, fmt.Errorf("parsing active workspace: %w", err)
	}
	if ws.Name == "" {
		return nil, nil
	}
	return &ws, nil
}

func (s *Store) SetActive(name string) error {
	value, err := json.Marshal(Workspace{Name: name})
	if err != nil {
		return err
	}
	_, err = s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, activeKey, string(value))
	return err
}

func (s *Store) ClearActive() error {
	_, err := s.writeDB.Exec("DELETE FROM meta WHERE key = ?", activeKey)
	return err
}

// RecordSearch remembers a submitted query. Repeating a query bumps
// it to the top rather than duplicating it.
func (s *Store) RecordSearch(query string) error {
	if query == "" {
		return nil
	}
	_, err := s.writeDB.Exec(`
		INSERT INTO recent_searches (query, searched_at) VALUES (?, ?)
		ON CONFLICT(query) DO UPDATE SET searched_at = excluded.searched_at
	`, query, time.Now())
	return err
}

func (s *Store) RecentSearches(limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.readDB.Query(
		"SELECT query FROM recent_searches ORDER BY searched_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scanning recent search: %w", err)
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
