package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/workpulse/attendance-dashboard-go/internal/domain/attendance"
)

// Preference keys.
const (
	KeyCurrentEmployeeID = "current_employee_id"
	KeyAttendanceFilters = "attendance_filters"
)

// ErrNotSet is returned when a preference has never been written.
var ErrNotSet = errors.New("preference not set")

// Store persists dashboard preferences (selected employee, saved filters)
// across restarts in a small SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}

	return &Store{db: db}, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotSet
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// CurrentEmployeeID returns the last selected employee, "" when none was
// saved yet.
func (s *Store) CurrentEmployeeID() (string, error) {
	id, err := s.Get(KeyCurrentEmployeeID)
	if errors.Is(err, ErrNotSet) {
		return "", nil
	}
	return id, err
}

func (s *Store) SetCurrentEmployeeID(id string) error {
	return s.Set(KeyCurrentEmployeeID, id)
}

// AttendanceFilters returns the saved filter set, or empty criteria when none
// was saved yet.
func (s *Store) AttendanceFilters() (attendance.FilterCriteria, error) {
	raw, err := s.Get(KeyAttendanceFilters)
	if errors.Is(err, ErrNotSet) {
		return attendance.FilterCriteria{}, nil
	}
	if err != nil {
		return attendance.FilterCriteria{}, err
	}

	var criteria attendance.FilterCriteria
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return attendance.FilterCriteria{}, fmt.Errorf("decode saved filters: %w", err)
	}
	return criteria, nil
}

func (s *Store) SetAttendanceFilters(criteria attendance.FilterCriteria) error {
	raw, err := json.Marshal(criteria)
	if err != nil {
		return err
	}
	return s.Set(KeyAttendanceFilters, string(raw))
}
