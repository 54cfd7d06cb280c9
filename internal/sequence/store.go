// Package sequence persists the highest serial handed out per prefix and
// year, so a later run can continue numbering where the last one stopped.
package sequence

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps the sequence database.
type Store struct {
	conn *sql.DB
}

// Counter is one row of the sequence table.
type Counter struct {
	Prefix     string
	Year       int
	LastSerial int
}

// New opens (or creates) the sequence database and initializes the schema.
func New(dbPath string) (*Store, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{conn: conn}

	if err := s.applyPragmas(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) applyPragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := s.conn.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set %s: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sequences (
		prefix TEXT NOT NULL,
		year INTEGER NOT NULL,
		last_serial INTEGER NOT NULL,
		PRIMARY KEY (prefix, year)
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Last returns the highest recorded serial for the prefix and year.
// ok is false when nothing has been recorded yet.
func (s *Store) Last(prefix string, year int) (last int, ok bool, err error) {
	err = s.conn.QueryRow(
		"SELECT last_serial FROM sequences WHERE prefix = ? AND year = ?",
		prefix, year,
	).Scan(&last)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query sequence: %w", err)
	}
	return last, true, nil
}

// Record stores serial as the new high water mark for the prefix and
// year. A lower serial than the stored one leaves the row untouched.
func (s *Store) Record(prefix string, year, serial int) error {
	_, err := s.conn.Exec(`
		INSERT INTO sequences (prefix, year, last_serial) VALUES (?, ?, ?)
		ON CONFLICT(prefix, year) DO UPDATE SET last_serial = excluded.last_serial
		WHERE excluded.last_serial > sequences.last_serial`,
		prefix, year, serial,
	)
	if err != nil {
		return fmt.Errorf("failed to record sequence: %w", err)
	}
	return nil
}

// All returns every counter, ordered by prefix then year.
func (s *Store) All() ([]Counter, error) {
	rows, err := s.conn.Query(
		"SELECT prefix, year, last_serial FROM sequences ORDER BY prefix, year")
	if err != nil {
		return nil, fmt.Errorf("failed to query sequences: %w", err)
	}
	defer rows.Close()

	var counters []Counter
	for rows.Next() {
		var c Counter
		if err := rows.Scan(&c.Prefix, &c.Year, &c.LastSerial); err != nil {
			return nil, fmt.Errorf("failed to scan sequence: %w", err)
		}
		counters = append(counters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sequences: %w", err)
	}
	return counters, nil
}
