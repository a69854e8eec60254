package dict

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLDictionary serves lookups from a SQLite database with a single
// words(spelling, definitions) table, as written by Import.
type SQLDictionary struct {
	db   *sql.DB
	size int
}

// OpenSQL opens a SQLite-backed dictionary.
func OpenSQL(path string) (*SQLDictionary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary db: %w", err)
	}
	var size int
	if err := db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&size); err != nil {
		db.Close()
		return nil, fmt.Errorf("counting dictionary entries: %w", err)
	}
	return &SQLDictionary{db: db, size: size}, nil
}

// Close releases the database handle.
func (d *SQLDictionary) Close() error { return d.db.Close() }

// Lookup returns the definitions for a spelling.
func (d *SQLDictionary) Lookup(spelling string) (string, error) {
	var defs string
	err := d.db.QueryRow(`SELECT definitions FROM words WHERE spelling = ?`, spelling).Scan(&defs)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, spelling)
	}
	if err != nil {
		return "", fmt.Errorf("querying dictionary: %w", err)
	}
	return defs, nil
}

// Size returns the number of entries.
func (d *SQLDictionary) Size() int { return d.size }

// Import writes a JSON dictionary into a fresh SQLite database at dbPath,
// replacing any existing words table.
func Import(jsonPath, dbPath string) (int, error) {
	src, err := LoadJSON(jsonPath)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`DROP TABLE IF EXISTS words`); err != nil {
		return 0, fmt.Errorf("dropping old words table: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE words (
			spelling    TEXT PRIMARY KEY,
			definitions TEXT NOT NULL
		)
	`); err != nil {
		return 0, fmt.Errorf("creating words table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting import transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO words (spelling, definitions) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for spelling, defs := range src.Entries() {
		if _, err := stmt.Exec(spelling, defs); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting %q: %w", spelling, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return n, nil
}
