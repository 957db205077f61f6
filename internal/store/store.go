// Package store is the persistence gateway: presentations live in a local
// SQLite database. Slide lists cross this boundary only as the opaque text
// blob produced by the deck codec; everything else is column data.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"deckforge/internal/deck"
	"deckforge/internal/logging"
)

// Order selects the sort for List.
type Order string

const (
	OrderUpdatedDesc Order = "updated_desc" // most recently updated first (dashboard default)
	OrderCreatedDesc Order = "created_desc"
	OrderTitle       Order = "title"
)

// Filter narrows List results. Zero value matches everything.
type Filter struct {
	TitleContains string
}

// Partial is a partial presentation update. Nil fields are left untouched.
type Partial struct {
	Title     *string
	Theme     *string
	SlideBlob *string
}

// Store persists presentations in SQLite.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// timeLayout is fixed-width so persisted timestamps compare correctly as
// text inside SQLite (MAX in Update).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open initializes the SQLite database at the given path, creating the
// directory and schema as needed.
func Open(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.Open")
	defer timer.Stop()

	logging.Store("Opening presentation store at %s", path)

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.StoreError("Failed to create directory %s: %v", dir, err)
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		logging.StoreError("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		logging.StoreError("Failed to initialize schema: %v", err)
		db.Close()
		return nil, err
	}

	logging.Store("Presentation store ready")
	return s, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS presentations (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		theme TEXT NOT NULL DEFAULT '',
		slide_blob TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_presentations_updated ON presentations(updated_at DESC);
	CREATE INDEX IF NOT EXISTS idx_presentations_title ON presentations(title);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Create persists a new presentation. The slide list is encoded to the
// storage blob here, at the boundary.
func (s *Store) Create(p *deck.Presentation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := deck.EncodeSlides(p.Slides)
	if err != nil {
		return err
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}

	_, err = s.db.Exec(
		`INSERT INTO presentations (id, title, theme, slide_blob, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Theme, blob,
		p.CreatedAt.UTC().Format(timeLayout),
		p.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		logging.StoreError("Create %s failed: %v", p.ID, err)
		return fmt.Errorf("create presentation: %w", err)
	}
	logging.Store("Created presentation %s (%q, %d slides)", p.ID, p.Title, len(p.Slides))
	return nil
}

// Get loads a presentation by id, decoding the slide blob back into the
// structured ordered list.
func (s *Store) Get(id string) (*deck.Presentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		`SELECT id, title, theme, slide_blob, created_at, updated_at
		 FROM presentations WHERE id = ?`, id)
	return scanPresentation(row)
}

// List returns presentations matching the filter in the requested order.
func (s *Store) List(f Filter, order Order) ([]*deck.Presentation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := `SELECT id, title, theme, slide_blob, created_at, updated_at FROM presentations`
	var args []interface{}
	if f.TitleContains != "" {
		q += ` WHERE title LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(f.TitleContains)+"%")
	}
	switch order {
	case OrderCreatedDesc:
		q += ` ORDER BY created_at DESC`
	case OrderTitle:
		q += ` ORDER BY title COLLATE NOCASE ASC`
	default:
		q += ` ORDER BY updated_at DESC`
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		logging.StoreError("List failed: %v", err)
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()

	var out []*deck.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update applies a partial update and refreshes updated_at. updated_at never
// precedes created_at.
func (s *Store) Update(id string, partial Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sets []string
	var args []interface{}
	if partial.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *partial.Title)
	}
	if partial.Theme != nil {
		sets = append(sets, "theme = ?")
		args = append(args, *partial.Theme)
	}
	if partial.SlideBlob != nil {
		sets = append(sets, "slide_blob = ?")
		args = append(args, *partial.SlideBlob)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = MAX(?, created_at)")
	args = append(args, time.Now().UTC().Format(timeLayout), id)

	res, err := s.db.Exec(
		`UPDATE presentations SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		logging.StoreError("Update %s failed: %v", id, err)
		return fmt.Errorf("update presentation: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("update presentation: %s not found", id)
	}
	logging.StoreDebug("Updated presentation %s (%d fields)", id, len(sets)-1)
	return nil
}

// Save writes the full current state of a presentation: title, theme, and
// the re-encoded slide blob. Used by the editor's explicit save.
func (s *Store) Save(p *deck.Presentation) error {
	blob, err := deck.EncodeSlides(p.Slides)
	if err != nil {
		return err
	}
	return s.Update(p.ID, Partial{Title: &p.Title, Theme: &p.Theme, SlideBlob: &blob})
}

// Delete removes a presentation by id. Unknown ids are not an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM presentations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row / sql.Rows for scanPresentation.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPresentation(sc scanner) (*deck.Presentation, error) {
	var (
		p                  deck.Presentation
		blob               string
		createdStr, updStr string
	)
	if err := sc.Scan(&p.ID, &p.Title, &p.Theme, &blob, &createdStr, &updStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("presentation not found")
		}
		return nil, fmt.Errorf("scan presentation: %w", err)
	}

	slides, err := deck.DecodeSlides(blob)
	if err != nil {
		return nil, err
	}
	p.Slides = slides

	if p.CreatedAt, err = parseTime(createdStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}
	return &p, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
