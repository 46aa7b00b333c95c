// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package devserver is a read-only stand-in for the document backend. It
// serves GET /documents/ and GET /document/:id from a SQLite database so
// the viewer can be run and tested without the ingestion pipeline.
package devserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// TimeLayout is how created_at is stored and served: naive ISO-8601 with
// microseconds, read as UTC.
const TimeLayout = "2006-01-02T15:04:05.000000"

// ErrNotFound is returned by Get when no document has the id.
var ErrNotFound = errors.New("document not found")

// Store holds documents in a SQLite table.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and its schema.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			title TEXT,
			summary TEXT,
			citation TEXT,
			tags TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Upsert inserts doc or replaces the row with the same id. An empty
// CreatedAt is set to the current time; any other value is normalized to
// TimeLayout in UTC.
func (s *Store) Upsert(ctx context.Context, doc types.DocumentDetail) error {
	if doc.ID == "" {
		return errors.New("document id is required")
	}
	createdAt, err := normalizeTime(doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("document %s: %w", doc.ID, err)
	}

	var citation sql.NullString
	if doc.Citation != nil {
		data, err := json.Marshal(doc.Citation)
		if err != nil {
			return fmt.Errorf("encoding citation for %s: %w", doc.ID, err)
		}
		citation = sql.NullString{String: string(data), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, summary, citation, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			citation = excluded.citation,
			tags = excluded.tags,
			created_at = excluded.created_at`,
		doc.ID, nullString(doc.Title), nullString(doc.Summary), citation,
		nullString(strings.Join(doc.Tags, ",")), createdAt,
	)
	if err != nil {
		return fmt.Errorf("upserting document %s: %w", doc.ID, err)
	}
	return nil
}

const selectColumns = `SELECT id, title, summary, citation, tags, created_at FROM documents`

// List returns every document, newest first.
func (s *Store) List(ctx context.Context) ([]types.DocumentDetail, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []types.DocumentDetail{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// Get returns the document with id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*types.DocumentDetail, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return doc, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(sc scanner) (*types.DocumentDetail, error) {
	var (
		doc                           types.DocumentDetail
		title, summary, citation, tag sql.NullString
	)
	if err := sc.Scan(&doc.ID, &title, &summary, &citation, &tag, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	doc.Title = title.String
	doc.Summary = summary.String
	doc.Tags = splitTags(tag.String)

	if citation.Valid && citation.String != "" {
		var c types.Citation
		if err := json.Unmarshal([]byte(citation.String), &c); err != nil {
			return nil, fmt.Errorf("decoding citation for %s: %w", doc.ID, err)
		}
		doc.Citation = &c
	}
	return &doc, nil
}

// splitTags splits the stored comma-separated tags. Empty input gives an
// empty slice.
func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func normalizeTime(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now().UTC().Format(TimeLayout), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parsing created_at %q: %w", s, err)
	}
	return t.UTC().Format(TimeLayout), nil
}
