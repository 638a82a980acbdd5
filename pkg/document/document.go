// Package document persists materialized annotations in a SQLite file,
// playing the role of the host document the original workflow drew
// into. The store is a batch.Sink: each planned axis line becomes one
// row, and a failed insert never aborts the rest of a batch.
package document

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/chazu/quadric/pkg/batch"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ batch.Sink = (*Store)(nil)

// Store is a SQLite-backed annotation document.
type Store struct {
	db   *sql.DB
	path string
}

// Annotation is one stored axis-line annotation.
type Annotation struct {
	ID        int64
	Class     string
	Color     string
	Segment   geom.Segment
	Diameter  float64
	CreatedAt time.Time
}

// Open opens or creates the annotation document at path. The parent
// directory is created if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	// SQLite supports a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the document file path.
func (s *Store) Path() string {
	return s.path
}

// createTables creates the schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Axis-line annotations created by the batch workflow.
	CREATE TABLE IF NOT EXISTS annotations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		class TEXT NOT NULL,
		color TEXT NOT NULL,
		start_x REAL NOT NULL,
		start_y REAL NOT NULL,
		start_z REAL NOT NULL,
		end_x REAL NOT NULL,
		end_y REAL NOT NULL,
		end_z REAL NOT NULL,
		diameter REAL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_annotations_class ON annotations(class);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Create materializes one annotation request as a document row.
func (s *Store) Create(ctx context.Context, req batch.Request) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO annotations
			(class, color, start_x, start_y, start_z, end_x, end_y, end_z, diameter)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Class.String(), req.Color.String(),
		req.Segment.Start.X, req.Segment.Start.Y, req.Segment.Start.Z,
		req.Segment.End.X, req.Segment.End.Y, req.Segment.End.Z,
		req.Diameter,
	)
	if err != nil {
		return fmt.Errorf("failed to insert annotation: %w", err)
	}
	return nil
}

// List returns all stored annotations in insertion order.
func (s *Store) List(ctx context.Context) ([]Annotation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, class, color,
		       start_x, start_y, start_z, end_x, end_y, end_z,
		       diameter, created_at
		FROM annotations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Annotation
	for rows.Next() {
		var a Annotation
		var start, end v3.Vec
		if err := rows.Scan(&a.ID, &a.Class, &a.Color,
			&start.X, &start.Y, &start.Z, &end.X, &end.Y, &end.Z,
			&a.Diameter, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		a.Segment = geom.Segment{Start: start, End: end}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}
	return out, nil
}

// Count returns the number of stored annotations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM annotations").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count annotations: %w", err)
	}
	return n, nil
}
