package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/chazu/quadric/pkg/batch"
	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "annotations.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "annotations.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestCreateAndList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	reqs := []batch.Request{
		{
			Segment:  geom.Segment{Start: v3.Vec{Z: 1}, End: v3.Vec{Z: 9}},
			Class:    classify.ClassCylinder,
			Color:    batch.Green,
			Diameter: 3.2,
		},
		{
			Segment: geom.Segment{Start: v3.Vec{X: -2.5, Z: 5}, End: v3.Vec{X: 2.5, Z: 5}},
			Class:   classify.ClassCone,
			Color:   batch.Red,
		},
	}
	for _, req := range reqs {
		if err := s.Create(ctx, req); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d annotations, want 2", len(got))
	}

	// Insertion order preserved.
	if got[0].Class != "cylinder" || got[0].Color != "0,255,0" {
		t.Errorf("got[0] = {%s, %s}, want green cylinder", got[0].Class, got[0].Color)
	}
	if got[0].Diameter != 3.2 {
		t.Errorf("got[0].Diameter = %v, want 3.2", got[0].Diameter)
	}
	if got[0].Segment.Start.Z != 1 || got[0].Segment.End.Z != 9 {
		t.Errorf("got[0].Segment = %+v, want Z span [1, 9]", got[0].Segment)
	}
	if got[1].Class != "cone" || got[1].Color != "255,0,0" {
		t.Errorf("got[1] = {%s, %s}, want red cone", got[1].Class, got[1].Color)
	}
	if got[0].ID >= got[1].ID {
		t.Errorf("IDs not increasing: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestCount(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d on a fresh store, want 0", n)
	}

	for i := 0; i < 3; i++ {
		if err := s.Create(ctx, batch.Request{Class: classify.ClassCone, Color: batch.Red}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	n, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Create(ctx, batch.Request{Class: classify.ClassCylinder, Color: batch.Green}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = s.Close() }()

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() after reopen = %d, want 1", n)
	}
}

func TestStoreIsBatchSink(t *testing.T) {
	var _ batch.Sink = openStore(t)
}
