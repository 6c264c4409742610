package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	run := &Run{
		Grade:      "grade5",
		Difficulty: "medium",
		Subjects:   []string{"arithmetic", "geometry"},
		Worksheets: 3,
		Problems:   60,
		Seed:       42,
		OutputPath: "/tmp/out.zip",
	}
	if err := repo.Record(ctx, run); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if run.ID == "" {
		t.Error("Record did not assign an id")
	}
	if run.CreatedAt.IsZero() {
		t.Error("Record did not assign a timestamp")
	}

	got, err := repo.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Grade != "grade5" || got.Problems != 60 || got.Seed != 42 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.Subjects) != 2 || got.Subjects[1] != "geometry" {
		t.Errorf("subjects round-trip mismatch: %v", got.Subjects)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := &Run{
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Grade:      "grade3",
			Difficulty: "easy",
			Subjects:   []string{"arithmetic"},
			Worksheets: 1,
			Problems:   20,
		}
		if err := repo.Record(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.After(runs[i-1].CreatedAt) {
			t.Fatalf("runs out of order: %v before %v", runs[i-1].CreatedAt, runs[i].CreatedAt)
		}
	}
}

func TestGetUnknownRun(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Runs().Get(context.Background(), "no-such-run")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "db.sqlite")
	t.Setenv("MATHSHEETS_DB", p)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Fatalf("path = %q, want %q", got, p)
	}
}
