package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded generation run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Grade      string
	Difficulty string
	Subjects   []string

	// Worksheets and Problems are the run's output counts.
	Worksheets int
	Problems   int

	// DuplicatesAccepted counts best-effort accepts after an exhausted
	// uniqueness budget.
	DuplicatesAccepted int

	Seed       int64
	OutputPath string
}

// RunRepo records and lists generation runs.
type RunRepo interface {
	// Record stores a finished run. A missing ID is filled with a new uuid;
	// a zero CreatedAt is filled with the current time.
	Record(ctx context.Context, run *Run) error

	// Recent returns the most recent runs, newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)

	// Get returns one run by id.
	Get(ctx context.Context, id string) (*Run, error)
}

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = sql.ErrNoRows

type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO runs (id, created_at, grade, difficulty, subjects, worksheets,
	problems, duplicates_accepted, seed, output_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Grade, run.Difficulty,
		strings.Join(run.Subjects, ","), run.Worksheets, run.Problems,
		run.DuplicatesAccepted, run.Seed, run.OutputPath)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, created_at, grade, difficulty, subjects, worksheets, problems,
	duplicates_accepted, seed, output_path
FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, created_at, grade, difficulty, subjects, worksheets, problems,
	duplicates_accepted, seed, output_path
FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var subjects string
	err := s.Scan(&run.ID, &run.CreatedAt, &run.Grade, &run.Difficulty,
		&subjects, &run.Worksheets, &run.Problems, &run.DuplicatesAccepted,
		&run.Seed, &run.OutputPath)
	if err != nil {
		return nil, err
	}
	if subjects != "" {
		run.Subjects = strings.Split(subjects, ",")
	}
	return &run, nil
}
