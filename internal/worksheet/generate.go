// Package worksheet runs one end-to-end generation: session setup, problem
// synthesis, PDF rendering, optional zip packaging, and run recording. The
// TUI progress screen and the headless generate command both drive it.
package worksheet

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/archive"
	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/enrich"
	"github.com/abhisek/mathsheets/internal/problemgen"
	"github.com/abhisek/mathsheets/internal/render"
	"github.com/abhisek/mathsheets/internal/session"
	"github.com/abhisek/mathsheets/internal/store"
	"github.com/abhisek/mathsheets/internal/wordbank"
)

// Request describes one generation run.
type Request struct {
	GradeID      string
	DifficultyID string
	Subjects     []string
	Topics       []string

	// Operations is the pool drawn from per problem; empty means mixed.
	Operations []curriculum.OperationID
	Type       curriculum.ProblemType

	Worksheets int
	Pages      int
	PerPage    int

	// SplitAnswerKeys writes each answer key as its own PDF instead of
	// appending key pages to the worksheet.
	SplitAnswerKeys bool

	OutDir string
	Zip    bool

	// Seed fixes the random source; zero means derive one from the clock.
	Seed int64
}

// Result reports what a run produced.
type Result struct {
	Files              []string
	ZipPath            string
	Problems           int
	DuplicatesAccepted int
	Seed               int64
	Grade              curriculum.GradeProfile
	Difficulty         curriculum.Difficulty
}

// Progress is emitted after every accepted problem.
type Progress struct {
	Worksheet  int // 1-based
	Worksheets int
	Problem    int // 1-based within the worksheet
	Problems   int // per worksheet
}

// Generator wires the run pipeline together. Rewriter and Runs are
// optional; a nil logger is replaced with a no-op one.
type Generator struct {
	Renderer *render.Renderer
	Bank     *wordbank.Bank
	Rewriter *enrich.Rewriter
	Runs     store.RunRepo
	Log      *zap.Logger
}

// Run executes the request and writes every output file under req.OutDir.
// onProgress may be nil. The context is checked between problems so a TUI
// cancel takes effect promptly.
func (g *Generator) Run(ctx context.Context, req Request, onProgress func(Progress)) (*Result, error) {
	log := g.Log
	if log == nil {
		log = zap.NewNop()
	}
	renderer := g.Renderer
	if renderer == nil {
		cfg := render.DefaultConfig()
		cfg.AnswerKey = !req.SplitAnswerKeys
		renderer = render.New(cfg)
	}

	if req.Worksheets < 1 {
		req.Worksheets = 1
	}
	if req.Pages < 1 {
		req.Pages = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 20
	}
	perSheet := req.Pages * req.PerPage

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sess := session.New(rng, g.Bank, log)
	if err := sess.Configure(req.GradeID, req.DifficultyID, req.Subjects); err != nil {
		return nil, err
	}

	topics := session.AllTopics()
	if len(req.Topics) > 0 {
		ids := make([]curriculum.TopicID, len(req.Topics))
		for i, t := range req.Topics {
			ids[i] = curriculum.TopicID(t)
		}
		topics = session.Topics(ids...)
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	ops := req.Operations
	if len(ops) == 0 {
		ops = []curriculum.OperationID{curriculum.OpMixed}
	}

	cfg := sess.Config()
	title := renderer.Title(cfg.Grade.DisplayName, cfg.Difficulty.DisplayName)

	result := &Result{
		Seed:       seed,
		Grade:      cfg.Grade,
		Difficulty: cfg.Difficulty,
	}

	for w := 1; w <= req.Worksheets; w++ {
		problems := make([]problemgen.Problem, 0, perSheet)
		for i := 1; i <= perSheet; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			op := ops[rng.Intn(len(ops))]
			p, err := sess.NextUnique(op, req.Type, topics)
			if err != nil {
				return nil, err
			}
			if g.Rewriter != nil {
				p = g.Rewriter.Rewrite(ctx, p)
			}
			problems = append(problems, p)
			result.Problems++

			if onProgress != nil {
				onProgress(Progress{Worksheet: w, Worksheets: req.Worksheets, Problem: i, Problems: perSheet})
			}
		}

		sheetPath := filepath.Join(req.OutDir, archive.WorksheetName(w))
		if err := renderer.WriteWorksheet(title, problems, sheetPath); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, sheetPath)

		if req.SplitAnswerKeys {
			keyPath := filepath.Join(req.OutDir, archive.AnswerKeyName(w))
			if err := renderer.WriteAnswerKey(title, problems, keyPath); err != nil {
				return nil, err
			}
			result.Files = append(result.Files, keyPath)
		}
	}
	result.DuplicatesAccepted = sess.DuplicatesAccepted()

	if req.Zip {
		zipPath := filepath.Join(req.OutDir, "worksheets.zip")
		if err := archive.Bundle(zipPath, result.Files); err != nil {
			return nil, err
		}
		result.ZipPath = zipPath
	}

	g.record(ctx, req, result, log)
	return result, nil
}

// record persists the run if a repo is wired. Failures are logged, not
// returned: the PDFs are already on disk and history is best effort.
func (g *Generator) record(ctx context.Context, req Request, result *Result, log *zap.Logger) {
	if g.Runs == nil {
		return
	}

	outputPath := result.ZipPath
	if outputPath == "" {
		outputPath = req.OutDir
	}

	run := &store.Run{
		Grade:              result.Grade.ID,
		Difficulty:         result.Difficulty.ID,
		Subjects:           req.Subjects,
		Worksheets:         req.Worksheets,
		Problems:           result.Problems,
		DuplicatesAccepted: result.DuplicatesAccepted,
		Seed:               result.Seed,
		OutputPath:         outputPath,
	}
	if err := g.Runs.Record(ctx, run); err != nil {
		log.Warn("recording run history failed", zap.Error(err))
	}
}
