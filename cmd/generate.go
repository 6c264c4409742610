package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/curriculum"
	"github.com/abhisek/mathsheets/internal/enrich"
	"github.com/abhisek/mathsheets/internal/llm"
	"github.com/abhisek/mathsheets/internal/render"
	"github.com/abhisek/mathsheets/internal/store"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate worksheets without the interactive form",
	Long: `Generate worksheets headlessly, driven entirely by flags.

Examples:
  mathsheets generate --grade grade4 --worksheets 3
  mathsheets generate --grade grade9 --subjects algebra,geometry --per-page 15
  mathsheets generate --grade grade2 --type word --theme space --seed 7`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("grade", "grade4", "Grade profile (grade1..grade12, college)")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty (easy, medium, hard)")
	generateCmd.Flags().StringSlice("subjects", []string{"arithmetic"}, "Subjects to draw from")
	generateCmd.Flags().StringSlice("topics", nil, "Arithmetic topics (empty = all)")
	generateCmd.Flags().StringSlice("operations", nil, "Operations pool (empty = mixed)")
	generateCmd.Flags().String("type", "mixed", "Problem format: equations, word, mixed")
	generateCmd.Flags().Int("worksheets", 1, "Number of worksheets")
	generateCmd.Flags().Int("pages", 1, "Pages per worksheet")
	generateCmd.Flags().Int("per-page", 20, "Problems per page")
	generateCmd.Flags().Bool("answer-keys", false, "Write answer keys as separate PDFs")
	generateCmd.Flags().Bool("zip", false, "Bundle output into a zip archive")
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 = derive from clock)")
	generateCmd.Flags().String("theme", "", "Rewrite word-problem prose to this theme via LLM")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	renderCfg := render.DefaultConfig()
	renderCfg.AnswerKey = !req.SplitAnswerKeys

	gen := &worksheet.Generator{
		Renderer: render.New(renderCfg),
		Bank:     bank,
		Runs:     st.Runs(),
		Log:      log,
	}

	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		rewriter, err := buildRewriter(cmd, theme, log)
		if err != nil {
			return err
		}
		gen.Rewriter = rewriter
	}

	result, err := gen.Run(cmd.Context(), req, func(p worksheet.Progress) {
		if p.Problem == p.Problems {
			fmt.Printf("worksheet %d/%d done\n", p.Worksheet, p.Worksheets)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%d problems across %d file(s), seed %d\n",
		result.Problems, len(result.Files), result.Seed)
	if result.DuplicatesAccepted > 0 {
		fmt.Printf("%d problem(s) repeat earlier ones (pool exhausted)\n", result.DuplicatesAccepted)
	}
	if result.ZipPath != "" {
		fmt.Println("bundle:", result.ZipPath)
	} else {
		for _, f := range result.Files {
			fmt.Println("wrote:", f)
		}
	}
	return nil
}

func requestFromFlags(cmd *cobra.Command) (worksheet.Request, error) {
	flags := cmd.Flags()

	grade, _ := flags.GetString("grade")
	difficulty, _ := flags.GetString("difficulty")
	subjects, _ := flags.GetStringSlice("subjects")
	topics, _ := flags.GetStringSlice("topics")
	opNames, _ := flags.GetStringSlice("operations")
	ptype, _ := flags.GetString("type")
	worksheets, _ := flags.GetInt("worksheets")
	pages, _ := flags.GetInt("pages")
	perPage, _ := flags.GetInt("per-page")
	answerKeys, _ := flags.GetBool("answer-keys")
	zipOut, _ := flags.GetBool("zip")
	seed, _ := flags.GetInt64("seed")
	outDir, _ := flags.GetString("out")

	ops := make([]curriculum.OperationID, len(opNames))
	for i, name := range opNames {
		ops[i] = curriculum.OperationID(name)
	}

	switch curriculum.ProblemType(ptype) {
	case curriculum.TypeEquations, curriculum.TypeWord, curriculum.TypeMixed:
	default:
		return worksheet.Request{}, fmt.Errorf("invalid --type %q: must be equations, word, or mixed", ptype)
	}

	return worksheet.Request{
		GradeID:         grade,
		DifficultyID:    difficulty,
		Subjects:        subjects,
		Topics:          topics,
		Operations:      ops,
		Type:            curriculum.ProblemType(ptype),
		Worksheets:      worksheets,
		Pages:           pages,
		PerPage:         perPage,
		SplitAnswerKeys: answerKeys,
		Zip:             zipOut,
		OutDir:          outDir,
		Seed:            seed,
	}, nil
}

// buildRewriter wires the themed-prose rewriter from env-configured LLM
// credentials. Missing credentials are a hard error: the user asked for a
// theme explicitly.
func buildRewriter(cmd *cobra.Command, theme string, log *zap.Logger) (*enrich.Rewriter, error) {
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		fmt.Fprintln(os.Stderr, "No LLM provider configured; set MATHSHEETS_LLM_PROVIDER or an API key env var.")
		return nil, fmt.Errorf("--theme requires an LLM provider")
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return enrich.New(provider, theme, log), nil
}
