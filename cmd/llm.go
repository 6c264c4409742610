package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathsheets/internal/enrich"
	"github.com/abhisek/mathsheets/internal/llm"
	"github.com/abhisek/mathsheets/internal/problemgen"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the optional LLM theming setup",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which LLM provider is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No LLM provider configured.")
			fmt.Println("Set MATHSHEETS_LLM_PROVIDER, or one of the provider API key env vars")
			fmt.Println("(MATHSHEETS_ANTHROPIC_API_KEY, MATHSHEETS_OPENAI_API_KEY, ...).")
			fmt.Println("Themed word problems (--theme) stay disabled; everything else works.")
			return nil
		}

		model := activeModel(cfg)
		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", model)
		if cost := llm.LookupCost(model); cost != nil {
			fmt.Printf("Pricing:   $%.2f/M input, $%.2f/M output tokens\n",
				cost.InputPerMTok, cost.OutputPerMTok)
		}
		return nil
	},
}

func activeModel(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	default:
		return ""
	}
}

var llmTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Round-trip one themed rewrite through the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, _ := cmd.Flags().GetString("theme")

		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured")
		}

		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()

		provider, err := llm.NewProvider(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		sample := problemgen.Problem{
			Question: "Maya has 7 apples and buys 5 more. How many apples does she have?",
			Answer:   "12",
			Kind:     problemgen.KindInteger,
		}

		rewriter := enrich.New(provider, theme, log)
		out := rewriter.Rewrite(cmd.Context(), sample)

		result := map[string]string{
			"original":  sample.Question,
			"rewritten": out.Question,
			"answer":    out.Answer,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	llmTestCmd.Flags().String("theme", "space", "Theme for the test rewrite")

	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmTestCmd)
}
