package cmd

import (
	"github.com/abhisek/mathsheets/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathsheets",
	Short: "Printable math worksheet generator",
	Long: "MathSheets — terminal app that procedurally generates printable math\n" +
		"worksheets (PDF) with answer keys, for grade 1 through college.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSHEETS_DB env var)")
	rootCmd.PersistentFlags().String("out", "worksheets", "Output directory for generated PDFs")
	rootCmd.PersistentFlags().String("bank", "", "Path to a custom word bank JSON file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHSHEETS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
