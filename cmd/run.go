package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheets/internal/app"
	"github.com/abhisek/mathsheets/internal/store"
	"github.com/abhisek/mathsheets/internal/wordbank"
	"github.com/abhisek/mathsheets/internal/worksheet"
)

// runApp opens the store, builds the generator, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	outDir, _ := cmd.Flags().GetString("out")

	gen := &worksheet.Generator{
		Bank: bank,
		Runs: st.Runs(),
	}
	return app.Run(gen, outDir)
}

// resolveBank loads the custom word bank when --bank is set; otherwise the
// built-in vocabulary is used.
func resolveBank(cmd *cobra.Command) (*wordbank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return nil, nil
	}
	bank, err := wordbank.Load(path, wordbank.Default())
	if err != nil {
		return nil, fmt.Errorf("load word bank: %w", err)
	}
	return bank, nil
}
