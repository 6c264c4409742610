package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheets/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the generation run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all run history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		res, err := st.DB().ExecContext(cmd.Context(), "DELETE FROM runs")
		if err != nil {
			return fmt.Errorf("clear runs: %w", err)
		}
		n, _ := res.RowsAffected()
		fmt.Printf("Deleted %d run(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
