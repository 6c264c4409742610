package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheets/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		runs, err := st.Runs().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No generation runs yet.")
			return nil
		}

		fmt.Printf("%-19s  %-9s  %-7s  %-24s  %6s  %8s  %s\n",
			"When", "Grade", "Level", "Subjects", "Sheets", "Problems", "Output")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range runs {
			subjects := strings.Join(r.Subjects, ",")
			if len(subjects) > 24 {
				subjects = subjects[:21] + "..."
			}
			fmt.Printf("%-19s  %-9s  %-7s  %-24s  %6d  %8d  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Grade,
				r.Difficulty,
				subjects,
				r.Worksheets,
				r.Problems,
				r.OutputPath,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}
