package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheets/internal/curriculum"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List grades, subjects, and topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		gradeFilter, _ := cmd.Flags().GetString("grade")

		if gradeFilter != "" {
			grade, ok := curriculum.GradeByID(gradeFilter)
			if !ok {
				return fmt.Errorf("unknown grade %q", gradeFilter)
			}
			printGrade(grade)
			return nil
		}

		fmt.Println("Grades")
		fmt.Println(strings.Repeat("─", 60))
		for _, g := range curriculum.AllGrades() {
			subjects := make([]string, len(g.AllowedSubjects))
			for i, s := range g.AllowedSubjects {
				subjects[i] = string(s)
			}
			fmt.Printf("%-10s  %-10s  numbers to %-5d  %s\n",
				g.ID, g.Band, g.NumberCeiling, strings.Join(subjects, ", "))
		}

		fmt.Println()
		fmt.Println("Difficulties")
		fmt.Println(strings.Repeat("─", 60))
		for _, d := range curriculum.AllDifficulties() {
			fmt.Printf("%-10s  ceiling × %.1f\n", d.ID, d.Multiplier)
		}

		fmt.Println()
		fmt.Println("Use --grade <id> to list a grade's topics.")
		return nil
	},
}

func printGrade(g curriculum.GradeProfile) {
	fmt.Printf("%s (%s band, numbers to %d)\n", g.DisplayName, g.Band, g.NumberCeiling)

	for _, id := range g.AllowedSubjects {
		fmt.Printf("\n%s\n", curriculum.SubjectDisplayName(id))
		topics := curriculum.TopicsForGrade(id, g)
		if len(topics) == 0 {
			fmt.Println("  (no topic filters; the subject is the unit)")
			continue
		}
		for _, t := range topics {
			note := ""
			if n, ok := t.TierNotes["medium"]; ok {
				note = "  - " + n
			}
			fmt.Printf("  %-24s %s%s\n", t.ID, t.DisplayName, note)
		}
	}
}

func init() {
	catalogCmd.Flags().String("grade", "", "Show topics for one grade")
}
