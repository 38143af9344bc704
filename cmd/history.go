package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently generated workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		details, _ := cmd.Flags().GetBool("details")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := openStore(cmd, e)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.PlanRepo()
		plans, err := repo.RecentPlans(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No workouts yet.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-30s  %-12s  %s\n", "Time", "Type", "Muscles", "Goal", "Exercises")
		fmt.Println(strings.Repeat("─", 90))

		for _, p := range plans {
			muscles := make([]string, len(p.Muscles))
			for i, m := range p.Muscles {
				muscles[i] = catalog.Humanize(m)
			}
			fmt.Printf("%-19s  %-12s  %-30s  %-12s  %d\n",
				p.Timestamp.Local().Format("2006-01-02 15:04:05"),
				catalog.Humanize(p.WorkoutType), strings.Join(muscles, ", "),
				catalog.Humanize(p.Goal), len(p.Exercises))

			if details {
				events, err := repo.SetEvents(cmd.Context(), p.ID)
				if err != nil {
					return fmt.Errorf("query set events: %w", err)
				}
				printSets(p, store.FinalSets(events))
			}
		}

		fmt.Printf("\n%d workouts\n", len(plans))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of workouts to show (0 for all)")
	historyCmd.Flags().Bool("details", false, "Show exercises and completed sets")
}

// printSets lists a plan's exercises with their completed sets.
func printSets(rec store.PlanRecord, sets map[int]int) {
	for i, e := range rec.Exercises {
		line := fmt.Sprintf("    %02d  %-24s %3d %-7s rest %3ds  tempo %s",
			i+1, catalog.Humanize(e.Name), e.Amount, e.Unit, e.Rest, e.Tempo)
		if n, ok := sets[i]; ok {
			line += fmt.Sprintf("  sets %d", n)
		}
		fmt.Println(line)
	}
}
