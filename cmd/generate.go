package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/notify"
	"github.com/winterarc/winterarc/internal/plan"
	"github.com/winterarc/winterarc/internal/selection"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a workout and print it",
	Example: `  winterarc generate --type push --muscle chest --goal hypertrophy
  winterarc generate --type individual --muscle biceps --muscle triceps --goal strength --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutType, _ := cmd.Flags().GetString("type")
		muscles, _ := cmd.Flags().GetStringArray("muscle")
		goal, _ := cmd.Flags().GetString("goal")
		seed, _ := cmd.Flags().GetUint64("seed")
		save, _ := cmd.Flags().GetBool("save")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if workoutType != "" && !e.catalog.HasWorkoutType(catalog.WorkoutType(workoutType)) {
			return fmt.Errorf("unknown workout type %q (see: winterarc catalog list)", workoutType)
		}
		if len(muscles) > 1 && catalog.WorkoutType(workoutType) != catalog.Individual {
			return fmt.Errorf("workout type %q takes a single muscle group", workoutType)
		}

		opts := plan.Options{Catalog: e.catalog, Logger: e.log, Ctx: cmd.Context()}
		if seed != 0 {
			opts.Rand = rand.New(rand.NewPCG(seed, seed))
		}
		if save {
			st, err := openStore(cmd, e)
			if err != nil {
				return err
			}
			defer st.Close()
			opts.Repo = st.PlanRepo()
			opts.Notifier = notify.LogNotifier{Logger: e.log}
		}
		builder := plan.NewBuilder(opts)

		m := selection.New(selection.Options{
			Builder:  builder,
			Notifier: notify.LogNotifier{Logger: e.log},
		})
		if err := buildWorkout(m, catalog.WorkoutType(workoutType), muscles, catalog.Goal(goal)); err != nil {
			return err
		}

		w, _ := builder.Current()
		printWorkout(w)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("type", "", "Workout type (e.g. individual, push)")
	generateCmd.Flags().StringArray("muscle", nil, "Muscle group; repeat for individual workouts (max 3)")
	generateCmd.Flags().String("goal", "", "Training goal (e.g. hypertrophy)")
	generateCmd.Flags().Uint64("seed", 0, "Random seed for a reproducible plan (0 picks one)")
	generateCmd.Flags().Bool("save", false, "Record the plan in history")
}

// buildWorkout feeds the flags through the selection rules so the CLI
// rejects exactly what the wizard rejects.
func buildWorkout(m *selection.Machine, t catalog.WorkoutType, muscles []string, goal catalog.Goal) error {
	if t != "" {
		m.ChooseWorkoutType(t)
	}
	for _, g := range muscles {
		if err := m.ToggleMuscle(g); err != nil {
			return userError(err)
		}
	}
	if goal != "" {
		m.ChooseGoal(goal)
	}
	return userError(m.Submit())
}

func userError(err error) error {
	var verr *selection.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Message())
	}
	return err
}

func printWorkout(w plan.Workout) {
	muscles := make([]string, len(w.Selection.Muscles))
	for i, m := range w.Selection.Muscles {
		muscles[i] = catalog.Humanize(m)
	}
	fmt.Printf("%s · %s · %s  (catalog %s)\n\n",
		catalog.Humanize(string(w.Selection.WorkoutType)),
		strings.Join(muscles, ", "),
		catalog.Humanize(string(w.Selection.Goal)),
		w.CatalogVersion)

	for i, e := range w.Exercises {
		fmt.Printf("%02d  %-28s %s\n", i+1, strings.ToUpper(e.DisplayName()), e.Type)
		fmt.Printf("    %s\n", catalog.Humanize(e.MusclesLabel()))
		fmt.Printf("    %-12s rest %ds   tempo %s\n", e.AmountLabel(), e.Rest, e.Tempo)
		for _, p := range e.Paragraphs() {
			fmt.Printf("    %s\n", p)
		}
		fmt.Println()
	}
}
