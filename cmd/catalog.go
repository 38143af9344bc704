package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/catalog"
	"github.com/winterarc/winterarc/internal/catalogsync"
)

const syncTimeout = 2 * time.Minute

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and update the exercise catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout types, muscle groups and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		c := e.catalog

		source := "built-in"
		if e.catalogFromFile {
			source = e.cfg.Catalog.Path
		}
		fmt.Printf("Catalog %s (%s)\n\n", c.Version(), source)

		fmt.Println("Workout types")
		fmt.Println(strings.Repeat("─", 60))
		for _, t := range c.WorkoutTypes() {
			groups := c.MuscleOptions(t)
			for i, g := range groups {
				groups[i] = catalog.Humanize(g)
			}
			fmt.Printf("%-14s  %s\n", t, strings.Join(groups, ", "))
		}

		fmt.Println("\nGoals")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-14s  %-7s  %-18s  %s\n", "Goal", "Reps", "Compound/Accessory", "Rest")
		for _, g := range c.Goals() {
			s, err := c.Scheme(g)
			if err != nil {
				return err
			}
			compound, accessory := s.Slots()
			fmt.Printf("%-14s  %-7s  %-18s  %ds/%ds\n", g,
				fmt.Sprintf("%d-%d", s.MinReps(), s.MaxReps()),
				fmt.Sprintf("%d/%d", compound, accessory),
				s.RestFor(catalog.TypeCompound), s.RestFor(catalog.TypeAccessory))
		}

		fmt.Printf("\n%d exercises, %d tempos\n", len(c.Exercises()), len(c.Tempos()))
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a newer catalog release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		checker, err := newCatalogChecker(cmd, e)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), syncTimeout)
		defer cancel()

		result, err := checker.Check(ctx, &catalogsync.CheckInput{Version: e.catalog.Version()})
		if err != nil {
			return err
		}
		if !result.UpdateAvailable {
			fmt.Printf("Catalog %s is up to date.\n", result.CurrentVersion)
			return nil
		}
		fmt.Printf("Catalog %s is available (installed: %s).\n", result.LatestVersion, result.CurrentVersion)
		if result.ReleaseURL != "" {
			fmt.Println(result.ReleaseURL)
		}
		fmt.Println("Run: winterarc catalog pull")
		return nil
	},
}

var catalogPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download and install the latest catalog release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		checker, err := newCatalogChecker(cmd, e)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), syncTimeout)
		defer cancel()

		cat, err := checker.Pull(ctx, &catalogsync.PullInput{
			CurrentVersion: e.catalog.Version(),
			TargetVersion:  target,
			Dest:           e.cfg.Catalog.Path,
		}, func(p catalogsync.PullProgress) {
			e.log.Info("catalog pull", "stage", p.Stage, "message", p.Message)
			fmt.Println(p.Message)
		})
		if errors.Is(err, catalogsync.ErrAlreadyLatest) {
			fmt.Println("Already using the latest catalog.")
			return nil
		}
		if err != nil {
			e.log.Error("catalog pull failed", "error", err)
			return err
		}

		fmt.Printf("%d exercises across %d workout types.\n", len(cat.Exercises()), len(cat.WorkoutTypes()))
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().String("url", "", "Catalog release repository URL (overrides config)")
	catalogPullCmd.Flags().String("version", "", "Install this release tag instead of the latest")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCmd.AddCommand(catalogPullCmd)
}

func newCatalogChecker(cmd *cobra.Command, e *env) (*catalogsync.Checker, error) {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = e.cfg.Catalog.ReleaseURL
	}
	opts, err := catalogsync.RepositoryOptions(url)
	if err != nil {
		return nil, err
	}
	opts = append(opts, catalogsync.WithTimeout(syncTimeout))
	return catalogsync.NewChecker(opts...), nil
}
