package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/app"
)

// runApp loads configuration, opens the store and launches the TUI. The
// wizard still works without history when the store cannot be opened.
func runApp(cmd *cobra.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{
		Catalog: e.catalog,
		Logger:  e.log,
		Status:  e.catalogStatus(),
	}

	st, err := openStore(cmd, e)
	if err != nil {
		e.log.Warn("history disabled", "error", err)
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
	} else {
		defer st.Close()
		opts.Repo = st.PlanRepo()
	}

	e.log.Info("starting", "version", version, "catalog", e.catalog.Version())
	return app.Run(opts)
}
