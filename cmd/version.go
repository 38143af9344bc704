package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winterarc/winterarc/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("winterarc", version)
		if c, err := catalog.Default(); err == nil {
			fmt.Println("built-in catalog", c.Version())
		}
	},
}
