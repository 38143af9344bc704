package main

import (
	"os"

	"github.com/winterarc/winterarc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
