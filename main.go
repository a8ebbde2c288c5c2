package main

import (
	"fmt"
	"os"

	"github.com/fynemvc/fynemvc/internal/cli"
	"github.com/fynemvc/fynemvc/internal/ui"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red.Render("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
