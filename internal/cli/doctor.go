package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/fynemvc/fynemvc/internal/registry"
	"github.com/fynemvc/fynemvc/internal/ui"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor <project-dir>",
	Short: "Check a project's screen registry for inconsistencies",
	Long: `Audit a project for registry damage: screens registered without stubs on
disk, stubs and view packages no registered screen claims, and staging
directories left behind by an interrupted run. Problems are reported, never
repaired.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		fmt.Fprintln(cmd.OutOrStdout(), "Toolchain check:")
		checkBinary(cmd, "go")
		checkBinary(cmd, "git")

		fmt.Fprintf(cmd.OutOrStdout(), "Registry check: %s\n", root)
		report, err := registry.Check(root)
		if err != nil {
			return err
		}
		if report.Clean() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s no problems found\n", ui.Green.Render("[ OK ]"))
			return nil
		}

		for _, finding := range report.Findings {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", ui.Red.Render("[FAIL]"), finding)
		}
		return fmt.Errorf("found %d problem(s) in %s", len(report.Findings), root)
	},
}

// checkBinary reports whether a tool the generated project needs is on PATH.
// A missing tool is a warning, not a failure: the registry audit still runs.
func checkBinary(cmd *cobra.Command, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s not found\n", ui.Yellow.Render("[WARN]"), name)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s %s found at %s\n", ui.Green.Render("[ OK ]"), name, path)
}
