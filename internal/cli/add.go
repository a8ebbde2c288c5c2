package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fynemvc/fynemvc/internal/naming"
	"github.com/fynemvc/fynemvc/internal/project"
	"github.com/fynemvc/fynemvc/internal/registry"
	"github.com/fynemvc/fynemvc/internal/ui"
)

var addResponsive bool

func init() {
	addCmd.Flags().BoolVar(&addResponsive, "use-responsive", false, "Mark the view for a responsive layout")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add-view <pattern> <project-dir> <ScreenName>",
	Short: "Add a view to an existing project",
	Long: `Add a new screen to a project created with create-project: generates the
model/controller/view stubs and registers the screen in internal/app/screens.go.

Example:
  fynemvc add-view MVC ./MyApp ProfileScreen`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, root, rawName := args[0], args[1], args[2]

		if _, err := loadProjectWithPattern(root, pattern); err != nil {
			return err
		}
		name, err := naming.Parse(rawName)
		if err != nil {
			return err
		}

		res, err := registry.AddView(root, name, addResponsive)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Green.Render(fmt.Sprintf("Added %s to %s", name, root)))
		for _, f := range res.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Dim.Render(f))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (updated)\n", res.Manifest)
		printWarnings(cmd, res.Warnings)
		return nil
	},
}

// loadProjectWithPattern loads the project marker and checks the pattern
// argument against the one recorded at create time.
func loadProjectWithPattern(root, pattern string) (*project.Config, error) {
	if !project.ValidPattern(pattern) {
		return nil, fmt.Errorf("unknown pattern %q: available patterns are %s", pattern, strings.Join(project.Patterns(), ", "))
	}
	cfg, err := project.Load(root)
	if err != nil {
		return nil, fmt.Errorf("%s is not a fynemvc project: %w", root, err)
	}
	if cfg.Pattern != pattern {
		return nil, fmt.Errorf("project %s was created with the %s pattern, not %s", root, cfg.Pattern, pattern)
	}
	return cfg, nil
}
