package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fynemvc/fynemvc/internal/naming"
	"github.com/fynemvc/fynemvc/internal/registry"
	"github.com/fynemvc/fynemvc/internal/ui"
)

var removeYes bool

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove-view <pattern> <project-dir> <ScreenName>",
	Short: "Remove a view from an existing project",
	Long: `Remove a screen from a project: unregisters it from internal/app/screens.go
and deletes its model/controller/view stubs.

Example:
  fynemvc remove-view MVC ./MyApp ProfileScreen --yes`,
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

		if !removeYes && isatty.IsTerminal(os.Stdin.Fd()) {
			confirmed, err := confirmRemove(name.String(), root)
			if err != nil {
				return fmt.Errorf("confirmation prompt: %w", err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
				return nil
			}
		}

		res, err := registry.RemoveView(root, name)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Green.Render(fmt.Sprintf("Removed %s from %s", name, root)))
		for _, f := range res.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (deleted)\n", ui.Dim.Render(f))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (updated)\n", res.Manifest)
		printWarnings(cmd, res.Warnings)
		return nil
	},
}

func confirmRemove(screen, root string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Remove %s from %s?", screen, root)).
			Description("Deletes the view package and its model/controller stubs.").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
