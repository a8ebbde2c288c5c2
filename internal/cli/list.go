package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fynemvc/fynemvc/internal/registry"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list-views <project-dir>",
	Short: "List the screens registered in a project",
	Long:  `List the screens registered in a project's internal/app/screens.go, in registration order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runListViews,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered screen for display.
type listEntry struct {
	Name    string `json:"name"`
	Package string `json:"package"`
	Path    string `json:"path"`
	Status  string `json:"status"`
}

func runListViews(cmd *cobra.Command, args []string) error {
	views, err := registry.Views(args[0])
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No views registered yet.")
		return nil
	}

	entries := make([]listEntry, 0, len(views))
	for _, v := range views {
		status := "ok"
		if len(v.Missing) > 0 {
			status = "missing stubs"
		}
		entries = append(entries, listEntry{
			Name:    v.Name,
			Package: v.Package,
			Path:    v.Dir,
			Status:  status,
		})
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPACKAGE\tPATH\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Package, e.Path, e.Status)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
