package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fynemvc/fynemvc/internal/config"
	"github.com/fynemvc/fynemvc/internal/naming"
	"github.com/fynemvc/fynemvc/internal/project"
	"github.com/fynemvc/fynemvc/internal/registry"
	"github.com/fynemvc/fynemvc/internal/scaffold"
	"github.com/fynemvc/fynemvc/internal/ui"
)

// Fallback toolchain versions when neither flag nor config supplies one.
const (
	defaultGoVersion   = "1.24"
	defaultFyneVersion = "2.6.1"
	defaultScreenName  = "MainScreen"
)

// fyneMinVersion is the oldest Fyne release the generated skeleton targets.
var fyneMinVersion = semver.MustParse("2.0.0")

var (
	createModule      string
	createGoVersion   string
	createFyneVersion string
	createScreens     []string
	createResponsive  []string
	createDatabase    string
)

func init() {
	createCmd.Flags().StringVar(&createModule, "module", "", "Go module path for the generated project (default: <module_prefix>/<name>)")
	createCmd.Flags().StringVar(&createGoVersion, "go-version", "", "Go version written to the generated go.mod (default: "+defaultGoVersion+")")
	createCmd.Flags().StringVar(&createFyneVersion, "fyne-version", "", "Fyne version required by the generated go.mod (default: "+defaultFyneVersion+")")
	createCmd.Flags().StringArrayVar(&createScreens, "name-screen", nil, "Screen(s) to seed the project with (repeatable, default "+defaultScreenName+")")
	createCmd.Flags().StringArrayVar(&createResponsive, "use-responsive", nil, "Screen(s) from --name-screen to mark for a responsive layout")
	createCmd.Flags().StringVar(&createDatabase, "database", "", "Database backend to record: none, sqlite, or rest")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create-project <pattern> <directory> <name>",
	Short: "Scaffold a new Fyne MVC project",
	Long: `Scaffold a new Fyne application under <directory>/<name> using the given
architecture pattern, then seed it with one or more screens.

Examples:
  fynemvc create-project MVC ~/Projects MyApp
  fynemvc create-project CleanMVC ~/Projects MyApp --name-screen HomeScreen --name-screen SettingsScreen
  fynemvc create-project MVC ~/Projects MyApp --database sqlite --module github.com/alice/myapp`,
	Args: cobra.ExactArgs(3),
	RunE: runCreateProject,
}

func runCreateProject(cmd *cobra.Command, args []string) error {
	config.Load()

	pattern, directory, name := args[0], args[1], args[2]

	if !project.ValidPattern(pattern) {
		return fmt.Errorf("unknown pattern %q: available patterns are %s", pattern, strings.Join(project.Patterns(), ", "))
	}
	if err := validateProjectName(name); err != nil {
		return err
	}

	module := createModule
	if module == "" {
		module = defaultModule(name)
	}
	if err := validateModulePath(module); err != nil {
		return err
	}

	goVersion, err := resolveGoVersion(resolveDefault(createGoVersion, config.KeyGoVersion, defaultGoVersion))
	if err != nil {
		return err
	}
	fyneVersion, err := resolveFyneVersion(resolveDefault(createFyneVersion, config.KeyFyneVersion, defaultFyneVersion))
	if err != nil {
		return err
	}

	database := createDatabase
	if database == "" {
		database = project.DatabaseNone
	}
	if !project.ValidDatabase(database) {
		return fmt.Errorf("unknown database %q: available backends are %s", database, strings.Join(project.Databases(), ", "))
	}

	screens, responsive, err := resolveScreens(createScreens, createResponsive)
	if err != nil {
		return err
	}

	dest := filepath.Join(directory, name)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("the %s project already exists", dest)
	}

	// All checks passed; from here on we write.
	data := scaffold.NewProjectData(name, module, pattern, goVersion, fyneVersion, database, uuid.NewString())
	res, err := scaffold.RenderProject(pattern, data, dest)
	if err != nil {
		return err
	}

	cfg := &project.Config{
		ProjectID:   data.ProjectID,
		Name:        name,
		Pattern:     pattern,
		Module:      module,
		GoVersion:   goVersion,
		FyneVersion: fyneVersion,
		Database:    database,
	}
	if err := project.Save(dest, cfg); err != nil {
		return err
	}

	files := append([]string{}, res.Files...)
	files = append(files, project.MarkerFile)
	warnings := append([]string{}, res.Warnings...)

	// Seed the initial screens through the same path add-view uses.
	for _, screen := range screens {
		viewRes, err := registry.AddView(dest, screen, responsive[screen.String()])
		if err != nil {
			return fmt.Errorf("seeding screen %s: %w", screen, err)
		}
		files = append(files, viewRes.Files...)
		warnings = append(warnings, viewRes.Warnings...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Green.Render(fmt.Sprintf("Created %s project at %s/", pattern, dest)))
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Dim.Render(f))
	}
	printWarnings(cmd, warnings)

	fmt.Fprintln(cmd.OutOrStdout(), "\n"+ui.White.Render("Next steps:"))
	fmt.Fprintf(cmd.OutOrStdout(), "  1. cd %s\n", dest)
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'go mod tidy' to fetch Fyne")
	fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'go run .' to launch the app")
	fmt.Fprintf(cmd.OutOrStdout(), "Add more screens with '%s'.\n", ui.Cyan.Render(fmt.Sprintf("fynemvc add-view %s %s NewScreen", pattern, dest)))
	return nil
}

// resolveDefault picks the flag value, then the config key, then the fallback.
func resolveDefault(flagValue, configKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := config.Get(configKey); v != "" {
		return v
	}
	return fallback
}

// defaultModule derives a module path when --module is omitted: the
// configured module_prefix plus the lowercased project name, or an
// example.com placeholder the user is expected to edit.
func defaultModule(name string) string {
	lower := strings.ToLower(name)
	if prefix := config.Get(config.KeyModulePrefix); prefix != "" {
		return strings.TrimSuffix(prefix, "/") + "/" + lower
	}
	return "example.com/" + lower
}

func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if strings.ContainsAny(name, " \t/\\") {
		return fmt.Errorf("invalid project name %q: spaces and path separators are not allowed", name)
	}
	return nil
}

func validateModulePath(module string) error {
	if module == "" || strings.ContainsAny(module, " \t") || strings.HasPrefix(module, "/") || strings.HasSuffix(module, "/") {
		return fmt.Errorf("invalid module path %q", module)
	}
	return nil
}

// resolveGoVersion validates the version and returns it in the form the
// go directive expects (no v prefix; "1.24" stays "1.24").
func resolveGoVersion(raw string) (string, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("invalid --go-version %q: %w", raw, err)
	}
	if v.Major() != 1 {
		return "", fmt.Errorf("invalid --go-version %q: Go versions are 1.x", raw)
	}
	return strings.TrimPrefix(v.Original(), "v"), nil
}

// resolveFyneVersion validates the version and returns the canonical
// three-part form a require directive needs.
func resolveFyneVersion(raw string) (string, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("invalid --fyne-version %q: %w", raw, err)
	}
	if v.LessThan(fyneMinVersion) {
		return "", fmt.Errorf("invalid --fyne-version %q: the generated skeleton targets fyne.io/fyne/v2, use %s or newer", raw, fyneMinVersion)
	}
	return v.String(), nil
}

// resolveScreens parses and deduplicates the --name-screen list and checks
// that every --use-responsive entry names one of those screens.
func resolveScreens(rawScreens, rawResponsive []string) ([]naming.ScreenName, map[string]bool, error) {
	if len(rawScreens) == 0 {
		rawScreens = []string{defaultScreenName}
	}

	var screens []naming.ScreenName
	seen := make(map[string]bool, len(rawScreens))
	packages := make(map[string]string, len(rawScreens))
	for _, raw := range rawScreens {
		screen, err := naming.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --name-screen %q: %w", raw, err)
		}
		if seen[screen.String()] {
			return nil, nil, fmt.Errorf("screen %s is listed more than once", screen)
		}
		if prev, ok := packages[screen.Package()]; ok {
			return nil, nil, fmt.Errorf("screens %s and %s would share the view package %q", prev, screen, screen.Package())
		}
		seen[screen.String()] = true
		packages[screen.Package()] = screen.String()
		screens = append(screens, screen)
	}

	responsive := make(map[string]bool, len(rawResponsive))
	for _, raw := range rawResponsive {
		screen, err := naming.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --use-responsive %q: %w", raw, err)
		}
		if !seen[screen.String()] {
			return nil, nil, fmt.Errorf("--use-responsive %s does not match any --name-screen entry", screen)
		}
		responsive[screen.String()] = true
	}

	return screens, responsive, nil
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow.Render("\nWarnings:"))
	for _, w := range warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", w)
	}
}
