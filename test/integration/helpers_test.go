//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/fynemvc/fynemvc/internal/branding"
	"github.com/fynemvc/fynemvc/internal/naming"
	"github.com/fynemvc/fynemvc/internal/project"
	"github.com/fynemvc/fynemvc/internal/registry"
	"github.com/fynemvc/fynemvc/internal/scaffold"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir string // user config sandbox, wired via FYNEMVC_CONFIG
	WorkDir   string // parent directory for generated projects
}

// setupTestEnv creates isolated temp directories and redirects the user
// config dir so no test touches ~/.fynemvc. The env var is restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir: t.TempDir(),
		WorkDir:   t.TempDir(),
	}
	t.Setenv(branding.EnvVar("CONFIG"), env.ConfigDir)
	return env
}

// createProject runs the full create-project flow: render the skeleton,
// write the marker, and seed the initial screens through the registry.
// Returns the project root.
func createProject(t *testing.T, parentDir, pattern, name string, screens ...string) string {
	t.Helper()

	root := filepath.Join(parentDir, name)
	data := scaffold.NewProjectData(name, "example.com/"+strings.ToLower(name), pattern, "1.24", "2.6.1", project.DatabaseNone, uuid.NewString())

	res, err := scaffold.RenderProject(pattern, data, root)
	if err != nil {
		t.Fatalf("RenderProject: %v", err)
	}
	if len(res.Warnings) > 0 {
		t.Fatalf("RenderProject warnings: %v", res.Warnings)
	}

	cfg := &project.Config{
		ProjectID:   data.ProjectID,
		Name:        name,
		Pattern:     pattern,
		Module:      data.Module,
		GoVersion:   data.GoVersion,
		FyneVersion: data.FyneVersion,
		Database:    data.Database,
	}
	if err := project.Save(root, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, screen := range screens {
		addView(t, root, screen)
	}
	return root
}

// addView parses the screen name and adds it through the registry.
func addView(t *testing.T, root, screen string) *registry.Result {
	t.Helper()

	name, err := naming.Parse(screen)
	if err != nil {
		t.Fatalf("Parse(%q): %v", screen, err)
	}
	res, err := registry.AddView(root, name, false)
	if err != nil {
		t.Fatalf("AddView(%s): %v", screen, err)
	}
	return res
}

// removeView parses the screen name and removes it through the registry.
func removeView(t *testing.T, root, screen string) *registry.Result {
	t.Helper()

	name, err := naming.Parse(screen)
	if err != nil {
		t.Fatalf("Parse(%q): %v", screen, err)
	}
	res, err := registry.RemoveView(root, name)
	if err != nil {
		t.Fatalf("RemoveView(%s): %v", screen, err)
	}
	return res
}

// viewNames returns the registered screen names in manifest order.
func viewNames(t *testing.T, root string) []string {
	t.Helper()

	views, err := registry.Views(root)
	if err != nil {
		t.Fatalf("Views: %v", err)
	}
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	return names
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
