package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fynemvc/fynemvc/internal/manifest"
	"github.com/fynemvc/fynemvc/internal/naming"
)

func testProjectData(pattern, database string) *ProjectData {
	return NewProjectData("MyApp", "example.com/myapp", pattern, "1.25", "2.6.1", database, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
}

func testViewData(t *testing.T, screen, pattern string, responsive bool) *ViewData {
	t.Helper()
	name, err := naming.Parse(screen)
	if err != nil {
		t.Fatalf("naming.Parse(%q) error: %v", screen, err)
	}
	return NewViewData(name, "example.com/myapp", pattern, responsive)
}

func TestNewViewData(t *testing.T) {
	d := testViewData(t, "UserProfileScreen", "MVC", false)
	if d.Screen != "UserProfileScreen" {
		t.Errorf("Screen = %q, want %q", d.Screen, "UserProfileScreen")
	}
	if d.Snake != "user_profile_screen" {
		t.Errorf("Snake = %q, want %q", d.Snake, "user_profile_screen")
	}
	if d.Package != "userprofilescreen" {
		t.Errorf("Package = %q, want %q", d.Package, "userprofilescreen")
	}
	if d.Key != "user profile screen" {
		t.Errorf("Key = %q, want %q", d.Key, "user profile screen")
	}
	if d.Year == 0 {
		t.Error("Year should not be zero")
	}
}

func TestRenderProjectMVC(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "MyApp")

	result, err := RenderProject("MVC", testProjectData("MVC", "none"), outDir)
	if err != nil {
		t.Fatalf("RenderProject() error: %v", err)
	}

	expectedFiles := []string{
		"README.md",
		"assets/fonts/.gitkeep",
		"assets/images/.gitkeep",
		".gitignore",
		"go.mod",
		"internal/app/app.go",
		"internal/app/screens.go",
		"internal/controller/doc.go",
		"internal/model/base.go",
		"internal/model/doc.go",
		"internal/view/view.go",
		"main.go",
	}
	assertFiles(t, result, expectedFiles)

	goMod := readGenerated(t, outDir, "go.mod")
	assertContains(t, goMod, "module example.com/myapp")
	assertContains(t, goMod, "go 1.25")
	assertContains(t, goMod, "require fyne.io/fyne/v2 v2.6.1")
	assertNotContains(t, goMod, "sqlite")

	mainGo := readGenerated(t, outDir, "main.go")
	assertContains(t, mainGo, `fyneapp "fyne.io/fyne/v2/app"`)
	assertContains(t, mainGo, `"example.com/myapp/internal/app"`)
	assertContains(t, mainGo, `a.NewWindow("MyApp")`)

	appGo := readGenerated(t, outDir, "internal/app/app.go")
	assertContains(t, appGo, "type screenEntry struct")
	assertContains(t, appGo, "build func(view.Navigator) view.Screen")
	assertContains(t, appGo, "func (n *Navigator) ShowFirst() error")

	// The generated registry must start empty and be understood by the
	// manifest codec.
	screensGo := readGenerated(t, outDir, "internal/app/screens.go")
	f, err := manifest.Parse([]byte(screensGo))
	if err != nil {
		t.Fatalf("generated screens.go not parseable: %v", err)
	}
	if entries := f.Entries(); len(entries) != 0 {
		t.Errorf("fresh registry has %d entries: %+v", len(entries), entries)
	}

	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "# MyApp")
	assertContains(t, readme, "fynemvc add-view MVC . AboutScreen")

	// Every rendered .go file must at least parse.
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderProjectCleanMVC(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "MyApp")

	result, err := RenderProject("CleanMVC", testProjectData("CleanMVC", "none"), outDir)
	if err != nil {
		t.Fatalf("RenderProject() error: %v", err)
	}

	found := false
	for _, f := range result.Files {
		if f == "internal/usecase/doc.go" {
			found = true
		}
	}
	if !found {
		t.Errorf("CleanMVC skeleton missing internal/usecase/doc.go: %v", result.Files)
	}

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderProjectSQLite(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "MyApp")

	_, err := RenderProject("MVC", testProjectData("MVC", "sqlite"), outDir)
	if err != nil {
		t.Fatalf("RenderProject() error: %v", err)
	}

	goMod := readGenerated(t, outDir, "go.mod")
	assertContains(t, goMod, "require modernc.org/sqlite")

	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "## Database")
}

func TestRenderProjectInvalidSet(t *testing.T) {
	dir := t.TempDir()
	_, err := RenderProject("MVVM", testProjectData("MVVM", "none"), dir)
	if err == nil {
		t.Fatal("expected error for unknown template set")
	}
}

func TestRenderProjectNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("hello"), 0644)

	_, err := RenderProject("MVC", testProjectData("MVC", "none"), dir)
	if err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error should mention non-empty dir, got: %v", err)
	}
}

func TestRenderViewMVC(t *testing.T) {
	dir := t.TempDir()

	result, err := RenderView("MVC", testViewData(t, "HomeScreen", "MVC", false), dir)
	if err != nil {
		t.Fatalf("RenderView() error: %v", err)
	}

	expectedFiles := []string{
		"internal/controller/home_screen.go",
		"internal/model/home_screen.go",
		"internal/view/homescreen/home_screen.go",
	}
	assertFiles(t, result, expectedFiles)

	modelGo := readGenerated(t, dir, "internal/model/home_screen.go")
	assertContains(t, modelGo, "type HomeScreen struct")
	assertContains(t, modelGo, "Base")
	assertContains(t, modelGo, "func NewHomeScreen() *HomeScreen")

	controllerGo := readGenerated(t, dir, "internal/controller/home_screen.go")
	assertContains(t, controllerGo, "model *model.HomeScreen")
	assertContains(t, controllerGo, "nav   view.Navigator")

	viewGo := readGenerated(t, dir, "internal/view/homescreen/home_screen.go")
	assertContains(t, viewGo, "package homescreen")
	assertContains(t, viewGo, "func New(nav view.Navigator) view.Screen")
	assertContains(t, viewGo, `return "home screen"`)
	assertNotContains(t, viewGo, "responsive")

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderViewCleanMVC(t *testing.T) {
	dir := t.TempDir()

	result, err := RenderView("CleanMVC", testViewData(t, "SettingsScreen", "CleanMVC", false), dir)
	if err != nil {
		t.Fatalf("RenderView() error: %v", err)
	}

	expectedFiles := []string{
		"internal/controller/settings_screen.go",
		"internal/model/settings_screen.go",
		"internal/usecase/settings_screen.go",
		"internal/view/settingsscreen/settings_screen.go",
	}
	assertFiles(t, result, expectedFiles)

	usecaseGo := readGenerated(t, dir, "internal/usecase/settings_screen.go")
	assertContains(t, usecaseGo, "type SettingsScreen struct")
	assertContains(t, usecaseGo, "model *model.SettingsScreen")

	controllerGo := readGenerated(t, dir, "internal/controller/settings_screen.go")
	assertContains(t, controllerGo, "interactor *usecase.SettingsScreen")

	viewGo := readGenerated(t, dir, "internal/view/settingsscreen/settings_screen.go")
	assertContains(t, viewGo, "usecase.NewSettingsScreen(m)")

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderViewResponsiveMarker(t *testing.T) {
	dir := t.TempDir()

	_, err := RenderView("MVC", testViewData(t, "HomeScreen", "MVC", true), dir)
	if err != nil {
		t.Fatalf("RenderView() error: %v", err)
	}

	viewGo := readGenerated(t, dir, "internal/view/homescreen/home_screen.go")
	assertContains(t, viewGo, "responsive layout was requested")
}

func TestTemplateSetNames(t *testing.T) {
	tests := []struct {
		pattern string
		project string
		view    string
	}{
		{"MVC", "project-mvc", "view-mvc"},
		{"CleanMVC", "project-cleanmvc", "view-cleanmvc"},
	}

	for _, tt := range tests {
		if got := projectSetName(tt.pattern); got != tt.project {
			t.Errorf("projectSetName(%q) = %q, want %q", tt.pattern, got, tt.project)
		}
		if got := viewSetName(tt.pattern); got != tt.view {
			t.Errorf("viewSetName(%q) = %q, want %q", tt.pattern, got, tt.view)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(filename)))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
