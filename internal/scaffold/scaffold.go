// Package scaffold renders the embedded template sets into generated
// project trees and per-screen stub files. Rendering is pure templating;
// registry bookkeeping and staging live in internal/registry.
package scaffold

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/fynemvc/fynemvc/internal/naming"
)

// ProjectData holds all template variables available to project templates.
type ProjectData struct {
	Name        string // e.g., "MyApp"
	Module      string // e.g., "example.com/myapp"
	Pattern     string // "MVC" or "CleanMVC"
	GoVersion   string // e.g., "1.25"
	FyneVersion string // e.g., "2.6.1"
	Database    string // "none", "sqlite", or "rest"
	ProjectID   string // UUID stamped into the marker by the caller
	Year        int    // Current year
}

// ViewData holds all template variables available to view stub templates.
type ViewData struct {
	Screen     string // e.g., "HomeScreen"
	Snake      string // e.g., "home_screen"
	Package    string // e.g., "homescreen"
	Key        string // e.g., "home screen"
	Module     string // project module path
	Pattern    string // "MVC" or "CleanMVC"
	Responsive bool   // requested via --use-responsive; recorded, not rendered
	Year       int    // Current year
}

// Result holds the outcome of a render.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewProjectData creates a ProjectData with the current year populated.
func NewProjectData(name, module, pattern, goVersion, fyneVersion, database, projectID string) *ProjectData {
	return &ProjectData{
		Name:        name,
		Module:      module,
		Pattern:     pattern,
		GoVersion:   goVersion,
		FyneVersion: fyneVersion,
		Database:    database,
		ProjectID:   projectID,
		Year:        time.Now().Year(),
	}
}

// NewViewData creates a ViewData with the screen's derived forms populated.
func NewViewData(name naming.ScreenName, module, pattern string, responsive bool) *ViewData {
	return &ViewData{
		Screen:     name.String(),
		Snake:      name.Snake(),
		Package:    name.Package(),
		Key:        name.Key(),
		Module:     module,
		Pattern:    pattern,
		Responsive: responsive,
		Year:       time.Now().Year(),
	}
}

// projectSetName returns the embedded directory name for a pattern's
// project skeleton.
func projectSetName(pattern string) string {
	return "project-" + strings.ToLower(pattern)
}

// viewSetName returns the embedded directory name for a pattern's
// per-screen stubs.
func viewSetName(pattern string) string {
	return "view-" + strings.ToLower(pattern)
}

// viewStubs maps view template names to their project-relative output
// paths for a screen.
func viewStubs(pattern string, data *ViewData) map[string]string {
	stubs := map[string]string{
		"model.go.tmpl":      path.Join("internal", "model", data.Snake+".go"),
		"controller.go.tmpl": path.Join("internal", "controller", data.Snake+".go"),
		"view.go.tmpl":       path.Join("internal", "view", data.Package, data.Snake+".go"),
	}
	if strings.EqualFold(pattern, "cleanmvc") {
		stubs["usecase.go.tmpl"] = path.Join("internal", "usecase", data.Snake+".go")
	}
	return stubs
}

// outputName strips the .tmpl extension and restores dotfile names that
// cannot be stored verbatim in the template tree.
func outputName(tmplName string) string {
	name := strings.TrimSuffix(tmplName, ".tmpl")
	switch name {
	case "gitignore":
		return ".gitignore"
	case "gitkeep":
		return ".gitkeep"
	}
	return name
}

// RenderProject creates a project skeleton from the pattern's template set.
// The screen registry it writes starts empty; screens are seeded through
// the registry afterwards.
func RenderProject(pattern string, data *ProjectData, outputDir string) (*Result, error) {
	setName := projectSetName(pattern)
	templatesDir := path.Join("templates", setName)

	// Verify the template set exists in the embedded FS.
	if _, err := fs.ReadDir(scaffoldFS, templatesDir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to scribble over existing files.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	err = fs.WalkDir(scaffoldFS, templatesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(templatesDir, p)
		if err != nil {
			return fmt.Errorf("resolving template path %s: %w", p, err)
		}
		rel = filepath.ToSlash(rel)
		outRel := path.Join(path.Dir(rel), outputName(path.Base(rel)))

		rendered, err := renderTemplate(p, data)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, rendered, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outRel)
		checkGoSource(outRel, rendered, result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RenderView renders the per-screen stub files for a screen into destRoot,
// which is either the project root or a staging directory mirroring it.
func RenderView(pattern string, data *ViewData, destRoot string) (*Result, error) {
	setName := viewSetName(pattern)
	templatesDir := path.Join("templates", setName)

	if _, err := fs.ReadDir(scaffoldFS, templatesDir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	result := &Result{OutputDir: destRoot}

	for tmplName, outRel := range viewStubs(pattern, data) {
		rendered, err := renderTemplate(path.Join(templatesDir, tmplName), data)
		if err != nil {
			return nil, err
		}

		outPath := filepath.Join(destRoot, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, rendered, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outRel)
		checkGoSource(outRel, rendered, result)
	}

	sort.Strings(result.Files)
	return result, nil
}

// renderTemplate reads a template from the embedded FS and executes it.
func renderTemplate(tmplPath string, data interface{}) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(path.Base(tmplPath)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

// checkGoSource parse-checks a rendered Go file and records a warning when
// the template produced something the compiler would reject.
func checkGoSource(relPath string, src []byte, result *Result) {
	if !strings.HasSuffix(relPath, ".go") {
		return
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, relPath, src, parser.AllErrors); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("generated %s does not parse: %v", relPath, err))
	}
}
