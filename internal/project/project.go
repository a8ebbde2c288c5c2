// Package project reads and writes the fynemvc.yaml marker that identifies
// a generated project, and knows the on-disk layout the generator maintains
// around it. Every command that operates on an existing project goes through
// Load, which schema-validates the marker before anything else runs.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	// MarkerFile sits at the project root and records how the project
	// was generated.
	MarkerFile = "fynemvc.yaml"

	// ManifestRel is the screen registry's path relative to the project
	// root, in slash form.
	ManifestRel = "internal/app/screens.go"
)

// Pattern names accepted by create-project and recorded in the marker.
const (
	PatternMVC      = "MVC"
	PatternCleanMVC = "CleanMVC"
)

// Database choices recorded in the marker. The generator only records the
// choice and adds the matching require line to the generated go.mod; it does
// not scaffold wrapper code.
const (
	DatabaseNone   = "none"
	DatabaseSQLite = "sqlite"
	DatabaseREST   = "rest"
)

// Config is the fynemvc.yaml document.
type Config struct {
	ProjectID   string `yaml:"project_id"`
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Module      string `yaml:"module"`
	GoVersion   string `yaml:"go_version"`
	FyneVersion string `yaml:"fyne_version"`
	Database    string `yaml:"database,omitempty"`
}

// Patterns returns the supported pattern names.
func Patterns() []string {
	return []string{PatternMVC, PatternCleanMVC}
}

// ValidPattern reports whether name is a supported pattern.
func ValidPattern(name string) bool {
	for _, p := range Patterns() {
		if p == name {
			return true
		}
	}
	return false
}

// Databases returns the supported database choices.
func Databases() []string {
	return []string{DatabaseNone, DatabaseSQLite, DatabaseREST}
}

// ValidDatabase reports whether name is a supported database choice.
func ValidDatabase(name string) bool {
	for _, d := range Databases() {
		if d == name {
			return true
		}
	}
	return false
}

// Path returns the marker path for a project root.
func Path(root string) string {
	return filepath.Join(root, MarkerFile)
}

// ManifestPath returns the screen registry path for a project root.
func ManifestPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(ManifestRel))
}

// ViewDir returns the view package directory for a screen package name.
func ViewDir(root, pkg string) string {
	return filepath.Join(root, "internal", "view", pkg)
}

// ViewStubPath returns the view stub file for a screen.
func ViewStubPath(root, pkg, snake string) string {
	return filepath.Join(ViewDir(root, pkg), snake+".go")
}

// ModelStubPath returns the model stub file for a screen.
func ModelStubPath(root, snake string) string {
	return filepath.Join(root, "internal", "model", snake+".go")
}

// ControllerStubPath returns the controller stub file for a screen.
func ControllerStubPath(root, snake string) string {
	return filepath.Join(root, "internal", "controller", snake+".go")
}

// UsecaseStubPath returns the interactor stub file for a screen. Only
// CleanMVC projects have one.
func UsecaseStubPath(root, snake string) string {
	return filepath.Join(root, "internal", "usecase", snake+".go")
}

// StubPaths returns every stub file and directory owned by a screen under
// the given pattern, directories last.
func StubPaths(root, pattern, pkg, snake string) (files []string, dirs []string) {
	files = append(files,
		ViewStubPath(root, pkg, snake),
		ControllerStubPath(root, snake),
		ModelStubPath(root, snake),
	)
	if pattern == PatternCleanMVC {
		files = append(files, UsecaseStubPath(root, snake))
	}
	dirs = append(dirs, ViewDir(root, pkg))
	return files, dirs
}

// Load reads and validates the marker for a project root. The returned
// error wraps schema issues so callers can surface them verbatim.
func Load(root string) (*Config, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", MarkerFile, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", MarkerFile, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("%s is invalid: %s", MarkerFile, strings.Join(msgs, "; "))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", MarkerFile, err)
	}
	return &cfg, nil
}

// Save writes the marker for a project root.
func Save(root string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", MarkerFile, err)
	}
	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", MarkerFile, err)
	}
	return nil
}
