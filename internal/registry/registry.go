// Package registry keeps a generated project's screen registry and its
// per-screen source stubs consistent. AddView and RemoveView are the only
// writers: both validate everything up front, prepare new content in a
// staging directory under the project root, and commit with renames so an
// interrupted run never leaves a half-registered screen behind.
package registry

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fynemvc/fynemvc/internal/manifest"
	"github.com/fynemvc/fynemvc/internal/naming"
	"github.com/fynemvc/fynemvc/internal/project"
	"github.com/fynemvc/fynemvc/internal/scaffold"
)

// stagePrefix names the staging directories AddView and RemoveView create
// under the project root. Check reports any that an interrupted run left
// behind.
const stagePrefix = ".fynemvc-stage-"

// Result describes what an operation changed.
type Result struct {
	Screen   string   // CamelCase screen name
	Files    []string // project-relative stub paths created or removed
	Manifest string   // project-relative registry path that was rewritten
	Warnings []string
}

// View is one registered screen enriched with its on-disk state.
type View struct {
	Name    string   // e.g., "HomeScreen"
	Key     string   // e.g., "home screen"
	Package string   // e.g., "homescreen"
	Dir     string   // project-relative view package directory
	Missing []string // expected stub files absent on disk
}

// load opens the project marker and the screen registry, classifying any
// failure as ErrInvalidProject.
func load(root string) (*project.Config, *manifest.File, error) {
	cfg, err := project.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	mf, err := manifest.Load(project.ManifestPath(root))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	if problems := mf.Damaged(); len(problems) > 0 {
		return nil, nil, fmt.Errorf("%w: screen registry is inconsistent: %s", ErrInvalidProject, strings.Join(problems, "; "))
	}
	return cfg, mf, nil
}

// AddView registers a screen: it renders the pattern's stub files, adds
// the screen's import and table lines to the registry, and commits stubs
// first, registry last. All duplicate checks run before anything is
// written.
func AddView(root string, name naming.ScreenName, responsive bool) (*Result, error) {
	cfg, mf, err := load(root)
	if err != nil {
		return nil, err
	}

	if mf.Has(name) {
		return nil, fmt.Errorf("%w: %s is already registered", ErrDuplicateView, name)
	}
	if mf.HasPackage(name.Package()) {
		return nil, fmt.Errorf("%w: %s would reuse the view package %q", ErrDuplicateView, name, name.Package())
	}
	files, dirs := project.StubPaths(root, cfg.Pattern, name.Package(), name.Snake())
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			return nil, fmt.Errorf("%w: %s already exists", ErrDuplicateView, rel(root, f))
		}
	}
	for _, d := range dirs {
		if _, err := os.Stat(d); err == nil {
			return nil, fmt.Errorf("%w: %s already exists", ErrDuplicateView, rel(root, d))
		}
	}

	// Stage everything next to the project so commits are plain renames.
	stage, err := os.MkdirTemp(root, stagePrefix)
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	data := scaffold.NewViewData(name, cfg.Module, cfg.Pattern, responsive)
	rendered, err := scaffold.RenderView(cfg.Pattern, data, stage)
	if err != nil {
		return nil, fmt.Errorf("rendering %s stubs: %w", name, err)
	}

	if err := mf.Add(name, cfg.Module); err != nil {
		return nil, fmt.Errorf("updating screen registry: %w", err)
	}
	stagedManifest := filepath.Join(stage, "screens.go")
	if err := os.WriteFile(stagedManifest, mf.Render(), 0644); err != nil {
		return nil, fmt.Errorf("staging screen registry: %w", err)
	}

	// Commit stubs first and the registry last: an interruption leaves
	// the previous registry in place and at worst orphan stubs, which
	// doctor reports.
	for _, f := range rendered.Files {
		if err := commit(filepath.Join(stage, filepath.FromSlash(f)), filepath.Join(root, filepath.FromSlash(f))); err != nil {
			return nil, err
		}
	}
	if err := commit(stagedManifest, project.ManifestPath(root)); err != nil {
		return nil, err
	}

	return &Result{
		Screen:   name.String(),
		Files:    rendered.Files,
		Manifest: project.ManifestRel,
		Warnings: rendered.Warnings,
	}, nil
}

// RemoveView unregisters a screen and deletes its stub files. The registry
// is rewritten first so it never references deleted stubs; an interruption
// leaves orphan stubs, which doctor reports.
func RemoveView(root string, name naming.ScreenName) (*Result, error) {
	cfg, mf, err := load(root)
	if err != nil {
		return nil, err
	}

	if !mf.Has(name) {
		return nil, fmt.Errorf("%w: %s is not registered", ErrViewNotFound, name)
	}

	if err := mf.Remove(name); err != nil {
		return nil, fmt.Errorf("updating screen registry: %w", err)
	}

	stage, err := os.MkdirTemp(root, stagePrefix)
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	stagedManifest := filepath.Join(stage, "screens.go")
	if err := os.WriteFile(stagedManifest, mf.Render(), 0644); err != nil {
		return nil, fmt.Errorf("staging screen registry: %w", err)
	}
	if err := commit(stagedManifest, project.ManifestPath(root)); err != nil {
		return nil, err
	}

	result := &Result{
		Screen:   name.String(),
		Manifest: project.ManifestRel,
	}

	files, dirs := project.StubPaths(root, cfg.Pattern, name.Package(), name.Snake())
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			if os.IsNotExist(err) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s was already gone", rel(root, f)))
				continue
			}
			return result, fmt.Errorf("removing %s: %w", rel(root, f), err)
		}
		result.Files = append(result.Files, rel(root, f))
	}
	for _, d := range dirs {
		if err := os.RemoveAll(d); err != nil {
			return result, fmt.Errorf("removing %s: %w", rel(root, d), err)
		}
	}

	return result, nil
}

// Views returns the registered screens in registration order, each checked
// against the stub files the pattern expects.
func Views(root string) ([]View, error) {
	cfg, mf, err := load(root)
	if err != nil {
		return nil, err
	}

	var views []View
	for _, e := range mf.Entries() {
		snake := strings.ReplaceAll(e.Key, " ", "_")
		v := View{
			Name:    e.Name,
			Key:     e.Key,
			Package: e.Package,
			Dir:     path.Join("internal", "view", e.Package),
		}
		files, _ := project.StubPaths(root, cfg.Pattern, e.Package, snake)
		for _, f := range files {
			if _, err := os.Stat(f); err != nil {
				v.Missing = append(v.Missing, rel(root, f))
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// commit renames a staged file into place, creating parent directories as
// needed. Rename within the project root replaces the target atomically.
func commit(stagePath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
	}
	if err := os.Rename(stagePath, destPath); err != nil {
		return fmt.Errorf("committing %s: %w", destPath, err)
	}
	return nil
}

// rel returns p relative to root in slash form, for display.
func rel(root, p string) string {
	r, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(r)
}
