package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fynemvc/fynemvc/internal/manifest"
	"github.com/fynemvc/fynemvc/internal/project"
)

// Report lists the consistency problems Check found. Findings are
// human-readable and stable enough to act on; Check never repairs.
type Report struct {
	Findings []string
}

// Clean reports whether the audit found nothing.
func (r *Report) Clean() bool { return len(r.Findings) == 0 }

// Check audits a project for drift between the screen registry and the
// stub files on disk: registry entries whose stubs are gone, stubs no
// registry entry claims, and staging directories an interrupted operation
// left behind.
func Check(root string) (*Report, error) {
	cfg, err := project.Load(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	mf, err := manifest.Load(project.ManifestPath(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	report := &Report{}
	for _, p := range mf.Damaged() {
		report.Findings = append(report.Findings, "screen registry: "+p)
	}

	snakes := make(map[string]bool)
	packages := make(map[string]bool)
	for _, e := range mf.Entries() {
		snake := strings.ReplaceAll(e.Key, " ", "_")
		snakes[snake] = true
		packages[e.Package] = true

		files, _ := project.StubPaths(root, cfg.Pattern, e.Package, snake)
		for _, f := range files {
			if _, err := os.Stat(f); err != nil {
				report.Findings = append(report.Findings,
					fmt.Sprintf("registered screen %s is missing %s", e.Name, rel(root, f)))
			}
		}
	}

	checkOrphanViewDirs(root, packages, report)
	checkOrphanStubs(root, "model", snakes, report)
	checkOrphanStubs(root, "controller", snakes, report)
	checkOrphanStubs(root, "usecase", snakes, report)
	checkStaleStages(root, report)

	return report, nil
}

// checkOrphanViewDirs flags view package directories no registry entry
// claims.
func checkOrphanViewDirs(root string, packages map[string]bool, report *Report) {
	viewRoot := filepath.Join(root, "internal", "view")
	entries, err := os.ReadDir(viewRoot)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() || packages[e.Name()] {
			continue
		}
		report.Findings = append(report.Findings,
			fmt.Sprintf("view package internal/view/%s has no registry entry", e.Name()))
	}
}

// checkOrphanStubs flags files shaped like screen stubs that no registry
// entry claims. Only *_screen.go names are considered; anything else in
// the directory is the user's.
func checkOrphanStubs(root, layer string, snakes map[string]bool, report *Report) {
	dir := filepath.Join(root, "internal", layer)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, "_screen.go") {
			continue
		}
		if snakes[strings.TrimSuffix(name, ".go")] {
			continue
		}
		report.Findings = append(report.Findings,
			fmt.Sprintf("internal/%s/%s is not claimed by any registered screen", layer, name))
	}
}

// checkStaleStages flags staging directories left by an interrupted add
// or remove.
func checkStaleStages(root string, report *Report) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), stagePrefix) {
			report.Findings = append(report.Findings,
				fmt.Sprintf("staging directory %s was left behind by an interrupted run", e.Name()))
		}
	}
}
