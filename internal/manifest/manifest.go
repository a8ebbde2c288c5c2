// Package manifest edits the screen registry of a generated project,
// internal/app/screens.go. The file is treated as lines, not as an AST:
// each registered screen owns exactly one import line and one table line,
// and add/remove splice those lines in and out without touching anything
// else in the file. Hand-written edits outside the managed lines survive
// every operation byte-for-byte.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fynemvc/fynemvc/internal/naming"
)

// Managed block boundary lines. Render keeps empty blocks in their
// collapsed single-line forms so the file stays gofmt-clean.
const (
	importOpen      = "import ("
	importClose     = ")"
	importCollapsed = "import ()"
	tableOpen       = "var screens = []screenEntry{"
	tableClose      = "}"
	tableCollapsed  = "var screens = []screenEntry{}"
)

var (
	// ErrUnmanaged reports a screens.go whose managed blocks cannot be
	// located, usually because the file was rewritten by hand.
	ErrUnmanaged = errors.New("screens.go layout not recognized")

	importLinePattern = regexp.MustCompile(`^\t([a-z][a-z0-9]*) "(.+)/internal/view/([a-z][a-z0-9]*)"$`)
	entryLinePattern  = regexp.MustCompile(`^\t\{name: "([a-z0-9 ]+)", build: ([a-z][a-z0-9]*)\.New\},$`)
)

// Entry is one registered screen, as read back from the manifest lines.
type Entry struct {
	Name    string // CamelCase screen name, e.g. "HomeScreen"
	Key     string // registry key, e.g. "home screen"
	Package string // view package and import alias, e.g. "homescreen"
	Import  string // full import path
}

// File is a parsed screens.go held as its original lines.
type File struct {
	lines []string
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading screen registry: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse checks that data contains the managed blocks and wraps it.
func Parse(data []byte) (*File, error) {
	f := &File{lines: strings.Split(string(data), "\n")}
	if _, _, err := f.importBlock(); err != nil {
		return nil, err
	}
	if _, _, err := f.tableBlock(); err != nil {
		return nil, err
	}
	return f, nil
}

// importBlock returns the index range [start, end) of the lines inside the
// import block. A collapsed block yields start == end.
func (f *File) importBlock() (int, int, error) {
	for i, line := range f.lines {
		switch line {
		case importCollapsed:
			return i, i, nil
		case importOpen:
			for j := i + 1; j < len(f.lines); j++ {
				if f.lines[j] == importClose {
					return i + 1, j, nil
				}
			}
			return 0, 0, fmt.Errorf("%w: import block never closes", ErrUnmanaged)
		}
	}
	return 0, 0, fmt.Errorf("%w: no import block", ErrUnmanaged)
}

// tableBlock returns the index range [start, end) of the lines inside the
// screens table. A collapsed table yields start == end.
func (f *File) tableBlock() (int, int, error) {
	for i, line := range f.lines {
		switch line {
		case tableCollapsed:
			return i, i, nil
		case tableOpen:
			for j := i + 1; j < len(f.lines); j++ {
				if f.lines[j] == tableClose {
					return i + 1, j, nil
				}
			}
			return 0, 0, fmt.Errorf("%w: screens table never closes", ErrUnmanaged)
		}
	}
	return 0, 0, fmt.Errorf("%w: no screens table", ErrUnmanaged)
}

// screenImports maps package alias to import path for every managed import
// line, in file order.
func (f *File) screenImports() map[string]string {
	start, end, err := f.importBlock()
	if err != nil {
		return nil
	}
	imports := make(map[string]string)
	for _, line := range f.lines[start:end] {
		m := importLinePattern.FindStringSubmatch(line)
		if m == nil || m[1] != m[3] {
			continue
		}
		imports[m[1]] = m[2] + "/internal/view/" + m[3]
	}
	return imports
}

// Entries returns the registered screens in table order.
func (f *File) Entries() []Entry {
	start, end, err := f.tableBlock()
	if err != nil {
		return nil
	}
	imports := f.screenImports()
	var entries []Entry
	for _, line := range f.lines[start:end] {
		m := entryLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    nameFromKey(m[1]),
			Key:     m[1],
			Package: m[2],
			Import:  imports[m[2]],
		})
	}
	return entries
}

// Has reports whether name is registered in the screens table.
func (f *File) Has(name naming.ScreenName) bool {
	for _, e := range f.Entries() {
		if e.Key == name.Key() {
			return true
		}
	}
	return false
}

// HasPackage reports whether any registered screen already claims the
// package alias. Two distinct names can collide here (import aliases
// ignore word boundaries), and the generated file would not compile.
func (f *File) HasPackage(pkg string) bool {
	for _, e := range f.Entries() {
		if e.Package == pkg {
			return true
		}
	}
	if _, ok := f.screenImports()[pkg]; ok {
		return true
	}
	return false
}

// Add appends the screen's import line and table line at the end of their
// blocks. module is the project's Go module path.
func (f *File) Add(name naming.ScreenName, module string) error {
	if f.Has(name) {
		return fmt.Errorf("screen %s is already registered", name)
	}
	if f.HasPackage(name.Package()) {
		return fmt.Errorf("screen %s conflicts with an existing %s import", name, name.Package())
	}

	importLine := "\t" + name.Package() + ` "` + module + "/internal/view/" + name.Package() + `"`
	entryLine := "\t{name: \"" + name.Key() + "\", build: " + name.Package() + ".New},"

	f.appendToImportBlock(importLine)
	f.appendToTableBlock(entryLine)
	return nil
}

// Remove deletes the screen's table line and import line, leaving every
// other line untouched. The table is authoritative: a missing table line
// means the screen is not registered even if a stray import remains.
func (f *File) Remove(name naming.ScreenName) error {
	start, end, err := f.tableBlock()
	if err != nil {
		return err
	}
	entryIdx := -1
	for i := start; i < end; i++ {
		m := entryLinePattern.FindStringSubmatch(f.lines[i])
		if m != nil && m[1] == name.Key() {
			entryIdx = i
			break
		}
	}
	if entryIdx == -1 {
		return fmt.Errorf("screen %s is not registered", name)
	}
	f.deleteLine(entryIdx)
	f.collapseTableIfEmpty()

	start, end, err = f.importBlock()
	if err != nil {
		return err
	}
	for i := start; i < end; i++ {
		m := importLinePattern.FindStringSubmatch(f.lines[i])
		if m != nil && m[1] == name.Package() && m[1] == m[3] {
			f.deleteLine(i)
			break
		}
	}
	f.collapseImportIfEmpty()
	return nil
}

// Damaged describes inconsistencies between the import block and the
// screens table. A clean file returns nil.
func (f *File) Damaged() []string {
	imports := f.screenImports()
	var problems []string
	seen := make(map[string]bool)
	for _, e := range f.Entries() {
		seen[e.Package] = true
		if e.Import == "" {
			problems = append(problems, fmt.Sprintf("table entry %q has no matching import line", e.Key))
			continue
		}
		if strings.ReplaceAll(e.Key, " ", "") != e.Package {
			problems = append(problems, fmt.Sprintf("table entry %q does not match package %q", e.Key, e.Package))
		}
	}
	for pkg := range imports {
		if !seen[pkg] {
			problems = append(problems, fmt.Sprintf("import %q has no matching table entry", pkg))
		}
	}
	return problems
}

// Render returns the file content.
func (f *File) Render() []byte {
	return []byte(strings.Join(f.lines, "\n"))
}

func (f *File) appendToImportBlock(line string) {
	start, end, _ := f.importBlock()
	if start == end && f.lines[start] == importCollapsed {
		f.expandLine(start, importOpen, line, importClose)
		return
	}
	f.insertLine(end, line)
}

func (f *File) appendToTableBlock(line string) {
	start, end, _ := f.tableBlock()
	if start == end && f.lines[start] == tableCollapsed {
		f.expandLine(start, tableOpen, line, tableClose)
		return
	}
	f.insertLine(end, line)
}

func (f *File) collapseImportIfEmpty() {
	start, end, _ := f.importBlock()
	if start != end {
		return
	}
	if start > 0 && f.lines[start-1] == importOpen {
		f.lines[start-1] = importCollapsed
		f.deleteLine(start)
	}
}

func (f *File) collapseTableIfEmpty() {
	start, end, _ := f.tableBlock()
	if start != end {
		return
	}
	if start > 0 && f.lines[start-1] == tableOpen {
		f.lines[start-1] = tableCollapsed
		f.deleteLine(start)
	}
}

func (f *File) insertLine(at int, line string) {
	f.lines = append(f.lines, "")
	copy(f.lines[at+1:], f.lines[at:])
	f.lines[at] = line
}

func (f *File) deleteLine(at int) {
	f.lines = append(f.lines[:at], f.lines[at+1:]...)
}

func (f *File) expandLine(at int, replacement ...string) {
	expanded := make([]string, 0, len(f.lines)+len(replacement)-1)
	expanded = append(expanded, f.lines[:at]...)
	expanded = append(expanded, replacement...)
	expanded = append(expanded, f.lines[at+1:]...)
	f.lines = expanded
}

// nameFromKey rebuilds the CamelCase screen name from a registry key.
// Keys record the word boundaries, so "user profile screen" maps back to
// "UserProfileScreen".
func nameFromKey(key string) string {
	words := strings.Split(key, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "")
}
