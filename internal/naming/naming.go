// Package naming parses and derives the identifier forms of a screen name.
//
// A screen name is CamelCase with at least two humps and ends with "Screen"
// (HomeScreen, UserProfileScreen). Every other identifier the generator
// touches derives from the humps: the snake_case stub file name, the view
// package name, and the registry key used in the screens table.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

var humpPattern = regexp.MustCompile(`[A-Z][^A-Z]*`)

// ScreenName is a validated screen name plus its derived forms.
type ScreenName struct {
	name  string
	humps []string
}

// Parse validates name and returns it with derivations ready.
func Parse(name string) (ScreenName, error) {
	if !strings.HasSuffix(name, "Screen") {
		return ScreenName{}, fmt.Errorf("invalid screen name %q: must end with \"Screen\" (e.g., MyFirstScreen)", name)
	}
	humps := humpPattern.FindAllString(name, -1)
	if len(humps) < 2 || strings.Join(humps, "") != name {
		return ScreenName{}, fmt.Errorf("invalid screen name %q: must be CamelCase with at least two words (e.g., MyFirstScreen)", name)
	}
	for _, h := range humps {
		for _, r := range h[1:] {
			if !isLowerAlnum(r) {
				return ScreenName{}, fmt.Errorf("invalid screen name %q: only letters and digits are allowed", name)
			}
		}
	}
	return ScreenName{name: name, humps: humps}, nil
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// String returns the CamelCase form, e.g. "HomeScreen".
func (s ScreenName) String() string { return s.name }

// Snake returns the stub file base name, e.g. "home_screen".
func (s ScreenName) Snake() string {
	return strings.ToLower(strings.Join(s.humps, "_"))
}

// Package returns the view package name, e.g. "homescreen".
func (s ScreenName) Package() string {
	return strings.ToLower(strings.Join(s.humps, ""))
}

// Key returns the registry key, e.g. "home screen".
func (s ScreenName) Key() string {
	return strings.ToLower(strings.Join(s.humps, " "))
}

// IsZero reports whether s is the zero value rather than a parsed name.
func (s ScreenName) IsZero() bool { return s.name == "" }
