package cli

import (
	"strings"
	"testing"
)

func TestResolveGoVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"two part", "1.24", "1.24", false},
		{"three part", "1.22.3", "1.22.3", false},
		{"v prefix stripped", "v1.25.1", "1.25.1", false},
		{"not a go version", "2.0", "", true},
		{"garbage", "latest", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveGoVersion(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveGoVersion(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveGoVersion(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("resolveGoVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveFyneVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"canonical", "2.6.1", "2.6.1", false},
		{"two part expands", "2.5", "2.5.0", false},
		{"v prefix stripped", "v2.4.3", "2.4.3", false},
		{"v1 era rejected", "1.9.0", "", true},
		{"garbage", "stable", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFyneVersion(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveFyneVersion(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveFyneVersion(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("resolveFyneVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveScreensDefault(t *testing.T) {
	screens, responsive, err := resolveScreens(nil, nil)
	if err != nil {
		t.Fatalf("resolveScreens: %v", err)
	}
	if len(screens) != 1 || screens[0].String() != defaultScreenName {
		t.Fatalf("screens = %v, want [%s]", screens, defaultScreenName)
	}
	if len(responsive) != 0 {
		t.Errorf("responsive = %v, want empty", responsive)
	}
}

func TestResolveScreensOrderAndResponsive(t *testing.T) {
	screens, responsive, err := resolveScreens(
		[]string{"HomeScreen", "SettingsScreen", "AboutScreen"},
		[]string{"SettingsScreen"},
	)
	if err != nil {
		t.Fatalf("resolveScreens: %v", err)
	}

	var names []string
	for _, s := range screens {
		names = append(names, s.String())
	}
	if strings.Join(names, ",") != "HomeScreen,SettingsScreen,AboutScreen" {
		t.Errorf("screen order = %v", names)
	}

	if !responsive["SettingsScreen"] {
		t.Error("SettingsScreen should be marked responsive")
	}
	if responsive["HomeScreen"] || responsive["AboutScreen"] {
		t.Errorf("unexpected responsive marks: %v", responsive)
	}
}

func TestResolveScreensRejections(t *testing.T) {
	tests := []struct {
		name       string
		screens    []string
		responsive []string
		errPart    string
	}{
		{"invalid name", []string{"home"}, nil, "invalid --name-screen"},
		{"duplicate name", []string{"HomeScreen", "HomeScreen"}, nil, "more than once"},
		{"package collision", []string{"HomeScreen", "HOMEScreen"}, nil, "share the view package"},
		{"responsive not listed", []string{"HomeScreen"}, []string{"SettingsScreen"}, "does not match any --name-screen"},
		{"responsive invalid", []string{"HomeScreen"}, []string{"settings"}, "invalid --use-responsive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolveScreens(tt.screens, tt.responsive)
			if err == nil {
				t.Fatalf("resolveScreens(%v, %v) succeeded, want error", tt.screens, tt.responsive)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	for _, name := range []string{"MyApp", "my-app", "app2"} {
		if err := validateProjectName(name); err != nil {
			t.Errorf("validateProjectName(%q): %v", name, err)
		}
	}
	for _, name := range []string{"", "My App", "a/b", `a\b`} {
		if err := validateProjectName(name); err == nil {
			t.Errorf("validateProjectName(%q) succeeded, want error", name)
		}
	}
}

func TestValidateModulePath(t *testing.T) {
	for _, module := range []string{"example.com/myapp", "github.com/alice/my-app", "myapp"} {
		if err := validateModulePath(module); err != nil {
			t.Errorf("validateModulePath(%q): %v", module, err)
		}
	}
	for _, module := range []string{"", "has space/mod", "/leading", "trailing/"} {
		if err := validateModulePath(module); err == nil {
			t.Errorf("validateModulePath(%q) succeeded, want error", module)
		}
	}
}
