package ui

import (
	"strings"
	"testing"
)

func TestDetectThemeFromColorFgBg(t *testing.T) {
	cases := []struct {
		name     string
		colorEnv string
		wantDark bool
	}{
		{"dark background", "15;0", true},
		{"dark grey background", "15;8", true},
		{"light background", "0;15", false},
		{"unparseable", "banana", false},
		{"unset", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tc.colorEnv)
			t.Setenv("DECKFORGE_DARK_MODE", "")
			if got := DetectTheme(); got.IsDark != tc.wantDark {
				t.Errorf("IsDark=%v, want %v", got.IsDark, tc.wantDark)
			}
		})
	}
}

func TestDetectThemeEnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("DECKFORGE_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("DECKFORGE_DARK_MODE=1 should select the dark theme")
	}
}

func TestThemesCarryTheirFlag(t *testing.T) {
	if LightTheme().IsDark {
		t.Error("Light theme flagged dark")
	}
	if !DarkTheme().IsDark {
		t.Error("Dark theme not flagged dark")
	}
}

func TestNewStylesUsesThemeColors(t *testing.T) {
	s := NewStyles(DarkTheme())
	if s.Theme.Accent != DarkAccent {
		t.Errorf("Styles kept the wrong theme: %v", s.Theme.Accent)
	}
	if s.Prompt.GetForeground() != DarkAccent {
		t.Error("Prompt should use the accent color")
	}
}

func TestLogoRendersBanner(t *testing.T) {
	got := Logo(NewStyles(LightTheme()))
	if !strings.Contains(got, `|___/`) {
		t.Errorf("Banner art missing from logo:\n%s", got)
	}
	if len(strings.Split(got, "\n")) < 4 {
		t.Error("Expected a multi-line banner")
	}
}

func TestRenderDividerWidth(t *testing.T) {
	s := NewStyles(LightTheme())
	got := s.RenderDivider(4)
	if got == "" {
		t.Fatal("Empty divider")
	}
}
