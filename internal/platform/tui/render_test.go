package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lighting/internal/core"
)

func TestShadeColor(t *testing.T) {
	tests := []struct {
		shade    uint8
		expected lipgloss.Color
	}{
		{0, "#000000"},
		{255, "#ffffff"},
		{239, "#efefef"},
		{128, "#808080"},
		{16, "#101010"},
	}

	for _, tc := range tests {
		if got := shadeColor(tc.shade); got != tc.expected {
			t.Errorf("shadeColor(%d) = %q, expected %q", tc.shade, got, tc.expected)
		}
	}
}

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.SetShaded(0, 0, '#', 200)
	s.SetShaded(1, 0, '#', 200)
	s.SetShaded(2, 0, '#', 100)
	s.SetColor(3, 0, '@', core.ColorBrightYellow)
	// cells 4..7 stay blank

	runs := rowRuns(s, 0)
	expected := []run{
		{cellStyle{shaded: true, shade: 200}, "##"},
		{cellStyle{shaded: true, shade: 100}, "#"},
		{cellStyle{color: core.ColorBrightYellow}, "@"},
		{cellStyle{color: core.ColorDefault}, "    "},
	}

	if len(runs) != len(expected) {
		t.Fatalf("got %d runs, expected %d: %+v", len(runs), len(expected), runs)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "top")
	s.SetShaded(2, 1, '#', 255)
	s.DrawTextColor(1, 2, "end", core.ColorGray)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("expected 2 line breaks, got %d", lines)
	}
	for _, text := range []string{"top", "#", "end"} {
		if !strings.Contains(out, text) {
			t.Errorf("output missing %q", text)
		}
	}
}
