package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lighting/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// shadeStyles holds one gray foreground per brightness level.
var shadeStyles [256]lipgloss.Style

func init() {
	for i := range shadeStyles {
		shadeStyles[i] = lipgloss.NewStyle().Foreground(shadeColor(uint8(i)))
	}
}

// shadeColor maps a brightness to the gray with that value on every channel.
func shadeColor(v uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
}

// cellStyle identifies the style a cell is drawn with.
type cellStyle struct {
	shaded bool
	shade  uint8
	color  core.Color
}

func styleOf(c core.Cell) cellStyle {
	if c.Shaded {
		return cellStyle{shaded: true, shade: c.Shade}
	}
	return cellStyle{color: c.Color}
}

func (cs cellStyle) style() lipgloss.Style {
	if cs.shaded {
		return shadeStyles[cs.shade]
	}
	style, ok := colorStyles[cs.color]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// run is a horizontal stretch of cells sharing one style.
type run struct {
	style cellStyle
	text  string
}

// rowRuns groups consecutive cells of row y with the same style.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	x := 0
	for x < s.Width() {
		start := styleOf(s.GetCell(x, y))

		var text strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if styleOf(cell) != start {
				break
			}
			text.WriteRune(cell.Rune)
			x++
		}
		runs = append(runs, run{style: start, text: text.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			sb.WriteString(r.style.style().Render(r.text))
		}
	}
	return sb.String()
}
