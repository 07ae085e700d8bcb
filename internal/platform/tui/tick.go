// Package tui provides the Bubble Tea integration for the lighting demo.
// It drives the simulation at a fixed tick rate, maps keys to actions and
// turns the shaded screen buffer into styled terminal output.
package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fpsMeter measures the delivered tick rate from tick timestamps.
// The value is refreshed once per second of wall time.
type fpsMeter struct {
	start  time.Time
	frames int
	value  int
}

// observe records one tick delivered at t.
func (f *fpsMeter) observe(t time.Time) {
	if f.start.IsZero() {
		f.start = t
		return
	}
	f.frames++
	elapsed := t.Sub(f.start)
	if elapsed < time.Second {
		return
	}
	f.value = int(math.Round(float64(f.frames) / elapsed.Seconds()))
	f.frames = 0
	f.start = t
}

// FPS returns the last measured rate, 0 before the first full second.
func (f *fpsMeter) FPS() int {
	return f.value
}
