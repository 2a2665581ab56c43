// Package tui runs a registered game inside a Bubble Tea program.
// It owns the frame clock, input mapping, the run log overlay and
// live tuning reloads.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyland/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ConfigReloadedMsg carries tuning re-read from disk.
type ConfigReloadedMsg struct {
	Config config.SkylandConfig
}

// ConfigErrorMsg reports a tuning file that failed to load.
type ConfigErrorMsg struct {
	Err error
}

// tickCmd returns a command that sends one TickMsg after a frame interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// forwardWatcher relays watcher events into the program until both
// channels are closed.
func forwardWatcher(w *config.Watcher, send func(tea.Msg)) {
	configs, errs := w.Configs, w.Errors
	for configs != nil || errs != nil {
		select {
		case cfg, ok := <-configs:
			if !ok {
				configs = nil
				continue
			}
			send(ConfigReloadedMsg{Config: cfg})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			send(ConfigErrorMsg{Err: err})
		}
	}
}
