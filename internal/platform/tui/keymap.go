package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyland/internal/core"
)

// KeyMap holds the game's key bindings. It also feeds the help view.
type KeyMap struct {
	Engage     key.Binding
	Pause      key.Binding
	Scoreboard key.Binding
	Restart    key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Engage, k.Pause, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Engage, k.Pause},
		{k.Scoreboard, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Engage: key.NewBinding(
			key.WithKeys(" ", "z", "x", "enter"),
			key.WithHelp("space/z/x", "open mouth / jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new session"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InputMapper turns terminal events into game actions.
// Terminals report key presses but not releases, so an engage key
// toggles the button; mouse press and release map directly.
// While locked, button events are swallowed and the state is kept.
type InputMapper struct {
	keys    KeyMap
	engaged bool
	locked  bool
}

// NewInputMapper creates a mapper with the given bindings.
func NewInputMapper(keys KeyMap) *InputMapper {
	return &InputMapper{keys: keys}
}

// Engaged reports the current button state.
func (im *InputMapper) Engaged() bool {
	return im.engaged
}

// Reset forgets the button state.
func (im *InputMapper) Reset() {
	im.engaged = false
}

// Restore sets the button state without producing an action.
func (im *InputMapper) Restore(engaged bool) {
	im.engaged = engaged
}

// Lock stops (true) or resumes (false) button handling. Set it while the
// game would drop a button change, so the toggle stays in step.
func (im *InputMapper) Lock(locked bool) {
	im.locked = locked
}

// MapKey translates a key message to an action.
func (im *InputMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, im.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, im.keys.Engage):
		if im.locked {
			return core.ActionNone
		}
		return im.set(!im.engaged)
	case key.Matches(msg, im.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, im.keys.Scoreboard):
		return core.ActionScoreboard
	case key.Matches(msg, im.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to an action. Only the left button
// counts; motion is ignored.
func (im *InputMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Button != tea.MouseButtonLeft || im.locked {
		return core.ActionNone
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return im.set(true)
	case tea.MouseActionRelease:
		return im.set(false)
	}
	return core.ActionNone
}

func (im *InputMapper) set(pressed bool) core.Action {
	im.engaged = pressed
	if pressed {
		return core.ActionEngage
	}
	return core.ActionRelease
}
