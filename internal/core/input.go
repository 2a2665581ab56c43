package core

// Action is a semantic input intent, decoupled from the physical device
// that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionEngage            // button or mouse pressed: start a jump charge
	ActionRelease           // button or mouse released: cut the charge short
	ActionPause             // P, Escape
	ActionScoreboard        // Tab
	ActionRestart           // R
	ActionQuit              // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionEngage:     "Engage",
	ActionRelease:    "Release",
	ActionPause:      "Pause",
	ActionScoreboard: "Scoreboard",
	ActionRestart:    "Restart",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Unset withdraws an action queued for this frame.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Engaged translates the frame into a button transition.
// The second result is false when the frame carries no transition.
// A release wins over an engage delivered in the same frame.
func (f InputFrame) Engaged() (pressed bool, ok bool) {
	switch {
	case f.Has(ActionRelease):
		return false, true
	case f.Has(ActionEngage):
		return true, true
	default:
		return false, false
	}
}
