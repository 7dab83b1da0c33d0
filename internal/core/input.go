package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents like "move cursor up" rather than raw keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, W, K - cursor up, or swap up with a selection
	ActionDown            // Down arrow, S, J
	ActionLeft            // Left arrow, A, H
	ActionRight           // Right arrow, D, L
	ActionSelect          // Space, Enter - pick up or drop the tile under the cursor
	ActionActivate        // X - fire the booster under the cursor
	ActionHint            // ? - show a playable move
	ActionBack            // B, Escape - cancel selection, or go back to menu
	ActionRestart         // R key - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionActivate:
		return "Activate"
	case ActionHint:
		return "Hint"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) step for a directional action.
// ok is false for non-directional actions.
func (a Action) Delta() (dr, dc int, ok bool) {
	switch a {
	case ActionUp:
		return -1, 0, true
	case ActionDown:
		return 1, 0, true
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// InputFrame holds the actions triggered during one simulation tick, in the
// order they arrived. Order matters for a turn-based board: "select, right"
// is a swap, "right, select" is not.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return InputFrame{actions: out}
}
