package core

// Action represents a semantic game action, abstracted from physical key presses.
// The six shift actions follow the hexagon's edges, named like a compass.
type Action int

const (
	ActionNone      Action = iota
	ActionNorthWest        // Q - shift up-left
	ActionNorth            // W, Up arrow - shift up
	ActionNorthEast        // E - shift up-right
	ActionSouthWest        // A - shift down-left
	ActionSouth            // S, Down arrow - shift down
	ActionSouthEast        // D - shift down-right
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - restart game after game over
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionCoords           // C - toggle cube coordinate display
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorthWest:
		return "NorthWest"
	case ActionNorth:
		return "North"
	case ActionNorthEast:
		return "NorthEast"
	case ActionSouthWest:
		return "SouthWest"
	case ActionSouth:
		return "South"
	case ActionSouthEast:
		return "SouthEast"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionCoords:
		return "Coords"
	default:
		return "Unknown"
	}
}

// IsShift reports whether the action is one of the six board shifts.
func (a Action) IsShift() bool {
	return a >= ActionNorthWest && a <= ActionSouthEast
}

// ShiftActions lists the six shift actions in keyboard order (Q W E A S D).
func ShiftActions() []Action {
	return []Action{
		ActionNorthWest, ActionNorth, ActionNorthEast,
		ActionSouthWest, ActionSouth, ActionSouthEast,
	}
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Shift returns the first shift action set in this frame, in keyboard order.
// Only one shift is applied per tick.
func (f InputFrame) Shift() (Action, bool) {
	for _, a := range ShiftActions() {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
