package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // A, Left arrow - rotate aim counter-clockwise
	ActionAimRight         // D, Right arrow - rotate aim clockwise
	ActionUltimate         // Space - trigger the ultimate when charged
	ActionChoice1          // 1 - first upgrade offer
	ActionChoice2          // 2 - second upgrade offer
	ActionChoice3          // 3 - third upgrade offer
	ActionConfirm          // Enter - confirm a prompt
	ActionRestart          // R key - restart after game over
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionUltimate:
		return "Ultimate"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
	case ActionConfirm:
		return "Confirm"
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

// Pointer is the last known pointer position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is set when the pointer moved since the previous frame.
	Pointer Pointer
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

// PointTo records a pointer position for this frame.
func (f *InputFrame) PointTo(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}
