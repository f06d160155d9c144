package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - step or face up
	ActionDown            // S, Down arrow - step or face down
	ActionLeft            // A, Left arrow - step or face left
	ActionRight           // D, Right arrow - step or face right
	ActionInteract        // E, Enter - interact with a gate / confirm a trade
	ActionStore           // T - open or close the trade store
	ActionCycle           // Tab - cycle reward choice / store target type
	ActionBack            // B, Escape - dismiss overlay, back to menu
	ActionRestart         // R - restart after the run ends
	ActionQuit            // Q, Ctrl+C - exit
)

// Card selection actions. The digit keys 1-9 and 0 toggle the card at the
// matching hand position (0 is the tenth slot).
const (
	ActionCard1 Action = iota + 100
	ActionCard2
	ActionCard3
	ActionCard4
	ActionCard5
	ActionCard6
	ActionCard7
	ActionCard8
	ActionCard9
	ActionCard10
)

// CardIndex returns the hand position a card action addresses.
func CardIndex(a Action) (int, bool) {
	if a < ActionCard1 || a > ActionCard10 {
		return 0, false
	}
	return int(a - ActionCard1), true
}

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
	case ActionInteract:
		return "Interact"
	case ActionStore:
		return "Store"
	case ActionCycle:
		return "Cycle"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	}
	if i, ok := CardIndex(a); ok {
		digits := "1234567890"
		return "Card" + string(digits[i])
	}
	return "Unknown"
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// CardToggles returns the hand positions toggled this frame, in order.
func (f InputFrame) CardToggles() []int {
	var out []int
	for a := ActionCard1; a <= ActionCard10; a++ {
		if f.Has(a) {
			i, _ := CardIndex(a)
			out = append(out, i)
		}
	}
	return out
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
