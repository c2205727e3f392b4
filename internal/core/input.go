package core

import "strconv"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - previous station
	ActionRight           // D, Right arrow - next station
	ActionUp              // W, Up arrow - menu up
	ActionDown            // S, Down arrow - menu down
	ActionInteract        // Enter, Space - walk to the selected station and use it
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
	ActionSlot1           // 1..9, 0 - select a station directly
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
	ActionSlot10
)

// SlotCount is the number of direct-select station keys.
const SlotCount = 10

// SlotAction returns the action for a 0-based slot index.
// Returns ActionNone for indexes outside [0, SlotCount).
func SlotAction(i int) Action {
	if i < 0 || i >= SlotCount {
		return ActionNone
	}
	return ActionSlot1 + Action(i)
}

// Slot returns the 0-based slot index of a slot action, or -1.
func (a Action) Slot() int {
	if a < ActionSlot1 || a > ActionSlot10 {
		return -1
	}
	return int(a - ActionSlot1)
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if s := a.Slot(); s >= 0 {
		return "Slot" + strconv.Itoa(s+1)
	}
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionInteract:
		return "Interact"
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

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame.
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

// SelectedSlot returns the lowest slot pressed this frame, or -1.
func (f InputFrame) SelectedSlot() int {
	for i := range SlotCount {
		if f.Has(SlotAction(i)) {
			return i
		}
	}
	return -1
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
