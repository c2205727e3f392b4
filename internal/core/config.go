package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the simulated seconds covered by one tick.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// ShiftStats summarizes a finished (or running) kitchen shift.
type ShiftStats struct {
	Served     int     // Dishes delivered to the right order
	Wrong      int     // Dishes delivered to the wrong order
	Walkouts   int     // Customers that ran out of patience
	Customers  int     // Customers that reached the counter
	Dishes     int     // Dishes assembled
	Seconds    float64 // Simulated shift time
	Difficulty string  // Difficulty preset, empty for the config default
}

// Event is a notable thing that happened during a tick.
// The platform reacts to events (terminal bell, stats) without peeking into game state.
type Event int

const (
	EventNone          Event = iota
	EventDishMade            // Two ingredients became a dish
	EventOrderCorrect        // Customer received the dish they wanted
	EventOrderWrong          // Customer received the wrong dish
	EventOrderComplete       // Customer's whole order was served
	EventWalkout             // Customer ran out of patience
	EventShiftOver           // Shift timer hit zero
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventDishMade:
		return "dish_made"
	case EventOrderCorrect:
		return "order_correct"
	case EventOrderWrong:
		return "order_wrong"
	case EventOrderComplete:
		return "order_complete"
	case EventWalkout:
		return "walkout"
	case EventShiftOver:
		return "shift_over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
