// Package timer provides a tick-driven count-up / count-down timer with
// one-shot handlers, used for the shift clock, cook times and customer patience.
package timer

// Durations holds the two shift lengths the player can toggle between.
type Durations struct {
	Main  float64 // seconds
	Short float64 // seconds
}

// DefaultDurations returns the stock 180s / 15s pair.
func DefaultDurations() Durations {
	return Durations{Main: 180, Short: 15}
}

// Options configures a Timer.
type Options struct {
	CountUp   bool    // Count up towards Threshold instead of down to zero
	Start     float64 // Starting value when counting down; 0 means Durations.Main
	Threshold float64 // Value that fires OnThreshold when counting up
	Running   bool    // Start counting immediately
	Durations Durations

	OnDone      func() // Count-down reached zero
	OnThreshold func() // Count-up passed Threshold
	OnReset     func()
}

// Timer counts simulated seconds. Handlers fire once per run; Reset re-arms them.
type Timer struct {
	countUp   bool
	canCount  bool
	start     float64
	threshold float64
	current   float64
	fired     bool
	short     bool
	durations Durations

	onDone      func()
	onThreshold func()
	onReset     func()
}

// New creates a timer. A count-down timer starts at its starting value,
// a count-up timer starts at zero.
func New(opts Options) *Timer {
	d := opts.Durations
	if d.Main == 0 && d.Short == 0 {
		d = DefaultDurations()
	}

	t := &Timer{
		countUp:     opts.CountUp,
		canCount:    opts.Running,
		start:       opts.Start,
		threshold:   opts.Threshold,
		durations:   d,
		onDone:      opts.OnDone,
		onThreshold: opts.OnThreshold,
		onReset:     opts.OnReset,
	}
	if t.start == 0 && !t.countUp {
		t.start = d.Main
	}
	if !t.countUp {
		t.current = t.start
	}
	return t
}

// Step advances the timer by dt seconds.
// A count-down timer stops itself once it reaches zero.
func (t *Timer) Step(dt float64) {
	if !t.canCount {
		return
	}

	if t.countUp {
		t.current += dt
		if !t.fired && t.current > t.threshold {
			t.fired = true
			if t.onThreshold != nil {
				t.onThreshold()
			}
		}
		return
	}

	t.current -= dt
	if t.current <= 0 {
		t.current = 0
		t.canCount = false
		if !t.fired {
			t.fired = true
			if t.onDone != nil {
				t.onDone()
			}
		}
	}
}

// Reset puts the timer back to its starting value and re-arms its handlers.
func (t *Timer) Reset() {
	if t.onReset != nil {
		t.onReset()
	}
	t.fired = false
	if t.countUp {
		t.current = 0
	} else {
		t.current = t.start
	}
}

// SetLength sets the current value and the value used by later resets.
func (t *Timer) SetLength(v float64) {
	t.start = v
	t.current = v
	t.fired = false
}

// SetThreshold changes the count-up threshold.
func (t *Timer) SetThreshold(v float64) {
	t.threshold = v
}

// ToggleLengthPreference switches between the main and short durations
// and returns the new length.
func (t *Timer) ToggleLengthPreference() float64 {
	if t.short {
		t.SetLength(t.durations.Main)
	} else {
		t.SetLength(t.durations.Short)
	}
	t.short = !t.short
	return t.current
}

// IsShort reports whether the short duration is selected.
func (t *Timer) IsShort() bool {
	return t.short
}

// SetCanCount starts or pauses the timer.
func (t *Timer) SetCanCount(v bool) {
	t.canCount = v
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.canCount
}

// Fired reports whether the done/threshold handler has fired since the last reset.
func (t *Timer) Fired() bool {
	return t.fired
}

// Current returns the current value in seconds.
func (t *Timer) Current() float64 {
	return t.current
}

// Percentage returns progress in [0, 1]: elapsed/start when counting down,
// current/threshold when counting up.
func (t *Timer) Percentage() float64 {
	var p float64
	switch {
	case t.countUp && t.threshold > 0:
		p = t.current / t.threshold
	case !t.countUp && t.start > 0:
		p = 1 - t.current/t.start
	default:
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
