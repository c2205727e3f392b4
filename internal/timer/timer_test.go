package timer

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCountDownFiresOnce(t *testing.T) {
	done := 0
	tm := New(Options{Start: 1, Running: true, OnDone: func() { done++ }})

	for i := 0; i < 30; i++ {
		tm.Step(0.1)
	}

	if done != 1 {
		t.Fatalf("OnDone fired %d times, expected 1", done)
	}
	if tm.Running() {
		t.Error("count-down timer should stop at zero")
	}
	if tm.Current() != 0 {
		t.Errorf("Current() = %f, expected 0", tm.Current())
	}
	if !near(tm.Percentage(), 1) {
		t.Errorf("Percentage() = %f, expected 1", tm.Percentage())
	}
}

func TestCountUpThreshold(t *testing.T) {
	passed := 0
	tm := New(Options{CountUp: true, Threshold: 0.5, Running: true, OnThreshold: func() { passed++ }})

	tm.Step(0.25)
	if passed != 0 {
		t.Fatal("threshold fired too early")
	}
	if !near(tm.Percentage(), 0.5) {
		t.Errorf("Percentage() = %f, expected 0.5", tm.Percentage())
	}

	tm.Step(0.25) // exactly at threshold does not count as passed
	if passed != 0 {
		t.Fatal("threshold should fire only once strictly passed")
	}

	tm.Step(0.01)
	tm.Step(1)
	if passed != 1 {
		t.Fatalf("OnThreshold fired %d times, expected 1", passed)
	}
	if !tm.Running() {
		t.Error("count-up timer keeps counting after threshold")
	}
}

func TestPausedTimerDoesNotCount(t *testing.T) {
	tm := New(Options{Start: 10})
	tm.Step(5)
	if tm.Current() != 10 {
		t.Errorf("paused timer moved to %f", tm.Current())
	}
	tm.SetCanCount(true)
	tm.Step(5)
	if tm.Current() != 5 {
		t.Errorf("Current() = %f, expected 5", tm.Current())
	}
}

func TestDefaultStartUsesMainDuration(t *testing.T) {
	tm := New(Options{})
	if tm.Current() != 180 {
		t.Errorf("Current() = %f, expected 180", tm.Current())
	}
}

func TestResetRearms(t *testing.T) {
	resets, done := 0, 0
	tm := New(Options{
		Start:   1,
		Running: true,
		OnDone:  func() { done++ },
		OnReset: func() { resets++ },
	})

	tm.Step(2)
	tm.Reset()
	if resets != 1 {
		t.Errorf("OnReset fired %d times", resets)
	}
	if tm.Current() != 1 || tm.Fired() {
		t.Error("Reset should restore start value and re-arm")
	}

	tm.SetCanCount(true)
	tm.Step(2)
	if done != 2 {
		t.Errorf("OnDone fired %d times after reset, expected 2", done)
	}
}

func TestToggleLengthPreference(t *testing.T) {
	tm := New(Options{Durations: Durations{Main: 120, Short: 20}})

	if got := tm.ToggleLengthPreference(); got != 20 || !tm.IsShort() {
		t.Errorf("first toggle = %f, expected short 20", got)
	}
	if got := tm.ToggleLengthPreference(); got != 120 || tm.IsShort() {
		t.Errorf("second toggle = %f, expected main 120", got)
	}

	tm.Step(1) // not running
	tm.SetCanCount(true)
	tm.Step(20)
	tm.Reset()
	if tm.Current() != 120 {
		t.Errorf("Reset after toggle = %f, expected 120", tm.Current())
	}
}
