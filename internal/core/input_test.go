package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionInteract)

	if !f.Has(ActionInteract) {
		t.Error("expected Interact to be set")
	}
	if f.Has(ActionPause) {
		t.Error("Pause should not be set")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionInteract) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionInteract) {
		t.Error("Clone should be independent of its source")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set should allocate on a zero frame")
	}
}

func TestSlots(t *testing.T) {
	for i := range SlotCount {
		a := SlotAction(i)
		if a.Slot() != i {
			t.Errorf("SlotAction(%d).Slot() = %d", i, a.Slot())
		}
	}

	if SlotAction(-1) != ActionNone || SlotAction(SlotCount) != ActionNone {
		t.Error("out of range slot should be ActionNone")
	}
	if ActionPause.Slot() != -1 {
		t.Error("non-slot action should report -1")
	}
	if ActionSlot10.String() != "Slot10" {
		t.Errorf("ActionSlot10.String() = %q", ActionSlot10.String())
	}

	f := NewInputFrame()
	f.Set(ActionSlot7)
	f.Set(ActionSlot3)
	if f.SelectedSlot() != 2 {
		t.Errorf("SelectedSlot() = %d, expected 2", f.SelectedSlot())
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventDishMade, EventOrderCorrect}}
	if !r.Has(EventOrderCorrect) || r.Has(EventWalkout) {
		t.Error("StepResult.Has mismatch")
	}
	if EventWalkout.String() != "walkout" {
		t.Errorf("EventWalkout.String() = %q", EventWalkout.String())
	}
}

func TestDeltaTime(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).DeltaTime(); got != 0.02 {
		t.Errorf("DeltaTime() = %f", got)
	}
	if got := (RuntimeConfig{}).DeltaTime(); got != 1.0/60.0 {
		t.Errorf("DeltaTime() default = %f", got)
	}
}
