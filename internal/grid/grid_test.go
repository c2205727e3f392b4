package grid

import (
	"math"
	"testing"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
)

func TestPlayerPointRoundTrip(t *testing.T) {
	for _, p := range PlayerPoints() {
		got, err := ParsePlayerPoint(p.String())
		if err != nil {
			t.Fatalf("ParsePlayerPoint(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePlayerPoint(%q) = %v, expected %v", p.String(), got, p)
		}
	}

	if _, err := ParsePlayerPoint("pantry"); err == nil {
		t.Error("expected error for unknown point")
	}
}

func TestPointCoordinates(t *testing.T) {
	if Grill.Position() != core.V3(-15.5, 1, 27) {
		t.Errorf("Grill at %+v", Grill.Position())
	}
	if NpcCounter.Position() != core.V3(0, 1, -3) {
		t.Errorf("NpcCounter at %+v", NpcCounter.Position())
	}
	if PlayerPoint(99).Position() != (core.Vec3{}) {
		t.Error("unknown point should map to origin")
	}
}

func TestNpcPointNextWraps(t *testing.T) {
	if NpcStart.Next() != NpcCounter {
		t.Error("start should lead to counter")
	}
	if NpcCounter.Next() != NpcStart {
		t.Error("counter should wrap to start")
	}
}

func TestMoverWalksAndStops(t *testing.T) {
	m := NewMover(CombineArea, 5)
	stops := 0
	m.OnStop = func(p PlayerPoint) {
		stops++
		if p != Blender {
			t.Errorf("stopped at %v, expected blender", p)
		}
	}

	m.MoveTo(Blender) // 6 units west
	if !m.Moving() {
		t.Fatal("expected mover to be moving")
	}
	if math.Abs(m.Heading()-270) > 1e-9 {
		t.Errorf("Heading() = %f, expected 270 (facing -X)", m.Heading())
	}

	arrived := false
	for i := 0; i < 200 && !arrived; i++ {
		arrived = m.Step(0.1)
	}

	if !arrived || !m.At(Blender) {
		t.Fatalf("mover did not arrive, at %+v", m.Position())
	}
	if stops != 1 {
		t.Errorf("OnStop fired %d times", stops)
	}
	if m.Step(0.1) {
		t.Error("Step after arrival should not report arrival again")
	}
}

func TestMoverSpeedPerTick(t *testing.T) {
	m := NewMover(CombineArea, 2)
	m.MoveTo(Blender)
	m.Step(0.5)

	want := core.V3(-22, 1, 14)
	if core.Distance(m.Position(), want) > 1e-9 {
		t.Errorf("Position() = %+v, expected %+v", m.Position(), want)
	}
}

func TestMoverClampsSpeed(t *testing.T) {
	if NewMover(Fish, 50).Speed() != MaxSpeed {
		t.Error("speed should clamp to MaxSpeed")
	}
	m := NewMover(Fish, 0)
	if m.Speed() != MinSpeed {
		t.Error("speed should clamp to MinSpeed")
	}
	m.SetSpeed(4)
	if m.Speed() != 4 {
		t.Errorf("SetSpeed(4) -> %f", m.Speed())
	}
}

func TestMoveToCurrentPointIsNoop(t *testing.T) {
	m := NewMover(Grill, 5)
	starts := 0
	m.OnStart = func(PlayerPoint) { starts++ }

	m.MoveTo(Grill)
	if m.Moving() || starts != 0 {
		t.Error("moving to the current point should not start a walk")
	}

	m.MoveTo(WaitingArea)
	m.MoveTo(WaitingArea)
	if starts != 1 {
		t.Errorf("OnStart fired %d times, expected 1", starts)
	}
}

func TestNpcMover(t *testing.T) {
	m := NewMover(NpcStart, 10)
	m.MoveTo(NpcStart.Next())
	for i := 0; i < 100 && m.Moving(); i++ {
		m.Step(0.1)
	}
	if !m.At(NpcCounter) {
		t.Errorf("customer should reach the counter, at %+v", m.Position())
	}
	if math.Abs(m.Heading()) > 1e-9 {
		t.Errorf("Heading() = %f, expected 0 (facing +Z)", m.Heading())
	}
}
