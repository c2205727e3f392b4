package grid

import (
	"github.com/vovakirdan/voodoo-kitchen/internal/core"
)

// Speed limits for walking, in world units per second.
const (
	MinSpeed = 1.0
	MaxSpeed = 10.0
)

// Mover walks an entity in a straight line towards one grid point at a time.
// It replaces a per-frame coroutine: the caller advances it with Step.
type Mover[P Point] struct {
	pos     core.Vec3
	speed   float64
	heading float64
	target  P
	moving  bool

	// OnStart fires when a new walk begins, OnStop when the destination is reached.
	OnStart func(P)
	OnStop  func(P)
}

// NewMover creates a mover standing on start.
func NewMover[P Point](start P, speed float64) *Mover[P] {
	return &Mover[P]{
		pos:    start.Position(),
		speed:  core.ClampF(speed, MinSpeed, MaxSpeed),
		target: start,
	}
}

// MoveTo starts walking towards p and turns to face it.
// Ignored while already walking to p.
func (m *Mover[P]) MoveTo(p P) {
	if m.moving && m.target == p {
		return
	}
	m.target = p
	dst := p.Position()
	if dst == m.pos {
		m.moving = false
		return
	}
	m.heading = core.Heading(m.pos, dst)
	m.moving = true
	if m.OnStart != nil {
		m.OnStart(p)
	}
}

// Step advances the walk by dt seconds. Returns true on the tick of arrival.
func (m *Mover[P]) Step(dt float64) bool {
	if !m.moving {
		return false
	}
	dst := m.target.Position()
	m.pos = core.MoveTowards(m.pos, dst, m.speed*dt)
	if m.pos != dst {
		return false
	}
	m.moving = false
	if m.OnStop != nil {
		m.OnStop(m.target)
	}
	return true
}

// At reports whether the mover stands exactly on p.
func (m *Mover[P]) At(p P) bool {
	return m.pos == p.Position()
}

// Moving reports whether a walk is in progress.
func (m *Mover[P]) Moving() bool {
	return m.moving
}

// Target returns the current (or last) destination.
func (m *Mover[P]) Target() P {
	return m.target
}

// Position returns the current world position.
func (m *Mover[P]) Position() core.Vec3 {
	return m.pos
}

// Heading returns the facing angle in degrees, see core.Heading.
func (m *Mover[P]) Heading() float64 {
	return m.heading
}

// Speed returns the walk speed in units per second.
func (m *Mover[P]) Speed() float64 {
	return m.speed
}

// SetSpeed changes the walk speed, clamped to [MinSpeed, MaxSpeed].
func (m *Mover[P]) SetSpeed(v float64) {
	m.speed = core.ClampF(v, MinSpeed, MaxSpeed)
}

// Teleport places the mover on p without walking.
func (m *Mover[P]) Teleport(p P) {
	m.pos = p.Position()
	m.target = p
	m.moving = false
}
