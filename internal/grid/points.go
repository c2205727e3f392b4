// Package grid defines the fixed walk points of the kitchen and the
// straight-line movement between them.
package grid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
)

// Point is a named world coordinate used as a movement destination.
type Point interface {
	comparable
	fmt.Stringer
	Position() core.Vec3
}

// PlayerPoint is a destination the cook can walk to.
type PlayerPoint int

const (
	CombineArea PlayerPoint = iota
	Blender
	Cupcake
	Seaweed
	Fish
	Taco
	Bread
	Coffee
	Grill
	WaitingArea
)

// playerPoints holds the world coordinates of each PlayerPoint.
var playerPoints = [...]struct {
	name string
	pos  core.Vec3
}{
	CombineArea: {"combine_area", core.V3(-21, 1, 14)},
	Blender:     {"blender", core.V3(-27, 1, 14)},
	Cupcake:     {"cupcake", core.V3(-28, 1, 16)},
	Seaweed:     {"seaweed", core.V3(-28, 1, 23.55)},
	Fish:        {"fish", core.V3(-28, 1, 28)},
	Taco:        {"taco", core.V3(-27, 1, 33)},
	Bread:       {"bread", core.V3(-23, 1, 33)},
	Coffee:      {"coffee", core.V3(-18, 1, 33)},
	Grill:       {"grill", core.V3(-15.5, 1, 27)},
	WaitingArea: {"waiting_area", core.V3(-15.5, 1, 21)},
}

// PlayerPointCount is the number of player points.
const PlayerPointCount = len(playerPoints)

// Position returns the world coordinate of the point.
// Unknown values map to the origin.
func (p PlayerPoint) Position() core.Vec3 {
	if p < 0 || int(p) >= PlayerPointCount {
		return core.Vec3{}
	}
	return playerPoints[p].pos
}

// String returns the snake_case name of the point.
func (p PlayerPoint) String() string {
	if p < 0 || int(p) >= PlayerPointCount {
		return "unknown"
	}
	return playerPoints[p].name
}

// ParsePlayerPoint resolves a point by name.
func ParsePlayerPoint(name string) (PlayerPoint, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, p := range playerPoints {
		if p.name == name {
			return PlayerPoint(i), nil
		}
	}
	return 0, fmt.Errorf("grid: unknown player point %q", name)
}

// PlayerPoints returns all player points in declaration order.
func PlayerPoints() []PlayerPoint {
	out := make([]PlayerPoint, PlayerPointCount)
	for i := range out {
		out[i] = PlayerPoint(i)
	}
	return out
}

// NpcPoint is a destination customers walk between.
type NpcPoint int

const (
	NpcStart NpcPoint = iota
	NpcCounter
)

var npcPoints = [...]struct {
	name string
	pos  core.Vec3
}{
	NpcStart:   {"npc_starting_point", core.V3(0, 1, -15)},
	NpcCounter: {"npc_counter_point", core.V3(0, 1, -3)},
}

// NpcPointCount is the number of NPC points.
const NpcPointCount = len(npcPoints)

// Position returns the world coordinate of the point.
func (p NpcPoint) Position() core.Vec3 {
	if p < 0 || int(p) >= NpcPointCount {
		return core.Vec3{}
	}
	return npcPoints[p].pos
}

// String returns the snake_case name of the point.
func (p NpcPoint) String() string {
	if p < 0 || int(p) >= NpcPointCount {
		return "unknown"
	}
	return npcPoints[p].name
}

// Next returns the following NPC point, wrapping around.
func (p NpcPoint) Next() NpcPoint {
	return NpcPoint((int(p) + 1) % NpcPointCount)
}
