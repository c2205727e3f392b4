package npc

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
)

// ErrUnknownAnimation is returned for animation names a customer cannot play.
var ErrUnknownAnimation = errors.New("npc: unknown animation")

// Animation is the customer's current pose.
type Animation int

const (
	Idle Animation = iota
	Walk
	Happy
	Angry
)

var animationNames = map[string]Animation{
	"Idle":  Idle,
	"Walk":  Walk,
	"Happy": Happy,
	"Angry": Angry,
}

// String returns the trigger name.
func (a Animation) String() string {
	switch a {
	case Walk:
		return "Walk"
	case Happy:
		return "Happy"
	case Angry:
		return "Angry"
	default:
		return "Idle"
	}
}

// Face returns the glyph drawn for the pose.
func (a Animation) Face() rune {
	switch a {
	case Walk:
		return '&'
	case Happy:
		return '☺'
	case Angry:
		return '☹'
	default:
		return '@'
	}
}

// ParseAnimation resolves a trigger name.
func ParseAnimation(name string) (Animation, error) {
	a, ok := animationNames[name]
	if !ok {
		return Idle, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return a, nil
}

// Palette is the set of colours customers are dressed in.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// RandomColor picks a colour from palette.
func RandomColor(rng *rand.Rand, palette []core.Color) core.Color {
	if len(palette) == 0 {
		return core.ColorWhite
	}
	return palette[rng.Intn(len(palette))]
}
