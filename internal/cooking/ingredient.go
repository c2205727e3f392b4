// Package cooking contains the kitchen rules: ingredients and their cook
// state, the recipe table, plates that turn two ingredients into a dish, and
// the stations the cook interacts with.
package cooking

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Ingredient identifies a kind of food.
type Ingredient int

const (
	FishRaw Ingredient = iota
	FishCooked
	Seaweed
	Taco
	Bread
	Cupcake
	Coffee
	Frappe
	ingredientCount
)

var ingredientNames = [...]string{
	FishRaw:    "fish_raw",
	FishCooked: "fish_cooked",
	Seaweed:    "seaweed",
	Taco:       "taco",
	Bread:      "bread",
	Cupcake:    "cupcake",
	Coffee:     "coffee",
	Frappe:     "frappe",
}

var ingredientGlyphs = [...]rune{
	FishRaw:    'f',
	FishCooked: 'F',
	Seaweed:    'w',
	Taco:       't',
	Bread:      'b',
	Cupcake:    'c',
	Coffee:     'k',
	Frappe:     'K',
}

// String returns the snake_case name.
func (i Ingredient) String() string {
	if i < 0 || i >= ingredientCount {
		return "unknown"
	}
	return ingredientNames[i]
}

// Label returns a display name ("fish cooked").
func (i Ingredient) Label() string {
	return strings.ReplaceAll(i.String(), "_", " ")
}

// Glyph returns the single character used on the kitchen map.
func (i Ingredient) Glyph() rune {
	if i < 0 || i >= ingredientCount {
		return '?'
	}
	return ingredientGlyphs[i]
}

// ParseIngredient resolves an ingredient by its snake_case name.
func ParseIngredient(name string) (Ingredient, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range ingredientNames {
		if n == name {
			return Ingredient(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
}

// Ingredients returns every ingredient kind.
func Ingredients() []Ingredient {
	out := make([]Ingredient, ingredientCount)
	for i := range out {
		out[i] = Ingredient(i)
	}
	return out
}

// IngredientState is how far an ingredient has been prepared.
type IngredientState int

const (
	Raw IngredientState = iota
	BeingPrepared
	Cooked
)

// String returns the state name.
func (s IngredientState) String() string {
	switch s {
	case Raw:
		return "raw"
	case BeingPrepared:
		return "being_prepared"
	case Cooked:
		return "cooked"
	default:
		return "unknown"
	}
}

// IngredientItem is one physical ingredient in the kitchen.
// Items are compared by identity: two raw fish are different items.
type IngredientItem struct {
	id    uint64
	kind  Ingredient
	state IngredientState

	// OnStateChange fires after every successful state transition.
	OnStateChange func(IngredientState)
}

// NewIngredient creates a raw ingredient of the given kind.
func NewIngredient(kind Ingredient) *IngredientItem {
	return &IngredientItem{id: nextItemID.Add(1), kind: kind}
}

var nextItemID atomic.Uint64

// ID returns the item's unique id.
func (it *IngredientItem) ID() uint64 {
	return it.id
}

// Kind returns the ingredient kind.
func (it *IngredientItem) Kind() Ingredient {
	return it.kind
}

// State returns the cook state.
func (it *IngredientItem) State() IngredientState {
	return it.state
}

// ChangeState moves the ingredient one step forward.
// Only Raw -> BeingPrepared and BeingPrepared -> Cooked are accepted.
func (it *IngredientItem) ChangeState(target IngredientState) error {
	switch {
	case it.state == Raw && target == BeingPrepared,
		it.state == BeingPrepared && target == Cooked:
		it.state = target
		if it.OnStateChange != nil {
			it.OnStateChange(target)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, it.state, target)
	}
}

// Transform changes the kind from -> to, e.g. grilling turns raw fish into
// cooked fish. Returns false when the item is not of kind from.
func (it *IngredientItem) Transform(from, to Ingredient) bool {
	if it.kind != from {
		return false
	}
	it.kind = to
	return true
}

// heldItem marks IngredientItem as something the cook can carry.
func (it *IngredientItem) heldItem() {}

// Describe returns a short description for the HUD.
func (it *IngredientItem) Describe() string {
	if it.state == Raw {
		return it.kind.Label()
	}
	return fmt.Sprintf("%s (%s)", it.kind.Label(), strings.ReplaceAll(it.state.String(), "_", " "))
}
