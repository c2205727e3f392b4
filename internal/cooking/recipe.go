package cooking

import (
	"fmt"
	"strings"
)

// Dish is a finished meal a customer can order.
type Dish int

const (
	DishNone Dish = iota
	Sushi
	FishTaco
	FishSandwich
	FrappeCupcake
	dishCount
)

var dishNames = [...]string{
	DishNone:      "none",
	Sushi:         "sushi",
	FishTaco:      "fish_taco",
	FishSandwich:  "fish_sandwich",
	FrappeCupcake: "frappe_cupcake",
}

// String returns the snake_case name.
func (d Dish) String() string {
	if d < 0 || d >= dishCount {
		return "unknown"
	}
	return dishNames[d]
}

// Label returns a display name ("fish taco").
func (d Dish) Label() string {
	return strings.ReplaceAll(d.String(), "_", " ")
}

// Glyph returns the map character for a finished plate of this dish.
func (d Dish) Glyph() rune {
	switch d {
	case Sushi:
		return 'S'
	case FishTaco:
		return 'T'
	case FishSandwich:
		return 'B'
	case FrappeCupcake:
		return 'C'
	default:
		return 'o'
	}
}

// ParseDish resolves a dish by its snake_case name.
func ParseDish(name string) (Dish, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range dishNames {
		if n == name {
			return Dish(i), nil
		}
	}
	return DishNone, fmt.Errorf("%w: %q", ErrUnknownDish, name)
}

// Dishes returns every orderable dish (DishNone excluded).
func Dishes() []Dish {
	out := make([]Dish, 0, dishCount-1)
	for d := DishNone + 1; d < dishCount; d++ {
		out = append(out, d)
	}
	return out
}

// Recipe is an unordered pair of ingredient kinds that makes a dish.
type Recipe struct {
	First  Ingredient
	Second Ingredient
	Dish   Dish
}

// Matches reports whether {a, b} is this recipe's pair, in either order.
func (r Recipe) Matches(a, b Ingredient) bool {
	return (a == r.First && b == r.Second) || (a == r.Second && b == r.First)
}

// String renders "first + second = dish".
func (r Recipe) String() string {
	return fmt.Sprintf("%s + %s = %s", r.First.Label(), r.Second.Label(), r.Dish.Label())
}

// RecipeBook is the kitchen's recipe table.
type RecipeBook struct {
	recipes []Recipe
}

// NewRecipeBook creates a recipe book. The first matching recipe wins.
func NewRecipeBook(recipes ...Recipe) *RecipeBook {
	return &RecipeBook{recipes: append([]Recipe(nil), recipes...)}
}

// DefaultRecipes returns the stock recipe table.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{First: FishRaw, Second: Seaweed, Dish: Sushi},
		{First: FishCooked, Second: Taco, Dish: FishTaco},
		{First: FishCooked, Second: Bread, Dish: FishSandwich},
		{First: Frappe, Second: Cupcake, Dish: FrappeCupcake},
	}
}

// Match returns the dish made from a and b.
func (b *RecipeBook) Match(x, y Ingredient) (Dish, bool) {
	for _, r := range b.recipes {
		if r.Matches(x, y) {
			return r.Dish, true
		}
	}
	return DishNone, false
}

// CanCombine reports whether any recipe uses the pair.
func (b *RecipeBook) CanCombine(x, y Ingredient) bool {
	_, ok := b.Match(x, y)
	return ok
}

// Recipes returns a copy of the recipe list.
func (b *RecipeBook) Recipes() []Recipe {
	return append([]Recipe(nil), b.recipes...)
}

// Dishes returns the distinct dishes the book can make, in recipe order.
func (b *RecipeBook) Dishes() []Dish {
	seen := make(map[Dish]bool)
	var out []Dish
	for _, r := range b.recipes {
		if !seen[r.Dish] {
			seen[r.Dish] = true
			out = append(out, r.Dish)
		}
	}
	return out
}

// RecipeFor returns the first recipe producing d.
func (b *RecipeBook) RecipeFor(d Dish) (Recipe, bool) {
	for _, r := range b.recipes {
		if r.Dish == d {
			return r, true
		}
	}
	return Recipe{}, false
}
