package cooking

import (
	"fmt"
	"strings"
)

// MaxPlateIngredients is how many ingredients fit on a plate.
const MaxPlateIngredients = 2

// Plate collects up to two ingredients and turns them into a dish when a
// recipe matches.
type Plate struct {
	recipes *RecipeBook
	items   []*IngredientItem
	dish    Dish

	// OnDishMade fires once when the plate becomes a dish.
	OnDishMade func(Dish)
}

// NewPlate creates an empty plate that looks up dishes in recipes.
func NewPlate(recipes *RecipeBook) *Plate {
	return &Plate{recipes: recipes, items: make([]*IngredientItem, 0, MaxPlateIngredients)}
}

// AddIngredient puts an ingredient on the plate. Adding to a full or finished
// plate, or adding an item already on it, is ignored. When the second
// ingredient lands the plate is turned into a dish, or ErrNoRecipe is returned.
func (p *Plate) AddIngredient(item *IngredientItem) (Dish, error) {
	if item == nil || p.dish != DishNone || len(p.items) >= MaxPlateIngredients || p.Contains(item) {
		return p.dish, nil
	}
	p.items = append(p.items, item)
	if len(p.items) < MaxPlateIngredients {
		return DishNone, nil
	}
	return p.makeDish()
}

func (p *Plate) makeDish() (Dish, error) {
	a, b := p.items[0].Kind(), p.items[1].Kind()
	dish, ok := p.recipes.Match(a, b)
	if !ok {
		return DishNone, fmt.Errorf("%w: %s + %s", ErrNoRecipe, a, b)
	}
	p.items = p.items[:0]
	p.dish = dish
	if p.OnDishMade != nil {
		p.OnDishMade(dish)
	}
	return dish, nil
}

// CanCombine reports whether adding item would complete a recipe.
func (p *Plate) CanCombine(item *IngredientItem) bool {
	if item == nil || p.dish != DishNone || len(p.items) != 1 || p.items[0] == item {
		return false
	}
	return p.recipes.CanCombine(p.items[0].Kind(), item.Kind())
}

// Contains reports whether item is on the plate.
func (p *Plate) Contains(item *IngredientItem) bool {
	for _, it := range p.items {
		if it == item {
			return true
		}
	}
	return false
}

// Ingredients returns the ingredients on the plate.
func (p *Plate) Ingredients() []*IngredientItem {
	return append([]*IngredientItem(nil), p.items...)
}

// First returns the first ingredient, or nil.
func (p *Plate) First() *IngredientItem {
	if len(p.items) == 0 {
		return nil
	}
	return p.items[0]
}

// Len returns the number of ingredients on the plate.
func (p *Plate) Len() int {
	return len(p.items)
}

// Dish returns the finished dish, or DishNone.
func (p *Plate) Dish() Dish {
	return p.dish
}

// Finished reports whether the plate holds a dish.
func (p *Plate) Finished() bool {
	return p.dish != DishNone
}

// Glyph returns the map character for the plate.
func (p *Plate) Glyph() rune {
	if p.dish != DishNone {
		return p.dish.Glyph()
	}
	if len(p.items) > 0 {
		return p.items[0].Kind().Glyph()
	}
	return 'o'
}

func (p *Plate) heldItem() {}

// Describe returns a short description for the HUD.
func (p *Plate) Describe() string {
	if p.dish != DishNone {
		return p.dish.Label()
	}
	if len(p.items) == 0 {
		return "empty plate"
	}
	parts := make([]string, len(p.items))
	for i, it := range p.items {
		parts[i] = it.Describe()
	}
	return "plate: " + strings.Join(parts, " + ")
}
