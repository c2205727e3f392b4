package cooking

import "github.com/vovakirdan/voodoo-kitchen/internal/grid"

// Basket is an endless supply of one ingredient.
type Basket struct {
	Kind  Ingredient
	Point grid.PlayerPoint
}

// GiveIngredient hands a fresh ingredient to an empty-handed cook.
func (b *Basket) GiveIngredient(h *Holder) (*IngredientItem, error) {
	return h.CreateHeldItem(b.Kind)
}
