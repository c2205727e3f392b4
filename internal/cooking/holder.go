package cooking

// HeldItem is anything the cook can carry: a loose ingredient or a plate.
type HeldItem interface {
	Describe() string
	heldItem()
}

// Holder is the cook's hands. It carries at most one item.
type Holder struct {
	item HeldItem
}

// Current returns the carried item, or nil.
func (h *Holder) Current() HeldItem {
	return h.item
}

// Empty reports whether nothing is carried.
func (h *Holder) Empty() bool {
	return h.item == nil
}

// SetHeldItem puts item in the cook's hands.
func (h *Holder) SetHeldItem(item HeldItem) error {
	if h.item != nil {
		return ErrHandsFull
	}
	h.item = item
	return nil
}

// CreateHeldItem creates a fresh raw ingredient and holds it.
func (h *Holder) CreateHeldItem(kind Ingredient) (*IngredientItem, error) {
	if h.item != nil {
		return nil, ErrHandsFull
	}
	it := NewIngredient(kind)
	h.item = it
	return it, nil
}

// Take empties the cook's hands and returns what was carried.
func (h *Holder) Take() HeldItem {
	it := h.item
	h.item = nil
	return it
}

// Dish returns the dish carried on a finished plate, or DishNone.
func (h *Holder) Dish() Dish {
	if p, ok := h.item.(*Plate); ok {
		return p.Dish()
	}
	return DishNone
}

// Describe returns the HUD text for the hands.
func (h *Holder) Describe() string {
	if h.item == nil {
		return "empty hands"
	}
	return h.item.Describe()
}
