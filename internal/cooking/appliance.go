package cooking

import (
	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
	"github.com/vovakirdan/voodoo-kitchen/internal/timer"
)

// Transform is a kind change applied when cooking finishes.
type Transform struct {
	From Ingredient
	To   Ingredient
}

// ApplianceConfig describes a station.
type ApplianceConfig struct {
	Name  string
	Point grid.PlayerPoint
	// CookSeconds > 0 gives the station a cook timer.
	CookSeconds float64
	// Transform is applied to the cooked ingredient, if set.
	Transform *Transform
}

// Outcome tells the caller what an interaction did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePickedUp
	OutcomePlaced
	OutcomeCooking
	OutcomeDishMade
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePickedUp:
		return "picked_up"
	case OutcomePlaced:
		return "placed"
	case OutcomeCooking:
		return "cooking"
	case OutcomeDishMade:
		return "dish_made"
	default:
		return "none"
	}
}

// Appliance is a kitchen station holding at most one plate.
type Appliance struct {
	name      string
	point     grid.PlayerPoint
	recipes   *RecipeBook
	transform *Transform
	cook      *timer.Timer
	cooking   *IngredientItem
	plate     *Plate
	done      bool

	// OnCooked fires when the cook timer finishes an ingredient.
	OnCooked func(*IngredientItem)
	// OnDishMade fires when a plate on this station becomes a dish.
	OnDishMade func(Dish)
}

// NewAppliance creates a station from cfg.
func NewAppliance(cfg ApplianceConfig, recipes *RecipeBook) *Appliance {
	a := &Appliance{
		name:      cfg.Name,
		point:     cfg.Point,
		recipes:   recipes,
		transform: cfg.Transform,
	}
	if a.name == "" {
		a.name = cfg.Point.String()
	}
	if cfg.CookSeconds > 0 {
		a.cook = timer.New(timer.Options{
			Start:  cfg.CookSeconds,
			OnDone: func() { a.done = true },
		})
	}
	return a
}

// Name returns the station name.
func (a *Appliance) Name() string {
	return a.name
}

// Point returns where the cook stands to use the station.
func (a *Appliance) Point() grid.PlayerPoint {
	return a.point
}

// Plate returns the plate on the station, or nil.
func (a *Appliance) Plate() *Plate {
	return a.plate
}

// HasTimer reports whether the station cooks.
func (a *Appliance) HasTimer() bool {
	return a.cook != nil
}

// Cooking reports whether an ingredient is on the heat.
func (a *Appliance) Cooking() bool {
	return a.cook != nil && a.cooking != nil && a.cook.Running()
}

// Progress returns cook progress in [0, 1], 0 when idle.
func (a *Appliance) Progress() float64 {
	if !a.Cooking() {
		return 0
	}
	return a.cook.Percentage()
}

// Interact uses the station with whatever the cook is holding.
// On any error the cook and the station are left unchanged.
func (a *Appliance) Interact(h *Holder) (Outcome, error) {
	if h.Empty() {
		return a.giveHeldItem(h)
	}
	return a.setIngredient(h)
}

func (a *Appliance) giveHeldItem(h *Holder) (Outcome, error) {
	if a.plate == nil {
		return OutcomeNone, nil
	}
	if a.Cooking() {
		return OutcomeNone, ErrStillCooking
	}
	if err := h.SetHeldItem(a.plate); err != nil {
		return OutcomeNone, err
	}
	a.plate = nil
	a.cooking = nil
	return OutcomePickedUp, nil
}

func (a *Appliance) setIngredient(h *Holder) (Outcome, error) {
	item, err := ingredientOf(h.Current())
	if err != nil {
		return OutcomeNone, err
	}

	if a.plate != nil {
		if a.Cooking() {
			return OutcomeNone, ErrStillCooking
		}
		if !a.plate.CanCombine(item) {
			return OutcomeNone, ErrStationBusy
		}
		h.Take()
		dish, err := a.plate.AddIngredient(item)
		if err != nil {
			return OutcomeNone, err
		}
		if a.OnDishMade != nil {
			a.OnDishMade(dish)
		}
		return OutcomeDishMade, nil
	}

	h.Take()
	a.plate = NewPlate(a.recipes)
	if _, err := a.plate.AddIngredient(item); err != nil {
		return OutcomeNone, err
	}
	if a.cook == nil || item.State() != Raw {
		return OutcomePlaced, nil
	}
	if err := item.ChangeState(BeingPrepared); err != nil {
		return OutcomePlaced, err
	}
	a.cooking = item
	a.done = false
	a.cook.Reset()
	a.cook.SetCanCount(true)
	return OutcomeCooking, nil
}

// ingredientOf extracts the ingredient the cook is putting down.
func ingredientOf(held HeldItem) (*IngredientItem, error) {
	switch it := held.(type) {
	case *IngredientItem:
		return it, nil
	case *Plate:
		if it.Finished() {
			return nil, ErrDishFinished
		}
		if it.Len() != 1 {
			return nil, ErrStationBusy
		}
		return it.First(), nil
	default:
		return nil, ErrHandsEmpty
	}
}

// Step advances the cook timer by dt seconds. It returns the ingredient that
// finished cooking on this tick, or nil.
func (a *Appliance) Step(dt float64) (*IngredientItem, error) {
	if a.cook == nil || a.cooking == nil {
		return nil, nil
	}
	a.cook.Step(dt)
	if !a.done {
		return nil, nil
	}
	a.done = false
	item := a.cooking
	a.cooking = nil
	a.cook.SetCanCount(false)
	if err := item.ChangeState(Cooked); err != nil {
		return nil, err
	}
	if a.transform != nil {
		item.Transform(a.transform.From, a.transform.To)
	}
	if a.OnCooked != nil {
		a.OnCooked(item)
	}
	return item, nil
}

// Clear removes everything from the station.
func (a *Appliance) Clear() {
	a.plate = nil
	a.cooking = nil
	a.done = false
	if a.cook != nil {
		a.cook.SetCanCount(false)
		a.cook.Reset()
	}
}
