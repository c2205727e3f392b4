package cooking

import (
	"errors"
	"testing"

	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
)

func TestChangeStateForwardOnly(t *testing.T) {
	tests := []struct {
		name    string
		from    IngredientState
		to      IngredientState
		wantErr bool
	}{
		{"raw to prepared", Raw, BeingPrepared, false},
		{"prepared to cooked", BeingPrepared, Cooked, false},
		{"raw to cooked", Raw, Cooked, true},
		{"cooked to raw", Cooked, Raw, true},
		{"prepared to raw", BeingPrepared, Raw, true},
		{"raw to raw", Raw, Raw, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewIngredient(Bread)
			it.state = tt.from
			err := it.ChangeState(tt.to)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				if it.State() != tt.from {
					t.Errorf("state changed to %v on refused transition", it.State())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if it.State() != tt.to {
				t.Errorf("State() = %v, expected %v", it.State(), tt.to)
			}
		})
	}
}

func TestStateChangeHook(t *testing.T) {
	it := NewIngredient(FishRaw)
	var seen []IngredientState
	it.OnStateChange = func(s IngredientState) { seen = append(seen, s) }

	_ = it.ChangeState(BeingPrepared)
	_ = it.ChangeState(Raw)
	_ = it.ChangeState(Cooked)

	if len(seen) != 2 || seen[0] != BeingPrepared || seen[1] != Cooked {
		t.Errorf("hook saw %v", seen)
	}
}

func TestItemsAreDistinct(t *testing.T) {
	a, b := NewIngredient(FishRaw), NewIngredient(FishRaw)
	if a.ID() == b.ID() {
		t.Error("two items share an id")
	}
}

func TestTransform(t *testing.T) {
	it := NewIngredient(FishRaw)
	if !it.Transform(FishRaw, FishCooked) || it.Kind() != FishCooked {
		t.Errorf("Transform failed, kind %v", it.Kind())
	}
	if it.Transform(FishRaw, FishCooked) {
		t.Error("Transform should not apply twice")
	}
}

func TestParseIngredient(t *testing.T) {
	for _, kind := range Ingredients() {
		got, err := ParseIngredient(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseIngredient(%q) = %v, %v", kind.String(), got, err)
		}
	}
	if _, err := ParseIngredient("tofu"); !errors.Is(err, ErrUnknownIngredient) {
		t.Errorf("expected ErrUnknownIngredient, got %v", err)
	}
	if _, err := ParseDish("pizza"); !errors.Is(err, ErrUnknownDish) {
		t.Errorf("expected ErrUnknownDish, got %v", err)
	}
}

func TestRecipeMatchUnordered(t *testing.T) {
	book := NewRecipeBook(DefaultRecipes()...)

	tests := []struct {
		a, b Ingredient
		want Dish
		ok   bool
	}{
		{FishRaw, Seaweed, Sushi, true},
		{Seaweed, FishRaw, Sushi, true},
		{Taco, FishCooked, FishTaco, true},
		{FishCooked, Bread, FishSandwich, true},
		{Cupcake, Frappe, FrappeCupcake, true},
		{FishRaw, Taco, DishNone, false},
		{Coffee, Cupcake, DishNone, false},
	}

	for _, tt := range tests {
		got, ok := book.Match(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Match(%v, %v) = %v, %v; expected %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRecipeFirstMatchWins(t *testing.T) {
	book := NewRecipeBook(
		Recipe{First: FishRaw, Second: Seaweed, Dish: Sushi},
		Recipe{First: Seaweed, Second: FishRaw, Dish: FishTaco},
	)
	if d, _ := book.Match(Seaweed, FishRaw); d != Sushi {
		t.Errorf("Match = %v, expected first recipe", d)
	}
	if len(book.Dishes()) != 2 {
		t.Errorf("Dishes() = %v", book.Dishes())
	}
}

func TestPlateMakesDish(t *testing.T) {
	p := NewPlate(NewRecipeBook(DefaultRecipes()...))
	made := 0
	p.OnDishMade = func(d Dish) {
		made++
		if d != Sushi {
			t.Errorf("OnDishMade(%v)", d)
		}
	}

	fish := NewIngredient(FishRaw)
	if d, err := p.AddIngredient(fish); err != nil || d != DishNone {
		t.Fatalf("first AddIngredient = %v, %v", d, err)
	}
	if d, _ := p.AddIngredient(fish); d != DishNone || p.Len() != 1 {
		t.Errorf("duplicate item was added, len %d", p.Len())
	}

	d, err := p.AddIngredient(NewIngredient(Seaweed))
	if err != nil || d != Sushi {
		t.Fatalf("AddIngredient = %v, %v", d, err)
	}
	if p.Len() != 0 || !p.Finished() || made != 1 {
		t.Errorf("plate not finished: len %d, dish %v, made %d", p.Len(), p.Dish(), made)
	}

	if d, _ := p.AddIngredient(NewIngredient(Taco)); d != Sushi || p.Len() != 0 {
		t.Error("finished plate accepted another ingredient")
	}
}

func TestPlateNoRecipe(t *testing.T) {
	p := NewPlate(NewRecipeBook(DefaultRecipes()...))
	_, _ = p.AddIngredient(NewIngredient(Coffee))
	_, err := p.AddIngredient(NewIngredient(Taco))
	if !errors.Is(err, ErrNoRecipe) {
		t.Fatalf("expected ErrNoRecipe, got %v", err)
	}
	if p.Len() != MaxPlateIngredients {
		t.Errorf("Len() = %d, plate should keep both ingredients", p.Len())
	}
	_, _ = p.AddIngredient(NewIngredient(Bread))
	if p.Len() > MaxPlateIngredients {
		t.Errorf("plate holds %d ingredients", p.Len())
	}
}

func TestHolder(t *testing.T) {
	var h Holder
	if !h.Empty() || h.Describe() != "empty hands" {
		t.Fatal("new holder should be empty")
	}

	it, err := h.CreateHeldItem(Taco)
	if err != nil || it.Kind() != Taco || it.State() != Raw {
		t.Fatalf("CreateHeldItem = %v, %v", it, err)
	}
	if _, err := h.CreateHeldItem(Bread); !errors.Is(err, ErrHandsFull) {
		t.Errorf("expected ErrHandsFull, got %v", err)
	}
	if err := h.SetHeldItem(NewIngredient(Bread)); !errors.Is(err, ErrHandsFull) {
		t.Errorf("expected ErrHandsFull, got %v", err)
	}
	if h.Current() != it {
		t.Error("held item was replaced")
	}
	if h.Take() != it || !h.Empty() {
		t.Error("Take should return the item and empty the hands")
	}
}

func TestBasket(t *testing.T) {
	b := Basket{Kind: Seaweed, Point: grid.Seaweed}
	var h Holder

	it, err := b.GiveIngredient(&h)
	if err != nil || it.Kind() != Seaweed {
		t.Fatalf("GiveIngredient = %v, %v", it, err)
	}
	if _, err := b.GiveIngredient(&h); !errors.Is(err, ErrHandsFull) {
		t.Errorf("expected ErrHandsFull, got %v", err)
	}
	if h.Current() != it {
		t.Error("basket replaced the held item")
	}
}

func newGrill() *Appliance {
	return NewAppliance(ApplianceConfig{
		Name:        "grill",
		Point:       grid.Grill,
		CookSeconds: 2,
		Transform:   &Transform{From: FishRaw, To: FishCooked},
	}, NewRecipeBook(DefaultRecipes()...))
}

func TestGrillCooksFish(t *testing.T) {
	g := newGrill()
	var h Holder
	fish, _ := h.CreateHeldItem(FishRaw)

	out, err := g.Interact(&h)
	if err != nil || out != OutcomeCooking {
		t.Fatalf("Interact = %v, %v", out, err)
	}
	if !h.Empty() || fish.State() != BeingPrepared || !g.Cooking() {
		t.Fatalf("grill did not start: state %v", fish.State())
	}

	if _, err := g.Interact(&h); !errors.Is(err, ErrStillCooking) {
		t.Errorf("expected ErrStillCooking, got %v", err)
	}

	var cooked *IngredientItem
	for i := 0; i < 30 && cooked == nil; i++ {
		cooked, err = g.Step(0.1)
		if err != nil {
			t.Fatalf("Step error: %v", err)
		}
	}
	if cooked != fish {
		t.Fatal("fish never finished cooking")
	}
	if fish.State() != Cooked || fish.Kind() != FishCooked || g.Cooking() {
		t.Errorf("after cooking: state %v kind %v cooking %v", fish.State(), fish.Kind(), g.Cooking())
	}
	if again, _ := g.Step(0.1); again != nil {
		t.Error("cook finished twice")
	}

	out, err = g.Interact(&h)
	if err != nil || out != OutcomePickedUp {
		t.Fatalf("pick up = %v, %v", out, err)
	}
	p, ok := h.Current().(*Plate)
	if !ok || p.First() != fish || g.Plate() != nil {
		t.Error("cook should be holding the plate with the fish")
	}
}

func TestApplianceCombines(t *testing.T) {
	g := newGrill()
	var h Holder
	_, _ = h.CreateHeldItem(FishRaw)
	_, _ = g.Interact(&h)
	for g.Cooking() {
		_, _ = g.Step(0.5)
	}

	made := Dish(DishNone)
	g.OnDishMade = func(d Dish) { made = d }

	_, _ = h.CreateHeldItem(Taco)
	out, err := g.Interact(&h)
	if err != nil || out != OutcomeDishMade {
		t.Fatalf("Interact = %v, %v", out, err)
	}
	if made != FishTaco || g.Plate().Dish() != FishTaco || !h.Empty() {
		t.Errorf("dish %v, plate %v", made, g.Plate().Dish())
	}

	_, _ = g.Interact(&h)
	if h.Dish() != FishTaco {
		t.Errorf("held dish = %v", h.Dish())
	}

	_, err = g.Interact(&h)
	if !errors.Is(err, ErrDishFinished) {
		t.Errorf("expected ErrDishFinished, got %v", err)
	}
	if h.Dish() != FishTaco {
		t.Error("refused interaction dropped the dish")
	}
}

func TestApplianceBusyKeepsItem(t *testing.T) {
	combine := NewAppliance(ApplianceConfig{Point: grid.CombineArea}, NewRecipeBook(DefaultRecipes()...))
	if combine.Name() != "combine_area" {
		t.Errorf("Name() = %q", combine.Name())
	}

	var h Holder
	_, _ = h.CreateHeldItem(Coffee)
	out, err := combine.Interact(&h)
	if err != nil || out != OutcomePlaced {
		t.Fatalf("Interact = %v, %v", out, err)
	}
	if combine.Cooking() || combine.Plate().First().State() != Raw {
		t.Error("station without timer should not cook")
	}

	bread, _ := h.CreateHeldItem(Bread)
	if _, err := combine.Interact(&h); !errors.Is(err, ErrStationBusy) {
		t.Fatalf("expected ErrStationBusy, got %v", err)
	}
	if h.Current() != bread {
		t.Error("player lost the item on a refused interaction")
	}
}

func TestApplianceEmptyPickup(t *testing.T) {
	g := newGrill()
	var h Holder
	out, err := g.Interact(&h)
	if err != nil || out != OutcomeNone || !h.Empty() {
		t.Errorf("empty pickup = %v, %v", out, err)
	}
}

func TestCarryPlateToStation(t *testing.T) {
	book := NewRecipeBook(DefaultRecipes()...)
	combine := NewAppliance(ApplianceConfig{Point: grid.CombineArea}, book)
	blender := NewAppliance(ApplianceConfig{
		Point:       grid.Blender,
		CookSeconds: 1,
		Transform:   &Transform{From: Coffee, To: Frappe},
	}, book)

	var h Holder
	_, _ = h.CreateHeldItem(Coffee)
	_, _ = blender.Interact(&h)
	for blender.Cooking() {
		_, _ = blender.Step(0.25)
	}
	_, _ = blender.Interact(&h)

	_, _ = combine.Interact(&h)
	if !h.Empty() || combine.Plate().First().Kind() != Frappe {
		t.Fatal("frappe was not moved to the combine area")
	}

	_, _ = h.CreateHeldItem(Cupcake)
	if out, err := combine.Interact(&h); err != nil || out != OutcomeDishMade {
		t.Fatalf("Interact = %v, %v", out, err)
	}
	if combine.Plate().Dish() != FrappeCupcake {
		t.Errorf("dish = %v", combine.Plate().Dish())
	}

	combine.Clear()
	if combine.Plate() != nil {
		t.Error("Clear left a plate")
	}
}

func TestScoreBoard(t *testing.T) {
	var s ScoreBoard
	last := -1
	s.OnChange = func(total int) { last = total }

	s.IncreaseScore(10)
	s.IncreaseScore(5)
	if s.Total() != 15 || last != 15 {
		t.Errorf("Total() = %d, last %d", s.Total(), last)
	}
	s.IncreaseScore(-40)
	if s.Total() != 0 {
		t.Errorf("score went below zero: %d", s.Total())
	}
	s.IncreaseScore(3)
	s.Reset()
	if s.Total() != 0 {
		t.Error("Reset did not clear the score")
	}
}
