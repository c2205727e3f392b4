package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate checks names, ranges and station placement.
func (c KitchenConfig) Validate() error {
	if c.Player.Speed < grid.MinSpeed || c.Player.Speed > grid.MaxSpeed {
		return invalidf("player.speed %.2f out of range [%.0f, %.0f]", c.Player.Speed, grid.MinSpeed, grid.MaxSpeed)
	}
	if c.Customers.Speed < grid.MinSpeed || c.Customers.Speed > grid.MaxSpeed {
		return invalidf("customers.speed %.2f out of range [%.0f, %.0f]", c.Customers.Speed, grid.MinSpeed, grid.MaxSpeed)
	}
	if _, err := grid.ParsePlayerPoint(c.Player.Start); err != nil {
		return invalidf("player.start: %v", err)
	}
	if c.Shift.MainSeconds <= 0 || c.Shift.ShortSeconds <= 0 {
		return invalidf("shift lengths must be positive")
	}
	if c.Customers.OrderLength < 1 {
		return invalidf("customers.order_length must be at least 1")
	}
	if c.Customers.Patience < 0 {
		return invalidf("customers.patience must not be negative")
	}
	if c.Points.Wrong > 0 || c.Points.Walkout > 0 {
		return invalidf("points.wrong and points.walkout must not be positive")
	}

	if _, err := c.RecipeBook(); err != nil {
		return err
	}

	used := make(map[grid.PlayerPoint]string)
	claim := func(name, point string) error {
		p, err := grid.ParsePlayerPoint(point)
		if err != nil {
			return invalidf("%s: %v", name, err)
		}
		if other, ok := used[p]; ok {
			return invalidf("%s and %s share point %s", name, other, p)
		}
		used[p] = name
		return nil
	}

	if _, err := c.BasketList(); err != nil {
		return err
	}
	for _, b := range c.Baskets {
		if err := claim("basket "+b.Ingredient, b.Point); err != nil {
			return err
		}
	}
	if _, err := c.ApplianceList(); err != nil {
		return err
	}
	for _, a := range c.Appliances {
		if err := claim("appliance "+a.Name, a.Point); err != nil {
			return err
		}
	}
	if err := claim("counter", c.Counter); err != nil {
		return err
	}
	return nil
}

// RecipeBook builds the recipe table. Duplicated pairs are rejected.
func (c KitchenConfig) RecipeBook() (*cooking.RecipeBook, error) {
	recipes := make([]cooking.Recipe, 0, len(c.Recipes))
	for i, rc := range c.Recipes {
		a, err := cooking.ParseIngredient(rc.First)
		if err != nil {
			return nil, invalidf("recipes[%d]: %v", i, err)
		}
		b, err := cooking.ParseIngredient(rc.Second)
		if err != nil {
			return nil, invalidf("recipes[%d]: %v", i, err)
		}
		d, err := cooking.ParseDish(rc.Dish)
		if err != nil || d == cooking.DishNone {
			return nil, invalidf("recipes[%d]: bad dish %q", i, rc.Dish)
		}
		for _, prev := range recipes {
			if prev.Matches(a, b) {
				return nil, invalidf("recipes[%d]: pair %s + %s already makes %s", i, a, b, prev.Dish)
			}
		}
		recipes = append(recipes, cooking.Recipe{First: a, Second: b, Dish: d})
	}
	if len(recipes) == 0 {
		return nil, invalidf("no recipes")
	}
	return cooking.NewRecipeBook(recipes...), nil
}

// BasketList builds the ingredient baskets.
func (c KitchenConfig) BasketList() ([]*cooking.Basket, error) {
	out := make([]*cooking.Basket, 0, len(c.Baskets))
	for i, bc := range c.Baskets {
		kind, err := cooking.ParseIngredient(bc.Ingredient)
		if err != nil {
			return nil, invalidf("baskets[%d]: %v", i, err)
		}
		p, err := grid.ParsePlayerPoint(bc.Point)
		if err != nil {
			return nil, invalidf("baskets[%d]: %v", i, err)
		}
		out = append(out, &cooking.Basket{Kind: kind, Point: p})
	}
	return out, nil
}

// ApplianceList builds the station descriptions.
func (c KitchenConfig) ApplianceList() ([]cooking.ApplianceConfig, error) {
	out := make([]cooking.ApplianceConfig, 0, len(c.Appliances))
	for i, ac := range c.Appliances {
		p, err := grid.ParsePlayerPoint(ac.Point)
		if err != nil {
			return nil, invalidf("appliances[%d]: %v", i, err)
		}
		if ac.CookSeconds < 0 {
			return nil, invalidf("appliances[%d]: cook_seconds must not be negative", i)
		}
		cfg := cooking.ApplianceConfig{Name: ac.Name, Point: p, CookSeconds: ac.CookSeconds}
		if ac.Transform != nil {
			from, err := cooking.ParseIngredient(ac.Transform.From)
			if err != nil {
				return nil, invalidf("appliances[%d].transform: %v", i, err)
			}
			to, err := cooking.ParseIngredient(ac.Transform.To)
			if err != nil {
				return nil, invalidf("appliances[%d].transform: %v", i, err)
			}
			cfg.Transform = &cooking.Transform{From: from, To: to}
		}
		out = append(out, cfg)
	}
	return out, nil
}

// CounterPoint returns where dishes are delivered.
func (c KitchenConfig) CounterPoint() grid.PlayerPoint {
	p, err := grid.ParsePlayerPoint(c.Counter)
	if err != nil {
		return grid.WaitingArea
	}
	return p
}

// StartPoint returns where the cook starts the shift.
func (c KitchenConfig) StartPoint() grid.PlayerPoint {
	p, err := grid.ParsePlayerPoint(c.Player.Start)
	if err != nil {
		return grid.WaitingArea
	}
	return p
}

// RushSeconds returns the length of a rush shift.
func (c KitchenConfig) RushSeconds() float64 {
	m := c.Shift.RushMultiplier
	if m <= 0 {
		m = 1
	}
	return c.Shift.ShortSeconds * m
}
