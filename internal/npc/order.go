// Package npc implements the restaurant's customers: their orders, their walk
// to and from the counter and how patient they are.
package npc

import (
	"math/rand"

	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
)

// Verdict is the customer's reaction to a delivered dish.
type Verdict int

const (
	Ignored Verdict = iota
	Correct
	Wrong
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// Reply returns what the customer says.
func (v Verdict) Reply() string {
	switch v {
	case Correct:
		return "Very good"
	case Wrong:
		return "Ew, not what I ordered"
	default:
		return ""
	}
}

// Order is a fixed sequence of dishes served one at a time.
type Order struct {
	dishes  []cooking.Dish
	current int
}

// NewOrder creates an order. DishNone entries are placeholders for FillOrder.
func NewOrder(dishes ...cooking.Dish) *Order {
	return &Order{dishes: append([]cooking.Dish(nil), dishes...)}
}

// NewEmptyOrder creates an order of n placeholders.
func NewEmptyOrder(n int) *Order {
	if n < 1 {
		n = 1
	}
	return &Order{dishes: make([]cooking.Dish, n)}
}

// FillOrder replaces every DishNone entry with a random dish from available.
// DishNone in available is skipped; with nothing to pick from the order is
// left untouched.
func (o *Order) FillOrder(rng *rand.Rand, available []cooking.Dish) {
	menu := make([]cooking.Dish, 0, len(available))
	for _, d := range available {
		if d != cooking.DishNone {
			menu = append(menu, d)
		}
	}
	if len(menu) == 0 {
		return
	}
	for i, d := range o.dishes {
		if d == cooking.DishNone {
			o.dishes[i] = menu[rng.Intn(len(menu))]
		}
	}
}

// DeliverOrder hands dish over for the current entry and moves on.
// Returns Ignored once the order is complete.
func (o *Order) DeliverOrder(dish cooking.Dish) Verdict {
	if o.Complete() {
		return Ignored
	}
	want := o.dishes[o.current]
	o.current++
	if dish == want {
		return Correct
	}
	return Wrong
}

// GetOrder returns the dish wanted next.
func (o *Order) GetOrder() (cooking.Dish, bool) {
	if o.Complete() {
		return cooking.DishNone, false
	}
	return o.dishes[o.current], true
}

// Dishes returns the whole order.
func (o *Order) Dishes() []cooking.Dish {
	return append([]cooking.Dish(nil), o.dishes...)
}

// Len returns the number of entries.
func (o *Order) Len() int {
	return len(o.dishes)
}

// Served returns how many entries were delivered.
func (o *Order) Served() int {
	return o.current
}

// Remaining returns how many entries are left.
func (o *Order) Remaining() int {
	return len(o.dishes) - o.current
}

// Complete reports whether every entry was delivered.
func (o *Order) Complete() bool {
	return o.current >= len(o.dishes)
}
