package npc

import (
	"math/rand"

	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
	"github.com/vovakirdan/voodoo-kitchen/internal/timer"
)

// Phase is where a customer is in its visit.
type Phase int

const (
	Arriving Phase = iota
	Waiting
	Leaving
	Gone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Arriving:
		return "arriving"
	case Waiting:
		return "waiting"
	case Leaving:
		return "leaving"
	default:
		return "gone"
	}
}

// Event is something that happened to a customer during Step.
type Event int

const (
	EventNone Event = iota
	EventArrived
	EventWalkout
	EventLeft
)

// Config describes a customer.
type Config struct {
	Speed       float64 // units per second
	Patience    float64 // seconds at the counter per dish; 0 waits forever
	OrderLength int
	Palette     []core.Color
}

// DefaultConfig returns the stock customer.
func DefaultConfig() Config {
	return Config{Speed: 4, Patience: 40, OrderLength: 2, Palette: Palette}
}

// Customer walks to the counter, waits for its order and walks back out.
type Customer struct {
	id        int
	mover     *grid.Mover[grid.NpcPoint]
	order     *Order
	patience  *timer.Timer
	phase     Phase
	animation Animation
	color     core.Color
	angry     bool
	walkedOut bool
	reply     string
}

// NewCustomer creates a customer at the entrance with a random order from menu.
func NewCustomer(id int, cfg Config, rng *rand.Rand, menu []cooking.Dish) *Customer {
	c := &Customer{
		id:    id,
		mover: grid.NewMover(grid.NpcStart, cfg.Speed),
		order: NewEmptyOrder(cfg.OrderLength),
		color: RandomColor(rng, cfg.Palette),
	}
	c.order.FillOrder(rng, menu)
	if cfg.Patience > 0 {
		c.patience = timer.New(timer.Options{
			CountUp:     true,
			Threshold:   cfg.Patience,
			OnThreshold: c.walkOut,
		})
	}
	c.mover.OnStart = func(grid.NpcPoint) { c.animation = Walk }
	c.mover.OnStop = c.arrive
	c.mover.MoveTo(grid.NpcStart.Next())
	return c
}

// ID returns the customer number within the shift.
func (c *Customer) ID() int {
	return c.id
}

func (c *Customer) arrive(p grid.NpcPoint) {
	switch c.phase {
	case Arriving:
		c.phase = Waiting
		c.animation = Idle
		if c.patience != nil {
			c.patience.Reset()
			c.patience.SetCanCount(true)
		}
	case Leaving:
		c.phase = Gone
	}
}

func (c *Customer) walkOut() {
	if c.phase != Waiting {
		return
	}
	c.walkedOut = true
	c.leave(true)
}

func (c *Customer) leave(angry bool) {
	c.phase = Leaving
	c.angry = angry
	if c.patience != nil {
		c.patience.SetCanCount(false)
	}
	c.mover.MoveTo(c.mover.Target().Next())
	if angry {
		c.animation = Angry
	} else {
		c.animation = Happy
	}
}

// Step advances the customer by dt seconds.
func (c *Customer) Step(dt float64) Event {
	switch c.phase {
	case Arriving:
		if c.mover.Step(dt) {
			return EventArrived
		}
	case Waiting:
		if c.patience != nil {
			c.patience.Step(dt)
		}
		if c.walkedOut {
			return EventWalkout
		}
	case Leaving:
		if c.mover.Step(dt) && c.phase == Gone {
			return EventLeft
		}
	}
	return EventNone
}

// DeliverOrder hands dish to the customer. Only a waiting customer takes it.
func (c *Customer) DeliverOrder(dish cooking.Dish) Verdict {
	if c.phase != Waiting {
		return Ignored
	}
	v := c.order.DeliverOrder(dish)
	c.reply = v.Reply()
	switch {
	case c.order.Complete():
		c.leave(v == Wrong)
	case v == Correct:
		c.animation = Happy
		if c.patience != nil {
			c.patience.Reset()
		}
	case v == Wrong:
		c.animation = Angry
	}
	return v
}

// PlayAnimation switches to the named pose.
func (c *Customer) PlayAnimation(name string) error {
	a, err := ParseAnimation(name)
	if err != nil {
		return err
	}
	c.animation = a
	return nil
}

// GetOrder returns the dish the customer wants next.
func (c *Customer) GetOrder() (cooking.Dish, bool) {
	return c.order.GetOrder()
}

// Order returns the customer's order.
func (c *Customer) Order() *Order {
	return c.order
}

// Remaining returns how many dishes are still to be served.
func (c *Customer) Remaining() int {
	return c.order.Remaining()
}

// Complete reports whether the whole order was served.
func (c *Customer) Complete() bool {
	return c.order.Complete()
}

// Phase returns the visit phase.
func (c *Customer) Phase() Phase {
	return c.phase
}

// Animation returns the current pose.
func (c *Customer) Animation() Animation {
	return c.animation
}

// Color returns the customer's colour.
func (c *Customer) Color() core.Color {
	return c.color
}

// Angry reports whether the customer left unhappy.
func (c *Customer) Angry() bool {
	return c.angry
}

// WalkedOut reports whether the customer ran out of patience.
func (c *Customer) WalkedOut() bool {
	return c.walkedOut
}

// Reply returns the last thing the customer said.
func (c *Customer) Reply() string {
	return c.reply
}

// Position returns the world position.
func (c *Customer) Position() core.Vec3 {
	return c.mover.Position()
}

// Heading returns the facing angle in degrees.
func (c *Customer) Heading() float64 {
	return c.mover.Heading()
}

// Patience returns how much patience has been used, in [0, 1].
func (c *Customer) Patience() float64 {
	if c.patience == nil || c.phase != Waiting {
		return 0
	}
	return c.patience.Percentage()
}
