// Package kitchen implements the playable restaurant shift: the cook walks
// between stations, prepares dishes and serves customers before the shift
// clock runs out.
package kitchen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voodoo-kitchen/internal/config"
	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
	"github.com/vovakirdan/voodoo-kitchen/internal/npc"
	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
	"github.com/vovakirdan/voodoo-kitchen/internal/timer"
)

// Minimum terminal size for the kitchen map.
const (
	MinScreenW = 60
	MinScreenH = 18
)

// messageSeconds is how long a status message stays on screen.
const messageSeconds = 3.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetLogger sets the logger used by every shift. nil restores the silent logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Mode selects the shift length.
type Mode int

const (
	ModeShift Mode = iota // main shift length
	ModeRush              // short shift, scaled by the rush multiplier
)

func init() {
	registry.Register("kitchen", func() registry.Game { return New() })
	registry.Register("kitchen_rush", func() registry.Game { return NewRush() })
}

// Game implements one kitchen shift.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.KitchenConfig
	rng     *rand.Rand
	log     *log.Logger

	difficulty *config.DifficultyManager
	recipes    *cooking.RecipeBook
	menu       []cooking.Dish
	stations   []*Station
	selected   int

	player  *grid.Mover[grid.PlayerPoint]
	holder  cooking.Holder
	pending *Station // interaction queued until the cook reaches it

	score     cooking.ScoreBoard
	shift     *timer.Timer
	customer  *npc.Customer
	spawnIn   float64
	customers int
	stats     core.ShiftStats

	message    string
	messageTTL float64
	events     []core.Event
	tick       uint64
	paused     bool
	gameOver   bool
	tooSmall   bool
}

// New creates a main-length shift.
func New() *Game {
	return &Game{mode: ModeShift}
}

// NewRush creates a short rush shift.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "kitchen_rush"
	}
	return "kitchen"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "VooDoo Kitchen (Rush)"
	}
	return "VooDoo Kitchen"
}

// Reset starts a new shift.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	cfg, err := config.Load(configPath)
	if err != nil {
		g.log.Error("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultKitchenConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.configure(cfg)
}

// configure builds the kitchen from cfg. A config that fails to build is
// replaced by the defaults.
func (g *Game) configure(cfg config.KitchenConfig) {
	recipes, err := cfg.RecipeBook()
	if err == nil {
		g.stations, err = buildStations(cfg, recipes)
	}
	if err != nil {
		g.log.Error("invalid kitchen config, using defaults", "err", err)
		cfg = config.DefaultKitchenConfig()
		recipes, _ = cfg.RecipeBook()
		g.stations, _ = buildStations(cfg, recipes)
	}

	g.cfg = cfg
	g.recipes = recipes
	g.menu = recipes.Dishes()
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.tooSmall = g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH

	for _, st := range g.stations {
		if st.Appliance != nil {
			g.hookAppliance(st)
		}
	}

	g.player = grid.NewMover(cfg.StartPoint(), cfg.Player.Speed)
	g.selected = 0
	for i, st := range g.stations {
		if st.Point == cfg.StartPoint() {
			g.selected = i
		}
	}
	g.holder = cooking.Holder{}
	g.pending = nil

	g.score.Reset()
	g.score.OnChange = func(total int) { g.log.Debug("score", "total", total) }

	g.shift = timer.New(timer.Options{
		Start:     cfg.Shift.MainSeconds,
		Running:   true,
		Durations: timer.Durations{Main: cfg.Shift.MainSeconds, Short: cfg.Shift.ShortSeconds},
		OnDone:    g.endShift,
	})
	if g.mode == ModeRush {
		g.shift.ToggleLengthPreference()
		if rush := cfg.RushSeconds(); rush != cfg.Shift.ShortSeconds {
			g.shift.SetLength(rush)
		}
	}

	g.customer = nil
	g.spawnIn = cfg.Customers.SpawnDelay
	g.customers = 0
	g.stats = core.ShiftStats{Difficulty: string(difficultyPreset)}
	g.message = ""
	g.messageTTL = 0
	g.events = nil
	g.tick = 0
	g.paused = false
	g.gameOver = false

	g.log.Info("shift started", "seconds", g.shift.Current(), "seed", g.runtime.Seed,
		"stations", len(g.stations), "recipes", len(g.menu))
}

func (g *Game) hookAppliance(st *Station) {
	st.Appliance.OnDishMade = func(d cooking.Dish) {
		g.stats.Dishes++
		g.emit(core.EventDishMade)
		g.say(fmt.Sprintf("%s ready at the %s", d.Label(), st.Name))
		g.log.Info("dish made", "dish", d, "station", st.Name)
	}
	st.Appliance.OnCooked = func(it *cooking.IngredientItem) {
		g.say(fmt.Sprintf("%s is done at the %s", it.Kind().Label(), st.Name))
		g.log.Debug("cooked", "ingredient", it.Kind(), "station", st.Name)
	}
}

// Resize adapts to a new terminal size without restarting the shift.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return g.result()
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.TogglePause()
	}
	if g.paused || g.gameOver || g.tooSmall {
		return g.result()
	}

	g.tick++
	dt := g.runtime.DeltaTime()

	g.handleInput(in)
	g.stepPlayer(dt)
	g.stepAppliances(dt)
	g.stepCustomer(dt)
	g.shift.Step(dt)

	if g.messageTTL > 0 {
		g.messageTTL -= dt
		if g.messageTTL <= 0 {
			g.message = ""
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) handleInput(in core.InputFrame) {
	n := len(g.stations)
	if n == 0 {
		return
	}
	if in.Has(core.ActionLeft) {
		g.selected = (g.selected - 1 + n) % n
	}
	if in.Has(core.ActionRight) {
		g.selected = (g.selected + 1) % n
	}
	if slot := in.SelectedSlot(); slot >= 0 && slot < n {
		g.selected = slot
	}
	if in.Has(core.ActionInteract) {
		g.requestInteraction(g.stations[g.selected])
	}
}

// requestInteraction uses st now when the cook stands on it, otherwise walks
// there and queues the interaction.
func (g *Game) requestInteraction(st *Station) {
	if !g.player.Moving() && g.player.At(st.Point) {
		g.pending = nil
		g.interact(st)
		return
	}
	g.pending = st
	g.player.MoveTo(st.Point)
}

func (g *Game) stepPlayer(dt float64) {
	g.player.Step(dt)
	if g.pending != nil && !g.player.Moving() && g.player.At(g.pending.Point) {
		st := g.pending
		g.pending = nil
		g.interact(st)
	}
}

func (g *Game) stepAppliances(dt float64) {
	for _, st := range g.stations {
		if st.Appliance == nil {
			continue
		}
		if _, err := st.Appliance.Step(dt); err != nil {
			g.log.Error("cooking failed", "station", st.Name, "err", err)
		}
	}
}

func (g *Game) stepCustomer(dt float64) {
	if g.customer == nil {
		g.spawnIn -= dt
		if g.spawnIn <= 0 {
			g.spawnCustomer()
		}
		return
	}

	switch g.customer.Step(dt) {
	case npc.EventArrived:
		g.stats.Customers++
		if d, ok := g.customer.GetOrder(); ok {
			g.say(fmt.Sprintf("Customer #%d orders %s", g.customer.ID(), d.Label()))
		}
	case npc.EventWalkout:
		g.stats.Walkouts++
		g.score.IncreaseScore(g.cfg.Points.Walkout)
		g.emit(core.EventWalkout)
		g.say(fmt.Sprintf("Customer #%d got tired of waiting", g.customer.ID()))
		g.log.Warn("customer walked out", "customer", g.customer.ID(), "remaining", g.customer.Remaining())
	case npc.EventLeft:
		g.customer = nil
		g.spawnIn = g.cfg.Customers.SpawnDelay
	}
}

func (g *Game) spawnCustomer() {
	g.customers++
	score, ticks := g.score.Total(), int(g.tick)
	c := g.cfg.Customers
	cfg := npc.Config{
		Speed:       g.difficulty.Speed(c.Speed, score, ticks),
		Patience:    g.difficulty.Patience(c.Patience, c.MinPatience, score, ticks),
		OrderLength: g.difficulty.OrderLength(c.OrderLength, c.MaxOrderLength, score, ticks),
		Palette:     npc.Palette,
	}
	g.customer = npc.NewCustomer(g.customers, cfg, g.rng, g.menu)
	g.log.Debug("customer spawned", "customer", g.customers, "order", g.customer.Order().Dishes(),
		"patience", cfg.Patience)
}

// interact uses st with whatever the cook holds.
func (g *Game) interact(st *Station) {
	switch st.Kind {
	case KindBasket:
		g.useBasket(st)
	case KindAppliance:
		g.useAppliance(st)
	case KindCounter:
		g.serve()
	}
}

func (g *Game) useBasket(st *Station) {
	if it, ok := g.holder.Current().(*cooking.IngredientItem); ok &&
		it.Kind() == st.Basket.Kind && it.State() == cooking.Raw {
		g.holder.Take()
		g.say(fmt.Sprintf("Put the %s back", it.Kind().Label()))
		return
	}
	it, err := st.Basket.GiveIngredient(&g.holder)
	if err != nil {
		g.refuse(st, err)
		return
	}
	g.say("Picked up " + it.Kind().Label())
}

func (g *Game) useAppliance(st *Station) {
	out, err := st.Appliance.Interact(&g.holder)
	if err != nil {
		g.refuse(st, err)
		return
	}
	switch out {
	case cooking.OutcomePickedUp:
		g.say("Picked up " + g.holder.Describe())
	case cooking.OutcomePlaced:
		g.say("New dish on the " + st.Name)
	case cooking.OutcomeCooking:
		g.say("Cooking on the " + st.Name)
	case cooking.OutcomeNone:
		g.say("The " + st.Name + " is empty")
	}
}

func (g *Game) serve() {
	dish := g.holder.Dish()
	if dish == cooking.DishNone {
		g.say("Bring a finished dish to the counter")
		return
	}
	if g.customer == nil || g.customer.Phase() != npc.Waiting {
		g.say("Nobody is waiting at the counter")
		return
	}

	id := g.customer.ID()
	verdict := g.customer.DeliverOrder(dish)
	if verdict == npc.Ignored {
		return
	}
	g.holder.Take()

	switch verdict {
	case npc.Correct:
		g.stats.Served++
		g.score.IncreaseScore(g.cfg.Points.Correct)
		g.emit(core.EventOrderCorrect)
	case npc.Wrong:
		g.stats.Wrong++
		g.score.IncreaseScore(g.cfg.Points.Wrong)
		g.emit(core.EventOrderWrong)
	}
	g.say(fmt.Sprintf("#%d: %s", id, verdict.Reply()))
	g.log.Info("dish served", "customer", id, "dish", dish, "verdict", verdict)

	if g.customer.Complete() {
		if !g.customer.Angry() {
			g.score.IncreaseScore(g.cfg.Points.OrderBonus)
		}
		g.emit(core.EventOrderComplete)
	}
}

// refuse reports an interaction the kitchen rules rejected.
func (g *Game) refuse(st *Station, err error) {
	g.log.Warn("interaction refused", "station", st.Name, "holding", g.holder.Describe(), "err", err)
	switch {
	case errors.Is(err, cooking.ErrHandsFull):
		g.say("Your hands are full")
	case errors.Is(err, cooking.ErrStillCooking):
		g.say("Still cooking, wait for it")
	case errors.Is(err, cooking.ErrStationBusy):
		g.say("The " + st.Name + " is busy")
	case errors.Is(err, cooking.ErrDishFinished):
		g.say("That dish is ready, serve it")
	case errors.Is(err, cooking.ErrNoRecipe):
		g.say("Those don't go together")
	default:
		g.say(err.Error())
	}
}

func (g *Game) endShift() {
	g.gameOver = true
	g.pending = nil
	g.emit(core.EventShiftOver)
	g.stats.Seconds = g.elapsed()
	g.log.Info("shift over", "score", g.score.Total(), "served", g.stats.Served,
		"wrong", g.stats.Wrong, "walkouts", g.stats.Walkouts)
}

func (g *Game) elapsed() float64 {
	return float64(g.tick) * g.runtime.DeltaTime()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTTL = messageSeconds
}

// TogglePause switches between paused and running.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.shift.SetCanCount(!g.paused)
}

// Pause pauses a running shift. It does nothing when already paused.
func (g *Game) Pause() {
	if !g.paused && !g.gameOver {
		g.TogglePause()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Total(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the shift summary so far.
func (g *Game) Stats() core.ShiftStats {
	s := g.stats
	if !g.gameOver {
		s.Seconds = g.elapsed()
	}
	return s
}

// Recipes returns the active recipe book.
func (g *Game) Recipes() *cooking.RecipeBook {
	return g.recipes
}
