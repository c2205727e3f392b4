package kitchen

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/npc"
)

// World bounds covered by the map, kitchen and customer lane included.
const (
	worldMinX = -28.0
	worldMaxX = 0.0
	worldMinZ = -15.0
	worldMaxZ = 33.0
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH))
		return
	}

	g.renderHUD(dst)

	mapRect := core.NewRect(0, 2, dst.Width(), dst.Height()-4)
	dst.DrawBox(mapRect, core.ColorGray)
	inner := core.NewRect(mapRect.X+2, mapRect.Y+1, mapRect.W-4, mapRect.H-2)

	for i, st := range g.stations {
		g.renderStation(dst, inner, i, st)
	}
	if g.customer != nil && g.customer.Phase() != npc.Gone {
		x, y := project(inner, g.customer.Position())
		dst.SetColored(x, y, g.customer.Animation().Face(), g.customer.Color())
	}
	px, py := project(inner, g.player.Position())
	dst.SetColored(px+1, py, playerGlyph(g.player.Heading()), core.ColorWhite)

	g.renderStationBar(dst, dst.Height()-2)
	if g.message != "" {
		dst.DrawTextColored(0, dst.Height()-1, truncate(g.message, dst.Width()), core.ColorCyan)
	}

	switch {
	case g.gameOver:
		g.renderShiftOver(dst)
	case g.paused:
		g.renderPaused(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := int(math.Ceil(g.shift.Current()))
	timeColor := core.ColorGreen
	if left <= 15 {
		timeColor = core.ColorRed
	}
	dst.DrawTextColored(0, 0, g.Title(), core.ColorMagenta)
	hud := fmt.Sprintf("Score: %d", g.score.Total())
	dst.DrawText(len([]rune(g.Title()))+3, 0, hud)
	clock := fmt.Sprintf("Time %d:%02d", left/60, left%60)
	dst.DrawTextColored(dst.Width()-len(clock), 0, clock, timeColor)

	line := "Holding: " + g.holder.Describe()
	if g.customer != nil {
		line += "  |  " + describeCustomer(g.customer)
	}
	dst.DrawText(0, 1, truncate(line, dst.Width()))

	if g.customer != nil && g.customer.Phase() == npc.Waiting && g.customer.Patience() > 0 {
		bar := progressBar(1-g.customer.Patience(), 10)
		c := core.ColorGreen
		if g.customer.Patience() > 0.7 {
			c = core.ColorRed
		}
		dst.DrawTextColored(dst.Width()-len([]rune(bar)), 1, bar, c)
	}
}

func describeCustomer(c *npc.Customer) string {
	switch c.Phase() {
	case npc.Arriving:
		return fmt.Sprintf("Customer #%d is coming in", c.ID())
	case npc.Waiting:
		d, _ := c.GetOrder()
		o := c.Order()
		return fmt.Sprintf("#%d wants %s (%d/%d)", c.ID(), d.Label(), o.Served()+1, o.Len())
	default:
		if c.Angry() {
			return fmt.Sprintf("#%d is leaving angry", c.ID())
		}
		return fmt.Sprintf("#%d is leaving happy", c.ID())
	}
}

func (g *Game) renderStation(dst *core.Screen, inner core.Rect, i int, st *Station) {
	x, y := project(inner, st.Point.Position())

	keyColor := core.ColorGray
	if i == g.selected {
		keyColor = core.ColorYellow
	}
	if i < core.SlotCount {
		dst.SetColored(x-1, y, slotKey(i), keyColor)
	}

	switch st.Kind {
	case KindBasket:
		dst.SetColored(x, y, st.Basket.Kind.Glyph(), core.ColorGreen)
	case KindCounter:
		dst.SetColored(x, y, '=', core.ColorBlue)
	case KindAppliance:
		a := st.Appliance
		switch {
		case a.Cooking():
			dst.SetColored(x, y, cookGlyph(a.Progress()), core.ColorRed)
		case a.Plate() != nil:
			c := core.ColorOrange
			if a.Plate().Finished() {
				c = core.ColorYellow
			}
			dst.SetColored(x, y, a.Plate().Glyph(), c)
		default:
			dst.SetColored(x, y, '#', core.ColorOrange)
		}
	}
}

func (g *Game) renderStationBar(dst *core.Screen, y int) {
	x := 0
	for i, st := range g.stations {
		if i >= core.SlotCount {
			break
		}
		label := fmt.Sprintf("%c:%s ", slotKey(i), truncate(st.Label(), 3))
		c := core.ColorDefault
		if i == g.selected {
			c = core.ColorYellow
		}
		dst.DrawTextColored(x, y, label, c)
		x += len([]rune(label))
	}
	if g.selected < len(g.stations) {
		sel := g.stations[g.selected]
		hint := "> " + sel.Name
		if g.pending != nil {
			hint = "walking to " + g.pending.Name
		}
		if x+len(hint) < dst.Width() {
			dst.DrawTextColored(dst.Width()-len(hint), y, hint, core.ColorYellow)
		}
	}
}

func (g *Game) renderPaused(dst *core.Screen) {
	lines := append([]string{"PAUSED", ""}, recipeLines(g.recipes)...)
	lines = append(lines, "", "P resume  R restart")
	drawPanel(dst, lines, core.ColorCyan)
}

func (g *Game) renderShiftOver(dst *core.Screen) {
	lines := []string{
		"SHIFT OVER",
		"",
		fmt.Sprintf("Score:     %d", g.score.Total()),
		fmt.Sprintf("Served:    %d", g.stats.Served),
		fmt.Sprintf("Wrong:     %d", g.stats.Wrong),
		fmt.Sprintf("Walkouts:  %d", g.stats.Walkouts),
		"",
		"R restart  Q quit",
	}
	drawPanel(dst, lines, core.ColorYellow)
}

// drawPanel draws lines centered in a cleared box.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	w := 30
	for _, l := range lines {
		if n := len([]rune(l)) + 4; n > w {
			w = n
		}
	}
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for yy := box.Y; yy < box.Bottom(); yy++ {
		for xx := box.X; xx < box.Right(); xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawText(box.X+(w-len([]rune(l)))/2, box.Y+1+i, l)
	}
}

// project maps a world position into the map rectangle.
// World X runs top to bottom, world Z runs left to right.
func project(r core.Rect, v core.Vec3) (int, int) {
	fx := (v.Z - worldMinZ) / (worldMaxZ - worldMinZ)
	fy := (v.X - worldMinX) / (worldMaxX - worldMinX)
	x := r.X + int(math.Round(core.ClampF(fx, 0, 1)*float64(r.W-1)))
	y := r.Y + int(math.Round(core.ClampF(fy, 0, 1)*float64(r.H-1)))
	return x, y
}

// playerGlyph returns an arrow for a heading (0 = +Z = screen right).
func playerGlyph(heading float64) rune {
	switch int(math.Round(heading/90)) % 4 {
	case 1:
		return 'v'
	case 2:
		return '<'
	case 3:
		return '^'
	default:
		return '>'
	}
}

func cookGlyph(progress float64) rune {
	frames := []rune{'░', '▒', '▓', '█'}
	i := int(progress * float64(len(frames)))
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i]
}

func slotKey(i int) rune {
	if i == 9 {
		return '0'
	}
	return rune('1' + i)
}

func progressBar(frac float64, width int) string {
	n := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	return "[" + strings.Repeat("▓", n) + strings.Repeat("░", width-n) + "]"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// recipeLines lists the recipes for help screens.
func recipeLines(book *cooking.RecipeBook) []string {
	out := make([]string, 0, len(book.Recipes()))
	for _, r := range book.Recipes() {
		out = append(out, r.String())
	}
	return out
}
