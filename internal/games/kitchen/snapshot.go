package kitchen

import "github.com/vovakirdan/voodoo-kitchen/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Mode          Mode
	Score         int
	TimeLeft      float64
	Selected      string
	PlayerAt      core.Vec3
	PlayerTarget  string
	PlayerMoving  bool
	Pending       string
	Holding       string
	Customer      int
	CustomerPhase string
	CustomerOrder []string
	Stations      []StationSnapshot
	Stats         core.ShiftStats
	Paused        bool
	GameOver      bool
}

// StationSnapshot is the content of one appliance.
type StationSnapshot struct {
	Name     string
	Plate    string // empty when nothing is on the station
	Progress float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Mode:         g.mode,
		Score:        g.score.Total(),
		TimeLeft:     g.shift.Current(),
		PlayerAt:     g.player.Position(),
		PlayerTarget: g.player.Target().String(),
		PlayerMoving: g.player.Moving(),
		Holding:      g.holder.Describe(),
		Stats:        g.Stats(),
		Paused:       g.paused,
		GameOver:     g.gameOver,
	}
	if g.selected < len(g.stations) {
		s.Selected = g.stations[g.selected].Name
	}
	if g.pending != nil {
		s.Pending = g.pending.Name
	}
	for _, st := range g.stations {
		if st.Appliance == nil {
			continue
		}
		ss := StationSnapshot{Name: st.Name, Progress: st.Appliance.Progress()}
		if p := st.Appliance.Plate(); p != nil {
			ss.Plate = p.Describe()
		}
		s.Stations = append(s.Stations, ss)
	}
	if g.customer != nil {
		s.Customer = g.customer.ID()
		s.CustomerPhase = g.customer.Phase().String()
		for _, d := range g.customer.Order().Dishes() {
			s.CustomerOrder = append(s.CustomerOrder, d.String())
		}
	}
	return s
}
