package kitchen

import (
	"sort"

	"github.com/vovakirdan/voodoo-kitchen/internal/config"
	"github.com/vovakirdan/voodoo-kitchen/internal/cooking"
	"github.com/vovakirdan/voodoo-kitchen/internal/grid"
)

// StationKind tells what happens when the cook uses a station.
type StationKind int

const (
	KindBasket StationKind = iota
	KindAppliance
	KindCounter
)

// Station is a grid point the cook can walk to and use.
type Station struct {
	Kind      StationKind
	Name      string
	Point     grid.PlayerPoint
	Basket    *cooking.Basket
	Appliance *cooking.Appliance
}

// Label returns the short name shown in the station bar.
func (s *Station) Label() string {
	return s.Name
}

// buildStations creates every station from cfg, ordered by grid point.
func buildStations(cfg config.KitchenConfig, recipes *cooking.RecipeBook) ([]*Station, error) {
	baskets, err := cfg.BasketList()
	if err != nil {
		return nil, err
	}
	apps, err := cfg.ApplianceList()
	if err != nil {
		return nil, err
	}

	stations := make([]*Station, 0, len(baskets)+len(apps)+1)
	for _, b := range baskets {
		stations = append(stations, &Station{
			Kind:   KindBasket,
			Name:   b.Kind.Label(),
			Point:  b.Point,
			Basket: b,
		})
	}
	for _, ac := range apps {
		a := cooking.NewAppliance(ac, recipes)
		stations = append(stations, &Station{
			Kind:      KindAppliance,
			Name:      a.Name(),
			Point:     a.Point(),
			Appliance: a,
		})
	}
	stations = append(stations, &Station{
		Kind:  KindCounter,
		Name:  "counter",
		Point: cfg.CounterPoint(),
	})

	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Point < stations[j].Point
	})
	return stations, nil
}
