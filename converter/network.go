package converter

import (
	"fmt"

	"github.com/paulmach/osm"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
	"github.com/theoremus-urban-solutions/subway-export/utils"
)

// CityNetwork is the export of one rebuilt city.
type CityNetwork struct {
	Network *mapsme.NetworkRecord
	// StopAreas met on the city routes, in first-encounter order.
	StopAreas []*model.StopArea
}

// BuildNetwork builds the network record of city. Exits of stop areas without
// entrances are synthesized from their platforms into exits.
func BuildNetwork(city *model.City, exits *PlatformExits, warnings *WarningAggregator) (*CityNetwork, error) {
	b := &networkBuilder{
		city:     city,
		exits:    exits,
		warnings: warnings,
		seen:     map[osmid.ElementID]int{},
	}
	network := &mapsme.NetworkRecord{
		Network:  city.Name,
		Routes:   make([]*mapsme.RouteRecord, 0, len(city.Routes)),
		AgencyID: city.ID,
	}
	for _, route := range city.Routes {
		rec, err := b.buildRoute(route)
		if err != nil {
			return nil, err
		}
		network.Routes = append(network.Routes, rec)
	}
	return &CityNetwork{Network: network, StopAreas: b.stopAreas}, nil
}

type networkBuilder struct {
	city      *model.City
	exits     *PlatformExits
	warnings  *WarningAggregator
	seen      map[osmid.ElementID]int
	stopAreas []*model.StopArea
}

func (b *networkBuilder) buildRoute(route *model.Route) (*mapsme.RouteRecord, error) {
	routeID, err := osmid.EncodeAs(route.ID, osm.TypeRelation)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", route.ID, err)
	}
	rec := &mapsme.RouteRecord{
		Type:        route.Mode,
		Ref:         route.Ref,
		Name:        route.Name,
		Colour:      mapsme.Colour(route.Colour),
		RouteID:     routeID,
		Itineraries: make([]mapsme.Itinerary, 0, len(route.Variants)),
	}
	if route.Infill != "" {
		rec.Casing = rec.Colour
		rec.Colour = mapsme.Colour(route.Infill)
	}

	for _, variant := range route.Variants {
		itin, err := b.buildItinerary(variant)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", route.ID, err)
		}
		rec.Itineraries = append(rec.Itineraries, itin)
	}
	return rec, nil
}

func (b *networkBuilder) buildItinerary(variant *model.Variant) (mapsme.Itinerary, error) {
	stops := make([]mapsme.ItineraryStop, 0, len(variant.Stops))
	for _, stop := range variant.Stops {
		sa := stop.StopArea
		stopID, err := osmid.Encode(sa.ID)
		if err != nil {
			return mapsme.Itinerary{}, fmt.Errorf("stop area %s: %w", sa.ID, err)
		}
		b.addStopArea(sa)
		stops = append(stops, mapsme.ItineraryStop{
			StopID:  stopID,
			Seconds: utils.TravelSeconds(stop.Distance, SpeedOnLine),
		})
		if len(sa.Entrances)+len(sa.Exits) == 0 {
			for _, pl := range sa.Platforms {
				b.platformExits(sa, pl)
			}
		}
	}

	interval := DefaultInterval
	if variant.Interval != nil {
		interval = *variant.Interval
	}
	return mapsme.Itinerary{Stops: stops, Interval: utils.Round(interval * 60)}, nil
}

// addStopArea records sa as surviving. A later object with the same id
// replaces the earlier one but keeps its position.
func (b *networkBuilder) addStopArea(sa *model.StopArea) {
	if i, ok := b.seen[sa.ID]; ok {
		b.stopAreas[i] = sa
		return
	}
	b.seen[sa.ID] = len(b.stopAreas)
	b.stopAreas = append(b.stopAreas, sa)
}

// platformExits synthesizes the exits of platform once per run. Lookups that
// fail in this city are not remembered, so another city holding the platform
// can still resolve it.
func (b *networkBuilder) platformExits(sa *model.StopArea, platform osmid.ElementID) []*model.Element {
	if exits, ok := b.exits.Get(platform); ok {
		return exits
	}
	if _, ok := b.city.Elements.Get(platform); !ok {
		b.warnings.Add(WarningMissingPlatform, platform.String())
		return nil
	}
	center, ok := sa.CenterOf(platform)
	if !ok {
		center, ok = b.city.Elements.CenterOf(platform)
	}
	if !ok {
		b.warnings.Add(WarningNoPlatformCenter, platform.String())
		return nil
	}
	nodes := b.city.Elements.ResolveNodes(platform)
	if len(nodes) == 0 {
		b.warnings.Add(WarningNoPlatformNodes, platform.String())
		return nil
	}
	return b.exits.Compute(platform, func() []*model.Element {
		return FindExits(center, nodes)
	})
}
