package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

func TestBuildNetwork_TwoStops(t *testing.T) {
	net, a, b := twoStopNetwork(true)
	city := net.Cities[0]

	res, err := BuildNetwork(city, NewPlatformExits(), NewWarningAggregator())
	if err != nil {
		t.Fatalf("BuildNetwork failed: %v", err)
	}

	colour := "ff0000"
	expected := &mapsme.NetworkRecord{
		Network:  "Testville",
		AgencyID: 1,
		Routes: []*mapsme.RouteRecord{{
			Type:    "subway",
			Ref:     "1",
			Name:    "Line 1",
			Colour:  &colour,
			RouteID: 20,
			Itineraries: []mapsme.Itinerary{{
				Stops:    []mapsme.ItineraryStop{{StopID: 8, Seconds: 0}, {StopID: 16, Seconds: 90}},
				Interval: 150,
			}},
		}},
	}
	if diff := pretty.Diff(expected, res.Network); len(diff) > 0 {
		t.Errorf("unexpected network:\n%s", strings.Join(diff, "\n"))
	}
	if len(res.StopAreas) != 2 || res.StopAreas[0] != a || res.StopAreas[1] != b {
		t.Errorf("expected stop areas [%s %s], got %v", a.ID, b.ID, res.StopAreas)
	}
}

func TestBuildNetwork_RouteFields(t *testing.T) {
	three := 3.0
	tests := []struct {
		name     string
		route    model.Route
		colour   *string
		casing   *string
		interval int
	}{
		{
			name:     "no colour",
			route:    model.Route{ID: osmid.Relation(1)},
			interval: 150,
		},
		{
			name:     "infill becomes colour",
			route:    model.Route{ID: osmid.Relation(1), Colour: "#ff0000", Infill: "#00ff00"},
			colour:   mapsme.Colour("00ff00"),
			casing:   mapsme.Colour("ff0000"),
			interval: 150,
		},
		{
			name:     "explicit interval",
			route:    model.Route{ID: osmid.Relation(1), Colour: "#123456"},
			colour:   mapsme.Colour("123456"),
			interval: 180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := tt.route
			variant := &model.Variant{}
			if tt.interval != 150 {
				variant.Interval = &three
			}
			route.Variants = []*model.Variant{variant}
			city := newCity("C", true)
			city.Routes = []*model.Route{&route}

			res, err := BuildNetwork(city, NewPlatformExits(), NewWarningAggregator())
			if err != nil {
				t.Fatalf("BuildNetwork failed: %v", err)
			}
			rec := res.Network.Routes[0]
			if diff := pretty.Diff(tt.colour, rec.Colour); len(diff) > 0 {
				t.Errorf("colour: %v", diff)
			}
			if diff := pretty.Diff(tt.casing, rec.Casing); len(diff) > 0 {
				t.Errorf("casing: %v", diff)
			}
			if got := rec.Itineraries[0].Interval; got != tt.interval {
				t.Errorf("expected interval %d, got %d", tt.interval, got)
			}
			if rec.Itineraries[0].Stops == nil {
				t.Error("empty itinerary should encode as an empty list")
			}
		})
	}
}

func TestBuildNetwork_RouteTypeMismatch(t *testing.T) {
	city := newCity("C", true)
	city.Routes = []*model.Route{{ID: osmid.Way(42)}}

	_, err := BuildNetwork(city, NewPlatformExits(), NewWarningAggregator())
	var verr *osmid.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Expected != osm.TypeRelation {
		t.Errorf("expected relation, got %s", verr.Expected)
	}
}

func TestBuildNetwork_SharedStopAreaOnce(t *testing.T) {
	net, a, b := twoStopNetwork(true)
	city := net.Cities[0]
	city.Routes = append(city.Routes, &model.Route{
		ID: osmid.Relation(11),
		Variants: []*model.Variant{{
			Stops: []*model.RouteStop{{StopArea: b}, {StopArea: a}},
		}},
	})

	res, err := BuildNetwork(city, NewPlatformExits(), NewWarningAggregator())
	if err != nil {
		t.Fatalf("BuildNetwork failed: %v", err)
	}
	if len(res.StopAreas) != 2 || res.StopAreas[0].ID != a.ID {
		t.Errorf("expected each stop area once in encounter order, got %v", res.StopAreas)
	}
}

func TestBuildNetwork_PlatformExits(t *testing.T) {
	s := station(1, 0, 0)
	platform := way(100, 11, 12, 13, 14)
	city := newCity("C", true,
		s, platform,
		node(11, 0.001, 0),
		node(12, 0.0011, 0),
		node(13, -0.001, 0),
		node(14, -0.0011, 0),
	)
	sa := stopArea(s)
	sa.Platforms = []osmid.ElementID{platform.ID, osmid.Way(999)}
	sa.Centers[platform.ID] = orb.Point{0, 0}

	withEntrance := stopArea(station(2, 0, 0.01))
	withEntrance.Platforms = []osmid.ElementID{osmid.Way(200)}
	withEntrance.Entrances = []osmid.ElementID{osmid.Node(21)}

	city.Routes = []*model.Route{{
		ID: osmid.Relation(10),
		Variants: []*model.Variant{
			{Stops: []*model.RouteStop{{StopArea: sa}, {StopArea: withEntrance}}},
			{Stops: []*model.RouteStop{{StopArea: withEntrance}, {StopArea: sa}}},
		},
	}}

	exits := NewPlatformExits()
	warnings := NewWarningAggregator()
	if _, err := BuildNetwork(city, exits, warnings); err != nil {
		t.Fatalf("BuildNetwork failed: %v", err)
	}

	got, ok := exits.Get(platform.ID)
	if !ok {
		t.Fatal("expected exits for the platform")
	}
	if r := refs(got); len(r) != 2 || r[0] != 11 || r[1] != 13 {
		t.Errorf("expected exits [11 13], got %v", r)
	}
	if _, ok := exits.Get(osmid.Way(200)); ok {
		t.Error("platforms of stop areas with entrances must not be thinned")
	}
	if n := warnings.Count(WarningMissingPlatform); n != 2 {
		t.Errorf("expected a missing platform warning per visit, got %d", n)
	}
	if _, ok := exits.Get(osmid.Way(999)); ok {
		t.Error("unresolved platforms must not be remembered")
	}
	if exits.Len() != 1 {
		t.Errorf("expected 1 platform computed, got %d", exits.Len())
	}
}
