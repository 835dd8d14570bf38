package converter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// metersPerDegree is one degree of latitude, or of longitude at the equator.
const metersPerDegree = 111319.49

func node(ref int64, lon, lat float64, tags ...osm.Tag) *model.Element {
	return &model.Element{
		ID:       osmid.Node(ref),
		Tags:     tags,
		Geometry: model.PointGeometry{Point: orb.Point{lon, lat}},
	}
}

func station(ref int64, lon, lat float64) *model.Element {
	return node(ref, lon, lat,
		osm.Tag{Key: "railway", Value: "station"},
		osm.Tag{Key: "station", Value: "subway"},
	)
}

func way(ref int64, nodes ...osm.NodeID) *model.Element {
	return &model.Element{ID: osmid.Way(ref), Geometry: model.LineGeometry{Nodes: nodes}}
}

func stopArea(el *model.Element) *model.StopArea {
	p, _ := el.Point()
	return &model.StopArea{
		ID:      el.ID,
		Name:    "Stop " + el.ID.String(),
		Center:  p,
		Station: &model.Station{ID: el.ID},
		Centers: map[osmid.ElementID]orb.Point{el.ID: p},
	}
}

func newCity(name string, good bool, elements ...*model.Element) *model.City {
	city := &model.City{
		Name:     name,
		ID:       1,
		Modes:    []string{"subway"},
		Good:     good,
		Elements: model.Elements{},
	}
	for _, el := range elements {
		city.Elements[el.ID] = el
	}
	return city
}

// twoStopNetwork is one city with one route of one variant serving two
// stations 1000 m apart, none with entrances or platforms.
func twoStopNetwork(good bool) (*model.Network, *model.StopArea, *model.StopArea) {
	lat2 := 1000 / metersPerDegree
	s1, s2 := station(1, 0, 0), station(2, 0, lat2)
	a, b := stopArea(s1), stopArea(s2)

	city := newCity("Testville", good, s1, s2)
	city.Routes = []*model.Route{{
		ID:     osmid.Relation(10),
		Mode:   "subway",
		Ref:    "1",
		Name:   "Line 1",
		Colour: "#ff0000",
		Variants: []*model.Variant{{
			Stops: []*model.RouteStop{
				{StopArea: a, Distance: 0},
				{StopArea: b, Distance: 1000},
			},
		}},
	}}
	return &model.Network{Cities: []*model.City{city}}, a, b
}
