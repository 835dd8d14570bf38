package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// Wire format of a network model file.
type networkJSON struct {
	Cities    []cityJSON          `json:"cities"`
	Transfers [][]osmid.ElementID `json:"transfers"`
}

type cityJSON struct {
	Name      string         `json:"name"`
	ID        int            `json:"id"`
	Modes     []string       `json:"modes"`
	Good      bool           `json:"good"`
	Elements  []elementJSON  `json:"elements"`
	StopAreas []stopAreaJSON `json:"stop_areas"`
	Routes    []routeJSON    `json:"routes"`
}

type elementJSON struct {
	Type    osm.Type          `json:"type"`
	ID      int64             `json:"id"`
	Lat     *float64          `json:"lat,omitempty"`
	Lon     *float64          `json:"lon,omitempty"`
	Nodes   []osm.NodeID      `json:"nodes,omitempty"`
	Members []memberJSON      `json:"members,omitempty"`
	Center  *latLonJSON       `json:"center,omitempty"`
	Tags    map[string]string `json:"tags,omitempty"`
}

type memberJSON struct {
	Type osm.Type `json:"type"`
	Ref  int64    `json:"ref"`
	Role string   `json:"role"`
}

type latLonJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type stopAreaJSON struct {
	ID        osmid.ElementID                `json:"id"`
	Name      string                         `json:"name"`
	IntName   string                         `json:"int_name"`
	Center    [2]float64                     `json:"center"`
	Station   osmid.ElementID                `json:"station"`
	Platforms []osmid.ElementID              `json:"platforms"`
	Entrances []osmid.ElementID              `json:"entrances"`
	Exits     []osmid.ElementID              `json:"exits"`
	Centers   map[osmid.ElementID][2]float64 `json:"centers"`
}

type routeJSON struct {
	ID       osmid.ElementID `json:"id"`
	Mode     string          `json:"mode"`
	Ref      string          `json:"ref"`
	Name     string          `json:"name"`
	Colour   string          `json:"colour"`
	Infill   string          `json:"infill"`
	Variants []variantJSON   `json:"variants"`
}

type variantJSON struct {
	Interval *float64      `json:"interval"`
	Stops    []variantStop `json:"stops"`
}

type variantStop struct {
	StopArea osmid.ElementID `json:"stop_area"`
	Distance float64         `json:"distance"`
}

// LoadFile reads a network model from a JSON file.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network model: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a network model. Routes and transfers must only reference
// stop areas declared by some city.
func Load(r io.Reader) (*Network, error) {
	var raw networkJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode network model: %w", err)
	}

	net := &Network{}
	allStopAreas := map[osmid.ElementID]*StopArea{}
	for _, rc := range raw.Cities {
		city, err := rc.build(allStopAreas)
		if err != nil {
			return nil, fmt.Errorf("city %q: %w", rc.Name, err)
		}
		net.Cities = append(net.Cities, city)
	}

	for i, ids := range raw.Transfers {
		set := make(TransferSet, 0, len(ids))
		for _, id := range ids {
			sa, ok := allStopAreas[id]
			if !ok {
				return nil, fmt.Errorf("transfer %d: unknown stop area %s", i, id)
			}
			set = append(set, sa)
		}
		net.Transfers = append(net.Transfers, set)
	}
	return net, nil
}

func (rc cityJSON) build(allStopAreas map[osmid.ElementID]*StopArea) (*City, error) {
	city := &City{
		Name:     rc.Name,
		ID:       rc.ID,
		Modes:    rc.Modes,
		Good:     rc.Good,
		Elements: make(Elements, len(rc.Elements)),
	}
	for _, re := range rc.Elements {
		el, err := re.build()
		if err != nil {
			return nil, err
		}
		city.Elements[el.ID] = el
	}

	stopAreas := make(map[osmid.ElementID]*StopArea, len(rc.StopAreas))
	for _, rs := range rc.StopAreas {
		sa := rs.build()
		stopAreas[sa.ID] = sa
		allStopAreas[sa.ID] = sa
	}

	for _, rr := range rc.Routes {
		route := &Route{
			ID:     rr.ID,
			Mode:   rr.Mode,
			Ref:    rr.Ref,
			Name:   rr.Name,
			Colour: rr.Colour,
			Infill: rr.Infill,
		}
		for _, rv := range rr.Variants {
			variant := &Variant{Interval: rv.Interval}
			for _, st := range rv.Stops {
				sa, ok := stopAreas[st.StopArea]
				if !ok {
					return nil, fmt.Errorf("route %s: unknown stop area %s", rr.ID, st.StopArea)
				}
				variant.Stops = append(variant.Stops, &RouteStop{StopArea: sa, Distance: st.Distance})
			}
			route.Variants = append(route.Variants, variant)
		}
		city.Routes = append(city.Routes, route)
	}
	return city, nil
}

func (re elementJSON) build() (*Element, error) {
	el := &Element{Tags: tagsFromMap(re.Tags)}
	if re.Center != nil {
		el.Center = orb.Point{re.Center.Lon, re.Center.Lat}
		el.HasCenter = true
	}
	switch re.Type {
	case osm.TypeNode:
		if re.Lat == nil || re.Lon == nil {
			return nil, fmt.Errorf("node %d has no coordinates", re.ID)
		}
		el.ID = osmid.Node(re.ID)
		el.Geometry = PointGeometry{Point: orb.Point{*re.Lon, *re.Lat}}
	case osm.TypeWay:
		el.ID = osmid.Way(re.ID)
		el.Geometry = LineGeometry{Nodes: re.Nodes}
	case osm.TypeRelation:
		el.ID = osmid.Relation(re.ID)
		members := make(osm.Members, 0, len(re.Members))
		for _, m := range re.Members {
			members = append(members, osm.Member{Type: m.Type, Ref: m.Ref, Role: m.Role})
		}
		el.Geometry = AreaGeometry{Members: members}
	default:
		return nil, fmt.Errorf("element %d has unknown type %q", re.ID, re.Type)
	}
	return el, nil
}

func (rs stopAreaJSON) build() *StopArea {
	sa := &StopArea{
		ID:        rs.ID,
		Name:      rs.Name,
		IntName:   rs.IntName,
		Center:    orb.Point(rs.Center),
		Platforms: rs.Platforms,
		Entrances: rs.Entrances,
		Exits:     rs.Exits,
		Centers:   make(map[osmid.ElementID]orb.Point, len(rs.Centers)),
	}
	station := rs.Station
	if station.IsZero() {
		station = rs.ID
	}
	sa.Station = &Station{ID: station, Name: rs.Name}
	for id, p := range rs.Centers {
		sa.Centers[id] = orb.Point(p)
	}
	return sa
}

// tagsFromMap builds osm.Tags sorted by key so element tags are stable.
func tagsFromMap(m map[string]string) osm.Tags {
	if len(m) == 0 {
		return nil
	}
	tags := make(osm.Tags, 0, len(m))
	for k, v := range m {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	slices.SortFunc(tags, func(a, b osm.Tag) int { return strings.Compare(a.Key, b.Key) })
	return tags
}
