package model

import (
	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// Network is the validated input of one export run.
type Network struct {
	Cities    []*City
	Transfers []TransferSet
}

// City returns the city with the given name, or nil.
func (n *Network) City(name string) *City {
	for _, c := range n.Cities {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// City is one transit network with its raw elements.
type City struct {
	Name     string
	ID       int
	Modes    []string
	Good     bool
	Elements Elements
	Routes   []*Route
}

// IsGood reports whether the city passed upstream validation and must be
// rebuilt rather than taken from cache.
func (c *City) IsGood() bool { return c.Good }

func (c *City) HasMode(mode string) bool {
	return slices.Contains(c.Modes, mode)
}

// Route is a transit line.
type Route struct {
	ID       osmid.ElementID
	Mode     string
	Ref      string
	Name     string
	Colour   string
	Infill   string
	Variants []*Variant
}

// Variant is one direction or stopping pattern of a route.
type Variant struct {
	Stops []*RouteStop
	// Interval is the headway in minutes, nil when unknown.
	Interval *float64
}

// RouteStop is a stop of a variant.
type RouteStop struct {
	StopArea *StopArea
	// Distance along the route from its first stop, in meters.
	Distance float64
}

// StopArea groups a station with its platforms, entrances and exits.
// Sub-id slices keep source order, which exit synthesis depends on.
type StopArea struct {
	ID        osmid.ElementID
	Name      string
	IntName   string
	Center    orb.Point
	Station   *Station
	Platforms []osmid.ElementID
	Entrances []osmid.ElementID
	Exits     []osmid.ElementID
	// Centers maps any sub-element id, including the stop area itself, to
	// its coordinate.
	Centers map[osmid.ElementID]orb.Point
}

// CenterOf returns the recorded coordinate of a sub-element.
func (s *StopArea) CenterOf(id osmid.ElementID) (orb.Point, bool) {
	p, ok := s.Centers[id]
	return p, ok
}

// Station is the station element a stop area is built around.
type Station struct {
	ID   osmid.ElementID
	Name string
}

// TransferSet is a group of stop areas reachable from each other on foot.
type TransferSet []*StopArea
