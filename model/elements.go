package model

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// Geometry is the shape of a raw element. It is one of PointGeometry,
// LineGeometry or AreaGeometry.
type Geometry interface {
	geometry()
}

// PointGeometry is a node coordinate.
type PointGeometry struct {
	Point orb.Point
}

// LineGeometry is a way: an ordered list of node refs.
type LineGeometry struct {
	Nodes []osm.NodeID
}

// AreaGeometry is a relation: an ordered list of typed members.
type AreaGeometry struct {
	Members osm.Members
}

func (PointGeometry) geometry() {}
func (LineGeometry) geometry()  {}
func (AreaGeometry) geometry()  {}

// Element is a raw map element.
type Element struct {
	ID       osmid.ElementID
	Tags     osm.Tags
	Geometry Geometry

	// Center is supplied upstream for ways and relations.
	Center    orb.Point
	HasCenter bool
}

// Point returns the element coordinate: the node itself, else the
// upstream center when known.
func (e *Element) Point() (orb.Point, bool) {
	if g, ok := e.Geometry.(PointGeometry); ok {
		return g.Point, true
	}
	return e.Center, e.HasCenter
}

// Elements indexes a city's raw elements by typed id.
type Elements map[osmid.ElementID]*Element

func (m Elements) Get(id osmid.ElementID) (*Element, bool) {
	el, ok := m[id]
	return el, ok && el != nil
}

// CenterOf returns the coordinate of the element id, if it is known.
func (m Elements) CenterOf(id osmid.ElementID) (orb.Point, bool) {
	el, ok := m.Get(id)
	if !ok {
		return orb.Point{}, false
	}
	return el.Point()
}

// ResolveNodes resolves an element to its constituent node elements: a node
// resolves to itself, a way to its nodes in order, a relation to the nodes of
// its way members in member order. Refs missing from m are dropped.
func (m Elements) ResolveNodes(id osmid.ElementID) []*Element {
	el, ok := m.Get(id)
	if !ok {
		return nil
	}
	switch g := el.Geometry.(type) {
	case PointGeometry:
		return []*Element{el}
	case LineGeometry:
		return m.wayNodes(g)
	case AreaGeometry:
		var nodes []*Element
		for _, member := range g.Members {
			if member.Type != osm.TypeWay {
				continue
			}
			way, ok := m.Get(osmid.Way(member.Ref))
			if !ok {
				continue
			}
			if line, ok := way.Geometry.(LineGeometry); ok {
				nodes = append(nodes, m.wayNodes(line)...)
			}
		}
		return nodes
	}
	return nil
}

func (m Elements) wayNodes(g LineGeometry) []*Element {
	nodes := make([]*Element, 0, len(g.Nodes))
	for _, ref := range g.Nodes {
		if n, ok := m.Get(osmid.Node(int64(ref))); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
