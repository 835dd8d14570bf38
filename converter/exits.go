package converter

import (
	"github.com/paulmach/orb"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
	"github.com/theoremus-urban-solutions/subway-export/utils"
)

// FindExits thins the nodes of a platform outline down to a set of exits
// spread around center.
//
// The first node fixes the minimum separation at two thirds of its distance
// to center. Later nodes nearer to center than that are skipped, and a node is
// kept only if it is at least the minimum separation away from every exit
// kept so far. The result depends on node order, which callers must keep
// stable.
func FindExits(center orb.Point, nodes []*model.Element) []*model.Element {
	exits := make([]*model.Element, 0, len(nodes))
	var minDistance float64
	for _, n := range nodes {
		p, ok := n.Point()
		if !ok {
			continue
		}
		d := utils.Distance(center, p)
		if minDistance == 0 {
			minDistance = d * 2 / 3
		} else if d < minDistance {
			continue
		}

		tooClose := false
		for _, e := range exits {
			ep, _ := e.Point()
			if utils.Distance(ep, p) < minDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			exits = append(exits, n)
		}
	}
	return exits
}

// PlatformExits remembers the exits synthesized for each platform during one
// run. It is safe for concurrent use by per-city builders.
type PlatformExits struct {
	m *xsync.MapOf[osmid.ElementID, []*model.Element]
}

func NewPlatformExits() *PlatformExits {
	return &PlatformExits{m: xsync.NewMapOf[osmid.ElementID, []*model.Element]()}
}

// Compute returns the exits of platform, calling find only the first time the
// platform is seen.
func (p *PlatformExits) Compute(platform osmid.ElementID, find func() []*model.Element) []*model.Element {
	exits, _ := p.m.LoadOrCompute(platform, find)
	return exits
}

// Get returns the exits computed for platform, if any.
func (p *PlatformExits) Get(platform osmid.ElementID) ([]*model.Element, bool) {
	return p.m.Load(platform)
}

// Len is the number of platforms seen.
func (p *PlatformExits) Len() int {
	return p.m.Size()
}
