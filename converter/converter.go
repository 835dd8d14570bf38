package converter

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/subway-export/cache"
	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// Converter turns a network model into the export document, reusing cached
// cities where their geometry still holds.
type Converter struct {
	Opts Options
}

// NewConverter creates a new converter instance
func NewConverter(opts Options) *Converter {
	return &Converter{Opts: opts.withDefaults()}
}

func (c *Converter) validator() cache.Validator {
	return cache.Validator{Threshold: c.Opts.Threshold, StrictEntrances: c.Opts.StrictEntrances}
}

// Process runs one export. Good cities are rebuilt, the others are taken from
// the cache when still valid and skipped otherwise. The merged cache is
// written back when a cache path is set.
func (c *Converter) Process(net *model.Network) (*mapsme.Document, error) {
	doc := cache.Load(c.Opts.CachePath)
	warnings := NewWarningAggregator()
	defer warnings.LogAll()

	out := &mapsme.Document{
		Stops:     []*mapsme.StopRecord{},
		Transfers: []mapsme.Transfer{},
		Networks:  []*mapsme.NetworkRecord{},
	}
	stops := newStopSet()

	c.reuseCached(net, doc, out, stops, warnings)

	good := make([]*model.City, 0, len(net.Cities))
	for _, city := range net.Cities {
		if city.IsGood() {
			good = append(good, city)
		}
	}
	exits := NewPlatformExits()
	built, err := c.buildCities(good, exits, warnings)
	if err != nil {
		return nil, err
	}

	// A stop area shared by several cities is built once and cached under
	// each of them.
	stopCities := map[osmid.ElementID][]string{}
	var stopAreas []*model.StopArea
	index := map[osmid.ElementID]int{}
	for i, res := range built {
		city := good[i]
		out.Networks = append(out.Networks, res.Network)
		doc.Set(city.Name, res.Network, nil)
		for _, sa := range res.StopAreas {
			if j, ok := index[sa.ID]; ok {
				stopAreas[j] = sa
			} else {
				index[sa.ID] = len(stopAreas)
				stopAreas = append(stopAreas, sa)
			}
			if !slices.Contains(stopCities[sa.ID], city.Name) {
				stopCities[sa.ID] = append(stopCities[sa.ID], city.Name)
			}
		}
		log.Info().Str("city", city.Name).Int("routes", len(res.Network.Routes)).Msg("Rebuilt city")
	}

	for _, sa := range stopAreas {
		rec, err := BuildStopRecord(sa, exits, warnings)
		if err != nil {
			return nil, err
		}
		stops.put(sa.ID, rec)
		for _, name := range stopCities[sa.ID] {
			doc[name].Stops[sa.ID] = rec
		}
	}
	out.Stops = stops.records()

	out.Transfers, err = BuildTransfers(net.Transfers, stops.ids())
	if err != nil {
		return nil, err
	}

	if err := cache.Save(c.Opts.CachePath, doc); err != nil {
		return nil, err
	}
	log.Info().
		Int("stops", len(out.Stops)).
		Int("transfers", len(out.Transfers)).
		Int("networks", len(out.Networks)).
		Msg("Export finished")
	return out, nil
}

// reuseCached copies the cache entries of valid cities that are not good into
// out. Cached cities missing from net are left alone.
func (c *Converter) reuseCached(net *model.Network, doc cache.Document, out *mapsme.Document, stops *stopSet, warnings *WarningAggregator) {
	v := c.validator()
	for _, city := range net.Cities {
		if city.IsGood() {
			continue
		}
		entry, ok := doc[city.Name]
		if !ok {
			log.Info().Str("city", city.Name).Msg("Skipping city with no cache entry")
			continue
		}
		report := v.Check(city, entry)
		for _, problem := range report.Entrances {
			log.Debug().Str("city", city.Name).Msg(problem)
		}
		if !report.Usable {
			log.Info().Str("city", city.Name).Str("reason", report.Reason).Msg("Skipping city with stale cache")
			continue
		}
		for _, id := range sortedStopIDs(entry.Stops) {
			stops.put(id, entry.Stops[id])
		}
		out.Networks = append(out.Networks, entry.Network)
		log.Info().Str("city", city.Name).Msg("Taking city from cache")
	}

	for _, name := range sortedCityNames(doc) {
		if net.City(name) == nil {
			warnings.Add(WarningCachedCityNotInRun, name)
		}
	}
}

// buildCities rebuilds cities on a bounded pool. Results keep the order of
// cities.
func (c *Converter) buildCities(cities []*model.City, exits *PlatformExits, warnings *WarningAggregator) ([]*CityNetwork, error) {
	results := make([]*CityNetwork, len(cities))
	p := pool.New().WithErrors().WithMaxGoroutines(c.Opts.Workers)
	for i, city := range cities {
		p.Go(func() error {
			res, err := BuildNetwork(city, exits, warnings)
			if err != nil {
				return fmt.Errorf("city %q: %w", city.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CheckCache reports, for every city of net, whether its cache entry could be
// reused. Nothing is written.
func (c *Converter) CheckCache(net *model.Network) []CityCheck {
	doc := cache.Load(c.Opts.CachePath)
	v := c.validator()
	checks := make([]CityCheck, 0, len(net.Cities))
	for _, city := range net.Cities {
		check := CityCheck{City: city.Name, Good: city.IsGood()}
		if entry, ok := doc[city.Name]; ok {
			check.Cached = true
			check.Report = v.Check(city, entry)
		}
		checks = append(checks, check)
	}
	return checks
}

// stopSet keeps stop records in first-insertion order.
type stopSet struct {
	order []osmid.ElementID
	byID  map[osmid.ElementID]*mapsme.StopRecord
}

func newStopSet() *stopSet {
	return &stopSet{byID: map[osmid.ElementID]*mapsme.StopRecord{}}
}

func (s *stopSet) put(id osmid.ElementID, rec *mapsme.StopRecord) {
	if _, ok := s.byID[id]; !ok {
		s.order = append(s.order, id)
	}
	s.byID[id] = rec
}

func (s *stopSet) records() []*mapsme.StopRecord {
	recs := make([]*mapsme.StopRecord, 0, len(s.order))
	for _, id := range s.order {
		recs = append(recs, s.byID[id])
	}
	return recs
}

func (s *stopSet) ids() map[osmid.ElementID]bool {
	ids := make(map[osmid.ElementID]bool, len(s.byID))
	for id := range s.byID {
		ids[id] = true
	}
	return ids
}

func sortedStopIDs(stops map[osmid.ElementID]*mapsme.StopRecord) []osmid.ElementID {
	ids := make([]osmid.ElementID, 0, len(stops))
	for id, rec := range stops {
		if rec != nil {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, osmid.Compare)
	return ids
}

func sortedCityNames(doc cache.Document) []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
