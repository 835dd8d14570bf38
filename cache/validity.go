package cache

import (
	"fmt"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
	"github.com/theoremus-urban-solutions/subway-export/utils"
)

// DefaultThreshold is how far, in meters, a cached element may be from its
// live counterpart.
const DefaultThreshold = 300.0

// Validator decides whether a cached city still matches the live model.
type Validator struct {
	Threshold float64
	// StrictEntrances rejects a city when an entrance or exit is missing
	// or displaced. Otherwise entrance drift is tolerated.
	StrictEntrances bool
}

// Report is the outcome of a validity check.
type Report struct {
	Usable bool
	// Reason explains a rejection, empty when usable.
	Reason string
	// Entrances lists entrance problems, whether or not they rejected the city.
	Entrances []string
}

// IsUsable reports whether entry can be reused for city.
func (v Validator) IsUsable(city *model.City, entry *CityEntry) bool {
	return v.Check(city, entry).Usable
}

// Check validates every cached stop of entry against city, stopping at the
// first stop that fails.
func (v Validator) Check(city *model.City, entry *CityEntry) Report {
	if city == nil || entry == nil {
		return Report{Reason: "no city or cache entry"}
	}
	threshold := v.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	ids := make([]osmid.ElementID, 0, len(entry.Stops))
	for id := range entry.Stops {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, osmid.Compare)

	var report Report
	for _, id := range ids {
		stop := entry.Stops[id]
		if stop == nil {
			report.Reason = fmt.Sprintf("stop %s has no cached record", id)
			return report
		}
		if reason := checkStation(city, stop, threshold); reason != "" {
			report.Reason = fmt.Sprintf("stop %s: %s", id, reason)
			return report
		}
		for _, e := range append(append([]mapsme.EntranceRecord{}, stop.Entrances...), stop.Exits...) {
			if reason := checkEntrance(city, e, threshold); reason != "" {
				report.Entrances = append(report.Entrances, fmt.Sprintf("stop %s: %s", id, reason))
			}
		}
		if v.StrictEntrances && len(report.Entrances) > 0 {
			report.Reason = report.Entrances[0]
			return report
		}
	}
	report.Usable = true
	return report
}

func checkStation(city *model.City, stop *mapsme.StopRecord, threshold float64) string {
	stationID, err := osmid.FromTypeName(stop.OSMType, stop.OSMID)
	if err != nil {
		return err.Error()
	}
	el, ok := city.Elements.Get(stationID)
	if !ok {
		return fmt.Sprintf("station %s is gone", stationID)
	}
	if !city.IsStation(el) {
		return fmt.Sprintf("%s is no longer a station", stationID)
	}
	return checkDistance(el, stationID, orb.Point{stop.Lon, stop.Lat}, threshold)
}

func checkEntrance(city *model.City, e mapsme.EntranceRecord, threshold float64) string {
	id, err := osmid.FromTypeName(e.OSMType, e.OSMID)
	if err != nil {
		return err.Error()
	}
	el, ok := city.Elements.Get(id)
	if !ok {
		return fmt.Sprintf("entrance %s is gone", id)
	}
	return checkDistance(el, id, orb.Point{e.Lon, e.Lat}, threshold)
}

func checkDistance(el *model.Element, id osmid.ElementID, cached orb.Point, threshold float64) string {
	live, ok := el.Point()
	if !ok {
		return fmt.Sprintf("%s has no coordinates", id)
	}
	if d := utils.Distance(live, cached); d > threshold {
		return fmt.Sprintf("%s moved %.0fm", id, d)
	}
	return ""
}
