package converter

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
	"github.com/theoremus-urban-solutions/subway-export/utils"
)

// BuildStopRecord builds the export record of a surviving stop area.
//
// Explicit node entrances and exits are used when the stop area has any.
// Otherwise the exits synthesized from its platforms serve as both, and when
// there are none the station point does.
func BuildStopRecord(sa *model.StopArea, exits *PlatformExits, warnings *WarningAggregator) (*mapsme.StopRecord, error) {
	id, err := osmid.Encode(sa.ID)
	if err != nil {
		return nil, fmt.Errorf("stop area %s: %w", sa.ID, err)
	}
	station := sa.ID
	if sa.Station != nil && !sa.Station.ID.IsZero() {
		station = sa.Station.ID
	}

	rec := &mapsme.StopRecord{
		Name:      sa.Name,
		IntName:   sa.IntName,
		Lat:       sa.Center.Lat(),
		Lon:       sa.Center.Lon(),
		OSMType:   string(station.Type),
		OSMID:     station.Ref,
		ID:        id,
		Entrances: []mapsme.EntranceRecord{},
		Exits:     []mapsme.EntranceRecord{},
	}

	if len(sa.Entrances)+len(sa.Exits) > 0 {
		rec.Entrances = explicitEntrances(sa, sa.Entrances, warnings)
		rec.Exits = explicitEntrances(sa, sa.Exits, warnings)
		return rec, nil
	}

	for _, pl := range sa.Platforms {
		nodes, _ := exits.Get(pl)
		for _, n := range nodes {
			p, _ := n.Point()
			e := entranceRecord(n.ID, p, sa.Center)
			rec.Entrances = append(rec.Entrances, e)
			rec.Exits = append(rec.Exits, e)
		}
	}
	if len(rec.Entrances) == 0 {
		warnings.Add(WarningStationFallback, sa.ID.String())
		p, ok := sa.CenterOf(sa.ID)
		if !ok {
			p = sa.Center
		}
		e := mapsme.EntranceRecord{
			OSMType:  string(station.Type),
			OSMID:    station.Ref,
			Lon:      p.Lon(),
			Lat:      p.Lat(),
			Distance: EntrancePenalty,
		}
		rec.Entrances = append(rec.Entrances, e)
		rec.Exits = append(rec.Exits, e)
	}
	return rec, nil
}

// explicitEntrances keeps node entrances only, since other element types have
// no single coordinate to export.
func explicitEntrances(sa *model.StopArea, ids []osmid.ElementID, warnings *WarningAggregator) []mapsme.EntranceRecord {
	records := make([]mapsme.EntranceRecord, 0, len(ids))
	for _, id := range ids {
		if id.Type != osm.TypeNode {
			continue
		}
		p, ok := sa.CenterOf(id)
		if !ok {
			warnings.Add(WarningNoEntranceCenter, id.String())
			continue
		}
		records = append(records, entranceRecord(id, p, sa.Center))
	}
	return records
}

func entranceRecord(id osmid.ElementID, p, center orb.Point) mapsme.EntranceRecord {
	return mapsme.EntranceRecord{
		OSMType:  string(id.Type),
		OSMID:    id.Ref,
		Lon:      p.Lon(),
		Lat:      p.Lat(),
		Distance: EntrancePenalty + utils.TravelSeconds(utils.Distance(p, center), SpeedToEntrance),
	}
}
