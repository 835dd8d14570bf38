package cache

import (
	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

// Document maps a city name to its cached export.
type Document map[string]*CityEntry

// CityEntry is the cached export of one city.
type CityEntry struct {
	Network *mapsme.NetworkRecord                  `json:"network"`
	Stops   map[osmid.ElementID]*mapsme.StopRecord `json:"stops"`
}

// Set replaces the entry of a rebuilt city. Entries of other cities are kept,
// even when their city no longer exists.
func (d Document) Set(city string, network *mapsme.NetworkRecord, stops map[osmid.ElementID]*mapsme.StopRecord) {
	if stops == nil {
		stops = map[osmid.ElementID]*mapsme.StopRecord{}
	}
	d[city] = &CityEntry{Network: network, Stops: stops}
}
