package mapsme

import (
	"encoding/json"
	"fmt"
)

// Document is the export handed to the mapping client.
type Document struct {
	Stops     []*StopRecord    `json:"stops"`
	Transfers []Transfer       `json:"transfers"`
	Networks  []*NetworkRecord `json:"networks"`
}

// StopRecord describes one stop area.
type StopRecord struct {
	Name      string           `json:"name"`
	IntName   string           `json:"int_name,omitempty"`
	Lat       float64          `json:"lat"`
	Lon       float64          `json:"lon"`
	OSMType   string           `json:"osm_type"`
	OSMID     int64            `json:"osm_id"`
	ID        int64            `json:"id"`
	Entrances []EntranceRecord `json:"entrances"`
	Exits     []EntranceRecord `json:"exits"`
}

// EntranceRecord is an entrance or exit of a stop. Distance is the walking
// time to the platform, in seconds.
type EntranceRecord struct {
	OSMType  string  `json:"osm_type"`
	OSMID    int64   `json:"osm_id"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	Distance int     `json:"distance"`
}

// NetworkRecord is the export of one city.
type NetworkRecord struct {
	Network  string         `json:"network"`
	Routes   []*RouteRecord `json:"routes"`
	AgencyID int            `json:"agency_id"`
}

// RouteRecord describes a route and its itineraries.
type RouteRecord struct {
	Type        string      `json:"type"`
	Ref         string      `json:"ref"`
	Name        string      `json:"name"`
	Colour      *string     `json:"colour"`
	Casing      *string     `json:"casing,omitempty"`
	RouteID     int64       `json:"route_id"`
	Itineraries []Itinerary `json:"itineraries"`
}

// Itinerary is one variant of a route. Interval is the headway in seconds.
type Itinerary struct {
	Stops    []ItineraryStop `json:"stops"`
	Interval int             `json:"interval"`
}

// ItineraryStop is a stop of an itinerary with the in-vehicle time from the
// first stop. It is encoded as [stop_id, seconds].
type ItineraryStop struct {
	StopID  int64
	Seconds int
}

func (s ItineraryStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{s.StopID, int64(s.Seconds)})
}

func (s *ItineraryStop) UnmarshalJSON(b []byte) error {
	var pair []int64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("itinerary stop: expected 2 values, got %d", len(pair))
	}
	s.StopID, s.Seconds = pair[0], int(pair[1])
	return nil
}

// Transfer is a walking connection between two stops, encoded as
// [stop_id, stop_id, seconds].
type Transfer struct {
	From    int64
	To      int64
	Seconds int
}

func (t Transfer) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int64{t.From, t.To, int64(t.Seconds)})
}

func (t *Transfer) UnmarshalJSON(b []byte) error {
	var triple []int64
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("transfer: expected 3 values, got %d", len(triple))
	}
	t.From, t.To, t.Seconds = triple[0], triple[1], int(triple[2])
	return nil
}

// Colour formats a "#rrggbb" tag value for export: without the leading '#',
// nil when unset.
func Colour(c string) *string {
	if c == "" {
		return nil
	}
	if c[0] == '#' {
		c = c[1:]
	}
	return &c
}
