package mapsme

import (
	"encoding/json"
	"testing"
)

func TestItineraryStop_JSON(t *testing.T) {
	b, err := json.Marshal(Itinerary{Stops: []ItineraryStop{{StopID: 8, Seconds: 0}, {StopID: 16, Seconds: 90}}, Interval: 150})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"stops":[[8,0],[16,90]],"interval":150}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}

	var it Itinerary
	if err := json.Unmarshal(b, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(it.Stops) != 2 || it.Stops[1] != (ItineraryStop{StopID: 16, Seconds: 90}) {
		t.Errorf("unexpected stops %+v", it.Stops)
	}

	var bad ItineraryStop
	if err := json.Unmarshal([]byte(`[1,2,3]`), &bad); err == nil {
		t.Error("expected error for 3-element itinerary stop")
	}
}

func TestTransfer_JSON(t *testing.T) {
	b, err := json.Marshal([]Transfer{{From: 8, To: 16, Seconds: 41}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `[[8,16,41]]` {
		t.Errorf("unexpected encoding %s", b)
	}

	var bad Transfer
	if err := json.Unmarshal([]byte(`[1,2]`), &bad); err == nil {
		t.Error("expected error for 2-element transfer")
	}
}

func TestColour(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		isNil    bool
	}{
		{in: "#ff0000", expected: "ff0000"},
		{in: "00ff00", expected: "00ff00"},
		{in: "", isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Colour(tt.in)
			if tt.isNil {
				if got != nil {
					t.Errorf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.expected {
				t.Errorf("expected %q, got %v", tt.expected, got)
			}
		})
	}
}

func TestRouteRecord_CasingOmitted(t *testing.T) {
	b, err := json.Marshal(RouteRecord{Type: "subway", Ref: "1", Name: "Line 1", RouteID: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"type":"subway","ref":"1","name":"Line 1","colour":null,"route_id":2,"itineraries":null}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}
