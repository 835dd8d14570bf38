package converter

import (
	"testing"

	"github.com/theoremus-urban-solutions/subway-export/mapsme"
	"github.com/theoremus-urban-solutions/subway-export/model"
	"github.com/theoremus-urban-solutions/subway-export/osmid"
)

func TestBuildTransfers_OnlySurvivors(t *testing.T) {
	a := stopArea(station(1, 0, 0))
	b := stopArea(station(2, 0, 0.001))
	c := stopArea(station(3, 0.001, 0))
	survivors := map[osmid.ElementID]bool{a.ID: true, b.ID: true}

	transfers, err := BuildTransfers([]model.TransferSet{{a, b, c}}, survivors)
	if err != nil {
		t.Fatalf("BuildTransfers failed: %v", err)
	}

	expected := []mapsme.Transfer{{From: 8, To: 16, Seconds: TransferSeconds(a, b)}}
	if len(transfers) != 1 || transfers[0] != expected[0] {
		t.Errorf("expected %v, got %v", expected, transfers)
	}
}

func TestBuildTransfers_AllPairs(t *testing.T) {
	set := model.TransferSet{
		stopArea(station(1, 0, 0)),
		stopArea(station(2, 0, 0.001)),
		stopArea(station(3, 0.001, 0)),
	}
	survivors := map[osmid.ElementID]bool{}
	for _, sa := range set {
		survivors[sa.ID] = true
	}

	transfers, err := BuildTransfers([]model.TransferSet{set, {}}, survivors)
	if err != nil {
		t.Fatalf("BuildTransfers failed: %v", err)
	}
	pairs := [][2]int64{{8, 16}, {8, 24}, {16, 24}}
	if len(transfers) != len(pairs) {
		t.Fatalf("expected %d transfers, got %v", len(pairs), transfers)
	}
	for i, p := range pairs {
		if transfers[i].From != p[0] || transfers[i].To != p[1] {
			t.Errorf("transfer %d: expected %v, got %v", i, p, transfers[i])
		}
	}
}

func TestBuildTransfers_NoSurvivors(t *testing.T) {
	set := model.TransferSet{stopArea(station(1, 0, 0)), stopArea(station(2, 0, 0.001))}
	transfers, err := BuildTransfers([]model.TransferSet{set}, nil)
	if err != nil {
		t.Fatalf("BuildTransfers failed: %v", err)
	}
	if transfers == nil || len(transfers) != 0 {
		t.Errorf("expected an empty non-nil list, got %#v", transfers)
	}
}

func TestTransferSeconds_Symmetric(t *testing.T) {
	pairs := [][2]*model.StopArea{
		{stopArea(station(1, 0, 0)), stopArea(station(2, 0, 0.001))},
		{stopArea(station(1, 37.61, 55.75)), stopArea(station(2, 37.62, 55.76))},
		{stopArea(station(1, 0, 0)), stopArea(station(2, 0, 0))},
	}
	for _, p := range pairs {
		if ab, ba := TransferSeconds(p[0], p[1]), TransferSeconds(p[1], p[0]); ab != ba {
			t.Errorf("%s-%s: %d != %d", p[0].ID, p[1].ID, ab, ba)
		}
	}
	if s := TransferSeconds(pairs[2][0], pairs[2][1]); s != TransferPenalty {
		t.Errorf("expected %d for colocated stops, got %d", TransferPenalty, s)
	}
}
