package osmid

import (
	"errors"
	"testing"

	"github.com/paulmach/osm"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		id       ElementID
		expected int64
	}{
		{name: "node", id: Node(1), expected: 8},
		{name: "way", id: Way(1), expected: 12},
		{name: "relation", id: Relation(1), expected: 14},
		{name: "zero node", id: Node(0), expected: 0},
		{name: "large way", id: Way(123456789), expected: ((123456789 << 2) + 2) << 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestEncode_Injective(t *testing.T) {
	seen := map[int64]ElementID{}
	for _, typ := range []osm.Type{osm.TypeNode, osm.TypeWay, osm.TypeRelation} {
		for ref := int64(0); ref < 2000; ref++ {
			id := ElementID{Type: typ, Ref: ref}
			v, err := Encode(id)
			if err != nil {
				t.Fatalf("encode %s: %v", id, err)
			}
			if other, ok := seen[v]; ok {
				t.Fatalf("%s and %s both encode to %d", id, other, v)
			}
			if v&1 != 0 {
				t.Fatalf("%s encodes to %d with the reserved bit set", id, v)
			}
			seen[v] = id
		}
	}
}

func TestEncode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		id   ElementID
	}{
		{name: "negative ref", id: Node(-1)},
		{name: "ref too large", id: Way(1 << 61)},
		{name: "unknown type", id: ElementID{Type: osm.Type("area"), Ref: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.id)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestEncodeAs(t *testing.T) {
	got, err := EncodeAs(Relation(42), osm.TypeRelation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 84 {
		t.Errorf("expected 84, got %d", got)
	}

	_, err = EncodeAs(Way(42), osm.TypeRelation)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Expected != osm.TypeRelation || verr.ID != Way(42) {
		t.Errorf("unexpected error fields: %+v", verr)
	}
	if verr.Error() != "got w42, expected relation" {
		t.Errorf("unexpected message %q", verr.Error())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ElementID
		wantErr bool
	}{
		{in: "n123", want: Node(123)},
		{in: "w7", want: Way(7)},
		{in: "r9000", want: Relation(9000)},
		{in: "x1", wantErr: true},
		{in: "n", wantErr: true},
		{in: "nabc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestFromTypeName(t *testing.T) {
	id, err := FromTypeName("way", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != Way(5) {
		t.Errorf("expected w5, got %s", id)
	}
	if _, err := FromTypeName("area", 5); err == nil {
		t.Error("expected error for unknown type name")
	}
}
