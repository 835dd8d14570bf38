package osmid

import (
	"fmt"

	"github.com/paulmach/osm"
)

// typeCodes are folded into the low bits by Encode. 1 is unused.
var typeCodes = map[osm.Type]int64{
	osm.TypeNode:     0,
	osm.TypeWay:      2,
	osm.TypeRelation: 3,
}

// Largest refs that still fit in 63 bits after shifting.
const (
	maxEncodedRef = 1<<60 - 1
	maxTypedRef   = 1<<62 - 1
)

// ValidationError reports an element reference that cannot be encoded.
type ValidationError struct {
	ID       ElementID
	Expected osm.Type
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("got %s, expected %s", e.ID, e.Expected)
	}
	return fmt.Sprintf("cannot encode %s: %s", e.ID, e.Reason)
}

// Encode maps id to a 63-bit identifier that also encodes the element type.
func Encode(id ElementID) (int64, error) {
	code, ok := typeCodes[id.Type]
	if !ok {
		return 0, &ValidationError{ID: id, Reason: "unknown element type"}
	}
	if id.Ref < 0 || id.Ref > maxEncodedRef {
		return 0, &ValidationError{ID: id, Reason: "ref out of range"}
	}
	return ((id.Ref << 2) + code) << 1, nil
}

// EncodeAs maps id to a 63-bit identifier after checking that its type is
// expected. The type itself is not encoded.
func EncodeAs(id ElementID, expected osm.Type) (int64, error) {
	if id.Type != expected {
		return 0, &ValidationError{ID: id, Expected: expected}
	}
	if id.Ref < 0 || id.Ref > maxTypedRef {
		return 0, &ValidationError{ID: id, Reason: "ref out of range"}
	}
	return id.Ref << 1, nil
}
