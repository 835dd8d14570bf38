package osmid

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/paulmach/osm"
)

// ElementID references a raw map element by type and ref.
type ElementID struct {
	Type osm.Type
	Ref  int64
}

// Node, Way and Relation build element references of the matching type.
func Node(ref int64) ElementID     { return ElementID{Type: osm.TypeNode, Ref: ref} }
func Way(ref int64) ElementID      { return ElementID{Type: osm.TypeWay, Ref: ref} }
func Relation(ref int64) ElementID { return ElementID{Type: osm.TypeRelation, Ref: ref} }

// Parse reads the compact "n123" form.
func Parse(s string) (ElementID, error) {
	if len(s) < 2 {
		return ElementID{}, fmt.Errorf("invalid element id %q", s)
	}
	t, err := TypeFromTag(s[0])
	if err != nil {
		return ElementID{}, fmt.Errorf("invalid element id %q: %w", s, err)
	}
	ref, err := strconv.ParseInt(s[1:], 10, 64)
	if err != nil {
		return ElementID{}, fmt.Errorf("invalid element id %q: %w", s, err)
	}
	return ElementID{Type: t, Ref: ref}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) ElementID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromTypeName builds an ElementID from the long type name stored in cache
// records ("node", "way", "relation").
func FromTypeName(name string, ref int64) (ElementID, error) {
	t := osm.Type(name)
	if _, ok := typeCodes[t]; !ok {
		return ElementID{}, fmt.Errorf("unknown element type %q", name)
	}
	return ElementID{Type: t, Ref: ref}, nil
}

// TypeFromTag maps the one-character tag to an element type.
func TypeFromTag(tag byte) (osm.Type, error) {
	switch tag {
	case 'n':
		return osm.TypeNode, nil
	case 'w':
		return osm.TypeWay, nil
	case 'r':
		return osm.TypeRelation, nil
	}
	return "", fmt.Errorf("unknown element tag %q", tag)
}

// Tag is the one-character form of the element type, or 0 when unknown.
func (id ElementID) Tag() byte {
	switch id.Type {
	case osm.TypeNode:
		return 'n'
	case osm.TypeWay:
		return 'w'
	case osm.TypeRelation:
		return 'r'
	}
	return 0
}

func (id ElementID) IsZero() bool { return id.Type == "" && id.Ref == 0 }

func (id ElementID) String() string {
	tag := id.Tag()
	if tag == 0 {
		return fmt.Sprintf("%s%d", id.Type, id.Ref)
	}
	return string(tag) + strconv.FormatInt(id.Ref, 10)
}

// MarshalText lets ElementID key JSON objects.
func (id ElementID) MarshalText() ([]byte, error) {
	if id.Tag() == 0 {
		return nil, fmt.Errorf("cannot marshal element id of type %q", id.Type)
	}
	return []byte(id.String()), nil
}

func (id *ElementID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Compare orders ids by type, then ref.
func Compare(a, b ElementID) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	return cmp.Compare(a.Ref, b.Ref)
}
