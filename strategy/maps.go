package strategy

import "gopkg.in/yaml.v3"

// Map selects the backing structure of a string-keyed map. The variants
// differ in iteration order, identity versus equality key comparison, key
// retention and concurrency safety.
type Map uint8

const (
	// MapDefault resolves to MapHash.
	MapDefault Map = iota

	// MapHash iterates in no particular order.
	MapHash

	// MapHashtable is a hash map guarded by a single lock.
	MapHashtable

	// MapLinkedHash iterates in insertion order.
	MapLinkedHash

	// MapIdentityHash compares keys by the identity of their backing bytes
	// rather than by content.
	MapIdentityHash

	// MapConcurrentHash is safe for concurrent use without a global lock.
	MapConcurrentHash

	// MapWeakHash is a hash map kept as its own variant for configuration
	// compatibility.
	MapWeakHash

	// MapTree iterates in ascending key order.
	MapTree
)

var mapNames = names[Map]{
	kind: KindMap,
	values: []string{
		"DEFAULT",
		"HASH_MAP",
		"HASH_TABLE",
		"LINKED_HASH_MAP",
		"IDENTITY_HASH_MAP",
		"CONCURRENT_HASH_MAP",
		"WEAK_HASH_MAP",
		"TREE_MAP",
	},
}

// MapVariants returns every declared map variant in declaration order.
func MapVariants() []Map {
	out := make([]Map, len(mapNames.values))
	for i := range out {
		out[i] = Map(i)
	}
	return out
}

// ParseMap returns the map variant named by text.
func ParseMap(text string) (Map, error) { return mapNames.parse(text) }

func (s Map) String() string  { return mapNames.name(s) }
func (s Map) Kind() Kind      { return KindMap }
func (s Map) Valid() bool     { return mapNames.valid(s) }
func (s Map) IsDefault() bool { return s == MapDefault }

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to MapHash.
func (s Map) Resolve() Map {
	switch {
	case s == MapDefault:
		return MapHash
	case s.Valid():
		return s
	default:
		fallback(KindMap, s, MapHash)
		return MapHash
	}
}

func (s Map) MarshalText() ([]byte, error) { return mapNames.marshalText(s) }

func (s *Map) UnmarshalText(text []byte) error {
	v, err := mapNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Map) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := mapNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
