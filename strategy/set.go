package strategy

import "gopkg.in/yaml.v3"

// Set selects the backing structure of an unordered set.
type Set uint8

const (
	// SetDefault resolves to SetHash.
	SetDefault Set = iota

	// SetHash is hash-bucketed with no iteration order guarantee.
	SetHash

	// SetLinkedHash is hash-bucketed and iterates in insertion order.
	SetLinkedHash
)

var setNames = names[Set]{
	kind:   KindSet,
	values: []string{"DEFAULT", "HASH_SET", "LINKED_HASH_SET"},
}

// SetVariants returns every declared set variant in declaration order.
func SetVariants() []Set { return []Set{SetDefault, SetHash, SetLinkedHash} }

// ParseSet returns the set variant named by text.
func ParseSet(text string) (Set, error) { return setNames.parse(text) }

func (s Set) String() string  { return setNames.name(s) }
func (s Set) Kind() Kind      { return KindSet }
func (s Set) Valid() bool     { return setNames.valid(s) }
func (s Set) IsDefault() bool { return s == SetDefault }
func (s Set) IsList() bool    { return false }
func (s Set) IsSet() bool     { return true }
func (s Set) IsQueue() bool   { return false }

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to SetHash.
func (s Set) Resolve() Set {
	switch s {
	case SetHash, SetLinkedHash:
		return s
	case SetDefault:
		return SetHash
	default:
		fallback(KindSet, s, SetHash)
		return SetHash
	}
}

func (s Set) MarshalText() ([]byte, error) { return setNames.marshalText(s) }

func (s *Set) UnmarshalText(text []byte) error {
	v, err := setNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Set) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	v, err := setNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
