package strategy

import "gopkg.in/yaml.v3"

// SortedSet selects the backing structure of an ordered set. Sorted sets
// iterate in ascending order of their comparator, or of the element's
// natural order when none is supplied.
type SortedSet uint8

const (
	// SortedSetDefault resolves to SortedSetTree.
	SortedSetDefault SortedSet = iota

	// SortedSetTree is a balanced binary tree.
	SortedSetTree

	// SortedSetConcurrentSkipList is safe for concurrent use.
	SortedSetConcurrentSkipList
)

var sortedSetNames = names[SortedSet]{
	kind:   KindSortedSet,
	values: []string{"DEFAULT", "TREE_SET", "CONCURRENT_SKIP_LIST_SET"},
}

// SortedSetVariants returns every declared sorted set variant in declaration
// order.
func SortedSetVariants() []SortedSet {
	return []SortedSet{SortedSetDefault, SortedSetTree, SortedSetConcurrentSkipList}
}

// ParseSortedSet returns the sorted set variant named by text.
func ParseSortedSet(text string) (SortedSet, error) { return sortedSetNames.parse(text) }

func (s SortedSet) String() string  { return sortedSetNames.name(s) }
func (s SortedSet) Kind() Kind      { return KindSortedSet }
func (s SortedSet) Valid() bool     { return sortedSetNames.valid(s) }
func (s SortedSet) IsDefault() bool { return s == SortedSetDefault }
func (s SortedSet) IsList() bool    { return false }
func (s SortedSet) IsSet() bool     { return true }
func (s SortedSet) IsQueue() bool   { return false }

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to SortedSetTree.
func (s SortedSet) Resolve() SortedSet {
	switch s {
	case SortedSetTree, SortedSetConcurrentSkipList:
		return s
	case SortedSetDefault:
		return SortedSetTree
	default:
		fallback(KindSortedSet, s, SortedSetTree)
		return SortedSetTree
	}
}

func (s SortedSet) MarshalText() ([]byte, error) { return sortedSetNames.marshalText(s) }

func (s *SortedSet) UnmarshalText(text []byte) error {
	v, err := sortedSetNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s SortedSet) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *SortedSet) UnmarshalYAML(node *yaml.Node) error {
	v, err := sortedSetNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
