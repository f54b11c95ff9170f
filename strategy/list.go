package strategy

import "gopkg.in/yaml.v3"

// List selects the backing structure of a list.
type List uint8

const (
	// ListDefault resolves to ListArray.
	ListDefault List = iota

	// ListArray is a contiguous growable array: O(1) append, O(n) insert.
	ListArray

	// ListLinked is a doubly linked list: O(1) insert at either end.
	ListLinked

	// ListStack is a synchronized growable array with LIFO operations.
	ListStack

	// ListVector is a synchronized growable array.
	ListVector
)

var listNames = names[List]{
	kind:   KindList,
	values: []string{"DEFAULT", "ARRAY_LIST", "LINKED_LIST", "STACK", "VECTOR"},
}

// ListVariants returns every declared list variant in declaration order.
func ListVariants() []List {
	return []List{ListDefault, ListArray, ListLinked, ListStack, ListVector}
}

// ParseList returns the list variant named by text.
func ParseList(text string) (List, error) { return listNames.parse(text) }

func (s List) String() string  { return listNames.name(s) }
func (s List) Kind() Kind      { return KindList }
func (s List) Valid() bool     { return listNames.valid(s) }
func (s List) IsDefault() bool { return s == ListDefault }
func (s List) IsList() bool    { return true }
func (s List) IsSet() bool     { return false }
func (s List) IsQueue() bool   { return false }

// Synchronized reports whether the variant's container is safe for
// concurrent use.
func (s List) Synchronized() bool { return s == ListStack || s == ListVector }

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to ListArray.
func (s List) Resolve() List {
	switch s {
	case ListArray, ListLinked, ListStack, ListVector:
		return s
	case ListDefault:
		return ListArray
	default:
		fallback(KindList, s, ListArray)
		return ListArray
	}
}

func (s List) MarshalText() ([]byte, error) { return listNames.marshalText(s) }

func (s *List) UnmarshalText(text []byte) error {
	v, err := listNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s List) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *List) UnmarshalYAML(node *yaml.Node) error {
	v, err := listNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
