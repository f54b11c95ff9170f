package strategy

import "fmt"

// Kind is a logical container category.
type Kind uint8

const (
	KindList Kind = iota
	KindSet
	KindSortedSet
	KindQueue
	KindDeque
	KindMap
)

var kindNames = [...]string{"List", "Set", "SortedSet", "Queue", "Deque", "Map"}

// String returns the kind name, e.g. "SortedSet".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Strategy is implemented by every variant type.
type Strategy interface {
	fmt.Stringer

	// Kind reports the container category the variant belongs to.
	Kind() Kind

	// Valid reports whether the value is one of the declared variants.
	Valid() bool

	// IsDefault reports whether the value is the kind's DEFAULT alias.
	IsDefault() bool
}

// CollectionStrategy is implemented by the variant types of element
// containers. Exactly one of the three queries is true for a given type;
// map strategies do not implement it.
type CollectionStrategy interface {
	Strategy

	// IsList reports whether the container preserves insertion sequence and
	// allows duplicates.
	IsList() bool

	// IsSet reports whether the container enforces element uniqueness.
	IsSet() bool

	// IsQueue reports whether the container has FIFO or priority semantics.
	IsQueue() bool
}

var (
	_ CollectionStrategy = List(0)
	_ CollectionStrategy = Set(0)
	_ CollectionStrategy = SortedSet(0)
	_ CollectionStrategy = Queue(0)
	_ CollectionStrategy = Deque(0)
	_ Strategy           = Map(0)
)
