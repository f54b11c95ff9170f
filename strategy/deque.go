package strategy

import "gopkg.in/yaml.v3"

// Deque selects the backing structure of a double-ended queue.
type Deque uint8

const (
	// DequeDefault resolves to DequeLinkedList.
	DequeDefault Deque = iota
	DequeLinkedList
	DequeArray
	DequeConcurrentLinked
	DequeLinkedBlocking
)

var dequeNames = names[Deque]{
	kind: KindDeque,
	values: []string{
		"DEFAULT",
		"LINKED_LIST",
		"ARRAY_DEQUE",
		"CONCURRENT_LINKED_DEQUE",
		"LINKED_BLOCKING_DEQUE",
	},
}

// DequeVariants returns every declared deque variant in declaration order.
func DequeVariants() []Deque {
	return []Deque{DequeDefault, DequeLinkedList, DequeArray, DequeConcurrentLinked, DequeLinkedBlocking}
}

// ParseDeque returns the deque variant named by text.
func ParseDeque(text string) (Deque, error) { return dequeNames.parse(text) }

func (s Deque) String() string  { return dequeNames.name(s) }
func (s Deque) Kind() Kind      { return KindDeque }
func (s Deque) Valid() bool     { return dequeNames.valid(s) }
func (s Deque) IsDefault() bool { return s == DequeDefault }
func (s Deque) IsList() bool    { return false }
func (s Deque) IsSet() bool     { return false }
func (s Deque) IsQueue() bool   { return true }

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to DequeLinkedList.
func (s Deque) Resolve() Deque {
	switch s {
	case DequeLinkedList, DequeArray, DequeConcurrentLinked, DequeLinkedBlocking:
		return s
	case DequeDefault:
		return DequeLinkedList
	default:
		fallback(KindDeque, s, DequeLinkedList)
		return DequeLinkedList
	}
}

// Queue returns the queue variant backed by the same structure.
func (s Deque) Queue() Queue {
	switch s.Resolve() {
	case DequeArray:
		return QueueArrayDeque
	case DequeConcurrentLinked:
		return QueueConcurrentLinkedDeque
	case DequeLinkedBlocking:
		return QueueLinkedBlockingDeque
	default:
		return QueueLinkedList
	}
}

func (s Deque) MarshalText() ([]byte, error) { return dequeNames.marshalText(s) }

func (s *Deque) UnmarshalText(text []byte) error {
	v, err := dequeNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Deque) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *Deque) UnmarshalYAML(node *yaml.Node) error {
	v, err := dequeNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
