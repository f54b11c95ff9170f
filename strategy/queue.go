package strategy

import "gopkg.in/yaml.v3"

// Queue selects the backing structure of a queue. The variants share the
// same logical queue semantics and differ in blocking behaviour, ordering
// (FIFO or priority) and thread safety.
type Queue uint8

const (
	// QueueDefault resolves to QueueLinkedList.
	QueueDefault Queue = iota

	// QueueConcurrentLinked is an unbounded non-blocking FIFO safe for
	// concurrent use.
	QueueConcurrentLinked

	// QueueLinkedBlocking is an unbounded FIFO whose Take blocks while empty.
	QueueLinkedBlocking

	// QueueLinkedList is a doubly linked list.
	QueueLinkedList

	// QueueLinkedTransfer is a blocking FIFO whose producers may wait for a
	// consumer to receive their element.
	QueueLinkedTransfer

	// QueuePriorityBlocking is a priority heap whose Take blocks while empty.
	QueuePriorityBlocking

	// QueuePriority is a priority heap.
	QueuePriority

	// QueueSynchronous has no capacity: every insertion is a hand-off to a
	// waiting consumer.
	QueueSynchronous

	// QueueArrayDeque is an array-backed double-ended queue.
	QueueArrayDeque

	// QueueConcurrentLinkedDeque is a linked double-ended queue safe for
	// concurrent use.
	QueueConcurrentLinkedDeque

	// QueueLinkedBlockingDeque is a linked double-ended queue whose takes
	// block while empty.
	QueueLinkedBlockingDeque
)

var queueNames = names[Queue]{
	kind: KindQueue,
	values: []string{
		"DEFAULT",
		"CONCURRENT_LINKED_QUEUE",
		"LINKED_BLOCKING_QUEUE",
		"LINKED_LIST",
		"LINKED_TRANSFER_QUEUE",
		"PRIORITY_BLOCKING_QUEUE",
		"PRIORITY_QUEUE",
		"SYNCHRONOUS_QUEUE",
		"ARRAY_DEQUE",
		"CONCURRENT_LINKED_DEQUE",
		"LINKED_BLOCKING_DEQUE",
	},
}

// QueueVariants returns every declared queue variant in declaration order.
func QueueVariants() []Queue {
	out := make([]Queue, len(queueNames.values))
	for i := range out {
		out[i] = Queue(i)
	}
	return out
}

// ParseQueue returns the queue variant named by text.
func ParseQueue(text string) (Queue, error) { return queueNames.parse(text) }

func (s Queue) String() string  { return queueNames.name(s) }
func (s Queue) Kind() Kind      { return KindQueue }
func (s Queue) Valid() bool     { return queueNames.valid(s) }
func (s Queue) IsDefault() bool { return s == QueueDefault }
func (s Queue) IsList() bool    { return false }
func (s Queue) IsSet() bool     { return false }
func (s Queue) IsQueue() bool   { return true }

// Blocking reports whether the variant's container offers Put/Take
// operations that wait.
func (s Queue) Blocking() bool {
	switch s {
	case QueueLinkedBlocking, QueueLinkedTransfer, QueuePriorityBlocking,
		QueueSynchronous, QueueLinkedBlockingDeque:
		return true
	}
	return false
}

// Prioritized reports whether the variant orders elements by a comparator
// instead of by arrival.
func (s Queue) Prioritized() bool {
	return s == QueuePriority || s == QueuePriorityBlocking
}

// Resolve returns the concrete variant s stands for. DEFAULT and unknown
// values resolve to QueueLinkedList.
func (s Queue) Resolve() Queue {
	switch {
	case s == QueueDefault:
		return QueueLinkedList
	case s.Valid():
		return s
	default:
		fallback(KindQueue, s, QueueLinkedList)
		return QueueLinkedList
	}
}

func (s Queue) MarshalText() ([]byte, error) { return queueNames.marshalText(s) }

func (s *Queue) UnmarshalText(text []byte) error {
	v, err := queueNames.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Queue) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *Queue) UnmarshalYAML(node *yaml.Node) error {
	v, err := queueNames.unmarshalYAML(node)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
