package collections

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrOrderingContract is matched by every [OrderingError].
var ErrOrderingContract = errors.New("collections: element has no natural order")

// OrderingError is the panic value raised when a sorted container is asked to
// order an element type that has no natural order and no comparator was
// supplied. It is raised at insertion time by the backing structure, never
// ahead of time.
type OrderingError struct {
	// Type is the Go type of the element that could not be ordered.
	Type string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("collections: %s has no natural order, supply a comparator", e.Type)
}

// Is reports whether target is ErrOrderingContract.
func (e *OrderingError) Is(target error) bool { return target == ErrOrderingContract }
