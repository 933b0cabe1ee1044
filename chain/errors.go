package chain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Engine and Chain operations.
var (
	// ErrOutOfBounds is returned when a position or count lies outside the
	// collection, including any positional access on an empty collection.
	ErrOutOfBounds = errors.New("chain: index out of bounds")

	// ErrNotFound is returned by the predicate forms of First and Last when
	// no element matches.
	ErrNotFound = errors.New("No element matching given comparator was found in the collection.")

	// ErrArithmetic is returned by numeric aggregations that cannot produce an
	// exact result, such as the average of an empty collection.
	ErrArithmetic = errors.New("chain: arithmetic error")
)

// IndexError describes a rejected positional access. It matches
// [ErrOutOfBounds] with errors.Is.
type IndexError struct {
	// Op is the operation that failed ("at", "first", "skip", …).
	Op string
	// Index is the requested position or count.
	Index int
	// Size is the number of elements in the collection.
	Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chain: %s: index %d out of bounds for size %d", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

func outOfBounds(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Size: size}
}
