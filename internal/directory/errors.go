package directory

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError through errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports a position that is not valid for the list size at the time of the call.
type OutOfRangeError struct {
	Op    string // Op is the operation that rejected the index: remove, move.
	Index int    // Index is the first offending position.
	Len   int    // Len is the size of the index space the position was checked against.
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %v: %d not in [0, %d)", e.Op, ErrOutOfRange, e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
