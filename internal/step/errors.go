package step

import (
	"errors"
	"fmt"
)

// Sequence validation errors.
var (
	ErrEmptySequence     = errors.New("step: empty sequence")
	ErrMissingInitial    = errors.New("step: sequence does not start with an initial step")
	ErrMissingDone       = errors.New("step: sequence does not end with a done step")
	ErrMixedKinds        = errors.New("step: sequence mixes step kinds")
	ErrInvalidOperation  = errors.New("step: operation not valid for step kind")
	ErrDanglingReference = errors.New("step: reference to an entity missing from the snapshot")
	ErrSharedState       = errors.New("step: steps share mutable state")
	ErrDuplicateID       = errors.New("step: node id appears more than once")
)

// SequenceError locates a validation failure inside a sequence.
type SequenceError struct {
	Index   int
	Wrapped error
	Detail  string
}

func (e *SequenceError) Error() string {
	if e.Detail == "" {
		return e.Wrapped.Error()
	}
	return fmt.Sprintf("%v at step %d: %s", e.Wrapped, e.Index, e.Detail)
}

func (e *SequenceError) Unwrap() error {
	return e.Wrapped
}
