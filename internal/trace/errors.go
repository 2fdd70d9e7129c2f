package trace

import (
	"errors"
	"fmt"
)

// Domain errors for recorded logs.
var (
	// ErrEmptyLog indicates a log without any step.
	ErrEmptyLog = errors.New("trace: log has no steps")

	// ErrIndexOutOfRange indicates an annotation pointing outside the step's sequence.
	ErrIndexOutOfRange = errors.New("trace: annotation index out of range")

	// ErrUnknownNode indicates a step referencing a node missing from the tree.
	ErrUnknownNode = errors.New("trace: step references unknown node")

	// ErrLengthMismatch indicates a step whose sequence length differs from the input.
	ErrLengthMismatch = errors.New("trace: sequence length differs from input")

	// ErrBadTree indicates a recursion tree whose nodes are not a well formed arena.
	ErrBadTree = errors.New("trace: malformed recursion tree")
)

// StepError wraps an error with the position of the offending step.
type StepError struct {
	Index   int
	Kind    Kind
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Kind, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
