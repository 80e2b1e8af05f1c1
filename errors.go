package mtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a requested node capacity cannot
	// support the M-Tree's structural invariants (minCapacity must be at
	// least 2, and maxCapacity must be large enough that an overflowing
	// node can still split into two nodes each meeting minCapacity).
	ErrInvalidCapacity = errors.New("mtree: invalid capacity")

	// ErrNilDistanceFunc is returned when New is called without a distance
	// function.
	ErrNilDistanceFunc = errors.New("mtree: distance function must not be nil")

	// ErrEmptyTree reports that a tree holds no indexed items. The tree's
	// own operations do not return it: Remove on an empty tree reports
	// false, and a query on an empty tree yields no results.
	ErrEmptyTree = errors.New("mtree: tree is empty")
)

// ErrInvariantViolation reports a structural invariant violated during a
// debug-mode Check. It is never returned by ordinary mutation/query paths;
// see WithDebugChecks.
//
// The original detection context (if any) can be accessed via errors.Unwrap.
type ErrInvariantViolation struct {
	Invariant string
	Detail    string
	cause     error
}

func (e *ErrInvariantViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mtree: invariant violated: %s", e.Invariant)
	}
	return fmt.Sprintf("mtree: invariant violated: %s: %s", e.Invariant, e.Detail)
}

func (e *ErrInvariantViolation) Unwrap() error { return e.cause }
