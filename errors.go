package polybool

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error raised by the engine.
type Kind int

const (
	// InvalidInput means a polygon handed to the driver is structurally
	// malformed: an open face, or a face whose ring does not close.
	InvalidInput Kind = iota
	// DegenerateCrossing means the oracle reported an intersection point
	// that it then could not split from, and the record was dropped.
	// Diagnostics-only, never raised as an Error.
	DegenerateCrossing
	// UnresolvedTouching means Restitch finished with a crossing still
	// missing its edge_after link: a dead end in the cyclic edge list.
	UnresolvedTouching
	// OverlapConflict means a boundary chain on one polygon mapped to a
	// non-boundary or multi-edge chain on the other. Diagnostics-only.
	OverlapConflict
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case DegenerateCrossing:
		return "degenerate crossing"
	case UnresolvedTouching:
		return "unresolved touching point"
	case OverlapConflict:
		return "overlap conflict"
	default:
		return "unknown"
	}
}

// fatal reports whether a Kind is raised as an error rather than merely
// recorded in Diagnostics.
func (k Kind) fatal() bool {
	return k == InvalidInput || k == UnresolvedTouching
}

// Error is the error type raised by the engine's fatal Kinds.
type Error struct {
	Kind Kind
	msg  string
	err  error // carries a stack trace via github.com/pkg/errors
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind: kind,
		msg:  msg,
		err:  errors.WithStack(fmt.Errorf("%s: %s", kind, msg)),
	}
}

// Diagnostics accumulates non-fatal findings (DegenerateCrossing,
// OverlapConflict) produced over the course of one Boolean call. It is
// never required by a caller, but is useful when tuning an Oracle's
// epsilon against noisy input.
type Diagnostics struct {
	DroppedCrossings int
	OverlapConflicts int
}

func (d *Diagnostics) noteDropped() {
	if d != nil {
		d.DroppedCrossings++
	}
}

func (d *Diagnostics) noteOverlapConflict() {
	if d != nil {
		d.OverlapConflicts++
	}
}
