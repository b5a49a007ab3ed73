package editor

import (
	"errors"
	"fmt"
)

// RejectReason classifies why the reducer refused an action.
type RejectReason string

const (
	// ReasonUnknownTypeReference means an action referenced a DataType or
	// NodeType id absent from the registries.
	ReasonUnknownTypeReference RejectReason = "unknown_type_reference"

	// ReasonUnknownNode means a referenced node is not in the active graph.
	ReasonUnknownNode RejectReason = "unknown_node"

	// ReasonUnknownPort means a referenced handle is not a port of the
	// node's type.
	ReasonUnknownPort RejectReason = "unknown_port"

	// ReasonUnknownEdge means a referenced edge is not in the active graph.
	ReasonUnknownEdge RejectReason = "unknown_edge"

	// ReasonSelfLoop means a connection had the same node on both ends.
	ReasonSelfLoop RejectReason = "self_loop"

	// ReasonTypeMismatch means two ports resolved to different DataTypes.
	ReasonTypeMismatch RejectReason = "type_mismatch"

	// ReasonValidationFailed means a complex literal value was rejected by
	// its DataType's ValueSchema, or a non-input port was assigned one.
	ReasonValidationFailed RejectReason = "validation_failed"

	// ReasonPortConnected means a literal edit targeted a port currently
	// driven by an edge. Connections override literals.
	ReasonPortConnected RejectReason = "port_connected"

	// ReasonNotAGroup means a group operation targeted a non-group node.
	ReasonNotAGroup RejectReason = "not_a_group"

	// ReasonRecursiveGroup means adding the node would nest a group type
	// inside one of its own instances.
	ReasonRecursiveGroup RejectReason = "recursive_group"

	// ReasonEmptyStack means a navigation action targeted a stack depth
	// that does not exist.
	ReasonEmptyStack RejectReason = "empty_stack"
)

// Rejection is returned by Reduce when an action fails a precondition. The
// state is left untouched; rejections are recoverable no-ops, never panics.
type Rejection struct {
	// Reason classifies the failed precondition.
	Reason RejectReason

	// Detail names the offending id, handle or value.
	Detail string

	// Cause carries an underlying validation error, if any.
	Cause error
}

func (r *Rejection) Error() string {
	if r.Cause != nil {
		return fmt.Sprintf("action rejected (%s): %s: %v", r.Reason, r.Detail, r.Cause)
	}
	return fmt.Sprintf("action rejected (%s): %s", r.Reason, r.Detail)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (r *Rejection) Unwrap() error {
	return r.Cause
}

func rejectf(reason RejectReason, format string, v ...any) *Rejection {
	return &Rejection{Reason: reason, Detail: fmt.Sprintf(format, v...)}
}

// AsRejection extracts a *Rejection from an error, if it wraps one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// InvalidActionError reports a malformed action: a nil action, an unknown
// action kind, or missing required fields. Unlike a Rejection this is a
// programmer error on the dispatching side, not a user edit that failed.
type InvalidActionError struct {
	// Action is the kind of the offending action, if known.
	Action string

	// Cause is the shape-validation failure.
	Cause error
}

func (e *InvalidActionError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("invalid action: %v", e.Cause)
	}
	return fmt.Sprintf("invalid %s action: %v", e.Action, e.Cause)
}

// Unwrap exposes the shape-validation failure.
func (e *InvalidActionError) Unwrap() error {
	return e.Cause
}

// ErrNilAction is returned when Reduce is called with a nil action.
var ErrNilAction = errors.New("nil action")
