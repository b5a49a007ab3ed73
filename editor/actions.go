package editor

import (
	"github.com/go-playground/validator/v10"
)

// Action is the closed set of state transitions a session understands.
// Every mutation of the graph model goes through exactly one of the
// concrete action types below; there is no other way to change a State.
type Action interface {
	// Kind returns the stable name of the action, used for logging and
	// listener notifications.
	Kind() string

	isAction()
}

// AddNode instantiates a NodeType into the active graph. Literal input
// values are seeded from the port defaults; group types also get a nested
// graph cloned from their template (or an empty one).
type AddNode struct {
	TypeID   string `validate:"required"`
	Position Position
}

// RemoveNode deletes a node from the active graph, cascading to its
// incident edges and, for group nodes, to their nested graphs and any
// navigation-stack entries under them.
type RemoveNode struct {
	NodeID string `validate:"required"`
}

// UpdateNodePosition replaces a node's canvas position.
type UpdateNodePosition struct {
	NodeID   string `validate:"required"`
	Position Position
}

// UpdateNodeInputValue assigns a literal value to an input port. Rejected
// when the port is connected: an incoming edge overrides any literal.
type UpdateNodeInputValue struct {
	NodeID   string `validate:"required"`
	PortName string `validate:"required"`
	Value    any
}

// Connect creates an edge between an output and an input port. An edge
// already feeding the target port is replaced, keeping fan-in at 1.
type Connect struct {
	Source       string `validate:"required"`
	SourceHandle string `validate:"required"`
	Target       string `validate:"required"`
	TargetHandle string `validate:"required"`
}

// Disconnect removes an edge by id.
type Disconnect struct {
	EdgeID string `validate:"required"`
}

// OpenNodeGroup pushes a group node onto the navigation stack, making its
// nested graph the active one.
type OpenNodeGroup struct {
	NodeID string `validate:"required"`
}

// CloseNodeGroup truncates the navigation stack to the given depth.
// Depth 0 returns to the root graph; Depth len(stack)-1 closes only the
// innermost group.
type CloseNodeGroup struct {
	Depth int `validate:"min=0"`
}

// RegisterNodeGroupType registers a brand-new reusable group NodeType with
// empty ports and an empty template graph. The allocated id is exposed via
// State.LastRegisteredTypeID for pickers that auto-select the new type.
type RegisterNodeGroupType struct {
	Name string `validate:"required"`
}

func (AddNode) Kind() string               { return "add_node" }
func (RemoveNode) Kind() string            { return "remove_node" }
func (UpdateNodePosition) Kind() string    { return "update_node_position" }
func (UpdateNodeInputValue) Kind() string  { return "update_node_input_value" }
func (Connect) Kind() string               { return "connect" }
func (Disconnect) Kind() string            { return "disconnect" }
func (OpenNodeGroup) Kind() string         { return "open_node_group" }
func (CloseNodeGroup) Kind() string        { return "close_node_group" }
func (RegisterNodeGroupType) Kind() string { return "register_node_group_type" }

func (AddNode) isAction()               {}
func (RemoveNode) isAction()            {}
func (UpdateNodePosition) isAction()    {}
func (UpdateNodeInputValue) isAction()  {}
func (Connect) isAction()               {}
func (Disconnect) isAction()            {}
func (OpenNodeGroup) isAction()         {}
func (CloseNodeGroup) isAction()        {}
func (RegisterNodeGroupType) isAction() {}

var actionValidator = validator.New(validator.WithRequiredStructEnabled())

// validateAction checks an action's shape: required ids and handles must be
// set. A failure here is a programmer error on the dispatching side.
func validateAction(action Action) error {
	if action == nil {
		return &InvalidActionError{Cause: ErrNilAction}
	}
	if err := actionValidator.Struct(action); err != nil {
		return &InvalidActionError{Action: action.Kind(), Cause: err}
	}
	return nil
}
