// Package editor implements the state engine of a visual node-graph
// editor: typed entity registries, the graph data model with nested node
// groups, and the action-driven reducer that mutates it.
//
// # Model
//
// A State holds the immutable type catalogs (DataType, NodeType), the root
// GraphStore, one nested GraphStore per group node, and the navigation
// stack of opened groups. Nodes instantiate NodeTypes; edges connect an
// output port to an input port of equal DataType. An input port accepts at
// most one incoming edge, an output port may fan out freely. Cycles are
// allowed: this is a structural editor, not an execution engine.
//
// # Reducer
//
// Every mutation is one of a closed set of Action values applied through
// Reduce (or Session.Dispatch, which owns the current state):
//
//	state, err := editor.Reduce(state, editor.Connect{
//		Source: n1, SourceHandle: "sum",
//		Target: n2, TargetHandle: "a",
//	})
//
// Reduce is pure. A failed precondition returns the input state untouched
// together with a *Rejection naming the reason; nothing is ever partially
// applied, and user-triggered invalid edits never panic. Only a malformed
// action (a programmer error) yields an *InvalidActionError.
//
// New states share every untouched substructure with their predecessor, so
// hosts detect changed graph levels by comparing references.
//
// # Groups
//
// A NodeType with IsGroup owns a nested graph per instance. OpenNodeGroup
// pushes the instance onto the navigation stack and makes its nested graph
// the active one; CloseNodeGroup truncates the stack back towards the
// root. RegisterNodeGroupType mints a brand-new reusable group type at
// runtime. A group type cannot be instantiated inside one of its own
// instances.
package editor
