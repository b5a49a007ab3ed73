package editor

import "fmt"

// Reduce applies one action to a state and returns the resulting state.
// It is a pure function: the input state is never mutated, and untouched
// substructures are shared by reference between the old and new states.
//
// A failed precondition returns the input state unchanged together with a
// *Rejection describing the reason; user-triggered invalid edits never
// panic. A malformed action (missing required fields, unknown kind) returns
// an *InvalidActionError instead, which is a bug on the dispatching side.
func Reduce(state *State, action Action) (*State, error) {
	if err := validateAction(action); err != nil {
		return state, err
	}

	switch a := action.(type) {
	case AddNode:
		return reduceAddNode(state, a)
	case RemoveNode:
		return reduceRemoveNode(state, a)
	case UpdateNodePosition:
		return reduceUpdateNodePosition(state, a)
	case UpdateNodeInputValue:
		return reduceUpdateNodeInputValue(state, a)
	case Connect:
		return reduceConnect(state, a)
	case Disconnect:
		return reduceDisconnect(state, a)
	case OpenNodeGroup:
		return reduceOpenNodeGroup(state, a)
	case CloseNodeGroup:
		return reduceCloseNodeGroup(state, a)
	case RegisterNodeGroupType:
		return reduceRegisterNodeGroupType(state, a)
	default:
		return state, &InvalidActionError{
			Action: action.Kind(),
			Cause:  fmt.Errorf("unhandled action type %T", action),
		}
	}
}

func reduceAddNode(state *State, a AddNode) (*State, error) {
	nt, ok := state.registry.NodeType(a.TypeID)
	if !ok {
		return state, rejectf(ReasonUnknownTypeReference, "node type %q", a.TypeID)
	}

	if nt.IsGroup {
		for _, ancestorType := range state.ancestorTypeIDs() {
			if ancestorType == a.TypeID {
				return state, rejectf(ReasonRecursiveGroup, "type %q is already open on the navigation path", a.TypeID)
			}
		}
	}

	node := Node{
		ID:       newID("node"),
		TypeID:   a.TypeID,
		Position: a.Position,
	}
	for _, port := range nt.Inputs {
		if !port.AllowInput || port.DefaultValue == nil {
			continue
		}
		if node.InputValues == nil {
			node.InputValues = make(map[string]any)
		}
		node.InputValues[port.Name] = port.DefaultValue
	}

	next := state.withActiveGraph(state.ActiveGraph().withNode(node))

	if nt.IsGroup {
		nested := next.cloneNested()
		var instance *GraphStore
		if tpl := state.registry.GroupTemplate(a.TypeID); tpl != nil {
			instance = tpl.instantiate()
			seedNestedGraphs(state.registry, nested, instance, map[string]bool{a.TypeID: true})
		} else {
			instance = emptyGraphStore()
		}
		nested[node.ID] = instance
		next.nested = nested
	}

	return next, nil
}

// seedNestedGraphs creates nested stores for group nodes found inside a
// freshly instantiated template. A template already seen on the current
// path instantiates empty, which keeps mutually recursive templates finite.
func seedNestedGraphs(reg *TypeRegistry, nested map[string]*GraphStore, store *GraphStore, seen map[string]bool) {
	for _, n := range store.nodes {
		nt, ok := reg.NodeType(n.TypeID)
		if !ok || !nt.IsGroup {
			continue
		}

		tpl := reg.GroupTemplate(n.TypeID)
		if tpl == nil || seen[n.TypeID] {
			nested[n.ID] = emptyGraphStore()
			continue
		}

		child := tpl.instantiate()
		nested[n.ID] = child

		childSeen := make(map[string]bool, len(seen)+1)
		for id := range seen {
			childSeen[id] = true
		}
		childSeen[n.TypeID] = true
		seedNestedGraphs(reg, nested, child, childSeen)
	}
}

func reduceRemoveNode(state *State, a RemoveNode) (*State, error) {
	active := state.ActiveGraph()
	if _, ok := active.Node(a.NodeID); !ok {
		return state, rejectf(ReasonUnknownNode, "node %q", a.NodeID)
	}

	next := state.withActiveGraph(active.withoutNode(a.NodeID))

	removed := map[string]bool{}
	collectGroupDescendants(state, a.NodeID, removed)
	if len(removed) == 0 {
		return next, nil
	}

	nested := next.cloneNested()
	for id := range removed {
		delete(nested, id)
	}
	next.nested = nested

	// Truncate the stack at the first entry whose group no longer exists,
	// keeping the root-most surviving prefix.
	for i, crumb := range next.nav {
		if removed[crumb.NodeID] {
			next.nav = append([]Breadcrumb(nil), next.nav[:i]...)
			break
		}
	}

	return next, nil
}

// collectGroupDescendants gathers the given node's nested graph and every
// nested graph reachable through group nodes inside it.
func collectGroupDescendants(state *State, nodeID string, out map[string]bool) {
	store, ok := state.nested[nodeID]
	if !ok || out[nodeID] {
		return
	}
	out[nodeID] = true
	for id := range store.nodes {
		collectGroupDescendants(state, id, out)
	}
}

func reduceUpdateNodePosition(state *State, a UpdateNodePosition) (*State, error) {
	active := state.ActiveGraph()
	node, ok := active.Node(a.NodeID)
	if !ok {
		return state, rejectf(ReasonUnknownNode, "node %q", a.NodeID)
	}

	return state.withActiveGraph(active.withNode(node.withPosition(a.Position))), nil
}

func reduceUpdateNodeInputValue(state *State, a UpdateNodeInputValue) (*State, error) {
	active := state.ActiveGraph()
	node, ok := active.Node(a.NodeID)
	if !ok {
		return state, rejectf(ReasonUnknownNode, "node %q", a.NodeID)
	}

	nt, ok := state.registry.NodeType(node.TypeID)
	if !ok {
		return state, rejectf(ReasonUnknownTypeReference, "node type %q", node.TypeID)
	}

	port, ok := nt.Input(a.PortName)
	if !ok {
		return state, rejectf(ReasonUnknownPort, "input %q on type %q", a.PortName, nt.ID)
	}
	if !port.AllowInput {
		return state, rejectf(ReasonValidationFailed, "port %q does not accept literal input", a.PortName)
	}

	if _, connected := active.IncomingEdge(a.NodeID, a.PortName); connected {
		return state, rejectf(ReasonPortConnected, "port %q on node %q is driven by an edge", a.PortName, a.NodeID)
	}

	dt, ok := state.registry.DataType(port.DataTypeID)
	if !ok {
		return state, rejectf(ReasonUnknownTypeReference, "data type %q", port.DataTypeID)
	}
	if dt.Underlying == UnderlyingComplex && dt.Schema != nil {
		if err := dt.Schema.Validate(a.Value); err != nil {
			return state, &Rejection{
				Reason: ReasonValidationFailed,
				Detail: fmt.Sprintf("value for port %q", a.PortName),
				Cause:  err,
			}
		}
	}

	return state.withActiveGraph(active.withNode(node.withInputValue(a.PortName, a.Value))), nil
}

func reduceConnect(state *State, a Connect) (*State, error) {
	if err := CanConnect(state, a.Source, a.SourceHandle, a.Target, a.TargetHandle); err != nil {
		return state, err
	}

	edge := Edge{
		ID:           newID("edge"),
		Source:       a.Source,
		SourceHandle: a.SourceHandle,
		Target:       a.Target,
		TargetHandle: a.TargetHandle,
	}

	return state.withActiveGraph(state.ActiveGraph().withConnection(edge)), nil
}

func reduceDisconnect(state *State, a Disconnect) (*State, error) {
	active := state.ActiveGraph()
	if _, ok := active.Edge(a.EdgeID); !ok {
		return state, rejectf(ReasonUnknownEdge, "edge %q", a.EdgeID)
	}

	return state.withActiveGraph(active.withoutEdge(a.EdgeID)), nil
}

func reduceOpenNodeGroup(state *State, a OpenNodeGroup) (*State, error) {
	node, ok := state.ActiveGraph().Node(a.NodeID)
	if !ok {
		return state, rejectf(ReasonUnknownNode, "node %q", a.NodeID)
	}

	nt, ok := state.registry.NodeType(node.TypeID)
	if !ok {
		return state, rejectf(ReasonUnknownTypeReference, "node type %q", node.TypeID)
	}
	if !nt.IsGroup {
		return state, rejectf(ReasonNotAGroup, "node %q of type %q", a.NodeID, nt.ID)
	}

	next := state.clone()
	if _, ok := next.nested[a.NodeID]; !ok {
		// Host-seeded states may reference groups without a stored graph.
		nested := next.cloneNested()
		nested[a.NodeID] = emptyGraphStore()
		next.nested = nested
	}

	nav := make([]Breadcrumb, len(state.nav), len(state.nav)+1)
	copy(nav, state.nav)
	next.nav = append(nav, Breadcrumb{NodeID: a.NodeID, Name: nt.Name})

	return next, nil
}

func reduceCloseNodeGroup(state *State, a CloseNodeGroup) (*State, error) {
	if a.Depth >= len(state.nav) {
		return state, rejectf(ReasonEmptyStack, "depth %d with %d open groups", a.Depth, len(state.nav))
	}

	next := state.clone()
	next.nav = append([]Breadcrumb(nil), state.nav[:a.Depth]...)
	return next, nil
}

func reduceRegisterNodeGroupType(state *State, a RegisterNodeGroupType) (*State, error) {
	nt := NodeType{
		ID:      newID("group"),
		Name:    a.Name,
		IsGroup: true,
	}

	next := state.clone()
	next.registry = state.registry.withNodeType(nt, emptyGraphStore())
	next.lastTypeID = nt.ID
	return next, nil
}
