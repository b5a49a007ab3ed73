package editor

// CanConnect checks whether an edge may be created from an output port to
// an input port in the active graph. It returns nil when the connection is
// allowed, or a *Rejection naming the first failed check, in order:
// unknown node, unknown port, self-loop, type mismatch.
//
// No cycle detection is performed: the model is a structural editor, not an
// executor, and cyclic graphs are representable on purpose.
func CanConnect(state *State, source, sourceHandle, target, targetHandle string) error {
	active := state.ActiveGraph()

	sourceNode, ok := active.Node(source)
	if !ok {
		return rejectf(ReasonUnknownNode, "source node %q", source)
	}
	targetNode, ok := active.Node(target)
	if !ok {
		return rejectf(ReasonUnknownNode, "target node %q", target)
	}

	sourceType, ok := state.registry.NodeType(sourceNode.TypeID)
	if !ok {
		return rejectf(ReasonUnknownTypeReference, "node type %q", sourceNode.TypeID)
	}
	targetType, ok := state.registry.NodeType(targetNode.TypeID)
	if !ok {
		return rejectf(ReasonUnknownTypeReference, "node type %q", targetNode.TypeID)
	}

	out, ok := sourceType.Output(sourceHandle)
	if !ok {
		return rejectf(ReasonUnknownPort, "output %q on type %q", sourceHandle, sourceType.ID)
	}
	in, ok := targetType.Input(targetHandle)
	if !ok {
		return rejectf(ReasonUnknownPort, "input %q on type %q", targetHandle, targetType.ID)
	}

	if source == target {
		return rejectf(ReasonSelfLoop, "node %q", source)
	}

	if out.DataTypeID != in.DataTypeID {
		return rejectf(ReasonTypeMismatch, "%q -> %q", out.DataTypeID, in.DataTypeID)
	}

	return nil
}
