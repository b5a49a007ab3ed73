package editor

import (
	"fmt"
	"strings"
)

// Exporter renders text diagrams of a state's active graph, for debugging
// sessions and embedding graphs in documentation. It is not the interactive
// renderer, which lives outside this module.
type Exporter struct {
	state *State
}

// NewExporter creates an exporter over the given state.
func NewExporter(state *State) *Exporter {
	return &Exporter{state: state}
}

// MermaidOptions configures Mermaid diagram generation.
type MermaidOptions struct {
	// Direction of the flowchart (e.g. "TD", "LR").
	Direction string
}

// DrawMermaid generates a Mermaid flowchart of the active graph with the
// default top-down direction.
func (e *Exporter) DrawMermaid() string {
	return e.DrawMermaidWithOptions(MermaidOptions{Direction: "TD"})
}

// DrawMermaidWithOptions generates a Mermaid flowchart with custom options.
// Group nodes render in subroutine shape, edges are labeled with the
// connected port handles, and node headers keep their type color.
func (e *Exporter) DrawMermaidWithOptions(opts MermaidOptions) string {
	var sb strings.Builder

	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}
	sb.WriteString(fmt.Sprintf("flowchart %s\n", direction))

	active := e.state.ActiveGraph()

	for _, node := range active.Nodes() {
		label, color, isGroup := e.describe(node)
		id := mermaidID(node.ID)
		if isGroup {
			sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", id, label))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
		}
		if color != "" {
			sb.WriteString(fmt.Sprintf("    style %s fill:%s\n", id, color))
		}
	}

	for _, edge := range active.Edges() {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s → %s\" --> %s\n",
			mermaidID(edge.Source), edge.SourceHandle, edge.TargetHandle, mermaidID(edge.Target)))
	}

	return sb.String()
}

// DrawDOT generates a DOT (Graphviz) representation of the active graph.
func (e *Exporter) DrawDOT() string {
	var sb strings.Builder

	sb.WriteString("digraph G {\n")
	sb.WriteString("    rankdir=TD;\n")
	sb.WriteString("    node [shape=box];\n")

	active := e.state.ActiveGraph()

	for _, node := range active.Nodes() {
		label, color, isGroup := e.describe(node)
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if isGroup {
			attrs = append(attrs, "shape=box3d")
		}
		if color != "" {
			attrs = append(attrs, "style=filled", fmt.Sprintf("fillcolor=%q", color))
		}
		sb.WriteString(fmt.Sprintf("    %q [%s];\n", node.ID, strings.Join(attrs, ", ")))
	}

	for _, edge := range active.Edges() {
		sb.WriteString(fmt.Sprintf("    %q -> %q [label=%q];\n",
			edge.Source, edge.Target, edge.SourceHandle+" → "+edge.TargetHandle))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func (e *Exporter) describe(node Node) (label, color string, isGroup bool) {
	nt, ok := e.state.registry.NodeType(node.TypeID)
	if !ok {
		return node.TypeID, "", false
	}
	return nt.Name, nt.HeaderColor, nt.IsGroup
}

// mermaidID strips characters Mermaid treats as syntax from node ids.
func mermaidID(id string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(id)
}
