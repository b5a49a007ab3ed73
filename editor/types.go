package editor

// UnderlyingType is the primitive representation behind a DataType.
type UnderlyingType string

const (
	// UnderlyingString marks data types carried as plain strings.
	UnderlyingString UnderlyingType = "string"

	// UnderlyingNumber marks data types carried as numbers.
	UnderlyingNumber UnderlyingType = "number"

	// UnderlyingComplex marks data types carried as structured values,
	// validated against the DataType's ValueSchema.
	UnderlyingComplex UnderlyingType = "complex"
)

// DataType is a named, colored type tag that governs connection
// compatibility. Two ports are connectable only when their DataType IDs are
// equal: compatibility is nominal, two distinct "number" types do not match
// even though their underlying representation does.
type DataType struct {
	// ID is the unique identifier of the data type.
	ID string

	// Name is the human-readable name shown next to ports.
	Name string

	// Underlying is the primitive kind of values of this type.
	Underlying UnderlyingType

	// Color is the accent color used by rendering collaborators.
	Color string

	// Schema validates literal values assigned to ports of this type.
	// It is set iff Underlying is UnderlyingComplex.
	Schema *ValueSchema
}

// PortDefinition describes one input or output port of a NodeType.
type PortDefinition struct {
	// Name identifies the port, unique within its NodeType's input or
	// output list. Edges reference ports by this name (the "handle").
	Name string

	// DataTypeID references the DataType governing this port.
	DataTypeID string

	// AllowInput marks input ports that accept a typed-in literal value
	// when no edge is connected. Only meaningful for input ports.
	AllowInput bool

	// DefaultValue seeds the literal value of AllowInput ports on node
	// creation.
	DefaultValue any
}

// NodeType is a template defining a node's ports and whether its instances
// own a nested graph.
type NodeType struct {
	// ID is the unique identifier of the node type.
	ID string

	// Name is the display name shown in node headers and pickers.
	Name string

	// HeaderColor is the accent color of the node header.
	HeaderColor string

	// Inputs are the input port definitions, in display order.
	Inputs []PortDefinition

	// Outputs are the output port definitions, in display order.
	Outputs []PortDefinition

	// IsGroup marks types whose instances own a nested graph.
	IsGroup bool
}

// Input returns the input port definition with the given name.
func (t NodeType) Input(name string) (PortDefinition, bool) {
	for _, p := range t.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return PortDefinition{}, false
}

// Output returns the output port definition with the given name.
func (t NodeType) Output(name string) (PortDefinition, bool) {
	for _, p := range t.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return PortDefinition{}, false
}

// Position is a node's placement on the canvas.
type Position struct {
	X float64
	Y float64
}

// Node is an instance of a NodeType placed in a graph.
type Node struct {
	// ID is the unique identifier of the node within its session.
	ID string

	// TypeID references the NodeType this node instantiates.
	TypeID string

	// Position is the node's placement on the canvas.
	Position Position

	// InputValues maps input port names to literal values. Entries exist
	// only for AllowInput ports that are not currently connected; an
	// incoming edge always takes precedence over a literal.
	InputValues map[string]any
}

// withPosition returns a copy of the node at the given position.
func (n Node) withPosition(pos Position) Node {
	n.Position = pos
	return n
}

// withInputValue returns a copy of the node with one literal value replaced.
// The values map is copied so the original node stays untouched.
func (n Node) withInputValue(port string, value any) Node {
	values := make(map[string]any, len(n.InputValues)+1)
	for k, v := range n.InputValues {
		values[k] = v
	}
	values[port] = value
	n.InputValues = values
	return n
}

// Edge is a typed link from one node's output port to another node's input
// port. An input port accepts at most one incoming edge; an output port may
// fan out to many.
type Edge struct {
	// ID is the unique identifier of the edge within its session.
	ID string

	// Source is the node the edge originates from.
	Source string

	// SourceHandle is the output port name on the source node.
	SourceHandle string

	// Target is the node the edge points to.
	Target string

	// TargetHandle is the input port name on the target node.
	TargetHandle string
}

// Breadcrumb is one entry of the navigation stack: an opened group node and
// its display name for breadcrumb UIs.
type Breadcrumb struct {
	// NodeID is the group node whose nested graph is opened.
	NodeID string

	// Name is the display name of the opened group.
	Name string
}
