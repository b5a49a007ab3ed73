package editor

// State is one immutable snapshot of an editor session: the type registries,
// the root graph, every nested graph keyed by its owning group node, and the
// navigation stack. Reduce never mutates a State in place; it returns a new
// one that shares every untouched substructure with its predecessor, so UI
// layers can detect changed sub-trees by reference inequality.
type State struct {
	registry *TypeRegistry

	root   *GraphStore
	nested map[string]*GraphStore

	// nav is the path of opened groups, root excluded, innermost last.
	nav []Breadcrumb

	// lastTypeID is the id allocated by the most recent
	// RegisterNodeGroupType, for pickers that auto-select the new type.
	lastTypeID string
}

// StateOption customizes the initial state built by NewState.
type StateOption func(*State)

// WithRootGraph seeds the root graph with pre-existing nodes and edges.
func WithRootGraph(nodes []Node, edges []Edge) StateOption {
	return func(s *State) {
		s.root = NewGraphStore(nodes, edges)
	}
}

// WithNestedGraph seeds the nested graph owned by a group node, for hosts
// restoring a previously built document.
func WithNestedGraph(nodeID string, nodes []Node, edges []Edge) StateOption {
	return func(s *State) {
		s.nested[nodeID] = NewGraphStore(nodes, edges)
	}
}

// WithGroupTemplate installs the starting graph cloned into each new
// instance of the given group NodeType.
func WithGroupTemplate(typeID string, nodes []Node, edges []Edge) StateOption {
	return func(s *State) {
		s.registry.setTemplate(typeID, NewGraphStore(nodes, edges))
	}
}

// NewState builds the initial session state from caller-supplied type
// catalogs. The registries are treated as read-only afterwards.
func NewState(dataTypes []DataType, nodeTypes []NodeType, opts ...StateOption) *State {
	s := &State{
		registry: NewTypeRegistry(dataTypes, nodeTypes),
		root:     emptyGraphStore(),
		nested:   map[string]*GraphStore{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the type registries of this state.
func (s *State) Registry() *TypeRegistry {
	return s.registry
}

// RootGraph returns the root graph store.
func (s *State) RootGraph() *GraphStore {
	return s.root
}

// NestedGraph returns the nested graph owned by a group node.
func (s *State) NestedGraph(nodeID string) (*GraphStore, bool) {
	g, ok := s.nested[nodeID]
	return g, ok
}

// ActiveGraph returns the graph store the editor currently displays: the
// root when the navigation stack is empty, otherwise the nested graph of
// the innermost opened group.
func (s *State) ActiveGraph() *GraphStore {
	if len(s.nav) == 0 {
		return s.root
	}
	if g, ok := s.nested[s.nav[len(s.nav)-1].NodeID]; ok {
		return g
	}
	return s.root
}

// Breadcrumbs returns a copy of the navigation stack, outermost first, for
// breadcrumb and back-button UIs. The root is not included.
func (s *State) Breadcrumbs() []Breadcrumb {
	out := make([]Breadcrumb, len(s.nav))
	copy(out, s.nav)
	return out
}

// Depth returns how many groups deep the editor currently is; 0 is root.
func (s *State) Depth() int {
	return len(s.nav)
}

// LastRegisteredTypeID returns the id allocated by the most recent
// RegisterNodeGroupType action, or "" if none was dispatched yet.
func (s *State) LastRegisteredTypeID() string {
	return s.lastTypeID
}

// PortDataType resolves the DataType of a port on a node in the active
// graph, for rendering collaborators that color handles by type. The handle
// is looked up among outputs first, then inputs.
func (s *State) PortDataType(nodeID, handle string) (DataType, bool) {
	node, ok := s.ActiveGraph().Node(nodeID)
	if !ok {
		return DataType{}, false
	}
	nt, ok := s.registry.NodeType(node.TypeID)
	if !ok {
		return DataType{}, false
	}

	port, ok := nt.Output(handle)
	if !ok {
		port, ok = nt.Input(handle)
	}
	if !ok {
		return DataType{}, false
	}

	return s.registry.DataType(port.DataTypeID)
}

// ancestorTypeIDs resolves the NodeType id of every group opened on the
// navigation path, outermost first.
func (s *State) ancestorTypeIDs() []string {
	out := make([]string, 0, len(s.nav))
	level := s.root
	for _, crumb := range s.nav {
		if node, ok := level.Node(crumb.NodeID); ok {
			out = append(out, node.TypeID)
		}
		next, ok := s.nested[crumb.NodeID]
		if !ok {
			break
		}
		level = next
	}
	return out
}

// clone returns a shallow copy of the state. Substructures stay shared;
// mutators replace only what they touch.
func (s *State) clone() *State {
	next := &State{
		registry:   s.registry,
		root:       s.root,
		nested:     s.nested,
		nav:        s.nav,
		lastTypeID: s.lastTypeID,
	}
	return next
}

// cloneNested returns a copy of the nested-graph map, for mutators that
// touch it.
func (s *State) cloneNested() map[string]*GraphStore {
	next := make(map[string]*GraphStore, len(s.nested))
	for id, g := range s.nested {
		next[id] = g
	}
	return next
}

// withActiveGraph returns a copy of the state with the active graph level
// replaced. Every other level is shared with the receiver.
func (s *State) withActiveGraph(g *GraphStore) *State {
	next := s.clone()
	if len(s.nav) == 0 {
		next.root = g
		return next
	}

	owner := s.nav[len(s.nav)-1].NodeID
	nested := s.cloneNested()
	nested[owner] = g
	next.nested = nested
	return next
}
