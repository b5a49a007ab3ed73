package editor

// TypeRegistry holds the immutable catalogs of DataTypes and NodeTypes a
// session was constructed with. The reducer treats it as read-only; the one
// exception, registering a new group NodeType, replaces the registry with a
// copy instead of mutating it.
type TypeRegistry struct {
	dataTypes map[string]DataType
	nodeTypes map[string]NodeType

	// templates holds the starting graph cloned into each new instance of
	// a group NodeType, keyed by NodeType id. Types without an entry start
	// with an empty nested graph.
	templates map[string]*GraphStore
}

// NewTypeRegistry builds a registry from caller-supplied catalogs. Later
// changes to the input slices do not affect the registry.
func NewTypeRegistry(dataTypes []DataType, nodeTypes []NodeType) *TypeRegistry {
	r := &TypeRegistry{
		dataTypes: make(map[string]DataType, len(dataTypes)),
		nodeTypes: make(map[string]NodeType, len(nodeTypes)),
		templates: make(map[string]*GraphStore),
	}
	for _, dt := range dataTypes {
		r.dataTypes[dt.ID] = dt
	}
	for _, nt := range nodeTypes {
		r.nodeTypes[nt.ID] = nt
	}
	return r
}

// DataType looks up a DataType by id.
func (r *TypeRegistry) DataType(id string) (DataType, bool) {
	dt, ok := r.dataTypes[id]
	return dt, ok
}

// NodeType looks up a NodeType by id.
func (r *TypeRegistry) NodeType(id string) (NodeType, bool) {
	nt, ok := r.nodeTypes[id]
	return nt, ok
}

// DataTypes returns all registered DataTypes in unspecified order.
func (r *TypeRegistry) DataTypes() []DataType {
	out := make([]DataType, 0, len(r.dataTypes))
	for _, dt := range r.dataTypes {
		out = append(out, dt)
	}
	return out
}

// NodeTypes returns all registered NodeTypes in unspecified order.
func (r *TypeRegistry) NodeTypes() []NodeType {
	out := make([]NodeType, 0, len(r.nodeTypes))
	for _, nt := range r.nodeTypes {
		out = append(out, nt)
	}
	return out
}

// GroupTemplate returns the template graph for a group NodeType, or nil when
// instances of the type start empty.
func (r *TypeRegistry) GroupTemplate(typeID string) *GraphStore {
	return r.templates[typeID]
}

// setTemplate installs a group template during construction, before the
// registry is shared with any state.
func (r *TypeRegistry) setTemplate(typeID string, tpl *GraphStore) {
	r.templates[typeID] = tpl
}

// withNodeType returns a copy of the registry with one more NodeType and,
// optionally, its group template. The receiver is left untouched so prior
// states keep seeing the catalog they were built against.
func (r *TypeRegistry) withNodeType(nt NodeType, template *GraphStore) *TypeRegistry {
	next := &TypeRegistry{
		dataTypes: r.dataTypes,
		nodeTypes: make(map[string]NodeType, len(r.nodeTypes)+1),
		templates: r.templates,
	}
	for id, existing := range r.nodeTypes {
		next.nodeTypes[id] = existing
	}
	next.nodeTypes[nt.ID] = nt

	if template != nil {
		next.templates = make(map[string]*GraphStore, len(r.templates)+1)
		for id, tpl := range r.templates {
			next.templates[id] = tpl
		}
		next.templates[nt.ID] = template
	}

	return next
}
