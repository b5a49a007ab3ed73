package editor

import "sort"

// GraphStore holds the nodes and edges of one graph level: either the root
// graph or the nested graph owned by a group node. Stores are immutable by
// convention; every mutator returns a new store and leaves the receiver
// untouched, so states can share untouched levels by reference.
type GraphStore struct {
	nodes map[string]Node
	edges map[string]Edge
}

// NewGraphStore builds a store from pre-existing nodes and edges, e.g. when
// reopening a saved document. Pass nil slices for an empty graph.
func NewGraphStore(nodes []Node, edges []Edge) *GraphStore {
	g := &GraphStore{
		nodes: make(map[string]Node, len(nodes)),
		edges: make(map[string]Edge, len(edges)),
	}
	for _, n := range nodes {
		g.nodes[n.ID] = n
	}
	for _, e := range edges {
		g.edges[e.ID] = e
	}
	return g
}

func emptyGraphStore() *GraphStore {
	return &GraphStore{
		nodes: map[string]Node{},
		edges: map[string]Edge{},
	}
}

// Node looks up a node by id.
func (g *GraphStore) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge looks up an edge by id.
func (g *GraphStore) Edge(id string) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns the nodes of this level, ordered by id for stable output.
func (g *GraphStore) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns the edges of this level, ordered by id for stable output.
func (g *GraphStore) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeCount returns the number of nodes in this level.
func (g *GraphStore) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in this level.
func (g *GraphStore) EdgeCount() int {
	return len(g.edges)
}

// IncomingEdge returns the edge currently feeding an input port, if any.
// Fan-in is 1, so there is at most one.
func (g *GraphStore) IncomingEdge(nodeID, handle string) (Edge, bool) {
	for _, e := range g.edges {
		if e.Target == nodeID && e.TargetHandle == handle {
			return e, true
		}
	}
	return Edge{}, false
}

// clone returns a shallow copy of the store with fresh maps.
func (g *GraphStore) clone() *GraphStore {
	next := &GraphStore{
		nodes: make(map[string]Node, len(g.nodes)),
		edges: make(map[string]Edge, len(g.edges)),
	}
	for id, n := range g.nodes {
		next.nodes[id] = n
	}
	for id, e := range g.edges {
		next.edges[id] = e
	}
	return next
}

// withNode returns a copy of the store with the node added or replaced.
func (g *GraphStore) withNode(n Node) *GraphStore {
	next := g.clone()
	next.nodes[n.ID] = n
	return next
}

// withEdge returns a copy of the store with the edge added or replaced.
func (g *GraphStore) withEdge(e Edge) *GraphStore {
	next := g.clone()
	next.edges[e.ID] = e
	return next
}

// withoutEdge returns a copy of the store with the edge removed.
func (g *GraphStore) withoutEdge(id string) *GraphStore {
	next := g.clone()
	delete(next.edges, id)
	return next
}

// withConnection returns a copy with the edge added after evicting any edge
// already feeding the same target port. Fan-in stays at 1 by replacement.
func (g *GraphStore) withConnection(e Edge) *GraphStore {
	next := g.clone()
	if prior, ok := next.IncomingEdge(e.Target, e.TargetHandle); ok {
		delete(next.edges, prior.ID)
	}
	next.edges[e.ID] = e
	return next
}

// withoutNode returns a copy of the store with the node and every edge
// incident to it removed.
func (g *GraphStore) withoutNode(id string) *GraphStore {
	next := g.clone()
	delete(next.nodes, id)
	for edgeID, e := range next.edges {
		if e.Source == id || e.Target == id {
			delete(next.edges, edgeID)
		}
	}
	return next
}

// instantiate deep-copies a template graph, minting fresh node and edge ids
// so instances never alias the template or each other.
func (g *GraphStore) instantiate() *GraphStore {
	next := emptyGraphStore()
	remap := make(map[string]string, len(g.nodes))

	for id, n := range g.nodes {
		fresh := newID("node")
		remap[id] = fresh
		copied := n
		copied.ID = fresh
		if len(n.InputValues) > 0 {
			values := make(map[string]any, len(n.InputValues))
			for k, v := range n.InputValues {
				values[k] = v
			}
			copied.InputValues = values
		}
		next.nodes[fresh] = copied
	}

	for _, e := range g.edges {
		copied := e
		copied.ID = newID("edge")
		copied.Source = remap[e.Source]
		copied.Target = remap[e.Target]
		next.edges[copied.ID] = copied
	}

	return next
}
