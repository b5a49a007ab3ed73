package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_SeedsRootGraph(t *testing.T) {
	nodes := []Node{
		{ID: "n1", TypeID: "add", Position: Position{X: 1}},
		{ID: "n2", TypeID: "add", Position: Position{X: 2}},
	}
	edges := []Edge{
		{ID: "e1", Source: "n1", SourceHandle: "sum", Target: "n2", TargetHandle: "a"},
	}

	state := NewState(testDataTypes(), testNodeTypes(), WithRootGraph(nodes, edges))

	assert.Equal(t, 2, state.RootGraph().NodeCount())
	assert.Equal(t, 1, state.RootGraph().EdgeCount())
	assert.Same(t, state.RootGraph(), state.ActiveGraph())
}

func TestNewState_SeedsNestedGraph(t *testing.T) {
	state := NewState(testDataTypes(), testNodeTypes(),
		WithRootGraph([]Node{{ID: "g1", TypeID: "group"}}, nil),
		WithNestedGraph("g1", []Node{{ID: "inner", TypeID: "add"}}, nil),
	)

	opened, err := Reduce(state, OpenNodeGroup{NodeID: "g1"})
	require.NoError(t, err)
	assert.Equal(t, 1, opened.ActiveGraph().NodeCount())
}

func TestPortDataType(t *testing.T) {
	state, id := mustAdd(t, newTestState(), "add", Position{})

	dt, ok := state.PortDataType(id, "sum")
	require.True(t, ok)
	assert.Equal(t, "num", dt.ID)
	assert.Equal(t, "#8be9fd", dt.Color)

	dt, ok = state.PortDataType(id, "a")
	require.True(t, ok)
	assert.Equal(t, "num", dt.ID)

	_, ok = state.PortDataType(id, "nope")
	assert.False(t, ok)

	_, ok = state.PortDataType("missing", "sum")
	assert.False(t, ok)
}

func TestBreadcrumbs_ReturnsCopy(t *testing.T) {
	state, id := mustAdd(t, newTestState(), "group", Position{})
	opened, err := Reduce(state, OpenNodeGroup{NodeID: id})
	require.NoError(t, err)

	crumbs := opened.Breadcrumbs()
	crumbs[0].NodeID = "tampered"

	assert.Equal(t, id, opened.Breadcrumbs()[0].NodeID)
}

func TestRegistry_Lookups(t *testing.T) {
	state := newTestState()
	reg := state.Registry()

	dt, ok := reg.DataType("num")
	require.True(t, ok)
	assert.Equal(t, UnderlyingNumber, dt.Underlying)

	_, ok = reg.DataType("missing")
	assert.False(t, ok)

	nt, ok := reg.NodeType("group")
	require.True(t, ok)
	assert.True(t, nt.IsGroup)

	assert.Len(t, reg.DataTypes(), 3)
	assert.Len(t, reg.NodeTypes(), 4)
}

func TestGraphStore_StableOrdering(t *testing.T) {
	state := NewState(testDataTypes(), testNodeTypes(), WithRootGraph([]Node{
		{ID: "c", TypeID: "add"},
		{ID: "a", TypeID: "add"},
		{ID: "b", TypeID: "add"},
	}, nil))

	nodes := state.RootGraph().Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "a", nodes[0].ID)
	assert.Equal(t, "b", nodes[1].ID)
	assert.Equal(t, "c", nodes[2].ID)
}
