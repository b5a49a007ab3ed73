package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_DrawMermaid(t *testing.T) {
	state, n1 := mustAdd(t, newTestState(), "add", Position{})
	state, n2 := mustAdd(t, state, "add", Position{})
	state, _ = mustAdd(t, state, "group", Position{})

	state, err := Reduce(state, Connect{Source: n1, SourceHandle: "sum", Target: n2, TargetHandle: "a"})
	require.NoError(t, err)

	out := NewExporter(state).DrawMermaid()

	assert.True(t, strings.HasPrefix(out, "flowchart TD\n"))
	assert.Contains(t, out, `["Add"]`)
	assert.Contains(t, out, `[["Group"]]`, "group nodes use subroutine shape")
	assert.Contains(t, out, `"sum → a"`)
}

func TestExporter_DrawMermaidWithOptions(t *testing.T) {
	state, _ := mustAdd(t, newTestState(), "add", Position{})

	out := NewExporter(state).DrawMermaidWithOptions(MermaidOptions{Direction: "LR"})
	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
}

func TestExporter_DrawDOT(t *testing.T) {
	state, n1 := mustAdd(t, newTestState(), "add", Position{})
	state, n2 := mustAdd(t, state, "add", Position{})

	state, err := Reduce(state, Connect{Source: n1, SourceHandle: "sum", Target: n2, TargetHandle: "b"})
	require.NoError(t, err)

	out := NewExporter(state).DrawDOT()

	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `label="Add"`)
	assert.Contains(t, out, "sum → b")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestExporter_ActiveGraphOnly(t *testing.T) {
	state, groupNode := mustAdd(t, newTestState(), "group", Position{})
	state, _ = mustAdd(t, state, "add", Position{})

	opened, err := Reduce(state, OpenNodeGroup{NodeID: groupNode})
	require.NoError(t, err)
	opened, _ = mustAdd(t, opened, "text", Position{})

	out := NewExporter(opened).DrawMermaid()
	assert.Contains(t, out, `["Text"]`)
	assert.NotContains(t, out, `["Add"]`, "root-level nodes stay out of the nested view")
}
