// NodeGraph Go - a state engine for visual node-graph editors.
//
// NodeGraph Go is the headless core of a Blender-shader-editor style graph
// editor: typed nodes connected by typed edges, reusable nested node
// groups, and an action-driven reducer that turns UI gestures into
// validated, immutable state transitions. Rendering, drag handling and
// widgets are left to the host; this module owns the data model and its
// invariants.
//
// # Quick start
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/smallnest/nodegraphgo/editor"
//	)
//
//	func main() {
//		num := editor.DataType{ID: "num", Name: "Number", Underlying: editor.UnderlyingNumber, Color: "#8be9fd"}
//		add := editor.NodeType{
//			ID:   "add",
//			Name: "Add",
//			Inputs: []editor.PortDefinition{
//				{Name: "a", DataTypeID: "num", AllowInput: true, DefaultValue: 0.0},
//				{Name: "b", DataTypeID: "num", AllowInput: true, DefaultValue: 0.0},
//			},
//			Outputs: []editor.PortDefinition{{Name: "sum", DataTypeID: "num"}},
//		}
//
//		session := editor.NewSession(editor.NewState(
//			[]editor.DataType{num},
//			[]editor.NodeType{add},
//		))
//
//		_ = session.Dispatch(editor.AddNode{TypeID: "add"})
//		_ = session.Dispatch(editor.AddNode{TypeID: "add", Position: editor.Position{X: 200}})
//
//		nodes := session.State().ActiveGraph().Nodes()
//		_ = session.Dispatch(editor.Connect{
//			Source: nodes[0].ID, SourceHandle: "sum",
//			Target: nodes[1].ID, TargetHandle: "a",
//		})
//
//		fmt.Println(editor.NewExporter(session.State()).DrawMermaid())
//	}
//
// # Packages
//
//   - editor: type registries, graph stores, navigation stack, the
//     connection validator and the reducer, plus the Session dispatch
//     owner and a Mermaid/DOT exporter.
//   - history: generic undo/redo log and named save points over immutable
//     state snapshots.
//   - log: leveled logging with stdlib and golog backends.
//
// States are immutable: every dispatch produces a new *editor.State that
// shares untouched graph levels with its predecessor, so hosts diff
// sub-trees by reference to decide what to re-render.
package nodegraphgo
