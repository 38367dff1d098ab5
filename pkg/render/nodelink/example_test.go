package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/modgraph/pkg/graph"
	"github.com/matzehuels/modgraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := graph.New()
	_ = g.AddEdge(graph.Edge{From: "create", To: "flywheel", Mandatory: true})
	_ = g.AddEdge(graph.Edge{From: "create", To: "jei", Mandatory: false})

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{}))
	// Output:
	// digraph {
	//     0 [ label = "create" ]
	//     1 [ label = "flywheel" ]
	//     2 [ label = "jei" ]
	//     0 -> 1 [ ]
	//     0 -> 2 [ color = gray36 ]
	// }
}
