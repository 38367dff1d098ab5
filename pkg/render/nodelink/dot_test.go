package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/modgraph/pkg/graph"
)

func sample() *graph.Graph {
	g := graph.New()
	_, _ = g.AddNode(graph.Node{ID: "create", Meta: graph.Metadata{"declared": true}})
	_, _ = g.AddNode(graph.Node{ID: "flywheel", Meta: graph.Metadata{"declared": true}})
	_ = g.AddEdge(graph.Edge{From: "create", To: "flywheel", Mandatory: true})
	_ = g.AddEdge(graph.Edge{From: "create", To: "jei"})
	return g
}

func TestToDOT(t *testing.T) {
	want := `digraph {
    0 [ label = "create" ]
    1 [ label = "flywheel" ]
    2 [ label = "jei" ]
    0 -> 1 [ ]
    0 -> 2 [ color = gray36 ]
}
`
	if got := ToDOT(sample(), Options{}); got != want {
		t.Errorf("ToDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestToDOT_Empty(t *testing.T) {
	if got := ToDOT(graph.New(), Options{}); got != "digraph {\n}\n" {
		t.Errorf("ToDOT(empty) = %q", got)
	}
}

func TestToDOT_QuotesLabels(t *testing.T) {
	g := graph.New()
	_, _ = g.AddNode(graph.Node{ID: `we"ird`})
	if got := ToDOT(g, Options{}); !strings.Contains(got, `label = "we\"ird"`) {
		t.Errorf("label not escaped:\n%s", got)
	}
}

func TestToDOT_Styled(t *testing.T) {
	got := ToDOT(sample(), Options{Styled: true})

	for _, want := range []string{"rankdir = LR", "node [ shape = box"} {
		if !strings.Contains(got, want) {
			t.Errorf("styled DOT missing %q", want)
		}
	}
	if strings.Contains(got, `0 [ label = "create" style`) {
		t.Error("declared node should not be dashed")
	}
	if !strings.Contains(got, `2 [ label = "jei" style = "rounded,filled,dashed"`) {
		t.Errorf("undeclared node should be dashed:\n%s", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.HasSuffix(got, "<g/></svg>") {
		t.Error("body should be preserved")
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
