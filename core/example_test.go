package core_test

import (
	"fmt"

	"github.com/katalvlaran/giftflow/core"
)

// ExampleNetwork builds Source→p1→c1→Sink and lists the edges.
func ExampleNetwork() {
	n := core.NewNetwork()
	p1 := n.AddNode("p1")
	c1 := n.AddNode("c1")

	_, _ = n.AddEdge(n.Source(), p1, 7)
	_, _ = n.AddEdge(p1, c1, 1, core.WithCost(2))
	_, _ = n.AddEdge(c1, n.Sink(), 3)

	for _, e := range n.Edges() {
		fmt.Printf("%s -> %s cap=%d cost=%d\n", n.Label(e.From), n.Label(e.To), e.Capacity, e.Cost)
	}
	// Output:
	// Source -> p1 cap=7 cost=0
	// p1 -> c1 cap=1 cost=2
	// c1 -> Sink cap=3 cost=0
}
