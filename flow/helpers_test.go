package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giftflow/core"
	"github.com/katalvlaran/giftflow/flow"
)

// assertFlowInvariants checks capacity respect, conservation and value
// consistency of res on net.
func assertFlowInvariants(t *testing.T, net *core.Network, res *flow.Result) {
	t.Helper()
	require.Len(t, res.Flow, net.EdgeCount())

	balance := make([]int64, net.NodeCount()) // inflow − outflow
	var cost int64
	for _, e := range net.Edges() {
		f := res.Flow[e.ID]
		require.GreaterOrEqual(t, f, int64(0), "edge %d negative flow", e.ID)
		require.LessOrEqual(t, f, res.Capacity[e.ID], "edge %d over capacity", e.ID)
		if e.HasCapacity() {
			require.Equal(t, e.Capacity, res.Capacity[e.ID], "explicit capacity is reported as-is")
		}
		balance[e.From] -= f
		balance[e.To] += f
		cost += f * e.Cost
	}
	for v, b := range balance {
		id := core.NodeID(v)
		if id == res.Source || id == res.Sink {
			continue
		}
		require.Zero(t, b, "conservation violated at node %d (%s)", v, net.Label(id))
	}
	require.Equal(t, res.Value, -balance[res.Source], "value equals net flow out of source")
	require.Equal(t, res.Value, balance[res.Sink], "value equals net flow into sink")
	require.Equal(t, cost, res.Cost, "cost equals Σ flow·cost")
}

// assertMaximal checks that the sink is unreachable in the residual graph.
func assertMaximal(t *testing.T, net *core.Network, res *flow.Result) {
	t.Helper()
	reach := flow.ResidualReachable(net, res, res.Source)
	require.False(t, reach[res.Sink], "augmenting path remains")
}

// assertNoNegativeResidualCycle runs Bellman–Ford from a virtual root over
// the residual graph of res and fails if a V-th round still relaxes an arc.
func assertNoNegativeResidualCycle(t *testing.T, net *core.Network, res *flow.Result) {
	t.Helper()
	type rarc struct {
		from, to core.NodeID
		cost     int64
	}
	var arcs []rarc
	for _, e := range net.Edges() {
		if res.Residual(e.ID) > 0 {
			arcs = append(arcs, rarc{e.From, e.To, e.Cost})
		}
		if res.FlowOn(e.ID) > 0 {
			arcs = append(arcs, rarc{e.To, e.From, -e.Cost})
		}
	}
	dist := make([]int64, net.NodeCount())
	for round := 0; round <= net.NodeCount(); round++ {
		changed := false
		for _, a := range arcs {
			if nd := dist[a.from] + a.cost; nd < dist[a.to] {
				dist[a.to] = nd
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	t.Fatalf("negative-cost residual cycle remains")
}

// line builds Source→a→Sink with the given capacities.
func line(capIn, capOut int64) (*core.Network, core.NodeID) {
	n := core.NewNetwork()
	a := n.AddNode("a")
	_, _ = n.AddEdge(n.Source(), a, capIn)
	_, _ = n.AddEdge(a, n.Sink(), capOut)
	return n, a
}

// layered builds a deterministic dense layered network with costs, used to
// compare both solvers on something larger than a hand-written fixture.
func layered(width, depth int) *core.Network {
	n := core.NewNetwork()
	prev := []core.NodeID{n.Source()}
	seed := int64(7)
	next := func() int64 {
		seed = (seed*1103515245 + 12345) % 2147483648
		return seed
	}
	for d := 0; d < depth; d++ {
		layer := make([]core.NodeID, width)
		for i := range layer {
			layer[i] = n.AddNode("")
		}
		for _, u := range prev {
			for _, v := range layer {
				if next()%3 == 0 && u != n.Source() {
					continue
				}
				_, _ = n.AddEdge(u, v, 1+next()%5, core.WithCost(next()%7))
			}
		}
		prev = layer
	}
	for _, u := range prev {
		_, _ = n.AddEdge(u, n.Sink(), 1+next()%9)
	}
	return n
}
