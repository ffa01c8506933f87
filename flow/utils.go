package flow

import (
	"fmt"

	"github.com/katalvlaran/giftflow/core"
)

// errorf prefixes a formatted error with the package tag.
func errorf(format string, args ...interface{}) error {
	return fmt.Errorf("flow: "+format, args...)
}

// validate checks the common preconditions of both solvers.
func validate(net *core.Network, source, sink core.NodeID) error {
	if net == nil {
		return ErrNilNetwork
	}
	if !net.HasNode(source) {
		return errorf("source %d: %w", source, core.ErrInvalidNode)
	}
	if !net.HasNode(sink) {
		return errorf("sink %d: %w", sink, core.ErrInvalidNode)
	}
	if source == sink {
		return errorf("node %d: %w", source, ErrDegenerateNetwork)
	}

	return nil
}

// arc is one direction of a residual edge. Arcs come in pairs: index 2e is
// the forward arc of edge e and 2e+1 its reverse, so the partner of arc a is
// a^1.
type arc struct {
	to   core.NodeID
	cap  int64 // residual capacity
	cost int64
	edge core.EdgeID
}

// residual is the residual graph of a network under the current flow.
//
// adj[u] lists the arcs leaving u in edge insertion order.
// capacity[e] is the resolved capacity of edge e.
type residual struct {
	arcs     []arc
	adj      [][]int
	capacity []int64
}

// buildResidual constructs the zero-flow residual graph of net.
//
// Steps:
//  1. Allocate one adjacency bucket per node (O(V)).
//  2. For each edge e in insertion order (O(E)):
//     a. Resolve its capacity (CapacityUnset → opts.DefaultCapacity).
//     b. Append forward arc (cap, cost) and reverse arc (0, −cost).
//     c. Register the forward arc at e.From and the reverse arc at e.To.
func buildResidual(net *core.Network, opts FlowOptions) *residual {
	edges := net.Edges()
	r := &residual{
		arcs:     make([]arc, 0, 2*len(edges)),
		adj:      make([][]int, net.NodeCount()),
		capacity: make([]int64, len(edges)),
	}
	for _, e := range edges {
		c := e.Capacity
		if !e.HasCapacity() {
			c = opts.DefaultCapacity
		}
		r.capacity[e.ID] = c

		fwd := len(r.arcs)
		r.arcs = append(r.arcs,
			arc{to: e.To, cap: c, cost: e.Cost, edge: e.ID},
			arc{to: e.From, cap: 0, cost: -e.Cost, edge: e.ID},
		)
		r.adj[e.From] = append(r.adj[e.From], fwd)
		r.adj[e.To] = append(r.adj[e.To], fwd+1)
	}

	return r
}

// from returns the tail node of arc a.
func (r *residual) from(a int) core.NodeID {
	return r.arcs[a^1].to
}

// push moves delta units along arc a.
func (r *residual) push(a int, delta int64) {
	r.arcs[a].cap -= delta
	r.arcs[a^1].cap += delta
}

// bottleneck returns the minimum residual capacity along path.
func (r *residual) bottleneck(path []int) int64 {
	b := r.arcs[path[0]].cap
	for _, a := range path[1:] {
		if r.arcs[a].cap < b {
			b = r.arcs[a].cap
		}
	}

	return b
}

// tracePath walks parent arcs back from sink and returns the arcs in
// source→sink order.
func (r *residual) tracePath(parent []int, source, sink core.NodeID) []int {
	var path []int
	for v := sink; v != source; {
		a := parent[v]
		path = append(path, a)
		v = r.from(a)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// steps converts residual arcs into edge steps.
func steps(path []int) []Step {
	out := make([]Step, len(path))
	for i, a := range path {
		out[i] = Step{Edge: core.EdgeID(a / 2), Forward: a%2 == 0}
	}

	return out
}

// result extracts the per-edge flow assignment. Flow on edge e equals the
// residual capacity of its reverse arc.
func (r *residual) result(source, sink core.NodeID, value int64) *Result {
	res := &Result{
		Source:   source,
		Sink:     sink,
		Value:    value,
		Flow:     make([]int64, len(r.capacity)),
		Capacity: r.capacity,
	}
	for e := range r.capacity {
		f := r.arcs[2*e+1].cap
		res.Flow[e] = f
		res.Cost += f * r.arcs[2*e].cost
	}

	return res
}

// link is a residual connection used by ResidualReachable.
type link struct {
	to  core.NodeID
	cap int64
}

// ResidualReachable reports, per node, whether it is reachable from source
// over arcs with positive residual capacity under res. At a maximum flow the
// sink is unreachable.
// Complexity: O(V + E)
func ResidualReachable(net *core.Network, res *Result, source core.NodeID) []bool {
	seen := make([]bool, net.NodeCount())
	if !net.HasNode(source) {
		return seen
	}
	out := make([][]link, net.NodeCount())
	for _, e := range net.Edges() {
		out[e.From] = append(out[e.From], link{to: e.To, cap: res.Residual(e.ID)})
		out[e.To] = append(out[e.To], link{to: e.From, cap: res.FlowOn(e.ID)})
	}
	queue := []core.NodeID{source}
	seen[source] = true
	for i := 0; i < len(queue); i++ {
		for _, l := range out[queue[i]] {
			if l.cap > 0 && !seen[l.to] {
				seen[l.to] = true
				queue = append(queue, l.to)
			}
		}
	}

	return seen
}
