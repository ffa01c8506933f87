package projection

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/giftflow/core"
	"github.com/katalvlaran/giftflow/flow"
)

// Sentinel errors.
var (
	// ErrMismatch indicates a Result that was not produced for this network.
	ErrMismatch = errors.New("projection: result does not match network")

	// ErrInconsistentFlow indicates a walk stuck at a node with inbound but no
	// outbound flow, i.e. an assignment violating conservation.
	ErrInconsistentFlow = errors.New("projection: flow is not conserved")
)

// Label is a resolved node identity.
type Label struct {
	Role core.Role
	Name string
}

// String returns "Source", "Sink" or the domain name.
func (l Label) String() string {
	if l.Role == core.RoleLabeled {
		return l.Name
	}

	return l.Role.String()
}

func labelOf(net *core.Network, id core.NodeID) Label {
	node, err := net.Node(id)
	if err != nil {
		return Label{}
	}

	return Label{Role: node.Role, Name: node.Name}
}

// EdgeFlow is one edge of the solved network with its routed amount.
type EdgeFlow struct {
	Edge     core.Edge
	From     Label
	To       Label
	Flow     int64
	Capacity int64
}

// Step is one edge of a decomposed path.
type Step struct {
	Edge core.EdgeID
	From Label
	To   Label
}

// Path is a source→sink walk carrying Amount units on every step.
type Path struct {
	Steps  []Step
	Amount int64
}

func check(net *core.Network, res *flow.Result) error {
	if net == nil || res == nil || len(res.Flow) != net.EdgeCount() || len(res.Capacity) != net.EdgeCount() {
		return ErrMismatch
	}
	if !net.HasNode(res.Source) || !net.HasNode(res.Sink) || res.Source == res.Sink {
		return ErrMismatch
	}

	return nil
}

// EdgeFlows returns every edge in insertion order with its flow and the
// capacity the solver used.
func EdgeFlows(net *core.Network, res *flow.Result) ([]EdgeFlow, error) {
	if err := check(net, res); err != nil {
		return nil, err
	}
	edges := net.Edges()
	out := make([]EdgeFlow, len(edges))
	for i, e := range edges {
		out[i] = EdgeFlow{
			Edge:     e,
			From:     labelOf(net, e.From),
			To:       labelOf(net, e.To),
			Flow:     res.Flow[e.ID],
			Capacity: res.Capacity[e.ID],
		}
	}

	return out, nil
}

// Flowing returns only the edges carrying positive flow, in insertion order.
func Flowing(net *core.Network, res *flow.Result) ([]EdgeFlow, error) {
	all, err := EdgeFlows(net, res)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, ef := range all {
		if ef.Flow > 0 {
			out = append(out, ef)
		}
	}

	return out, nil
}

// Paths returns the solver's own augmenting paths when none of them cancelled
// flow (so they already sum to the assignment), and Decompose otherwise.
func Paths(net *core.Network, res *flow.Result) ([]Path, error) {
	if err := check(net, res); err != nil {
		return nil, err
	}
	if len(res.Augmentations) == 0 {
		return Decompose(net, res)
	}
	for _, ag := range res.Augmentations {
		if !ag.ForwardOnly() {
			return Decompose(net, res)
		}
	}

	out := make([]Path, len(res.Augmentations))
	for i, ag := range res.Augmentations {
		p := Path{Amount: ag.Amount, Steps: make([]Step, len(ag.Steps))}
		for j, st := range ag.Steps {
			e, err := net.Edge(st.Edge)
			if err != nil {
				return nil, fmt.Errorf("projection: augmentation %d: %w", i, err)
			}
			p.Steps[j] = Step{Edge: e.ID, From: labelOf(net, e.From), To: labelOf(net, e.To)}
		}
		out[i] = p
	}

	return out, nil
}

// Decompose splits the flow assignment of res into source→sink paths.
//
// Steps:
//  1. remaining := copy of res.Flow; cursor[u] := first candidate edge of u.
//  2. Walk from source: at u, advance cursor[u] past exhausted edges and follow
//     the first edge with remaining > 0.
//     a. Reaching the sink closes a path: amount = min remaining on the walk;
//     subtract it from every walk edge and start over.
//     b. Revisiting a node on the walk closes a cycle: cancel its bottleneck
//     and rewind the walk to that node.
//     c. A node other than source with no remaining outflow is a
//     conservation violation (ErrInconsistentFlow).
//  3. Stop when the source has no remaining outflow.
//
// Complexity: O(P · V + E) where P is the number of emitted paths and cycles.
func Decompose(net *core.Network, res *flow.Result) ([]Path, error) {
	if err := check(net, res); err != nil {
		return nil, err
	}
	remaining := append([]int64(nil), res.Flow...)
	edges := net.Edges()
	out := make([][]core.EdgeID, net.NodeCount())
	for v := range out {
		out[v] = net.Outgoing(core.NodeID(v))
	}
	cursor := make([]int, net.NodeCount())
	// onWalk[v] = position of v in the walk's node list, -1 if absent
	onWalk := make([]int, net.NodeCount())
	for i := range onWalk {
		onWalk[i] = -1
	}

	nextEdge := func(u core.NodeID) (core.EdgeID, bool) {
		for cursor[u] < len(out[u]) {
			id := out[u][cursor[u]]
			if remaining[id] > 0 {
				return id, true
			}
			cursor[u]++
		}

		return 0, false
	}

	var paths []Path
	nodes := []core.NodeID{res.Source}
	walk := []core.EdgeID{}
	onWalk[res.Source] = 0
	for {
		u := nodes[len(nodes)-1]
		if u == res.Sink {
			amount := minRemaining(remaining, walk)
			p := Path{Amount: amount, Steps: make([]Step, len(walk))}
			for i, id := range walk {
				remaining[id] -= amount
				e := edges[id]
				p.Steps[i] = Step{Edge: id, From: labelOf(net, e.From), To: labelOf(net, e.To)}
			}
			paths = append(paths, p)
			for _, v := range nodes[1:] {
				onWalk[v] = -1
			}
			nodes, walk = nodes[:1], walk[:0]
			continue
		}

		id, ok := nextEdge(u)
		if !ok {
			if u == res.Source {
				return paths, nil
			}
			return nil, fmt.Errorf("projection: node %s: %w", net.Label(u), ErrInconsistentFlow)
		}
		v := edges[id].To
		if pos := onWalk[v]; pos >= 0 {
			// cycle: walk[pos:] plus id returns to v
			cycle := append(append([]core.EdgeID(nil), walk[pos:]...), id)
			amount := minRemaining(remaining, cycle)
			for _, c := range cycle {
				remaining[c] -= amount
			}
			for _, w := range nodes[pos+1:] {
				onWalk[w] = -1
			}
			nodes, walk = nodes[:pos+1], walk[:pos]
			continue
		}
		onWalk[v] = len(nodes)
		nodes = append(nodes, v)
		walk = append(walk, id)
	}
}

func minRemaining(remaining []int64, ids []core.EdgeID) int64 {
	m := remaining[ids[0]]
	for _, id := range ids[1:] {
		if remaining[id] < m {
			m = remaining[id]
		}
	}

	return m
}

// Totals sums path amounts per edge, indexed by core.EdgeID.
func Totals(paths []Path, edgeCount int) []int64 {
	sum := make([]int64, edgeCount)
	for _, p := range paths {
		for _, st := range p.Steps {
			if int(st.Edge) < edgeCount {
				sum[st.Edge] += p.Amount
			}
		}
	}

	return sum
}
