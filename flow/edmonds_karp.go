package flow

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/giftflow/core"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - res: flow value, per-edge flow and resolved capacities
//   - err: non-nil on invalid input, exhausted budget or cancellation
//
// Options (nil uses DefaultOptions):
//   - DefaultCapacity:  capacity used for edges with core.CapacityUnset
//   - MaxAugmentations: budget checked before every augmentation
//   - Logger:           Debug record per augmentation
//
// Steps:
//  1. Validate network, endpoints and options.
//  2. Build the zero-flow residual graph (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. Check ctx.
//     b. BFS for the fewest-edge path with positive residual capacity.
//     c. Check the augmentation budget.
//     d. Push the bottleneck along the path.
//  4. Extract the flow assignment from the reverse arcs.
//
// Termination: each augmentation adds at least one unit, and the value is
// bounded by the total capacity leaving source.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	net *core.Network,
	source, sink core.NodeID,
	opts *FlowOptions,
) (*Result, error) {
	// 1) Validate
	if err := validate(net, source, sink); err != nil {
		return nil, err
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Residual graph
	r := buildResidual(net, o)

	// 3) Main loop
	var value int64
	augmentations := 0
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		path := r.bfsAugmentingPath(source, sink)
		if path == nil {
			break
		}
		if o.MaxAugmentations > 0 && augmentations >= o.MaxAugmentations {
			return nil, errorf("EdmondsKarp: %d augmentations, value %d: %w",
				augmentations, value, ErrResourceExhausted)
		}

		bottle := r.bottleneck(path)
		for _, a := range path {
			r.push(a, bottle)
		}
		value += bottle
		augmentations++
		o.Logger.Debug("augmenting path",
			slog.String("solver", "edmonds-karp"),
			slog.Int("path_len", len(path)),
			slog.Int64("amount", bottle),
			slog.Int64("value", value),
		)
	}

	// 4) Extract
	return r.result(source, sink, value), nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path source→sink with
// positive residual capacity and returns its arcs, or nil when none exists.
// Arcs are scanned in insertion order, so ties resolve identically on every run.
func (r *residual) bfsAugmentingPath(source, sink core.NodeID) []int {
	// parent[v] = arc that discovered v; -1 if undiscovered
	parent := make([]int, len(r.adj))
	for i := range parent {
		parent[i] = -1
	}
	queue := make([]core.NodeID, 0, len(r.adj))
	queue = append(queue, source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if r.arcs[a].cap <= 0 || v == source || parent[v] >= 0 {
				continue
			}
			parent[v] = a
			if v == sink {
				return r.tracePath(parent, source, sink)
			}
			queue = append(queue, v)
		}
	}

	return nil
}
