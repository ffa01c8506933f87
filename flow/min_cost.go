package flow

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/giftflow/core"
)

// MinCostFlow computes a maximum flow of minimum total cost from source→sink
// by successive shortest augmenting paths.
//
// It returns:
//   - res: flow value, total cost, per-edge flow and the augmenting paths
//   - err: non-nil on invalid input, a negative cycle, an exhausted budget or
//     cancellation
//
// Steps:
//  1. Validate network, endpoints and options.
//  2. Build the zero-flow residual graph.
//  3. Bellman–Ford from source seeds the potentials; a negative-cost cycle
//     reachable from source aborts with ErrNegativeCycle.
//  4. Repeat until the sink is unreachable:
//     a. Check ctx.
//     b. Dijkstra on reduced costs for the cheapest augmenting path.
//     c. Check the augmentation budget.
//     d. Fold the distances into the potentials.
//     e. Push the bottleneck; cost += bottleneck · path cost.
//  5. Extract the flow assignment.
//
// Precondition: no negative-cost cycle reachable from source. The builder
// never emits negative costs, so only caller-supplied rank costs can break it.
//
// Complexity: O(V · E + F · E log V)
// Memory:     O(V + E)
func MinCostFlow(
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

	// 3) Potentials
	pot, err := r.bellmanFord(source)
	if err != nil {
		return nil, errorf("MinCostFlow: %w", err)
	}
	for v := range pot {
		if pot[v] == inf {
			pot[v] = 0 // unreachable now, and stays unreachable
		}
	}

	// 4) Main loop
	var (
		value, cost int64
		augs        []Augmentation
	)
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		dist, parent := r.dijkstra(source, pot)
		if dist[sink] == inf {
			break
		}
		if o.MaxAugmentations > 0 && len(augs) >= o.MaxAugmentations {
			return nil, errorf("MinCostFlow: %d augmentations, value %d: %w",
				len(augs), value, ErrResourceExhausted)
		}
		for v, d := range dist {
			if d != inf {
				pot[v] += d
			}
		}

		path := r.tracePath(parent, source, sink)
		bottle := r.bottleneck(path)
		var unit int64
		for _, a := range path {
			unit += r.arcs[a].cost
			r.push(a, bottle)
		}
		value += bottle
		cost += bottle * unit
		augs = append(augs, Augmentation{Steps: steps(path), Amount: bottle, UnitCost: unit})
		o.Logger.Debug("augmenting path",
			slog.String("solver", "min-cost"),
			slog.Int("path_len", len(path)),
			slog.Int64("amount", bottle),
			slog.Int64("unit_cost", unit),
			slog.Int64("value", value),
			slog.Int64("cost", cost),
		)
	}

	// 5) Extract
	res := r.result(source, sink, value)
	res.Augmentations = augs

	return res, nil
}
