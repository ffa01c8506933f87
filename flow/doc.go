// Package flow computes maximum flows and minimum-cost maximum flows on a
// *core.Network.
//
// Two solvers share one residual representation:
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case with integer capacities.
//
//   - Memory: O(V + E) for residual arcs and BFS state.
//
//   - MinCostFlow
//
//   - Method: successive shortest augmenting paths by cost. Bellman–Ford
//     seeds node potentials (and detects a negative-cost cycle reachable
//     from the source); every later search is Dijkstra on reduced costs.
//
//   - Time:   O(V · E + F · E log V), F = flow value.
//
//   - Memory: O(V + E).
//
// # Residual graph
//
// Every network edge e contributes a forward arc with residual capacity
// capacity(e) − flow(e) and cost(e), and a reverse arc with residual
// capacity flow(e) and cost −cost(e). Arcs are scanned in edge insertion
// order, so identical input always produces an identical flow assignment.
//
// # Capacity fallback
//
// An edge added with core.CapacityUnset is solved with
// FlowOptions.DefaultCapacity, which defaults to 1. The capacity actually used
// is reported per edge in Result.Capacity.
//
// # Errors
//
//	ErrNilNetwork        - the network pointer is nil.
//	ErrDegenerateNetwork - source equals sink.
//	core.ErrInvalidNode  - source or sink is not a node of the network.
//	ErrBadOption         - FlowOptions carries a meaningless value.
//	ErrResourceExhausted - MaxAugmentations was reached before convergence.
//	ErrNegativeCycle     - MinCostFlow found a negative-cost cycle reachable from the source.
//	context.Canceled / context.DeadlineExceeded - ctx ended before convergence.
//
// A network where the sink is unreachable from the source is not an error:
// both solvers return a zero-flow Result.
package flow
