// Package giftflow allocates a supply of items to recipients by turning the
// problem into a flow network and solving it.
//
// What is giftflow?
//
//	Each item type has a quantity, each recipient a wishlist and a maximum
//	allotment. The network is
//
//		Source → item (quantity) → recipient (pair capacity) → Sink (allotment)
//
//	and its maximum flow is the largest feasible assignment. With rank costs
//	on item→recipient edges, min-cost max-flow prefers higher-ranked wishes.
//
// Packages:
//
//	core/       Network: dense node ids, directed edges with capacity and cost
//	builder/    items + recipients → Network, name resolution done once
//	flow/       EdmondsKarp (max-flow) and MinCostFlow (successive shortest paths)
//	projection/ labelled per-edge flows and source→sink path decomposition
//	problem/    YAML input, validated
//	cmd/giftflow  CLI: giftflow solve problem.yaml --mode mincost
//
// Quick example:
//
//	alloc, _ := builder.Build(items, recipients, builder.WithLinearRankCost())
//	net := alloc.Network()
//	res, _ := flow.MinCostFlow(ctx, net, net.Source(), net.Sink(), nil)
//	paths, _ := projection.Paths(net, res)
//
// Errors are sentinels per package, compared with errors.Is. Solvers never
// panic; option constructors do on meaningless values.
//
//	go get github.com/katalvlaran/giftflow
package giftflow
