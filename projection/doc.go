// Package projection turns a flow.Result into structured output for
// renderers: a labeled per-edge (flow, capacity) view and a decomposition of
// the assignment into source→sink paths.
//
// Labels resolve node ids back to "Source", "Sink" or the domain name, so
// consumers never see raw identifiers.
//
// Decompose is greedy: it repeatedly walks from the source along the first
// outgoing edge (insertion order) with unconsumed flow, records the walk and
// its bottleneck, and subtracts. Each round strictly lowers the remaining
// total, so it terminates. Flow circulating on a cycle is cancelled during the
// walk and does not appear in any path.
package projection
