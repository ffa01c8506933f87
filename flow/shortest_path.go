package flow

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/giftflow/core"
)

// inf marks an unreachable distance.
const inf = math.MaxInt64

// bellmanFord computes shortest residual distances from source over arcs with
// positive capacity, allowing negative costs. Unreachable nodes get inf.
// It returns ErrNegativeCycle if the V-th round still relaxes an arc.
//
// Complexity: O(V · E)
func (r *residual) bellmanFord(source core.NodeID) ([]int64, error) {
	dist := make([]int64, len(r.adj))
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	for round := 0; round < len(r.adj); round++ {
		changed := false
		for u := range r.adj {
			if dist[u] == inf {
				continue
			}
			for _, a := range r.adj[u] {
				if r.arcs[a].cap <= 0 {
					continue
				}
				v := r.arcs[a].to
				if nd := dist[u] + r.arcs[a].cost; nd < dist[v] {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			return dist, nil
		}
	}

	return nil, ErrNegativeCycle
}

// dijkstra computes shortest distances from source under reduced costs
// cost(a) + pot[u] − pot[v], which are non-negative on every arc with
// positive capacity between reachable nodes. It returns the distance slice and
// the discovering arc per node (-1 if unreached).
//
// Uses the lazy decrease-key pattern: stale heap entries are skipped on pop.
// Complexity: O(E log V)
func (r *residual) dijkstra(source core.NodeID, pot []int64) ([]int64, []int) {
	n := len(r.adj)
	dist := make([]int64, n)
	parent := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		parent[i] = -1
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, nodeItem{id: source, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if done[u] {
			continue
		}
		done[u] = true
		for _, a := range r.adj[u] {
			ar := r.arcs[a]
			if ar.cap <= 0 || done[ar.to] {
				continue
			}
			nd := dist[u] + ar.cost + pot[u] - pot[ar.to]
			if nd < dist[ar.to] {
				dist[ar.to] = nd
				parent[ar.to] = a
				heap.Push(&pq, nodeItem{id: ar.to, dist: nd})
			}
		}
	}

	return dist, parent
}

// nodeItem is a node and its tentative distance.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of nodeItem by dist, ties broken by lower node id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
