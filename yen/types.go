package yen

import (
	"github.com/katalvlaran/kpaths/kpath"
	"github.com/katalvlaran/kpaths/sssp"
)

// Options configures an Engine. Following dijkstra/types.go's
// Options/Option/DefaultOptions pattern.
type Options[V comparable] struct {
	// Factory builds the baseline SSSP oracle consulted on the whole graph
	// (for the first accepted path) and on every masked subgraph visited
	// by the deviation loop (spec.md §4.7's "Oracle factory"). Defaults to
	// sssp.DijkstraFactory.
	Factory sssp.Factory[V]
}

// Option is a functional option for New.
type Option[V comparable] func(*Options[V])

// WithFactory overrides the default Dijkstra-backed oracle factory, e.g.
// with sssp.BellmanFordFactory for graphs that may carry negative weights.
func WithFactory[V comparable](f sssp.Factory[V]) Option[V] {
	return func(o *Options[V]) { o.Factory = f }
}

// DefaultOptions returns an Options using sssp.DijkstraFactory.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Factory: sssp.DijkstraFactory[V]()}
}

// candItem is one pending candidate in B, the min-heap ordered by total
// weight (spec.md §3's "Yen state").
type candItem[V comparable] struct {
	path kpath.Path[V]
}

type candPQ[V comparable] []*candItem[V]

func (pq candPQ[V]) Len() int            { return len(pq) }
func (pq candPQ[V]) Less(i, j int) bool  { return pq[i].path.Weight < pq[j].path.Weight }
func (pq candPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*candItem[V])) }
func (pq *candPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
