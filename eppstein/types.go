package eppstein

import (
	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kpath"
	"github.com/katalvlaran/kpaths/treeheap"
)

// Options configures an Engine. Following dijkstra/types.go's
// Options/Option/DefaultOptions pattern.
type Options struct {
	// WeightTolerance is the amount by which a computed sidetrack cost δ may
	// fall below zero (floating-point rounding) and still be clamped to 0;
	// 0, the default, leaves every δ as computed. Tree edges are identified
	// by edge ID, not by δ.
	WeightTolerance float64
}

// Option is a functional option for New.
type Option func(*Options)

// WithWeightTolerance sets WeightTolerance, so that slightly negative δ
// values caused by rounding are clamped to 0.
func WithWeightTolerance(eps float64) Option {
	return func(o *Options) { o.WeightTolerance = eps }
}

// DefaultOptions returns an Options with WeightTolerance = 0.
func DefaultOptions() Options {
	return Options{WeightTolerance: 0}
}

// token is the tagged "Eppstein path" variant of spec.md §9: a shared
// comparator on cost (via tokenPQ's Less), with the two variants
// distinguished by isInitial rather than by separate types, since the only
// behavioral difference is how pushSuccessors and materialize treat them.
type token[V comparable] struct {
	cost      float64
	isInitial bool

	// node is the H_T node this token is associated with; nil for the
	// initial token.
	node *treeheap.Node[graph.Edge[V]]

	// base is the token this one derives its materialized path from —
	// "parent" in spec.md §4.5/§4.6's terminology (renamed to avoid
	// colliding with the graph sense of "parent edge").
	base *token[V]

	// path caches this token's materialized GraphPath; tokens are
	// immutable once constructed so memoizing here is safe and avoids
	// re-walking shared base chains on every sibling materialization.
	path *kpath.Path[V]
}

// tokenPQ is the min-priority queue of pending tokens, ordered by cost,
// following dijkstra/dijkstra.go's nodePQ container/heap idiom.
type tokenPQ[V comparable] []*token[V]

func (pq tokenPQ[V]) Len() int            { return len(pq) }
func (pq tokenPQ[V]) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq tokenPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *tokenPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*token[V])) }
func (pq *tokenPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
