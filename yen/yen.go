package yen

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kerr"
	"github.com/katalvlaran/kpaths/kpath"
)

// Engine holds the graph and configuration an Iterator replays the
// deviation loop against; it carries no mutable state of its own, so
// multiple independent Iterators over the same Engine never interfere.
type Engine[V comparable] struct {
	g    graph.Reader[V]
	s, t V
	opts Options[V]
}

// New validates s and t are present in g and returns an Engine configured
// with opts (defaulting to a Dijkstra-backed oracle factory).
func New[V comparable](g graph.Reader[V], s, t V, opts ...Option[V]) (*Engine[V], error) {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	found := map[V]bool{}
	for _, v := range g.Vertices() {
		found[v] = true
	}
	if !found[s] {
		return nil, fmt.Errorf("%w: source %v not in graph", kerr.ErrInvalidInput, s)
	}
	if !found[t] {
		return nil, fmt.Errorf("%w: sink %v not in graph", kerr.ErrInvalidInput, t)
	}

	return &Engine[V]{g: g, s: s, t: t, opts: cfg}, nil
}

// Paths returns up to k shortest simple s-t paths, in non-decreasing
// weight order, or the first error the oracle factory or an oracle
// surfaces.
func (eng *Engine[V]) Paths(k int) ([]kpath.Path[V], error) {
	if k <= 0 {
		return nil, nil
	}
	it := eng.Iterator()
	out := make([]kpath.Path[V], 0, k)
	for i := 0; i < k; i++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out, it.Err()
}

// Iterator returns a lazy sequence of simple s-t paths; it owns its own A
// (accepted paths) and B (candidate min-heap) state (spec.md §3).
func (eng *Engine[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{eng: eng}
}

// Iterator is the per-call mutable state of a Yen enumeration.
type Iterator[V comparable] struct {
	eng *Engine[V]

	a           []kpath.Path[V]
	b           candPQ[V]
	returned    int
	initialized bool
	exhausted   bool
	err         error
}

// Err returns the first error encountered, or nil. Once set it never
// clears; every subsequent Next returns (zero, false) without retrying.
func (it *Iterator[V]) Err() error { return it.err }

// Next returns the next simple s-t path in non-decreasing weight order.
// ok is false once every simple path has been produced, or once Err()
// becomes non-nil.
func (it *Iterator[V]) Next() (kpath.Path[V], bool) {
	if it.exhausted || it.err != nil {
		return kpath.Path[V]{}, false
	}
	if it.returned < len(it.a) {
		p := it.a[it.returned]
		it.returned++
		return p, true
	}
	if !it.initialized {
		it.initialized = true
		oracle, err := it.eng.opts.Factory(it.eng.g, it.eng.s)
		if err != nil {
			it.err = &kerr.OracleFailure{Err: err}
			return kpath.Path[V]{}, false
		}
		p, ok := oracle.ShortestPathTo(it.eng.t)
		if !ok {
			it.exhausted = true
			return kpath.Path[V]{}, false
		}
		it.a = append(it.a, p)
		return it.Next()
	}

	if !it.extend() {
		it.exhausted = true
		return kpath.Path[V]{}, false
	}
	p := it.a[it.returned]
	it.returned++
	return p, true
}

// extend runs one spur-and-pop cycle (spec.md §4.7): spur over the last
// accepted path into B, then pop the minimum of B that isn't a duplicate
// of it, appending it to A. Reports whether a new path was appended.
func (it *Iterator[V]) extend() bool {
	last := it.a[len(it.a)-1]
	if err := it.spur(last); err != nil {
		it.err = &kerr.OracleFailure{Err: err}
		return false
	}

	for it.b.Len() > 0 {
		cand := heap.Pop(&it.b).(*candItem[V]).path
		if edgeIDsEqual(cand.Edges, last.Edges) {
			continue
		}
		it.a = append(it.a, cand)
		return true
	}
	return false
}

// spur scans every spur index of p, building masked subgraphs and pushing
// any candidate found into B (spec.md §4.7 "For each spur index...").
func (it *Iterator[V]) spur(p kpath.Path[V]) error {
	verts := p.Vertices()
	for i := 0; i < len(p.Edges); i++ {
		spurNode := verts[i]
		rootVerts := verts[:i]

		maskedEdgeIDs := make(map[string]struct{})
		for _, other := range it.a {
			ov := other.Vertices()
			if len(ov) <= i+1 || !vertexPrefixEqual(ov[:i], rootVerts) {
				continue
			}
			maskedEdgeIDs[other.Edges[i].ID] = struct{}{}
		}
		maskedVertices := make(map[V]struct{}, len(rootVerts))
		for _, v := range rootVerts {
			maskedVertices[v] = struct{}{}
		}

		masked := graph.Masked[V](it.eng.g,
			func(v V) bool { _, ok := maskedVertices[v]; return ok },
			func(e graph.Edge[V]) bool { _, ok := maskedEdgeIDs[e.ID]; return ok },
		)

		oracle, err := it.eng.opts.Factory(masked, spurNode)
		if err != nil {
			return err
		}
		spurPath, ok := oracle.ShortestPathTo(it.eng.t)
		if !ok || spurPath.Len() == 0 {
			// Empty-path convention (spec.md §4.7): treated as "no spur
			// path found", not as the trivial zero-length walk.
			continue
		}

		rootEdges := p.Edges[:i]
		totalEdges := make([]graph.Edge[V], 0, len(rootEdges)+len(spurPath.Edges))
		totalEdges = append(totalEdges, rootEdges...)
		totalEdges = append(totalEdges, spurPath.Edges...)

		var rootWeight float64
		for _, e := range rootEdges {
			rootWeight += e.Weight
		}

		heap.Push(&it.b, &candItem[V]{path: kpath.Path[V]{
			Source: it.eng.s,
			Sink:   it.eng.t,
			Edges:  totalEdges,
			Weight: rootWeight + spurPath.Weight,
		}})
	}
	return nil
}

func vertexPrefixEqual[V comparable](a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func edgeIDsEqual[V comparable](a, b []graph.Edge[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
