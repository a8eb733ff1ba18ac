// File: view.go
// Role: non-mutating Reader views — edge-reversed (for Eppstein's reverse
// SSSP preprocessing, spec.md §4.2) and masked-by-predicate (for Yen's
// deviation loop, spec.md §4.7). Grounded on core/view.go's "views don't
// mutate the input graph" discipline and on jgrapht's EdgeReversedGraph /
// DirectedMaskSubgraph.
package graph

// Reversed returns a Reader[V] presenting g with every edge's source and
// target swapped. g is read exactly once, in full, to build an index that
// makes OutEdges/Edge/AllEdges on the reversed view O(1)-amortized rather
// than an O(E) scan per query; g itself is never mutated, and later
// mutation of g is not reflected in the returned view (the index is a
// snapshot, not a live projection — the precomputed-index tradeoff closest
// first traversal relies on for its O(m + n log n) bound, spec.md §2).
//
// Complexity: O(V+E) to construct.
func Reversed[V comparable](g Reader[V]) Reader[V] {
	rev := New[V]()
	for _, v := range g.Vertices() {
		rev.AddVertex(v)
	}
	for _, e := range g.EdgeSet() {
		rev.edges[e.ID] = Edge[V]{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight}
		if rev.adjacency[e.To] == nil {
			rev.adjacency[e.To] = make(map[V][]string)
		}
		rev.adjacency[e.To][e.From] = append(rev.adjacency[e.To][e.From], e.ID)
	}
	return rev
}

// VertexPredicate reports whether a vertex should be hidden from a Masked view.
type VertexPredicate[V comparable] func(V) bool

// EdgePredicate reports whether an edge should be hidden from a Masked view.
type EdgePredicate[V comparable] func(Edge[V]) bool

// Masked returns a Reader[V] presenting g with every vertex matching
// hideVertex, and every edge matching hideEdge or touching a hidden vertex,
// removed. Unlike Reversed, no copy is made; the predicates are evaluated on
// each query, exactly as spec.md's "Masked subgraph" design note prescribes
// ("a read-only view over the underlying graph combined with two
// predicates... no copy").
//
// A nil predicate hides nothing.
func Masked[V comparable](g Reader[V], hideVertex VertexPredicate[V], hideEdge EdgePredicate[V]) Reader[V] {
	if hideVertex == nil {
		hideVertex = func(V) bool { return false }
	}
	if hideEdge == nil {
		hideEdge = func(Edge[V]) bool { return false }
	}
	return maskedView[V]{g: g, hideVertex: hideVertex, hideEdge: hideEdge}
}

type maskedView[V comparable] struct {
	g          Reader[V]
	hideVertex VertexPredicate[V]
	hideEdge   EdgePredicate[V]
}

func (m maskedView[V]) visible(e Edge[V]) bool {
	return !m.hideEdge(e) && !m.hideVertex(e.From) && !m.hideVertex(e.To)
}

func (m maskedView[V]) Vertices() []V {
	src := m.g.Vertices()
	out := make([]V, 0, len(src))
	for _, v := range src {
		if !m.hideVertex(v) {
			out = append(out, v)
		}
	}
	return out
}

func (m maskedView[V]) EdgeSet() []Edge[V] {
	src := m.g.EdgeSet()
	out := make([]Edge[V], 0, len(src))
	for _, e := range src {
		if m.visible(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m maskedView[V]) Edge(u, v V) (Edge[V], bool) {
	if m.hideVertex(u) || m.hideVertex(v) {
		return Edge[V]{}, false
	}
	for _, e := range m.g.AllEdges(u, v) {
		if !m.hideEdge(e) {
			return e, true
		}
	}
	return Edge[V]{}, false
}

func (m maskedView[V]) AllEdges(u, v V) []Edge[V] {
	if m.hideVertex(u) || m.hideVertex(v) {
		return nil
	}
	src := m.g.AllEdges(u, v)
	out := make([]Edge[V], 0, len(src))
	for _, e := range src {
		if !m.hideEdge(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m maskedView[V]) OutEdges(v V) []Edge[V] {
	if m.hideVertex(v) {
		return nil
	}
	src := m.g.OutEdges(v)
	out := make([]Edge[V], 0, len(src))
	for _, e := range src {
		if m.visible(e) {
			out = append(out, e)
		}
	}
	return out
}
