package eppstein

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kpaths/closestfirst"
	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/houtheap"
	"github.com/katalvlaran/kpaths/kerr"
	"github.com/katalvlaran/kpaths/kpath"
	"github.com/katalvlaran/kpaths/treeheap"
)

// Engine is constructed once per (graph, s, t) and holds every
// preprocessing product (spec.md §3's "Lifecycles" note): the reverse
// shortest-path tree and per-vertex H_T. Each vertex's H_out is folded into
// the H_T node built from it and is not kept separately. Engine itself
// is immutable after New returns; Iterator owns the only mutable state
// (its priority queue).
type Engine[V comparable] struct {
	g    graph.Reader[V]
	s, t V

	dist   map[V]float64
	parent map[V]graph.Edge[V] // π(v): v's tree edge towards t

	hT map[V]*treeheap.Node[graph.Edge[V]]
}

// New preprocesses g for k-shortest-walks queries from s to t: reverse
// SSSP from t (closestfirst), per-vertex H_out (houtheap), per-vertex H_T
// (treeheap), in that order, following spec.md §4.2-§4.4.
//
// Complexity: O(m + n log n).
func New[V comparable](g graph.Reader[V], s, t V, opts ...Option) (*Engine[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertexSet := make(map[V]struct{})
	for _, v := range g.Vertices() {
		vertexSet[v] = struct{}{}
	}
	if _, ok := vertexSet[s]; !ok {
		return nil, fmt.Errorf("%w: source %v not in graph", kerr.ErrInvalidInput, s)
	}
	if _, ok := vertexSet[t]; !ok {
		return nil, fmt.Errorf("%w: sink %v not in graph", kerr.ErrInvalidInput, t)
	}
	for _, e := range g.EdgeSet() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s has negative weight %v", kerr.ErrUnsupportedConfiguration, e.ID, e.Weight)
		}
	}

	eng := &Engine[V]{g: g, s: s, t: t}

	rev := graph.Reversed[V](g)
	result := closestfirst.Run[V](rev, t)
	eng.dist = result.Dist
	eng.parent = make(map[V]graph.Edge[V], len(result.Parent))
	for v, pe := range result.Parent {
		// pe is an edge of the reversed graph, pe.To == v; the original
		// tree edge from v towards t is pe with From/To swapped back.
		eng.parent[v] = graph.Edge[V]{ID: pe.ID, From: v, To: pe.From, Weight: pe.Weight}
	}

	hOut := make(map[V]*houtheap.HOut[graph.Edge[V]], len(result.Order))
	for _, v := range result.Order {
		hOut[v] = buildHOut(g, v, eng.dist, eng.parent, cfg.WeightTolerance)
	}

	eng.hT = make(map[V]*treeheap.Node[graph.Edge[V]], len(result.Order))
	for _, v := range result.Order {
		if v == t {
			eng.hT[v] = treeheap.New(hOut[v])
			continue
		}
		u := eng.parent[v].To
		base := eng.hT[u]
		if hOut[v].Empty() {
			eng.hT[v] = base
			continue
		}
		outroot := treeheap.New(hOut[v])
		eng.hT[v] = treeheap.Insert(base, outroot)
	}

	return eng, nil
}

// buildHOut collects v's outgoing sidetracks (spec.md §4.3): edges that
// are not v's tree edge and whose target has finite distance to t.
func buildHOut[V comparable](g graph.Reader[V], v V, dist map[V]float64, parent map[V]graph.Edge[V], tol float64) *houtheap.HOut[graph.Edge[V]] {
	h := houtheap.New[graph.Edge[V]]()
	treeEdgeID, hasTreeEdge := "", false
	if pe, ok := parent[v]; ok {
		treeEdgeID, hasTreeEdge = pe.ID, true
	}
	for _, e := range g.OutEdges(v) {
		if hasTreeEdge && e.ID == treeEdgeID {
			continue
		}
		dv, ok := dist[e.To]
		if !ok {
			continue
		}
		delta := e.Weight + dv - dist[v]
		if tol > 0 && delta < 0 && -delta <= tol {
			delta = 0
		}
		h.Add(e, delta)
	}
	return h
}

// Paths returns up to k shortest s-t walks, in non-decreasing weight order.
// Fewer than k are returned only when the graph has fewer than k s-t walks
// (possible only if no cycle lies on an s-t walk, so the iterator
// terminates) or if d(s) is absent (t unreachable from s, yielding none).
func (eng *Engine[V]) Paths(k int) []kpath.Path[V] {
	if k <= 0 {
		return nil
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
	return out
}

// Iterator returns a lazy, possibly-infinite sequence of s-t walks in
// non-decreasing weight order (spec.md §4.8's pathsIterator mode). Each
// Iterator owns a private priority queue; multiple Iterators over the same
// Engine do not interfere with each other.
func (eng *Engine[V]) Iterator() *Iterator[V] {
	it := &Iterator[V]{eng: eng}
	if d0, ok := eng.dist[eng.s]; ok {
		heap.Push(&it.pq, &token[V]{cost: d0, isInitial: true})
	}
	return it
}

// Iterator is the per-call mutable state of an Eppstein enumeration:
// exactly the priority queue of pending tokens (spec.md §4.5's "State").
type Iterator[V comparable] struct {
	eng *Engine[V]
	pq  tokenPQ[V]
}

// Next pops the minimum-cost pending token, materializes its path, pushes
// its successor tokens (spec.md §4.5 step 3), and returns the
// materialized path. ok is false once the queue is exhausted — which,
// for an acyclic graph or one with no non-negative-weight cycle on an
// s-t walk, eventually happens; otherwise Next never exhausts and callers
// must bound their own iteration.
func (it *Iterator[V]) Next() (kpath.Path[V], bool) {
	if it.pq.Len() == 0 {
		return kpath.Path[V]{}, false
	}
	tok := heap.Pop(&it.pq).(*token[V])
	p := tok.materialize(it.eng)
	it.pushSuccessors(tok)
	return p, true
}

func (it *Iterator[V]) pushSuccessors(tok *token[V]) {
	if tok.isInitial {
		if root := it.eng.hT[it.eng.s]; root != nil {
			heap.Push(&it.pq, &token[V]{
				cost: tok.cost + root.Sidetrack.Delta,
				node: root,
				base: tok,
			})
		}
		return
	}

	n := tok.node
	if n.Left != nil {
		heap.Push(&it.pq, &token[V]{cost: tok.base.cost + n.Left.Sidetrack.Delta, node: n.Left, base: tok.base})
	}
	if n.Right != nil {
		heap.Push(&it.pq, &token[V]{cost: tok.base.cost + n.Right.Sidetrack.Delta, node: n.Right, base: tok.base})
	}
	if n.Rest != nil {
		heap.Push(&it.pq, &token[V]{cost: tok.base.cost + n.Rest.Sidetrack.Delta, node: n.Rest, base: tok.base})
	}
	u := n.Sidetrack.Edge.To
	if ht := it.eng.hT[u]; ht != nil {
		heap.Push(&it.pq, &token[V]{cost: tok.cost + ht.Sidetrack.Delta, node: ht, base: tok})
	}
}

// materialize builds tok's GraphPath, per spec.md §4.6, caching the result
// on tok (tokens are immutable once constructed, so the cache can never go
// stale, and it saves re-walking a base chain shared by several sibling
// tokens).
func (tok *token[V]) materialize(eng *Engine[V]) kpath.Path[V] {
	if tok.path != nil {
		return *tok.path
	}

	var p kpath.Path[V]
	if tok.isInitial {
		p = kpath.Path[V]{
			Source: eng.s,
			Sink:   eng.t,
			Edges:  eng.treeEdgesFrom(eng.s),
			Weight: tok.cost,
		}
	} else {
		base := tok.base.materialize(eng)
		sidetrack := tok.node.Sidetrack
		srcVertex := sidetrack.Edge.From

		verts := base.Vertices()
		splice := -1
		for i, v := range verts {
			if v == srcVertex {
				splice = i
			}
		}

		edges := make([]graph.Edge[V], 0, splice+1+len(eng.parent))
		edges = append(edges, base.Edges[:splice]...)
		edges = append(edges, sidetrack.Edge)
		edges = append(edges, eng.treeEdgesFrom(sidetrack.Edge.To)...)

		p = kpath.Path[V]{
			Source: eng.s,
			Sink:   eng.t,
			Edges:  edges,
			Weight: tok.cost,
		}
	}

	tok.path = &p
	return p
}

// treeEdgesFrom walks π from v to t, following each vertex's recorded tree
// edge (spec.md §4.6 step 4, "Append the π-chain from target(n.sidetrack)
// to t").
func (eng *Engine[V]) treeEdgesFrom(v V) []graph.Edge[V] {
	var edges []graph.Edge[V]
	cur := v
	for cur != eng.t {
		e := eng.parent[cur]
		edges = append(edges, e)
		cur = e.To
	}
	return edges
}
