// Package closestfirst implements a non-decreasing-distance traversal that
// yields each reachable vertex together with the spanning-tree edge it was
// first reached by (spec.md §4.2, the reverse SSSP Eppstein's preprocessing
// runs from the sink). Grounded on lvlath/dijkstra's lazy decrease-key
// container/heap loop, reshaped into jgrapht's ClosestFirstIterator contract
// (hasNext/next yielding a vertex plus its spanning-tree parent edge)
// instead of dijkstra's map-returning one: eppstein needs the parent edges
// to reconstruct the shortest-path tree that sidetrack costs and H_T
// construction walk, not just final distances.
package closestfirst

import (
	"container/heap"

	"github.com/katalvlaran/kpaths/graph"
)

// Step is one vertex yielded by the traversal: its distance from the
// traversal's source, and the edge of g by which it was first reached.
// ParentEdge is the zero Edge (ID == "") for the source vertex itself.
type Step[V comparable] struct {
	Vertex     V
	Dist       float64
	ParentEdge graph.Edge[V]
	HasParent  bool
}

// Iterator walks g outward from a source vertex in non-decreasing order of
// distance, lazily: each call to Next runs one more heap extraction.
type Iterator[V comparable] struct {
	g       graph.Reader[V]
	visited map[V]bool
	pq      itemPQ[V]
}

// New starts a closest-first traversal of g rooted at source. Edge weights
// must be non-negative; g may be a graph.Reversed view (Eppstein's use) or
// any other Reader.
func New[V comparable](g graph.Reader[V], source V) *Iterator[V] {
	it := &Iterator[V]{
		g:       g,
		visited: make(map[V]bool),
	}
	heap.Push(&it.pq, &item[V]{vertex: source, dist: 0, hasParent: false})
	return it
}

// HasNext reports whether a further call to Next will yield a step. It may
// pop and discard stale heap entries to answer accurately.
func (it *Iterator[V]) HasNext() bool {
	for it.pq.Len() > 0 {
		if !it.visited[it.pq[0].vertex] {
			return true
		}
		heap.Pop(&it.pq)
	}
	return false
}

// Next returns the next-closest unvisited vertex and advances the
// traversal, relaxing its outgoing edges into the frontier. ok is false once
// every reachable vertex has been yielded.
func (it *Iterator[V]) Next() (Step[V], bool) {
	var top *item[V]
	for it.pq.Len() > 0 {
		top = heap.Pop(&it.pq).(*item[V])
		if !it.visited[top.vertex] {
			break
		}
		top = nil
	}
	if top == nil {
		return Step[V]{}, false
	}
	it.visited[top.vertex] = true

	for _, e := range it.g.OutEdges(top.vertex) {
		if it.visited[e.To] {
			continue
		}
		heap.Push(&it.pq, &item[V]{
			vertex:     e.To,
			dist:       top.dist + e.Weight,
			parentEdge: e,
			hasParent:  true,
		})
	}

	return Step[V]{
		Vertex:     top.vertex,
		Dist:       top.dist,
		ParentEdge: top.parentEdge,
		HasParent:  top.hasParent,
	}, true
}

// Result is the outcome of draining an Iterator to exhaustion: every
// reachable vertex's distance from the source and the spanning-tree edge
// that first reached it.
type Result[V comparable] struct {
	Dist   map[V]float64
	Parent map[V]graph.Edge[V]
	Order  []V
}

// Run drains a closest-first traversal of g from source to completion.
// Eppstein's preprocessing stage (spec.md §4.2) calls this once, on a
// graph.Reversed view rooted at the sink, to get every vertex's distance to
// the sink and the reverse shortest-path tree in one pass.
func Run[V comparable](g graph.Reader[V], source V) Result[V] {
	it := New(g, source)
	res := Result[V]{
		Dist:   make(map[V]float64),
		Parent: make(map[V]graph.Edge[V]),
	}
	for {
		step, ok := it.Next()
		if !ok {
			break
		}
		res.Dist[step.Vertex] = step.Dist
		if step.HasParent {
			res.Parent[step.Vertex] = step.ParentEdge
		}
		res.Order = append(res.Order, step.Vertex)
	}
	return res
}

type item[V comparable] struct {
	vertex     V
	dist       float64
	parentEdge graph.Edge[V]
	hasParent  bool
}

// itemPQ is a min-heap of *item[V] ordered by dist, following
// lvlath/dijkstra's nodePQ Len/Less/Swap/Push/Pop idiom and its
// lazy-decrease-key discipline (stale entries are skipped on pop rather
// than removed in place).
type itemPQ[V comparable] []*item[V]

func (pq itemPQ[V]) Len() int            { return len(pq) }
func (pq itemPQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq itemPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*item[V])) }
func (pq *itemPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
