// Package sssp provides the baseline single-source shortest-path oracle
// Yen consults on every spur search (spec.md §4.7), plus the two factories
// spec.md names explicitly: Dijkstra and Bellman-Ford. Grounded on
// lvlath/dijkstra's lazy decrease-key heap loop, adapted to return
// kpath.Path[V] rather than dist/prev maps so Yen never has to walk a
// predecessor chain itself.
package sssp

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kerr"
	"github.com/katalvlaran/kpaths/kpath"
)

// ErrNegativeWeight is returned by a Dijkstra-backed oracle when the
// subgraph it was built on carries a negative edge weight, wrapped together
// with kerr.ErrUnsupportedConfiguration; Dijkstra's
// correctness depends on non-negative weights (spec.md §4.7's "Dijkstra
// requires non-negative weights" caveat).
var ErrNegativeWeight = errors.New("sssp: negative edge weight with a Dijkstra-backed oracle")

// ErrNegativeCycle is returned by a Bellman-Ford-backed oracle when the
// subgraph contains a negative-weight cycle reachable from the source,
// matching spec.md's "negative-cycle handling beyond what the baseline SP
// oracle provides" Non-goal: detection is all this module promises.
var ErrNegativeCycle = errors.New("sssp: negative-weight cycle reachable from source")

// Oracle answers "what is the shortest path from source to v" for a single
// fixed graph and source vertex. ShortestPathTo returns (path, true) when v
// is reachable, or a zero Path and false otherwise: unreachability is
// reported by the bool rather than by a sentinel zero-length path. A
// reachable v equal to the source yields a zero-length path with true,
// which Yen's spur search skips.
type Oracle[V comparable] interface {
	ShortestPathTo(v V) (kpath.Path[V], bool)
}

// Factory builds an Oracle bound to a specific (sub)graph and source
// vertex. Yen calls a Factory once per spur search, on the masked subgraph
// view for that search's spur node (spec.md §4.7, "Oracle factory").
type Factory[V comparable] func(g graph.Reader[V], source V) (Oracle[V], error)

// DijkstraFactory builds Oracles backed by Dijkstra's algorithm: O((V+E)
// log V) per spur search, correct only when every edge weight in g is
// non-negative.
func DijkstraFactory[V comparable]() Factory[V] {
	return func(g graph.Reader[V], source V) (Oracle[V], error) {
		for _, e := range g.EdgeSet() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %w: edge %s weight=%v", kerr.ErrUnsupportedConfiguration, ErrNegativeWeight, e.ID, e.Weight)
			}
		}
		return runDijkstra(g, source), nil
	}
}

// BellmanFordFactory builds Oracles backed by the Bellman-Ford algorithm:
// O(V*E) per spur search, tolerant of negative weights but not of a
// negative-weight cycle reachable from source.
func BellmanFordFactory[V comparable]() Factory[V] {
	return func(g graph.Reader[V], source V) (Oracle[V], error) {
		return runBellmanFord(g, source)
	}
}

// oracle is the shared Oracle implementation: both factories reduce to a
// dist/parent map pair, differing only in how they're populated, and
// materialize a kpath.Path[V] lazily on ShortestPathTo by walking parent
// edges back to source.
type oracle[V comparable] struct {
	source    V
	dist      map[V]float64
	parent    map[V]graph.Edge[V]
	hasParent map[V]bool
}

func (o *oracle[V]) ShortestPathTo(v V) (kpath.Path[V], bool) {
	d, ok := o.dist[v]
	if !ok {
		return kpath.Path[V]{}, false
	}
	if v == o.source {
		return kpath.Path[V]{Source: o.source, Sink: v, Weight: 0}, true
	}

	var edges []graph.Edge[V]
	cur := v
	for cur != o.source {
		e, ok := o.parent[cur]
		if !ok {
			// Unreachable via recorded parents despite a finite distance:
			// should not happen for a consistent oracle, but report it as
			// unreachable rather than returning a broken path.
			return kpath.Path[V]{}, false
		}
		edges = append(edges, e)
		cur = e.From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return kpath.Path[V]{Source: o.source, Sink: v, Edges: edges, Weight: d}, true
}

// runDijkstra follows lvlath/dijkstra's lazy decrease-key container/heap
// loop (the pre-scan for negative weights happens in DijkstraFactory, its
// only caller, not here).
func runDijkstra[V comparable](g graph.Reader[V], source V) *oracle[V] {
	dist := map[V]float64{source: 0}
	parent := make(map[V]graph.Edge[V])
	hasParent := make(map[V]bool)
	visited := make(map[V]bool)

	pq := make(distPQ[V], 0, len(g.Vertices()))
	heap.Push(&pq, &distItem[V]{vertex: source, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*distItem[V])
		if visited[top.vertex] {
			continue
		}
		visited[top.vertex] = true

		for _, e := range g.OutEdges(top.vertex) {
			nd := top.dist + e.Weight
			if d, ok := dist[e.To]; ok && nd >= d {
				continue
			}
			dist[e.To] = nd
			parent[e.To] = e
			hasParent[e.To] = true
			heap.Push(&pq, &distItem[V]{vertex: e.To, dist: nd})
		}
	}

	return &oracle[V]{source: source, dist: dist, parent: parent, hasParent: hasParent}
}

// runBellmanFord relaxes every edge |V|-1 times, then performs one further
// pass to detect a negative-weight cycle reachable from source.
func runBellmanFord[V comparable](g graph.Reader[V], source V) (*oracle[V], error) {
	vertices := g.Vertices()
	edges := g.EdgeSet()

	dist := make(map[V]float64, len(vertices))
	parent := make(map[V]graph.Edge[V])
	hasParent := make(map[V]bool)
	for _, v := range vertices {
		dist[v] = posInf
	}
	dist[source] = 0

	for i := 0; i < len(vertices)-1; i++ {
		changed := false
		for _, e := range edges {
			du, ok := dist[e.From]
			if !ok || du == posInf {
				continue
			}
			if nd := du + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				parent[e.To] = e
				hasParent[e.To] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		du, ok := dist[e.From]
		if !ok || du == posInf {
			continue
		}
		if du+e.Weight < dist[e.To] {
			return nil, fmt.Errorf("%w: at edge %s", ErrNegativeCycle, e.ID)
		}
	}

	finite := make(map[V]float64, len(dist))
	for v, d := range dist {
		if d != posInf {
			finite[v] = d
		}
	}

	return &oracle[V]{source: source, dist: finite, parent: parent, hasParent: hasParent}, nil
}

var posInf = math.Inf(1)

type distItem[V comparable] struct {
	vertex V
	dist   float64
}

type distPQ[V comparable] []*distItem[V]

func (pq distPQ[V]) Len() int            { return len(pq) }
func (pq distPQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*distItem[V])) }
func (pq *distPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
