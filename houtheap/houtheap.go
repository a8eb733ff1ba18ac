// Package houtheap implements H_out(v) (spec.md §4.3): the per-vertex
// min-heap of outgoing sidetrack edges, with the minimum-δ entry ("root")
// kept separate from the rest. Grounded on
// EppsteinKShortestPaths.java's private HoutHeap, and on lvlath/dijkstra's
// container/heap-based nodePQ for the binary-heap idiom.
package houtheap

import "container/heap"

// Sidetrack pairs an edge with its sidetrack cost δ(e) = w(e) + d(to) -
// d(from), as defined in spec.md §3. E is left generic so houtheap does
// not need to import the graph package; eppstein instantiates it with
// graph.Edge[V].
type Sidetrack[E any] struct {
	Edge  E
	Delta float64
}

// HOut is v's heap of outgoing sidetracks: Root is the minimum-δ entry,
// Rest holds the remainder in no particular exposed order (callers that
// need them sorted call h.Sorted()).
type HOut[E any] struct {
	Root *Sidetrack[E]
	Rest restHeap[E]
}

// New returns an empty HOut[E]; use Add to populate it.
func New[E any]() *HOut[E] {
	return &HOut[E]{}
}

// Add inserts a sidetrack edge with the given cost. The running minimum is
// kept as Root; every previous root that is displaced is pushed into Rest.
// Mirrors HoutHeap.add in the Java original.
//
// Complexity: O(log n) amortized (one container/heap push at most).
func (h *HOut[E]) Add(edge E, delta float64) {
	candidate := &Sidetrack[E]{Edge: edge, Delta: delta}
	if h.Root == nil {
		h.Root = candidate
		return
	}
	if delta < h.Root.Delta {
		heap.Push(&h.Rest, h.Root)
		h.Root = candidate
	} else {
		heap.Push(&h.Rest, candidate)
	}
}

// Empty reports whether this HOut carries no sidetracks at all.
func (h *HOut[E]) Empty() bool { return h == nil || h.Root == nil }

// Sorted drains Rest in ascending-δ order. It consumes the heap: call it at
// most once per HOut, when building treeheap's deterministic "middle as
// root of second half" shape from the sorted remainder (spec.md §4.4).
func (h *HOut[E]) Sorted() []*Sidetrack[E] {
	out := make([]*Sidetrack[E], 0, h.Rest.Len())
	for h.Rest.Len() > 0 {
		out = append(out, heap.Pop(&h.Rest).(*Sidetrack[E]))
	}
	return out
}

// restHeap is a binary min-heap of *Sidetrack[E] ordered by Delta,
// following lvlath/dijkstra's nodePQ Len/Less/Swap/Push/Pop idiom.
type restHeap[E any] []*Sidetrack[E]

func (h restHeap[E]) Len() int            { return len(h) }
func (h restHeap[E]) Less(i, j int) bool  { return h[i].Delta < h[j].Delta }
func (h restHeap[E]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *restHeap[E]) Push(x interface{}) { *h = append(*h, x.(*Sidetrack[E])) }
func (h *restHeap[E]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
