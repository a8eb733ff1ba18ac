// Package kpath defines the GraphPath value type shared by the eppstein and
// yen engines: an ordered edge sequence with a source, a sink, and a total
// weight (spec.md §3). It is grounded on core.Edge plus jgrapht's
// GraphWalk, the value both EppsteinKShortestPaths.java and
// YenKShortestPathsIterator.java materialize their results into.
package kpath

import (
	"github.com/katalvlaran/kpaths/graph"
	"gonum.org/v1/gonum/floats/scalar"
)

// WeightTolerance is the ε spec.md §8 invariant 2 names: the maximum
// acceptable difference between a path's recorded Weight and the sum of
// its edge weights.
const WeightTolerance = 5e-8

// WeightEqual reports whether a and b are equal within WeightTolerance,
// via gonum's scalar.EqualWithinAbs rather than a hand-rolled comparison.
func WeightEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, WeightTolerance)
}

// Path is an ordered edge sequence e1..el such that:
//   - Source = From(e1) (or the sole vertex when the path has no edges),
//   - Sink = To(el),
//   - Weight = sum of every edge's weight,
//   - for consecutive (ei, ei+1): To(ei) == From(ei+1).
//
// A zero-length Path (Edges == nil) represents the trivial walk that stays
// at Source == Sink, weight 0.
type Path[V comparable] struct {
	Source V
	Sink   V
	Edges  []graph.Edge[V]
	Weight float64
}

// Len returns the number of edges in the path.
func (p Path[V]) Len() int { return len(p.Edges) }

// Vertices returns the vertex sequence visited by the path, starting at
// Source and ending at Sink. For an l-edge path this has l+1 entries.
func (p Path[V]) Vertices() []V {
	out := make([]V, 0, len(p.Edges)+1)
	out = append(out, p.Source)
	for _, e := range p.Edges {
		out = append(out, e.To)
	}
	return out
}

// SumWeight returns the sum of the path's edge weights, independent of
// whatever value its Weight field carries — used by property tests
// checking spec.md §8 invariant 2 against WeightEqual.
func (p Path[V]) SumWeight() float64 {
	var sum float64
	for _, e := range p.Edges {
		sum += e.Weight
	}
	return sum
}

// Simple reports whether the path visits no vertex more than once
// (spec.md §8 invariant 4, required of every Yen result).
func (p Path[V]) Simple() bool {
	seen := make(map[V]struct{}, len(p.Edges)+1)
	for _, v := range p.Vertices() {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}
