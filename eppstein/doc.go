// Package eppstein implements Eppstein's algorithm for enumerating the k
// shortest s-t walks (repeated vertices permitted) of a directed, weighted
// graph in O(m + n log n) preprocessing plus O(k log k) to extract k
// results. Grounded on EppsteinKShortestPaths.java (the literal source
// spec.md distills), reshaped into Go idiom the way dijkstra/dijkstra.go
// structures its own single-source algorithm: a constructor that validates
// and preprocesses once, then a cheap per-result Next.
//
// Complexity:
//
//   - Preprocessing (New): O(m + n log n) — one closest-first traversal of
//     the edge-reversed graph, one H_out per vertex, one H_T per vertex
//     built with structural sharing.
//   - Per result (Next): O(log k) to pop/push priority-queue tokens (at
//     most four pushes per pop, so the queue holds O(k) tokens), plus O(l)
//     to materialize an l-edge path.
//
// Errors:
//
//   - kerr.ErrInvalidInput if s or t is absent from the graph.
//   - kerr.ErrUnsupportedConfiguration if any edge carries a negative
//     weight (Eppstein's sidetrack-cost non-negativity invariant requires
//     non-negative weights throughout).
//
// Example:
//
//	eng, err := eppstein.New[string](g, "s", "t")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range eng.Paths(5) {
//	    fmt.Println(p.Weight, p.Vertices())
//	}
package eppstein
