// Package yen implements Yen's algorithm for enumerating the k shortest
// loopless (simple) s-t paths of a directed, weighted graph, using a
// pluggable single-source shortest-path oracle and a masked-subgraph
// deviation scheme. Grounded on YenKShortestPathsIterator.java (the
// literal source spec.md distills), restructured around an Engine/Iterator
// split the way eppstein does, rather than the Java original's single
// stateful iterator class.
//
// Complexity: with an SSSP oracle costing O(f(n,m)), each accepted path
// beyond the first costs O(n * f(n,m)) — one oracle run per spur index
// along the previous accepted path.
//
// Errors:
//
//   - kerr.ErrInvalidInput if s or t is absent from the graph.
//   - a *kerr.OracleFailure wraps any error the configured sssp.Factory or
//     the oracles it produces return; once an Iterator has surfaced one,
//     every further call returns the same error (no retry, spec.md §7).
//
// Example:
//
//	eng, err := yen.New[string](g, "s", "t")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := eng.Paths(5)
package yen
