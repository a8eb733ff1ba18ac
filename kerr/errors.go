// Package kerr defines the closed error taxonomy shared by the eppstein and
// yen engines (spec.md §7):
//
//	InvalidInput             - graph not directed (N/A here, the container
//	                            is always directed), s or t absent. A
//	                            Paths call with k <= 0 is not an error: it
//	                            returns an empty result.
//	UnsupportedConfiguration - a negative edge weight reached an engine that
//	                            requires non-negative weights.
//	NoPath                   - not an error: represented by an empty
//	                            returned sequence.
//	OracleFailure            - wraps an error returned by a Yen SSSP oracle.
//
// There is no retry: a lazy iterator that has raised an error raises the
// same error on any further call.
package kerr

import "errors"

// ErrInvalidInput is returned at construction when s or t is absent from
// the graph (and by kpaths for an unknown Algorithm value).
var ErrInvalidInput = errors.New("kpaths: invalid input")

// ErrUnsupportedConfiguration is returned when an engine that requires
// non-negative edge weights (Eppstein always; Yen when paired with a
// Dijkstra-style oracle) is given a negative-weight edge. For Yen it
// surfaces from the spur search, inside an *OracleFailure.
var ErrUnsupportedConfiguration = errors.New("kpaths: unsupported configuration")

// OracleFailure wraps an error surfaced by a Yen SSSP oracle so callers can
// unwrap back to the oracle's own error via errors.Is/errors.As.
type OracleFailure struct {
	Err error
}

func (e *OracleFailure) Error() string { return "kpaths: oracle failure: " + e.Err.Error() }

func (e *OracleFailure) Unwrap() error { return e.Err }
