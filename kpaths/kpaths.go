// Package kpaths re-exports the uniform k-shortest-paths surface spec.md
// §4.8 and §6 name for both algorithms: a bounded Paths call and an
// unbounded Iterator, so callers who don't care which algorithm they want
// can pick by Algorithm value instead of importing eppstein/yen directly.
//
//	result, err := kpaths.Paths(kpaths.Yen, g, "s", "t", 5)
package kpaths

import (
	"fmt"

	"github.com/katalvlaran/kpaths/eppstein"
	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kerr"
	"github.com/katalvlaran/kpaths/kpath"
	"github.com/katalvlaran/kpaths/yen"
)

// Algorithm selects which core engine a Paths/Iterator call uses.
type Algorithm int

const (
	// Eppstein enumerates the k shortest walks; repeated vertices permitted.
	Eppstein Algorithm = iota
	// Yen enumerates the k shortest simple (loopless) paths.
	Yen
)

// Iterator is the uniform lazy sequence both algorithm-specific iterators
// satisfy.
type Iterator[V comparable] interface {
	Next() (kpath.Path[V], bool)
}

// Paths returns up to k shortest s-t results for the chosen algorithm.
func Paths[V comparable](algo Algorithm, g graph.Reader[V], s, t V, k int) ([]kpath.Path[V], error) {
	switch algo {
	case Eppstein:
		eng, err := eppstein.New[V](g, s, t)
		if err != nil {
			return nil, err
		}
		return eng.Paths(k), nil
	case Yen:
		eng, err := yen.New[V](g, s, t)
		if err != nil {
			return nil, err
		}
		return eng.Paths(k)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", kerr.ErrInvalidInput, algo)
	}
}

// NewIterator returns a lazy, non-decreasing-weight sequence of s-t
// results for the chosen algorithm. The Eppstein iterator may be infinite
// when a non-negative-weight cycle lies on some s-t walk; callers must
// bound their own iteration in that case (spec.md §4.5, §9).
func NewIterator[V comparable](algo Algorithm, g graph.Reader[V], s, t V) (Iterator[V], error) {
	switch algo {
	case Eppstein:
		eng, err := eppstein.New[V](g, s, t)
		if err != nil {
			return nil, err
		}
		return eng.Iterator(), nil
	case Yen:
		eng, err := yen.New[V](g, s, t)
		if err != nil {
			return nil, err
		}
		return eng.Iterator(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", kerr.ErrInvalidInput, algo)
	}
}
