package kpath_test

import (
	"testing"

	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kpath"
)

func TestPathVerticesAndSimple(t *testing.T) {
	p := kpath.Path[string]{
		Source: "a",
		Edges: []graph.Edge[string]{
			{ID: "e1", From: "a", To: "b", Weight: 1},
			{ID: "e2", From: "b", To: "c", Weight: 2},
		},
		Sink:   "c",
		Weight: 3,
	}
	verts := p.Vertices()
	want := []string{"a", "b", "c"}
	for i, v := range want {
		if verts[i] != v {
			t.Fatalf("vertex %d: want %s got %s", i, v, verts[i])
		}
	}
	if !p.Simple() {
		t.Fatalf("expected simple path")
	}
	if p.Len() != 2 {
		t.Fatalf("expected len 2, got %d", p.Len())
	}
}

func TestPathNotSimpleWithRepeatedVertex(t *testing.T) {
	p := kpath.Path[string]{
		Source: "a",
		Edges: []graph.Edge[string]{
			{ID: "e1", From: "a", To: "b", Weight: 1},
			{ID: "e2", From: "b", To: "a", Weight: 1},
		},
		Sink: "a",
	}
	if p.Simple() {
		t.Fatalf("expected non-simple path due to repeated vertex a")
	}
}

func TestWeightEqual(t *testing.T) {
	if !kpath.WeightEqual(1.0, 1.0+1e-9) {
		t.Fatalf("expected values within tolerance to compare equal")
	}
	if kpath.WeightEqual(1.0, 1.1) {
		t.Fatalf("expected values outside tolerance to differ")
	}
}

func TestSumWeight(t *testing.T) {
	p := kpath.Path[string]{
		Edges: []graph.Edge[string]{
			{Weight: 1.5},
			{Weight: 2.5},
		},
	}
	if got := p.SumWeight(); !kpath.WeightEqual(got, 4.0) {
		t.Fatalf("expected sum 4.0, got %v", got)
	}
}
