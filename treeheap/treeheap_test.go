package treeheap_test

import (
	"testing"

	"github.com/katalvlaran/kpaths/houtheap"
	"github.com/katalvlaran/kpaths/treeheap"
)

func TestNewFromEmptyHOut(t *testing.T) {
	h := houtheap.New[string]()
	n := treeheap.New(h)
	if n != nil {
		t.Fatalf("expected nil tree for empty HOut")
	}
}

func TestNewAndInsertPreservesMinimum(t *testing.T) {
	h1 := houtheap.New[string]()
	h1.Add("e1", 3)
	h1.Add("e2", 1)
	h1.Add("e3", 7)
	base := treeheap.New(h1)
	if base.Sidetrack.Edge != "e2" {
		t.Fatalf("expected root e2 (min delta), got %s", base.Sidetrack.Edge)
	}

	h2 := houtheap.New[string]()
	h2.Add("e4", 0.5)
	outroot := treeheap.New(h2)

	merged := treeheap.Insert(base, outroot)
	if merged.Sidetrack.Edge != "e4" {
		t.Fatalf("expected e4 (smallest delta overall) to become new root, got %s", merged.Sidetrack.Edge)
	}
}

func TestInsertSharesStructure(t *testing.T) {
	h1 := houtheap.New[string]()
	h1.Add("e1", 5)
	base := treeheap.New(h1)

	h2 := houtheap.New[string]()
	h2.Add("e2", 10) // larger delta: recurses into a child rather than replacing root
	outroot := treeheap.New(h2)

	merged := treeheap.Insert(base, outroot)
	if merged == base {
		t.Fatalf("expected a new node at the spine, not the original root pointer")
	}
	if merged.Sidetrack.Edge != "e1" {
		t.Fatalf("expected e1 to remain root (smaller delta), got %s", merged.Sidetrack.Edge)
	}
}

func TestInsertIntoEmptyReturnsOutroot(t *testing.T) {
	h := houtheap.New[string]()
	h.Add("only", 1)
	outroot := treeheap.New(h)

	merged := treeheap.Insert(nil, outroot)
	if merged != outroot {
		t.Fatalf("expected Insert into an empty tree to return outroot unchanged")
	}
}
