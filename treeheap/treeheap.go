// Package treeheap implements H_T(v) (spec.md §4.4): the persistent,
// heap-ordered binary tree of every sidetrack reachable from v on the way
// to the sink, built by inserting each vertex's houtheap root along the
// reverse shortest-path tree with structural sharing (path-copying on
// insert touches only the spine; untouched subtrees are shared by
// reference). Grounded on EppsteinKShortestPaths.java's private
// EppsteinTreeHeap and its addToHtNext/toTreeHeap methods.
package treeheap

import "github.com/katalvlaran/kpaths/houtheap"

// Node is one node of H_T: a sidetrack, two heap-ordered children (Left,
// Right), and a Rest child holding the non-best entries of the H_out the
// node was built from. A nil *Node represents the empty heap, matching
// Go's usual nil-means-absent convention in place of the Java original's
// separate sentinel "empty" instance.
type Node[E any] struct {
	Sidetrack houtheap.Sidetrack[E]
	Left      *Node[E]
	Right     *Node[E]
	Rest      *Node[E]

	// size counts descendants merged into this node via Insert; it exists
	// only to pick the lighter child during insertion (spec.md §4.4) and
	// carries no other meaning.
	size int
}

// IsEmpty reports whether n carries no sidetrack at all.
func (n *Node[E]) IsEmpty() bool { return n == nil }

// Size returns n's descendant count (0 for a freshly built or nil node).
func (n *Node[E]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *Node[E]) shallowClone() *Node[E] {
	c := *n
	return &c
}

// New builds a fresh H_T node from a vertex's H_out: Sidetrack is h's root,
// Rest is the balanced binary heap-ordered tree built from h's remaining
// entries sorted by δ, via "middle as root of second half" (root = the
// smallest remaining entry; left subtree = the next run; right subtree =
// the rest), exactly as spec.md §4.4 requires for reproducible enumeration
// under ties. Returns nil if h carries no sidetracks.
func New[E any](h *houtheap.HOut[E]) *Node[E] {
	if h.Empty() {
		return nil
	}
	sorted := h.Sorted()
	return &Node[E]{
		Sidetrack: *h.Root,
		Rest:      fromSorted(sorted, 0, len(sorted)-1),
	}
}

func fromSorted[E any](sorted []*houtheap.Sidetrack[E], from, to int) *Node[E] {
	if from > to {
		return nil
	}
	mid := (from + to) / 2
	return &Node[E]{
		Sidetrack: *sorted[from],
		Left:      fromSorted(sorted, from+1, mid),
		Right:     fromSorted(sorted, mid+1, to),
	}
}

// Insert returns a heap-ordered tree containing every sidetrack in dst
// plus outroot, copying only the nodes on the path from the root to
// wherever outroot settles; every other subtree is shared by reference
// with dst. outroot must be a freshly built single node (as returned by
// New) with no Left/Right of its own — Insert may attach children to it.
//
// This is addToHtNext from the Java original, renamed to read as a verb at
// the call site (treeheap.Insert(dst, outroot)):
//
//  1. An empty dst is replaced outright by outroot.
//  2. Otherwise shallow-clone dst's root and bump its size by one -- this
//     clone, not dst itself, is what may be mutated from here down.
//  3. Pick the lighter child to recurse into: go left when there is no
//     left child, or when the right child's subtree outweighs the left's;
//     otherwise go right (spec.md §4.4's balance rule, including its
//     stated tie-break: right.size > left.size, strictly, means left).
//  4. Whichever of {clone, outroot} has the smaller δ becomes the new
//     root; the other is recursively inserted into the chosen child. When
//     outroot wins, it takes over the clone's children and size, and the
//     clone goes down as a childless node.
func Insert[E any](dst *Node[E], outroot *Node[E]) *Node[E] {
	if dst.IsEmpty() {
		return outroot
	}

	clone := dst.shallowClone()
	clone.size++

	goLeft := clone.Left == nil || (clone.Right != nil && clone.Right.size > clone.Left.size)

	if outroot.Sidetrack.Delta < clone.Sidetrack.Delta {
		outroot.Left = clone.Left
		outroot.Right = clone.Right
		outroot.size = clone.size
		clone.Left, clone.Right, clone.size = nil, nil, 0
		if goLeft {
			outroot.Left = Insert(outroot.Left, clone)
		} else {
			outroot.Right = Insert(outroot.Right, clone)
		}
		return outroot
	}

	if goLeft {
		clone.Left = Insert(clone.Left, outroot)
	} else {
		clone.Right = Insert(clone.Right, outroot)
	}
	return clone
}
