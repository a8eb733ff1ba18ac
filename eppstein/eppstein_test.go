package eppstein_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/eppstein"
	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kpath"
)

func vertexKey(p kpath.Path[string]) string {
	return strings.Join(p.Vertices(), ",")
}

func weightsOf(paths []kpath.Path[string]) []float64 {
	w := make([]float64, len(paths))
	for i, p := range paths {
		w[i] = p.Weight
	}
	return w
}

// TestEppsteinPaperGraph is scenario S1: the literal graph from Eppstein's
// paper, s=0, t=11, k=10.
func TestEppsteinPaperGraph(t *testing.T) {
	g := graph.New[string]()
	type e struct {
		from, to string
		w        float64
	}
	edges := []e{
		{"0", "1", 2}, {"1", "2", 20}, {"2", "3", 14}, {"0", "4", 13},
		{"1", "5", 27}, {"2", "6", 14}, {"3", "7", 15}, {"4", "5", 9},
		{"5", "6", 10}, {"6", "7", 25}, {"4", "8", 15}, {"5", "9", 20},
		{"6", "10", 12}, {"7", "11", 7}, {"8", "9", 18}, {"9", "10", 8},
		{"10", "11", 11},
	}
	for _, ed := range edges {
		g.AddEdge(ed.from, ed.to, ed.w)
	}

	eng, err := eppstein.New[string](g, "0", "11")
	require.NoError(t, err)

	paths := eng.Paths(10)
	require.Len(t, paths, 10)

	gotWeights := weightsOf(paths)
	wantWeights := []float64{55, 58, 59, 61, 62, 64, 65, 68, 68, 71}
	require.Equal(t, wantWeights, gotWeights)

	wantVertexSets := []string{
		"0,4,5,6,10,11", "0,1,2,3,7,11", "0,1,2,6,10,11", "0,4,5,9,10,11",
		"0,1,5,6,10,11", "0,4,5,6,7,11", "0,4,8,9,10,11", "0,1,2,6,7,11",
		"0,1,5,9,10,11", "0,1,5,6,7,11",
	}
	gotVertexSets := make([]string, len(paths))
	for i, p := range paths {
		gotVertexSets[i] = vertexKey(p)
	}
	sort.Strings(gotVertexSets)
	sort.Strings(wantVertexSets)
	require.Equal(t, wantVertexSets, gotVertexSets)
}

// TestGraehlSelfLoop is scenario S2: a self-loop at 0 (weight 0.05) and a
// tree path 0->5->1 (combined weight 0.6).
func TestGraehlSelfLoop(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("0", "0", 0.05)
	g.AddEdge("0", "5", 0.3)
	g.AddEdge("5", "1", 0.3)

	eng, err := eppstein.New[string](g, "0", "1")
	require.NoError(t, err)

	paths := eng.Paths(7)
	require.Len(t, paths, 7)

	want := []float64{0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90}
	for i, p := range paths {
		require.True(t, kpath.WeightEqual(p.Weight, want[i]), "path %d: want %v got %v", i, want[i], p.Weight)
	}
}

// TestNoLoopMultiEdge is scenario S3: three parallel 0->1 edges and a
// single 1->2 edge.
func TestNoLoopMultiEdge(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("0", "1", 1)
	g.AddEdge("0", "1", 2)
	g.AddEdge("0", "1", 3)
	g.AddEdge("1", "2", 1)

	eng, err := eppstein.New[string](g, "0", "2")
	require.NoError(t, err)

	paths := eng.Paths(20)
	require.Len(t, paths, 3)
	require.Equal(t, []float64{2, 3, 4}, weightsOf(paths))
}

// TestLoopMultiEdge is scenario S4: one forward edge plus two self-loops of
// differing weight at the source.
func TestLoopMultiEdge(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("0", "1", 1)
	g.AddEdge("0", "0", 2)
	g.AddEdge("0", "0", 3)

	eng, err := eppstein.New[string](g, "0", "1")
	require.NoError(t, err)

	paths := eng.Paths(11)
	require.Len(t, paths, 11)
	require.Equal(t, []float64{1, 3, 4, 5, 6, 6, 7, 7, 8, 8, 8}, weightsOf(paths))
}

// TestReversedLoopMultiEdge is scenario S5: the same graph as S4, edge-
// reversed, with s and t swapped; the weight multiset must match.
func TestReversedLoopMultiEdge(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("1", "0", 1)
	g.AddEdge("0", "0", 2)
	g.AddEdge("0", "0", 3)

	eng, err := eppstein.New[string](g, "1", "0")
	require.NoError(t, err)

	paths := eng.Paths(11)
	require.Len(t, paths, 11)
	require.Equal(t, []float64{1, 3, 4, 5, 6, 6, 7, 7, 8, 8, 8}, weightsOf(paths))
}

// TestBipartiteSample is scenario S6: two intermediate vertices fully
// cross-connected, plus a long direct edge. The v1<->v2 edges form a cycle,
// so the weight-4 walks S-v1-v2-v1-T and S-v2-v1-v2-T come before the
// direct edge.
func TestBipartiteSample(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("S", "v1", 1)
	g.AddEdge("S", "v2", 1)
	g.AddEdge("v1", "T", 1)
	g.AddEdge("v2", "T", 1)
	g.AddEdge("v1", "v2", 1)
	g.AddEdge("v2", "v1", 1)
	g.AddEdge("S", "T", 1000)

	eng, err := eppstein.New[string](g, "S", "T")
	require.NoError(t, err)

	paths := eng.Paths(5)
	require.Len(t, paths, 5)
	require.Equal(t, []float64{2, 2, 3, 3, 4}, weightsOf(paths))
}

func TestNoSidetracksYieldsExactlyOnePath(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)

	eng, err := eppstein.New[string](g, "a", "c")
	require.NoError(t, err)

	paths := eng.Paths(5)
	require.Len(t, paths, 1)
	require.Equal(t, 2.0, paths[0].Weight)
}

func TestUnreachableSinkYieldsNoPaths(t *testing.T) {
	g := graph.New[string]()
	g.AddVertex("a")
	g.AddVertex("b")

	eng, err := eppstein.New[string](g, "a", "b")
	require.NoError(t, err)
	require.Empty(t, eng.Paths(5))
}

func TestRejectsNegativeWeight(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("a", "b", -1)

	_, err := eppstein.New[string](g, "a", "b")
	require.Error(t, err)
}

func TestRejectsUnknownVertices(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("a", "b", 1)

	_, err := eppstein.New[string](g, "a", "z")
	require.Error(t, err)
}

func TestNonDecreasingWeightOrder(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("0", "0", 1)
	g.AddEdge("0", "1", 1)

	eng, err := eppstein.New[string](g, "0", "1")
	require.NoError(t, err)

	paths := eng.Paths(25)
	for i := 1; i < len(paths); i++ {
		require.LessOrEqual(t, paths[i-1].Weight, paths[i].Weight)
	}
	for _, p := range paths {
		require.True(t, kpath.WeightEqual(p.Weight, p.SumWeight()))
		require.Equal(t, "0", p.Source)
		require.Equal(t, "1", p.Sink)
	}
}
