package kpaths_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/graph"
	"github.com/katalvlaran/kpaths/kpaths"
)

// ExamplePaths demonstrates selecting the simple-paths algorithm by value
// rather than importing the yen package directly.
func ExamplePaths() {
	g := graph.New[string]()
	g.AddEdge("s", "a", 1)
	g.AddEdge("a", "t", 2)
	g.AddEdge("s", "t", 5)

	paths, err := kpaths.Paths[string](kpaths.Yen, g, "s", "t", 2)
	if err != nil {
		panic(err)
	}
	for _, p := range paths {
		fmt.Println(p.Weight)
	}
	// Output:
	// 3
	// 5
}
