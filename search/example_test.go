package search_test

import (
	"fmt"

	"github.com/jomazi/libtvg/graph"
	"github.com/jomazi/libtvg/search"
)

// ExampleTraverse walks a weighted chain in Dijkstra order and stops once
// the cumulative weight passes a budget.
func ExampleTraverse() {
	g := graph.New(graph.WithDirected())
	defer g.Release()
	_ = g.Set(0, 1, 1.0)
	_ = g.Set(1, 2, 1.0)
	_ = g.Set(2, 3, 1.0)
	_ = g.Set(3, 4, 1.5)
	_ = g.Set(2, 4, 1.5)

	_ = search.Traverse(g, 0, search.WithWeightOrder(),
		search.WithOnVisit(func(s search.Step) search.Verdict {
			if s.Weight > 2.0 {
				return search.Stop
			}
			fmt.Printf("node %d at weight %.1f\n", s.To, s.Weight)

			return search.Continue
		}))
	// Output:
	// node 0 at weight 0.0
	// node 1 at weight 1.0
	// node 2 at weight 2.0
}

// ExampleConnectedComponents labels the components of a small undirected
// graph.
func ExampleConnectedComponents() {
	g := graph.New()
	defer g.Release()
	_ = g.Set(0, 1, 1)
	_ = g.Set(2, 3, 1)
	_ = g.Set(4, 4, 1)

	labels, count, err := search.ConnectedComponents(g)
	if err != nil {
		fmt.Println("components:", err)

		return
	}
	defer labels.Release()

	fmt.Println("components:", count)
	fmt.Println("0 and 1 together:", labels.Get(0) == labels.Get(1))
	fmt.Println("0 and 2 together:", labels.Get(0) == labels.Get(2))
	// Output:
	// components: 3
	// 0 and 1 together: true
	// 0 and 2 together: false
}
