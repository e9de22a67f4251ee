package gspan

import (
	"github.com/timtadh/gspan/types/subgraph"
)

// OneGraph computes single-graph support: the number of automorphism
// classes of the pattern inside the one input graph.
type OneGraph struct{}

func (OneGraph) Support(sg *subgraph.Supported) int {
	graphs := sg.Graphs()
	if len(graphs) == 0 {
		return 0
	}
	return sg.Lists(graphs[0]).AutSize()
}

// ManyGraphs computes multi-graph support: the number of input graphs
// containing at least one embedding.
type ManyGraphs struct{}

func (ManyGraphs) Support(sg *subgraph.Supported) int {
	return sg.Size()
}
