package graph

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/gspan/stats"
)

// Stats summarizes a set of input graphs before mining.
type Stats struct {
	Graphs       int
	Vertices     int
	Edges        int
	VertexColors int
	EdgeColors   int
	MinDegree    int
	MaxDegree    int
	MeanDegree   float64
}

func ComputeStats(graphs []*Graph) *Stats {
	s := &Stats{Graphs: len(graphs)}
	vcolors := set.NewSortedSet(10)
	ecolors := set.NewSortedSet(10)
	degrees := make([]float64, 0, 10)
	for _, g := range graphs {
		s.Vertices += len(g.V)
		s.Edges += len(g.E)
		for i := range g.V {
			vcolors.Add(types.Int(g.V[i].Color))
			degrees = append(degrees, float64(len(g.Adj[i])))
		}
		for i := range g.E {
			ecolors.Add(types.Int(g.E[i].Color))
		}
	}
	s.VertexColors = vcolors.Size()
	s.EdgeColors = ecolors.Size()
	if len(degrees) > 0 {
		idxs := stats.Srange(len(degrees))
		_, min := stats.Min(idxs, func(i int) float64 { return degrees[i] })
		_, max := stats.Max(idxs, func(i int) float64 { return degrees[i] })
		s.MinDegree = int(min)
		s.MaxDegree = int(max)
		s.MeanDegree = stats.Mean(degrees)
	}
	return s
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"graphs: %v, vertices: %v, edges: %v, vertex-labels: %v, edge-labels: %v, degree: %v/%.2f/%v",
		s.Graphs, s.Vertices, s.Edges, s.VertexColors, s.EdgeColors,
		s.MinDegree, s.MeanDegree, s.MaxDegree,
	)
}
