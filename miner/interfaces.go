package miner

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// A Reporter receives every frequent minimal pattern together with its
// embeddings and support. The pattern chain and the embeddings may be
// dropped as soon as Report returns; reporters that keep them must
// copy. A non-nil error aborts the mining run.
type Reporter interface {
	Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error
	Close() error
}

// A SupportCalc turns the embedding-lists map of a candidate into its
// support count.
type SupportCalc interface {
	Support(sg *subgraph.Supported) int
}

// VertexLabel and EdgeLabel bind a label channel of the input graph
// representation to the engine. The engine compares labels by value
// only.
type VertexLabel func(g *graph.Graph, v int) int

type EdgeLabel func(g *graph.Graph, e int) int

// ColorLabels selects the interned color channel, the representation's
// default.
func ColorLabels() (VertexLabel, EdgeLabel) {
	vl := func(g *graph.Graph, v int) int {
		return g.V[v].Color
	}
	el := func(g *graph.Graph, e int) int {
		return g.E[e].Color
	}
	return vl, el
}
