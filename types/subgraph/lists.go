package subgraph

import (
	"github.com/timtadh/gspan/types/graph"
)

// Lists holds every embedding of one pattern in one input graph,
// partitioned into automorphism classes. Class order reflects the order
// in which each class's first representative was discovered.
type Lists struct {
	All []*Embedding
	Aut [][]*Embedding
}

func (l *Lists) Insert(emb *Embedding) {
	l.All = append(l.All, emb)
	for i := range l.Aut {
		if Automorphic(emb, l.Aut[i][0]) {
			l.Aut[i] = append(l.Aut[i], emb)
			return
		}
	}
	l.Aut = append(l.Aut, []*Embedding{emb})
}

// AutSize is the number of automorphism classes: the count of distinct
// occurrences inside the graph.
func (l *Lists) AutSize() int {
	return len(l.Aut)
}

// Supported maps each input graph containing the pattern to the
// embedding lists found there. Iteration order is insertion order.
type Supported struct {
	graphs []*graph.Graph
	lists  map[*graph.Graph]*Lists
}

func NewSupported() *Supported {
	return &Supported{
		lists: make(map[*graph.Graph]*Lists),
	}
}

func (s *Supported) Add(emb *Embedding) {
	g := emb.Graph()
	l, has := s.lists[g]
	if !has {
		l = &Lists{}
		s.lists[g] = l
		s.graphs = append(s.graphs, g)
	}
	l.Insert(emb)
}

func (s *Supported) Graphs() []*graph.Graph {
	return s.graphs
}

func (s *Supported) Lists(g *graph.Graph) *Lists {
	return s.lists[g]
}

// Size is the number of graphs with at least one embedding.
func (s *Supported) Size() int {
	return len(s.graphs)
}
