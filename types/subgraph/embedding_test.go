package subgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
)

// triangle X-a-X-a-X-a-X
func triangle() *graph.Graph {
	g := graph.NewGraph(7, 3, 3)
	X := 0
	a := 1
	v0 := g.AddVertex(X)
	v1 := g.AddVertex(X)
	v2 := g.AddVertex(X)
	g.AddEdge(v0, v1, a)
	g.AddEdge(v1, v2, a)
	g.AddEdge(v2, v0, a)
	return g
}

func TestStartMappings(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	p := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	emb := Start(p, g, 0, 1, 0)
	x.Equal(g, emb.Graph())
	x.Equal(0, emb.HostVertex(0))
	x.Equal(1, emb.HostVertex(1))
	x.Equal(0, emb.HostEdge(0))
	x.Equal(0, emb.PatternVertex(0))
	x.Equal(1, emb.PatternVertex(1))
	x.Equal(-1, emb.PatternVertex(2))
	x.True(emb.HasHostEdge(0))
	x.False(emb.HasHostEdge(1))
	x.False(emb.HasHostEdge(2))
}

func TestExtendMappings(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	p1 := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	p2 := pattern.New(pattern.EdgeCode{1, 2, 0, 1, 0}, p1)
	root := Start(p1, g, 0, 1, 0)
	emb := root.Extend(p2, 1, 2, 1)
	x.Equal(root, emb.Prev())
	x.Equal(2, emb.HostVertex(2))
	x.Equal(1, emb.HostEdge(1))
	x.Equal(2, emb.PatternVertex(2))
	x.True(emb.HasHostEdge(1))
	// the parent is untouched
	x.Equal(-1, root.PatternVertex(2))
	x.False(root.HasHostEdge(1))
}

func TestExtendBackward(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	p1 := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	p2 := pattern.New(pattern.EdgeCode{1, 2, 0, 1, 0}, p1)
	p3 := pattern.New(pattern.EdgeCode{2, 0, 0, 1, 0}, p2)
	emb := Start(p1, g, 0, 1, 0).Extend(p2, 1, 2, 1).Extend(p3, 2, 0, 2)
	for he := 0; he < 3; he++ {
		x.True(emb.HasHostEdge(he))
	}
	// the backward edge introduces no vertex
	x.Equal(0, emb.HostVertex(0))
	x.Equal(2, emb.HostEdge(2))
	x.Equal(2, emb.PatternEdge(2))
}

func TestAutomorphic(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	p := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	a := Start(p, g, 0, 1, 0)
	b := Start(p, g, 1, 0, 0)
	c := Start(p, g, 1, 2, 1)
	x.True(Automorphic(a, b), "same edge set, flipped endpoints")
	x.False(Automorphic(a, c), "different edge sets")

	h := triangle()
	d := Start(p, h, 0, 1, 0)
	x.False(Automorphic(a, d), "different host graphs")
}

func TestListsGrouping(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	p := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	l := &Lists{}
	l.Insert(Start(p, g, 0, 1, 0))
	l.Insert(Start(p, g, 1, 0, 0))
	l.Insert(Start(p, g, 1, 2, 1))
	l.Insert(Start(p, g, 2, 1, 1))
	l.Insert(Start(p, g, 2, 0, 2))
	x.Len(l.All, 5)
	x.Equal(3, l.AutSize())
	x.Len(l.Aut[0], 2)
	x.Len(l.Aut[1], 2)
	x.Len(l.Aut[2], 1)
}

func TestSupported(t *testing.T) {
	x := assert.New(t)
	g := triangle()
	h := triangle()
	h.Id = 8
	p := pattern.New(pattern.EdgeCode{0, 1, 0, 1, 0}, nil)
	sg := NewSupported()
	sg.Add(Start(p, g, 0, 1, 0))
	sg.Add(Start(p, h, 0, 1, 0))
	sg.Add(Start(p, g, 1, 2, 1))
	x.Equal(2, sg.Size())
	x.Equal([]*graph.Graph{g, h}, sg.Graphs())
	x.Len(sg.Lists(g).All, 2)
	x.Equal(2, sg.Lists(g).AutSize())
	x.Equal(1, sg.Lists(h).AutSize())
}
