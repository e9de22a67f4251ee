package graph

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// A Graph is one labelled input graph. Vertices and edges are stored in
// dense index order; Adj[u] lists the indices of the edges incident to u
// (incidence is undirected: an edge appears in the Adj of both of its
// endpoints).
type Graph struct {
	Id  int
	V   []Vertex
	E   []Edge
	Adj [][]int
}

type Vertex struct {
	Idx   int
	Color int
}

type Edge struct {
	Idx, Src, Targ, Color int
}

func NewGraph(id, V, E int) *Graph {
	return &Graph{
		Id:  id,
		V:   make([]Vertex, 0, V),
		E:   make([]Edge, 0, E),
		Adj: make([][]int, 0, V),
	}
}

func (g *Graph) AddVertex(color int) *Vertex {
	idx := len(g.V)
	g.V = append(g.V, Vertex{Idx: idx, Color: color})
	g.Adj = append(g.Adj, make([]int, 0, 5))
	return &g.V[idx]
}

func (g *Graph) AddEdge(u, v *Vertex, color int) *Edge {
	assert(u.Idx < len(g.V) && v.Idx < len(g.V), "edge endpoints must be added first")
	idx := len(g.E)
	g.E = append(g.E, Edge{Idx: idx, Src: u.Idx, Targ: v.Idx, Color: color})
	g.Adj[u.Idx] = append(g.Adj[u.Idx], idx)
	if v.Idx != u.Idx {
		g.Adj[v.Idx] = append(g.Adj[v.Idx], idx)
	}
	return &g.E[idx]
}

// OutEdges gives the indices of the edges incident to vertex u.
func (g *Graph) OutEdges(u int) []int {
	assert(0 <= u && u < len(g.V), "vertex index out of range")
	return g.Adj[u]
}

// Other gives the endpoint of e opposite to u.
func (e *Edge) Other(u int) int {
	if e.Src == u {
		return e.Targ
	}
	return e.Src
}

func (g *Graph) String() string {
	V := make([]string, 0, len(g.V))
	E := make([]string, 0, len(g.E))
	for _, v := range g.V {
		V = append(V, fmt.Sprintf("(%v:%v)", v.Idx, v.Color))
	}
	for _, e := range g.E {
		E = append(E, fmt.Sprintf("[%v--%v:%v]", e.Src, e.Targ, e.Color))
	}
	return fmt.Sprintf("<%v {%v:%v}%v%v>", g.Id, len(g.V), len(g.E), strings.Join(V, ""), strings.Join(E, ""))
}

func assert(cond bool, msg string) {
	if !cond {
		panic(errors.Errorf("%v", msg))
	}
}
