package graph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

func input(text string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
}

func TestEgfLoad(t *testing.T) {
	x := assert.New(t)
	labels := NewLabels()
	graphs, err := NewEgfLoader(labels).Load(input(`
# a tiny collection
t 1
v 0 red
v 1 blue berry
e 0 0 1 likes

t 2
v 0 red
v 1 red
e 0 0 1 likes
e 1 1 0 hates
`))
	x.Nil(err)
	if !x.Len(graphs, 2) {
		return
	}
	g1, g2 := graphs[0], graphs[1]
	x.Equal(1, g1.Id)
	x.Equal(2, g2.Id)
	x.Len(g1.V, 2)
	x.Len(g1.E, 1)
	x.Len(g2.E, 2)
	x.Equal(labels.Color("red"), g1.V[0].Color)
	x.Equal(labels.Color("blue berry"), g1.V[1].Color)
	x.Equal(labels.Color("likes"), g1.E[0].Color)
	x.Equal(g1.V[0].Color, g2.V[1].Color)
	// incidence lists both directions
	x.Equal([]int{0, 1}, g2.Adj[0])
	x.Equal([]int{0, 1}, g2.Adj[1])
}

func TestEgfMalformedLine(t *testing.T) {
	x := assert.New(t)
	_, err := NewEgfLoader(NewLabels()).Load(input("t 1\nv zero red\n"))
	if x.NotNil(err) {
		x.Contains(err.Error(), "line 2")
	}
}

func TestEgfDanglingVertex(t *testing.T) {
	x := assert.New(t)
	_, err := NewEgfLoader(NewLabels()).Load(input("t 1\nv 0 red\ne 0 0 7 likes\n"))
	if x.NotNil(err) {
		x.Contains(err.Error(), "line 3")
		x.Contains(err.Error(), "dangling")
	}
}

func TestEgfVertexBeforeHeader(t *testing.T) {
	x := assert.New(t)
	_, err := NewEgfLoader(NewLabels()).Load(input("v 0 red\n"))
	x.NotNil(err)
}

func TestTgfLoad(t *testing.T) {
	x := assert.New(t)
	graphs, err := NewTgfLoader().Load(input(`
t # 0
v 0 3
v 1 4
e 0 1 9
t # 1
v 0 3
`))
	x.Nil(err)
	if !x.Len(graphs, 2) {
		return
	}
	g := graphs[0]
	x.Equal(3, g.V[0].Color)
	x.Equal(4, g.V[1].Color)
	x.Equal(9, g.E[0].Color)
	x.Len(graphs[1].V, 1)
	x.Len(graphs[1].E, 0)
}

func TestTgfMalformed(t *testing.T) {
	x := assert.New(t)
	_, err := NewTgfLoader().Load(input("t 0\n"))
	if x.NotNil(err) {
		x.Contains(err.Error(), "line 1")
	}
}

func TestLabelsIntern(t *testing.T) {
	x := assert.New(t)
	labels := NewLabels()
	red := labels.Color("red")
	blue := labels.Color("blue")
	x.NotEqual(red, blue)
	x.Equal(red, labels.Color("red"))
	x.Equal("red", labels.Label(red))
	x.Equal("blue", labels.Label(blue))
	x.Equal("17", labels.Label(17))
	x.Equal(2, labels.Size())
}

func TestStats(t *testing.T) {
	x := assert.New(t)
	labels := NewLabels()
	graphs, err := NewEgfLoader(labels).Load(input(`
t 1
v 0 red
v 1 blue
v 2 red
e 0 0 1 likes
e 1 1 2 likes
`))
	x.Nil(err)
	s := ComputeStats(graphs)
	x.Equal(1, s.Graphs)
	x.Equal(3, s.Vertices)
	x.Equal(2, s.Edges)
	x.Equal(2, s.VertexColors)
	x.Equal(1, s.EdgeColors)
	x.Equal(1, s.MinDegree)
	x.Equal(2, s.MaxDegree)
	x.InDelta(4.0/3.0, s.MeanDegree, 0.001)
}
