package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
)

import (
	"github.com/timtadh/gspan/miner"
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

type bufCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufCloser) Close() error {
	b.closed = true
	return nil
}

func fixture() (*graph.Labels, *pattern.Pattern, *subgraph.Supported) {
	labels := graph.NewLabels()
	A := labels.Color("A")
	B := labels.Color("B")
	under := labels.Color("_")
	g := graph.NewGraph(3, 2, 1)
	u := g.AddVertex(A)
	v := g.AddVertex(B)
	g.AddEdge(u, v, under)
	p := pattern.New(pattern.EdgeCode{0, 1, A, under, B}, nil)
	sg := subgraph.NewSupported()
	sg.Add(subgraph.Start(p, g, 0, 1, 0))
	return labels, p, sg
}

func TestFileReporter(t *testing.T) {
	x := assert.New(t)
	labels, p, sg := fixture()
	buf := &bufCloser{}
	r, err := NewFile(buf, labels, EmbAutgrp)
	x.Nil(err)
	x.Nil(r.Report(p, sg, 1))
	out := buf.String()
	x.Contains(out, "t # 0 * 1")
	x.Contains(out, "(0,1, A,_,B)")
	x.Contains(out, "e 3 0 1")
	x.Nil(r.Close())
	x.True(buf.closed)
}

func TestFileReporterNoEmbeddings(t *testing.T) {
	x := assert.New(t)
	labels, p, sg := fixture()
	buf := &bufCloser{}
	r, err := NewFile(buf, labels, EmbNone)
	x.Nil(err)
	x.Nil(r.Report(p, sg, 1))
	x.NotContains(buf.String(), "e 3")
}

func TestFileReporterBadMode(t *testing.T) {
	x := assert.New(t)
	labels, _, _ := fixture()
	_, err := NewFile(&bufCloser{}, labels, "sideways")
	x.NotNil(err)
}

func TestFileReporterCounts(t *testing.T) {
	x := assert.New(t)
	labels, p, sg := fixture()
	buf := &bufCloser{}
	r, err := NewFile(buf, labels, EmbNone)
	x.Nil(err)
	x.Nil(r.Report(p, sg, 1))
	x.Nil(r.Report(p, sg, 1))
	out := buf.String()
	x.Contains(out, "t # 0 * 1")
	x.Contains(out, "t # 1 * 1")
}

func TestChainFansOut(t *testing.T) {
	x := assert.New(t)
	labels, p, sg := fixture()
	a := &bufCloser{}
	b := &bufCloser{}
	ra, err := NewFile(a, labels, EmbNone)
	x.Nil(err)
	rb, err := NewFile(b, labels, EmbNone)
	x.Nil(err)
	chain := &Chain{Reporters: []miner.Reporter{ra, rb}}
	x.Nil(chain.Report(p, sg, 1))
	x.Contains(a.String(), "t # 0")
	x.Contains(b.String(), "t # 0")
	x.Nil(chain.Close())
	x.True(a.closed)
	x.True(b.closed)
}
