package graph

import (
	"io/ioutil"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/dot"
)

// DotLoader reads graphviz dot files. Every top level graph in the file
// becomes one input graph; vertex and edge labels come from the label
// attribute (a vertex without one falls back to its node id, an edge to
// the empty label).
type DotLoader struct {
	labels *Labels
}

func NewDotLoader(labels *Labels) *DotLoader {
	return &DotLoader{labels: labels}
}

func (l *DotLoader) Load(input Input) (graphs []*Graph, err error) {
	r, closer := input()
	text, err := ioutil.ReadAll(r)
	closer()
	if err != nil {
		return nil, err
	}
	dp := &dotParse{
		labels: l.labels,
	}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	return dp.graphs, nil
}

type dotParse struct {
	labels   *Labels
	graphs   []*Graph
	cur      *Graph
	subgraph int
	vids     map[string]*Vertex
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph++
		return nil
	}
	p.cur = NewGraph(len(p.graphs), 10, 10)
	p.vids = make(map[string]*Vertex)
	p.graphs = append(p.graphs, p.cur)
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 {
		return nil
	}
	switch n.Label {
	case "Node":
		p.loadVertex(n)
	case "Edge":
		p.loadEdge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
	}
	return nil
}

func (p *dotParse) loadVertex(n *combos.Node) *Vertex {
	sid := n.Get(0).Value.(string)
	label := sid
	for _, attr := range n.Get(1).Children {
		if attr.Get(0).Value.(string) == "label" {
			label = attr.Get(1).Value.(string)
			break
		}
	}
	v := p.cur.AddVertex(p.labels.Color(label))
	p.vids[sid] = v
	return v
}

func (p *dotParse) loadEdge(n *combos.Node) {
	getVertex := func(sid string) *Vertex {
		if v, has := p.vids[sid]; has {
			return v
		}
		return p.loadVertex(combos.NewNode("Node").
			AddKid(combos.NewValueNode("ID", sid)).
			AddKid(combos.NewNode("Attrs")))
	}
	src := getVertex(n.Get(0).Value.(string))
	targ := getVertex(n.Get(1).Value.(string))
	label := ""
	for _, attr := range n.Get(2).Children {
		if attr.Get(0).Value.(string) == "label" {
			label = attr.Get(1).Value.(string)
			break
		}
	}
	p.cur.AddEdge(src, targ, p.labels.Color(label))
}
