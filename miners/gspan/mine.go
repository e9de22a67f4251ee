package gspan

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/miner"
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// Miner runs the gSpan recursion: seed with every frequent single-edge
// pattern, then grow each along its right-most path, pruning by support
// and discarding non-minimal codes. Patterns reach the reporter in
// depth-first pre-order of the DFS order.
type Miner struct {
	minsup  int
	supp    miner.SupportCalc
	report  miner.Reporter
	vlabel  miner.VertexLabel
	elabel  miner.EdgeLabel
	Visited int // subgraph-mining invocations
	Found   int // patterns reported; also the next pattern id
}

// MineOne mines a single graph; support counts automorphism classes.
func MineOne(g *graph.Graph, minsup int, report miner.Reporter, vlabel miner.VertexLabel, elabel miner.EdgeLabel) (*Miner, error) {
	m := &Miner{
		minsup: minsup,
		supp:   OneGraph{},
		report: report,
		vlabel: vlabel,
		elabel: elabel,
	}
	err := m.mine([]*graph.Graph{g})
	return m, err
}

// MineMany mines a collection; support counts containing graphs.
func MineMany(graphs []*graph.Graph, minsup int, report miner.Reporter, vlabel miner.VertexLabel, elabel miner.EdgeLabel) (*Miner, error) {
	m := &Miner{
		minsup: minsup,
		supp:   ManyGraphs{},
		report: report,
		vlabel: vlabel,
		elabel: elabel,
	}
	err := m.mine(graphs)
	return m, err
}

func (m *Miner) mine(graphs []*graph.Graph) error {
	exts := NewExtensions()
	for _, g := range graphs {
		m.enumerateOneEdges(exts, g)
	}
	errors.Logf("DEBUG", "mining %v graphs, %v one edge candidates", len(graphs), exts.Size())
	return exts.Do(func(ext *Ext) error {
		if supp := m.supp.Support(ext.SG); supp >= m.minsup {
			return m.subgraphMining(ext.Pat, ext.SG, supp)
		}
		return nil
	})
}

// enumerateOneEdges seeds one candidate per host edge, oriented so the
// smaller vertex label sits at pattern vertex 0. When the endpoint
// labels tie both orientations realise the same code and both
// embeddings go in.
func (m *Miner) enumerateOneEdges(exts *Extensions, g *graph.Graph) {
	for i := range g.E {
		e := &g.E[i]
		if e.Src == e.Targ {
			continue
		}
		lsrc := m.vlabel(g, e.Src)
		ltarg := m.vlabel(g, e.Targ)
		le := m.elabel(g, e.Idx)
		src, targ := e.Src, e.Targ
		if lsrc > ltarg {
			src, targ = targ, src
			lsrc, ltarg = ltarg, lsrc
		}
		ec := pattern.EdgeCode{Src: 0, Dst: 1, SrcLabel: lsrc, EdgeLabel: le, DstLabel: ltarg}
		exts.AddSeed(ec, g, src, targ, e.Idx)
		if lsrc == ltarg {
			exts.AddSeed(ec, g, targ, src, e.Idx)
		}
	}
}

func (m *Miner) subgraphMining(p *pattern.Pattern, sg *subgraph.Supported, supp int) error {
	m.Visited++
	if !IsMinimal(p) {
		return nil
	}
	m.Found++
	if err := m.report.Report(p, sg, supp); err != nil {
		return err
	}
	exts := NewExtensions()
	for _, g := range sg.Graphs() {
		m.enumerate(exts, p, g, sg.Lists(g))
	}
	return exts.Do(func(ext *Ext) error {
		if supp2 := m.supp.Support(ext.SG); supp2 >= m.minsup {
			return m.subgraphMining(ext.Pat, ext.SG, supp2)
		}
		return nil
	})
}

// enumerate collects the admissible right extensions of p inside g:
// backward edges from the right-most vertex to a right-most path
// vertex, forward edges from the right-most vertex, and forward edges
// from the remaining right-most path vertices. The label conditions
// keep only extensions that cannot precede p's own code.
func (m *Miner) enumerate(exts *Extensions, p *pattern.Pattern, g *graph.Graph, lists *subgraph.Lists) {
	rmpath := p.RMPath()
	rmost := p.RmostVertex()
	vlMin := p.VertexLabel(0)

	// right-most path edge by its source vertex; rmost itself excluded
	vsrcEdges := make([]*pattern.Pattern, p.NumVertices())
	onRmpath := make([]bool, p.NumVertices())
	for _, e := range rmpath {
		vsrcEdges[e.Src] = e
		onRmpath[e.Src] = true
	}

	for _, s := range lists.All {
		hRmost := s.HostVertex(rmost)
		for _, ei := range g.OutEdges(hRmost) {
			e := &g.E[ei]
			if s.HasHostEdge(ei) {
				continue
			}
			v := e.Other(hRmost)
			if v == hRmost {
				continue
			}
			lv := m.vlabel(g, v)
			le := m.elabel(g, ei)
			pv := s.PatternVertex(v)
			if pv == -1 {
				// forward from the right-most vertex
				if lv < vlMin {
					continue
				}
				ec := pattern.EdgeCode{
					Src: rmost, Dst: rmost + 1,
					SrcLabel:  m.vlabel(g, hRmost),
					EdgeLabel: le,
					DstLabel:  lv,
				}
				exts.Add(p, ec, s, hRmost, v, ei)
			} else if onRmpath[pv] {
				// backward to right-most path vertex pv
				rpE := vsrcEdges[pv]
				rpLe := m.elabel(g, s.HostEdge(rpE.EdgeIndex()))
				rpTargL := m.vlabel(g, s.HostVertex(rpE.Dst))
				if le > rpLe || (le == rpLe && m.vlabel(g, hRmost) >= rpTargL) {
					ec := pattern.EdgeCode{
						Src: rmost, Dst: pv,
						SrcLabel:  m.vlabel(g, hRmost),
						EdgeLabel: le,
						DstLabel:  lv,
					}
					exts.Add(p, ec, s, hRmost, v, ei)
				}
			}
		}

		// forward from the rest of the right-most path
		for _, rpE := range rmpath {
			hu := s.HostVertex(rpE.Src)
			rpLe := m.elabel(g, s.HostEdge(rpE.EdgeIndex()))
			rpTargL := m.vlabel(g, s.HostVertex(rpE.Dst))
			for _, ei := range g.OutEdges(hu) {
				e := &g.E[ei]
				if s.HasHostEdge(ei) {
					continue
				}
				v := e.Other(hu)
				if v == hu || s.PatternVertex(v) != -1 {
					continue
				}
				lv := m.vlabel(g, v)
				if lv < vlMin {
					continue
				}
				le := m.elabel(g, ei)
				if rpLe < le || (rpLe == le && rpTargL <= lv) {
					ec := pattern.EdgeCode{
						Src: rpE.Src, Dst: rmost + 1,
						SrcLabel:  m.vlabel(g, hu),
						EdgeLabel: le,
						DstLabel:  lv,
					}
					exts.Add(p, ec, s, hu, v, ei)
				}
			}
		}
	}
}
