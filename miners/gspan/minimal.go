package gspan

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// minExt is one step of the minimal-code reconstruction: the single
// smallest candidate of the current length plus every embedding of it
// inside the tested graph. Inserting a strictly smaller code drops the
// previous candidate and its embeddings.
type minExt struct {
	pat  *pattern.Pattern
	embs []*subgraph.Embedding
}

func (m *minExt) addSeed(ec pattern.EdgeCode, host *graph.Graph, hostSrc, hostTarg, hostEdge int) {
	switch {
	case m.pat == nil:
		m.pat = pattern.New(ec, nil)
		m.embs = []*subgraph.Embedding{subgraph.Start(m.pat, host, hostSrc, hostTarg, hostEdge)}
	case ec == m.pat.EdgeCode:
		m.embs = append(m.embs, subgraph.Start(m.pat, host, hostSrc, hostTarg, hostEdge))
	case pattern.LessDFS(&ec, &m.pat.EdgeCode):
		m.pat = pattern.New(ec, nil)
		m.embs = []*subgraph.Embedding{subgraph.Start(m.pat, host, hostSrc, hostTarg, hostEdge)}
	}
}

func (m *minExt) add(prev *pattern.Pattern, ec pattern.EdgeCode, emb *subgraph.Embedding, hostSrc, hostTarg, hostEdge int) {
	switch {
	case m.pat == nil:
		m.pat = pattern.New(ec, prev)
		m.embs = []*subgraph.Embedding{emb.Extend(m.pat, hostSrc, hostTarg, hostEdge)}
	case ec == m.pat.EdgeCode:
		m.embs = append(m.embs, emb.Extend(m.pat, hostSrc, hostTarg, hostEdge))
	case pattern.LessDFS(&ec, &m.pat.EdgeCode):
		m.pat = pattern.New(ec, prev)
		m.embs = []*subgraph.Embedding{emb.Extend(m.pat, hostSrc, hostTarg, hostEdge)}
	}
}

func (m *minExt) empty() bool {
	return m.pat == nil
}

// IsMinimal reports whether the chain of t is the smallest DFS code of
// its underlying graph. It rebuilds the minimal code edge by edge over
// a freshly constructed host copy of t, with fresh embeddings; the
// chains of the mining recursion are never reused.
func IsMinimal(t *pattern.Pattern) bool {
	host := hostGraph(t)
	tested := t.Dfsc()

	cur := &minExt{}
	for i := range host.E {
		e := &host.E[i]
		seedOrient(cur, host, e, e.Src, e.Targ)
		seedOrient(cur, host, e, e.Targ, e.Src)
	}

	for n := 0; n < len(tested); n++ {
		if cur.pat.EdgeCode != tested[n].EdgeCode {
			return false
		}
		next := &minExt{}
		enumerateMinBck(next, cur, host)
		if next.empty() {
			enumerateMinFwd(next, cur, host)
		}
		if next.empty() {
			break
		}
		cur = next
	}
	return true
}

// hostGraph materialises the tested pattern as an input graph: vertex
// index = pattern vertex index, edge index = chain position, colors =
// pattern labels.
func hostGraph(t *pattern.Pattern) *graph.Graph {
	host := graph.NewGraph(0, t.NumVertices(), t.NumEdges())
	for v := 0; v < t.NumVertices(); v++ {
		host.AddVertex(t.VertexLabel(v))
	}
	for _, e := range t.Dfsc() {
		host.AddEdge(&host.V[e.Src], &host.V[e.Dst], e.EdgeLabel)
	}
	return host
}

func seedOrient(cur *minExt, host *graph.Graph, e *graph.Edge, src, targ int) {
	if src == targ {
		return
	}
	ec := pattern.EdgeCode{
		Src: 0, Dst: 1,
		SrcLabel:  host.V[src].Color,
		EdgeLabel: e.Color,
		DstLabel:  host.V[targ].Color,
	}
	cur.addSeed(ec, host, src, targ, e.Idx)
}

// enumerateMinBck collects the smallest backward extension: from the
// candidate's right-most vertex to a right-most path vertex, trying the
// path vertices in increasing index order and stopping at the first
// level that yields anything.
func enumerateMinBck(next *minExt, cur *minExt, host *graph.Graph) {
	rmpath := cur.pat.RMPath()
	rmost := cur.pat.RmostVertex()
	rmostL := cur.pat.VertexLabel(rmost)

	for i := len(rmpath) - 1; i >= 0; i-- {
		if !next.empty() {
			break
		}
		rpE := rmpath[i]
		vlLessEq := rpE.DstLabel <= rmostL
		for _, s := range cur.embs {
			hRmost := s.HostVertex(rmost)
			hTarg := s.HostVertex(rpE.Src)
			rpLe := host.E[s.HostEdge(rpE.EdgeIndex())].Color
			for _, ei := range host.OutEdges(hRmost) {
				e := &host.E[ei]
				if s.HasHostEdge(ei) {
					continue
				}
				if e.Other(hRmost) != hTarg {
					continue
				}
				le := e.Color
				if (vlLessEq && rpLe == le) || rpLe < le {
					ec := pattern.EdgeCode{
						Src: rmost, Dst: rpE.Src,
						SrcLabel:  rmostL,
						EdgeLabel: le,
						DstLabel:  rpE.SrcLabel,
					}
					next.add(cur.pat, ec, s, hRmost, hTarg, ei)
				}
			}
		}
	}
}

// enumerateMinFwd collects the smallest forward extension: first pure
// forwards from the right-most vertex, then, only if none exist,
// forwards from the other right-most path vertices walking from the
// deepest towards the root.
func enumerateMinFwd(next *minExt, cur *minExt, host *graph.Graph) {
	rmpath := cur.pat.RMPath()
	rmost := cur.pat.RmostVertex()
	vlMin := cur.pat.VertexLabel(0)

	for _, s := range cur.embs {
		hRmost := s.HostVertex(rmost)
		for _, ei := range host.OutEdges(hRmost) {
			e := &host.E[ei]
			if s.HasHostEdge(ei) {
				continue
			}
			v := e.Other(hRmost)
			if v == hRmost || s.PatternVertex(v) != -1 {
				continue
			}
			if host.V[v].Color < vlMin {
				continue
			}
			ec := pattern.EdgeCode{
				Src: rmost, Dst: rmost + 1,
				SrcLabel:  cur.pat.VertexLabel(rmost),
				EdgeLabel: e.Color,
				DstLabel:  host.V[v].Color,
			}
			next.add(cur.pat, ec, s, hRmost, v, ei)
		}
	}

	for _, rpE := range rmpath {
		if !next.empty() {
			break
		}
		for _, s := range cur.embs {
			hu := s.HostVertex(rpE.Src)
			rpLe := host.E[s.HostEdge(rpE.EdgeIndex())].Color
			for _, ei := range host.OutEdges(hu) {
				e := &host.E[ei]
				if s.HasHostEdge(ei) {
					continue
				}
				v := e.Other(hu)
				if v == hu || s.PatternVertex(v) != -1 {
					continue
				}
				lv := host.V[v].Color
				if lv < vlMin {
					continue
				}
				le := e.Color
				if (rpE.DstLabel <= lv && rpE.EdgeLabel == le) || rpE.EdgeLabel < le {
					ec := pattern.EdgeCode{
						Src: rpE.Src, Dst: rmost + 1,
						SrcLabel:  rpE.SrcLabel,
						EdgeLabel: le,
						DstLabel:  lv,
					}
					next.add(cur.pat, ec, s, hu, v, ei)
				}
			}
		}
	}
}
