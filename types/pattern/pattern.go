package pattern

// An EdgeCode names one pattern edge in pattern-local coordinates: the
// two vertex indices plus the three labels. The code is forward when it
// introduces its target (Src < Dst) and backward otherwise.
type EdgeCode struct {
	Src, Dst  int
	SrcLabel  int
	EdgeLabel int
	DstLabel  int
}

func (ec *EdgeCode) IsForward() bool {
	return ec.Src < ec.Dst
}

// A Pattern is one node of a DFS code: an immutable singly linked chain
// of edge codes. Every node carries its edge code, the chain position,
// and cached back-pointers that make the graph queries cheap:
//
//	prev      the previous edge in the chain
//	rmost     the newest forward edge at or before this node
//	prevRmost the newest forward edge whose target is this node's source
//	          (following it walks the right-most path)
//	prevSrc   the newest earlier edge incident to this node's source
//	prevDst   the newest earlier edge incident to this node's target
//
// Chains are append-only; a node is never mutated after New returns.
type Pattern struct {
	EdgeCode
	eidx      int
	prev      *Pattern
	rmost     *Pattern
	prevRmost *Pattern
	prevSrc   *Pattern
	prevDst   *Pattern
}

func New(ec EdgeCode, prev *Pattern) *Pattern {
	p := &Pattern{EdgeCode: ec, prev: prev}
	if p.IsForward() {
		p.rmost = p
	} else if prev != nil {
		p.rmost = prev.rmost
	}
	if prev != nil {
		p.eidx = prev.eidx + 1
	}
	for q := prev; q != nil; q = q.prev {
		if p.prevRmost != nil && p.prevSrc != nil && p.prevDst != nil {
			break
		}
		if p.prevRmost == nil && q.IsForward() && ec.Src == q.Dst {
			p.prevRmost = q
		}
		if p.prevSrc == nil && q.incident(ec.Src) {
			p.prevSrc = q
		}
		if p.prevDst == nil && q.incident(ec.Dst) {
			p.prevDst = q
		}
	}
	return p
}

func (p *Pattern) Prev() *Pattern {
	return p.prev
}

func (p *Pattern) Rmost() *Pattern {
	return p.rmost
}

func (p *Pattern) PrevRmost() *Pattern {
	return p.prevRmost
}

// EdgeIndex is the 0-based position of this edge in the chain.
func (p *Pattern) EdgeIndex() int {
	return p.eidx
}

func (p *Pattern) NumEdges() int {
	return p.eidx + 1
}

// NumVertices relies on vertex indices being introduced contiguously:
// the right-most vertex has the largest index.
func (p *Pattern) NumVertices() int {
	return p.rmost.Dst + 1
}

// RmostVertex is the most recently introduced pattern vertex.
func (p *Pattern) RmostVertex() int {
	return p.rmost.Dst
}

func (p *Pattern) incident(v int) bool {
	return p.Src == v || p.Dst == v
}

// Edges lists the chain nodes newest first.
func (p *Pattern) Edges() []*Pattern {
	edges := make([]*Pattern, 0, p.NumEdges())
	for e := p; e != nil; e = e.prev {
		edges = append(edges, e)
	}
	return edges
}

// Dfsc lists the chain nodes in growth order, oldest first.
func (p *Pattern) Dfsc() []*Pattern {
	edges := p.Edges()
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

// RMPath lists the forward edges on the right-most path, starting with
// the edge into the right-most vertex and ending at the root edge.
func (p *Pattern) RMPath() []*Pattern {
	edges := make([]*Pattern, 0, p.NumEdges())
	for e := p.rmost; e != nil; e = e.prevRmost {
		edges = append(edges, e)
	}
	return edges
}

// An OutEdge is a chain node seen from one of its endpoints: when Flip
// is set the endpoint of interest is the code's target rather than its
// source.
type OutEdge struct {
	E    *Pattern
	Flip bool
}

func (oe OutEdge) Source() int {
	if oe.Flip {
		return oe.E.Dst
	}
	return oe.E.Src
}

func (oe OutEdge) Target() int {
	if oe.Flip {
		return oe.E.Src
	}
	return oe.E.Dst
}

func (oe OutEdge) SourceLabel() int {
	if oe.Flip {
		return oe.E.DstLabel
	}
	return oe.E.SrcLabel
}

func (oe OutEdge) TargetLabel() int {
	if oe.Flip {
		return oe.E.SrcLabel
	}
	return oe.E.DstLabel
}

// OutEdges lists the chain nodes incident to pattern vertex v, newest
// first, oriented so that Source() == v. The cached prevSrc/prevDst
// pointers keep the walk proportional to the degree of v once the first
// incident node is found.
func (p *Pattern) OutEdges(v int) []OutEdge {
	out := make([]OutEdge, 0, 4)
	e := p
	if !e.incident(v) {
		e = findIncident(e.prev, v)
	}
	for e != nil {
		out = append(out, OutEdge{E: e, Flip: e.Src != v})
		if e.Src == v {
			e = e.prevSrc
		} else {
			e = e.prevDst
		}
	}
	return out
}

func findIncident(p *Pattern, v int) *Pattern {
	for q := p; q != nil; q = q.prev {
		if q.incident(v) {
			return q
		}
	}
	return nil
}

// VertexLabel gives the label of pattern vertex v.
func (p *Pattern) VertexLabel(v int) int {
	e := findIncident(p, v)
	if e == nil {
		return -1
	}
	if e.Src == v {
		return e.SrcLabel
	}
	return e.DstLabel
}
