package subgraph

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
)

// An Embedding witnesses one occurrence of a pattern inside a host
// graph. It keeps both directions of the vertex and edge mappings as
// dense slices (-1 marks an unmapped host cell), so every lookup during
// enumeration is O(1). Each extension copies its parent's mappings and
// touches only the new cells; the prev pointer links back to the
// embedding one edge shorter.
type Embedding struct {
	prev *Embedding
	g    *graph.Graph
	vids []int // pattern vertex -> host vertex
	eids []int // pattern edge   -> host edge
	vmap []int // host vertex    -> pattern vertex or -1
	emap []int // host edge      -> pattern edge or -1
}

// Start builds the embedding of a single-edge pattern: hostSrc realises
// pattern vertex p.Src and hostTarg realises p.Dst.
func Start(p *pattern.Pattern, g *graph.Graph, hostSrc, hostTarg, hostEdge int) *Embedding {
	if p.Prev() != nil {
		panic(errors.Errorf("Start needs a single edge pattern, got %v", p))
	}
	emb := &Embedding{
		g:    g,
		vids: make([]int, 2),
		eids: make([]int, 1),
		vmap: make([]int, len(g.V)),
		emap: make([]int, len(g.E)),
	}
	for i := range emb.vmap {
		emb.vmap[i] = -1
	}
	for i := range emb.emap {
		emb.emap[i] = -1
	}
	emb.vids[p.Src] = hostSrc
	emb.vids[p.Dst] = hostTarg
	emb.eids[0] = hostEdge
	emb.vmap[hostSrc] = p.Src
	emb.vmap[hostTarg] = p.Dst
	emb.emap[hostEdge] = 0
	return emb
}

// Extend builds the embedding one edge longer: p is the new chain node,
// hostSrc realises p.Src and hostTarg realises p.Dst.
func (emb *Embedding) Extend(p *pattern.Pattern, hostSrc, hostTarg, hostEdge int) *Embedding {
	next := &Embedding{
		prev: emb,
		g:    emb.g,
		vids: make([]int, len(emb.vids), len(emb.vids)+1),
		eids: make([]int, len(emb.eids), len(emb.eids)+1),
		vmap: make([]int, len(emb.vmap)),
		emap: make([]int, len(emb.emap)),
	}
	copy(next.vids, emb.vids)
	copy(next.eids, emb.eids)
	copy(next.vmap, emb.vmap)
	copy(next.emap, emb.emap)
	if p.Dst == len(next.vids) {
		next.vids = append(next.vids, hostTarg)
	}
	next.eids = append(next.eids, hostEdge)
	next.vmap[hostSrc] = p.Src
	next.vmap[hostTarg] = p.Dst
	next.emap[hostEdge] = p.EdgeIndex()
	return next
}

func (emb *Embedding) Prev() *Embedding {
	return emb.prev
}

func (emb *Embedding) Graph() *graph.Graph {
	return emb.g
}

// HostVertex gives the host vertex realising pattern vertex pv.
func (emb *Embedding) HostVertex(pv int) int {
	return emb.vids[pv]
}

// HostEdge gives the host edge realising pattern edge pe.
func (emb *Embedding) HostEdge(pe int) int {
	return emb.eids[pe]
}

// PatternVertex gives the pattern vertex realised by host vertex hv, or
// -1 when hv is uncovered.
func (emb *Embedding) PatternVertex(hv int) int {
	return emb.vmap[hv]
}

// PatternEdge gives the pattern edge realised by host edge he, or -1.
func (emb *Embedding) PatternEdge(he int) int {
	return emb.emap[he]
}

func (emb *Embedding) HasHostEdge(he int) bool {
	return emb.emap[he] != -1
}

// Automorphic holds when both embeddings live in the same host graph
// and cover the same set of host edges. No endpoint comparison is
// needed: the same edge set realises the same subgraph.
func Automorphic(a, b *Embedding) bool {
	if a.g != b.g {
		return false
	}
	for i := range a.emap {
		if (a.emap[i] != -1) != (b.emap[i] != -1) {
			return false
		}
	}
	return true
}

func (emb *Embedding) String() string {
	items := make([]string, 0, len(emb.vids))
	for pv, hv := range emb.vids {
		items = append(items, fmt.Sprintf("%v->%v", pv, hv))
	}
	return fmt.Sprintf("<%v (%v)>", emb.g.Id, strings.Join(items, ", "))
}
