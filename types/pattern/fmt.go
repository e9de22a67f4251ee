package pattern

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/gspan/types/graph"
)

// Label serializes the DFS code in growth order. Two patterns have the
// same label iff they have the same code, so the bytes work as a map
// key.
func (p *Pattern) Label() []byte {
	dfsc := p.Dfsc()
	size := 8 + len(dfsc)*20
	label := make([]byte, size)
	binary.BigEndian.PutUint32(label[0:4], uint32(p.NumEdges()))
	binary.BigEndian.PutUint32(label[4:8], uint32(p.NumVertices()))
	off := 8
	for _, e := range dfsc {
		binary.BigEndian.PutUint32(label[off:off+4], uint32(e.Src))
		binary.BigEndian.PutUint32(label[off+4:off+8], uint32(e.Dst))
		binary.BigEndian.PutUint32(label[off+8:off+12], uint32(e.SrcLabel))
		binary.BigEndian.PutUint32(label[off+12:off+16], uint32(e.EdgeLabel))
		binary.BigEndian.PutUint32(label[off+16:off+20], uint32(e.DstLabel))
		off += 20
	}
	return label
}

func (p *Pattern) String() string {
	codes := make([]string, 0, p.NumEdges())
	for _, e := range p.Dfsc() {
		codes = append(codes, fmt.Sprintf(
			"(%v,%v,%v,%v,%v)",
			e.Src, e.Dst, e.SrcLabel, e.EdgeLabel, e.DstLabel,
		))
	}
	return strings.Join(codes, "")
}

// Format renders the code one edge per line with right-most path edges
// starred, resolving colors through the label table.
func (p *Pattern) Format(labels *graph.Labels) string {
	onRmpath := make([]bool, p.NumEdges())
	for _, e := range p.RMPath() {
		onRmpath[e.eidx] = true
	}
	var buf strings.Builder
	for _, e := range p.Dfsc() {
		if onRmpath[e.eidx] {
			buf.WriteString(" * ")
		} else {
			buf.WriteString("   ")
		}
		fmt.Fprintf(&buf, "(%v,%v, %v,%v,%v)\n",
			e.Src, e.Dst,
			labels.Label(e.SrcLabel),
			labels.Label(e.EdgeLabel),
			labels.Label(e.DstLabel),
		)
	}
	return buf.String()
}
