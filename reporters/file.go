package reporters

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// Embedding output modes.
const (
	EmbNone   = "none"
	EmbAutgrp = "autgrp"
	EmbAll    = "all"
)

// File writes each pattern as a block:
//
//	t # <id> * <support>
//	<dfs code, one edge per line, right-most path edges starred>
//	e <graph-id> <host vertices in pattern order>...
//
// The embedding lines depend on the mode: none, one representative per
// automorphism group, or every embedding.
type File struct {
	out     io.WriteCloser
	labels  *graph.Labels
	embMode string
	count   int
}

func NewFile(out io.WriteCloser, labels *graph.Labels, embMode string) (*File, error) {
	switch embMode {
	case EmbNone, EmbAutgrp, EmbAll:
	default:
		return nil, fmt.Errorf("unknown embeddings mode %q", embMode)
	}
	return &File{
		out:     out,
		labels:  labels,
		embMode: embMode,
	}, nil
}

func (r *File) Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error {
	_, err := fmt.Fprintf(r.out, "t # %d * %d\n%v", r.count, support, p.Format(r.labels))
	if err != nil {
		return err
	}
	r.count++
	if r.embMode == EmbNone {
		return nil
	}
	for _, g := range sg.Graphs() {
		lists := sg.Lists(g)
		if r.embMode == EmbAutgrp {
			for _, group := range lists.Aut {
				if err := r.writeEmbedding(g, group[0], p); err != nil {
					return err
				}
			}
		} else {
			for _, emb := range lists.All {
				if err := r.writeEmbedding(g, emb, p); err != nil {
					return err
				}
			}
		}
	}
	_, err = fmt.Fprintln(r.out)
	return err
}

func (r *File) writeEmbedding(g *graph.Graph, emb *subgraph.Embedding, p *pattern.Pattern) error {
	verts := make([]string, 0, p.NumVertices())
	for pv := 0; pv < p.NumVertices(); pv++ {
		verts = append(verts, fmt.Sprint(emb.HostVertex(pv)))
	}
	_, err := fmt.Fprintf(r.out, "e %d %v\n", g.Id, strings.Join(verts, " "))
	return err
}

func (r *File) Close() error {
	return r.out.Close()
}
