package gspan

import (
	"encoding/binary"
	"sort"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// An Ext is one entry of the right-extension map: the extension's chain
// node (which owns every embedding's pattern pointer) plus the
// per-graph embedding lists realising it.
type Ext struct {
	Pat *pattern.Pattern
	SG  *subgraph.Supported
}

// Extensions groups candidate extensions of one parent by their newest
// edge code. For siblings struct equality of the code coincides with
// DFS-order equivalence, so a hash over the serialized code indexes the
// entries; iteration sorts them into DFS order.
type Extensions struct {
	entries []*Ext
	index   *hashtable.LinearHash
}

func NewExtensions() *Extensions {
	return &Extensions{
		entries: make([]*Ext, 0, 10),
		index:   hashtable.NewLinearHash(),
	}
}

func ecKey(ec *pattern.EdgeCode) types.ByteSlice {
	key := make([]byte, 20)
	binary.BigEndian.PutUint32(key[0:4], uint32(ec.Src))
	binary.BigEndian.PutUint32(key[4:8], uint32(ec.Dst))
	binary.BigEndian.PutUint32(key[8:12], uint32(ec.SrcLabel))
	binary.BigEndian.PutUint32(key[12:16], uint32(ec.EdgeLabel))
	binary.BigEndian.PutUint32(key[16:20], uint32(ec.DstLabel))
	return types.ByteSlice(key)
}

func (exts *Extensions) entry(prev *pattern.Pattern, ec pattern.EdgeCode) *Ext {
	key := ecKey(&ec)
	if exts.index.Has(key) {
		item, err := exts.index.Get(key)
		if err != nil {
			panic(err)
		}
		return item.(*Ext)
	}
	ext := &Ext{
		Pat: pattern.New(ec, prev),
		SG:  subgraph.NewSupported(),
	}
	exts.entries = append(exts.entries, ext)
	if err := exts.index.Put(key, ext); err != nil {
		panic(err)
	}
	return ext
}

// AddSeed inserts a single-edge candidate rooted at the oriented host
// edge (hostSrc, hostTarg).
func (exts *Extensions) AddSeed(ec pattern.EdgeCode, g *graph.Graph, hostSrc, hostTarg, hostEdge int) {
	ext := exts.entry(nil, ec)
	ext.SG.Add(subgraph.Start(ext.Pat, g, hostSrc, hostTarg, hostEdge))
}

// Add inserts an extension of prev realised by growing emb along the
// oriented host edge (hostSrc, hostTarg).
func (exts *Extensions) Add(prev *pattern.Pattern, ec pattern.EdgeCode, emb *subgraph.Embedding, hostSrc, hostTarg, hostEdge int) {
	ext := exts.entry(prev, ec)
	ext.SG.Add(emb.Extend(ext.Pat, hostSrc, hostTarg, hostEdge))
}

func (exts *Extensions) Size() int {
	return len(exts.entries)
}

// Do visits the entries in DFS order.
func (exts *Extensions) Do(do func(*Ext) error) error {
	sorted := make([]*Ext, len(exts.entries))
	copy(sorted, exts.entries)
	sort.Slice(sorted, func(i, j int) bool {
		return pattern.LessDFS(&sorted[i].Pat.EdgeCode, &sorted[j].Pat.EdgeCode)
	})
	for _, ext := range sorted {
		if err := do(ext); err != nil {
			return err
		}
	}
	return nil
}
