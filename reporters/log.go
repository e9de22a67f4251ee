package reporters

import (
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/types/graph"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

type Log struct {
	labels *graph.Labels
	prefix string
	count  int
}

func NewLog(labels *graph.Labels, prefix string) *Log {
	return &Log{
		labels: labels,
		prefix: prefix,
	}
}

func (r *Log) Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error {
	pfx := r.prefix
	if pfx != "" {
		pfx += " "
	}
	errors.Logf("INFO", "%vpattern %v support %v\n%v", pfx, r.count, support,
		strings.TrimRight(p.Format(r.labels), "\n"))
	r.count++
	return nil
}

func (r *Log) Close() error {
	return nil
}
