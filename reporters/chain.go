package reporters

import (
	"github.com/timtadh/gspan/miner"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

type Chain struct {
	Reporters []miner.Reporter
}

func (r *Chain) Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p, sg, support)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
