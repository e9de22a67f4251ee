package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/miner"
	"github.com/timtadh/gspan/stores/bytes_int"
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

// Unique forwards each distinct pattern label once and counts repeats.
// The engine reports every minimal pattern exactly once, so the repeat
// counts double as a sanity check; the optional histogram records them.
type Unique struct {
	count     int
	Seen      bytes_int.MultiMap
	Reporter  miner.Reporter
	histogram io.WriteCloser
}

func NewUnique(conf *config.Config, reporter miner.Reporter, histogramName string) (*Unique, error) {
	seen, err := conf.BytesIntMultiMap("unique-seen")
	if err != nil {
		return nil, err
	}
	var histogram io.WriteCloser = nil
	if histogramName != "" {
		histogram, err = os.Create(histogramName)
		if err != nil {
			return nil, err
		}
	}
	u := &Unique{
		Seen:      seen,
		Reporter:  reporter,
		histogram: histogram,
	}
	return u, nil
}

func (r *Unique) Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error {
	r.count++
	label := p.Label()
	if has, err := r.Seen.Has(label); err != nil {
		return err
	} else if has {
		var count int32
		err = bytes_int.Do(func() (bytes_int.Iterator, error) {
			return r.Seen.Find(label)
		}, func(_ []byte, c int32) error {
			count = c
			return nil
		})
		if err != nil {
			return err
		}
		err = r.Seen.Remove(label, func(_ int32) bool { return true })
		if err != nil {
			return err
		}
		return r.Seen.Add(label, count+1)
	}
	err := r.Seen.Add(label, 1)
	if err != nil {
		return err
	}
	return r.Reporter.Report(p, sg, support)
}

func (r *Unique) Close() error {
	if r.histogram != nil {
		err := bytes_int.Do(r.Seen.Iterate, func(k []byte, c int32) error {
			_, err := fmt.Fprintf(r.histogram, "%d, %.5g\n", c, float64(c)/float64(r.count))
			return err
		})
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
		err = r.histogram.Close()
		if err != nil {
			errors.Logf("ERROR", "%v", err)
		}
	}
	err := r.Seen.Delete()
	if err != nil {
		errors.Logf("ERROR", "%v", err)
	}
	return r.Reporter.Close()
}
