package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/gspan/types/pattern"
	"github.com/timtadh/gspan/types/subgraph"
)

type Count struct {
	count    int
	filename string
}

func NewCount(filename string) *Count {
	return &Count{
		filename: filename,
	}
}

func (r *Count) Report(p *pattern.Pattern, sg *subgraph.Supported, support int) error {
	r.count++
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.filename)
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", r.count)
	err = f.Close()
	if perr != nil {
		return perr
	}
	return err
}
