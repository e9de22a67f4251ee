package graph

import (
	"fmt"
	"io"
)

// WriteEgf renders the graphs in the EGF line format, resolving colors
// through the label table.
func WriteEgf(w io.Writer, graphs []*Graph, labels *Labels) error {
	for _, g := range graphs {
		if _, err := fmt.Fprintf(w, "t %d\n", g.Id); err != nil {
			return err
		}
		for i := range g.V {
			v := &g.V[i]
			if _, err := fmt.Fprintf(w, "v %d %v\n", v.Idx, labels.Label(v.Color)); err != nil {
				return err
			}
		}
		for i := range g.E {
			e := &g.E[i]
			if _, err := fmt.Fprintf(w, "e %d %d %d %v\n", e.Idx, e.Src, e.Targ, labels.Label(e.Color)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
