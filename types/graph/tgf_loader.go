package graph

import (
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// TgfLoader reads the legacy TGF line format:
//
//	t # <graph_id>
//	v <vertex_id> <int_label>
//	e <src> <dst> <int_label>
//
// The integer labels are used as colors directly; nothing is interned.
type TgfLoader struct{}

func NewTgfLoader() *TgfLoader {
	return &TgfLoader{}
}

func (l *TgfLoader) Load(input Input) (graphs []*Graph, err error) {
	var errs ErrorList
	var cur *Graph
	var vids map[int]*Vertex

	atoi := func(lineno int, s string) (int, bool) {
		x, e := strconv.Atoi(s)
		if e != nil {
			errs = append(errs, errors.Errorf("line %d: bad number %q", lineno, s))
			return 0, false
		}
		return x, true
	}

	in, closer := input()
	defer closer()
	err = processLines(in, func(lineno int, line string) {
		text := strings.TrimSpace(line)
		if text == "" {
			return
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "t":
			if len(fields) != 3 || fields[1] != "#" {
				errs = append(errs, errors.Errorf("line %d: malformed graph line %q", lineno, text))
				return
			}
			id, ok := atoi(lineno, fields[2])
			if !ok {
				return
			}
			cur = NewGraph(id, 10, 10)
			vids = make(map[int]*Vertex)
			graphs = append(graphs, cur)
		case "v":
			if cur == nil {
				errs = append(errs, errors.Errorf("line %d: vertex before graph header", lineno))
				return
			}
			if len(fields) != 3 {
				errs = append(errs, errors.Errorf("line %d: malformed vertex line %q", lineno, text))
				return
			}
			id, ok := atoi(lineno, fields[1])
			if !ok {
				return
			}
			color, ok := atoi(lineno, fields[2])
			if !ok {
				return
			}
			if _, has := vids[id]; has {
				errs = append(errs, errors.Errorf("line %d: duplicate vertex id %d", lineno, id))
				return
			}
			vids[id] = cur.AddVertex(color)
		case "e":
			if cur == nil {
				errs = append(errs, errors.Errorf("line %d: edge before graph header", lineno))
				return
			}
			if len(fields) != 4 {
				errs = append(errs, errors.Errorf("line %d: malformed edge line %q", lineno, text))
				return
			}
			srcId, ok := atoi(lineno, fields[1])
			if !ok {
				return
			}
			targId, ok := atoi(lineno, fields[2])
			if !ok {
				return
			}
			color, ok := atoi(lineno, fields[3])
			if !ok {
				return
			}
			src, hasSrc := vids[srcId]
			targ, hasTarg := vids[targId]
			if !hasSrc || !hasTarg {
				errs = append(errs, errors.Errorf("line %d: dangling vertex reference in %q", lineno, text))
				return
			}
			cur.AddEdge(src, targ, color)
		default:
			errs = append(errs, errors.Errorf("line %d: unknown line type %q", lineno, text))
		}
	})
	if err != nil {
		return nil, err
	}
	if len(errs) != 0 {
		return nil, errs
	}
	return graphs, nil
}
