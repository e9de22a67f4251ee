package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Input supplies a reader plus a closer, so that loaders may scan their
// input more than once.
type Input func() (reader io.Reader, closer func())

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// EgfLoader reads the EGF line format:
//
//	t <graph_id>
//	v <vertex_id> <label>
//	e <edge_id> <src> <dst> <label>
//	# comment
//
// Labels are the rest of the line and get interned into the shared
// Labels table. A syntax error or a dangling vertex reference aborts
// the load; every error carries its line number.
type EgfLoader struct {
	labels *Labels
}

func NewEgfLoader(labels *Labels) *EgfLoader {
	return &EgfLoader{labels: labels}
}

func (l *EgfLoader) Load(input Input) (graphs []*Graph, err error) {
	var errs ErrorList
	var cur *Graph
	var vids map[int]*Vertex

	in, closer := input()
	defer closer()
	err = processLines(in, func(lineno int, line string) {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			return
		}
		switch {
		case strings.HasPrefix(text, "t"):
			fields := strings.Fields(text)
			if len(fields) != 2 {
				errs = append(errs, errors.Errorf("line %d: malformed graph line %q", lineno, text))
				return
			}
			id, e := strconv.Atoi(fields[1])
			if e != nil {
				errs = append(errs, errors.Errorf("line %d: bad graph id %q", lineno, fields[1]))
				return
			}
			cur = NewGraph(id, 10, 10)
			vids = make(map[int]*Vertex)
			graphs = append(graphs, cur)
		case strings.HasPrefix(text, "v"):
			if cur == nil {
				errs = append(errs, errors.Errorf("line %d: vertex before graph header", lineno))
				return
			}
			fields := strings.SplitN(text, " ", 3)
			if len(fields) != 3 {
				errs = append(errs, errors.Errorf("line %d: malformed vertex line %q", lineno, text))
				return
			}
			id, e := strconv.Atoi(fields[1])
			if e != nil {
				errs = append(errs, errors.Errorf("line %d: bad vertex id %q", lineno, fields[1]))
				return
			}
			if _, has := vids[id]; has {
				errs = append(errs, errors.Errorf("line %d: duplicate vertex id %d", lineno, id))
				return
			}
			label := strings.TrimSpace(fields[2])
			vids[id] = cur.AddVertex(l.labels.Color(label))
		case strings.HasPrefix(text, "e"):
			if cur == nil {
				errs = append(errs, errors.Errorf("line %d: edge before graph header", lineno))
				return
			}
			fields := strings.SplitN(text, " ", 5)
			if len(fields) != 5 {
				errs = append(errs, errors.Errorf("line %d: malformed edge line %q", lineno, text))
				return
			}
			ints := make([]int, 3)
			for i, f := range fields[1:4] {
				x, e := strconv.Atoi(f)
				if e != nil {
					errs = append(errs, errors.Errorf("line %d: bad number %q", lineno, f))
					return
				}
				ints[i] = x
			}
			src, hasSrc := vids[ints[1]]
			targ, hasTarg := vids[ints[2]]
			if !hasSrc || !hasTarg {
				errs = append(errs, errors.Errorf("line %d: dangling vertex reference in %q", lineno, text))
				return
			}
			label := strings.TrimSpace(fields[4])
			cur.AddEdge(src, targ, l.labels.Color(label))
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

func processLines(in io.Reader, process func(lineno int, line string)) error {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		process(lineno, scanner.Text())
	}
	return scanner.Err()
}
