package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"math"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/gspan/cmd"
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/miner"
	"github.com/timtadh/gspan/miners/gspan"
	"github.com/timtadh/gspan/reporters"
	"github.com/timtadh/gspan/types/graph"
)

func init() {
	cmd.UsageMessage = "gspan --help"
	cmd.ExtendedMessage = `
gspan - graph-based substructure pattern mining

$ gspan -i <path> [-o <path>] (-c <int> | -s <float>) [Options]

Finds every connected subgraph occurring at least min-count times in
the input and writes each one with its support (and optionally its
embeddings). One input graph means occurrences are counted as distinct
automorphism classes inside it; several input graphs mean the count is
the number of graphs containing the pattern.

Options
    -h, --help                view this message
    -i, --input=<path>        input file (required)
                              NB: may be gzipped if the extension is .gz
    -o, --output=<path>       output file (default stdout)
                              NB: use /dev/null to suppress output
    -c, --count=<int>         minimum number of occurrences
    -s, --support=<float>     minimum support ratio in [0,1]; the minimum
                              count becomes ceil(support * #graphs)
    -l, --legacy              input is in the legacy TGF format
    --dot                     input is a graphviz dot file
    -e, --embeddings=<mode>   none|autgrp|all (default none)
                              autgrp: one embedding per automorphism group
                              all: every embedding
    --stats                   log input statistics before mining
    --cache=<path>            directory for disk backed stores
    --histogram=<path>        write the unique-pattern histogram here
    --skip-log=<level>        don't output the given log level.

Input Formats

    EGF (default)
        t <graph-id>
        v <vertex-id> <label>
        e <edge-id> <src> <dst> <label>
        # comment

        Labels are the rest of the line and may contain spaces.

    TGF (--legacy)
        t # <graph-id>
        v <vertex-id> <int-label>
        e <src> <dst> <int-label>
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hi:o:c:s:le:",
		[]string{
			"help",
			"input=", "output=",
			"count=", "support=",
			"legacy", "dot",
			"embeddings=",
			"stats",
			"cache=",
			"histogram=",
			"skip-log=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := &config.Config{
		Ratio:   -1,
		EmbMode: reporters.EmbNone,
	}
	count := 0
	histogram := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-i", "--input":
			conf.Input = cmd.AssertFile(oa.Arg())
		case "-o", "--output":
			conf.Output = oa.Arg()
		case "-c", "--count":
			count = cmd.ParseInt(oa.Arg())
		case "-s", "--support":
			conf.Ratio = cmd.ParseFloat(oa.Arg())
		case "-l", "--legacy":
			conf.Legacy = true
		case "--dot":
			conf.Dot = true
		case "-e", "--embeddings":
			conf.EmbMode = oa.Arg()
		case "--stats":
			conf.Stats = true
		case "--cache":
			conf.Cache = oa.Arg()
		case "--histogram":
			histogram = oa.Arg()
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Unexpected trailing arguments %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if conf.Input == "" {
		fmt.Fprintf(os.Stderr, "You must supply an input file (-i)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if count <= 0 && conf.Ratio < 0 {
		fmt.Fprintf(os.Stderr, "You must supply -c or -s\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if conf.Ratio > 1 {
		fmt.Fprintf(os.Stderr, "Support ratio must be in [0,1] got %v\n", conf.Ratio)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	labels := graph.NewLabels()
	input := cmd.Input(conf.Input)
	var graphs []*graph.Graph
	switch {
	case conf.Legacy:
		graphs, err = graph.NewTgfLoader().Load(input)
	case conf.Dot:
		graphs, err = graph.NewDotLoader(labels).Load(input)
	default:
		graphs, err = graph.NewEgfLoader(labels).Load(input)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cmd.ErrorCodes["baddata"]
	}
	if len(graphs) == 0 {
		fmt.Fprintf(os.Stderr, "No graphs found in %v\n", conf.Input)
		return cmd.ErrorCodes["baddata"]
	}

	if conf.Stats {
		errors.Logf("INFO", "%v", graph.ComputeStats(graphs))
	}

	if conf.Ratio >= 0 {
		conf.Support = int(math.Ceil(conf.Ratio * float64(len(graphs))))
	} else {
		conf.Support = count
	}

	out, err := cmd.Output(conf.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cmd.ErrorCodes["badfile"]
	}
	var rpt miner.Reporter
	rpt, err = reporters.NewFile(out, labels, conf.EmbMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if histogram != "" {
		rpt, err = reporters.NewUnique(conf, rpt, histogram)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cmd.ErrorCodes["badfile"]
		}
	}

	vl, el := miner.ColorLabels()
	var m *gspan.Miner
	if len(graphs) == 1 {
		m, err = gspan.MineOne(graphs[0], conf.Support, rpt, vl, el)
	} else {
		m, err = gspan.MineMany(graphs, conf.Support, rpt, vl, el)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cmd.ErrorCodes["badfile"]
	}
	err = rpt.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cmd.ErrorCodes["badfile"]
	}
	errors.Logf("DEBUG", "visited %v candidates, reported %v patterns", m.Visited, m.Found)
	return 0
}
