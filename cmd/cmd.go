package cmd

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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/gspan/types/graph"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    1,
	"opts":     1,
	"badfloat": 1,
	"badint":   1,
	"badfile":  1,
	"baddata":  1,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// Input wraps a path as a rewindable reader; gzipped files are
// transparently decompressed when the path ends in .gz.
func Input(input_path string) graph.Input {
	return func() (io.Reader, func()) {
		freader, err := os.Open(input_path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			Usage(ErrorCodes["badfile"])
		}
		if strings.HasSuffix(input_path, ".gz") {
			greader, err := gzip.NewReader(freader)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				Usage(ErrorCodes["badfile"])
			}
			return greader, func() {
				greader.Close()
				freader.Close()
			}
		}
		return freader, func() {
			freader.Close()
		}
	}
}

// Output opens the output sink; "" and "-" mean stdout.
func Output(output_path string) (io.WriteCloser, error) {
	if output_path == "" || output_path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(output_path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertFile(fname string) string {
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Expected a file found a directory: %v\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}
