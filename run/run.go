// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for k.
// It is factored out of main so it can be used for tests.
package run // import "github.com/arraylang/k/run"

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arraylang/k/config"
	"github.com/arraylang/k/exec"
	"github.com/arraylang/k/parse"
)

// Run reads r until EOF, handling each line with Line.
// A line that leaves a bracket open is joined with the lines
// that follow until the bracket closes or the input ends.
// The name, if not empty, prefixes error messages.
// The return value reports whether every line succeeded.
func Run(conf *config.Config, name string, r io.Reader) (success bool) {
	success = true
	in := bufio.NewReader(r)
	lineNum := 0
	for {
		src, ok := readLine(in)
		if !ok {
			return success
		}
		lineNum++
		start := lineNum
		for parse.IsIncomplete(probe(src)) {
			more, ok := readLine(in)
			if !ok {
				break
			}
			lineNum++
			src += "\n" + more
		}
		if !Line(conf, loc(name, start), src) {
			success = false
		}
	}
}

// readLine returns the next line of input without its newline.
// The boolean is false at EOF.
func readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// probe parses src without tracing, to see if it is complete.
func probe(src string) error {
	_, err := parse.Parse(src)
	return err
}

func loc(name string, line int) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", name, line)
}

// Line parses and compiles one line of source, printing the results
// as selected by the debug flags. Errors are printed to the error
// output, after prefix. Line reports whether there were no errors.
// A line holding only white space is ignored.
func Line(conf *config.Config, prefix, src string) bool {
	if strings.TrimSpace(src) == "" {
		return true
	}
	out := conf.Output()
	root, err := parse.NewParser(conf).Parse(src)
	if err != nil {
		fmt.Fprintf(conf.ErrOutput(), "%s%s\n", prefix, err)
		return false
	}
	if conf.Debug("parse") {
		fmt.Fprintln(out, root)
	}
	fn, err := exec.Compile(root)
	if err != nil {
		fmt.Fprintf(conf.ErrOutput(), "%s%s\n", prefix, err)
		return false
	}
	if conf.Debug("compile") {
		fmt.Fprintln(out, fn)
	}
	return true
}
