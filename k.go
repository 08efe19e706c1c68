// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/arraylang/k/config"
	"github.com/arraylang/k/parse"
	"github.com/arraylang/k/run"
)

const historyFile = ".k_history"

var (
	execute = flag.Bool("e", false, "execute arguments as a single expression")
	prompt  = flag.String("prompt", "  ", "command `prompt`")
	debug   = flag.String("debug", "parse", "comma-separated `names` of debug flags to enable")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("k: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetPrompt(*prompt)
	if bad, ok := conf.SetDebugList(*debug); !ok {
		log.Fatalf("unknown debug flag %q; known flags: %s", bad, strings.Join(config.DebugFlags, ", "))
	}

	if *execute {
		if !run.Run(&conf, "<args>", strings.NewReader(strings.Join(flag.Args(), " "))) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		ok := true
		for _, name := range flag.Args() {
			fd, err := os.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			if !run.Run(&conf, name, fd) {
				ok = false
			}
			fd.Close()
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if !isTerminal(os.Stdin) {
		if !run.Run(&conf, "<stdin>", os.Stdin) {
			os.Exit(1)
		}
		return
	}
	repl()
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// repl runs an interactive session with line editing and history.
func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, ok := readSource(ln)
		if !ok {
			fmt.Fprintln(conf.Output())
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		run.Line(&conf, "", src)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readSource reads a line, and continuation lines while a bracket is open.
// The boolean is false at EOF.
func readSource(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		p := conf.Prompt()
		if b.Len() > 0 {
			p = strings.Repeat(" ", len(p)) + "> "
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Fatal(err)
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if _, err := parse.Parse(src); !parse.IsIncomplete(err) {
			return src, true
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: k [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
