// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a k session.
// The zero value is ready to use.
package config // import "github.com/arraylang/k/config"

import (
	"io"
	"os"
	"sort"
	"strings"
)

// DebugFlags lists the names accepted by SetDebug.
//
//	tokens   print each item as it is read
//	parse    print the syntax tree of each line
//	compile  print the function compiled from each line
var DebugFlags = []string{
	"compile",
	"parse",
	"tokens",
}

type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer for ordinary output, default os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for errors, default os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the named debug flag. It reports whether the name is known.
func (c *Config) SetDebug(s string, state bool) bool {
	i := sort.SearchStrings(DebugFlags, s)
	if i == len(DebugFlags) || DebugFlags[i] != s {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

// SetDebugList sets each flag in a comma-separated list.
// It returns the first unknown name, if any.
func (c *Config) SetDebugList(list string) (bad string, ok bool) {
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !c.SetDebug(s, true) {
			return s, false
		}
	}
	return "", true
}
