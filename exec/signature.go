// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"slices"

	"github.com/arraylang/k/parse"
)

// params are the implicit parameter names, in order.
var params = []string{"x", "y", "z"}

// Signature infers the parameters and locals of a function body.
// A reference to x, y or z implies all the parameters up to and
// including it: a body mentioning only y takes x and y. Each name
// assigned in the body is a local, listed once in order of first
// assignment. Nested functions have their own parameters and locals
// and are not examined.
func Signature(body parse.Node) (args, locals []string) {
	var s signature
	s.walk(body)
	return params[:s.arity:s.arity], s.locals
}

type signature struct {
	arity  int
	locals []string
}

func (s *signature) walk(n parse.Node) {
	switch n := n.(type) {
	case *parse.VarRef:
		if i := slices.Index(params, n.Name); i >= 0 {
			s.arity = max(s.arity, i+1)
		}
	case *parse.Assign:
		s.walk(n.Value)
		if !slices.Contains(s.locals, n.Name) {
			s.locals = append(s.locals, n.Name)
		}
	case *parse.ListLit:
		s.walkAll(n.Items)
	case *parse.Seq:
		s.walkAll(n.Stmts)
	case *parse.Apply:
		s.walk(n.Fn)
		s.walk(n.Arg)
	case *parse.Apply2:
		s.walk(n.Fn)
		s.walk(n.Left)
		s.walk(n.Right)
	case *parse.Partial:
		s.walk(n.Left)
		s.walk(n.Fn)
	case *parse.AdverbApply:
		s.walk(n.Fn)
		s.walk(n.Adverb)
	case *parse.ArgApply:
		s.walk(n.Fn)
		s.walkAll(n.Args)
	case *parse.Compose:
		s.walk(n.Outer)
		s.walk(n.Inner)
	case *parse.Nominal:
		s.walk(n.Inner)
	}
}

func (s *signature) walkAll(nodes []parse.Node) {
	for _, n := range nodes {
		s.walk(n)
	}
}
