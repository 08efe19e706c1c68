// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"

	"github.com/arraylang/k/value"
)

// bind combines two adjacent nodes into one. The result depends on
// the categories of the pair and, for a Partial followed by a Noun,
// on the shape of the Partial. Order matters: bind(a, b) and bind(b, a)
// generally differ.
func bind(left, right Node) Node {
	l, r := Classify(left), Classify(right)
	switch l {
	case Noun:
		switch r {
		case Noun, Monad:
			return apply(left, right)
		case Dyad, Adverb:
			return &Partial{Left: left, Fn: right}
		}
	case Monad:
		switch r {
		case Noun:
			if p, ok := left.(*Partial); ok {
				return complete(p, right)
			}
			return apply(left, right)
		case Monad:
			return &Compose{Outer: left, Inner: right}
		case Dyad:
			return apply(left, right)
		case Adverb:
			return &AdverbApply{Fn: left, Adverb: right}
		}
	case Dyad:
		switch r {
		case Noun:
			return apply(left, right)
		case Monad, Dyad:
			return &Compose{Outer: left, Inner: right}
		case Adverb:
			return &AdverbApply{Fn: left, Adverb: right}
		}
	case Adverb:
		switch r {
		case Noun, Adverb:
			return apply(left, right)
		case Monad, Dyad:
			return &Compose{Outer: left, Inner: right}
		}
	}
	panic(fmt.Sprintf("parse: no binding for %s %s", l, r))
}

// apply applies fn to arg. A bracketed sequence on the right
// is an argument list.
func apply(fn, arg Node) Node {
	if seq, ok := arg.(*Seq); ok {
		return &ArgApply{Fn: fn, Args: seq.Stmts}
	}
	return &Apply{Fn: fn, Arg: arg}
}

// complete supplies the right operand of a Partial. A variable
// captured by the : verb is an assignment.
func complete(p *Partial, right Node) Node {
	if v, ok := p.Left.(*VarRef); ok && isVerb(p.Fn, value.Colon) {
		return &Assign{Name: v.Name, Value: right}
	}
	return &Apply2{Fn: p.Fn, Left: p.Left, Right: right}
}

func isVerb(n Node, v value.Verb) bool {
	ref, ok := n.(*VerbRef)
	return ok && ref.Verb == v
}
