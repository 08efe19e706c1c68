// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"testing"

	"github.com/arraylang/k/value"
)

// sample returns a minimal node of each category.
func sample(c Category) Node {
	switch c {
	case Noun:
		return &Literal{Value: value.Int(1)}
	case Monad:
		return &MonadRef{Verb: value.Minus}
	case Dyad:
		return &VerbRef{Verb: value.Plus}
	case Adverb:
		return &AdverbRef{Adverb: value.Over}
	}
	panic("bad category")
}

var categories = []Category{Noun, Monad, Dyad, Adverb}

func TestBindTable(t *testing.T) {
	var want = [4][4]string{
		//       Noun        Monad       Dyad        Adverb
		Noun:   {"Apply", "Apply", "Partial", "Partial"},
		Monad:  {"Apply", "Compose", "Apply", "AdverbApply"},
		Dyad:   {"Apply", "Compose", "Compose", "AdverbApply"},
		Adverb: {"Apply", "Compose", "Compose", "Apply"},
	}
	for _, l := range categories {
		for _, r := range categories {
			left, right := sample(l), sample(r)
			n := bind(left, right)
			if got := fmt.Sprintf("%T", n); got != "*parse."+want[l][r] {
				t.Errorf("bind(%s, %s) = %T, want %s", l, r, n, want[l][r])
				continue
			}
			// The children are the inputs, in order.
			var a, b Node
			switch n := n.(type) {
			case *Apply:
				a, b = n.Fn, n.Arg
			case *Partial:
				a, b = n.Left, n.Fn
			case *Compose:
				a, b = n.Outer, n.Inner
			case *AdverbApply:
				a, b = n.Fn, n.Adverb
			}
			if a != left || b != right {
				t.Errorf("bind(%s, %s) = %s: children out of order", l, r, n)
			}
		}
	}
}

func TestBindArgList(t *testing.T) {
	args := &Seq{Stmts: []Node{sample(Noun), sample(Noun)}}
	for _, l := range []Category{Noun, Monad, Dyad, Adverb} {
		n, ok := bind(sample(l), args).(*ArgApply)
		if !ok {
			t.Errorf("bind(%s, seq) is not an ArgApply", l)
			continue
		}
		if len(n.Args) != 2 {
			t.Errorf("bind(%s, seq) has %d args", l, len(n.Args))
		}
	}
}

func TestBindPartial(t *testing.T) {
	colon := &VerbRef{Verb: value.Colon}
	one := sample(Noun)
	var tests = []struct {
		partial *Partial
		right   Node
		want    string
	}{
		{&Partial{Left: &VarRef{Name: "x"}, Fn: colon}, one, "<assign x 1>"},
		{&Partial{Left: &VarRef{Name: "abc"}, Fn: colon}, one, "<assign abc 1>"},
		{&Partial{Left: &VarRef{Name: "x"}, Fn: &VerbRef{Verb: value.Plus}}, one, "(x + 1)"},
		{&Partial{Left: &Literal{Value: value.Int(2)}, Fn: colon}, one, "(2 : 1)"},
		{&Partial{Left: &VarRef{Name: "x"}, Fn: &MonadRef{Verb: value.Colon}}, one, "(x :: 1)"},
		{&Partial{Left: &VarRef{Name: "x"}, Fn: &AdverbRef{Adverb: value.Over}}, one, "(x / 1)"},
		// A bracketed right operand of a partial is an operand, not an argument list.
		{&Partial{Left: one, Fn: &VerbRef{Verb: value.Plus}}, &Seq{Stmts: []Node{one}}, "(1 + [1])"},
	}
	for _, test := range tests {
		if got := bind(test.partial, test.right).String(); got != test.want {
			t.Errorf("bind(%s, %s) = %s, want %s", test.partial, test.right, got, test.want)
		}
	}
}

func TestClassify(t *testing.T) {
	one := sample(Noun)
	plus := sample(Dyad)
	var tests = []struct {
		n    Node
		want Category
	}{
		{one, Noun},
		{&VarRef{Name: "x"}, Noun},
		{&Assign{Name: "x", Value: one}, Noun},
		{plus, Dyad},
		{&MonadRef{Verb: value.Plus}, Monad},
		{&AdverbRef{Adverb: value.Each}, Adverb},
		{&ListLit{}, Noun},
		{&FuncLit{Body: &Seq{}}, Noun},
		{&Seq{}, Noun},
		{&Apply{Fn: plus, Arg: one}, Noun},
		{&Apply2{Fn: plus, Left: one, Right: one}, Noun},
		{&Partial{Left: one, Fn: plus}, Monad},
		{&AdverbApply{Fn: plus, Adverb: sample(Adverb)}, Dyad},
		{&ArgApply{Fn: plus}, Noun},
		{&Compose{Outer: plus, Inner: plus}, Monad},
		{&Nominal{Inner: plus}, Noun},
	}
	for _, test := range tests {
		if got := Classify(test.n); got != test.want {
			t.Errorf("Classify(%s) = %s, want %s", test.n, got, test.want)
		}
	}
	if n := nominalize(one); n != one {
		t.Errorf("nominalize wrapped a noun: %s", n)
	}
	if n, ok := nominalize(plus).(*Nominal); !ok || n.Inner != plus {
		t.Errorf("nominalize(+) = %s", nominalize(plus))
	}
}
