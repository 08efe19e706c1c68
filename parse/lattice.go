// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "fmt"

// Category is the syntactic role of a node.
type Category uint8

const (
	Noun   Category = iota // a value
	Monad                  // a function in prefix position
	Dyad                   // a function in infix position
	Adverb                 // a postfix modifier
)

var categoryNames = [...]string{
	Noun:   "noun",
	Monad:  "monad",
	Dyad:   "dyad",
	Adverb: "adverb",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// strengths[l][r] is how strongly a node of category l pulls a node
// of category r on its right. Strengths are only ever compared with
// each other, never treated as absolute precedences.
var strengths = [4][4]uint8{
	//       N  M  D  A
	Noun:   {1, 0, 3, 4},
	Monad:  {2, 1, 0, 4},
	Dyad:   {2, 1, 1, 4},
	Adverb: {0, 0, 0, 0},
}

func strength(l, r Category) uint8 {
	return strengths[l][r]
}

// Classify returns the category of the node. It depends only on the
// node's type.
func Classify(n Node) Category {
	switch n.(type) {
	case *Literal, *VarRef, *Assign, *ListLit, *FuncLit, *Seq,
		*Apply, *Apply2, *ArgApply, *Nominal:
		return Noun
	case *MonadRef, *Partial, *Compose:
		return Monad
	case *VerbRef, *AdverbApply:
		return Dyad
	case *AdverbRef:
		return Adverb
	}
	panic(fmt.Sprintf("parse: unknown node type %T", n))
}

// nominalize wraps n so it is a Noun, if it is not one already.
func nominalize(n Node) Node {
	if Classify(n) == Noun {
		return n
	}
	return &Nominal{Inner: n}
}
