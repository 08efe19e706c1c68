// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strings"

	"github.com/arraylang/k/value"
)

// Node is an element of the syntax tree. The set of Node types is
// closed: each is declared in this file. A node owns its children;
// trees never share nodes.
//
// String formats the node in an unambiguous form for debugging.
// It is the output of the parse debug switch.
type Node interface {
	String() string

	node()
}

// Literal is a constant: 1.
type Literal struct {
	Value value.Value
}

// VarRef is a variable reference: abc.
type VarRef struct {
	Name string
}

// Assign is an assignment: abc:x.
type Assign struct {
	Name  string
	Value Node
}

// VerbRef is a bare verb: +.
type VerbRef struct {
	Verb value.Verb
}

// MonadRef is a verb forced to unary position by a trailing colon: +:.
type MonadRef struct {
	Verb value.Verb
}

// AdverbRef is an adverb: /.
type AdverbRef struct {
	Adverb value.Adverb
}

// ListLit is a parenthesized list: (a;b;c).
type ListLit struct {
	Items []Node
}

// FuncLit is a function: {a;b;c}.
type FuncLit struct {
	Body *Seq
}

// Seq is a bracketed statement sequence: [a;b;c].
// The root of every parse is a Seq holding the line's statements.
type Seq struct {
	Stmts []Node
}

// Apply is a unary application: +x.
type Apply struct {
	Fn  Node
	Arg Node
}

// Apply2 is a binary application: x+y.
type Apply2 struct {
	Fn    Node
	Left  Node
	Right Node
}

// Partial is a left operand captured while waiting for what follows
// the function to its right: x+.
type Partial struct {
	Left Node
	Fn   Node
}

// AdverbApply is a verb modified by an adverb: +/.
type AdverbApply struct {
	Fn     Node
	Adverb Node
}

// ArgApply is an application to a bracketed argument list: f[a;b;c].
type ArgApply struct {
	Fn   Node
	Args []Node
}

// Compose is a composition of two functions: +-.
type Compose struct {
	Outer Node
	Inner Node
}

// Nominal wraps a function so it is used as a value: (+).
type Nominal struct {
	Inner Node
}

func (*Literal) node()     {}
func (*VarRef) node()      {}
func (*Assign) node()      {}
func (*VerbRef) node()     {}
func (*MonadRef) node()    {}
func (*AdverbRef) node()   {}
func (*ListLit) node()     {}
func (*FuncLit) node()     {}
func (*Seq) node()         {}
func (*Apply) node()       {}
func (*Apply2) node()      {}
func (*Partial) node()     {}
func (*AdverbApply) node() {}
func (*ArgApply) node()    {}
func (*Compose) node()     {}
func (*Nominal) node()     {}

func (n *Literal) String() string {
	return n.Value.String()
}

func (n *VarRef) String() string {
	return n.Name
}

func (n *Assign) String() string {
	return fmt.Sprintf("<assign %s %s>", n.Name, n.Value)
}

func (n *VerbRef) String() string {
	return n.Verb.String()
}

func (n *MonadRef) String() string {
	return n.Verb.String() + ":"
}

func (n *AdverbRef) String() string {
	return n.Adverb.String()
}

func (n *ListLit) String() string {
	return "<list" + join(" ", n.Items) + ">"
}

func (n *FuncLit) String() string {
	return "{" + join("", n.Body.Stmts) + "}"
}

func (n *Seq) String() string {
	return "[" + join("", n.Stmts) + "]"
}

func (n *Apply) String() string {
	return fmt.Sprintf("(%s %s)", n.Fn, n.Arg)
}

func (n *Apply2) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Fn, n.Right)
}

func (n *Partial) String() string {
	return fmt.Sprintf("<partial %s %s>", n.Left, n.Fn)
}

func (n *AdverbApply) String() string {
	return fmt.Sprintf("<adverb %s %s>", n.Fn, n.Adverb)
}

func (n *ArgApply) String() string {
	return fmt.Sprintf("(%s[%s])", n.Fn, join("", n.Args))
}

func (n *Compose) String() string {
	return fmt.Sprintf("<compose %s %s>", n.Outer, n.Inner)
}

func (n *Nominal) String() string {
	return fmt.Sprintf("<noun %s>", n.Inner)
}

// join formats the nodes separated by "; ", after the prefix if there are any.
func join(prefix string, nodes []Node) string {
	if len(nodes) == 0 {
		return ""
	}
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.String()
	}
	return prefix + strings.Join(s, "; ")
}
