// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec compiles syntax trees into bytecode functions.
//
// Only literals compile so far. Every other construct is reported
// as an Error rather than compiled wrongly.
package exec // import "github.com/arraylang/k/exec"

import (
	"fmt"
	"math"

	"github.com/arraylang/k/parse"
	"github.com/arraylang/k/value"
)

// Error is the error returned by Compile.
type Error string

func (err Error) Error() string {
	return string(err)
}

func errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// compiler holds the state of one call to Compile.
type compiler struct {
	fn *Function
}

// Compile compiles a body. A Seq compiles each statement in turn;
// the result of the last is returned.
func Compile(body parse.Node) (*Function, error) {
	args, locals := Signature(body)
	c := &compiler{
		fn: &Function{
			Args:   args,
			Locals: locals,
		},
	}
	var stmts []parse.Node
	if seq, ok := body.(*parse.Seq); ok {
		stmts = seq.Stmts
	} else {
		stmts = []parse.Node{body}
	}
	for _, stmt := range stmts {
		if err := c.expr(stmt); err != nil {
			return nil, err
		}
	}
	c.emit(Return, 0)
	return c.fn, nil
}

func (c *compiler) emit(code Opcode, arg uint8) {
	c.fn.Code = append(c.fn.Code, Op{Code: code, Arg: arg})
}

func (c *compiler) expr(n parse.Node) error {
	switch n := n.(type) {
	case *parse.Literal:
		k, err := c.constant(n.Value)
		if err != nil {
			return err
		}
		c.emit(XK, k)
		return nil
	}
	return errorf("%s not yet supported", describe(n))
}

// constant adds v to the constant pool and returns its index.
func (c *compiler) constant(v value.Value) (uint8, error) {
	k := len(c.fn.Consts)
	if k > math.MaxUint8 {
		return 0, errorf("too many constants")
	}
	c.fn.Consts = append(c.fn.Consts, v)
	return uint8(k), nil
}

// describe names the construct n.
func describe(n parse.Node) string {
	switch n.(type) {
	case *parse.Literal:
		return "literal"
	case *parse.VarRef:
		return "variable reference"
	case *parse.Assign:
		return "assignment"
	case *parse.VerbRef:
		return "verb"
	case *parse.MonadRef:
		return "monadic verb"
	case *parse.AdverbRef:
		return "adverb"
	case *parse.ListLit:
		return "list"
	case *parse.FuncLit:
		return "function"
	case *parse.Seq:
		return "bracketed sequence"
	case *parse.Apply:
		return "application"
	case *parse.Apply2:
		return "binary application"
	case *parse.Partial:
		return "projection"
	case *parse.AdverbApply:
		return "adverb application"
	case *parse.ArgApply:
		return "argument list application"
	case *parse.Compose:
		return "composition"
	case *parse.Nominal:
		return "nominalized function"
	}
	return fmt.Sprintf("%T", n)
}
