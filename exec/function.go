// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"strings"

	"github.com/arraylang/k/value"
)

// Opcode is a bytecode instruction.
type Opcode uint8

const (
	Trap   Opcode = iota // halt; the zero instruction
	Return               // return x
	XK                   // x: constant[arg]
)

var opNames = [...]string{
	Trap:   "trap",
	Return: "ret",
	XK:     "xk",
}

func (o Opcode) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Opcode(%d)", int(o))
}

// Op is an instruction and its one-byte operand.
type Op struct {
	Code Opcode
	Arg  uint8
}

func (op Op) String() string {
	if op.Code == XK {
		return fmt.Sprintf("%s %d", op.Code, op.Arg)
	}
	return op.Code.String()
}

// Function is the result of compiling a body.
type Function struct {
	Args   []string      // Parameters, a prefix of x y z.
	Locals []string      // Assigned names, in order of first assignment.
	Consts []value.Value // Constant pool.
	Code   []Op
}

// Used for debugging.
func (fn *Function) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "args %v locals %v consts %v code [", fn.Args, fn.Locals, fn.Consts)
	for i, op := range fn.Code {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(op.String())
	}
	b.WriteByte(']')
	return b.String()
}
