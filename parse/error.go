// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"fmt"

	"github.com/arraylang/k/scan"
)

// ErrorKind classifies a parse error.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnexpectedEndOfInput
	EmptyExpression
)

// Error is the error returned by Parse.
type Error struct {
	Kind   ErrorKind
	Char   rune // The offending character, for UnexpectedCharacter.
	Pos    int  // Offset in runes of the fault.
	Closer rune // The expected closing bracket, or scan.EOF if none.
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character '%c' at offset %d", e.Char, e.Pos)
	case UnexpectedEndOfInput:
		if e.Closer == scan.EOF {
			return "unexpected end of input"
		}
		return fmt.Sprintf("unexpected end of input, expected '%c'", e.Closer)
	case EmptyExpression:
		return "empty expression"
	}
	return fmt.Sprintf("parse error %d at offset %d", e.Kind, e.Pos)
}

// IsIncomplete reports whether err says the input ended inside an open
// bracket, so that more input could complete it.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == UnexpectedEndOfInput && e.Closer != scan.EOF
}
