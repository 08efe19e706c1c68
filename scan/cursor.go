// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan provides the Cursor the parser reads its input through.
package scan // import "github.com/arraylang/k/scan"

// EOF is returned by Peek at end of input.
const EOF rune = -1

// A Cursor holds a line of input and a position within it.
// Reading past the end is not an error; Peek reports EOF.
type Cursor struct {
	src []rune
	pos int
}

// New returns a Cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: []rune(src)}
}

// Peek returns the rune at the cursor, or EOF.
func (c *Cursor) Peek() rune {
	if c.pos >= len(c.src) {
		return EOF
	}
	return c.src[c.pos]
}

// Next advances past the current rune.
func (c *Cursor) Next() {
	c.pos++
}

// Pos returns the offset, in runes, of the cursor.
func (c *Cursor) Pos() int {
	return c.pos
}

// IsSpace reports whether r is a space, tab, carriage return or newline.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// isBlank is IsSpace without newline, which separates statements.
func isBlank(r rune) bool {
	return r != '\n' && IsSpace(r)
}

// SkipSpace advances past a run of white space, newlines included.
func (c *Cursor) SkipSpace() {
	for IsSpace(c.Peek()) {
		c.Next()
	}
}

// SkipBlanks advances past a run of white space, stopping at a newline.
func (c *Cursor) SkipBlanks() {
	for isBlank(c.Peek()) {
		c.Next()
	}
}

// AfterSpace reports whether the rune before the cursor is white space.
// The start of input counts as white space.
func (c *Cursor) AfterSpace() bool {
	return c.pos == 0 || c.pos <= len(c.src) && IsSpace(c.src[c.pos-1])
}
