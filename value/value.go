// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value holds the runtime values produced by the parser
// and the fixed verb and adverb alphabets.
package value // import "github.com/arraylang/k/value"

import (
	"strconv"
	"strings"
)

// Value is a runtime datum: an Int or a List.
// The set is closed; no other package implements Value.
type Value interface {
	String() string

	value()
}

// Int is a signed integer.
type Int int64

func (Int) value() {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// List is an ordered list of values. A List is immutable once built,
// so copies of a List share its elements and copying is O(1).
type List struct {
	elems []Value
}

// NewList returns a List holding the elements. The slice is copied,
// so the caller may reuse it.
func NewList(elems ...Value) List {
	return List{elems: append([]Value(nil), elems...)}
}

func (List) value() {}

// Len returns the number of elements in the list.
func (l List) Len() int {
	return len(l.elems)
}

// At returns the i'th element.
func (l List) At(i int) Value {
	return l.elems[i]
}

// Elems returns a copy of the elements; the list itself cannot be modified.
func (l List) Elems() []Value {
	return append([]Value(nil), l.elems...)
}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range l.elems {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(')')
	return b.String()
}
