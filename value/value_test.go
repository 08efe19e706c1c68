// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "testing"

func TestVerbTable(t *testing.T) {
	if NumVerbs != 20 {
		t.Fatalf("NumVerbs = %d, want 20", NumVerbs)
	}
	for i := 0; i < NumVerbs; i++ {
		v := Verb(i)
		got, ok := VerbOf(v.Rune())
		if !ok || got != v {
			t.Errorf("VerbOf(%q) = %v, %t; want %v", v.Rune(), got, ok, v)
		}
		if s := v.String(); s != string(v.Rune()) {
			t.Errorf("Verb(%d).String() = %q, want %q", i, s, string(v.Rune()))
		}
	}
	if Colon.Rune() != ':' || Plus.Rune() != '+' || Tilde.Rune() != '~' {
		t.Errorf("verb constants out of step with the alphabet")
	}
	for _, r := range "a0/\\'()[]{};` \n\"é" {
		if v, ok := VerbOf(r); ok {
			t.Errorf("VerbOf(%q) = %v, want no verb", r, v)
		}
	}
}

func TestAdverbOf(t *testing.T) {
	var tests = []struct {
		r      rune
		colon  bool
		spaced bool
		want   Adverb
		str    string
	}{
		{'/', false, false, Over, "/"},
		{'\\', false, false, Scan, `\`},
		{'\'', false, false, Each, "'"},
		{'/', true, false, EachRight, "/:"},
		{'\\', true, false, EachLeft, `\:`},
		{'\'', true, false, EachPrior, "':"},
		{'/', false, true, Over, "/"},
		{'\\', false, true, SpaceScan, ` \`},
		{'\'', false, true, SpaceEach, " '"},
		{'\\', true, true, EachLeft, `\:`},
	}
	for _, test := range tests {
		a, ok := AdverbOf(test.r, test.colon, test.spaced)
		if !ok || a != test.want {
			t.Errorf("AdverbOf(%q, %t, %t) = %v, %t; want %v", test.r, test.colon, test.spaced, a, ok, test.want)
		}
		if a.String() != test.str {
			t.Errorf("%v.String() = %q, want %q", test.want, a.String(), test.str)
		}
	}
	if _, ok := AdverbOf('+', false, false); ok {
		t.Errorf("AdverbOf('+') succeeded")
	}
}

func TestListString(t *testing.T) {
	var tests = []struct {
		v    Value
		want string
	}{
		{Int(7), "7"},
		{Int(-3), "-3"},
		{NewList(), "()"},
		{NewList(Int(1), Int(2), Int(3)), "(1;2;3)"},
		{NewList(Int(1), NewList(Int(2), Int(3))), "(1;(2;3))"},
	}
	for _, test := range tests {
		if s := test.v.String(); s != test.want {
			t.Errorf("String() = %q, want %q", s, test.want)
		}
	}
}

func TestListShared(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	l := NewList(elems...)
	elems[0] = Int(9)
	if l.At(0) != Int(1) {
		t.Errorf("NewList did not copy its input")
	}
	c := l
	got := c.Elems()
	got[1] = Int(9)
	if l.At(1) != Int(2) || c.At(1) != Int(2) {
		t.Errorf("Elems exposed list storage")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}
