// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import "testing"

func TestPeekNext(t *testing.T) {
	c := New("aé")
	if r := c.Peek(); r != 'a' {
		t.Fatalf("Peek() = %q, want 'a'", r)
	}
	c.Next()
	if r := c.Peek(); r != 'é' {
		t.Fatalf("Peek() = %q, want 'é'", r)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() = %d, want 1", c.Pos())
	}
	c.Next()
	if r := c.Peek(); r != EOF {
		t.Fatalf("Peek() at end = %q, want EOF", r)
	}
	c.Next()
	if r := c.Peek(); r != EOF {
		t.Fatalf("Peek() past end = %q, want EOF", r)
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \t\r\n" {
		if !IsSpace(r) {
			t.Errorf("IsSpace(%q) = false", r)
		}
	}
	for _, r := range "a;\v\f" {
		if IsSpace(r) {
			t.Errorf("IsSpace(%q) = true", r)
		}
	}
	if IsSpace(EOF) {
		t.Errorf("IsSpace(EOF) = true")
	}
}

func TestSkip(t *testing.T) {
	var tests = []struct {
		src    string
		blanks int // position after SkipBlanks
		space  int // position after SkipSpace
	}{
		{"", 0, 0},
		{"x", 0, 0},
		{" \t x", 3, 3},
		{" \r\n x", 2, 4},
		{"\n\n", 0, 2},
		{"   ", 3, 3},
	}
	for _, test := range tests {
		c := New(test.src)
		c.SkipBlanks()
		if c.Pos() != test.blanks {
			t.Errorf("%q: SkipBlanks stopped at %d, want %d", test.src, c.Pos(), test.blanks)
		}
		c = New(test.src)
		c.SkipSpace()
		if c.Pos() != test.space {
			t.Errorf("%q: SkipSpace stopped at %d, want %d", test.src, c.Pos(), test.space)
		}
	}
}

func TestAfterSpace(t *testing.T) {
	c := New("a \\")
	if !c.AfterSpace() {
		t.Errorf("start of input is not after space")
	}
	c.Next()
	if c.AfterSpace() {
		t.Errorf("after 'a' reported as after space")
	}
	c.Next()
	if !c.AfterSpace() {
		t.Errorf("after ' ' not reported as after space")
	}
}
