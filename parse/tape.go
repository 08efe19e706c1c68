// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "fmt"

// A tape resolves the items of one expression into a single node.
//
// The items sit in slots. Binding a slot with its right neighbour
// stores the result in the slot and leaves a hole where the neighbour
// was. dist[i] is the distance from slot i to its next live slot, so
// a slot finds its neighbour without scanning over holes; binding adds
// the neighbour's distance to the slot's own.
//
// The cursor i starts at the second-to-last slot and only moves left.
// At each step the pair (i-1, i) is compared with the pair (i, right).
// If the left pair pulls harder, the cursor defers to it and moves
// left; otherwise the right pair binds. Once the cursor reaches the
// first slot, the survivors are bound left to right.
type tape struct {
	slots []Node
	dist  []int
	i     int
}

func newTape(items []Node) *tape {
	if len(items) < 2 {
		panic(fmt.Sprintf("parse: tape of %d items", len(items)))
	}
	t := &tape{
		slots: items,
		dist:  make([]int, len(items)),
		i:     len(items) - 2,
	}
	for i := range t.dist {
		t.dist[i] = 1
	}
	return t
}

// right returns the index of the cursor's live neighbour.
func (t *tape) right() int {
	return t.i + t.dist[t.i]
}

// at returns the node in slot i, which must be live.
func (t *tape) at(i int) Node {
	n := t.slots[i]
	if n == nil {
		panic(fmt.Sprintf("parse: tape slot %d is empty", i))
	}
	return n
}

// left moves the cursor one slot left.
func (t *tape) left() {
	if t.i == 0 {
		panic("parse: tape cursor moved past start")
	}
	t.i--
}

// bind binds the cursor's slot with its neighbour.
func (t *tape) bind() {
	r := t.right()
	t.slots[t.i] = bind(t.at(t.i), t.at(r))
	t.slots[r] = nil
	t.dist[t.i] += t.dist[r]
	if t.right() >= len(t.slots) {
		t.left()
	}
}

// resolve runs the tape to completion and returns the surviving node.
func (t *tape) resolve() Node {
	for t.i > 0 {
		lc := strength(Classify(t.at(t.i-1)), Classify(t.at(t.i)))
		cr := strength(Classify(t.at(t.i)), Classify(t.at(t.right())))
		if lc > cr {
			t.left()
			continue
		}
		t.bind()
	}
	return t.fold()
}

// fold binds the live slots left to right.
func (t *tape) fold() Node {
	n := t.at(0)
	for r := t.dist[0]; r < len(t.slots); r += t.dist[r] {
		n = bind(n, t.at(r))
	}
	return n
}
