// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

// verbs is the verb alphabet, indexed by Verb.
// Both parsing (VerbOf) and printing (Verb.String) use it.
const verbs = "!#$%&*+,-.:<=>?@^_|~"

// Verb identifies one of the twenty primitive verbs.
type Verb uint8

const (
	Bang     Verb = iota // !
	Hash                 // #
	Dollar               // $
	Percent              // %
	Amp                  // &
	Star                 // *
	Plus                 // +
	Comma                // ,
	Minus                // -
	Dot                  // .
	Colon                // :
	Less                 // <
	Equal                // =
	More                 // >
	Query                // ?
	At                   // @
	Caret                // ^
	Under                // _
	Bar                  // |
	Tilde                // ~
)

// NumVerbs is the size of the verb alphabet.
const NumVerbs = len(verbs)

// VerbOf returns the verb spelled by r.
func VerbOf(r rune) (Verb, bool) {
	if r < 0 || r > 0x7f {
		return 0, false
	}
	i := strings.IndexByte(verbs, byte(r))
	if i < 0 {
		return 0, false
	}
	return Verb(i), true
}

// Rune returns the symbol for the verb.
func (v Verb) Rune() rune {
	return rune(verbs[v])
}

func (v Verb) String() string {
	if int(v) >= NumVerbs {
		return fmt.Sprintf("Verb(%d)", int(v))
	}
	return verbs[v : v+1]
}

// Adverb identifies one of the adverbs. Each of / \ ' has a
// colon-suffixed form, and \ and ' have a form written after a space.
type Adverb uint8

const (
	Over      Adverb = iota // /
	Scan                    // \
	Each                    // '
	EachRight               // /:
	EachLeft                // \:
	EachPrior               // ':
	SpaceScan               // space then \
	SpaceEach               // space then '
)

// adverbs is the display table, indexed by Adverb.
var adverbs = [...]string{
	Over:      "/",
	Scan:      `\`,
	Each:      "'",
	EachRight: "/:",
	EachLeft:  `\:`,
	EachPrior: "':",
	SpaceScan: ` \`,
	SpaceEach: " '",
}

// IsAdverbRune reports whether r begins an adverb.
func IsAdverbRune(r rune) bool {
	return r == '/' || r == '\\' || r == '\''
}

// AdverbOf returns the adverb spelled by r. Colon reports that r is
// followed by ':'; spaced reports that r follows whitespace. The colon
// form wins over the spaced form, and / has no spaced form.
func AdverbOf(r rune, colon, spaced bool) (Adverb, bool) {
	var a Adverb
	switch r {
	case '/':
		a = Over
	case '\\':
		a = Scan
	case '\'':
		a = Each
	default:
		return 0, false
	}
	switch {
	case colon:
		a += EachRight - Over
	case spaced && a == Scan:
		a = SpaceScan
	case spaced && a == Each:
		a = SpaceEach
	}
	return a, true
}

func (a Adverb) String() string {
	if int(a) >= len(adverbs) {
		return fmt.Sprintf("Adverb(%d)", int(a))
	}
	return adverbs[a]
}
