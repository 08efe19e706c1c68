// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a line of k source into a syntax tree.
//
// Items are read left to right, one node per item, with brackets
// parsed recursively. The items of each expression are then resolved
// into one node by a tape (see tape.go) that compares the pull of
// adjacent pairs of categories (see lattice.go) and combines the
// winning pair with bind (see bind.go). The result is the right-to-left
// order of the APL family, except that adverbs and verb trains bind
// to their neighbours first.
package parse // import "github.com/arraylang/k/parse"

import (
	"fmt"
	"unicode"

	"github.com/arraylang/k/config"
	"github.com/arraylang/k/scan"
	"github.com/arraylang/k/value"
)

// Parser parses lines of source. It holds only configuration,
// so one Parser may be used for any number of lines.
type Parser struct {
	conf *config.Config
}

// NewParser returns a Parser using the configuration, which may be nil.
func NewParser(conf *config.Config) *Parser {
	return &Parser{conf: conf}
}

// Parse parses src, returning a Seq of its top-level statements.
// A nil Parser is valid and parses without tracing.
func (p *Parser) Parse(src string) (root *Seq, err error) {
	defer func() {
		if e := recover(); e != nil {
			if e, ok := e.(*Error); ok {
				root, err = nil, e
				return
			}
			panic(e)
		}
	}()
	s := &state{cur: scan.New(src)}
	if p != nil && p.conf != nil && p.conf.Debug("tokens") {
		s.conf = p.conf
	}
	return s.file(), nil
}

// Parse parses src with a default Parser.
func Parse(src string) (*Seq, error) {
	return (*Parser)(nil).Parse(src)
}

// state is the state of one call to Parse.
type state struct {
	cur  *scan.Cursor
	conf *config.Config // Non-nil only if tracing items.
}

func (s *state) errorf(kind ErrorKind, closer rune) {
	panic(&Error{
		Kind:   kind,
		Char:   s.cur.Peek(),
		Pos:    s.cur.Pos(),
		Closer: closer,
	})
}

// file:
//
//	expr [sep expr]...
func (s *state) file() *Seq {
	var stmts []Node
	for {
		s.cur.SkipSpace()
		if s.cur.Peek() == scan.EOF {
			break
		}
		stmts = append(stmts, s.expr(scan.EOF))
	}
	if len(stmts) == 0 {
		s.errorf(EmptyExpression, scan.EOF)
	}
	return &Seq{Stmts: stmts}
}

// block parses statements up to and including closer.
//
//	block:
//		[expr [sep expr]...] closer
func (s *state) block(closer rune) []Node {
	var stmts []Node
	for {
		s.cur.SkipSpace()
		switch s.cur.Peek() {
		case scan.EOF:
			s.errorf(UnexpectedEndOfInput, closer)
		case closer:
			s.cur.Next()
			return stmts
		}
		stmts = append(stmts, s.expr(closer))
	}
}

// expr reads items up to a separator, which it consumes, or the
// closer, which it does not, and resolves them into one node.
//
//	expr:
//		item [item]...
func (s *state) expr(closer rune) Node {
	var items []Node
	for {
		s.cur.SkipBlanks()
		c := s.cur.Peek()
		if c == ';' || c == '\n' {
			s.cur.Next()
			break
		}
		if c == closer {
			break
		}
		items = append(items, s.item(closer))
	}
	switch len(items) {
	case 0:
		s.errorf(EmptyExpression, closer)
	case 1:
		return items[0]
	}
	return newTape(items).resolve()
}

// item reads one item. Closer is the bracket being waited for, if any.
func (s *state) item(closer rune) Node {
	start := s.cur.Pos()
	n := s.item1(closer)
	if s.conf != nil {
		fmt.Fprintf(s.conf.Output(), "item %d: %s %s\n", start, Classify(n), n)
	}
	return n
}

func (s *state) item1(closer rune) Node {
	c := s.cur.Peek()
	switch {
	case c == scan.EOF:
		s.errorf(UnexpectedEndOfInput, closer)
	case c == '(':
		s.cur.Next()
		items := s.block(')')
		if len(items) == 1 {
			return nominalize(items[0])
		}
		return &ListLit{Items: items}
	case c == '[':
		s.cur.Next()
		return &Seq{Stmts: s.block(']')}
	case c == '{':
		s.cur.Next()
		return &FuncLit{Body: &Seq{Stmts: s.block('}')}}
	case value.IsAdverbRune(c):
		return s.adverb()
	case isDigit(c):
		s.cur.Next()
		return &Literal{Value: value.Int(c - '0')}
	case isLetter(c):
		return &VarRef{Name: s.name()}
	}
	if v, ok := value.VerbOf(c); ok {
		s.cur.Next()
		if s.cur.Peek() == ':' {
			s.cur.Next()
			return &MonadRef{Verb: v}
		}
		return &VerbRef{Verb: v}
	}
	s.errorf(UnexpectedCharacter, scan.EOF)
	return nil
}

func (s *state) adverb() Node {
	c := s.cur.Peek()
	spaced := s.cur.AfterSpace()
	s.cur.Next()
	colon := s.cur.Peek() == ':'
	if colon {
		s.cur.Next()
	}
	a, _ := value.AdverbOf(c, colon, spaced)
	return &AdverbRef{Adverb: a}
}

// name reads an identifier: a letter followed by letters and digits.
func (s *state) name() string {
	var b []rune
	for c := s.cur.Peek(); isLetter(c) || isDigit(c); c = s.cur.Peek() {
		b = append(b, c)
		s.cur.Next()
	}
	return string(b)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}
