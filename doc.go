// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
K is the front end of an interpreter for a terse array language in the
K and APL family. It reads lines of source, parses each into a syntax
tree, and compiles the tree to bytecode. Only literals compile so far;
any other construct is reported as not yet supported.

Usage:

	k [-e] [-prompt=str] [-debug=names] [file ...]

With -e, the arguments are parsed as a single line. Otherwise each file
is read in turn, or, with no files, the standard input. On a terminal
the input is read with line editing and history.

The -debug flag takes a comma-separated list of names:

	tokens   print each item as it is read
	parse    print the syntax tree of each line (the default)
	compile  print the function compiled from each line

# Syntax

A line holds statements separated by semicolons or newlines. A statement
is a sequence of items:

	0-9                 a one-digit integer
	abc, x1             a variable; a letter then letters and digits
	! # $ % & * + , - . : < = > ? @ ^ _ | ~
	                    a verb; followed by a colon, a monadic verb
	/ \ '               an adverb; /: \: ': are distinct adverbs, as are
	                    \ and ' written after a space
	(a;b;c)             a list; (a) is a, made a value if it is a function
	[a;b;c]             a sequence, or an argument list when applied
	{a;b;c}             a function; its parameters are x, y and z as used

Statements evaluate right to left, so 2+3*4 is 2+(3*4), except that an
adverb modifies the verb to its left first (+/3 applies +/ to 3), and
adjacent verbs compose. The colon verb applied to a variable on its
left is assignment: a:1.

In the syntax tree printed by -debug=parse,

	(f x)             f applied to x
	(x f y)           f applied to x and y
	(f[a; b])         f applied to the argument list a; b
	<assign a x>      assignment of x to a
	<partial x f>     x awaiting the rest of f
	<adverb f a>      f modified by adverb a
	<compose f g>     composition of f and g
	<noun f>          function f used as a value
	<list a; b>       a list
	[a; b]            a sequence
	{a; b}            a function
*/
package main
