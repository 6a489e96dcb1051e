// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strconv"

	"cogentcore.org/lambdaplot/base/errors"
)

var (
	// ErrSyntax matches every [*LexError] and [*ParseError] with [errors.Is].
	ErrSyntax = errors.New("expr: syntax error")

	// ErrSemantic matches every [*SemanticError] with [errors.Is].
	ErrSemantic = errors.New("expr: semantic error")
)

// LexError is returned when the lexer finds a character that
// cannot start any token.
type LexError struct {
	// Pos is the byte offset of the character.
	Pos int

	// Char is the offending character.
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

func (e *LexError) Is(target error) bool { return target == ErrSyntax }

// ParseError is returned for malformed token sequences.
type ParseError struct {
	// Pos is the byte offset of the token that was found.
	Pos int

	// Expected describes what the parser was looking for.
	Expected string

	// Found describes the token that was found instead.
	Found string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at position %d, found %s", e.Expected, e.Pos, e.Found)
}

func (e *ParseError) Is(target error) bool { return target == ErrSyntax }

// SemanticKind is the kind of a [SemanticError].
type SemanticKind int32

const (
	// UnknownIdentifier is a variable that is neither the
	// parameter nor a known constant.
	UnknownIdentifier SemanticKind = iota

	// UnknownFunction is a call to a function that is not defined.
	UnknownFunction

	// ArityMismatch is a call with the wrong number of arguments.
	ArityMismatch
)

func (k SemanticKind) String() string {
	switch k {
	case UnknownIdentifier:
		return "UnknownIdentifier"
	case UnknownFunction:
		return "UnknownFunction"
	case ArityMismatch:
		return "ArityMismatch"
	}
	return "SemanticKind(" + strconv.Itoa(int(k)) + ")"
}

// SemanticError is returned by [Compile] for trees that parse
// but cannot be bound to a function of the parameter.
type SemanticError struct {
	Kind SemanticKind

	// Name is the identifier or function name.
	Name string

	// Pos is the byte offset of the identifier in the source.
	Pos int

	// Want and Got are the expected and actual argument counts
	// for [ArityMismatch].
	Want, Got int

	// Suggestion is a similar known name, if there is one.
	Suggestion string
}

func (e *SemanticError) Error() string {
	var msg string
	switch e.Kind {
	case UnknownIdentifier:
		msg = fmt.Sprintf("unknown identifier %q at position %d", e.Name, e.Pos)
	case UnknownFunction:
		msg = fmt.Sprintf("unknown function %q at position %d", e.Name, e.Pos)
	case ArityMismatch:
		msg = fmt.Sprintf("function %q at position %d takes %d argument%s, got %d", e.Name, e.Pos, e.Want, plural(e.Want), e.Got)
	default:
		msg = fmt.Sprintf("%v for %q at position %d", e.Kind, e.Name, e.Pos)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *SemanticError) Is(target error) bool { return target == ErrSemantic }

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
