// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package diag defines the positioned, kinded errors surfaced by the typer
// and (in principle, though it introduces none of its own) the closure
// lifter.
package diag

import (
	"strconv"

	"github.com/dogedapp/fen/ast"
)

// Kind identifies a category of typing failure.
type Kind int

const (
	// UnknownSymbol: a referenced name is not in scope.
	UnknownSymbol Kind = iota
	// TypeMismatch: two constructors of different name or arity were
	// required to unify.
	TypeMismatch
	// RecursiveUnification: a type variable would have to occur within
	// itself.
	RecursiveUnification
	// NotAFunction: an apply peeled more arrows than the callee's type
	// contained.
	NotAFunction
	// ClassUnificationUnsupported: two qualified types with different
	// predicates met in unification.
	ClassUnificationUnsupported
	// ScopeUnderflow: an internal invariant break -- popping a scope with
	// no predecessor. Aborts the run.
	ScopeUnderflow
)

func (k Kind) String() string {
	switch k {
	case UnknownSymbol:
		return "UnknownSymbol"
	case TypeMismatch:
		return "TypeMismatch"
	case RecursiveUnification:
		return "RecursiveUnification"
	case NotAFunction:
		return "NotAFunction"
	case ClassUnificationUnsupported:
		return "ClassUnificationUnsupported"
	case ScopeUnderflow:
		return "ScopeUnderflow"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a positioned, kinded typing failure. The first error terminates
// a typing run; no recovery is attempted.
type Error struct {
	Kind    Kind
	Pos     ast.Pos
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + " at " + strconv.Itoa(e.Pos.Line) + ":" + strconv.Itoa(e.Pos.Column) + ": " + e.Message
}

// New constructs a positioned error of the given kind.
func New(kind Kind, pos ast.Pos, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}
