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

// Package ast defines the raw (untyped) abstract syntax tree produced by
// the surrounding lexer/parser (out of scope here): identifier references,
// literals, curried application, lambda abstraction, let bindings, and
// modules of top-level lets.
package ast

// Pos is a source position. The lexer/parser populates it; the core only
// threads it through for diagnostics.
type Pos struct {
	Line   int
	Column int
}

// Expr is the base for all raw expression nodes.
type Expr interface {
	ExprName() string
	Position() Pos
}

var (
	_ Expr = (*IdReference)(nil)
	_ Expr = (*IntLiteral)(nil)
	_ Expr = (*BoolLiteral)(nil)
	_ Expr = (*StringLiteral)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Let)(nil)
)

// IdReference is a reference to a named binding: a top-level let, a lambda
// argument, or a prelude builtin.
type IdReference struct {
	Name string
	Pos  Pos
}

func (e *IdReference) ExprName() string { return "IdReference" }
func (e *IdReference) Position() Pos    { return e.Pos }

// IntLiteral is an integer literal.
type IntLiteral struct {
	Value int64
	Pos   Pos
}

func (e *IntLiteral) ExprName() string { return "IntLiteral" }
func (e *IntLiteral) Position() Pos    { return e.Pos }

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Value bool
	Pos   Pos
}

func (e *BoolLiteral) ExprName() string { return "BoolLiteral" }
func (e *BoolLiteral) Position() Pos    { return e.Pos }

// StringLiteral is a string literal.
type StringLiteral struct {
	Value string
	Pos   Pos
}

func (e *StringLiteral) ExprName() string { return "StringLiteral" }
func (e *StringLiteral) Position() Pos    { return e.Pos }

// Apply is curried function application: Func(Args[0])(Args[1])...
// Func is always an identifier reference, never an arbitrary expression --
// this language's surface grammar only applies named things.
type Apply struct {
	Func Expr
	Args []Expr
	Pos  Pos
}

func (e *Apply) ExprName() string { return "Apply" }
func (e *Apply) Position() Pos    { return e.Pos }

// Lambda is an abstraction over one or more arguments.
type Lambda struct {
	ArgNames []string
	Body     Expr
	Pos      Pos
}

func (e *Lambda) ExprName() string { return "Lambda" }
func (e *Lambda) Position() Pos    { return e.Pos }

// Let is a named, possibly-parameterized top-level binding. ArgNames is
// empty for a value binding. DeclaredType is the zero value when the binding
// has no type annotation.
type Let struct {
	Name         string
	ArgNames     []string
	DeclaredType DeclaredType
	Body         Expr
	Pos          Pos
}

func (e *Let) ExprName() string { return "Let" }
func (e *Let) Position() Pos    { return e.Pos }

// DeclaredType is a raw (unresolved) type annotation on a let binding, a
// curried arrow of argument-type names ending in a return-type name. Its
// zero value (empty ReturnTypeName) means the let has no annotation.
type DeclaredType struct {
	ArgTypeNames []string
	ReturnTypeName string
}

// HasAnnotation reports whether a DeclaredType carries an actual
// annotation (as opposed to the zero value, meaning "no annotation").
func (d DeclaredType) HasAnnotation() bool { return d.ReturnTypeName != "" }

// Module is a module of top-level let bindings in declaration order.
type Module struct {
	Name string
	Lets []*Let
	Pos  Pos
}

func (e *Module) ExprName() string { return "Module" }
func (e *Module) Position() Pos    { return e.Pos }
