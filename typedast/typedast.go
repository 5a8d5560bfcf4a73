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

// Package typedast defines the typed abstract syntax tree: the output of
// the typer, mirroring package ast's node shapes but with every expression
// carrying its resolved types.Type and every identifier reference carrying
// the symtab.Symbol it resolved to.
package typedast

import (
	"github.com/dogedapp/fen/ast"
	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/types"
)

// Expr is the base for all typed expression nodes.
type Expr interface {
	ExprName() string
	Position() ast.Pos
	Type() types.Type
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

// IdReference is a resolved reference to a named binding.
type IdReference struct {
	Name   string
	Symbol symtab.Symbol
	Typ    types.Type
	Pos    ast.Pos
}

func (e *IdReference) ExprName() string   { return "IdReference" }
func (e *IdReference) Position() ast.Pos  { return e.Pos }
func (e *IdReference) Type() types.Type   { return e.Typ }

// IntLiteral is a resolved integer literal.
type IntLiteral struct {
	Value int64
	Typ   types.Type
	Pos   ast.Pos
}

func (e *IntLiteral) ExprName() string  { return "IntLiteral" }
func (e *IntLiteral) Position() ast.Pos { return e.Pos }
func (e *IntLiteral) Type() types.Type  { return e.Typ }

// BoolLiteral is a resolved boolean literal.
type BoolLiteral struct {
	Value bool
	Typ   types.Type
	Pos   ast.Pos
}

func (e *BoolLiteral) ExprName() string  { return "BoolLiteral" }
func (e *BoolLiteral) Position() ast.Pos { return e.Pos }
func (e *BoolLiteral) Type() types.Type  { return e.Typ }

// StringLiteral is a resolved string literal.
type StringLiteral struct {
	Value string
	Typ   types.Type
	Pos   ast.Pos
}

func (e *StringLiteral) ExprName() string  { return "StringLiteral" }
func (e *StringLiteral) Position() ast.Pos { return e.Pos }
func (e *StringLiteral) Type() types.Type  { return e.Typ }

// Apply is resolved curried function application. Typ is the type of the
// application's result: what remains after peeling len(Args) arrows from
// Func's type, itself a function type for a partial application.
type Apply struct {
	Func Expr
	Args []Expr
	Typ  types.Type
	Pos  ast.Pos
}

func (e *Apply) ExprName() string  { return "Apply" }
func (e *Apply) Position() ast.Pos { return e.Pos }
func (e *Apply) Type() types.Type  { return e.Typ }

// Lambda is a resolved abstraction. ArgTypes runs parallel to ArgNames.
// Typ is the full curried function type over ArgTypes ending in Body's
// type.
type Lambda struct {
	ArgNames []string
	ArgTypes []types.Type
	Body     Expr
	Typ      types.Type
	Pos      ast.Pos
}

func (e *Lambda) ExprName() string  { return "Lambda" }
func (e *Lambda) Position() ast.Pos { return e.Pos }
func (e *Lambda) Type() types.Type  { return e.Typ }

// Let is a resolved top-level binding. ArgTypes runs parallel to ArgNames
// and is empty for a value binding. Typ is the binding's full type: the
// curried function type over ArgTypes ending in Body's type, or simply
// Body's type for a value binding.
type Let struct {
	Name     string
	ArgNames []string
	ArgTypes []types.Type
	Body     Expr
	Typ      types.Type
	Pos      ast.Pos
}

func (e *Let) ExprName() string  { return "Let" }
func (e *Let) Position() ast.Pos { return e.Pos }
func (e *Let) Type() types.Type  { return e.Typ }

// Module is a resolved module of top-level let bindings in declaration
// order.
type Module struct {
	Name string
	Lets []*Let
	Pos  ast.Pos
}

func (e *Module) ExprName() string  { return "Module" }
func (e *Module) Position() ast.Pos { return e.Pos }
func (e *Module) Type() types.Type  { return nil }
