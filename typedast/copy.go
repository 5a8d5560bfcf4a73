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

package typedast

import "github.com/dogedapp/fen/types"

// CopyExpr returns a shallow-field, deep-structure copy of e: every node is
// reallocated, and every child expression is itself copied, but leaf
// payloads (types.Type, symtab.Symbol, strings) are shared. The closure
// lifter mutates a module's shape by substituting new subtrees in place of
// old ones; CopyExpr lets it build the replacement without aliasing the
// typer's original tree.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *IdReference:
		return &IdReference{e.Name, e.Symbol, e.Typ, e.Pos}

	case *IntLiteral:
		return &IntLiteral{e.Value, e.Typ, e.Pos}

	case *BoolLiteral:
		return &BoolLiteral{e.Value, e.Typ, e.Pos}

	case *StringLiteral:
		return &StringLiteral{e.Value, e.Typ, e.Pos}

	case *Apply:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			args[i] = CopyExpr(arg)
		}
		return &Apply{CopyExpr(e.Func), args, e.Typ, e.Pos}

	case *Lambda:
		argTypes := make([]types.Type, len(e.ArgTypes))
		copy(argTypes, e.ArgTypes)
		return &Lambda{e.ArgNames, argTypes, CopyExpr(e.Body), e.Typ, e.Pos}

	case *Let:
		argTypes := make([]types.Type, len(e.ArgTypes))
		copy(argTypes, e.ArgTypes)
		return &Let{e.Name, e.ArgNames, argTypes, CopyExpr(e.Body), e.Typ, e.Pos}

	case *Module:
		lets := make([]*Let, len(e.Lets))
		for i, l := range e.Lets {
			lets[i] = CopyExpr(l).(*Let)
		}
		return &Module{e.Name, lets, e.Pos}
	}
	panic("typedast: unknown expression type " + e.ExprName())
}
