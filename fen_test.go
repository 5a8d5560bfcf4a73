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

package fen_test

import (
	"strings"
	"testing"

	fen "github.com/dogedapp/fen"
	"github.com/dogedapp/fen/ast"
	"github.com/dogedapp/fen/construct"
	"github.com/dogedapp/fen/diag"
	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/typedast"
)

func TestTypeExprIntLiteral(t *testing.T) {
	prelude, err := construct.LoadPrelude(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := ast.Pos{Line: 1, Column: 1}
	_, typ, err := fen.TypeExpr(prelude, &ast.IntLiteral{Value: 42, Pos: pos})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ.TypeName() != "Const" {
		t.Errorf("expected an integer literal to type as a Const, got %v", typ)
	}
}

func TestTypeExprUnknownSymbol(t *testing.T) {
	prelude, _ := construct.LoadPrelude(strings.NewReader(""))
	pos := ast.Pos{Line: 2, Column: 3}
	_, _, err := fen.TypeExpr(prelude, &ast.IdReference{Name: "nope", Pos: pos})
	derr, ok := err.(*diag.Error)
	if !ok || derr.Kind != diag.UnknownSymbol {
		t.Fatalf("expected an UnknownSymbol error, got %v", err)
	}
}

func TestTypeModuleInfersLambdaArgumentFromBuiltinUse(t *testing.T) {
	doc := `
builtins:
  - name: add
    args: [Int, Int]
    returns: Int
`
	prelude, err := construct.LoadPrelude(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := ast.Pos{Line: 1, Column: 1}

	// inc x = add x 1
	mod := &ast.Module{
		Name: "M",
		Pos:  pos,
		Lets: []*ast.Let{
			{
				Name:     "inc",
				ArgNames: []string{"x"},
				Body: &ast.Apply{
					Func: &ast.IdReference{Name: "add", Pos: pos},
					Args: []ast.Expr{
						&ast.IdReference{Name: "x", Pos: pos},
						&ast.IntLiteral{Value: 1, Pos: pos},
					},
					Pos: pos,
				},
				Pos: pos,
			},
		},
	}

	typed, err := fen.TypeModule(prelude, mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(typed.Lets) != 1 {
		t.Fatalf("expected 1 let, got %d", len(typed.Lets))
	}
	let := typed.Lets[0]
	if len(let.ArgTypes) != 1 {
		t.Fatalf("expected 1 argument type, got %d", len(let.ArgTypes))
	}
	if let.ArgTypes[0].TypeName() != "Const" {
		t.Errorf("expected x's inferred type to resolve to the Int constant, got %v", let.ArgTypes[0])
	}
}

func TestTypeModuleApplyingNonFunction(t *testing.T) {
	doc := `
builtins:
  - name: zero
    args: []
    returns: Int
`
	prelude, err := construct.LoadPrelude(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := ast.Pos{Line: 5, Column: 1}
	mod := &ast.Module{
		Name: "M",
		Pos:  pos,
		Lets: []*ast.Let{
			{
				Name: "bad",
				Body: &ast.Apply{
					Func: &ast.IdReference{Name: "zero", Pos: pos},
					Args: []ast.Expr{&ast.IntLiteral{Value: 1, Pos: pos}},
					Pos:  pos,
				},
				Pos: pos,
			},
		},
	}
	_, err = fen.TypeModule(prelude, mod)
	derr, ok := err.(*diag.Error)
	if !ok || (derr.Kind != diag.NotAFunction && derr.Kind != diag.TypeMismatch) {
		t.Fatalf("expected a NotAFunction or TypeMismatch error, got %v", err)
	}
}

func TestTypeModuleBindingsDoNotLeakAcrossSiblings(t *testing.T) {
	prelude, _ := construct.LoadPrelude(strings.NewReader(""))
	pos := ast.Pos{Line: 1, Column: 1}
	mod := &ast.Module{
		Name: "M",
		Pos:  pos,
		Lets: []*ast.Let{
			{Name: "id1", ArgNames: []string{"x"}, Body: &ast.IdReference{Name: "x", Pos: pos}, Pos: pos},
			{Name: "id2", ArgNames: []string{"y"}, Body: &ast.IdReference{Name: "y", Pos: pos}, Pos: pos},
		},
	}
	typed, err := fen.TypeModule(prelude, mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(typed.Lets) != 2 {
		t.Fatalf("expected 2 lets, got %d", len(typed.Lets))
	}
}

func TestTypeModuleLaterLetsReferenceEarlierLets(t *testing.T) {
	prelude, _ := construct.LoadPrelude(strings.NewReader(""))
	pos := ast.Pos{Line: 1, Column: 1}
	mod := &ast.Module{
		Name: "M",
		Pos:  pos,
		Lets: []*ast.Let{
			// f x = x
			{Name: "f", ArgNames: []string{"x"}, Body: &ast.IdReference{Name: "x", Pos: pos}, Pos: pos},
			// g x = f x
			{
				Name:     "g",
				ArgNames: []string{"x"},
				Body: &ast.Apply{
					Func: &ast.IdReference{Name: "f", Pos: pos},
					Args: []ast.Expr{&ast.IdReference{Name: "x", Pos: pos}},
					Pos:  pos,
				},
				Pos: pos,
			},
		},
	}

	typed, err := fen.TypeModule(prelude, mod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(typed.Lets) != 2 {
		t.Fatalf("expected 2 lets, got %d", len(typed.Lets))
	}

	g := typed.Lets[1]
	apply, ok := g.Body.(*typedast.Apply)
	if !ok {
		t.Fatalf("expected g's body to be an Apply, got %T", g.Body)
	}
	callee, ok := apply.Func.(*typedast.IdReference)
	if !ok || callee.Name != "f" {
		t.Fatalf("expected g's body to call f, got %v", apply.Func)
	}
	if callee.Symbol.Location.Kind != symtab.StaticMethod || callee.Symbol.Location.Method != "f" {
		t.Errorf("expected f to be resolved as a StaticMethod reference, got %+v", callee.Symbol.Location)
	}
}
