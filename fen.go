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

// Package fen types modules of a small ML-family language: top-level let
// bindings, lambdas, curried application, and identifier references,
// against a prelude of built-in symbols.
package fen

import (
	"fmt"

	"github.com/dogedapp/fen/ast"
	"github.com/dogedapp/fen/construct"
	"github.com/dogedapp/fen/diag"
	"github.com/dogedapp/fen/subst"
	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/typedast"
	"github.com/dogedapp/fen/types"
	"github.com/dogedapp/fen/unify"
)

// Environment holds the state threaded through one typing run: the current
// scope frame, the substitution store, and the fresh-variable generator. An
// Environment is not safe for concurrent use; callers typing independent
// modules concurrently should construct one Environment per goroutine.
type Environment struct {
	Scope *symtab.Frame
	Subst *subst.Store
	Vars  types.VarGen

	unifier *unify.Unifier
}

// NewEnvironment constructs an Environment rooted at the given prelude
// frame (see construct.LoadPrelude).
func NewEnvironment(prelude *symtab.Frame) *Environment {
	env := &Environment{
		Scope: prelude,
		Subst: subst.New(),
	}
	env.unifier = unify.New(env.Subst)
	return env
}

// TypeModule types every let binding in mod, in declaration order, against
// prelude. Each top-level binding is typed in its own substitution scope:
// the store is cleared between bindings so unification failures or
// bindings-with-holes in one let cannot leak fresh-variable refinements
// into the next. Once a let is typed and pruned, a symbol for it is pushed
// into the module's scope so later lets may reference it -- forward
// references and mutual recursion between top-level lets are not
// supported, only reference to an already-typed predecessor.
func TypeModule(prelude *symtab.Frame, mod *ast.Module) (*typedast.Module, error) {
	env := NewEnvironment(prelude)
	lets := make([]*typedast.Let, 0, len(mod.Lets))
	for _, l := range mod.Lets {
		typed, err := env.typeLet(l)
		if err != nil {
			return nil, err
		}
		pruneExpr(env.Subst, typed)
		lets = append(lets, typed)
		env.Subst.Clear()

		sym := symtab.Symbol{
			Name: typed.Name,
			Type: typed.Typ,
			Location: symtab.Location{
				Kind:   symtab.StaticMethod,
				Module: mod.Name,
				Method: typed.Name,
			},
		}
		env.Scope = env.Scope.Push([]symtab.Symbol{sym})
	}
	return &typedast.Module{Name: mod.Name, Lets: lets, Pos: mod.Pos}, nil
}

// TypeExpr types a single expression against prelude, outside of any
// module. It is provided for callers (tests, REPL-style tools) that want
// to type one expression without constructing a surrounding module.
func TypeExpr(prelude *symtab.Frame, e ast.Expr) (typedast.Expr, types.Type, error) {
	env := NewEnvironment(prelude)
	typed, err := env.typeExpr(e)
	if err != nil {
		return nil, nil, err
	}
	return typed, env.Subst.RecursivePrune(typed.Type()), nil
}

func (env *Environment) typeLet(l *ast.Let) (*typedast.Let, error) {
	argTypes := make([]types.Type, len(l.ArgNames))
	syms := make([]symtab.Symbol, len(l.ArgNames))
	for i, name := range l.ArgNames {
		v := env.Vars.New()
		argTypes[i] = v
		syms[i] = symtab.Symbol{Name: name, Type: v, Location: symtab.Location{Kind: symtab.Argument}}
	}

	outer := env.Scope
	if len(syms) > 0 {
		env.Scope = env.Scope.Push(syms)
	}
	body, err := env.typeExpr(l.Body)
	env.Scope = outer
	if err != nil {
		return nil, err
	}

	letType := types.FunctionN(body.Type(), argTypes...)
	if l.DeclaredType.HasAnnotation() {
		declared, err := env.declaredType(l.DeclaredType, l.Pos)
		if err != nil {
			return nil, err
		}
		if _, err := env.unifier.Unify(declared, letType, l.Pos); err != nil {
			return nil, err
		}
	}

	return &typedast.Let{
		Name:     l.Name,
		ArgNames: l.ArgNames,
		ArgTypes: argTypes,
		Body:     body,
		Typ:      letType,
		Pos:      l.Pos,
	}, nil
}

// declaredType resolves a raw DeclaredType annotation to a types.Type,
// looking up each named type as a prelude primitive.
func (env *Environment) declaredType(d ast.DeclaredType, pos ast.Pos) (types.Type, error) {
	ret, err := namedDeclaredType(d.ReturnTypeName)
	if err != nil {
		return nil, diag.New(diag.UnknownSymbol, pos, err.Error())
	}
	args := make([]types.Type, len(d.ArgTypeNames))
	for i, n := range d.ArgTypeNames {
		t, err := namedDeclaredType(n)
		if err != nil {
			return nil, diag.New(diag.UnknownSymbol, pos, err.Error())
		}
		args[i] = t
	}
	return types.FunctionN(ret, args...), nil
}

func namedDeclaredType(name string) (types.Type, error) {
	switch name {
	case "Int":
		return construct.Int(), nil
	case "Bool":
		return construct.Bool(), nil
	case "String":
		return construct.String(), nil
	}
	return nil, fmt.Errorf("unknown declared type name %s", name)
}

func (env *Environment) typeExpr(e ast.Expr) (typedast.Expr, error) {
	switch e := e.(type) {
	case *ast.IntLiteral:
		return &typedast.IntLiteral{Value: e.Value, Typ: construct.Int(), Pos: e.Pos}, nil

	case *ast.BoolLiteral:
		return &typedast.BoolLiteral{Value: e.Value, Typ: construct.Bool(), Pos: e.Pos}, nil

	case *ast.StringLiteral:
		return &typedast.StringLiteral{Value: e.Value, Typ: construct.String(), Pos: e.Pos}, nil

	case *ast.IdReference:
		return env.typeIdReference(e)

	case *ast.Lambda:
		return env.typeLambda(e)

	case *ast.Apply:
		return env.typeApply(e)

	case *ast.Let:
		nested, err := env.typeLet(e)
		if err != nil {
			return nil, err
		}
		return nested, nil
	}
	return nil, diag.New(diag.UnknownSymbol, e.Position(), "unhandled expression kind")
}

func (env *Environment) typeIdReference(e *ast.IdReference) (typedast.Expr, error) {
	sym, ok := env.Scope.Lookup(e.Name)
	if !ok {
		return nil, diag.New(diag.UnknownSymbol, e.Pos, "undefined symbol "+e.Name)
	}
	return &typedast.IdReference{Name: e.Name, Symbol: sym, Typ: sym.Type, Pos: e.Pos}, nil
}

func (env *Environment) typeLambda(e *ast.Lambda) (typedast.Expr, error) {
	argTypes := make([]types.Type, len(e.ArgNames))
	syms := make([]symtab.Symbol, len(e.ArgNames))
	for i, name := range e.ArgNames {
		v := env.Vars.New()
		argTypes[i] = v
		syms[i] = symtab.Symbol{Name: name, Type: v, Location: symtab.Location{Kind: symtab.Argument}}
	}

	outer := env.Scope
	env.Scope = env.Scope.Push(syms)
	body, err := env.typeExpr(e.Body)
	env.Scope = outer
	if err != nil {
		return nil, err
	}

	return &typedast.Lambda{
		ArgNames: e.ArgNames,
		ArgTypes: argTypes,
		Body:     body,
		Typ:      types.FunctionN(body.Type(), argTypes...),
		Pos:      e.Pos,
	}, nil
}

// typeApply types curried application Func(Args[0])(Args[1])... by typing
// Func, then unifying its type against a fresh Function chain shaped by
// the supplied arguments, peeling one arrow per argument.
func (env *Environment) typeApply(e *ast.Apply) (typedast.Expr, error) {
	fn, err := env.typeExpr(e.Func)
	if err != nil {
		return nil, err
	}

	args := make([]typedast.Expr, len(e.Args))
	argTypes := make([]types.Type, len(e.Args))
	for i, a := range e.Args {
		typed, err := env.typeExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = typed
		argTypes[i] = typed.Type()
	}

	result := env.Vars.New()
	wanted := types.FunctionN(result, argTypes...)
	if _, err := env.unifier.Unify(fn.Type(), wanted, e.Pos); err != nil {
		if derr, ok := err.(*diag.Error); ok && derr.Kind == diag.TypeMismatch {
			if arrows, _ := types.DeconstructArgs(env.Subst.RecursivePrune(fn.Type())); len(arrows) < len(e.Args) {
				return nil, diag.New(diag.NotAFunction, e.Pos, "callee applied to more arguments than its type accepts")
			}
		}
		return nil, err
	}

	return &typedast.Apply{Func: fn, Args: args, Typ: result, Pos: e.Pos}, nil
}

// pruneExpr resolves every node's type through the substitution store,
// recursively. It is applied to each top-level let immediately after
// typing it, while the store still holds that let's bindings (the store is
// cleared between sibling lets so inference does not leak across them).
func pruneExpr(store *subst.Store, e typedast.Expr) {
	switch e := e.(type) {
	case *typedast.IdReference:
		e.Typ = store.RecursivePrune(e.Typ)
	case *typedast.IntLiteral:
		e.Typ = store.RecursivePrune(e.Typ)
	case *typedast.BoolLiteral:
		e.Typ = store.RecursivePrune(e.Typ)
	case *typedast.StringLiteral:
		e.Typ = store.RecursivePrune(e.Typ)
	case *typedast.Apply:
		e.Typ = store.RecursivePrune(e.Typ)
		pruneExpr(store, e.Func)
		for _, a := range e.Args {
			pruneExpr(store, a)
		}
	case *typedast.Lambda:
		e.Typ = store.RecursivePrune(e.Typ)
		for i, t := range e.ArgTypes {
			e.ArgTypes[i] = store.RecursivePrune(t)
		}
		pruneExpr(store, e.Body)
	case *typedast.Let:
		e.Typ = store.RecursivePrune(e.Typ)
		for i, t := range e.ArgTypes {
			e.ArgTypes[i] = store.RecursivePrune(t)
		}
		pruneExpr(store, e.Body)
	}
}
