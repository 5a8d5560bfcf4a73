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

// Package lift implements closure lifting: rewriting partial applications
// in a typed module into fresh top-level helper bindings, so that
// downstream code generation can emit plain callable methods instead of
// closure objects.
package lift

import (
	"strconv"

	"github.com/dogedapp/fen/ast"
	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/typedast"
	"github.com/dogedapp/fen/types"
)

// Counter tracks the independent, monotonically increasing name counters
// used while lifting a single source let: one for synthesised built-in
// wrappers ($lambda$), one for synthesised curry helpers ($curied$).
type Counter struct {
	lambda int
	curied int
}

// NextLambda returns the next $lambda$ suffix and advances the counter.
func (c *Counter) NextLambda() int {
	n := c.lambda
	c.lambda++
	return n
}

// NextCurried returns the next $curied$ suffix and advances the counter.
func (c *Counter) NextCurried() int {
	n := c.curied
	c.curied++
	return n
}

// Lift returns a module with the same named lets, each followed by any
// helper lets synthesised while lifting its body. Counters are scoped to a
// single source let: lifting does not share $lambda$/$curied$ numbering
// across sibling lets.
func Lift(mod *typedast.Module) *typedast.Module {
	lets := make([]*typedast.Let, 0, len(mod.Lets))
	for _, l := range mod.Lets {
		c := &Counter{}
		var helpers []*typedast.Let
		rewritten := &typedast.Let{
			Name:     l.Name,
			ArgNames: l.ArgNames,
			ArgTypes: l.ArgTypes,
			Body:     liftExpr(l.Body, c, &helpers, mod.Name, l.Name),
			Typ:      l.Typ,
			Pos:      l.Pos,
		}
		lets = append(lets, rewritten)
		lets = append(lets, helpers...)
	}
	return &typedast.Module{Name: mod.Name, Lets: lets, Pos: mod.Pos}
}

func liftExpr(e typedast.Expr, c *Counter, helpers *[]*typedast.Let, module, enclosing string) typedast.Expr {
	switch e := e.(type) {
	case *typedast.IdReference, *typedast.IntLiteral, *typedast.BoolLiteral, *typedast.StringLiteral:
		return e

	case *typedast.Apply:
		if ref, ok := e.Func.(*typedast.IdReference); ok {
			if rewritten := liftApply(e, ref, c, helpers, module, enclosing); rewritten != nil {
				return rewritten
			}
		}
		out := typedast.CopyExpr(e).(*typedast.Apply)
		out.Func = liftExpr(e.Func, c, helpers, module, enclosing)
		for i, a := range e.Args {
			out.Args[i] = liftExpr(a, c, helpers, module, enclosing)
		}
		return out

	case *typedast.Lambda:
		out := typedast.CopyExpr(e).(*typedast.Lambda)
		out.Body = liftExpr(e.Body, c, helpers, module, enclosing)
		return out

	case *typedast.Let:
		out := typedast.CopyExpr(e).(*typedast.Let)
		out.Body = liftExpr(e.Body, c, helpers, module, enclosing)
		return out
	}
	return e
}

// liftApply recognises the two partial-application patterns on e, whose
// callee is ref. It returns the rewritten node, or nil if e is not a
// partial application that this pass rewrites (pattern 3: the caller
// should recurse structurally instead).
func liftApply(e *typedast.Apply, ref *typedast.IdReference, c *Counter, helpers *[]*typedast.Let, module, enclosing string) typedast.Expr {
	argTypes, _ := types.DeconstructArgs(ref.Typ)
	k := len(argTypes)
	n := len(e.Args)
	if n >= k {
		return nil
	}

	if ref.Symbol.Location.Kind == symtab.BuiltIn {
		return liftBuiltin(e, ref, argTypes, c, helpers, module, enclosing)
	}
	if n+1 < k {
		return liftCurried(e, ref, c, helpers, module, enclosing, n+1)
	}
	return nil
}

// liftBuiltin handles pattern 1: a partial application of a built-in.
func liftBuiltin(e *typedast.Apply, ref *typedast.IdReference, argTypes []types.Type, c *Counter, helpers *[]*typedast.Let, module, enclosing string) typedast.Expr {
	_, retType := types.DeconstructArgs(ref.Typ)
	name := enclosing + "$lambda$" + strconv.Itoa(c.NextLambda())

	params, paramRefs := freshParams(argTypes, e.Pos)
	body := &typedast.Apply{
		Func: typedast.CopyExpr(ref).(*typedast.IdReference),
		Args: paramRefs,
		Typ:  retType,
		Pos:  e.Pos,
	}
	helper := &typedast.Let{Name: name, ArgNames: params, ArgTypes: argTypes, Body: body, Typ: ref.Typ, Pos: e.Pos}
	*helpers = append([]*typedast.Let{helper}, *helpers...)

	args := make([]typedast.Expr, len(e.Args))
	for i, a := range e.Args {
		args[i] = liftExpr(a, c, helpers, module, enclosing)
	}
	helperRef := staticMethodRef(module, name, helper.Typ, argTypes, retType, e.Pos)
	return &typedast.Apply{Func: helperRef, Args: args, Typ: e.Typ, Pos: e.Pos}
}

// liftCurried handles pattern 2: a partial application missing more than
// one argument. newLen is len(e.Args)+1: the depth lifting peels from
// ref's type to fix the helper's own arity.
func liftCurried(e *typedast.Apply, ref *typedast.IdReference, c *Counter, helpers *[]*typedast.Let, module, enclosing string, newLen int) typedast.Expr {
	argTypes, residual, ok := types.DeconstructArgsK(ref.Typ, newLen)
	if !ok {
		return nil
	}
	name := enclosing + "$curied$" + strconv.Itoa(c.NextCurried())

	params, paramRefs := freshParams(argTypes, e.Pos)
	innerBody := &typedast.Apply{
		Func: typedast.CopyExpr(ref).(*typedast.IdReference),
		Args: paramRefs,
		Typ:  residual,
		Pos:  e.Pos,
	}
	helperTyp := types.FunctionN(residual, argTypes...)
	helper := &typedast.Let{Name: name, ArgNames: params, ArgTypes: argTypes, Body: innerBody, Typ: helperTyp, Pos: e.Pos}
	helper.Body = liftExpr(helper.Body, c, helpers, module, enclosing)
	*helpers = append([]*typedast.Let{helper}, *helpers...)

	args := make([]typedast.Expr, len(e.Args))
	for i, a := range e.Args {
		args[i] = liftExpr(a, c, helpers, module, enclosing)
	}
	helperRef := staticMethodRef(module, name, helperTyp, argTypes, residual, e.Pos)
	return &typedast.Apply{Func: helperRef, Args: args, Typ: e.Typ, Pos: e.Pos}
}

func freshParams(argTypes []types.Type, pos ast.Pos) ([]string, []typedast.Expr) {
	params := make([]string, len(argTypes))
	refs := make([]typedast.Expr, len(argTypes))
	for i, t := range argTypes {
		params[i] = "arg" + strconv.Itoa(i)
		sym := symtab.Symbol{Name: params[i], Type: t, Location: symtab.Location{Kind: symtab.Argument}}
		refs[i] = &typedast.IdReference{Name: params[i], Symbol: sym, Typ: t, Pos: pos}
	}
	return params, refs
}

func staticMethodRef(module, name string, typ types.Type, argTypes []types.Type, retType types.Type, pos ast.Pos) *typedast.IdReference {
	sym := symtab.Symbol{
		Name: name,
		Type: typ,
		Location: symtab.Location{
			Kind:       symtab.StaticMethod,
			Module:     module,
			Method:     name,
			ArgTypes:   argTypes,
			ReturnType: retType,
		},
	}
	return &typedast.IdReference{Name: name, Symbol: sym, Typ: typ, Pos: pos}
}
