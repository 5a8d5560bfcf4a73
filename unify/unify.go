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

// Package unify implements two-type unification over a substitution store,
// with an occurs check.
package unify

import (
	"github.com/dogedapp/fen/ast"
	"github.com/dogedapp/fen/diag"
	"github.com/dogedapp/fen/subst"
	"github.com/dogedapp/fen/types"
)

// Unifier unifies pairs of types, mutating an underlying substitution
// store.
type Unifier struct {
	Store *subst.Store
}

// New returns a Unifier backed by store.
func New(store *subst.Store) *Unifier {
	return &Unifier{Store: store}
}

// Unify unifies t1 and t2, returning their unified type. pos is attached to
// any resulting error as the most-specific source position involved.
func (u *Unifier) Unify(t1, t2 types.Type, pos ast.Pos) (types.Type, error) {
	a, b := u.Store.Prune(t1), u.Store.Prune(t2)

	aq, aIsQualified := a.(*types.Qualified)
	bq, bIsQualified := b.(*types.Qualified)
	if aIsQualified || bIsQualified {
		return u.unifyQualified(aq, bq, a, b, pos)
	}

	av, aIsVar := a.(*types.Var)
	bv, bIsVar := b.(*types.Var)

	switch {
	case aIsVar && bIsVar:
		if types.SameVar(av, bv) {
			return a, nil
		}
		// Bind the variable with the larger id to the one with the smaller
		// id: a canonical direction that keeps substitution chains shallow
		// and deterministic.
		if av.Id() < bv.Id() {
			u.Store.Bind(bv.Id(), a)
			return a, nil
		}
		u.Store.Bind(av.Id(), b)
		return b, nil

	case aIsVar:
		return u.bindVar(av, b, pos)

	case bIsVar:
		return u.bindVar(bv, a, pos)
	}

	ac, aIsConst := a.(*types.Const)
	bc, bIsConst := b.(*types.Const)
	if !aIsConst || !bIsConst {
		return nil, diag.New(diag.TypeMismatch, pos, "cannot unify "+types.TypeString(a)+" with "+types.TypeString(b))
	}
	if ac.Name != bc.Name || len(ac.Args) != len(bc.Args) {
		return nil, diag.New(diag.TypeMismatch, pos, "cannot unify "+types.TypeString(a)+" with "+types.TypeString(b))
	}
	args := make([]types.Type, len(ac.Args))
	for i := range ac.Args {
		unified, err := u.Unify(ac.Args[i], bc.Args[i], pos)
		if err != nil {
			return nil, err
		}
		args[i] = unified
	}
	return &types.Const{Name: ac.Name, Args: args}, nil
}

func (u *Unifier) unifyQualified(aq, bq *types.Qualified, a, b types.Type, pos ast.Pos) (types.Type, error) {
	switch {
	case aq != nil && bq != nil:
		if !types.SamePredicate(aq.Predicate, bq.Predicate) {
			return nil, diag.New(diag.ClassUnificationUnsupported, pos,
				"cannot unify qualified types with differing predicates: "+types.TypeString(a)+" and "+types.TypeString(b))
		}
		underlying, err := u.Unify(aq.Underlying, bq.Underlying, pos)
		if err != nil {
			return nil, err
		}
		return &types.Qualified{Predicate: aq.Predicate, Underlying: underlying}, nil

	case aq != nil:
		underlying, err := u.Unify(aq.Underlying, b, pos)
		if err != nil {
			return nil, err
		}
		return &types.Qualified{Predicate: aq.Predicate, Underlying: underlying}, nil

	default: // bq != nil
		underlying, err := u.Unify(a, bq.Underlying, pos)
		if err != nil {
			return nil, err
		}
		return &types.Qualified{Predicate: bq.Predicate, Underlying: underlying}, nil
	}
}

// bindVar binds v to t (v must have already been pruned to an unbound
// variable; t must not itself be a variable). It runs the occurs check
// first.
func (u *Unifier) bindVar(v *types.Var, t types.Type, pos ast.Pos) (types.Type, error) {
	if occurs(u.Store, v, t) {
		return nil, diag.New(diag.RecursiveUnification, pos,
			"type variable "+types.TypeString(v)+" occurs within "+types.TypeString(t))
	}
	u.Store.Bind(v.Id(), t)
	return t, nil
}

// occurs walks t's constructor arguments (recursing into the underlying
// type of a qualified type) looking for v, pruning as it goes.
func occurs(store *subst.Store, v *types.Var, t types.Type) bool {
	t = store.Prune(t)
	switch t := t.(type) {
	case *types.Var:
		return types.SameVar(v, t)
	case *types.Const:
		for _, arg := range t.Args {
			if occurs(store, v, arg) {
				return true
			}
		}
		return false
	case *types.Qualified:
		return occurs(store, v, t.Underlying)
	}
	return false
}
