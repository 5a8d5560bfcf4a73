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

package subst_test

import (
	"testing"

	"github.com/dogedapp/fen/subst"
	"github.com/dogedapp/fen/types"
)

func TestPruneUnboundVariableReturnsItself(t *testing.T) {
	s := subst.New()
	var gen types.VarGen
	v := gen.New()
	if got := s.Prune(v); got != v {
		t.Errorf("expected Prune of an unbound variable to return it unchanged, got %v", got)
	}
}

func TestPruneChasesBindingChain(t *testing.T) {
	s := subst.New()
	var gen types.VarGen
	a, b := gen.New(), gen.New()
	intT := &types.Const{Name: "Int"}

	s.Bind(a.Id(), b)
	s.Bind(b.Id(), intT)

	if got := s.Prune(a); got != intT {
		t.Errorf("Prune(a) = %v, want %v", got, intT)
	}
}

func TestRecursivePruneRebuildsConstructorArgs(t *testing.T) {
	s := subst.New()
	var gen types.VarGen
	v := gen.New()
	intT := &types.Const{Name: "Int"}
	s.Bind(v.Id(), intT)

	listOfV := &types.Const{Name: "List", Args: []types.Type{v}}
	got := s.RecursivePrune(listOfV)

	c, ok := got.(*types.Const)
	if !ok || c.Name != "List" || len(c.Args) != 1 || c.Args[0] != intT {
		t.Fatalf("RecursivePrune did not resolve the nested variable: %v", got)
	}
}

func TestRecursivePruneQualifiedType(t *testing.T) {
	s := subst.New()
	var gen types.VarGen
	v := gen.New()
	boolT := &types.Const{Name: "Bool"}
	s.Bind(v.Id(), boolT)

	q := &types.Qualified{Predicate: &types.Predicate{Name: "Eq", Args: []types.Type{v}}, Underlying: v}
	got := s.RecursivePrune(q)

	qt, ok := got.(*types.Qualified)
	if !ok || qt.Underlying != boolT {
		t.Fatalf("RecursivePrune did not resolve a qualified type's underlying type: %v", got)
	}
}

func TestClearRemovesAllBindings(t *testing.T) {
	s := subst.New()
	var gen types.VarGen
	v := gen.New()
	s.Bind(v.Id(), &types.Const{Name: "Int"})
	if s.Len() != 1 {
		t.Fatalf("expected one binding before Clear, got %d", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected zero bindings after Clear, got %d", s.Len())
	}
	if got := s.Prune(v); got != v {
		t.Errorf("expected a cleared store to no longer resolve %v, got %v", v, got)
	}
}
