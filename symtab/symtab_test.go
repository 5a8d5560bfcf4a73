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

package symtab_test

import (
	"errors"
	"testing"

	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/types"
)

func TestLookupFindsPreludeSymbol(t *testing.T) {
	intT := &types.Const{Name: "Int"}
	root := symtab.NewRoot([]symtab.Symbol{{Name: "zero", Type: intT, Location: symtab.Location{Kind: symtab.BuiltIn}}})

	sym, ok := root.Lookup("zero")
	if !ok {
		t.Fatalf("expected to find prelude symbol %q", "zero")
	}
	if sym.Type != intT {
		t.Errorf("got type %v, want %v", sym.Type, intT)
	}
}

func TestLookupMissingSymbol(t *testing.T) {
	root := symtab.NewRoot(nil)
	if _, ok := root.Lookup("nope"); ok {
		t.Errorf("expected lookup of an undeclared symbol to fail")
	}
}

func TestPushShadowsOuterBinding(t *testing.T) {
	outerT := &types.Const{Name: "Outer"}
	innerT := &types.Const{Name: "Inner"}
	root := symtab.NewRoot([]symtab.Symbol{{Name: "x", Type: outerT}})
	inner := root.Push([]symtab.Symbol{{Name: "x", Type: innerT}})

	sym, ok := inner.Lookup("x")
	if !ok || sym.Type != innerT {
		t.Errorf("expected inner frame's binding to shadow the outer one, got %v, ok=%v", sym.Type, ok)
	}

	popped, err := inner.Pop()
	if err != nil {
		t.Fatalf("unexpected error popping a non-root frame: %v", err)
	}
	sym, ok = popped.Lookup("x")
	if !ok || sym.Type != outerT {
		t.Errorf("expected outer binding to be visible again after Pop, got %v, ok=%v", sym.Type, ok)
	}
}

func TestPopRootReturnsScopeUnderflow(t *testing.T) {
	root := symtab.NewRoot(nil)
	_, err := root.Pop()
	if !errors.Is(err, symtab.ErrScopeUnderflow) {
		t.Errorf("expected ErrScopeUnderflow, got %v", err)
	}
}

func TestLastPushedDuplicateNameWinsWithinAFrame(t *testing.T) {
	t1 := &types.Const{Name: "A"}
	t2 := &types.Const{Name: "B"}
	root := symtab.NewRoot([]symtab.Symbol{{Name: "x", Type: t1}})
	frame := root.Push([]symtab.Symbol{{Name: "x", Type: t1}, {Name: "x", Type: t2}})

	sym, ok := frame.Lookup("x")
	if !ok || sym.Type != t2 {
		t.Errorf("expected the later of two same-named pushed symbols to win, got %v", sym.Type)
	}
}
