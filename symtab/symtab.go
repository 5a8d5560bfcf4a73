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

// Package symtab implements the lexically-scoped symbol table: a stack of
// scope frames mapping names to typed symbols, walked outward on lookup
// with the innermost frame winning. The root frame is the supplied prelude.
package symtab

import (
	"errors"

	"github.com/benbjohnson/immutable"

	"github.com/dogedapp/fen/types"
)

// ErrScopeUnderflow is returned by Pop when called on a frame with no
// enclosing frame (the root). Popping the root is a programmer error. The
// typer driver does not call Pop (it restores the saved enclosing frame
// instead), and nothing in this module converts ErrScopeUnderflow into a
// diag.ScopeUnderflow error.
var ErrScopeUnderflow = errors.New("symtab: cannot pop the root scope frame")

// LocationKind classifies where a symbol's value comes from.
type LocationKind int

const (
	// Argument: a lambda or let parameter bound in the current or an
	// enclosing frame.
	Argument LocationKind = iota
	// BuiltIn: a prelude-supplied primitive.
	BuiltIn
	// StaticMethod: a top-level let of a module or a synthesized
	// closure-lifter helper, callable as a static method of its owning
	// module.
	StaticMethod
)

// Location records the classification of a symbol's reference.
type Location struct {
	Kind LocationKind

	// Module and Method are set for Kind == StaticMethod: the owning
	// module and the method's name.
	Module string
	Method string

	// ArgTypes and ReturnType are the destructured argument types and
	// return type. They are set for closure-lifter helpers and for
	// built-ins loaded by construct.LoadPrelude; the symbols the typer
	// pushes for top-level lets leave them empty.
	ArgTypes   []types.Type
	ReturnType types.Type
}

// Symbol is a named, typed, located binding.
type Symbol struct {
	Name     string
	Type     types.Type
	Location Location
}

// Frame is one lexical scope. Frames form a singly-linked chain via
// parent; lookups walk outward. The root frame (parent == nil) is the
// supplied prelude.
type Frame struct {
	parent *Frame
	syms   *immutable.List
}

// NewRoot constructs the root scope frame from prelude symbols.
func NewRoot(prelude []Symbol) *Frame {
	l := immutable.NewList()
	for _, s := range prelude {
		l = l.Append(s)
	}
	return &Frame{syms: l}
}

// Push returns a new frame containing syms, enclosed by f.
func (f *Frame) Push(syms []Symbol) *Frame {
	l := immutable.NewList()
	for _, s := range syms {
		l = l.Append(s)
	}
	return &Frame{parent: f, syms: l}
}

// Pop returns the enclosing frame. It returns ErrScopeUnderflow if f is the
// root frame.
func (f *Frame) Pop() (*Frame, error) {
	if f.parent == nil {
		return nil, ErrScopeUnderflow
	}
	return f.parent, nil
}

// Lookup searches f and its enclosing frames outward, returning the
// innermost matching symbol.
func (f *Frame) Lookup(name string) (Symbol, bool) {
	for frame := f; frame != nil; frame = frame.parent {
		if s, ok := frame.lookupLocal(name); ok {
			return s, true
		}
	}
	return Symbol{}, false
}

func (f *Frame) lookupLocal(name string) (Symbol, bool) {
	n := f.syms.Len()
	for i := n - 1; i >= 0; i-- {
		s := f.syms.Get(i).(Symbol)
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}
