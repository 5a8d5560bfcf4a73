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

// Package types defines the type algebra for fen: type variables, type
// constructors (including the distinguished "Function" constructor for
// curried function types), and qualified types carrying a class-constraint
// predicate.
package types

// FunctionName is the distinguished type-constructor name which encodes a
// unary function type: Function(from, to). Multi-argument functions are
// right-associated chains of Function constructors.
const FunctionName = "Function"

// Type is the base interface for all type shapes.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string        { return "Var" }
func (t *Const) TypeName() string      { return "Const" }
func (t *Qualified) TypeName() string  { return "Qualified" }

// Var is a type variable: a fresh, globally unique (within one typing run)
// identifier. Two variables are equal iff their ids are equal. Var carries
// no binding state of its own -- refinements live in a substitution store
// (package subst), not on the variable.
type Var struct {
	id int64
}

// NewVar constructs a type variable with the given id. Prefer VarGen.New
// for fresh variables within a typing run.
func NewVar(id int64) *Var { return &Var{id: id} }

// Id returns the variable's unique identifier.
func (v *Var) Id() int64 { return v.id }

// SameVar reports whether a and b are the same type variable (same id).
func SameVar(a, b *Var) bool { return a.id == b.id }

// VarGen produces fresh type variables with a monotonically increasing
// counter. A VarGen is owned by a single typing run (one fen.Environment);
// implementations must not share a VarGen across concurrent runs.
type VarGen struct {
	next int64
}

// New returns a fresh, unique type variable.
func (g *VarGen) New() *Var {
	v := &Var{id: g.next}
	g.next++
	return v
}

// Const is a type constructor: a name plus an ordered sequence of type
// arguments, e.g. List(Int) or Function(Int, Int).
type Const struct {
	Name string
	Args []Type
}

// Function constructs a unary function type Function(from, to).
func Function(from, to Type) *Const {
	return &Const{Name: FunctionName, Args: []Type{from, to}}
}

// IsFunction reports whether t is the Function constructor, returning its
// argument and result types.
func IsFunction(t Type) (from, to Type, ok bool) {
	c, isConst := t.(*Const)
	if !isConst || c.Name != FunctionName || len(c.Args) != 2 {
		return nil, nil, false
	}
	return c.Args[0], c.Args[1], true
}

// FunctionN folds a curried function type right-to-left from a result type
// and zero or more argument types: FunctionN(r, a, b, c) = Function(a,
// Function(b, Function(c, r))). With no arguments, FunctionN returns result
// unchanged.
func FunctionN(result Type, args ...Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = Function(args[i], t)
	}
	return t
}

// DeconstructArgs flattens a curried function type into its full argument
// list and final return type. A type with no Function constructor at its
// head returns a nil argument list and itself as the return type.
func DeconstructArgs(t Type) (args []Type, ret Type) {
	for {
		from, to, ok := IsFunction(t)
		if !ok {
			return args, t
		}
		args = append(args, from)
		t = to
	}
}

// DeconstructArgsK is the bounded variant of DeconstructArgs: it peels at
// most k arrows and treats whatever remains (including any further
// Function constructors) as the residual return type. It reports false if
// fewer than k arrows were available to peel.
func DeconstructArgsK(t Type, k int) (args []Type, ret Type, ok bool) {
	args = make([]Type, 0, k)
	for i := 0; i < k; i++ {
		from, to, isFn := IsFunction(t)
		if !isFn {
			return args, t, false
		}
		args = append(args, from)
		t = to
	}
	return args, t, true
}

// Predicate is a class constraint attached to a QualifiedType, e.g. `Show
// a`. Equality is structural; there is no class environment, so predicates
// are only ever compared for equality, never resolved against instances.
type Predicate struct {
	Name string
	Args []Type
}

// SamePredicate reports whether two predicates are structurally equal:
// same name, same arity, and pairwise identical argument types (by id
// for variables, by name+arity+recursive equality for
// constructors). nil predicates are equal only to nil.
func SamePredicate(a, b *Predicate) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !sameType(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

func sameType(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && SameVar(a, bv)
	case *Const:
		bc, ok := b.(*Const)
		if !ok || a.Name != bc.Name || len(a.Args) != len(bc.Args) {
			return false
		}
		for i := range a.Args {
			if !sameType(a.Args[i], bc.Args[i]) {
				return false
			}
		}
		return true
	case *Qualified:
		bq, ok := b.(*Qualified)
		return ok && SamePredicate(a.Predicate, bq.Predicate) && sameType(a.Underlying, bq.Underlying)
	}
	return false
}

// Qualified is a type carrying an optional class-constraint predicate. Only
// the Underlying type participates in unification unless both sides of a
// unification carry equal predicates (see package unify).
type Qualified struct {
	Predicate *Predicate
	Underlying Type
}
