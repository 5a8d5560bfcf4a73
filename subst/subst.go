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

// Package subst implements the substitution store: a mapping from
// type-variable id to its current refinement, plus the prune/
// recursive-prune operations that resolve a type through the store.
package subst

import (
	"github.com/benbjohnson/immutable"

	"github.com/dogedapp/fen/types"
)

// int64Hasher implements immutable.Hasher for int64 keys, since the
// immutable package only auto-detects int, string, and []byte keys.
type int64Hasher struct{}

func (int64Hasher) Hash(key interface{}) uint32 {
	v := uint64(key.(int64))
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	v = v ^ (v >> 31)
	return uint32(v) ^ uint32(v>>32)
}

func (int64Hasher) Equal(a, b interface{}) bool {
	return a.(int64) == b.(int64)
}

var emptyMap = immutable.NewMap(int64Hasher{})

// Store is a substitution store: a mapping from type-variable id to the
// type it has been bound to. It is logically append-only during
// unification but is cleared between sibling top-level let bindings in a
// module (see fen.TypeModule) so inference does not leak across them.
//
// Store wraps a persistent map (github.com/benbjohnson/immutable) so that
// Bind can read as a plain mutation while internally replacing the store's
// map pointer with the result of an immutable Set -- speculative callers
// that hold an earlier *Store-shaped snapshot are unaffected.
type Store struct {
	m *immutable.Map
}

// New returns an empty substitution store.
func New() *Store {
	return &Store{m: emptyMap}
}

// Bind records that id is now refined to t. The caller is responsible for
// two invariants: t must not itself be a trivial v -> v mapping, and must
// not violate the occurs check -- those checks belong to the unifier, not
// the store.
func (s *Store) Bind(id int64, t types.Type) {
	s.m = s.m.Set(id, t)
}

// Lookup returns the type bound to id, if any.
func (s *Store) Lookup(id int64) (types.Type, bool) {
	v, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return v.(types.Type), true
}

// Clear resets the store to empty.
func (s *Store) Clear() {
	s.m = emptyMap
}

// Len reports the number of active bindings.
func (s *Store) Len() int {
	return s.m.Len()
}

// Prune resolves t one level through the substitution chain: if t is a
// variable bound in the store, Prune recursively resolves the bound type;
// otherwise t is returned unchanged. Prune does not descend into a
// constructor's arguments.
func (s *Store) Prune(t types.Type) types.Type {
	v, ok := t.(*types.Var)
	if !ok {
		return t
	}
	bound, ok := s.Lookup(v.Id())
	if !ok {
		return t
	}
	return s.Prune(bound)
}

// RecursivePrune resolves t fully: constructors are rebuilt with each
// argument recursively pruned (a constructor or qualified type in which
// nothing resolves is returned as is), and a pruned variable chain is re-pruned
// whenever pruning it changed anything (to chase chains that were updated
// mid-pass). It terminates because each step either strictly reduces the
// number of unresolved variables reachable from t or leaves t unchanged.
func (s *Store) RecursivePrune(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Const:
		args := make([]types.Type, len(t.Args))
		changed := false
		for i, a := range t.Args {
			args[i] = s.RecursivePrune(a)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &types.Const{Name: t.Name, Args: args}

	case *types.Qualified:
		underlying := s.RecursivePrune(t.Underlying)
		if underlying == t.Underlying {
			return t
		}
		return &types.Qualified{Predicate: t.Predicate, Underlying: underlying}

	default:
		pruned := s.Prune(t)
		if pruned == t {
			return pruned
		}
		return s.RecursivePrune(pruned)
	}
}
