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

package construct

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dogedapp/fen/symtab"
	"github.com/dogedapp/fen/types"
)

// preludeDisk is the on-disk YAML shape for a prelude document: a flat list
// of built-in bindings, each a name plus a curried signature of primitive
// type names.
type preludeDisk struct {
	Builtins []builtinDisk `yaml:"builtins"`
}

type builtinDisk struct {
	Name    string   `yaml:"name"`
	Args    []string `yaml:"args"`
	Returns string   `yaml:"returns"`
}

// namedType resolves the primitive type names a prelude document may use.
// Builtins are always fully monomorphic and first-order in their
// signatures; there is no occasion for a prelude entry to name a type
// variable or a user constructor.
func namedType(name string) (types.Type, error) {
	switch name {
	case "Int":
		return Int(), nil
	case "Bool":
		return Bool(), nil
	case "String":
		return String(), nil
	}
	return nil, fmt.Errorf("construct: unknown prelude type name %q", name)
}

// LoadPrelude reads a YAML prelude document from r and builds the root
// scope frame from its builtin declarations.
func LoadPrelude(r io.Reader) (*symtab.Frame, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc preludeDisk
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return symtab.NewRoot(nil), nil
		}
		return nil, fmt.Errorf("construct: parse prelude: %w", err)
	}

	syms := make([]symtab.Symbol, 0, len(doc.Builtins))
	for _, b := range doc.Builtins {
		if b.Name == "" {
			return nil, fmt.Errorf("construct: prelude entry missing name")
		}
		ret, err := namedType(b.Returns)
		if err != nil {
			return nil, fmt.Errorf("construct: builtin %q: %w", b.Name, err)
		}
		args := make([]types.Type, len(b.Args))
		for i, a := range b.Args {
			argType, err := namedType(a)
			if err != nil {
				return nil, fmt.Errorf("construct: builtin %q: %w", b.Name, err)
			}
			args[i] = argType
		}
		syms = append(syms, symtab.Symbol{
			Name: b.Name,
			Type: Func(ret, args...),
			Location: symtab.Location{
				Kind:       symtab.BuiltIn,
				ArgTypes:   args,
				ReturnType: ret,
			},
		})
	}
	return symtab.NewRoot(syms), nil
}
