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

package types

import (
	"strconv"
	"strings"
)

// TypeString renders a type for diagnostics and debug output. Function
// constructors render infix (a -> b -> c); other constructors render as
// Name(args...); qualified types render as "Predicate => underlying".
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, t, false)
	return sb.String()
}

func typeString(sb *strings.Builder, t Type, simple bool) {
	switch t := t.(type) {
	case *Var:
		sb.WriteByte('t')
		sb.WriteString(strconv.FormatInt(t.id, 10))

	case *Const:
		if from, to, ok := IsFunction(t); ok {
			if simple {
				sb.WriteByte('(')
			}
			typeString(sb, from, true)
			sb.WriteString(" -> ")
			typeString(sb, to, false)
			if simple {
				sb.WriteByte(')')
			}
			return
		}
		sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeString(sb, arg, false)
		}
		sb.WriteByte(')')

	case *Qualified:
		if t.Predicate != nil {
			predicateString(sb, t.Predicate)
			sb.WriteString(" => ")
		}
		typeString(sb, t.Underlying, simple)

	case nil:
		sb.WriteString("<nil>")

	default:
		sb.WriteString(t.TypeName())
	}
}

func predicateString(sb *strings.Builder, p *Predicate) {
	sb.WriteString(p.Name)
	for _, arg := range p.Args {
		sb.WriteByte(' ')
		typeString(sb, arg, true)
	}
}
