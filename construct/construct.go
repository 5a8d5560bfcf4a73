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

// Package construct provides convenience builders for primitive types and a
// YAML-driven loader for the prelude symbol table.
package construct

import "github.com/dogedapp/fen/types"

// Int is the built-in integer type.
func Int() *types.Const { return &types.Const{Name: "Int"} }

// Bool is the built-in boolean type.
func Bool() *types.Const { return &types.Const{Name: "Bool"} }

// String is the built-in string type.
func String() *types.Const { return &types.Const{Name: "String"} }

// Func constructs a curried function type: Func(ret, a, b, c) is the type
// of a 3-argument function returning ret.
func Func(ret types.Type, args ...types.Type) types.Type {
	return types.FunctionN(ret, args...)
}
