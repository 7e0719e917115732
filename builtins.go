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

package wand

import (
	"sort"

	"github.com/wdamron/wand/types"
)

// Generic type-variables of built-in schemes use negative ids, which are never allocated during inference.
var builtinA = types.NewVar(-1)

var builtins = map[string]*types.Scheme{
	// nil : list['a]
	"nil": types.Closed(types.NewList(builtinA)),
	// cons : 'a -> list['a] -> list['a]
	"cons": types.Closed(types.NewArrow(builtinA, types.NewArrow(types.NewList(builtinA), types.NewList(builtinA)))),
	// hd : list['a] -> 'a
	"hd": types.Closed(types.NewArrow(types.NewList(builtinA), builtinA)),
	// tl : list['a] -> list['a]
	"tl": types.Closed(types.NewArrow(types.NewList(builtinA), types.NewList(builtinA))),
	// null : list['a] -> bool
	"null": types.Closed(types.NewArrow(types.NewList(builtinA), types.Bool)),
}

// Builtin returns the scheme of a built-in primitive.
func Builtin(name string) (*types.Scheme, bool) {
	s, ok := builtins[name]
	return s, ok
}

// BuiltinNames returns the names of all built-in primitives in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
