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
	"github.com/wdamron/wand/types"
)

// Replace the generic type-variables of s with fresh type-variables.
func (ti *InferenceContext) instantiate(s *types.Scheme) types.Type {
	if !s.IsGeneric() {
		return s.Type
	}
	for id := range ti.instLookup {
		delete(ti.instLookup, id)
	}
	for _, id := range s.Vars {
		ti.instLookup[id] = ti.varTracker.New()
	}
	return ti.instantiateType(s.Type)
}

func (ti *InferenceContext) instantiateType(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if tv, ok := ti.instLookup[t.Id]; ok {
			return tv
		}
		return t

	case *types.App:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ti.instantiateType(arg)
		}
		return &types.App{Name: t.Name, Args: args}
	}
	panic("unexpected type " + t.TypeName())
}
