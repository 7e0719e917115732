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

package unify

import (
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
)

func mismatch(eq Equation, a, b *types.App) error {
	return &tyerr.Mismatch{Pos: eq.Pos, Left: a, Right: b, Arity: a.Name == b.Name}
}

func cyclic(eq Equation, v *types.Var, t types.Type) error {
	return &tyerr.Cyclic{Pos: eq.Pos, Var: v, Term: t}
}

// decompose returns one equation per pair of corresponding arguments, or a mismatch.
func decompose(eq Equation, a, b *types.App) ([]Equation, error) {
	if !types.SameConstructor(a, b) {
		return nil, mismatch(eq, a, b)
	}
	args := make([]Equation, len(a.Args))
	for i := range a.Args {
		args[i] = Equation{Left: a.Args[i], Right: b.Args[i], Pos: eq.Pos}
	}
	return args, nil
}

func substituteAll(eqs []Equation, id int, with types.Type) {
	for i, eq := range eqs {
		eqs[i] = Equation{
			Left:  types.Substitute(eq.Left, id, with),
			Right: types.Substitute(eq.Right, id, with),
			Pos:   eq.Pos,
		}
	}
}
