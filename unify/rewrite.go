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
	"github.com/wdamron/wand/types"
)

// Rewrite solves equations by normalizing the whole set.
//
// The set is scanned in order and the first applicable rule (delete, decompose, orient or
// eliminate) is applied before scanning again. When no rule applies, every equation has the
// solved form `v = t` where v occurs nowhere else in the set; those equations form the result.
func Rewrite(eqs []Equation, opts ...Option) (types.Subst, error) {
	o := newOptions(opts)
	set := make([]Equation, len(eqs))
	copy(set, eqs)

	for {
		applied, err := rewriteOnce(&o, &set)
		if err != nil {
			logger.Debug("conflict", "strategy", "rewrite", "error", err)
			return types.NewSubst(), err
		}
		if !applied {
			break
		}
	}

	s := types.NewSubst()
	for _, eq := range set {
		v := eq.Left.(*types.Var)
		next, err := s.Bind(v.Id, eq.Right)
		if err != nil {
			return types.NewSubst(), cyclic(eq, v, eq.Right)
		}
		s = next
	}
	logger.Debug("solved", "strategy", "rewrite", "equations", len(eqs), "bindings", s.Len())
	return s, nil
}

// rewriteOnce applies the first applicable rule to the set, returning false if none applies.
func rewriteOnce(o *options, set *[]Equation) (bool, error) {
	eqs := *set
	for i, eq := range eqs {
		if types.Equal(eq.Left, eq.Right) {
			*set = append(eqs[:i:i], eqs[i+1:]...)
			o.step(Delete, eq, *set, types.NewSubst())
			return true, nil
		}

		l, lvar := eq.Left.(*types.Var)
		_, rvar := eq.Right.(*types.Var)

		if !lvar && rvar {
			eqs[i] = Equation{Left: eq.Right, Right: eq.Left, Pos: eq.Pos}
			o.step(Orient, eq, eqs, types.NewSubst())
			return true, nil
		}

		if !lvar {
			a, b := eq.Left.(*types.App), eq.Right.(*types.App)
			args, err := decompose(eq, a, b)
			if err != nil {
				o.step(Conflict, eq, eqs, types.NewSubst())
				return false, err
			}
			next := make([]Equation, 0, len(eqs)-1+len(args))
			next = append(next, eqs[:i]...)
			next = append(next, args...)
			next = append(next, eqs[i+1:]...)
			*set = next
			o.step(Decompose, eq, next, types.NewSubst())
			return true, nil
		}

		if types.Occurs(l.Id, eq.Right) {
			o.step(Conflict, eq, eqs, types.NewSubst())
			return false, cyclic(eq, l, eq.Right)
		}

		if occursElsewhere(l.Id, eqs, i) {
			rest := make([]Equation, 0, len(eqs)-1)
			rest = append(rest, eqs[:i]...)
			rest = append(rest, eqs[i+1:]...)
			substituteAll(rest, l.Id, eq.Right)
			next := make([]Equation, 0, len(eqs))
			next = append(next, rest[:i]...)
			next = append(next, eq)
			next = append(next, rest[i:]...)
			*set = next
			o.step(Eliminate, eq, next, types.NewSubst())
			return true, nil
		}
	}
	return false, nil
}

func occursElsewhere(id int, eqs []Equation, skip int) bool {
	for j, eq := range eqs {
		if j != skip && (types.Occurs(id, eq.Left) || types.Occurs(id, eq.Right)) {
			return true
		}
	}
	return false
}
