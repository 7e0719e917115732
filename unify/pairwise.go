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

// Pairwise solves equations one at a time, in order.
//
// Each binding is applied to the remaining queue and to the accumulated substitution as soon as
// it is made, so every equation is normalized when it is dequeued. Argument equations from a
// decomposition are pushed to the front of the queue.
func Pairwise(eqs []Equation, opts ...Option) (types.Subst, error) {
	o := newOptions(opts)
	s := types.NewSubst()
	queue := make([]Equation, len(eqs))
	copy(queue, eqs)

	for len(queue) > 0 {
		eq := queue[0]
		queue = queue[1:]
		left, right := eq.Left, eq.Right

		if types.Equal(left, right) {
			o.step(Delete, eq, queue, s)
			continue
		}

		if _, ok := left.(*types.Var); !ok {
			if _, ok := right.(*types.Var); ok {
				o.step(Orient, eq, queue, s)
				left, right = right, left
			}
		}

		switch l := left.(type) {
		case *types.Var:
			if types.Occurs(l.Id, right) {
				o.step(Conflict, eq, queue, s)
				logger.Debug("cyclic type", "strategy", "pairwise", "equation", eq.String())
				return s, cyclic(eq, l, right)
			}
			next, err := s.Bind(l.Id, right)
			if err != nil {
				o.step(Conflict, eq, queue, s)
				return s, cyclic(eq, l, right)
			}
			s = next
			substituteAll(queue, l.Id, right)
			o.step(Eliminate, eq, queue, s)

		case *types.App:
			r := right.(*types.App)
			args, err := decompose(eq, l, r)
			if err != nil {
				o.step(Conflict, eq, queue, s)
				logger.Debug("constructor mismatch", "strategy", "pairwise", "equation", eq.String())
				return s, err
			}
			next := make([]Equation, 0, len(args)+len(queue))
			next = append(next, args...)
			queue = append(next, queue...)
			o.step(Decompose, eq, queue, s)
		}
	}

	logger.Debug("solved", "strategy", "pairwise", "equations", len(eqs), "bindings", s.Len())
	return s, nil
}
