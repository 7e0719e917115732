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

// Package unify solves sequences of type equations into substitutions.
//
// Two independent strategies share the same contract: Pairwise resolves one equation at a time
// from a queue, Rewrite normalizes the whole equation set with the Martelli-Montanari rules.
// Both agree on solvability and produce the same solution up to renaming of type-variables.
package unify

import (
	"strings"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/types"
)

var logger = log.For(log.SectionUnify)

// Equation requires two terms to be identical after substitution.
type Equation struct {
	Left, Right types.Type
	// Position of the syntax which produced the equation.
	Pos ast.Pos
}

// Create an equation without a source position.
func Eq(left, right types.Type) Equation { return Equation{Left: left, Right: right} }

// Create an equation produced by the syntax at pos.
func EqAt(pos ast.Pos, left, right types.Type) Equation {
	return Equation{Left: left, Right: right, Pos: pos}
}

// String returns the equation in term notation: `'t1 = arrow(int, 't2)`.
func (e Equation) String() string {
	return types.TermString(e.Left) + " = " + types.TermString(e.Right)
}

// Satisfies reports whether s makes both sides of the equation identical.
func (e Equation) Satisfies(s types.Subst) bool {
	return types.Equal(s.Apply(e.Left), s.Apply(e.Right))
}

// EquationsString returns one equation per line.
func EquationsString(eqs []Equation) string {
	var sb strings.Builder
	for i, eq := range eqs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(eq.String())
	}
	return sb.String()
}

// Func is the signature shared by both strategies.
type Func func(eqs []Equation, opts ...Option) (types.Subst, error)

var (
	_ Func = Pairwise
	_ Func = Rewrite
)

// Rule identifies a single step taken while solving.
type Rule uint8

const (
	// Remove a trivial equation `t = t`.
	Delete Rule = iota
	// Replace `C(a1..an) = C(b1..bn)` with `ai = bi`.
	Decompose
	// Rewrite `t = v` as `v = t`.
	Orient
	// Bind `v = t` and substitute t for v in every other equation.
	Eliminate
	// Unsolvable equation.
	Conflict
)

func (r Rule) String() string {
	switch r {
	case Delete:
		return "delete"
	case Decompose:
		return "decompose"
	case Orient:
		return "orient"
	case Eliminate:
		return "eliminate"
	case Conflict:
		return "conflict"
	}
	return "invalid"
}

// Step describes a rule application.
type Step struct {
	Rule Rule
	// Equation the rule was applied to, as it appeared before the step.
	Equation Equation
	// Equations remaining after the step: the queue for Pairwise, the whole set for Rewrite.
	Pending []Equation
	// Bindings accumulated after the step. Rewrite only builds its bindings once solved.
	Subst types.Subst
}

// Tracer observes every rule application.
type Tracer func(Step)

type options struct {
	trace Tracer
}

// Option configures a call to Pairwise or Rewrite.
type Option func(*options)

// WithTracer calls trace after every rule application. Steps share no mutable state with the solver.
func WithTracer(trace Tracer) Option {
	return func(o *options) { o.trace = trace }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) step(rule Rule, eq Equation, pending []Equation, s types.Subst) {
	if o.trace == nil {
		return
	}
	snapshot := make([]Equation, len(pending))
	copy(snapshot, pending)
	o.trace(Step{Rule: rule, Equation: eq, Pending: snapshot, Subst: s})
}
