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
	"fmt"
	"log/slog"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/internal/typeutil"
	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

// Strategy selects the unification algorithm.
type Strategy uint8

const (
	// Pairwise resolution of one equation at a time (see unify.Pairwise).
	Pairwise Strategy = iota
	// Set rewriting with the Martelli-Montanari rules (see unify.Rewrite).
	Rewrite
)

func (s Strategy) String() string {
	switch s {
	case Pairwise:
		return "pairwise"
	case Rewrite:
		return "rewrite"
	}
	return "invalid"
}

// Solver returns the unification function for the strategy.
func (s Strategy) Solver() unify.Func {
	if s == Rewrite {
		return unify.Rewrite
	}
	return unify.Pairwise
}

// ParseStrategy parses `pairwise` or `rewrite`.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "pairwise":
		return Pairwise, nil
	case "rewrite":
		return Rewrite, nil
	}
	return Pairwise, fmt.Errorf("unknown unification strategy %q", name)
}

// Option configures an InferenceContext.
type Option func(*InferenceContext)

// WithStrategy selects the unification algorithm. The default is Pairwise.
func WithStrategy(s Strategy) Option { return func(ti *InferenceContext) { ti.strategy = s } }

// WithNumericDefault sets the type assigned to arithmetic whose operand types remain
// unconstrained after unification. The default is int.
func WithNumericDefault(t types.Type) Option {
	return func(ti *InferenceContext) { ti.numericDefault = t }
}

// WithTracer observes every rule application of the unifier.
func WithTracer(trace unify.Tracer) Option { return func(ti *InferenceContext) { ti.tracer = trace } }

// WithLogger replaces the logger used for debug records.
func WithLogger(logger *slog.Logger) Option { return func(ti *InferenceContext) { ti.logger = logger } }

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	strategy       Strategy
	numericDefault types.Type
	tracer         unify.Tracer
	logger         *slog.Logger

	varTracker typeutil.VarTracker
	instLookup map[int]*types.Var // instantiation lookup for generic type-variables

	// state for the group being inferred:
	eqs     []unify.Equation
	numeric []obligation
	nodes   []ast.Typed
}

// obligation requires a node's type to resolve to a numeric type.
type obligation struct {
	tv  *types.Var
	pos ast.Pos
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext(opts ...Option) *InferenceContext {
	ti := &InferenceContext{
		numericDefault: types.Int,
		instLookup:     make(map[int]*types.Var),
	}
	for _, opt := range opts {
		opt(ti)
	}
	if ti.logger == nil {
		ti.logger = log.For(log.SectionInfer)
	}
	return ti
}

// Strategy returns the configured unification algorithm.
func (ti *InferenceContext) Strategy() Strategy { return ti.strategy }

// resetGroup clears the state of the previous group. Fresh ids start above every id within env.
func (ti *InferenceContext) resetGroup(env *TypeEnv) {
	ti.eqs, ti.numeric, ti.nodes = ti.eqs[:0], ti.numeric[:0], ti.nodes[:0]
	ti.varTracker.Reset()
	ti.varTracker.Reserve(env.MaxVar())
}

// Allocate the placeholder of a node.
func (ti *InferenceContext) placeholder(n ast.Typed) *types.Var {
	tv := ti.varTracker.New()
	n.SetTypeVar(tv)
	n.SetType(nil)
	ti.nodes = append(ti.nodes, n)
	return tv
}

func (ti *InferenceContext) equate(pos ast.Pos, left, right types.Type) {
	ti.eqs = append(ti.eqs, unify.EqAt(pos, left, right))
}

// Equations returns the equations generated for the most recent definition group.
// The slice is reused by later inference.
func (ti *InferenceContext) Equations() []unify.Equation { return ti.eqs }

func (ti *InferenceContext) solve() (types.Subst, error) {
	var opts []unify.Option
	if ti.tracer != nil {
		opts = append(opts, unify.WithTracer(ti.tracer))
	}
	s, err := ti.strategy.Solver()(ti.eqs, opts...)
	if err != nil {
		return s, err
	}
	return ti.dischargeNumeric(s)
}

// annotate stores the resolved type of every node of the group.
func (ti *InferenceContext) annotate(s types.Subst) {
	for _, n := range ti.nodes {
		n.SetType(s.Apply(n.TypeVar()))
	}
}
