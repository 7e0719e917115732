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
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/internal/astutil"
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
)

// Result of inference for a single top-level definition. Exactly one of Type or Err is set.
type Result struct {
	Name string
	Def  *ast.FuncDef
	// Principal type of the definition.
	Type types.Type
	// Generalized type, as bound for later definitions.
	Scheme *types.Scheme
	Err    error
}

// Failed returns true if the definition was rejected.
func (r *Result) Failed() bool { return r.Err != nil }

// String returns `name : type` or `name : error`.
func (r *Result) String() string {
	if r.Err != nil {
		return r.Name + " : " + tyerr.FormatWithCode(r.Err)
	}
	return r.Name + " : " + types.TypeString(r.Type)
}

// Report holds the results of inference for a program, in source order.
type Report struct {
	Results []*Result
	Errors  *tyerr.Errors
}

// Lookup the result for the first definition of name, or nil.
func (r *Report) Lookup(name string) *Result {
	for _, res := range r.Results {
		if res.Name == name {
			return res
		}
	}
	return nil
}

// HasError returns true if any definition was rejected.
func (r *Report) HasError() bool { return r.Errors.HasError() }

func (r *Report) String() string {
	lines := make([]string, len(r.Results))
	for i, res := range r.Results {
		lines[i] = res.String()
	}
	return strings.Join(lines, "\n")
}

// InferProgram infers the type of every definition of prog within env. Placeholders and
// resolved types are added directly to the nodes of prog.
//
// Definitions are inferred in dependency order, with mutually-recursive definitions inferred
// together as a group. The returned environment extends env with every definition: solved
// definitions are generalized, failed definitions are recorded as failed.
func (ti *InferenceContext) InferProgram(prog *ast.Program, env *TypeEnv) (*Report, *TypeEnv) {
	analysis := astutil.Analyze(prog)
	report := &Report{Results: make([]*Result, len(prog.Defs))}
	for i, def := range prog.Defs {
		report.Results[i] = &Result{Name: def.Name, Def: def}
	}

	for _, i := range analysis.Duplicates {
		def := prog.Defs[i]
		first := prog.Defs[analysis.Defs[def.Name]]
		report.Results[i].Err = &tyerr.Duplicate{Pos: def.Pos, Name: def.Name, Prev: first.Pos}
	}

	for _, group := range analysis.Groups {
		if len(group) == 1 && analysis.IsDuplicate(group[0]) {
			continue
		}
		results := make([]*Result, len(group))
		for j, i := range group {
			results[j] = report.Results[i]
		}
		env = ti.inferGroup(env, results, analysis.IsRecursive(group), groupRefs(analysis, group))
	}

	for _, res := range report.Results {
		if res.Err != nil {
			report.Errors = report.Errors.With(res.Err)
		}
	}
	if report.HasError() {
		ti.logger.Debug("inferred program with errors", "definitions", len(prog.Defs), "errors", report.Errors)
	}
	return report, env
}

// Annotate infers the type of every definition within a copy of prog. The type-annotated copy
// is returned along with the report and the extended environment.
func (ti *InferenceContext) Annotate(prog *ast.Program, env *TypeEnv) (*ast.Program, *Report, *TypeEnv) {
	prog = ast.CopyProgram(prog)
	report, env := ti.InferProgram(prog, env)
	return prog, report, env
}

// InferDef infers the type of a single definition within env. The definition may reference
// itself. Placeholders and resolved types are added directly to the nodes of def.
func (ti *InferenceContext) InferDef(def *ast.FuncDef, env *TypeEnv) (*Result, *TypeEnv) {
	res := &Result{Name: def.Name, Def: def}
	analysis := astutil.Analyze(&ast.Program{Defs: []*ast.FuncDef{def}})
	env = ti.inferGroup(env, []*Result{res}, analysis.IsRecursive([]int{0}), analysis.Refs[0])
	return res, env
}

// InferExpr infers the type of a copy of expr within env. Type-variables which remain
// unconstrained are not generalized.
func (ti *InferenceContext) InferExpr(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	return ti.AnnotateExpr(ast.CopyExpr(expr), env)
}

// AnnotateExpr infers the type of expr within env. Type-annotations are added directly to expr.
// All sub-expressions of expr must have unique addresses.
func (ti *InferenceContext) AnnotateExpr(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	ti.resetGroup(env)
	t, err := ti.generate(env, nil, expr)
	if err != nil {
		return nil, err
	}
	s, err := ti.solve()
	if err != nil {
		return nil, err
	}
	ti.annotate(s)
	return s.Apply(t), nil
}

// Infer a group of mutually-recursive definitions. Results are filled in place.
func (ti *InferenceContext) inferGroup(env *TypeEnv, group []*Result, recursive bool, refs []string) *TypeEnv {
	ti.resetGroup(env)

	var locals *scope
	for _, res := range group {
		locals = locals.bind(res.Name, ti.placeholder(res.Def))
	}

	err := ti.generateGroup(env, locals, group)
	var s types.Subst
	if err == nil {
		s, err = ti.solve()
	}

	if ti.logger.Enabled(context.Background(), slog.LevelDebug) {
		names := make([]string, len(group))
		for i, res := range group {
			names[i] = res.Name
		}
		ti.logger.Debug("inferred group",
			"names", names,
			"recursive", recursive,
			"refs", refs,
			"equations", len(ti.eqs),
			"vars", ti.varTracker.Count(),
			"strategy", ti.strategy.String(),
			"error", err)
	}

	if err != nil {
		for _, res := range group {
			res.Err = err
			env = env.ExtendFailed(res.Name, err)
		}
		return env
	}

	ti.annotate(s)
	for _, res := range group {
		res.Type = res.Def.Type()
		res.Scheme = Generalize(env, s, res.Type)
	}
	for _, res := range group {
		env = env.Extend(res.Name, res.Scheme)
	}
	return env
}

// groupRefs collects the top-level names referenced by the members of a group.
func groupRefs(a *astutil.Analysis, group []int) []string {
	var refs []string
	for _, i := range group {
		for _, name := range a.Refs[i] {
			if !slices.Contains(refs, name) {
				refs = append(refs, name)
			}
		}
	}
	return refs
}

func (ti *InferenceContext) generateGroup(env *TypeEnv, locals *scope, group []*Result) error {
	for _, res := range group {
		if err := ti.generateDef(env, locals, res.Def); err != nil {
			return err
		}
	}
	return nil
}
