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
	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
)

// scope is a linked list of monomorphic local bindings: parameters, let-bound names and the
// names of the definition group being inferred.
type scope struct {
	name string
	t    types.Type
	next *scope
}

func (sc *scope) bind(name string, t types.Type) *scope { return &scope{name, t, sc} }

func (sc *scope) lookup(name string) (types.Type, bool) {
	for ; sc != nil; sc = sc.next {
		if sc.name == name {
			return sc.t, true
		}
	}
	return nil, false
}

// Generate equations for a top-level definition. The definition's own placeholder must
// already be bound within locals.
func (ti *InferenceContext) generateDef(env *TypeEnv, locals *scope, def *ast.FuncDef) error {
	params := make([]types.Type, len(def.Params))
	for i, p := range def.Params {
		tv := ti.placeholder(p)
		params[i] = tv
		locals = locals.bind(p.Name, tv)
	}
	body, err := ti.generate(env, locals, def.Body)
	if err != nil {
		return err
	}
	ti.equate(def.Pos, def.TypeVar(), types.Curry(params, body))
	return nil
}

// Generate equations for e. The placeholder of e is returned.
func (ti *InferenceContext) generate(env *TypeEnv, locals *scope, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		tv := ti.placeholder(e)
		ti.equate(e.Pos, tv, literalType(e.Kind))
		return tv, nil

	case *ast.Ident:
		t, err := ti.lookup(env, locals, e)
		if err != nil {
			return nil, err
		}
		tv := ti.placeholder(e)
		ti.equate(e.Pos, tv, t)
		return tv, nil

	case *ast.If:
		tv := ti.placeholder(e)
		cond, err := ti.generate(env, locals, e.Cond)
		if err != nil {
			return nil, err
		}
		then, err := ti.generate(env, locals, e.Then)
		if err != nil {
			return nil, err
		}
		els, err := ti.generate(env, locals, e.Else)
		if err != nil {
			return nil, err
		}
		ti.equate(e.Cond.Position(), cond, types.Bool)
		ti.equate(e.Else.Position(), then, els)
		ti.equate(e.Pos, tv, then)
		return tv, nil

	case *ast.Let:
		tv := ti.placeholder(e)
		value, err := ti.generate(env, locals, e.Value)
		if err != nil {
			return nil, err
		}
		x := ti.placeholder(e.Var)
		ti.equate(e.Var.Pos, x, value)
		body, err := ti.generate(env, locals.bind(e.Var.Name, x), e.Body)
		if err != nil {
			return nil, err
		}
		ti.equate(e.Pos, tv, body)
		return tv, nil

	case *ast.Fn:
		tv := ti.placeholder(e)
		params := make([]types.Type, len(e.Params))
		inner := locals
		for i, p := range e.Params {
			ptv := ti.placeholder(p)
			params[i] = ptv
			inner = inner.bind(p.Name, ptv)
		}
		body, err := ti.generate(env, inner, e.Body)
		if err != nil {
			return nil, err
		}
		ti.equate(e.Pos, tv, types.Curry(params, body))
		return tv, nil

	case *ast.Call:
		tv := ti.placeholder(e)
		f, err := ti.generate(env, locals, e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := ti.generate(env, locals, e.Arg)
		if err != nil {
			return nil, err
		}
		ti.equate(e.Pos, f, types.NewArrow(arg, tv))
		return tv, nil

	case *ast.Binary:
		tv := ti.placeholder(e)
		left, err := ti.generate(env, locals, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := ti.generate(env, locals, e.Right)
		if err != nil {
			return nil, err
		}
		switch {
		case ast.IsArithmetic(e.Op):
			ti.equate(e.Pos, left, right)
			ti.equate(e.Pos, tv, left)
			ti.numeric = append(ti.numeric, obligation{tv, e.Pos})
		case ast.IsComparison(e.Op):
			ti.equate(e.Pos, left, right)
			ti.equate(e.Pos, tv, types.Bool)
		case ast.IsLogical(e.Op):
			ti.equate(e.Left.Position(), left, types.Bool)
			ti.equate(e.Right.Position(), right, types.Bool)
			ti.equate(e.Pos, tv, types.Bool)
		default:
			panic("unknown binary operator " + e.Op)
		}
		return tv, nil

	case *ast.Unary:
		tv := ti.placeholder(e)
		operand, err := ti.generate(env, locals, e.Operand)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.OpNeg:
			ti.equate(e.Pos, tv, operand)
			ti.numeric = append(ti.numeric, obligation{tv, e.Pos})
		case ast.OpNot:
			ti.equate(e.Operand.Position(), operand, types.Bool)
			ti.equate(e.Pos, tv, types.Bool)
		default:
			panic("unknown unary operator " + e.Op)
		}
		return tv, nil
	}
	panic("unknown expression type: " + e.ExprName())
}

// Resolve the type of an identifier: locals, then the environment, then built-ins.
func (ti *InferenceContext) lookup(env *TypeEnv, locals *scope, e *ast.Ident) (types.Type, error) {
	if t, ok := locals.lookup(e.Name); ok {
		return t, nil
	}
	if b, ok := env.Lookup(e.Name); ok {
		if b.Failed() {
			return nil, &tyerr.Unresolved{Pos: e.Pos, Name: e.Name}
		}
		return ti.instantiate(b.Scheme), nil
	}
	if s, ok := Builtin(e.Name); ok {
		return ti.instantiate(s), nil
	}
	return nil, &tyerr.Unbound{Pos: e.Pos, Name: e.Name}
}

func literalType(kind ast.LitKind) types.Type {
	switch kind {
	case ast.IntLit:
		return types.Int
	case ast.RealLit:
		return types.Real
	case ast.BoolLit:
		return types.Bool
	case ast.UnitLit:
		return types.Unit
	}
	panic("unknown literal kind " + kind.String())
}

// Discharge numeric obligations: a resolved int or real is accepted, a free type-variable is
// bound to the numeric default, anything else is a mismatch.
func (ti *InferenceContext) dischargeNumeric(s types.Subst) (types.Subst, error) {
	for _, ob := range ti.numeric {
		switch t := s.Apply(ob.tv).(type) {
		case *types.Var:
			next, err := s.Bind(t.Id, ti.numericDefault)
			if err != nil {
				return s, &tyerr.Cyclic{Pos: ob.pos, Var: t, Term: ti.numericDefault}
			}
			s = next
		default:
			if !types.IsNumeric(t) {
				return s, &tyerr.Mismatch{Pos: ob.pos, Left: ti.numericDefault, Right: t}
			}
		}
	}
	return s, nil
}
