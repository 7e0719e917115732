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

package ast

// CopyExpr returns a deep copy of e. Placeholders and inferred types are not copied.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case nil:
		return nil

	case *Literal:
		return &Literal{Kind: e.Kind, Syntax: e.Syntax, Pos: e.Pos}

	case *Ident:
		return &Ident{Name: e.Name, Pos: e.Pos}

	case *If:
		return &If{Cond: CopyExpr(e.Cond), Then: CopyExpr(e.Then), Else: CopyExpr(e.Else), Pos: e.Pos}

	case *Let:
		return &Let{Var: copyParam(e.Var), Value: CopyExpr(e.Value), Body: CopyExpr(e.Body), Pos: e.Pos}

	case *Fn:
		return &Fn{Params: copyParams(e.Params), Body: CopyExpr(e.Body), Pos: e.Pos}

	case *Call:
		return &Call{Func: CopyExpr(e.Func), Arg: CopyExpr(e.Arg), Pos: e.Pos}

	case *Binary:
		return &Binary{Op: e.Op, Left: CopyExpr(e.Left), Right: CopyExpr(e.Right), Pos: e.Pos}

	case *Unary:
		return &Unary{Op: e.Op, Operand: CopyExpr(e.Operand), Pos: e.Pos}
	}
	panic("unknown expression type: " + e.ExprName())
}

// CopyDef returns a deep copy of d. Placeholders and inferred types are not copied.
func CopyDef(d *FuncDef) *FuncDef {
	return &FuncDef{Name: d.Name, Params: copyParams(d.Params), Body: CopyExpr(d.Body), Pos: d.Pos}
}

// CopyProgram returns a deep copy of p. Placeholders and inferred types are not copied.
func CopyProgram(p *Program) *Program {
	defs := make([]*FuncDef, len(p.Defs))
	for i, d := range p.Defs {
		defs[i] = CopyDef(d)
	}
	return &Program{Defs: defs}
}

func copyParam(p *Param) *Param {
	if p == nil {
		return nil
	}
	return &Param{Name: p.Name, Pos: p.Pos}
}

func copyParams(ps []*Param) []*Param {
	if ps == nil {
		return nil
	}
	next := make([]*Param, len(ps))
	for i, p := range ps {
		next[i] = copyParam(p)
	}
	return next
}
