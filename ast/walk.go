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

// WalkExpr calls f for e and each sub-expression of e, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	Walk(e, func(n Typed) {
		if e, ok := n.(Expr); ok {
			f(e)
		}
	})
}

// Walk calls f for n and each typed node below n (expressions, parameters and let-bound
// variables), in pre-order.
func Walk(n Typed, f func(Typed)) {
	switch n := n.(type) {
	case *Literal, *Ident, *Param:
		f(n)

	case *If:
		f(n)
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *Let:
		f(n)
		Walk(n.Var, f)
		Walk(n.Value, f)
		Walk(n.Body, f)

	case *Fn:
		f(n)
		for _, p := range n.Params {
			Walk(p, f)
		}
		Walk(n.Body, f)

	case *Call:
		f(n)
		Walk(n.Func, f)
		Walk(n.Arg, f)

	case *Binary:
		f(n)
		Walk(n.Left, f)
		Walk(n.Right, f)

	case *Unary:
		f(n)
		Walk(n.Operand, f)

	case *FuncDef:
		f(n)
		for _, p := range n.Params {
			Walk(p, f)
		}
		Walk(n.Body, f)

	case nil:

	default:
		panic("unknown node type")
	}
}

// FreeNames returns the identifiers referenced within e which are not bound by an enclosing
// parameter or let-binding inside e, in order of first reference.
func FreeNames(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	freeNames(e, nil, seen, &names)
	return names
}

func freeNames(e Expr, bound []string, seen map[string]bool, names *[]string) {
	switch e := e.(type) {
	case *Ident:
		for i := len(bound) - 1; i >= 0; i-- {
			if bound[i] == e.Name {
				return
			}
		}
		if !seen[e.Name] {
			seen[e.Name] = true
			*names = append(*names, e.Name)
		}

	case *If:
		freeNames(e.Cond, bound, seen, names)
		freeNames(e.Then, bound, seen, names)
		freeNames(e.Else, bound, seen, names)

	case *Let:
		freeNames(e.Value, bound, seen, names)
		freeNames(e.Body, append(bound[:len(bound):len(bound)], e.Var.Name), seen, names)

	case *Fn:
		inner := bound[:len(bound):len(bound)]
		for _, p := range e.Params {
			inner = append(inner, p.Name)
		}
		freeNames(e.Body, inner, seen, names)

	case *Call:
		freeNames(e.Func, bound, seen, names)
		freeNames(e.Arg, bound, seen, names)

	case *Binary:
		freeNames(e.Left, bound, seen, names)
		freeNames(e.Right, bound, seen, names)

	case *Unary:
		freeNames(e.Operand, bound, seen, names)
	}
}

// DefFreeNames returns the identifiers referenced by a definition's body which are not
// parameters of the definition. The definition's own name is included when referenced.
func DefFreeNames(d *FuncDef) []string {
	var names []string
	seen := make(map[string]bool)
	bound := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		bound = append(bound, p.Name)
	}
	freeNames(d.Body, bound, seen, &names)
	return names
}
