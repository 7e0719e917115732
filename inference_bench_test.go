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

package wand_test

import (
	"testing"

	. "github.com/wdamron/wand"
	. "github.com/wdamron/wand/construct"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

func benchProgram() *ast.Program {
	isZero := func() ast.Expr { return Binary(ast.OpEq, Ident("n"), Int(0)) }
	dec := func() ast.Expr { return Binary(ast.OpSub, Ident("n"), Int(1)) }
	return Program(
		lengthDef(),
		Def("map", []string{"f", "l"},
			If(Call(Ident("null"), Ident("l")),
				Ident("nil"),
				Call(Ident("cons"),
					Call(Ident("f"), Call(Ident("hd"), Ident("l"))),
					Call(Ident("map"), Ident("f"), Call(Ident("tl"), Ident("l")))))),
		Def("even", []string{"n"}, If(isZero(), Bool(true), Call(Ident("odd"), dec()))),
		Def("odd", []string{"n"}, If(isZero(), Bool(false), Call(Ident("even"), dec()))),
		Def("compose", []string{"f", "g", "x"}, Call(Ident("f"), Call(Ident("g"), Ident("x")))),
		Def("main", []string{"l"},
			Let("inc", Fn1("x", add(Ident("x"), Int(1))),
				Call(Ident("length"), Call(Ident("map"), Call(Ident("compose"), Ident("inc"), Ident("inc")), Ident("l"))))),
	)
}

func benchmarkProgram(b *testing.B, st Strategy) {
	ctx := NewContext(WithStrategy(st))
	env := NewTypeEnv()
	prog := benchProgram()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		report, _ := ctx.InferProgram(prog, env)
		if report.HasError() {
			b.Fatal(report.Errors)
		}
	}
}

func BenchmarkProgramPairwise(b *testing.B) { benchmarkProgram(b, Pairwise) }

func BenchmarkProgramRewrite(b *testing.B) { benchmarkProgram(b, Rewrite) }

// A chain of n variables, each equal to an arrow over the next: 't0 = 't1 -> 't1, ...
func chainEquations(n int) []unify.Equation {
	eqs := make([]unify.Equation, n)
	for i := range eqs {
		next := types.NewVar(i + 1)
		eqs[i] = unify.Eq(types.NewVar(i), types.NewArrow(next, next))
	}
	return eqs
}

func benchmarkUnify(b *testing.B, solve unify.Func) {
	eqs := chainEquations(8)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := solve(eqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnifyPairwise(b *testing.B) { benchmarkUnify(b, unify.Pairwise) }

func BenchmarkUnifyRewrite(b *testing.B) { benchmarkUnify(b, unify.Rewrite) }
