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

package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/wand"
	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/parser"
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

func TestLexer(t *testing.T) {
	l := parser.NewLexer("fn x => x <= 2.5 # comment\n  'a != ()")
	var got []parser.TokenType
	var last parser.Token
	for tok := l.NextToken(); tok.Type != parser.EOF; tok = l.NextToken() {
		got = append(got, tok.Type)
		last = tok
	}
	assert.Equal(t, []parser.TokenType{
		parser.FN, parser.IDENT, parser.ARROW, parser.IDENT, parser.LE, parser.REAL,
		parser.TVAR, parser.NE, parser.LPAREN, parser.RPAREN,
	}, got)
	assert.Equal(t, ast.Pos{Line: 2, Col: 10}, last.Pos)
	assert.Equal(t, parser.EOF, l.NextToken().Type)
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		output string
	}{
		{"left_assoc", "fun product a b c = a * b * c;", ""},
		{"if", "fun f x y = if x then y else 5;", ""},
		{"let", "fun g z = let x = z * 2 in x + 4;", ""},
		{"compare", "fun isZero val = if val == 0 then true else false;", ""},
		{"fn_call", "fun f x = (fn y => y + 1) x;", ""},
		{"call_parens", "fun fact x = if x == 0 then 1 else x * fact(x - 1);", "fun fact x = if x == 0 then 1 else x * fact (x - 1);"},
		{"double_negation", "fun n x = - - x;", "fun n x = - -x;"},
		{"not_binds_tightly", "fun b x = not x and x;", ""},
		{"right_nested", "fun s a b = a - (b - 1);", ""},
		{"redundant_parens", "fun r a b = (a * b) + (1);", "fun r a b = a * b + 1;"},
		{"unit", "fun u = ();", ""},
		{"curried_call", "fun c f = f 1 2.5 true;", ""},
		{"fn_no_params", "fun k x = fn => x;", ""},
		{"comments", "# leading\nfun a x = x; # trailing\n", "fun a x = x;"},
		{"logic", "fun l a b = a or b and not a;", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := parser.Parse(tc.input)
			require.NoError(t, err)
			want := tc.output
			if want == "" {
				want = tc.input
			}
			assert.Equal(t, want, ast.ProgramString(prog))
		})
	}
}

func TestPositions(t *testing.T) {
	prog, err := parser.Parse("fun f x =\n  y + 1;\nfun g = f 2;")
	require.NoError(t, err)
	require.Len(t, prog.Defs, 2)

	f := prog.Defs[0]
	assert.Equal(t, ast.Pos{Line: 1, Col: 1}, f.Pos)
	assert.Equal(t, ast.Pos{Line: 1, Col: 7}, f.Params[0].Pos)
	bin := f.Body.(*ast.Binary)
	assert.Equal(t, ast.Pos{Line: 2, Col: 5}, bin.Pos)
	assert.Equal(t, ast.Pos{Line: 2, Col: 3}, bin.Left.Position())

	call := prog.Defs[1].Body.(*ast.Call)
	assert.Equal(t, ast.Pos{Line: 3, Col: 9}, call.Pos)
	assert.Empty(t, prog.Defs[1].Params)
}

func TestSyntaxErrors(t *testing.T) {
	testCases := []struct {
		input    string
		pos      ast.Pos
		contains string
	}{
		{"fun f x = x", ast.Pos{Line: 1, Col: 12}, "unexpected end of input, expected ';' (definitions end with ';')"},
		{"fun f x = if x then 1;", ast.Pos{Line: 1, Col: 22}, "expected 'else'"},
		{"fun f x = x < 1 < 2;", ast.Pos{Line: 1, Col: 17}, "expected ';'"},
		{"fun f x = x @ 1;", ast.Pos{Line: 1, Col: 13}, "illegal character '@'"},
		{"x = 1;", ast.Pos{Line: 1, Col: 1}, "expected 'fun'"},
		{"fun = 1;", ast.Pos{Line: 1, Col: 5}, "expected function name"},
		{"fun f = let 1 = 2 in 3;", ast.Pos{Line: 1, Col: 13}, "expected variable name"},
		{"fun f = (1;", ast.Pos{Line: 1, Col: 11}, "expected ')'"},
		{"fun f = ;", ast.Pos{Line: 1, Col: 9}, "expected an expression"},
	}
	for _, tc := range testCases {
		_, err := parser.Parse(tc.input)
		var syntax *tyerr.Syntax
		require.True(t, errors.As(err, &syntax), tc.input)
		assert.Equal(t, tc.pos, syntax.Position(), tc.input)
		assert.Contains(t, syntax.Error(), tc.contains, tc.input)
		assert.Equal(t, tyerr.Parse, tyerr.CodeOf(err))
	}
}

func TestParseExpr(t *testing.T) {
	e, err := parser.ParseExpr("let id = fn x => x in id 1")
	require.NoError(t, err)
	assert.Equal(t, "let id = fn x => x in id 1", ast.ExprString(e))

	_, err = parser.ParseExpr("1 2")
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.mml")
	require.NoError(t, os.WriteFile(path, []byte("fun f x = ;"), 0o644))

	_, err := parser.ParseFile(path)
	require.Error(t, err)
	var syntax *tyerr.Syntax
	assert.True(t, errors.As(err, &syntax))
	assert.Same(t, syntax, pkgerrors.Cause(err))

	_, err = parser.ParseFile(filepath.Join(dir, "missing.mml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(pkgerrors.Cause(err)))
}

func TestParseEquations(t *testing.T) {
	eqs, err := parser.ParseEquations("'a = arrow(int, 'b); list('b) = list(bool);")
	require.NoError(t, err)
	require.Len(t, eqs.Eqs, 2)
	assert.Equal(t, map[int]string{0: "a", 1: "b"}, eqs.Names)
	assert.Equal(t, "'a = arrow(int, 'b)\nlist('b) = list(bool)", eqs.String())

	for _, solve := range []unify.Func{unify.Pairwise, unify.Rewrite} {
		s, err := solve(eqs.Eqs)
		require.NoError(t, err)
		assert.Equal(t, "arrow(int, bool)", eqs.TermString(s.Apply(types.NewVar(0))))
	}

	_, err = parser.ParseEquations("'a int")
	var syntax *tyerr.Syntax
	require.True(t, errors.As(err, &syntax))
	assert.Equal(t, ast.Pos{Line: 1, Col: 4}, syntax.Pos)

	_, err = parser.ParseEquations("list(int = 'a")
	assert.Error(t, err)
}

// Parsing and inference together, under both unification strategies.
func TestInferSource(t *testing.T) {
	src := `
# list utilities
fun length l = if null l then 0 else 1 + length (tl l);
fun f x y = x + y;
fun bad x = x + true;
fun apply f x = f x;
fun uses y = bad y;
fun g z = let x = z * 2 in x + 4;
fun isZero val = if val == 0 then true else false;
fun fact x = if x == 0 then 1 else x * fact(x - 1);
fun avg a b = (a + b) / 2.0;
`
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	for _, st := range []wand.Strategy{wand.Pairwise, wand.Rewrite} {
		t.Run(st.String(), func(t *testing.T) {
			report, _ := wand.NewContext(wand.WithStrategy(st)).InferProgram(prog, wand.NewTypeEnv())
			got := make(map[string]string)
			for _, res := range report.Results {
				if res.Err == nil {
					got[res.Name] = types.TypeString(res.Type)
				}
			}
			assert.Equal(t, map[string]string{
				"length": "list['a] -> int",
				"f":      "int -> int -> int",
				"apply":  "('a -> 'b) -> 'a -> 'b",
				"g":      "int -> int",
				"isZero": "int -> bool",
				"fact":   "int -> int",
				"avg":    "real -> real -> real",
			}, got)

			assert.Equal(t, tyerr.TypeMismatch, tyerr.CodeOf(report.Lookup("bad").Err))
			assert.Equal(t, ast.Pos{Line: 5, Col: 15}, report.Lookup("bad").Err.(tyerr.Error).Position())
			assert.Equal(t, tyerr.UnresolvedDep, tyerr.CodeOf(report.Lookup("uses").Err))
		})
	}
}
