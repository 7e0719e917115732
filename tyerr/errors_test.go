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

package tyerr

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/types"
)

func TestFormatWithCode(t *testing.T) {
	at := ast.Pos{Line: 3, Col: 14}
	cases := []struct {
		err  error
		want string
	}{
		{&Unbound{Pos: at, Name: "y"}, "(E001) 3:14: identifier 'y' is not defined"},
		{
			&Mismatch{Pos: at, Left: types.NewArrow(types.Int, types.Bool), Right: types.NewList(types.Int)},
			"(E002) 3:14: type mismatch: expected 'int -> bool', found 'list[int]'",
		},
		{
			&Mismatch{Pos: at, Left: types.NewList(types.Int), Right: &types.App{Name: types.ListName}, Arity: true},
			"(E002) 3:14: type mismatch: 'list[int]' and 'list' have different arities",
		},
		{
			&Cyclic{Pos: at, Var: types.NewVar(4), Term: types.NewList(types.NewVar(4))},
			"(E003) 3:14: cyclic type: ''a' occurs within 'list['a]'",
		},
		{&Unresolved{Pos: at, Name: "bad"}, "(E004) 3:14: 'bad' could not be typed, so its uses cannot be resolved"},
		{&Duplicate{Pos: at, Name: "f", Prev: ast.Pos{Line: 1, Col: 1}}, "(E005) 3:14: 'f' is already defined at 1:1"},
		{&Syntax{Pos: at, Message: "unexpected ';'", Hint: "missing body"}, "(E006) 3:14: unexpected ';' (missing body)"},
		{&Unbound{Name: "z"}, "(E001) identifier 'z' is not defined"},
		{fmt.Errorf("plain"), "plain"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, FormatWithCode(c.err))
		})
	}
}

func TestCodeOf(t *testing.T) {
	err := &Duplicate{Name: "f"}
	assert.Equal(t, DuplicateDef, CodeOf(err))
	assert.Equal(t, DuplicateDef, CodeOf(errors.Wrap(err, "prog.mml")))
	assert.Equal(t, None, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, "E005", DuplicateDef.String())
	assert.Equal(t, "E000", None.String())
}

func TestErrors(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasError())
	assert.Empty(t, errs.Errors())

	errs = errs.With(&Unbound{Pos: ast.Pos{Line: 1, Col: 5}, Name: "x"})
	errs = errs.With(&Unresolved{Pos: ast.Pos{Line: 2, Col: 9}, Name: "f"})
	assert.True(t, errs.HasError())
	assert.Len(t, errs.Errors(), 2)
	assert.Equal(t, "(E001) 1:5: identifier 'x' is not defined\n"+
		"(E004) 2:9: 'f' could not be typed, so its uses cannot be resolved", errs.Error())

	v := errs.LogValue()
	assert.Equal(t, slog.KindGroup, v.Kind())
	assert.Len(t, v.Group(), 2)
	assert.Equal(t, "e0", v.Group()[0].Key)
}
