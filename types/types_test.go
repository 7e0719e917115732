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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	s := NewSubst()
	s, err := s.Bind(1, NewList(NewVar(0)))
	require.NoError(t, err)
	s, err = s.Bind(0, Int)
	require.NoError(t, err)

	assert.True(t, s.IsIdempotent())
	assert.Equal(t, "{'t0 := int, 't1 := list(int)}", s.String())
	assert.Equal(t, []int{0, 1}, s.Vars())

	_, err = s.Bind(2, NewList(NewVar(2)))
	assert.ErrorIs(t, err, ErrOccurs)
	_, err = s.Bind(0, Bool)
	assert.ErrorIs(t, err, ErrBound)

	same, err := s.Bind(3, NewVar(3))
	require.NoError(t, err)
	assert.Equal(t, 2, same.Len())

	// the bound term is normalized first
	s, err = s.Bind(3, NewArrow(NewVar(1), NewVar(4)))
	require.NoError(t, err)
	assert.Equal(t, "arrow(list(int), 't4)", TermString(s.Apply(NewVar(3))))
	assert.True(t, s.IsIdempotent())
}

func TestBindIndirectOccurs(t *testing.T) {
	s, err := NewSubst().Bind(1, NewList(NewVar(0)))
	require.NoError(t, err)
	_, err = s.Bind(0, NewVar(1))
	assert.ErrorIs(t, err, ErrOccurs)
}

func TestBindIsPersistent(t *testing.T) {
	s, err := NewSubst().Bind(0, Int)
	require.NoError(t, err)
	next, err := s.Bind(1, Bool)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, next.Len())
	_, ok := s.Lookup(1)
	assert.False(t, ok)

	var zero Subst
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "{}", zero.String())
}

func TestApply(t *testing.T) {
	s, err := NewSubst().Bind(0, Real)
	require.NoError(t, err)

	unchanged := NewArrow(NewVar(1), Int)
	assert.Same(t, unchanged, s.Apply(unchanged))

	applied := s.ApplyAll([]Type{NewVar(0), NewList(NewVar(0)), NewVar(2)})
	assert.Equal(t, []string{"real", "list[real]", "'a"}, TypeStrings(applied...))
}

func TestCompose(t *testing.T) {
	s, err := NewSubst().Bind(0, NewList(NewVar(1)))
	require.NoError(t, err)
	next, err := NewSubst().Bind(1, Int)
	require.NoError(t, err)
	next, err = next.Bind(2, Bool)
	require.NoError(t, err)

	composed := s.Compose(next)
	term := NewArrow(NewVar(0), NewArrow(NewVar(1), NewVar(2)))
	assert.True(t, Equal(next.Apply(s.Apply(term)), composed.Apply(term)))
	assert.Equal(t, "{'t0 := list(int), 't1 := int, 't2 := bool}", composed.String())
	assert.Same(t, s.m, s.Compose(NewSubst()).m)
}

func TestCurry(t *testing.T) {
	assert.Equal(t, "unit -> int", TypeString(Curry(nil, Int)))
	assert.Equal(t, "int -> bool -> real", TypeString(Curry([]Type{Int, Bool}, Real)))
	f := Curry([]Type{NewVar(3)}, NewVar(3)).(*App)
	assert.True(t, f.IsArrow())
	assert.Equal(t, 2, f.Arity())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNumeric(Int))
	assert.True(t, IsNumeric(Real))
	assert.False(t, IsNumeric(Bool))
	assert.False(t, IsNumeric(NewVar(0)))
	assert.True(t, NewList(Int).IsList())
	assert.False(t, NewConst(ListName).IsList())

	assert.True(t, Equal(NewList(NewVar(2)), NewList(NewVar(2))))
	assert.False(t, Equal(NewList(NewVar(2)), NewList(NewVar(3))))
	assert.False(t, Equal(NewArrow(Int, Int), NewList(Int)))
	assert.True(t, SameConstructor(NewList(Int), NewList(Bool)))
	assert.False(t, SameConstructor(NewList(Int), NewConst(ListName)))

	assert.True(t, Occurs(1, NewArrow(Int, NewList(NewVar(1)))))
	assert.False(t, Occurs(1, NewArrow(Int, NewVar(2))))
}

func TestSubstitute(t *testing.T) {
	term := NewArrow(NewVar(0), NewList(NewVar(1)))
	assert.Same(t, term, Substitute(term, 5, Int))
	assert.Equal(t, "arrow('t0, list(bool))", TermString(Substitute(term, 1, Bool)))
	assert.Equal(t, "arrow('t0, list('t1))", TermString(term))
}

func TestVars(t *testing.T) {
	term := NewArrow(NewVar(3), NewArrow(NewVar(1), NewVar(3)))
	assert.Equal(t, []int{1, 3}, FreeVars(term))
	assert.Equal(t, []int{1, 2, 3}, FreeVars(term, NewList(NewVar(2))))
	assert.Empty(t, FreeVars(Int))
	assert.Equal(t, []int{1, 3}, DiffVars([]int{1, 2, 3}, []int{2}))
	assert.Equal(t, []int{1, 2}, DiffVars([]int{1, 2}, nil))
}

func TestScheme(t *testing.T) {
	sc := &Scheme{Vars: []int{1}, Type: NewArrow(NewVar(1), NewVar(2))}
	assert.True(t, sc.IsGeneric())
	assert.Equal(t, []int{2}, sc.FreeVars())
	assert.Equal(t, "'a -> 'b", sc.String())

	assert.False(t, Mono(NewVar(0)).IsGeneric())
	assert.Equal(t, []int{0, 4}, Closed(NewArrow(NewVar(4), NewVar(0))).Vars)
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{Int, "int"},
		{NewArrow(NewArrow(NewVar(5), NewVar(3)), NewList(NewVar(5))), "('a -> 'b) -> list['a]"},
		{NewArrow(NewVar(9), NewArrow(NewVar(9), NewVar(9))), "'a -> 'a -> 'a"},
		{NewList(NewArrow(Int, Unit)), "list[int -> unit]"},
		{&App{Name: "pair", Args: []Type{Int, NewVar(0)}}, "pair[int, 'a]"},
		{nil, "<nil>"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, TypeString(c.t))
		})
	}
	assert.Equal(t, []string{"'a", "list['a]", "'b"}, TypeStrings(NewVar(7), NewList(NewVar(7)), NewVar(1)))
}

func TestVarNames(t *testing.T) {
	assert.Equal(t, "'a", getVarName(0))
	assert.Equal(t, "'z", getVarName(25))
	assert.Equal(t, "'a1", getVarName(26))
	assert.Equal(t, "'b1", getVarName(27))
	assert.Equal(t, "'t12", VarName(12))
}

func TestTermString(t *testing.T) {
	term := NewArrow(NewList(NewVar(3)), Int)
	assert.Equal(t, "arrow(list('t3), int)", TermString(term))
	assert.Equal(t, "arrow(list('x), int)", NamedTermString(term, map[int]string{3: "x"}))
	assert.Equal(t, "arrow(list('t3), int)", NamedTermString(term, nil))
}
