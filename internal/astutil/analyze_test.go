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

package astutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/wand/ast"
	. "github.com/wdamron/wand/construct"
)

// groupOf returns the position of the group containing definition i, or -1.
func groupOf(a *Analysis, i int) int {
	for g, group := range a.Groups {
		for _, j := range group {
			if j == i {
				return g
			}
		}
	}
	return -1
}

func TestAnalyzeSelfRecursion(t *testing.T) {
	// fun fact n = if n == 0 then 1 else n * fact (n - 1)
	prog := Program(Def("fact", []string{"n"}, If(
		Binary(ast.OpEq, Ident("n"), Int(0)),
		Int(1),
		Binary(ast.OpMul, Ident("n"), Call(Ident("fact"), Binary(ast.OpSub, Ident("n"), Int(1)))))))
	a := Analyze(prog)
	assert.Equal(t, [][]int{{0}}, a.Groups)
	assert.Equal(t, []string{"fact"}, a.Refs[0])
	assert.True(t, a.IsRecursive(a.Groups[0]))
	assert.Empty(t, a.Duplicates)
}

func TestAnalyzeGroups(t *testing.T) {
	prog := Program(
		Def("main", []string{"x"}, Call(Ident("even"), Ident("x"))),
		Def("even", []string{"n"}, Call(Ident("odd"), Ident("n"))),
		Def("odd", []string{"n"}, Call(Ident("even"), Ident("n"))),
		Def("leaf", []string{"l"}, Call(Ident("hd"), Ident("l"))),
	)
	a := Analyze(prog)
	require.Len(t, a.Groups, 3)

	cases := []struct {
		name      string
		def       int
		group     []int
		recursive bool
		refs      []string
	}{
		{"main", 0, []int{0}, false, []string{"even"}},
		{"even", 1, []int{1, 2}, true, []string{"odd"}},
		{"odd", 2, []int{1, 2}, true, []string{"even"}},
		{"leaf", 3, []int{3}, false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := groupOf(a, c.def)
			require.NotEqual(t, -1, g)
			assert.Equal(t, c.group, a.Groups[g])
			assert.Equal(t, c.recursive, a.IsRecursive(a.Groups[g]))
			assert.Equal(t, c.refs, a.Refs[c.def])
		})
	}

	// dependencies come before their users, even when defined later
	assert.Less(t, groupOf(a, 1), groupOf(a, 0))
}

func TestAnalyzeDuplicates(t *testing.T) {
	prog := Program(
		Def("f", []string{"x"}, Ident("x")),
		Def("g", []string{"y"}, Call(Ident("f"), Ident("y"))),
		Def("f", []string{"z"}, Call(Ident("g"), Ident("z"))),
	)
	a := Analyze(prog)
	assert.Equal(t, []int{2}, a.Duplicates)
	assert.True(t, a.IsDuplicate(2))
	assert.False(t, a.IsDuplicate(0))
	assert.Equal(t, 0, a.Defs["f"])

	// the duplicate contributes no references and is its own group
	assert.Nil(t, a.Refs[2])
	assert.True(t, a.Graph.HasEdge(0, 1))
	assert.False(t, a.Graph.HasEdge(1, 2))
	assert.Equal(t, []int{2}, a.Groups[groupOf(a, 2)])
	assert.False(t, a.IsRecursive([]int{1}))
}
