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
	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/internal/util"
)

// Analysis of the references between top-level definitions.
//
// Definitions are sorted into strongly-connected components and inferred in dependency order.
// All definitions of a component are monomorphic until the component is solved and generalized.
type Analysis struct {
	// Index of the first definition of each name.
	Defs map[string]int
	// Graph over definition indices. An edge leads from a definition to each definition which references it.
	Graph util.Graph
	// Strongly-connected components of definition indices, in dependency order.
	Groups [][]int
	// Indices of definitions which reuse the name of an earlier definition.
	Duplicates []int
	// Top-level names referenced by each definition, in order of first reference.
	Refs [][]string
}

// Analyze computes the dependency groups of a program.
func Analyze(prog *ast.Program) *Analysis {
	n := len(prog.Defs)
	a := &Analysis{
		Defs:  make(map[string]int, n),
		Graph: util.NewGraph(n),
		Refs:  make([][]string, n),
	}
	for i, d := range prog.Defs {
		if _, exists := a.Defs[d.Name]; exists {
			a.Duplicates = append(a.Duplicates, i)
			continue
		}
		a.Defs[d.Name] = i
	}
	for i, d := range prog.Defs {
		if a.IsDuplicate(i) {
			continue
		}
		for _, name := range ast.DefFreeNames(d) {
			if j, ok := a.Defs[name]; ok {
				a.Graph.AddEdge(j, i)
				a.Refs[i] = append(a.Refs[i], name)
			}
		}
	}
	a.Groups = a.Graph.SCC()
	return a
}

// IsDuplicate returns true if definition i reuses the name of an earlier definition.
func (a *Analysis) IsDuplicate(i int) bool {
	for _, dup := range a.Duplicates {
		if dup == i {
			return true
		}
	}
	return false
}

// IsRecursive returns true if the group references itself.
func (a *Analysis) IsRecursive(group []int) bool { return a.Graph.IsCyclic(group) }
