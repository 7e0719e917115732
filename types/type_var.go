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
	"sort"

	"github.com/xtgo/set"
)

// FreeVars returns the ids of all type-variables occurring within the given terms,
// sorted in ascending order and without duplicates.
func FreeVars(ts ...Type) []int {
	var ids []int
	for _, t := range ts {
		ids = collectVars(ids, t)
	}
	if len(ids) < 2 {
		return ids
	}
	sort.Ints(ids)
	n := set.Uniq(sort.IntSlice(ids))
	return ids[:n]
}

func collectVars(ids []int, t Type) []int {
	switch t := t.(type) {
	case *Var:
		return append(ids, t.Id)
	case *App:
		for _, arg := range t.Args {
			ids = collectVars(ids, arg)
		}
	}
	return ids
}

// DiffVars returns the ids in a which are not in b. Both slices must be sorted.
func DiffVars(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	data := make(sort.IntSlice, 0, len(a)+len(b))
	data = append(data, a...)
	data = append(data, b...)
	n := set.Diff(data, len(a))
	return data[:n]
}
