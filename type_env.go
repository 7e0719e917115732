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
	"sort"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/wand/types"
)

// Binding is the entry for an identifier within a type-environment. Exactly one of Scheme or Err is set.
type Binding struct {
	Scheme *types.Scheme
	// Set for definitions which failed to type.
	Err error
}

// Failed returns true if the binding records a definition which failed to type.
func (b Binding) Failed() bool { return b.Err != nil }

// TypeEnv is an immutable type-environment containing mappings from identifiers to type schemes.
//
// Extending an environment returns a new environment and leaves the original unchanged, so
// environments may be shared across goroutines.
type TypeEnv struct {
	m *immutable.Map
}

var emptyEnv = &TypeEnv{immutable.NewMap(nil)}

// Create an empty type-environment. Built-in primitives are resolved separately (see Builtins).
func NewTypeEnv() *TypeEnv { return emptyEnv }

// Extend returns a new environment which maps name to the scheme.
func (e *TypeEnv) Extend(name string, s *types.Scheme) *TypeEnv {
	return &TypeEnv{e.m.Set(name, Binding{Scheme: s})}
}

// Declare returns a new environment which maps name to a scheme generalized over all
// type-variables within t.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.Closed(t))
}

// ExtendFailed returns a new environment which records that the definition of name failed.
func (e *TypeEnv) ExtendFailed(name string, err error) *TypeEnv {
	return &TypeEnv{e.m.Set(name, Binding{Err: err})}
}

// Lookup the binding for an identifier.
func (e *TypeEnv) Lookup(name string) (Binding, bool) {
	b, ok := e.m.Get(name)
	if !ok {
		return Binding{}, false
	}
	return b.(Binding), true
}

// Get the number of bound identifiers.
func (e *TypeEnv) Len() int { return e.m.Len() }

// Names returns all bound identifiers in sorted order.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.m.Len())
	iter := e.m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	sort.Strings(names)
	return names
}

// MaxVar returns the largest type-variable id within any bound scheme, quantified or not,
// or -1 if there is none.
func (e *TypeEnv) MaxVar() int {
	top := -1
	iter := e.m.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		s := b.(Binding).Scheme
		if s == nil {
			continue
		}
		if ids := types.FreeVars(s.Type); len(ids) > 0 && ids[len(ids)-1] > top {
			top = ids[len(ids)-1]
		}
		if n := len(s.Vars); n > 0 && s.Vars[n-1] > top {
			top = s.Vars[n-1]
		}
	}
	return top
}

// FreeVars returns the ids of type-variables which are not quantified by the scheme of some
// binding, in ascending order.
func (e *TypeEnv) FreeVars() []int {
	var ts []types.Type
	iter := e.m.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		if s := b.(Binding).Scheme; s != nil && len(s.FreeVars()) > 0 {
			for _, id := range s.FreeVars() {
				ts = append(ts, types.NewVar(id))
			}
		}
	}
	return types.FreeVars(ts...)
}
