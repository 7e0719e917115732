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
	"errors"
	"strings"

	"github.com/benbjohnson/immutable"
)

var (
	// ErrOccurs is returned when binding a type-variable to a term which contains the variable.
	ErrOccurs = errors.New("type-variable occurs within the bound term")
	// ErrBound is returned when binding a type-variable which is already bound.
	ErrBound = errors.New("type-variable is already bound")
)

var emptySubstMap = immutable.NewSortedMap(nil)

// Subst is an immutable mapping from type-variable ids to terms. Bindings are sorted by id.
//
// A Subst built through Bind is idempotent: no bound variable occurs within any bound term,
// so applying it twice yields the same result as applying it once.
type Subst struct {
	m *immutable.SortedMap
}

// Create an empty substitution.
func NewSubst() Subst { return Subst{emptySubstMap} }

func (s Subst) bindings() *immutable.SortedMap {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Get the number of bound type-variables.
func (s Subst) Len() int { return s.bindings().Len() }

// Get the term bound to a type-variable.
func (s Subst) Lookup(id int) (Type, bool) {
	t, ok := s.bindings().Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over bindings in order of variable id.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(id int, t Type) bool) {
	iter := s.bindings().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Vars returns the ids of all bound type-variables, in ascending order.
func (s Subst) Vars() []int {
	ids := make([]int, 0, s.Len())
	s.Range(func(id int, _ Type) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Apply replaces every bound type-variable within t, recursively, until no bound variable remains.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t)
}

func (s Subst) apply(t Type) Type {
	switch t := t.(type) {
	case *Var:
		if u, ok := s.Lookup(t.Id); ok {
			return s.apply(u)
		}
		return t
	case *App:
		if len(t.Args) == 0 {
			return t
		}
		var args []Type
		for i, arg := range t.Args {
			applied := s.apply(arg)
			if args == nil && applied != arg {
				args = make([]Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = applied
			}
		}
		if args == nil {
			return t
		}
		return &App{Name: t.Name, Args: args}
	}
	return t
}

// ApplyAll applies the substitution to each term.
func (s Subst) ApplyAll(ts []Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = s.Apply(t)
	}
	return out
}

// Bind returns a new substitution which additionally maps the type-variable id to t.
//
// The term is normalized through the existing bindings before insertion and the occurs check
// runs at this point, never after; existing bindings which mention id are re-normalized so
// the result stays idempotent. Binding a variable to itself is a no-op.
func (s Subst) Bind(id int, t Type) (Subst, error) {
	if _, bound := s.Lookup(id); bound {
		return s, ErrBound
	}
	t = s.Apply(t)
	if v, ok := t.(*Var); ok && v.Id == id {
		return s, nil
	}
	if Occurs(id, t) {
		return s, ErrOccurs
	}
	m := s.bindings()
	var stale []int
	s.Range(func(k int, u Type) bool {
		if Occurs(id, u) {
			stale = append(stale, k)
		}
		return true
	})
	for _, k := range stale {
		u, _ := m.Get(k)
		m = m.Set(k, Substitute(u.(Type), id, t))
	}
	return Subst{m.Set(id, t)}, nil
}

// Compose returns a substitution equivalent to applying s, then next.
func (s Subst) Compose(next Subst) Subst {
	if next.Len() == 0 {
		return s
	}
	m := s.bindings()
	s.Range(func(k int, u Type) bool {
		m = m.Set(k, next.Apply(u))
		return true
	})
	next.Range(func(k int, u Type) bool {
		if _, ok := s.Lookup(k); !ok {
			m = m.Set(k, u)
		}
		return true
	})
	return Subst{m}
}

// IsIdempotent reports whether no bound variable occurs within a bound term.
func (s Subst) IsIdempotent() bool {
	ok := true
	s.Range(func(_ int, t Type) bool {
		for _, id := range FreeVars(t) {
			if _, bound := s.Lookup(id); bound {
				ok = false
				return false
			}
		}
		return true
	})
	return ok
}

// String returns the bindings in term notation: `{'t1 := int, 't2 := list('t0)}`.
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	s.Range(func(id int, t Type) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		termString(&sb, NewVar(id))
		sb.WriteString(" := ")
		termString(&sb, t)
		i++
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
