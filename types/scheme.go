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

// Scheme is a type quantified over a set of generic type-variables: `forall 'a. list['a] -> int`.
// Each use of a scheme instantiates its generic variables with fresh type-variables.
type Scheme struct {
	// Ids of the quantified type-variables, in ascending order.
	Vars []int
	Type Type
}

// Create a monomorphic scheme; the type is used as-is at every use.
func Mono(t Type) *Scheme { return &Scheme{Type: t} }

// Create a scheme quantified over every type-variable within t.
func Closed(t Type) *Scheme { return &Scheme{Vars: FreeVars(t), Type: t} }

// IsGeneric returns true if the scheme quantifies over at least one type-variable.
func (s *Scheme) IsGeneric() bool { return len(s.Vars) > 0 }

// FreeVars returns the ids of type-variables in the scheme which are not quantified.
func (s *Scheme) FreeVars() []int { return DiffVars(FreeVars(s.Type), s.Vars) }

// String renders the scheme's type with generic variables named 'a, 'b, ...
func (s *Scheme) String() string { return TypeString(s.Type) }
