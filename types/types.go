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

// Constructor names understood by the inference engine.
const (
	IntName   = "int"
	BoolName  = "bool"
	RealName  = "real"
	UnitName  = "unit"
	ArrowName = "arrow"
	ListName  = "list"
)

// Type is the base interface for all type terms.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return t.Name }

// Type-variable
type Var struct {
	Id int
}

// Create a type-variable with the given id. Ids are allocated by the caller.
func NewVar(id int) *Var { return &Var{Id: id} }

// Applied type constructor: `int`, `list(int)`, `arrow(int, bool)`
type App struct {
	Name string
	Args []Type
}

// Base types, shared between all terms.
var (
	Int  = &App{Name: IntName}
	Bool = &App{Name: BoolName}
	Real = &App{Name: RealName}
	Unit = &App{Name: UnitName}
)

// Create a zero-arg constructor.
func NewConst(name string) *App { return &App{Name: name} }

// Function type: `arrow(from, to)`
func NewArrow(from, to Type) *App { return &App{Name: ArrowName, Args: []Type{from, to}} }

// List type: `list(elem)`
func NewList(elem Type) *App { return &App{Name: ListName, Args: []Type{elem}} }

// Curry chains params right-associatively into nested arrows ending in ret.
// A function without parameters takes unit.
func Curry(params []Type, ret Type) Type {
	if len(params) == 0 {
		return NewArrow(Unit, ret)
	}
	t := ret
	for i := len(params) - 1; i >= 0; i-- {
		t = NewArrow(params[i], t)
	}
	return t
}

// Arity returns the number of arguments applied to the constructor.
func (t *App) Arity() int { return len(t.Args) }

// IsArrow returns true if t is a function type.
func (t *App) IsArrow() bool { return t.Name == ArrowName && len(t.Args) == 2 }

// IsList returns true if t is a list type.
func (t *App) IsList() bool { return t.Name == ListName && len(t.Args) == 1 }

// IsNumeric returns true for the numeric base types.
func IsNumeric(t Type) bool {
	app, ok := t.(*App)
	if !ok || len(app.Args) != 0 {
		return false
	}
	return app.Name == IntName || app.Name == RealName
}

// Equal reports whether two terms are structurally equal. Variables are compared by id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *App:
		b, ok := b.(*App)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// SameConstructor reports whether two constructor applications may be decomposed pairwise.
func SameConstructor(a, b *App) bool {
	return a.Name == b.Name && len(a.Args) == len(b.Args)
}

// Occurs reports whether the type-variable with the given id occurs within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == id
	case *App:
		for _, arg := range t.Args {
			if Occurs(id, arg) {
				return true
			}
		}
	}
	return false
}

// Substitute replaces every occurrence of the type-variable id in t with with.
// Terms which do not contain the variable are returned without copying.
func Substitute(t Type, id int, with Type) Type {
	switch t := t.(type) {
	case *Var:
		if t.Id == id {
			return with
		}
		return t
	case *App:
		if len(t.Args) == 0 || !Occurs(id, t) {
			return t
		}
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Substitute(arg, id, with)
		}
		return &App{Name: t.Name, Args: args}
	}
	return t
}
