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

// Package tyerr defines the typing errors reported during inference. Each error carries a code
// and the source position of the syntax which produced it.
package tyerr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/types"
)

// Code identifies the kind of a typing error.
type Code int

const (
	None Code = iota
	UnboundIdent
	TypeMismatch
	CyclicType
	UnresolvedDep
	DuplicateDef
	Parse
)

func (c Code) String() string { return fmt.Sprintf("E%03d", int(c)) }

// Error is implemented by all typing errors.
type Error interface {
	error
	Code() Code
	ast.Positioner
}

var (
	_ Error = (*Unbound)(nil)
	_ Error = (*Mismatch)(nil)
	_ Error = (*Cyclic)(nil)
	_ Error = (*Unresolved)(nil)
	_ Error = (*Duplicate)(nil)
	_ Error = (*Syntax)(nil)
)

// FormatWithCode renders an error with its code and position: `(E002) 3:14: type mismatch: ...`.
// Errors which do not implement Error are rendered as-is.
func FormatWithCode(err error) string {
	e, ok := err.(Error)
	if !ok {
		return err.Error()
	}
	if pos := e.Position(); pos.IsValid() {
		return fmt.Sprintf("(%v) %v: %s", e.Code(), pos, e.Error())
	}
	return fmt.Sprintf("(%v) %s", e.Code(), e.Error())
}

// CodeOf returns the code of the first typing error in err's chain, or None.
func CodeOf(err error) Code {
	var e Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return None
}

// Unbound is reported when an identifier has no binding in scope.
type Unbound struct {
	Pos  ast.Pos
	Name string
}

func (e *Unbound) Error() string { return fmt.Sprintf("identifier '%s' is not defined", e.Name) }
func (e *Unbound) Code() Code { return UnboundIdent }
func (e *Unbound) Position() ast.Pos { return e.Pos }

// Mismatch is reported when two constructors with different names or arities must be equal.
type Mismatch struct {
	Pos         ast.Pos
	Left, Right types.Type
	// Set when the constructor names match but their arities differ.
	Arity bool
}

func (e *Mismatch) Error() string {
	names := types.TypeStrings(e.Left, e.Right)
	if e.Arity {
		return fmt.Sprintf("type mismatch: '%s' and '%s' have different arities", names[0], names[1])
	}
	return fmt.Sprintf("type mismatch: expected '%s', found '%s'", names[0], names[1])
}
func (e *Mismatch) Code() Code { return TypeMismatch }
func (e *Mismatch) Position() ast.Pos { return e.Pos }

// Cyclic is reported when a type-variable would be bound to a term containing itself.
type Cyclic struct {
	Pos  ast.Pos
	Var  *types.Var
	Term types.Type
}

func (e *Cyclic) Error() string {
	names := types.TypeStrings(e.Var, e.Term)
	return fmt.Sprintf("cyclic type: '%s' occurs within '%s'", names[0], names[1])
}
func (e *Cyclic) Code() Code { return CyclicType }
func (e *Cyclic) Position() ast.Pos { return e.Pos }

// Unresolved is reported when a definition references another definition which failed to type.
type Unresolved struct {
	Pos ast.Pos
	// Name of the failed dependency.
	Name string
}

func (e *Unresolved) Error() string {
	return fmt.Sprintf("'%s' could not be typed, so its uses cannot be resolved", e.Name)
}
func (e *Unresolved) Code() Code { return UnresolvedDep }
func (e *Unresolved) Position() ast.Pos { return e.Pos }

// Duplicate is reported for a second top-level definition of the same name.
type Duplicate struct {
	Pos  ast.Pos
	Name string
	// Position of the first definition.
	Prev ast.Pos
}

func (e *Duplicate) Error() string {
	return fmt.Sprintf("'%s' is already defined at %v", e.Name, e.Prev)
}
func (e *Duplicate) Code() Code { return DuplicateDef }
func (e *Duplicate) Position() ast.Pos { return e.Pos }

// Syntax is reported by the parser.
type Syntax struct {
	Pos     ast.Pos
	Message string
	Hint    string
}

func (e *Syntax) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return e.Message + " (" + e.Hint + ")"
}
func (e *Syntax) Code() Code { return Parse }
func (e *Syntax) Position() ast.Pos { return e.Pos }

// Errors collects the typing errors of a program.
type Errors struct {
	errs []error
}

// With appends errors, allocating the collection if r is nil.
func (r *Errors) With(errs ...error) *Errors {
	if r == nil {
		r = &Errors{}
	}
	r.errs = append(r.errs, errs...)
	return r
}

func (r *Errors) Errors() []error {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool { return r != nil && len(r.errs) > 0 }

func (r *Errors) Error() string {
	lines := make([]string, len(r.Errors()))
	for i, err := range r.Errors() {
		lines[i] = FormatWithCode(err)
	}
	return strings.Join(lines, "\n")
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, err := range r.Errors() {
		vals = append(vals, slog.String(fmt.Sprint("e", i), FormatWithCode(err)))
	}
	return slog.GroupValue(vals...)
}
