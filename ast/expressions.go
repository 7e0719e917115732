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

package ast

// Expr is the base for all expressions.
type Expr interface {
	Typed
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Fn)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Unary)(nil)

	_ Typed = (*Param)(nil)
	_ Typed = (*FuncDef)(nil)
)

// Kind of literal value
type LitKind int

const (
	IntLit LitKind = iota
	RealLit
	BoolLit
	UnitLit
)

func (k LitKind) String() string {
	switch k {
	case IntLit:
		return "int"
	case RealLit:
		return "real"
	case BoolLit:
		return "bool"
	case UnitLit:
		return "unit"
	}
	return "invalid"
}

// Literal value: `1`, `2.5`, `true`, `()`
type Literal struct {
	Kind   LitKind
	Syntax string
	Pos    Pos
	annotation
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

func (e *Literal) Position() Pos { return e.Pos }

// Identifier: `x`
type Ident struct {
	Name string
	Pos  Pos
	annotation
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

func (e *Ident) Position() Pos { return e.Pos }

// Conditional: `if c then t else e`
type If struct {
	Cond, Then, Else Expr
	Pos              Pos
	annotation
}

// "If"
func (e *If) ExprName() string { return "If" }

func (e *If) Position() Pos { return e.Pos }

// Let-binding: `let x = 1 in e`. The bound name is not visible within its own value.
type Let struct {
	Var   *Param
	Value Expr
	Body  Expr
	Pos   Pos
	annotation
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

func (e *Let) Position() Pos { return e.Pos }

// Abstraction: `fn x y => x`
type Fn struct {
	Params []*Param
	Body   Expr
	Pos    Pos
	annotation
}

// "Fn"
func (e *Fn) ExprName() string { return "Fn" }

func (e *Fn) Position() Pos { return e.Pos }

// Application: `f x`. Multi-argument calls are curried: `f x y` is `(f x) y`.
type Call struct {
	Func Expr
	Arg  Expr
	Pos  Pos
	annotation
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Position() Pos { return e.Pos }

// Operators
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpEq  = "=="
	OpNe  = "!="
	OpLt  = "<"
	OpGt  = ">"
	OpLe  = "<="
	OpGe  = ">="
	OpAnd = "and"
	OpOr  = "or"
	OpNot = "not"
	OpNeg = "-"
)

// IsArithmetic returns true for `+ - * /`.
func IsArithmetic(op string) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// IsComparison returns true for `== != < > <= >=`.
func IsComparison(op string) bool {
	switch op {
	case OpEq, OpNe, OpLt, OpGt, OpLe, OpGe:
		return true
	}
	return false
}

// IsLogical returns true for `and or`.
func IsLogical(op string) bool { return op == OpAnd || op == OpOr }

// Binary operation: `x + y`
type Binary struct {
	Op          string
	Left, Right Expr
	Pos         Pos
	annotation
}

// "Binary"
func (e *Binary) ExprName() string { return "Binary" }

func (e *Binary) Position() Pos { return e.Pos }

// Unary operation: `-x`, `not b`
type Unary struct {
	Op      string
	Operand Expr
	Pos     Pos
	annotation
}

// "Unary"
func (e *Unary) ExprName() string { return "Unary" }

func (e *Unary) Position() Pos { return e.Pos }

// Named parameter (or let-bound variable) owning its own placeholder.
type Param struct {
	Name string
	Pos  Pos
	annotation
}

func (p *Param) Position() Pos { return p.Pos }

// Top-level function definition: `fun f x y = body;`
type FuncDef struct {
	Name   string
	Params []*Param
	Body   Expr
	Pos    Pos
	annotation
}

func (d *FuncDef) Position() Pos { return d.Pos }

// Program is a sequence of top-level function definitions.
type Program struct {
	Defs []*FuncDef
}

// Lookup returns the first definition with the given name, or nil.
func (p *Program) Lookup(name string) *FuncDef {
	for _, d := range p.Defs {
		if d.Name == name {
			return d
		}
	}
	return nil
}
