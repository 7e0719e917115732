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

import (
	"strings"
)

// Binding strength of each syntax form, used to parenthesize printed expressions.
const (
	precLowest = iota
	precOr
	precAnd
	precCompare
	precAdd
	precMul
	precUnary
	precCall
	precAtom
)

func binaryPrec(op string) int {
	switch op {
	case OpOr:
		return precOr
	case OpAnd:
		return precAnd
	case OpEq, OpNe, OpLt, OpGt, OpLe, OpGe:
		return precCompare
	case OpAdd, OpSub:
		return precAdd
	case OpMul, OpDiv:
		return precMul
	}
	return precLowest
}

func exprPrec(e Expr) int {
	switch e := e.(type) {
	case *Literal, *Ident:
		return precAtom
	case *Call:
		return precCall
	case *Unary:
		return precUnary
	case *Binary:
		return binaryPrec(e.Op)
	}
	return precLowest
}

// ExprString returns a string representation of an expression, in Micro-ML syntax.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, precLowest, e)
	return sb.String()
}

// DefString returns a string representation of a definition: `fun f x = body`.
func DefString(d *FuncDef) string {
	var sb strings.Builder
	defString(&sb, d)
	return sb.String()
}

// ProgramString returns a string representation of a program, one definition per line.
func ProgramString(p *Program) string {
	var sb strings.Builder
	for i, d := range p.Defs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		defString(&sb, d)
		sb.WriteByte(';')
	}
	return sb.String()
}

func defString(sb *strings.Builder, d *FuncDef) {
	sb.WriteString("fun ")
	sb.WriteString(d.Name)
	for _, p := range d.Params {
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
	}
	sb.WriteString(" = ")
	exprString(sb, precLowest, d.Body)
}

func exprString(sb *strings.Builder, min int, e Expr) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	wrap := exprPrec(e) < min
	if wrap {
		sb.WriteByte('(')
	}

	switch et := e.(type) {
	case *Literal:
		sb.WriteString(et.Syntax)

	case *Ident:
		sb.WriteString(et.Name)

	case *If:
		sb.WriteString("if ")
		exprString(sb, precLowest, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, precLowest, et.Then)
		sb.WriteString(" else ")
		exprString(sb, precLowest, et.Else)

	case *Let:
		sb.WriteString("let ")
		sb.WriteString(et.Var.Name)
		sb.WriteString(" = ")
		exprString(sb, precLowest, et.Value)
		sb.WriteString(" in ")
		exprString(sb, precLowest, et.Body)

	case *Fn:
		sb.WriteString("fn")
		for _, p := range et.Params {
			sb.WriteByte(' ')
			sb.WriteString(p.Name)
		}
		sb.WriteString(" => ")
		exprString(sb, precLowest, et.Body)

	case *Call:
		exprString(sb, precCall, et.Func)
		sb.WriteByte(' ')
		exprString(sb, precAtom, et.Arg)

	case *Binary:
		prec := binaryPrec(et.Op)
		left, right := prec, prec+1
		if prec == precCompare {
			left = prec + 1
		}
		exprString(sb, left, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op)
		sb.WriteByte(' ')
		exprString(sb, right, et.Right)

	case *Unary:
		sb.WriteString(et.Op)
		if _, nested := et.Operand.(*Unary); nested || et.Op == OpNot {
			sb.WriteByte(' ')
		}
		exprString(sb, precUnary, et.Operand)
	}

	if wrap {
		sb.WriteByte(')')
	}
}
