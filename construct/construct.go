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

// Package construct provides shorthand builders for type terms and syntax trees.
package construct

import (
	"strconv"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var { return types.NewVar(id) }

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.App { return types.NewConst(name) }

// Type application: `list[int]`
func TApp(name string, args ...types.Type) *types.App {
	return &types.App{Name: name, Args: args}
}

// Function type: `int -> int`
func TArrow(arg, ret types.Type) *types.App { return types.NewArrow(arg, ret) }

// Curried function type: `int -> int -> int`
func TArrowN(ret types.Type, args ...types.Type) types.Type { return types.Curry(args, ret) }

// List type: `list[int]`
func TList(elem types.Type) *types.App { return types.NewList(elem) }

// Expressions:

// Integer literal
func Int(n int) *ast.Literal { return &ast.Literal{Kind: ast.IntLit, Syntax: strconv.Itoa(n)} }

// Real literal: `2.5`
func Real(syntax string) *ast.Literal { return &ast.Literal{Kind: ast.RealLit, Syntax: syntax} }

// Boolean literal
func Bool(b bool) *ast.Literal { return &ast.Literal{Kind: ast.BoolLit, Syntax: strconv.FormatBool(b)} }

// Unit literal: `()`
func Unit() *ast.Literal { return &ast.Literal{Kind: ast.UnitLit, Syntax: "()"} }

// Identifier
func Ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

// Application: `f x y` is `(f x) y`
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `fn x y => x`
func Fn(params []string, body ast.Expr) *ast.Fn {
	return &ast.Fn{Params: Params(params...), Body: body}
}

// Abstraction: `fn x => x`
func Fn1(param string, body ast.Expr) *ast.Fn { return Fn([]string{param}, body) }

// Let-binding: `let a = 1 in e`
func Let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: &ast.Param{Name: name}, Value: value, Body: body}
}

// Conditional: `if c then t else e`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Binary operation: `x + y`
func Binary(op string, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

// Unary operation: `-x`, `not b`
func Unary(op string, operand ast.Expr) *ast.Unary { return &ast.Unary{Op: op, Operand: operand} }

// Parameters
func Params(names ...string) []*ast.Param {
	params := make([]*ast.Param, len(names))
	for i, name := range names {
		params[i] = &ast.Param{Name: name}
	}
	return params
}

// Definitions:

// Top-level definition: `fun f x y = body`
func Def(name string, params []string, body ast.Expr) *ast.FuncDef {
	return &ast.FuncDef{Name: name, Params: Params(params...), Body: body}
}

// Program
func Program(defs ...*ast.FuncDef) *ast.Program { return &ast.Program{Defs: defs} }
