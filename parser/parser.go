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

// Package parser reads Micro-ML programs and raw type equations.
//
// Micro-ML grammar, loosest binding first:
//
//	program ::= { "fun" ID { ID } "=" expr ";" }
//	expr    ::= "if" expr "then" expr "else" expr
//	          | "let" ID "=" expr "in" expr
//	          | "fn" { ID } "=>" expr
//	          | expr0
//	expr0   ::= expr1 { "or" expr1 }
//	expr1   ::= expr2 { "and" expr2 }
//	expr2   ::= expr3 [ ( "==" | "!=" | "<" | ">" | "<=" | ">=" ) expr3 ]
//	expr3   ::= expr4 { ( "+" | "-" ) expr4 }
//	expr4   ::= expr5 { ( "*" | "/" ) expr5 }
//	expr5   ::= { "-" | "not" } expr6
//	expr6   ::= INT | REAL | "true" | "false" | ( ID | "(" [ expr ] ")" ) { atom }
//
// Comments start with '#' and run to the end of the line.
package parser

import (
	"os"

	"github.com/pkg/errors"

	"github.com/wdamron/wand/ast"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/tyerr"
)

var logger = log.For(log.SectionParse)

type Parser struct {
	l         *Lexer
	curToken  Token
	peekToken Token
}

func New(l *Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse reads a Micro-ML program. The first syntax error is returned as a *tyerr.Syntax.
func Parse(src string) (*ast.Program, error) {
	p := New(NewLexer(src))
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed program", "definitions", len(prog.Defs))
	return prog, nil
}

// ParseFile reads and parses a Micro-ML source file.
func ParseFile(path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}
	prog, err := Parse(string(src))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return prog, nil
}

// ParseExpr reads a single Micro-ML expression.
func ParseExpr(src string) (ast.Expr, error) {
	p := New(NewLexer(src))
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF, ""); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) errorf(tok Token, hint, expected string) error {
	found := tok.Type.String()
	if tok.Type == IDENT || tok.Type == INT || tok.Type == REAL || tok.Type == ILLEGAL || tok.Type == TVAR {
		found += " '" + tok.Literal + "'"
	}
	msg := "unexpected " + found
	if expected != "" {
		msg += ", expected " + expected
	}
	return &tyerr.Syntax{Pos: tok.Pos, Message: msg, Hint: hint}
}

// expect consumes the current token if it has the given type.
func (p *Parser) expect(t TokenType, hint string) error {
	if p.curToken.Type != t {
		return p.errorf(p.curToken, hint, t.String())
	}
	p.nextToken()
	return nil
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.curToken.Type != EOF {
		def, err := p.parseDef()
		if err != nil {
			return nil, err
		}
		if err := p.expect(SEMI, "definitions end with ';'"); err != nil {
			return nil, err
		}
		prog.Defs = append(prog.Defs, def)
	}
	return prog, nil
}

func (p *Parser) parseDef() (*ast.FuncDef, error) {
	pos := p.curToken.Pos
	if err := p.expect(FUN, "definitions start with 'fun'"); err != nil {
		return nil, err
	}
	if p.curToken.Type != IDENT {
		return nil, p.errorf(p.curToken, "", "function name")
	}
	name := p.curToken.Literal
	p.nextToken()
	params := p.parseParams()
	if err := p.expect(ASSIGN, ""); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: name, Params: params, Body: body, Pos: pos}, nil
}

func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	for p.curToken.Type == IDENT {
		params = append(params, &ast.Param{Name: p.curToken.Literal, Pos: p.curToken.Pos})
		p.nextToken()
	}
	return params
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.curToken.Type {
	case IF:
		return p.parseIf()
	case LET:
		return p.parseLet()
	case FN:
		return p.parseFn()
	}
	return p.parseOr()
}

func (p *Parser) parseIf() (ast.Expr, error) {
	pos := p.curToken.Pos
	p.nextToken()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(THEN, ""); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(ELSE, "every 'if' needs an 'else'"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Pos: pos}, nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	pos := p.curToken.Pos
	p.nextToken()
	if p.curToken.Type != IDENT {
		return nil, p.errorf(p.curToken, "", "variable name")
	}
	v := &ast.Param{Name: p.curToken.Literal, Pos: p.curToken.Pos}
	p.nextToken()
	if err := p.expect(ASSIGN, ""); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(IN, ""); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Var: v, Value: value, Body: body, Pos: pos}, nil
}

func (p *Parser) parseFn() (ast.Expr, error) {
	pos := p.curToken.Pos
	p.nextToken()
	params := p.parseParams()
	if err := p.expect(ARROW, ""); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Fn{Params: params, Body: body, Pos: pos}, nil
}

// binaryLevel parses left-associative operators of one precedence level.
func (p *Parser) binaryLevel(next func() (ast.Expr, error), ops map[TokenType]string, repeat bool) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.curToken.Type]
		if !ok {
			return left, nil
		}
		pos := p.curToken.Pos
		p.nextToken()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right, Pos: pos}
		if !repeat {
			return left, nil
		}
	}
}

var (
	orOps      = map[TokenType]string{OR: ast.OpOr}
	andOps     = map[TokenType]string{AND: ast.OpAnd}
	compareOps = map[TokenType]string{EQ: ast.OpEq, NE: ast.OpNe, LT: ast.OpLt, GT: ast.OpGt, LE: ast.OpLe, GE: ast.OpGe}
	addOps     = map[TokenType]string{PLUS: ast.OpAdd, MINUS: ast.OpSub}
	mulOps     = map[TokenType]string{STAR: ast.OpMul, SLASH: ast.OpDiv}
)

func (p *Parser) parseOr() (ast.Expr, error) { return p.binaryLevel(p.parseAnd, orOps, true) }

func (p *Parser) parseAnd() (ast.Expr, error) { return p.binaryLevel(p.parseCompare, andOps, true) }

// Comparisons do not associate: `a < b < c` is a syntax error.
func (p *Parser) parseCompare() (ast.Expr, error) {
	return p.binaryLevel(p.parseAdd, compareOps, false)
}

func (p *Parser) parseAdd() (ast.Expr, error) { return p.binaryLevel(p.parseMul, addOps, true) }

func (p *Parser) parseMul() (ast.Expr, error) { return p.binaryLevel(p.parseUnary, mulOps, true) }

func (p *Parser) parseUnary() (ast.Expr, error) {
	type prefix struct {
		op  string
		pos ast.Pos
	}
	var ops []prefix
	for p.curToken.Type == MINUS || p.curToken.Type == NOT {
		op := ast.OpNeg
		if p.curToken.Type == NOT {
			op = ast.OpNot
		}
		ops = append(ops, prefix{op, p.curToken.Pos})
		p.nextToken()
	}
	e, err := p.parseApply()
	if err != nil {
		return nil, err
	}
	for i := len(ops) - 1; i >= 0; i-- {
		e = &ast.Unary{Op: ops[i].op, Operand: e, Pos: ops[i].pos}
	}
	return e, nil
}

// parseApply parses an atom followed by its arguments: `f a b` is `(f a) b`.
// Literals are never applied.
func (p *Parser) parseApply() (ast.Expr, error) {
	literal := p.curToken.Type != IDENT && p.curToken.Type != LPAREN
	head, err := p.parseAtom()
	if err != nil || literal {
		return head, err
	}
	for startsAtom(p.curToken.Type) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		head = &ast.Call{Func: head, Arg: arg, Pos: head.Position()}
	}
	return head, nil
}

func startsAtom(t TokenType) bool {
	switch t {
	case INT, REAL, TRUE, FALSE, IDENT, LPAREN:
		return true
	}
	return false
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case INT:
		p.nextToken()
		return &ast.Literal{Kind: ast.IntLit, Syntax: tok.Literal, Pos: tok.Pos}, nil
	case REAL:
		p.nextToken()
		return &ast.Literal{Kind: ast.RealLit, Syntax: tok.Literal, Pos: tok.Pos}, nil
	case TRUE, FALSE:
		p.nextToken()
		return &ast.Literal{Kind: ast.BoolLit, Syntax: tok.Literal, Pos: tok.Pos}, nil
	case IDENT:
		p.nextToken()
		return &ast.Ident{Name: tok.Literal, Pos: tok.Pos}, nil
	case LPAREN:
		p.nextToken()
		if p.curToken.Type == RPAREN {
			p.nextToken()
			return &ast.Literal{Kind: ast.UnitLit, Syntax: "()", Pos: tok.Pos}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RPAREN, ""); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.errorf(tok, "", "an expression")
}
