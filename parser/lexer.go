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

package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/wand/ast"
)

type TokenType uint8

const (
	EOF TokenType = iota
	ILLEGAL

	IDENT
	INT
	REAL
	TVAR // 'a, within term equations

	FUN
	FN
	IF
	THEN
	ELSE
	LET
	IN
	TRUE
	FALSE
	AND
	OR
	NOT

	LPAREN
	RPAREN
	PLUS
	MINUS
	STAR
	SLASH
	ARROW  // =>
	ASSIGN // =
	EQ     // ==
	NE     // !=
	LT
	GT
	LE
	GE
	SEMI
	COMMA
)

var keywords = map[string]TokenType{
	"fun":   FUN,
	"fn":    FN,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"let":   LET,
	"in":    IN,
	"true":  TRUE,
	"false": FALSE,
	"and":   AND,
	"or":    OR,
	"not":   NOT,
}

var tokenNames = [...]string{
	EOF:     "end of input",
	ILLEGAL: "illegal character",
	IDENT:   "identifier",
	INT:     "integer",
	REAL:    "real",
	TVAR:    "type-variable",
	LPAREN:  "'('",
	RPAREN:  "')'",
	PLUS:    "'+'",
	MINUS:   "'-'",
	STAR:    "'*'",
	SLASH:   "'/'",
	ARROW:   "'=>'",
	ASSIGN:  "'='",
	EQ:      "'=='",
	NE:      "'!='",
	LT:      "'<'",
	GT:      "'>'",
	LE:      "'<='",
	GE:      "'>='",
	SEMI:    "';'",
	COMMA:   "','",
}

func (t TokenType) String() string {
	for kw, kt := range keywords {
		if kt == t {
			return "'" + kw + "'"
		}
	}
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return "unknown token"
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     ast.Pos
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken scans the next token. At the end of input, EOF is returned repeatedly.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()
	pos := ast.Pos{Line: l.line, Col: l.column}

	single := func(t TokenType) Token {
		tok := Token{Type: t, Literal: string(l.ch), Pos: pos}
		l.readChar()
		return tok
	}
	double := func(t TokenType) Token {
		lit := string(l.ch) + string(l.peekChar())
		l.readChar()
		l.readChar()
		return Token{Type: t, Literal: lit, Pos: pos}
	}

	switch l.ch {
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: EOF, Pos: pos}
		}
		return single(ILLEGAL)
	case '(':
		return single(LPAREN)
	case ')':
		return single(RPAREN)
	case '+':
		return single(PLUS)
	case '-':
		return single(MINUS)
	case '*':
		return single(STAR)
	case '/':
		return single(SLASH)
	case ';':
		return single(SEMI)
	case ',':
		return single(COMMA)
	case '=':
		switch l.peekChar() {
		case '=':
			return double(EQ)
		case '>':
			return double(ARROW)
		}
		return single(ASSIGN)
	case '!':
		if l.peekChar() == '=' {
			return double(NE)
		}
		return single(ILLEGAL)
	case '<':
		if l.peekChar() == '=' {
			return double(LE)
		}
		return single(LT)
	case '>':
		if l.peekChar() == '=' {
			return double(GE)
		}
		return single(GT)
	case '\'':
		l.readChar()
		if !isLetter(l.ch) {
			return Token{Type: ILLEGAL, Literal: "'", Pos: pos}
		}
		return Token{Type: TVAR, Literal: l.readIdentifier(), Pos: pos}
	}

	if isLetter(l.ch) {
		lit := l.readIdentifier()
		if kw, ok := keywords[lit]; ok {
			return Token{Type: kw, Literal: lit, Pos: pos}
		}
		return Token{Type: IDENT, Literal: lit, Pos: pos}
	}
	if isDigit(l.ch) {
		return l.readNumber(pos)
	}
	return single(ILLEGAL)
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber scans `\d+` or `\d+\.\d+`.
func (l *Lexer) readNumber(pos ast.Pos) Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return Token{Type: REAL, Literal: l.input[start:l.position], Pos: pos}
	}
	return Token{Type: INT, Literal: l.input[start:l.position], Pos: pos}
}

func isLetter(ch rune) bool { return ch < utf8.RuneSelf && unicode.IsLetter(ch) }

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
