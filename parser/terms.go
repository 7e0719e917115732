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
	"strings"

	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

// Equations parsed from source, along with the names of their type-variables.
type Equations struct {
	Eqs []unify.Equation
	// Names of type-variables, by id.
	Names map[int]string
	ids   map[string]int
}

// String renders the equations using the source names of their type-variables.
func (eqs *Equations) String() string {
	lines := make([]string, len(eqs.Eqs))
	for i, eq := range eqs.Eqs {
		lines[i] = eqs.TermString(eq.Left) + " = " + eqs.TermString(eq.Right)
	}
	return strings.Join(lines, "\n")
}

// TermString renders a term using the source names of its type-variables.
func (eqs *Equations) TermString(t types.Type) string { return types.NamedTermString(t, eqs.Names) }

// ParseEquations reads equations between terms, separated by ';':
//
//	'a = arrow(int, 'b); list('b) = list(bool)
//
// Type-variables are marked with a quote. A name without arguments is a constant.
// Type-variables are numbered in order of first appearance, starting at 0.
func ParseEquations(src string) (*Equations, error) {
	p := New(NewLexer(src))
	eqs := &Equations{Names: make(map[int]string), ids: make(map[string]int)}
	for p.curToken.Type != EOF {
		pos := p.curToken.Pos
		left, err := p.parseTerm(eqs)
		if err != nil {
			return nil, err
		}
		if err := p.expect(ASSIGN, "equations have the form 'term = term'"); err != nil {
			return nil, err
		}
		right, err := p.parseTerm(eqs)
		if err != nil {
			return nil, err
		}
		eqs.Eqs = append(eqs.Eqs, unify.EqAt(pos, left, right))
		if p.curToken.Type == EOF {
			break
		}
		if err := p.expect(SEMI, "separate equations with ';'"); err != nil {
			return nil, err
		}
	}
	logger.Debug("parsed equations", "equations", len(eqs.Eqs), "vars", len(eqs.Names))
	return eqs, nil
}

func (p *Parser) parseTerm(eqs *Equations) (types.Type, error) {
	tok := p.curToken
	switch tok.Type {
	case TVAR:
		p.nextToken()
		id, ok := eqs.ids[tok.Literal]
		if !ok {
			id = len(eqs.ids)
			eqs.ids[tok.Literal] = id
			eqs.Names[id] = tok.Literal
		}
		return types.NewVar(id), nil

	case IDENT:
		p.nextToken()
		if p.curToken.Type != LPAREN {
			return types.NewConst(tok.Literal), nil
		}
		p.nextToken()
		var args []types.Type
		for p.curToken.Type != RPAREN {
			if len(args) > 0 {
				if err := p.expect(COMMA, ""); err != nil {
					return nil, err
				}
			}
			arg, err := p.parseTerm(eqs)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		p.nextToken()
		return &types.App{Name: tok.Literal, Args: args}, nil
	}
	return nil, p.errorf(tok, "", "a term")
}
