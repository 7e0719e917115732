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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(uint(i))
	}
}

func getVarName(i uint) string {
	if i < uint(len(_names)) && _names[i] != "" {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(byte(97+i%26))
}

func (p *typePrinter) nextName() string {
	return getVarName(uint(len(p.idNames)))
}

// TypeString returns a readable representation of a type. Type-variables are renamed
// 'a, 'b, ... in order of first appearance, so types equal up to renaming print equally:
//
//	list['a] -> int
//	('a -> 'b) -> 'a -> 'b
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings renders several types sharing a single naming of type-variables.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		out[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return out
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		name, ok := p.idNames[t.Id]
		if !ok {
			name = p.nextName()
			p.idNames[t.Id] = name
		}
		p.sb.WriteString(name)

	case *App:
		if t.IsArrow() {
			if simple {
				p.sb.WriteByte('(')
			}
			typeString(p, true, t.Args[0])
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Args[1])
			if simple {
				p.sb.WriteByte(')')
			}
			return
		}
		p.sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, arg)
		}
		p.sb.WriteByte(']')

	case nil:
		p.sb.WriteString("<nil>")
	}
}

// TermString returns the raw term notation of a type, keeping type-variable ids:
//
//	arrow(list('t3), int)
func TermString(t Type) string {
	var sb strings.Builder
	termString(&sb, t)
	return sb.String()
}

// VarName returns the term notation of the type-variable with the given id.
func VarName(id int) string { return "'t" + strconv.Itoa(id) }

func termString(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString(VarName(t.Id))
	case *App:
		sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			termString(sb, arg)
		}
		sb.WriteByte(')')
	case nil:
		sb.WriteString("<nil>")
	}
}

// NamedTermString renders a term in term notation, printing type-variables through names
// (for terms parsed from source with named variables). Unnamed variables use VarName.
func NamedTermString(t Type, names map[int]string) string {
	var sb strings.Builder
	namedTermString(&sb, t, names)
	return sb.String()
}

func namedTermString(sb *strings.Builder, t Type, names map[int]string) {
	switch t := t.(type) {
	case *Var:
		if name, ok := names[t.Id]; ok {
			sb.WriteByte('\'')
			sb.WriteString(name)
			return
		}
		sb.WriteString(VarName(t.Id))
	case *App:
		sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			namedTermString(sb, arg, names)
		}
		sb.WriteByte(')')
	case nil:
		sb.WriteString("<nil>")
	}
}
