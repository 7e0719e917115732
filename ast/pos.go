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
	"strconv"

	"github.com/wdamron/wand/types"
)

// Pos is a position within source text. Lines and columns start at 1; the zero Pos is unknown.
type Pos struct {
	Line, Col int
}

// IsValid returns true if the position is known.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Positioner is implemented by all syntax nodes.
type Positioner interface {
	Position() Pos
}

// Typed is implemented by all syntax nodes which own a type-variable placeholder.
type Typed interface {
	Positioner
	// TypeVar returns the placeholder assigned during constraint generation, or nil.
	TypeVar() *types.Var
	// SetTypeVar assigns the placeholder. Assignments should occur indirectly, during inference.
	SetTypeVar(tv *types.Var)
	// Type returns the resolved type of the node. Types are only available after inference.
	Type() types.Type
	// SetType assigns the resolved type. Assignments should occur indirectly, during inference.
	SetType(t types.Type)
}

// annotation holds the placeholder and the resolved type of a node.
type annotation struct {
	tv       *types.Var
	inferred types.Type
}

func (a *annotation) TypeVar() *types.Var      { return a.tv }
func (a *annotation) SetTypeVar(tv *types.Var) { a.tv = tv }
func (a *annotation) Type() types.Type         { return a.inferred }
func (a *annotation) SetType(t types.Type)     { a.inferred = t }
