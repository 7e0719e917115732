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

// wand provides equational type inference for Micro-ML, a small functional language with
// conditionals, let-bindings, anonymous functions, application, arithmetic, comparison and
// boolean operators, and list primitives.
//
// Inference runs in two phases. Constraint generation walks each definition, assigns a fresh
// type-variable to every node and emits equations relating them. Unification then solves the
// equations into a substitution, using either pairwise resolution or set rewriting (see package
// unify). Applying the substitution to a definition's type-variable yields its principal type.
//
// Top-level definitions are inferred in dependency order; mutually-recursive definitions are
// inferred together. Each solved definition is generalized, so later uses instantiate it with
// fresh type-variables. Let-bound names are monomorphic.
//
// Links:
//
// Unification (Martelli and Montanari, 1982): https://doi.org/10.1145/357162.357169
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package wand
