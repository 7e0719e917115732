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

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/wand/parser"
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

func newUnifyCmd() *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "unify \"'a = arrow(int, 'b); ...\"",
		Short: "Solve a set of equations between type terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			out := newPrinter(cmd.OutOrStdout())
			eqs, err := parser.ParseEquations(args[0])
			if err != nil {
				out.line("%s", out.paint(ansiRed, tyerr.FormatWithCode(err)))
				return errors.New("syntax error")
			}
			var opts []unify.Option
			if cfg.Trace {
				opts = append(opts, unify.WithTracer(out.tracer(func(eq unify.Equation) string {
					return eqs.TermString(eq.Left) + " = " + eqs.TermString(eq.Right)
				})))
			}
			s, err := solver(cfg)(eqs.Eqs, opts...)
			if err != nil {
				out.line("%s", out.paint(ansiRed, tyerr.FormatWithCode(err)))
				return errors.New("equations have no solution")
			}
			s.Range(func(id int, t types.Type) bool {
				out.line("%s := %s", out.paint(ansiBold, eqs.TermString(types.NewVar(id))), eqs.TermString(t))
				return true
			})
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
