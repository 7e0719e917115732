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

	"github.com/wdamron/wand"
	"github.com/wdamron/wand/parser"
	"github.com/wdamron/wand/tyerr"
	"github.com/wdamron/wand/types"
	"github.com/wdamron/wand/unify"
)

func newInferCmd() *cobra.Command {
	var (
		flags commonFlags
		expr  string
	)
	cmd := &cobra.Command{
		Use:   "infer [file.mml]",
		Short: "Infer the type of every definition of a Micro-ML program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			out := newPrinter(cmd.OutOrStdout())
			opts := cfg.Options()
			if cfg.Trace {
				opts = append(opts, wand.WithTracer(out.tracer(unify.Equation.String)))
			}
			ti := wand.NewContext(opts...)
			if expr != "" {
				return inferExpr(out, ti, expr)
			}
			if len(args) == 0 {
				return errors.New("expected a source file or --expr")
			}
			return inferFile(out, ti, args[0])
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "infer a single expression instead of a file")
	return cmd
}

func inferFile(out *printer, ti *wand.InferenceContext, path string) error {
	prog, err := parser.ParseFile(path)
	if err != nil {
		if syntax, ok := errors.Cause(err).(*tyerr.Syntax); ok {
			out.line("%s: %s", path, out.paint(ansiRed, tyerr.FormatWithCode(syntax)))
			return errors.New("syntax error")
		}
		return err
	}
	report, _ := ti.InferProgram(prog, wand.NewTypeEnv())
	for _, res := range report.Results {
		name := out.paint(ansiBold, res.Name)
		if res.Failed() {
			out.line("%s : %s", name, out.paint(ansiRed, tyerr.FormatWithCode(res.Err)))
			continue
		}
		out.line("%s : %s", name, types.TypeString(res.Type))
	}
	if report.HasError() {
		failed := len(report.Errors.Errors())
		logger.Debug("inference failed", "path", path, "errors", report.Errors)
		return errors.Errorf("%d of %d definitions could not be typed", failed, len(report.Results))
	}
	return nil
}

func inferExpr(out *printer, ti *wand.InferenceContext, src string) error {
	e, err := parser.ParseExpr(src)
	if err == nil {
		var t types.Type
		if t, err = ti.InferExpr(e, wand.NewTypeEnv()); err == nil {
			out.line("%s", types.TypeString(t))
			return nil
		}
	}
	out.line("%s", out.paint(ansiRed, tyerr.FormatWithCode(err)))
	return errors.New("expression could not be typed")
}
