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
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/wand"
	"github.com/wdamron/wand/internal/config"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/unify"
)

var logger = log.For(log.SectionCLI)

// Flags shared by the infer and unify commands.
type commonFlags struct {
	strategy string
	trace    bool
	config   string
	logLevel string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.strategy, "strategy", "s", "", "unification strategy: pairwise or rewrite")
	flags.BoolVarP(&f.trace, "trace", "t", false, "print every unification step")
	flags.StringVarP(&f.config, "config", "c", "", "path of a YAML configuration file")
	flags.StringVarP(&f.logLevel, "log-level", "l", "", "log level: debug, info, warn or error")
}

// settings loads the configuration file, if any, and applies the flags set on the command line.
func (f *commonFlags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("trace") {
		cfg.Trace = f.trace
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	cfg.ApplyLogging()
	logger.Debug("settings", "strategy", cfg.Strategy, "numeric_default", cfg.NumericDefault, "trace", cfg.Trace)
	return cfg, nil
}

// solver returns the unifier selected by a validated configuration.
func solver(cfg *config.Config) unify.Func {
	s, _ := wand.ParseStrategy(cfg.Strategy)
	return s.Solver()
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

// printer writes command output, with colours only when the output is a terminal.
type printer struct {
	w      io.Writer
	colour bool
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		p.colour = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return p
}

func (p *printer) paint(code, s string) string {
	if !p.colour {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// tracer prints unification steps, rendering equations with eqString.
func (p *printer) tracer(eqString func(unify.Equation) string) unify.Tracer {
	return func(step unify.Step) {
		p.line("%s %-9s %s", p.paint(ansiDim, "|"), step.Rule, eqString(step.Equation))
	}
}
