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

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/wand"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/parser"
	"github.com/wdamron/wand/types"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "pairwise", c.Strategy)
	assert.Equal(t, "int", c.NumericDefault)
	assert.False(t, c.Trace)
	assert.Equal(t, slog.LevelWarn, c.Level())
	assert.Len(t, c.LogSections, 4)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
strategy: rewrite
numeric_default: real
trace: true
log_level: debug
log_sections: [unify]
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Strategy:       "rewrite",
		NumericDefault: "real",
		Trace:          true,
		LogLevel:       "debug",
		LogSections:    []string{"unify"},
	}, c)
	assert.Equal(t, slog.LevelDebug, c.Level())

	partial, err := Parse([]byte("trace: true\n"))
	require.NoError(t, err)
	assert.True(t, partial.Trace)
	assert.Equal(t, "pairwise", partial.Strategy)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		yaml    string
		message string
	}{
		{"strategy: robinson", `strategy: unknown unification strategy "robinson"`},
		{"numeric_default: bool", `numeric_default: expected int or real, found "bool"`},
		{"log_level: loud", "log_level"},
		{"log_sections: [eval]", `log_sections: unknown section "eval"`},
		{"strategy: [", "decoding yaml"},
	}
	for _, c := range cases {
		t.Run(c.yaml, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: rewrite\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rewrite", c.Strategy)

	require.NoError(t, os.WriteFile(path, []byte("numeric_default: text\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config "+path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Strategy = "rewrite"
	c.NumericDefault = "real"
	ti := wand.NewContext(c.Options()...)
	assert.Equal(t, wand.Rewrite, ti.Strategy())

	expr, err := parser.ParseExpr("fn x => x + x")
	require.NoError(t, err)
	ty, err := ti.InferExpr(expr, wand.NewTypeEnv())
	require.NoError(t, err)
	assert.Equal(t, "real -> real", types.TypeString(ty))
}

func TestApplyLogging(t *testing.T) {
	defer func() {
		log.SetLevel(slog.LevelWarn)
		log.EnableSections(knownSections...)
	}()
	c := Default()
	c.LogLevel = "debug"
	c.ApplyLogging()
	assert.True(t, log.For(log.SectionInfer).Enabled(context.Background(), slog.LevelDebug))
}
