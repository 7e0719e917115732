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

package log

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFilter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(slog.LevelDebug)
	EnableSections(SectionUnify)
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelWarn)
		EnableSections(SectionInfer, SectionUnify, SectionParse, SectionCLI)
	}()

	For(SectionInfer).Debug("hidden")
	For(SectionUnify).Debug("shown", "equations", 3)
	DefaultLogger.Debug("inline", "section", SectionUnify)
	DefaultLogger.Debug("untagged")
	For(SectionParse).Warn("warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "equations=3")
	assert.Contains(t, out, "msg=inline")
	assert.Contains(t, out, "msg=warning")
	assert.NotContains(t, out, "time=")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
