// Copyright the k-reasoner contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modal-tableau/k-reasoner/pkg/util/assert"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to open pipe: %v", err)
	}

	saved := os.Stdout
	os.Stdout = w

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe: %v", err)
	}

	os.Stdout = saved

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to drain pipe: %v", err)
	}

	return buf.String()
}

func Test_DecideLabelLine_01(t *testing.T) {
	var out string

	out = captureStdout(t, func() {
		err := decideLabelLine("p , ¬ p", 0, false)
		assert.True(t, err == nil)
	})

	assert.True(t, strings.Contains(out, "is not satisfiable"))
}

func Test_DecideLabelLine_02(t *testing.T) {
	// "∧ p" underflows the RPN stack: a binary connective with only one
	// operand. decideLabelLine must return the error rather than exit.
	err := decideLabelLine("∧ p", 0, false)
	assert.True(t, err != nil)
}

func Test_DecideFile_01(t *testing.T) {
	// A malformed label must not prevent later lines in the same file
	// from being decided.
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.txt")

	contents := "∧ p\np , ¬ p\n¬ ¬ p\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	out := captureStdout(t, func() {
		decideFile(path, false)
	})

	assert.True(t, strings.Contains(out, "error:"))
	assert.True(t, strings.Contains(out, "is not satisfiable"))
	assert.True(t, strings.Contains(out, "is satisfiable"))
}
