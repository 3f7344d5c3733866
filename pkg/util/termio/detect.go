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
package termio

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive determines whether stdout is attached to a real terminal, as
// opposed to being piped or redirected. This governs whether ANSI escapes are
// emitted by default (see the "--ansi-escapes" style flags in pkg/cmd).
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the current width of the controlling terminal, or a sensible
// fallback when stdout is not a terminal (e.g. when output is piped to a
// file, as is common in batch/benchmark runs).
func Width() uint {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	//
	return uint(w)
}
