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
package parser

import "fmt"

// Span identifies a half-open range [Start,End) of token positions within a
// parsed line, for reporting purposes only.
type Span struct {
	Start int
	End   int
}

// SyntaxError is a structured error retaining the span of the input on
// which it was raised, along with a human-readable message.  Mirrors this
// codebase's sexp.SyntaxError.
type SyntaxError struct {
	span Span
	msg  string
}

// NewSyntaxError constructs a syntax error over the given token span.
func NewSyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{span, msg}
}

// Span returns the token range this error was raised over.
func (e *SyntaxError) Span() Span { return e.span }

// Message returns the message to be reported.
func (e *SyntaxError) Message() string { return e.msg }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.span.Start, e.span.End, e.msg)
}
