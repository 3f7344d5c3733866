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

import "strings"

// opKind identifies an operator recognised by the tokenizer.  lParen/rParen
// are included so the shunting-yard stack can hold them alongside operators.
type opKind uint8

const (
	opNot opKind = iota
	opAnd
	opOr
	opBox
	opDiamond
	opImp
	opIff
	opLParen
	opRParen
)

// connectives maps every recognised spelling (Unicode or ASCII) of a connective
// to its opKind. Parentheses are included for uniform token classification.
var connectives = map[string]opKind{
	"¬": opNot, "~": opNot,
	"∧": opAnd, `/\`: opAnd, "n": opAnd,
	"∨": opOr, `\/`: opOr, "v": opOr,
	"□": opBox, "[]": opBox,
	"◇": opDiamond, "<>": opDiamond,
	"→": opImp, "->": opImp,
	"↔": opIff, "<->": opIff,
	"(": opLParen,
	")": opRParen,
}

// isUnary reports whether k is one of the unary prefix connectives.
func isUnary(k opKind) bool {
	return k == opNot || k == opBox || k == opDiamond
}

// isBinary reports whether k is one of the binary infix connectives.
func isBinary(k opKind) bool {
	return k == opAnd || k == opOr || k == opImp || k == opIff
}

// precedence returns a binary (or unary) operator's binding strength; higher
// binds tighter. Unary prefix operators are given the highest precedence so
// that the binary-operator rule of the shunting yard always pops a pending
// prefix operator before pushing, which makes it bind to its operand alone.
func precedence(k opKind) int {
	switch k {
	case opNot, opBox, opDiamond:
		return 100
	case opAnd:
		return 65
	case opOr:
		return 60
	case opImp:
		return 50
	case opIff:
		return 40
	default:
		return 0
	}
}

// rightAssociative reports whether k associates right-to-left; only →
// does, per §4.2.
func rightAssociative(k opKind) bool {
	return k == opImp
}

// token is a single lexical element: either a recognised connective/paren,
// or an atom name (anything else, per §4.2 "any other token is an atom
// name").
type token struct {
	kind   opKind
	isOp   bool
	atom   string
	pos    int
}

// tokenize splits a single-line formula into whitespace-separated tokens and
// classifies each one. Parentheses are split off from whatever they touch,
// so the canonical print form "(p ∧ q)" yields "(", "p", "∧", "q", ")".
func tokenize(line string) []token {
	line = strings.NewReplacer("(", " ( ", ")", " ) ").Replace(line)
	fields := strings.Fields(line)
	tokens := make([]token, len(fields))

	for i, f := range fields {
		if k, ok := connectives[f]; ok {
			tokens[i] = token{kind: k, isOp: true, pos: i}
		} else {
			tokens[i] = token{atom: f, pos: i}
		}
	}

	return tokens
}
