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

// Package parser converts concrete (Unicode or ASCII) modal-formula syntax
// into a formula.Formula, via a single shunting-yard pass to Reverse Polish
// Notation followed by a one-pass stack evaluator.
package parser

import (
	"github.com/modal-tableau/k-reasoner/pkg/formula"
	log "github.com/sirupsen/logrus"
)

// Parse converts a single line of concrete syntax into a formula.Formula.
// Non-fatal issues (unmatched brackets, trailing RPN values) are logged as
// warnings through the injected sink and do not abort parsing. An operator
// lacking operands (ArityUnderflow), or input that leaves the RPN stack
// empty (e.g. an empty line), is reported as an error. Parse does not normalize its result — callers wanting the
// canonical {Atom, Not, And, Box} connective set must call
// formula.Normalize explicitly.
func Parse(line string) (formula.Formula, error) {
	toks := tokenize(line)
	rpn := shuntingYard(toks)

	return evaluate(rpn)
}

// shuntingYard converts infix tokens to RPN order using a single pass over
// the input, following Dijkstra's algorithm as specialised in §4.2: unary
// prefix operators are pushed without ever popping the stack (precedence
// 100 beats every binary operator, and the "never pops others" rule for
// prefix ops is applied literally), binary operators pop everything of
// greater-or-equal precedence (strictly greater for the right-associative
// →), and parenthesisation is handled in the usual way.
func shuntingYard(toks []token) []token {
	var (
		output []token
		stack  []token
	)

	popToOutput := func() {
		n := len(stack) - 1
		output = append(output, stack[n])
		stack = stack[:n]
	}

	for _, tk := range toks {
		switch {
		case !tk.isOp:
			output = append(output, tk)
		case isUnary(tk.kind):
			// A prefix operator never pops anything off the stack; it
			// simply waits for its operand.
			stack = append(stack, tk)
		case isBinary(tk.kind):
			p := precedence(tk.kind)

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == opLParen || !(isBinary(top.kind) || isUnary(top.kind)) {
					break
				}

				topP := precedence(top.kind)
				if rightAssociative(tk.kind) {
					if topP <= p {
						break
					}
				} else if topP < p {
					break
				}

				popToOutput()
			}

			stack = append(stack, tk)
		case tk.kind == opLParen:
			stack = append(stack, tk)
		case tk.kind == opRParen:
			found := false

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == opLParen {
					stack = stack[:len(stack)-1]
					found = true

					break
				}

				popToOutput()
			}

			if !found {
				log.Warnf("unmatched ')' at token %d", tk.pos)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.kind == opLParen {
			log.Warnf("unmatched '(' at token %d", top.pos)
			stack = stack[:len(stack)-1]

			continue
		}

		popToOutput()
	}

	return output
}

// evaluate reduces an RPN token stream to a single Formula via a one-pass
// stack evaluator: each operator pops its children (right then left for
// binary operators) and pushes the formula it constructs.
func evaluate(rpn []token) (formula.Formula, error) {
	var stack []formula.Formula

	pop := func() (formula.Formula, bool) {
		if len(stack) == 0 {
			return nil, false
		}

		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		return f, true
	}

	for _, tk := range rpn {
		if !tk.isOp {
			stack = append(stack, formula.NewAtom(tk.atom))
			continue
		}

		if isUnary(tk.kind) {
			arg, ok := pop()
			if !ok {
				return nil, NewSyntaxError(Span{tk.pos, tk.pos + 1}, "operator with no operand")
			}

			stack = append(stack, applyUnary(tk.kind, arg))

			continue
		}

		rhs, ok1 := pop()
		lhs, ok2 := pop()

		if !ok1 || !ok2 {
			return nil, NewSyntaxError(Span{tk.pos, tk.pos + 1}, "operator with insufficient operands")
		}

		stack = append(stack, applyBinary(tk.kind, lhs, rhs))
	}

	switch len(stack) {
	case 0:
		return nil, NewSyntaxError(Span{0, 0}, "empty formula")
	case 1:
		return stack[0], nil
	default:
		log.Warnf("trailing formula: %d residual values on the RPN stack", len(stack))

		return stack[len(stack)-1], nil
	}
}

func applyUnary(k opKind, arg formula.Formula) formula.Formula {
	switch k {
	case opNot:
		return formula.NewNot(arg)
	case opBox:
		return formula.NewBox(arg)
	case opDiamond:
		return formula.NewDiamond(arg)
	default:
		panic("not a unary operator")
	}
}

func applyBinary(k opKind, lhs, rhs formula.Formula) formula.Formula {
	switch k {
	case opAnd:
		return formula.NewAnd(lhs, rhs)
	case opOr:
		return formula.NewOr(lhs, rhs)
	case opImp:
		return formula.NewImp(lhs, rhs)
	case opIff:
		return formula.NewIff(lhs, rhs)
	default:
		panic("not a binary operator")
	}
}
