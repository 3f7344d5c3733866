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

// Package bench generates the three parametric formula families used to
// validate the reasoner's time bounds (§4.5), and drives them end-to-end
// (parse, normalize, decide) while recording wall-clock duration via
// util.PerfStats.
package bench

import (
	"fmt"
	"time"

	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/label"
	"github.com/modal-tableau/k-reasoner/pkg/tableau"
	"github.com/modal-tableau/k-reasoner/pkg/util"
)

// Family names a parametric formula family runnable via Run.
type Family string

const (
	LinearNeg Family = "linear_neg"
	ExpSize   Family = "exp_size"
	ExpModel  Family = "exp_model"
)

// Families lists every family in a fixed, CLI-facing order.
var Families = []Family{LinearNeg, ExpSize, ExpModel}

// Result is the outcome of running one family at one parameter n.
type Result struct {
	Family      Family
	N           uint
	Satisfiable bool
	Elapsed     time.Duration
	Formula     formula.Formula
}

// Run generates family's n'th instance, normalizes it, decides it, and
// reports the outcome along with the wall-clock time the decision took.
func Run(family Family, n uint) (Result, error) {
	var f formula.Formula

	switch family {
	case LinearNeg:
		f = LinearNegFormula(n)
	case ExpSize:
		f = ExpSizeFormula(n)
	case ExpModel:
		f = ExpModelFormula(n)
	default:
		return Result{}, fmt.Errorf("unknown benchmark family %q", family)
	}

	stats := util.NewPerfStats()
	normalized := formula.Normalize(f)
	l := label.FromSlice([]formula.Formula{normalized})
	start := time.Now()
	sat := tableau.Successful(l)
	elapsed := time.Since(start)

	stats.Log(fmt.Sprintf("%s(%d)", family, n))

	return Result{Family: family, N: n, Satisfiable: sat, Elapsed: elapsed, Formula: f}, nil
}

// LinearNegFormula returns a string of n negations on atom p: ¬¬...¬p.
// It normalizes to either p (n even) or ¬p (n odd), and the tableau
// closes (saturates) in at most n non-branching steps.
func LinearNegFormula(n uint) formula.Formula {
	f := formula.NewAtom("p")
	for i := uint(0); i < n; i++ {
		f = formula.NewNot(f)
	}

	return f
}

// ExpSizeFormula returns a balanced binary conjunction tree of depth n
// (2^(n+1) - 1 symbols), tautologically satisfiable after (∧)
// saturation alone: every leaf is the atom p, so no clash is possible.
func ExpSizeFormula(n uint) formula.Formula {
	if n == 0 {
		return formula.NewAtom("p")
	}

	child := ExpSizeFormula(n - 1)

	return formula.NewAnd(child, child)
}

// ExpModelFormula returns the n'th instance of the standard family
// witnessing that K lacks the polynomial-model property, built as
// specified:
//
//	φ0 = p0
//	φn = φn-1 ∧ □^(n-1)( p_{n-1} → ( ◇(pn ∧ qn) ∧ ◇(pn ∧ ¬qn) ∧
//	     ⋀_{j=1..n-1} ((qj → □qj) ∧ (¬qj → □¬qj)) ) )   for n ≥ 1
//
// Every instance is satisfiable; the family is exponential in the size of
// the smallest satisfying Kripke model relative to formula size.
func ExpModelFormula(n uint) formula.Formula {
	p := func(i uint) formula.Formula { return formula.NewAtom(fmt.Sprintf("p%d", i)) }
	q := func(i uint) formula.Formula { return formula.NewAtom(fmt.Sprintf("q%d", i)) }

	phi := p(0)

	for k := uint(1); k <= n; k++ {
		inner := formula.NewAnd(
			formula.NewDiamond(formula.NewAnd(p(k), q(k))),
			formula.NewDiamond(formula.NewAnd(p(k), formula.NewNot(q(k)))),
		)

		for j := uint(1); j < k; j++ {
			conjunct := formula.NewAnd(
				formula.NewImp(q(j), formula.NewBox(q(j))),
				formula.NewImp(formula.NewNot(q(j)), formula.NewBox(formula.NewNot(q(j)))),
			)
			inner = formula.NewAnd(inner, conjunct)
		}

		obligation := formula.NewImp(p(k-1), inner)
		boxed := boxN(obligation, k-1)
		phi = formula.NewAnd(phi, boxed)
	}

	return phi
}

// boxN wraps f in n nested Box connectives: □^n f.
func boxN(f formula.Formula, n uint) formula.Formula {
	for i := uint(0); i < n; i++ {
		f = formula.NewBox(f)
	}

	return f
}
