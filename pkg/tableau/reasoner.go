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

// Package tableau implements the analytic tableau decision procedure for
// satisfiability in the basic normal modal logic K: clash detection,
// non-branching propositional saturation, disjunctive (¬∧) branching, and
// modal (¬□) successor construction.
//
// Successful is pure given its input label, aside from the shared logging
// sink (see logger.go): no two invocations observe or mutate each other's
// state, and no recursive call writes into an ancestor frame's label.
package tableau

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/label"
)

// Successful decides whether l — which must already be normalized to the
// {Atom, Not, And, Box} connective set (see formula.Normalize) — is
// satisfiable in some Kripke model of K. Supplying a non-normalized label
// is a programming error; its behaviour is unspecified. Successful never
// returns an error: every failure mode inside the reasoner is a logic
// error, and the procedure always terminates with a boolean.
func Successful(l *label.Label) bool {
	if clashed(l) {
		logger.Debugf("clash in %s", l)
		return false
	}

	saturate(l)

	if clashed(l) {
		logger.Debugf("clash in %s after saturation", l)
		return false
	}

	if propositionallySaturated(l) {
		logger.Tracef("%s is propositionally saturated, no modal obligations", l)
		return true
	}

	if f, ok := pickNotAnd(l); ok {
		return orBranch(l, f)
	}

	return andBranch(l)
}

// clashed reports whether l contains both some formula f and its negation
// ¬f, or either of the ⊥/¬⊤ special cases resolved in §4.1 of the
// specification this reasoner implements (⊤ and ⊥ are ordinary atoms;
// a label containing ⊥, or Not(⊤), clashes unconditionally).
func clashed(l *label.Label) bool {
	if l.Contains(formula.NewAtom(formula.BottomName)) {
		return true
	}

	if l.Contains(formula.NewNot(formula.NewAtom(formula.TopName))) {
		return true
	}

	for _, f := range l.Iter() {
		n, ok := f.(*formula.Not)
		if !ok {
			continue
		}

		if l.Contains(n.Arg) {
			return true
		}
	}

	return false
}

// propositionallySaturated reports whether no formula in l carries a
// non-null rule tag, i.e. none of (¬¬), (∧), (¬∧) or (¬□) applies anywhere.
func propositionallySaturated(l *label.Label) bool {
	for _, f := range l.Iter() {
		if f.Tag() != formula.TagNone {
			return false
		}
	}

	return true
}

// saturate exhausts the non-branching rules (¬¬) and (∧) in place on l,
// via an explicit worklist plus a bitset.BitSet "seen" set keyed by each
// formula's construction-order id (§9 "Worklist of non-branching rules").
// A formula is never enqueued twice in the same saturation pass, which
// avoids the re-entrancy hazard of the implementation this was ported
// from (which iterated a list while mutating it).
func saturate(l *label.Label) {
	seen := bitset.New(0)

	var worklist []formula.Formula

	enqueue := func(f formula.Formula) {
		switch f.Tag() {
		case formula.TagNotNot, formula.TagAnd:
			if !seen.Test(uint(f.ID())) {
				seen.Set(uint(f.ID()))
				worklist = append(worklist, f)
			}
		}
	}

	for _, f := range l.Iter() {
		enqueue(f)
	}

	for len(worklist) > 0 {
		f := worklist[0]
		worklist = worklist[1:]

		switch f.Tag() {
		case formula.TagNotNot:
			// (¬¬): replace ¬¬x with x.
			outer := f.(*formula.Not)          //nolint:forcetypeassert
			inner := outer.Arg.(*formula.Not) //nolint:forcetypeassert

			l.Remove(f)
			l.Insert(inner.Arg)
			enqueue(inner.Arg)

			logger.Tracef("(¬¬) %s -> %s", f, inner.Arg)
		case formula.TagAnd:
			// (∧): replace a ∧ b with a and b, removing the conjunction
			// from the label entirely (resolved Open Question §9.3).
			and := f.(*formula.And) //nolint:forcetypeassert

			l.Remove(f)
			l.Insert(and.Lhs)
			l.Insert(and.Rhs)
			enqueue(and.Lhs)
			enqueue(and.Rhs)

			logger.Tracef("(∧) %s -> %s, %s", f, and.Lhs, and.Rhs)
		}
	}
}

// pickNotAnd returns the TagNotAnd-tagged formula of smallest Size in l,
// breaking ties by canonical-string lexicographic order (§9 "Deterministic
// heuristic tie-breaks"), or ok=false if none is present.
func pickNotAnd(l *label.Label) (f formula.Formula, ok bool) {
	for _, cand := range l.Iter() {
		if cand.Tag() != formula.TagNotAnd {
			continue
		}

		if !ok || cand.Size() < f.Size() || (cand.Size() == f.Size() && cand.String() < f.String()) {
			f, ok = cand, true
		}
	}

	return f, ok
}

// orBranch implements step 5 (¬∧ branching): f = ¬(a ∧ b) is removed from
// l, and two successor labels are tried in turn — l ∪ {¬a} then, only if
// that fails, l ∪ {¬b}. l is satisfiable iff either branch is.
func orBranch(l *label.Label, f formula.Formula) bool {
	notAnd := f.(*formula.Not)        //nolint:forcetypeassert
	and := notAnd.Arg.(*formula.And) //nolint:forcetypeassert

	l.Remove(f)

	lhsBranch := l.Copy()
	lhsBranch.Insert(formula.NewNot(and.Lhs))

	logger.Debugf("(¬∧) branch 1: %s -> %s", f, lhsBranch)

	if Successful(lhsBranch) {
		return true
	}

	rhsBranch := l.Copy()
	rhsBranch.Insert(formula.NewNot(and.Rhs))

	logger.Debugf("(¬∧) branch 2: %s -> %s", f, rhsBranch)

	return Successful(rhsBranch)
}

// andBranch implements step 6 (modal successor construction): every
// TagNotBox formula ¬□x_i in l is processed smallest-size first: the
// current label is discarded in favour of the unboxed set {y | □y ∈ l},
// and a successor unboxed ∪ {¬x_i} is decided for each i in turn,
// short-circuiting to false on the first unsatisfiable successor. l is
// satisfiable iff every successor is.
func andBranch(l *label.Label) bool {
	var notBoxes []formula.Formula

	unboxed := label.New()

	for _, f := range l.Iter() {
		switch t := f.(type) {
		case *formula.Box:
			unboxed.Insert(t.Arg)
		default:
			if f.Tag() == formula.TagNotBox {
				notBoxes = append(notBoxes, f)
			}
		}
	}

	if len(notBoxes) == 0 {
		logger.Tracef("%s has no modal obligations left", l)
		return true
	}

	sort.Slice(notBoxes, func(i, j int) bool {
		a, b := notBoxes[i], notBoxes[j]
		if a.Size() != b.Size() {
			return a.Size() < b.Size()
		}

		return a.String() < b.String()
	})

	for _, nb := range notBoxes {
		notBox := nb.(*formula.Not)      //nolint:forcetypeassert
		box := notBox.Arg.(*formula.Box) //nolint:forcetypeassert

		succ := unboxed.Copy()
		succ.Insert(formula.NewNot(box.Arg))

		logger.Debugf("(¬□) successor for %s: %s", nb, succ)

		if !Successful(succ) {
			return false
		}
	}

	return true
}
