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
package tableau

import (
	"testing"

	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/label"
	"github.com/modal-tableau/k-reasoner/pkg/parser"
	"github.com/modal-tableau/k-reasoner/pkg/util/assert"
)

// decide parses and normalizes s as a single label, then decides it.
func decide(t *testing.T, s string) bool {
	t.Helper()

	l, err := parser.ParseLabel(s)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", s, err)
	}

	normalized := label.New()
	for _, f := range l.Iter() {
		normalized.Insert(formula.Normalize(f))
	}

	return Successful(normalized)
}

func Test_Reasoner_01(t *testing.T) {
	// Testable property 7: clash detection, f and ¬f.
	assert.False(t, decide(t, "p , ¬ p"))
}

func Test_Reasoner_02(t *testing.T) {
	// Testable property 8: double negation elimination.
	assert.True(t, decide(t, "¬ ¬ p"))
	assert.Equal(t, decide(t, "¬ ¬ p"), decide(t, "p"))
}

func Test_Reasoner_03(t *testing.T) {
	// Testable property 9: ◇(p ∧ ¬p) is modally unsatisfiable.
	assert.False(t, decide(t, "<> ( p /\\ ~ p )"))
}

func Test_Reasoner_04(t *testing.T) {
	// Testable property 10: ⊥/⊤ clash axioms.
	assert.False(t, decide(t, "⊥"))
	assert.False(t, decide(t, "¬ ⊤"))
	assert.True(t, decide(t, "⊤"))
	assert.True(t, decide(t, "¬ ⊥"))
}

func Test_Reasoner_Scenario_01(t *testing.T) {
	assert.True(t, decide(t, "◇ ( ◇ p ∧ ◇ ¬ p )"))
}

func Test_Reasoner_Scenario_02(t *testing.T) {
	assert.False(t, decide(t, "p , ¬ p"))
}

func Test_Reasoner_Scenario_03(t *testing.T) {
	assert.True(t, decide(t, "□ ( q → ◇ p ) , ◇ q , □ □ ¬ p"))
}

func Test_Reasoner_Scenario_04(t *testing.T) {
	assert.False(t, decide(t, "□ ( p → ¬ p ) , ◇ p"))
}

func Test_Reasoner_Scenario_05(t *testing.T) {
	assert.True(t, decide(t, "¬ ¬ ¬ ¬ p"))
}

func Test_Reasoner_Scenario_06(t *testing.T) {
	assert.False(t, decide(t, "( p ∧ q ) , ¬ p"))
}

func Test_Reasoner_05(t *testing.T) {
	// A genuinely satisfiable disjunction: ¬(p ∧ ¬p), i.e. p ∨ ¬p in
	// sugar, must pick at least one satisfiable ¬∧ branch.
	assert.True(t, decide(t, "~ ( p /\\ ~ p )"))
}

func Test_Reasoner_06(t *testing.T) {
	// Empty label is trivially satisfiable.
	assert.True(t, Successful(label.New()))
}

func Test_Reasoner_07(t *testing.T) {
	// □p ∧ ◇¬p is unsatisfiable: ◇¬p normalizes to ¬□p, which directly
	// clashes with □p.
	assert.False(t, decide(t, "□ p , ◇ ¬ p"))
}
