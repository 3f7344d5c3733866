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
package bench

import (
	"testing"

	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/util/assert"
)

func Test_LinearNeg_01(t *testing.T) {
	// n negations normalize to p (even n) or ¬p (odd n).
	p := formula.NewAtom("p")
	assert.True(t, formula.Normalize(LinearNegFormula(0)).Equals(p))
	assert.True(t, formula.Normalize(LinearNegFormula(2)).Equals(p))
	assert.True(t, formula.Normalize(LinearNegFormula(1)).Equals(formula.NewNot(p)))
	assert.True(t, formula.Normalize(LinearNegFormula(5)).Equals(formula.NewNot(p)))
}

func Test_ExpSize_01(t *testing.T) {
	// Size is 2^(n+1) - 1, per §4.5.
	assert.Equal(t, uint(1), ExpSizeFormula(0).Size())
	assert.Equal(t, uint(3), ExpSizeFormula(1).Size())
	assert.Equal(t, uint(7), ExpSizeFormula(2).Size())
	assert.Equal(t, uint(15), ExpSizeFormula(3).Size())
}

func Test_ExpModel_01(t *testing.T) {
	// φ0 = p0.
	got := ExpModelFormula(0)
	assert.True(t, got.Equals(formula.NewAtom("p0")))
}

func Test_Run_01(t *testing.T) {
	// Testable property 5: exp_size is tautologically satisfiable for
	// every n.
	for n := uint(0); n <= 6; n++ {
		r, err := Run(ExpSize, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.True(t, r.Satisfiable, "exp_size(%d) should be satisfiable", n)
	}
}

func Test_Run_02(t *testing.T) {
	// Testable property 6: exp_model is satisfiable for n in [0,10].
	for n := uint(0); n <= 10; n++ {
		r, err := Run(ExpModel, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.True(t, r.Satisfiable, "exp_model(%d) should be satisfiable", n)
	}
}

func Test_Run_03(t *testing.T) {
	_, err := Run(Family("bogus"), 0)
	if err == nil {
		t.Fatal("expected an error for an unknown family")
	}
}
