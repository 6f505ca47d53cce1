// Copyright Consensys Software Inc.
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
package sat

import (
	"testing"

	"github.com/consensys/go-props/pkg/prop"
	"github.com/consensys/go-props/pkg/util/assert"
)

func TestSatisfiable_00(t *testing.T) {
	assert.True(t, Satisfiable(parse(t, "p AND q")))
}

func TestSatisfiable_01(t *testing.T) {
	assert.False(t, Satisfiable(parse(t, "p AND NOT(p)")))
}

func TestSatisfiable_02(t *testing.T) {
	assert.False(t, Satisfiable(parse(t, "(p IFF q) AND (p AND NOT(q))")))
}

func TestModel_00(t *testing.T) {
	f := parse(t, "NOT(p) AND (q OR r)")
	//
	env, ok := Model(f)
	assert.True(t, ok)
	// Model satisfies the formula it came from
	val, err := f.Eval(env)
	assert.NoError(t, err)
	assert.True(t, val)
}

func TestModel_01(t *testing.T) {
	_, ok := Model(parse(t, "p AND NOT(p)"))
	//
	assert.False(t, ok)
}

func TestTautology_00(t *testing.T) {
	assert.True(t, Tautology(parse(t, "p OR NOT(p)")))
	assert.True(t, Tautology(parse(t, "((p IMPLIES q) AND p) IMPLIES q")))
	assert.False(t, Tautology(parse(t, "p OR q")))
}

func TestEquivalent_00(t *testing.T) {
	assert.True(t, Equivalent(parse(t, "p IMPLIES q"), parse(t, "NOT(p) OR q")))
	assert.True(t, Equivalent(parse(t, "NOT(p AND q)"), parse(t, "NOT(p) OR NOT(q)")))
	assert.False(t, Equivalent(parse(t, "p"), parse(t, "q")))
}

func TestEntails_00(t *testing.T) {
	assert.True(t, Entails(parse(t, "p AND q"), parse(t, "p")))
	assert.True(t, Entails(parse(t, "p"), parse(t, "p OR q")))
	assert.False(t, Entails(parse(t, "p OR q"), parse(t, "p")))
}

func TestAgainstTables_00(t *testing.T) {
	// Solver and truth tables agree on satisfiability and validity
	for i := 0; i < 100; i++ {
		f := prop.Random(4, 4)
		//
		assert.Equal(t, prop.Satisfiable(f), Satisfiable(f), "satisfiability of %s", f)
		assert.Equal(t, prop.Tautology(f), Tautology(f), "validity of %s", f)
	}
}

func TestAgainstTables_01(t *testing.T) {
	// Solver and truth tables agree on equivalence and entailment
	for i := 0; i < 100; i++ {
		f := prop.Random(3, 3)
		g := prop.Random(3, 3)
		//
		assert.Equal(t, prop.Equivalent(f, g), Equivalent(f, g), "equivalence of %s and %s", f, g)
		assert.Equal(t, prop.Entails(f, g), Entails(f, g), "entailment of %s by %s", g, f)
	}
}

func TestAgainstTables_02(t *testing.T) {
	// Every model found satisfies its formula
	for i := 0; i < 100; i++ {
		f := prop.Random(4, 4)
		//
		if env, ok := Model(f); ok {
			val, err := f.Eval(env)
			//
			assert.NoError(t, err)
			assert.True(t, val, "model of %s", f)
		}
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func parse(t *testing.T, input string) prop.Formula {
	formula, err := prop.Parse(input)
	//
	if err != nil {
		t.Fatalf("parsing %q failed: %s", input, err)
	}
	//
	return formula
}
