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
package prop

import (
	"testing"

	"github.com/consensys/go-props/pkg/util/assert"
)

func TestTabulate_00(t *testing.T) {
	table := Tabulate(parseUnchecked(t, "p AND q"))
	//
	assert.Equal(t, []string{"p", "q"}, table.Vars())
	assert.Equal(t, uint(4), table.Rows())
	assert.Equal(t, uint(1), table.Count())
	// Only the final row holds
	assert.False(t, table.Truth(0))
	assert.False(t, table.Truth(1))
	assert.False(t, table.Truth(2))
	assert.True(t, table.Truth(3))
}

func TestTabulate_01(t *testing.T) {
	table := Tabulate(parseUnchecked(t, "p OR NOT(p)"))
	//
	assert.Equal(t, uint(2), table.Rows())
	assert.Equal(t, uint(2), table.Count())
}

func TestTabulate_02(t *testing.T) {
	// Row zero assigns false throughout, with the first variable toggling
	// fastest thereafter
	table := Tabulate(parseUnchecked(t, "a OR b"))
	//
	env, val := table.Row(1)
	//
	assert.True(t, val)
	assert.Equal(t, Assignment{"a": Bool(true), "b": Bool(false)}, env)
}

func TestTabulateOver_00(t *testing.T) {
	table, err := TabulateOver([]string{"p", "q", "r"}, parseUnchecked(t, "p"))
	//
	assert.NoError(t, err)
	// Truth of p duplicated across q and r
	assert.Equal(t, uint(8), table.Rows())
	assert.Equal(t, uint(4), table.Count())
}

func TestTabulateOver_01(t *testing.T) {
	var target *MissingVariableError
	// Given variables must cover the formula
	_, err := TabulateOver([]string{"q"}, parseUnchecked(t, "p"))
	//
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "p", target.Name)
}

func TestEquivalent_00(t *testing.T) {
	checkEquivalent(t, true, "p IMPLIES q", "NOT(p) OR q")
}

func TestEquivalent_01(t *testing.T) {
	checkEquivalent(t, true, "NOT(p AND q)", "NOT(p) OR NOT(q)")
}

func TestEquivalent_02(t *testing.T) {
	// Equivalence ranges over the union of the variables
	checkEquivalent(t, false, "p", "q")
}

func TestEquivalent_03(t *testing.T) {
	// Semantically equal, syntactically distinct
	checkEquivalent(t, true, "p AND q", "q AND p")
	assert.False(t, Equal(parseUnchecked(t, "p AND q"), parseUnchecked(t, "q AND p")))
}

func TestEquivalent_04(t *testing.T) {
	checkEquivalent(t, false, "p", "p AND q")
}

func TestEquivalent_05(t *testing.T) {
	// Unsatisfiable formulae agree everywhere
	checkEquivalent(t, true, "p AND NOT(p)", "q AND NOT(q)")
}

func TestTautology(t *testing.T) {
	assert.True(t, Tautology(parseUnchecked(t, "p OR NOT(p)")))
	assert.True(t, Tautology(parseUnchecked(t, "p IMPLIES p")))
	assert.True(t, Tautology(parseUnchecked(t, "((p IMPLIES q) AND p) IMPLIES q")))
	assert.False(t, Tautology(parseUnchecked(t, "p")))
	assert.False(t, Tautology(parseUnchecked(t, "p OR q")))
}

func TestSatisfiable(t *testing.T) {
	assert.True(t, Satisfiable(parseUnchecked(t, "p AND q")))
	assert.True(t, Satisfiable(parseUnchecked(t, "p")))
	assert.False(t, Satisfiable(parseUnchecked(t, "p AND NOT(p)")))
	//
	assert.True(t, Unsatisfiable(parseUnchecked(t, "p AND NOT(p)")))
	assert.False(t, Unsatisfiable(parseUnchecked(t, "p")))
}

func TestEntails(t *testing.T) {
	assert.True(t, Entails(parseUnchecked(t, "p AND q"), parseUnchecked(t, "p")))
	assert.True(t, Entails(parseUnchecked(t, "p"), parseUnchecked(t, "p OR q")))
	assert.False(t, Entails(parseUnchecked(t, "p OR q"), parseUnchecked(t, "p")))
	// Unsatisfiable formulae entail everything
	assert.True(t, Entails(parseUnchecked(t, "p AND NOT(p)"), parseUnchecked(t, "q")))
}

func TestCanonicalCNF_00(t *testing.T) {
	f, err := CanonicalCNF(parseUnchecked(t, "p AND q"))
	//
	assert.NoError(t, err)
	assert.Equal(t, "(p OR q) AND (NOT(p) OR q) AND (p OR NOT(q))", f.String())
	assert.True(t, IsCNF(f))
	assert.True(t, Equivalent(f, parseUnchecked(t, "p AND q")))
}

func TestCanonicalCNF_01(t *testing.T) {
	// Without a constant for truth, tautologies cannot be canonicalised
	_, err := CanonicalCNF(parseUnchecked(t, "p OR NOT(p)"))
	//
	assert.True(t, err != nil)
}

func TestCanonicalCNF_Random(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := Random(3, 3)
		g, err := CanonicalCNF(f)
		//
		if Tautology(f) {
			assert.True(t, err != nil, "expected an error for %s", f)
		} else {
			assert.NoError(t, err)
			assert.True(t, IsCNF(g), "CanonicalCNF(%s) gave %s", f, g)
			assert.True(t, Equivalent(f, g), "CanonicalCNF(%s) gave inequivalent %s", f, g)
		}
	}
}

func TestCanonicalDNF_00(t *testing.T) {
	f, err := CanonicalDNF(parseUnchecked(t, "p IFF q"))
	//
	assert.NoError(t, err)
	assert.Equal(t, "(NOT(p) AND NOT(q)) OR (p AND q)", f.String())
	assert.True(t, IsDNF(f))
	assert.True(t, Equivalent(f, parseUnchecked(t, "p IFF q")))
}

func TestCanonicalDNF_01(t *testing.T) {
	// Without a constant for falsehood, unsatisfiable formulae cannot be
	// canonicalised
	_, err := CanonicalDNF(parseUnchecked(t, "p AND NOT(p)"))
	//
	assert.True(t, err != nil)
}

func TestCanonicalDNF_Random(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := Random(3, 3)
		g, err := CanonicalDNF(f)
		//
		if Unsatisfiable(f) {
			assert.True(t, err != nil, "expected an error for %s", f)
		} else {
			assert.NoError(t, err)
			assert.True(t, IsDNF(g), "CanonicalDNF(%s) gave %s", f, g)
			assert.True(t, Equivalent(f, g), "CanonicalDNF(%s) gave inequivalent %s", f, g)
		}
	}
}

func TestMakeTrue_00(t *testing.T) {
	f, err := MakeTrue(Bools(map[string]bool{"a": true, "b": false}))
	//
	assert.NoError(t, err)
	assert.Equal(t, "a AND NOT(b)", f.String())
}

func TestMakeTrue_01(t *testing.T) {
	f, err := MakeTrue(Bools(map[string]bool{"p": true}))
	//
	assert.NoError(t, err)
	assert.Equal(t, "p", f.String())
}

func TestMakeTrue_02(t *testing.T) {
	// Empty assignments pin down nothing
	_, err := MakeTrue(Assignment{})
	//
	assert.True(t, err != nil)
}

func TestMakeTrue_03(t *testing.T) {
	f, err := MakeTrue(Assignment{"p": Int(3), "q": Int(0)})
	//
	assert.NoError(t, err)
	assert.Equal(t, "p AND NOT(q)", f.String())
}

func TestMakeTrue_04(t *testing.T) {
	// Assignments may only bind valid variable names
	_, err := MakeTrue(Bools(map[string]bool{"AND": true}))
	//
	assert.True(t, err != nil)
}

func TestMakeTrue_05(t *testing.T) {
	env := Bools(map[string]bool{"a": true, "b": false, "c": true})
	//
	f, err := MakeTrue(env)
	assert.NoError(t, err)
	// Resulting formula holds under the assignment it came from
	val, err := f.Eval(env)
	assert.NoError(t, err)
	assert.True(t, val)
}

// ============================================================================
// Test Helpers
// ============================================================================

// Check whether two formulae are equivalent, in both directions.
func checkEquivalent(t *testing.T, expected bool, lhs string, rhs string) {
	l := parseUnchecked(t, lhs)
	r := parseUnchecked(t, rhs)
	//
	assert.Equal(t, expected, Equivalent(l, r), "%s versus %s", lhs, rhs)
	assert.Equal(t, expected, Equivalent(r, l), "%s versus %s", rhs, lhs)
}
