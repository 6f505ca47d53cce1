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
	"slices"
	"testing"

	"github.com/consensys/go-props/pkg/util/assert"
)

func TestRender_00(t *testing.T) {
	checkRender(t, "p", Var("p"))
}

func TestRender_01(t *testing.T) {
	checkRender(t, "NOT(p)", Not(Var("p")))
}

func TestRender_02(t *testing.T) {
	checkRender(t, "p AND q", And(Var("p"), Var("q")))
}

func TestRender_03(t *testing.T) {
	// Left-nested conjuncts continue the chain
	checkRender(t, "p AND q AND r", And(And(Var("p"), Var("q")), Var("r")))
}

func TestRender_04(t *testing.T) {
	// Right-nested conjuncts do not
	checkRender(t, "p AND (q AND r)", And(Var("p"), And(Var("q"), Var("r"))))
}

func TestRender_05(t *testing.T) {
	checkRender(t, "p OR q OR r", Or(Or(Var("p"), Var("q")), Var("r")))
}

func TestRender_06(t *testing.T) {
	checkRender(t, "(p OR q) AND r", And(Or(Var("p"), Var("q")), Var("r")))
}

func TestRender_07(t *testing.T) {
	checkRender(t, "p AND (q OR r)", And(Var("p"), Or(Var("q"), Var("r"))))
}

func TestRender_08(t *testing.T) {
	checkRender(t, "(p AND q) IMPLIES r", Implies(And(Var("p"), Var("q")), Var("r")))
}

func TestRender_09(t *testing.T) {
	// Negations are self delimiting
	checkRender(t, "NOT(p) IMPLIES NOT(q)", Implies(Not(Var("p")), Not(Var("q"))))
}

func TestRender_10(t *testing.T) {
	checkRender(t, "p IFF (q OR r)", Iff(Var("p"), Or(Var("q"), Var("r"))))
}

func TestRender_11(t *testing.T) {
	checkRender(t, "NOT(p AND q)", Not(And(Var("p"), Var("q"))))
}

func TestRender_12(t *testing.T) {
	checkRender(t, "(p IMPLIES q) AND r", And(Implies(Var("p"), Var("q")), Var("r")))
}

func TestRender_13(t *testing.T) {
	checkRender(t, "NOT(NOT(p))", Not(Not(Var("p"))))
}

func TestEval_Variable(t *testing.T) {
	checkEval(t, "p", Bools(map[string]bool{"p": true}), true)
	checkEval(t, "p", Bools(map[string]bool{"p": false}), false)
}

func TestEval_Numeric(t *testing.T) {
	// Zero is false, every other integer is true
	checkEval(t, "p", Assignment{"p": Int(0)}, false)
	checkEval(t, "p", Assignment{"p": Int(1)}, true)
	checkEval(t, "p", Assignment{"p": Int(7)}, true)
	checkEval(t, "p", Assignment{"p": Int(-1)}, true)
}

func TestEval_Negation(t *testing.T) {
	checkEval(t, "NOT(p)", Bools(map[string]bool{"p": true}), false)
	checkEval(t, "NOT(p)", Bools(map[string]bool{"p": false}), true)
}

func TestEval_Conjunction(t *testing.T) {
	checkEval(t, "p AND q", Bools(map[string]bool{"p": true, "q": true}), true)
	checkEval(t, "p AND q", Bools(map[string]bool{"p": true, "q": false}), false)
	checkEval(t, "p AND q", Bools(map[string]bool{"p": false, "q": true}), false)
	checkEval(t, "p AND q", Bools(map[string]bool{"p": false, "q": false}), false)
}

func TestEval_Disjunction(t *testing.T) {
	checkEval(t, "p OR q", Bools(map[string]bool{"p": true, "q": true}), true)
	checkEval(t, "p OR q", Bools(map[string]bool{"p": true, "q": false}), true)
	checkEval(t, "p OR q", Bools(map[string]bool{"p": false, "q": true}), true)
	checkEval(t, "p OR q", Bools(map[string]bool{"p": false, "q": false}), false)
}

func TestEval_Implication(t *testing.T) {
	checkEval(t, "p IMPLIES q", Bools(map[string]bool{"p": true, "q": true}), true)
	checkEval(t, "p IMPLIES q", Bools(map[string]bool{"p": true, "q": false}), false)
	checkEval(t, "p IMPLIES q", Bools(map[string]bool{"p": false, "q": true}), true)
	checkEval(t, "p IMPLIES q", Bools(map[string]bool{"p": false, "q": false}), true)
}

func TestEval_Biconditional(t *testing.T) {
	checkEval(t, "p IFF q", Bools(map[string]bool{"p": true, "q": true}), true)
	checkEval(t, "p IFF q", Bools(map[string]bool{"p": true, "q": false}), false)
	checkEval(t, "p IFF q", Bools(map[string]bool{"p": false, "q": true}), false)
	checkEval(t, "p IFF q", Bools(map[string]bool{"p": false, "q": false}), true)
}

func TestEval_ExtraBindings(t *testing.T) {
	// Bindings beyond the formula are simply ignored
	checkEval(t, "p", Bools(map[string]bool{"p": true, "z": false}), true)
}

func TestEval_MissingVariable(t *testing.T) {
	var target *MissingVariableError
	//
	f := parseUnchecked(t, "p AND q")
	_, err := f.Eval(Bools(map[string]bool{"p": true}))
	//
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "q", target.Name)
}

func TestEval_MissingVariable_Implication(t *testing.T) {
	var target *MissingVariableError
	//
	f := parseUnchecked(t, "p IMPLIES q")
	// Missing variables are reported even when the hypothesis already fails
	_, err := f.Eval(Bools(map[string]bool{"p": false}))
	//
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "q", target.Name)
}

func TestVars_00(t *testing.T) {
	checkVars(t, "p", "p")
}

func TestVars_01(t *testing.T) {
	// Repeated variables occur once
	checkVars(t, "p AND (q OR p)", "p", "q")
}

func TestVars_02(t *testing.T) {
	checkVars(t, "(a IMPLIES b) IFF NOT(c)", "a", "b", "c")
}

func TestConnectives_00(t *testing.T) {
	assert.Equal(t, 0, Connectives(parseUnchecked(t, "p")))
}

func TestConnectives_01(t *testing.T) {
	assert.Equal(t, 2, Connectives(parseUnchecked(t, "p AND NOT(q)")))
}

func TestConnectives_02(t *testing.T) {
	assert.Equal(t, 4, Connectives(parseUnchecked(t, "(p IMPLIES q) IFF (q OR NOT(p))")))
}

func TestEqual_00(t *testing.T) {
	// Redundant braces do not affect equality
	assert.True(t, Equal(parseUnchecked(t, "p AND q"), parseUnchecked(t, "(p) AND (q)")))
}

func TestEqual_01(t *testing.T) {
	assert.False(t, Equal(parseUnchecked(t, "p AND q"), parseUnchecked(t, "p OR q")))
}

func TestEqual_02(t *testing.T) {
	// Syntactic equality is not commutative
	assert.False(t, Equal(parseUnchecked(t, "p AND q"), parseUnchecked(t, "q AND p")))
}

func TestValidName(t *testing.T) {
	valid := []string{"p", "q0", "p_1", "_", "and", "or", "iff", "Andy", "NOTp"}
	invalid := []string{"", "1p", "p q", "p-q", "NOT", "AND", "OR", "IMPLIES", "IFF"}
	//
	for _, name := range valid {
		assert.True(t, ValidName(name), "expected %q to be valid", name)
	}
	//
	for _, name := range invalid {
		assert.False(t, ValidName(name), "expected %q to be invalid", name)
	}
}

func TestVar_InvalidName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	//
	Var("IFF")
}

// ============================================================================
// Test Helpers
// ============================================================================

// Check that a formula renders to the expected text.
func checkRender(t *testing.T, expected string, formula Formula) {
	assert.Equal(t, expected, formula.String())
}

// Check the truth of a formula under a given assignment.
func checkEval(t *testing.T, input string, env Assignment, expected bool) {
	formula := parseUnchecked(t, input)
	//
	val, err := formula.Eval(env)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, val, "evaluating %s", input)
}

// Check the variables of a formula.
func checkVars(t *testing.T, input string, expected ...string) {
	vars := parseUnchecked(t, input).Vars().ToSlice()
	//
	slices.Sort(vars)
	//
	assert.Equal(t, expected, vars)
}
