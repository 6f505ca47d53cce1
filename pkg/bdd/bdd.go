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

// Package bdd answers semantic queries about formulae with reduced ordered
// binary decision diagrams.  Diagrams are canonical for a fixed variable
// ordering, hence a formula is a tautology (resp. unsatisfiable) exactly when
// its diagram is the constant true (resp. false) diagram.
package bdd

import (
	"math/big"
	"slices"

	"github.com/consensys/go-props/pkg/prop"
	"github.com/dalzilio/rudd"
)

// Satisfiable determines whether some assignment makes the formula hold.
func Satisfiable(formula prop.Formula) bool {
	_, unsat, _ := analyse(formula)
	//
	return !unsat
}

// Unsatisfiable determines whether no assignment makes the formula hold.
func Unsatisfiable(formula prop.Formula) bool {
	_, unsat, _ := analyse(formula)
	//
	return unsat
}

// Tautology determines whether every assignment makes the formula hold.
func Tautology(formula prop.Formula) bool {
	taut, _, _ := analyse(formula)
	//
	return taut
}

// Equivalent determines whether two formulae agree under every assignment.
// Since diagrams are canonical, this holds exactly when the biconditional of
// the two reduces to the constant true diagram.
func Equivalent(lhs prop.Formula, rhs prop.Formula) bool {
	return Tautology(prop.Iff(lhs, rhs))
}

// Entails determines whether every assignment satisfying the first formula
// also satisfies the second.
func Entails(lhs prop.Formula, rhs prop.Formula) bool {
	return Tautology(prop.Implies(lhs, rhs))
}

// Count returns the number of assignments of the formula's own variables
// under which it holds.
func Count(formula prop.Formula) *big.Int {
	_, _, count := analyse(formula)
	//
	return count
}

// Analyse a formula by building its diagram over its own variables, taken in
// lexicographic order.  This reports whether the diagram is constant,
// together with its number of satisfying assignments.
func analyse(formula prop.Formula) (taut bool, unsat bool, count *big.Int) {
	vars := formula.Vars().ToSlice()
	// Fix the variable ordering
	slices.Sort(vars)
	//
	b, err := rudd.New(len(vars))
	//
	if err != nil {
		panic(err)
	}
	// Levels follow the variable ordering
	levels := make(map[string]int, len(vars))
	//
	for i, name := range vars {
		levels[name] = i
	}
	//
	var translate func(prop.Formula) rudd.Node
	//
	translate = func(f prop.Formula) rudd.Node {
		switch t := f.(type) {
		case *prop.Variable:
			return b.Ithvar(levels[t.Name])
		case *prop.Negation:
			return b.Not(translate(t.Arg))
		case *prop.Conjunct:
			return b.And(translate(t.Lhs), translate(t.Rhs))
		case *prop.Disjunct:
			return b.Or(translate(t.Lhs), translate(t.Rhs))
		case *prop.Implication:
			return b.Imp(translate(t.Hypothesis), translate(t.Conclusion))
		case *prop.Biconditional:
			return b.Equiv(translate(t.Lhs), translate(t.Rhs))
		}
		//
		panic("unreachable")
	}
	//
	root := translate(formula)
	//
	return b.Equal(root, b.True()), b.Equal(root, b.False()), b.Satcount(root)
}
