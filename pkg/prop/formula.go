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

// Package prop provides a model of classical propositional logic, along with
// a parser, an evaluator and various normal form conversions.
package prop

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Formula represents an arbitrary proposition built from variables and the
// connectives NOT, AND, OR, IMPLIES and IFF.  Formulas are immutable once
// constructed, hence all transformations return fresh trees (which may share
// subtrees with their operands).  Two formulas are considered syntactically
// equal exactly when their renderings coincide.
type Formula interface {
	// Eval determines the truth of this formula under a given assignment.
	// This fails if the formula refers to a variable for which the
	// assignment provides no value.
	Eval(env Assignment) (bool, error)
	// Vars returns the set of variables referred to within this formula.
	Vars() mapset.Set[string]
	// String returns the canonical rendering of this formula, which the
	// parser accepts back unchanged.
	String() string
	// Brace returns the rendering of this formula when it occurs as the
	// operand of an enclosing connective.  Operands are parenthesised
	// unless they are self-delimiting.  Unexported so that the set of
	// formulas is closed under the six variants of this package.
	brace() string
}

// Equal determines whether two formulas are syntactically equal, that is,
// whether they render to the same text.
func Equal(lhs Formula, rhs Formula) bool {
	return lhs.String() == rhs.String()
}

// Connectives counts the connectives within a given formula.  For example,
// "p AND NOT(q)" has two.
func Connectives(f Formula) int {
	switch t := f.(type) {
	case *Variable:
		return 0
	case *Negation:
		return 1 + Connectives(t.Arg)
	case *Conjunct:
		return 1 + Connectives(t.Lhs) + Connectives(t.Rhs)
	case *Disjunct:
		return 1 + Connectives(t.Lhs) + Connectives(t.Rhs)
	case *Implication:
		return 1 + Connectives(t.Hypothesis) + Connectives(t.Conclusion)
	case *Biconditional:
		return 1 + Connectives(t.Lhs) + Connectives(t.Rhs)
	}
	//
	panic("unreachable")
}
