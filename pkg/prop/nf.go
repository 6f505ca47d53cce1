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

// ToNNF converts a formula into negation normal form, a shape in which
// negation applies only to variables and the only connectives are conjunction
// and disjunction.  Implications are rewritten as "NOT(p) OR q",
// biconditionals as the conjunction of the two implications, and negations
// are then pushed inwards using De Morgan's laws with double negations
// collapsing.  The resulting formula is logically equivalent to the original.
func ToNNF(formula Formula) Formula {
	return push(eliminate(formula))
}

// ToCNF converts a formula into conjunctive normal form, that is a
// conjunction of clauses where each clause is a disjunction of literals.  The
// resulting formula is logically equivalent to the original, though it can be
// exponentially larger in the worst case.
func ToCNF(formula Formula) Formula {
	return cnf(ToNNF(formula))
}

// ToDNF converts a formula into disjunctive normal form, that is a
// disjunction of cubes where each cube is a conjunction of literals.  The
// resulting formula is logically equivalent to the original, though it can be
// exponentially larger in the worst case.
func ToDNF(formula Formula) Formula {
	return dnf(ToNNF(formula))
}

// Negate a formula without simply wrapping it in another negation.  Double
// negations collapse, conjunction and disjunction negate through their duals,
// and an implication negates by asserting its hypothesis against its negated
// conclusion.
func Negate(formula Formula) Formula {
	switch f := formula.(type) {
	case *Variable:
		return Not(f)
	case *Negation:
		return f.Arg
	case *Conjunct:
		return Or(Negate(f.Lhs), Negate(f.Rhs))
	case *Disjunct:
		return And(Negate(f.Lhs), Negate(f.Rhs))
	case *Implication:
		return And(f.Hypothesis, Negate(f.Conclusion))
	case *Biconditional:
		return Or(And(f.Lhs, Negate(f.Rhs)), And(Negate(f.Lhs), f.Rhs))
	}
	//
	panic("unreachable")
}

// IsNNF determines whether a formula is in negation normal form.
func IsNNF(formula Formula) bool {
	switch f := formula.(type) {
	case *Variable:
		return true
	case *Negation:
		return isVariable(f.Arg)
	case *Conjunct:
		return IsNNF(f.Lhs) && IsNNF(f.Rhs)
	case *Disjunct:
		return IsNNF(f.Lhs) && IsNNF(f.Rhs)
	default:
		return false
	}
}

// IsCNF determines whether a formula is in conjunctive normal form.  Observe
// that a bare literal counts as a clause, and a bare clause counts as a
// conjunction of one.
func IsCNF(formula Formula) bool {
	if f, ok := formula.(*Conjunct); ok {
		return IsCNF(f.Lhs) && IsCNF(f.Rhs)
	}
	//
	return isClause(formula)
}

// IsDNF determines whether a formula is in disjunctive normal form.  Observe
// that a bare literal counts as a cube, and a bare cube counts as a
// disjunction of one.
func IsDNF(formula Formula) bool {
	if f, ok := formula.(*Disjunct); ok {
		return IsDNF(f.Lhs) && IsDNF(f.Rhs)
	}
	//
	return isCube(formula)
}

// ============================================================================
// Helpers
// ============================================================================

// Eliminate all implications and biconditionals from a formula.
func eliminate(formula Formula) Formula {
	switch f := formula.(type) {
	case *Variable:
		return f
	case *Negation:
		return Not(eliminate(f.Arg))
	case *Conjunct:
		return And(eliminate(f.Lhs), eliminate(f.Rhs))
	case *Disjunct:
		return Or(eliminate(f.Lhs), eliminate(f.Rhs))
	case *Implication:
		return Or(Not(eliminate(f.Hypothesis)), eliminate(f.Conclusion))
	case *Biconditional:
		lhs, rhs := eliminate(f.Lhs), eliminate(f.Rhs)
		// Conjunction of the two implications
		return And(Or(Not(lhs), rhs), Or(Not(rhs), lhs))
	}
	//
	panic("unreachable")
}

// Push negations inwards until they apply only to variables.  The formula
// must be free of implications and biconditionals at this point.
func push(formula Formula) Formula {
	switch f := formula.(type) {
	case *Variable:
		return f
	case *Negation:
		return pushNot(f.Arg)
	case *Conjunct:
		return And(push(f.Lhs), push(f.Rhs))
	case *Disjunct:
		return Or(push(f.Lhs), push(f.Rhs))
	}
	//
	panic("unreachable")
}

// Push the negation of a given formula inwards using De Morgan's laws.
func pushNot(formula Formula) Formula {
	switch f := formula.(type) {
	case *Variable:
		return Not(f)
	case *Negation:
		// Double negation collapses
		return push(f.Arg)
	case *Conjunct:
		return Or(pushNot(f.Lhs), pushNot(f.Rhs))
	case *Disjunct:
		return And(pushNot(f.Lhs), pushNot(f.Rhs))
	}
	//
	panic("unreachable")
}

// Distribute disjunctions over conjunctions within a formula already in
// negation normal form.
func cnf(formula Formula) Formula {
	switch f := formula.(type) {
	case *Conjunct:
		return And(cnf(f.Lhs), cnf(f.Rhs))
	case *Disjunct:
		return distributeOr(cnf(f.Lhs), cnf(f.Rhs))
	}
	//
	return formula
}

// Distribute a disjunction over its operands, both of which are already in
// conjunctive normal form.
func distributeOr(lhs Formula, rhs Formula) Formula {
	if l, ok := lhs.(*Conjunct); ok {
		return And(distributeOr(l.Lhs, rhs), distributeOr(l.Rhs, rhs))
	} else if r, ok := rhs.(*Conjunct); ok {
		return And(distributeOr(lhs, r.Lhs), distributeOr(lhs, r.Rhs))
	}
	//
	return Or(lhs, rhs)
}

// Distribute conjunctions over disjunctions within a formula already in
// negation normal form.
func dnf(formula Formula) Formula {
	switch f := formula.(type) {
	case *Disjunct:
		return Or(dnf(f.Lhs), dnf(f.Rhs))
	case *Conjunct:
		return distributeAnd(dnf(f.Lhs), dnf(f.Rhs))
	}
	//
	return formula
}

// Distribute a conjunction over its operands, both of which are already in
// disjunctive normal form.
func distributeAnd(lhs Formula, rhs Formula) Formula {
	if l, ok := lhs.(*Disjunct); ok {
		return Or(distributeAnd(l.Lhs, rhs), distributeAnd(l.Rhs, rhs))
	} else if r, ok := rhs.(*Disjunct); ok {
		return Or(distributeAnd(lhs, r.Lhs), distributeAnd(lhs, r.Rhs))
	}
	//
	return And(lhs, rhs)
}

// Identify formulae which are literals, that is variables or negated
// variables.
func isLiteral(formula Formula) bool {
	switch f := formula.(type) {
	case *Variable:
		return true
	case *Negation:
		return isVariable(f.Arg)
	default:
		return false
	}
}

func isVariable(formula Formula) bool {
	_, ok := formula.(*Variable)
	return ok
}

// Identify formulae which are clauses, that is disjunctions of literals.
func isClause(formula Formula) bool {
	if f, ok := formula.(*Disjunct); ok {
		return isClause(f.Lhs) && isClause(f.Rhs)
	}
	//
	return isLiteral(formula)
}

// Identify formulae which are cubes, that is conjunctions of literals.
func isCube(formula Formula) bool {
	if f, ok := formula.(*Conjunct); ok {
		return isCube(f.Lhs) && isCube(f.Rhs)
	}
	//
	return isLiteral(formula)
}
