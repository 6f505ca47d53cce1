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
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// TruthTable records the truth of a formula under every assignment of a given
// sequence of variables.  Rows enumerate assignments by counting in binary
// over the variables, with the first variable toggling fastest.  Hence row
// zero assigns false throughout, and the final row assigns true throughout.
type TruthTable struct {
	// Variables of this table, in column order.
	vars []string
	// Truth of the formula on each row.
	rows *bitset.BitSet
}

// Tabulate computes the truth table of a formula over its own variables,
// taken in lexicographic order.  Observe that the table always has power of
// two many rows, and this grows exponentially with the number of variables.
func Tabulate(formula Formula) *TruthTable {
	vars := formula.Vars().ToSlice()
	// Fix the column order
	slices.Sort(vars)
	//
	return mustTabulate(vars, formula)
}

// TabulateOver computes the truth table of a formula over a given sequence of
// variables, which must cover those of the formula itself.  Additional
// variables are permitted, and simply duplicate the truth of the formula
// across the corresponding rows.
func TabulateOver(vars []string, formula Formula) (*TruthTable, error) {
	var (
		n    = uint(len(vars))
		rows = bitset.New(1 << n)
	)
	//
	for i := uint(0); i < (1 << n); i++ {
		val, err := formula.Eval(rowOf(vars, i))
		//
		if err != nil {
			return nil, err
		} else if val {
			rows.Set(i)
		}
	}
	//
	return &TruthTable{vars, rows}, nil
}

// Vars returns the variables this table ranges over, in column order.
func (p *TruthTable) Vars() []string {
	return p.vars
}

// Rows returns the number of rows in this table.
func (p *TruthTable) Rows() uint {
	return 1 << uint(len(p.vars))
}

// Row returns the assignment enumerated by a given row, along with the truth
// of the formula on that row.
func (p *TruthTable) Row(row uint) (Assignment, bool) {
	return rowOf(p.vars, row), p.rows.Test(row)
}

// Truth returns the truth of the formula on a given row.
func (p *TruthTable) Truth(row uint) bool {
	return p.rows.Test(row)
}

// Count returns the number of rows on which the formula holds.
func (p *TruthTable) Count() uint {
	return p.rows.Count()
}

// Equals determines whether two tables range over identical variables and
// agree on every row.
func (p *TruthTable) Equals(other *TruthTable) bool {
	return slices.Equal(p.vars, other.vars) && p.rows.Equal(other.rows)
}

// Equivalent determines whether two formulae agree under every assignment of
// their combined variables.
func Equivalent(lhs Formula, rhs Formula) bool {
	vars := sortedUnion(lhs, rhs)
	//
	l := mustTabulate(vars, lhs)
	r := mustTabulate(vars, rhs)
	//
	return l.rows.Equal(r.rows)
}

// Entails determines whether every assignment satisfying the first formula
// also satisfies the second.
func Entails(lhs Formula, rhs Formula) bool {
	vars := sortedUnion(lhs, rhs)
	//
	l := mustTabulate(vars, lhs)
	r := mustTabulate(vars, rhs)
	// No row may satisfy lhs without rhs
	return l.rows.Difference(r.rows).None()
}

// Tautology determines whether a formula holds under every assignment of its
// variables.
func Tautology(formula Formula) bool {
	table := Tabulate(formula)
	//
	return table.Count() == table.Rows()
}

// Satisfiable determines whether a formula holds under at least one
// assignment of its variables.
func Satisfiable(formula Formula) bool {
	return Tabulate(formula).Count() != 0
}

// Unsatisfiable determines whether a formula holds under no assignment of its
// variables.
func Unsatisfiable(formula Formula) bool {
	return !Satisfiable(formula)
}

// CanonicalCNF constructs the canonical conjunctive normal form of a formula
// from its truth table, with one maxterm per falsifying row.  Since the
// language has no constant for truth, a tautology has no such form and is
// reported as an error.
func CanonicalCNF(formula Formula) (Formula, error) {
	var (
		table   = Tabulate(formula)
		clauses []Formula
	)
	//
	for i := uint(0); i < table.Rows(); i++ {
		if !table.Truth(i) {
			clauses = append(clauses, maxterm(table.vars, i))
		}
	}
	//
	if len(clauses) == 0 {
		return nil, errors.New("tautology has no canonical conjunctive form")
	}
	//
	return conjoin(clauses), nil
}

// CanonicalDNF constructs the canonical disjunctive normal form of a formula
// from its truth table, with one minterm per satisfying row.  Since the
// language has no constant for falsehood, an unsatisfiable formula has no
// such form and is reported as an error.
func CanonicalDNF(formula Formula) (Formula, error) {
	var (
		table = Tabulate(formula)
		cubes []Formula
	)
	//
	for i := uint(0); i < table.Rows(); i++ {
		if table.Truth(i) {
			cubes = append(cubes, minterm(table.vars, i))
		}
	}
	//
	if len(cubes) == 0 {
		return nil, errors.New("unsatisfiable formula has no canonical disjunctive form")
	}
	//
	return disjoin(cubes), nil
}

// MakeTrue constructs the weakest formula which a given assignment makes
// true, that is the conjunction of the literals the assignment pins down.
// An empty assignment pins down nothing and is reported as an error, since
// the language has no constant for truth.
func MakeTrue(env Assignment) (Formula, error) {
	if len(env) == 0 {
		return nil, errors.New("empty assignment")
	}
	//
	names := make([]string, 0, len(env))
	//
	for name := range env {
		if !ValidName(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		//
		names = append(names, name)
	}
	// Fix the literal order
	slices.Sort(names)
	//
	literals := make([]Formula, len(names))
	//
	for i, name := range names {
		if env[name].Truth() {
			literals[i] = Var(name)
		} else {
			literals[i] = Not(Var(name))
		}
	}
	//
	return conjoin(literals), nil
}

// ============================================================================
// Helpers
// ============================================================================

// Assignment enumerated by a given row, where the ith variable holds exactly
// when the ith bit of the row is set.
func rowOf(vars []string, row uint) Assignment {
	env := make(Assignment, len(vars))
	//
	for j, name := range vars {
		env[name] = Bool(row&(1<<j) != 0)
	}
	//
	return env
}

// Tabulate a formula over a sequence of variables known to cover it.
func mustTabulate(vars []string, formula Formula) *TruthTable {
	table, err := TabulateOver(vars, formula)
	//
	if err != nil {
		panic("unreachable")
	}
	//
	return table
}

// Sorted union of the variables of two formulae.
func sortedUnion(lhs Formula, rhs Formula) []string {
	vars := lhs.Vars().Union(rhs.Vars()).ToSlice()
	//
	slices.Sort(vars)
	//
	return vars
}

// Maxterm for a given falsifying row, that is the disjunction of literals
// ruling that row out.
func maxterm(vars []string, row uint) Formula {
	literals := make([]Formula, len(vars))
	//
	for j, name := range vars {
		if row&(1<<j) != 0 {
			literals[j] = Not(Var(name))
		} else {
			literals[j] = Var(name)
		}
	}
	//
	return disjoin(literals)
}

// Minterm for a given satisfying row, that is the conjunction of literals
// singling that row out.
func minterm(vars []string, row uint) Formula {
	literals := make([]Formula, len(vars))
	//
	for j, name := range vars {
		if row&(1<<j) != 0 {
			literals[j] = Var(name)
		} else {
			literals[j] = Not(Var(name))
		}
	}
	//
	return conjoin(literals)
}
