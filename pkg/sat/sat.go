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

// Package sat answers semantic queries about formulae with a CNF solver,
// rather than by enumerating truth tables.  Formulae compile into a
// combinational circuit whose root is then assumed, or refuted, as the query
// demands.  For small variable counts the truth table approach is perfectly
// adequate, but it enumerates every assignment regardless, whereas the solver
// only explores what it must.
package sat

import (
	"github.com/consensys/go-props/pkg/prop"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Satisfiable determines whether some assignment makes the formula hold.
func Satisfiable(formula prop.Formula) bool {
	circ := newCircuit()
	//
	_, ok := circ.solve(circ.compile(formula))
	//
	return ok
}

// Unsatisfiable determines whether no assignment makes the formula hold.
func Unsatisfiable(formula prop.Formula) bool {
	return !Satisfiable(formula)
}

// Model returns an assignment making the formula hold, if one exists.
func Model(formula prop.Formula) (prop.Assignment, bool) {
	circ := newCircuit()
	//
	g, ok := circ.solve(circ.compile(formula))
	//
	if !ok {
		return nil, false
	}
	//
	env := make(prop.Assignment, len(circ.vars))
	//
	for name, lit := range circ.vars {
		env[name] = prop.Bool(g.Value(lit))
	}
	//
	return env, true
}

// Tautology determines whether every assignment makes the formula hold, by
// refuting its negation.
func Tautology(formula prop.Formula) bool {
	circ := newCircuit()
	//
	_, ok := circ.solve(circ.compile(formula).Not())
	//
	return !ok
}

// Equivalent determines whether two formulae agree under every assignment,
// by refuting their symmetric difference.
func Equivalent(lhs prop.Formula, rhs prop.Formula) bool {
	circ := newCircuit()
	//
	_, ok := circ.solve(circ.c.Xor(circ.compile(lhs), circ.compile(rhs)))
	//
	return !ok
}

// Entails determines whether every assignment satisfying the first formula
// also satisfies the second, by refuting the first against the negated
// second.
func Entails(lhs prop.Formula, rhs prop.Formula) bool {
	circ := newCircuit()
	//
	_, ok := circ.solve(circ.c.And(circ.compile(lhs), circ.compile(rhs).Not()))
	//
	return !ok
}

// circuit accumulates the combinational form of one or more formulae, along
// with the mapping from variable names to solver literals.
type circuit struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newCircuit() *circuit {
	return &circuit{logic.NewC(), make(map[string]z.Lit)}
}

// Compile a formula into the circuit, returning the literal standing for its
// root.  Variables of the same name always compile to the same literal.
func (p *circuit) compile(formula prop.Formula) z.Lit {
	switch f := formula.(type) {
	case *prop.Variable:
		return p.variable(f.Name)
	case *prop.Negation:
		return p.compile(f.Arg).Not()
	case *prop.Conjunct:
		return p.c.And(p.compile(f.Lhs), p.compile(f.Rhs))
	case *prop.Disjunct:
		return p.c.Or(p.compile(f.Lhs), p.compile(f.Rhs))
	case *prop.Implication:
		return p.c.Implies(p.compile(f.Hypothesis), p.compile(f.Conclusion))
	case *prop.Biconditional:
		return p.c.Xor(p.compile(f.Lhs), p.compile(f.Rhs)).Not()
	}
	//
	panic("unreachable")
}

func (p *circuit) variable(name string) z.Lit {
	if lit, ok := p.vars[name]; ok {
		return lit
	}
	//
	lit := p.c.Lit()
	p.vars[name] = lit
	//
	return lit
}

// Solve the circuit under the assumption that a given root literal holds.
func (p *circuit) solve(root z.Lit) (*gini.Gini, bool) {
	g := gini.New()
	// Convert circuit to CNF
	p.c.ToCnf(g)
	// Constrain the root to hold
	g.Assume(root)
	//
	return g, g.Solve() == 1
}
