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
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Disjunct represents the logical OR of two formulas.  Longer disjunctions
// such as "p OR q OR r" are held as left-nested binary disjuncts.
type Disjunct struct {
	Lhs Formula
	Rhs Formula
}

// Or constructs the disjunction of two formulas.
func Or(lhs Formula, rhs Formula) Formula {
	return &Disjunct{lhs, rhs}
}

// Eval implementation for the Formula interface.  Both operands are always
// evaluated, hence a missing variable is reported wherever it occurs.
func (p *Disjunct) Eval(env Assignment) (bool, error) {
	lhs, err := p.Lhs.Eval(env)
	//
	if err != nil {
		return false, err
	}
	//
	rhs, err := p.Rhs.Eval(env)
	//
	if err != nil {
		return false, err
	}
	//
	return lhs || rhs, nil
}

// Vars implementation for the Formula interface.
func (p *Disjunct) Vars() mapset.Set[string] {
	return p.Lhs.Vars().Union(p.Rhs.Vars())
}

// String implementation for the Formula interface.  A left-nested disjunct
// continues the enclosing chain, hence renders without parentheses; anything
// else on the left, and every disjunct on the right, is braced.
func (p *Disjunct) String() string {
	var builder strings.Builder
	//
	if lhs, ok := p.Lhs.(*Disjunct); ok {
		builder.WriteString(lhs.String())
	} else {
		builder.WriteString(p.Lhs.brace())
	}
	//
	builder.WriteString(" OR ")
	builder.WriteString(p.Rhs.brace())
	//
	return builder.String()
}

func (p *Disjunct) brace() string {
	return "(" + p.String() + ")"
}

// Disjoin a sequence of one or more formulae into a left-associated chain of
// disjunctions.
func disjoin(terms []Formula) Formula {
	term := terms[0]
	//
	for _, t := range terms[1:] {
		term = Or(term, t)
	}
	//
	return term
}
