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
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Biconditional represents the logical IFF of two formulas, which holds
// exactly when both operands agree on their truth.  Unlike conjunction and
// disjunction, biconditionals do not chain.
type Biconditional struct {
	Lhs Formula
	Rhs Formula
}

// Iff constructs the biconditional of two formulas.
func Iff(lhs Formula, rhs Formula) Formula {
	return &Biconditional{lhs, rhs}
}

// Eval implementation for the Formula interface.  Both operands are always
// evaluated, hence a missing variable is reported wherever it occurs.
func (p *Biconditional) Eval(env Assignment) (bool, error) {
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
	return lhs == rhs, nil
}

// Vars implementation for the Formula interface.
func (p *Biconditional) Vars() mapset.Set[string] {
	return p.Lhs.Vars().Union(p.Rhs.Vars())
}

// String implementation for the Formula interface.
func (p *Biconditional) String() string {
	return fmt.Sprintf("%s IFF %s", p.Lhs.brace(), p.Rhs.brace())
}

func (p *Biconditional) brace() string {
	return "(" + p.String() + ")"
}
