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

// Implication represents the logical IMPLIES of two formulas, which is false
// exactly when the hypothesis holds but the conclusion does not.  Unlike
// conjunction and disjunction, implication does not chain.
type Implication struct {
	// Hypothesis is the formula on the left of the arrow.
	Hypothesis Formula
	// Conclusion is the formula on the right of the arrow.
	Conclusion Formula
}

// Implies constructs the implication of one formula by another.
func Implies(hypothesis Formula, conclusion Formula) Formula {
	return &Implication{hypothesis, conclusion}
}

// Eval implementation for the Formula interface.  Both operands are always
// evaluated, hence a missing variable is reported wherever it occurs.
func (p *Implication) Eval(env Assignment) (bool, error) {
	hyp, err := p.Hypothesis.Eval(env)
	//
	if err != nil {
		return false, err
	}
	//
	concl, err := p.Conclusion.Eval(env)
	//
	if err != nil {
		return false, err
	}
	//
	return !hyp || concl, nil
}

// Vars implementation for the Formula interface.
func (p *Implication) Vars() mapset.Set[string] {
	return p.Hypothesis.Vars().Union(p.Conclusion.Vars())
}

// String implementation for the Formula interface.
func (p *Implication) String() string {
	return fmt.Sprintf("%s IMPLIES %s", p.Hypothesis.brace(), p.Conclusion.brace())
}

func (p *Implication) brace() string {
	return "(" + p.String() + ")"
}
