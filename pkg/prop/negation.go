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
	mapset "github.com/deckarep/golang-set/v2"
)

// Negation represents the logical NOT of a given formula.
type Negation struct {
	// Arg is the formula being negated.
	Arg Formula
}

// Not constructs the negation of a given formula.
func Not(arg Formula) Formula {
	return &Negation{arg}
}

// Eval implementation for the Formula interface.
func (p *Negation) Eval(env Assignment) (bool, error) {
	val, err := p.Arg.Eval(env)
	//
	if err != nil {
		return false, err
	}
	//
	return !val, nil
}

// Vars implementation for the Formula interface.
func (p *Negation) Vars() mapset.Set[string] {
	return p.Arg.Vars()
}

// String implementation for the Formula interface.  Negations always
// parenthesise their argument, mirroring the concrete syntax where NOT
// cannot be applied without parentheses.
func (p *Negation) String() string {
	return "NOT(" + p.Arg.String() + ")"
}

func (p *Negation) brace() string {
	return p.String()
}
