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

// Variable represents a single propositional variable, whose name is used as
// the key into truth assignments.
type Variable struct {
	// Name of this variable.
	Name string
}

// Var constructs a formula consisting of a single propositional variable.
// This panics if the given name is not a valid variable name, as that
// indicates an error in the calling code.
func Var(name string) Formula {
	if !ValidName(name) {
		panic(fmt.Sprintf("invalid variable name %q", name))
	}
	//
	return &Variable{name}
}

// ValidName checks whether a given string is usable as a variable name.
// Valid names are non-empty sequences of letters, digits and underscores
// which do not begin with a digit, and which do not collide with a
// connective keyword.
func ValidName(name string) bool {
	if name == "" || isKeyword(name) {
		return false
	}
	//
	for i, c := range name {
		switch {
		case c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
			continue
		case i > 0 && '0' <= c && c <= '9':
			continue
		}
		//
		return false
	}
	//
	return true
}

// Eval implementation for the Formula interface.
func (p *Variable) Eval(env Assignment) (bool, error) {
	return env.Truth(p.Name)
}

// Vars implementation for the Formula interface.
func (p *Variable) Vars() mapset.Set[string] {
	return mapset.NewSet(p.Name)
}

// String implementation for the Formula interface.
func (p *Variable) String() string {
	return p.Name
}

func (p *Variable) brace() string {
	return p.Name
}
