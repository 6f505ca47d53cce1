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
	"math/rand/v2"
)

// Random constructs a random formula over a given number of variables, where
// every path from the root reaches a variable within a given depth.
// Variables are named "p0", "p1" and so on, though not all of them need
// occur in the resulting formula.
func Random(nvars uint, depth uint) Formula {
	if nvars == 0 {
		panic("at least one variable required")
	}
	// Pick a shape, with variables the only choice at the leaves.
	choice := uint(0)
	//
	if depth > 0 {
		choice = rand.UintN(6)
	}
	//
	switch choice {
	case 0:
		return Var(fmt.Sprintf("p%d", rand.UintN(nvars)))
	case 1:
		return Not(Random(nvars, depth-1))
	case 2:
		return And(Random(nvars, depth-1), Random(nvars, depth-1))
	case 3:
		return Or(Random(nvars, depth-1), Random(nvars, depth-1))
	case 4:
		return Implies(Random(nvars, depth-1), Random(nvars, depth-1))
	case 5:
		return Iff(Random(nvars, depth-1), Random(nvars, depth-1))
	}
	//
	panic("unreachable")
}
