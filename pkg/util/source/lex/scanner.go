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
package lex

// Scanner is a function which accepts a prefix of the given text or not,
// returning the number of characters matched.
type Scanner func(text []rune) uint

// And combines zero or more scanners such that the resulting scanner succeeds
// if all of the scanners succeed on the same starting position, matching the
// longest prefix accepted by any of them.  Observe that there is an implicit
// left-to-right order of evaluation.
func And(scanners ...Scanner) Scanner {
	return func(text []rune) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(text)
			if m == 0 {
				// fail
				return 0
			}
			//
			n = max(n, m)
		}
		//
		return n
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe that there is an implicit
// left-to-right order of evaluation.
func Or(scanners ...Scanner) Scanner {
	return func(text []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(text); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given character.
func Unit(char rune) Scanner {
	return func(text []rune) uint {
		if len(text) != 0 && text[0] == char {
			return 1
		}
		// fail
		return 0
	}
}

// Within accepts any character within a given range.
func Within(lowest rune, highest rune) Scanner {
	return func(text []rune) uint {
		if len(text) != 0 && lowest <= text[0] && text[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many(acceptor Scanner) Scanner {
	return func(text []rune) uint {
		index := uint(0)
		//
		for index < uint(len(text)) {
			if n := acceptor(text[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Eof matches the end of the input stream.
func Eof() Scanner {
	return func(text []rune) uint {
		if len(text) == 0 {
			return 1
		}
		//
		return 0
	}
}
