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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value represents the truth value supplied for a variable, which may be
// given either as a boolean or as a machine integer.  No other forms exist.
type Value struct {
	boolean bool
	number  int
	numeric bool
}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{boolean: b}
}

// Int constructs an integral value.
func Int(n int) Value {
	return Value{number: n, numeric: true}
}

// Truth returns the boolean this value denotes.  Integers are coerced here,
// and only here, with zero being false and every other integer being true.
func (p Value) Truth() bool {
	if p.numeric {
		return p.number != 0
	}
	//
	return p.boolean
}

// Assignment maps variable names to truth values.  Assignments may bind
// variables beyond those a given formula refers to, and such bindings are
// simply ignored during evaluation.
type Assignment map[string]Value

// Bools constructs an assignment from a boolean-valued map.
func Bools(env map[string]bool) Assignment {
	ret := make(Assignment, len(env))
	//
	for name, val := range env {
		ret[name] = Bool(val)
	}
	//
	return ret
}

// Truth determines the truth of a given variable under this assignment,
// failing if the assignment provides no value for it.
func (p Assignment) Truth(name string) (bool, error) {
	if val, ok := p[name]; ok {
		return val.Truth(), nil
	}
	//
	return false, &MissingVariableError{name}
}

// MarshalJSON implementation for the json.Marshaler interface.  Assignments
// interchange as JSON objects mapping variable names to booleans, with
// integral values emitted as their coerced truth.
func (p Assignment) MarshalJSON() ([]byte, error) {
	env := make(map[string]bool, len(p))
	//
	for name, val := range p {
		env[name] = val.Truth()
	}
	//
	return json.Marshal(env)
}

// UnmarshalJSON implementation for the json.Unmarshaler interface.  Booleans
// are accepted as they are, whilst integral numbers are accepted under the
// usual coercion.  Anything else (strings, fractions, nested objects, etc)
// is rejected.
func (p *Assignment) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	//
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	//
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	//
	env := make(Assignment, len(raw))
	//
	for name, val := range raw {
		switch v := val.(type) {
		case bool:
			env[name] = Bool(v)
		case json.Number:
			n, err := strconv.Atoi(v.String())
			if err != nil {
				return fmt.Errorf("variable %q given non-integral number %s", name, v)
			}
			//
			env[name] = Int(n)
		default:
			return fmt.Errorf("variable %q given non-truth value", name)
		}
	}
	//
	*p = env
	//
	return nil
}

// MissingVariableError signals that evaluation encountered a variable for
// which the assignment provides no value.
type MissingVariableError struct {
	// Name of the variable in question.
	Name string
}

// Error implementation for the error interface.
func (p *MissingVariableError) Error() string {
	return fmt.Sprintf("truth assignment missing variable %q", p.Name)
}
