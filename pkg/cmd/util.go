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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-props/pkg/prop"
	"github.com/consensys/go-props/pkg/util/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or terminates if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected flag, or terminates if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected flag, or terminates if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a formula given on the command line, terminating with a suitable
// report if it is malformed.
func parseFormula(input string) prop.Formula {
	srcfile := source.NewSourceFile("formula", []byte(input))
	// Parse formula
	formula, err := prop.ParseSourceFile(srcfile)
	// Check for errors
	if err != nil {
		printSyntaxError(err)
		os.Exit(2)
	}
	// Done
	return formula
}

// Read a truth assignment given either as inline JSON, or as the name of a
// JSON file prefixed with '@'.
func readAssignment(input string) prop.Assignment {
	var (
		env   prop.Assignment
		bytes = []byte(input)
		err   error
	)
	// Check for an assignment file
	if strings.HasPrefix(input, "@") {
		bytes, err = os.ReadFile(input[1:])
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	// Unmarshall assignment
	if err := json.Unmarshal(bytes, &env); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Done
	return env
}

// Render a truth as a coloured verdict.
func verdict(truth bool) string {
	if truth {
		return color.GreenString("true")
	}
	//
	return color.RedString("false")
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(length, 1)))
}
