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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] formula assignment",
	Short: "evaluate a formula under a truth assignment.",
	Long: `Evaluate a given formula under a given truth assignment, printing
	either true or false.  The assignment is given as a JSON object mapping
	variable names to truth values, or as the name of a JSON file prefixed
	with '@'.  Integer values are accepted in place of booleans, where zero
	counts as false and any other value counts as true.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Parse command-line formula
		formula := parseFormula(args[0])
		// Read truth assignment
		env := readAssignment(args[1])
		// Evaluate formula under assignment
		truth, err := formula.Eval(env)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(verdict(truth))
		// Failing verdicts are reflected in the exit code
		if !truth {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
