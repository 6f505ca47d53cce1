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

	"github.com/consensys/go-props/pkg/bdd"
	"github.com/consensys/go-props/pkg/sat"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var satCmd = &cobra.Command{
	Use:   "sat [flags] formula",
	Short: "check whether a formula is satisfiable.",
	Long: `Check whether a given formula is satisfiable, as decided by a SAT
	solver.  With --model, a satisfying assignment is also printed as JSON.
	With --count, the number of satisfying assignments is also printed, as
	determined from a binary decision diagram of the formula.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		model := GetFlag(cmd, "model")
		count := GetFlag(cmd, "count")
		// Parse command-line formula
		formula := parseFormula(args[0])
		// Attempt to find a satisfying assignment
		env, ok := sat.Model(formula)
		//
		if !ok {
			fmt.Println(color.RedString("unsatisfiable"))
			os.Exit(1)
		}
		//
		fmt.Println(color.GreenString("satisfiable"))
		// Print model (if requested)
		if model {
			bytes, err := json.Marshal(env)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(string(bytes))
		}
		// Print model count (if requested)
		if count {
			fmt.Printf("%s model(s)\n", bdd.Count(formula))
		}
	},
}

func init() {
	rootCmd.AddCommand(satCmd)
	satCmd.Flags().Bool("model", false, "Also print a satisfying assignment")
	satCmd.Flags().Bool("count", false, "Also print the number of satisfying assignments")
}
