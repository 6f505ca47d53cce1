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

	"github.com/consensys/go-props/pkg/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dotCmd = &cobra.Command{
	Use:   "dot [flags] formula",
	Short: "print a formula as a Graphviz directed graph.",
	Long: `Print a given formula as a Graphviz directed graph, with one node
	per connective or variable.  With --assign, each node is additionally
	coloured according to its own truth under the given assignment, which
	must cover every variable of the formula.`,
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
		assign := GetString(cmd, "assign")
		output := GetString(cmd, "output")
		// Parse command-line formula
		formula := parseFormula(args[0])
		//
		var text string
		//
		if assign != "" {
			var err error
			// Read truth assignment
			env := readAssignment(assign)
			// Render graph with nodes coloured by truth
			if text, err = viz.DotUnder(formula, env); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		} else {
			text = viz.Dot(formula)
		}
		// Write graph to file, or stdout otherwise
		if output != "" {
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			log.Debugf("wrote %d bytes to %s", len(text), output)
		} else {
			fmt.Print(text)
		}
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().StringP("output", "o", "", "Write the graph to a given file")
	dotCmd.Flags().String("assign", "", "Colour nodes by truth under a given assignment")
}
