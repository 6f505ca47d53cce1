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

	"github.com/consensys/go-props/pkg/bdd"
	"github.com/consensys/go-props/pkg/prop"
	"github.com/consensys/go-props/pkg/sat"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] first second",
	Short: "check whether two formulas are logically equivalent.",
	Long: `Check whether two given formulas agree under every truth
	assignment of their variables.  The --method flag selects the decision
	procedure used: "table" compares truth tables, "sat" refutes a
	distinguishing assignment using a SAT solver, and "bdd" compares binary
	decision diagrams.  With --entails, the check is instead whether every
	assignment satisfying the first formula satisfies the second.`,
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
		//
		method := GetString(cmd, "method")
		entails := GetFlag(cmd, "entails")
		// Parse command-line formulas
		lhs := parseFormula(args[0])
		rhs := parseFormula(args[1])
		// Apply selected decision procedure
		result := checkEquivalence(method, entails, lhs, rhs)
		// Report verdict
		switch {
		case result && entails:
			fmt.Println(color.GreenString("entails"))
		case result:
			fmt.Println(color.GreenString("equivalent"))
		case entails:
			fmt.Println(color.RedString("does not entail"))
		default:
			fmt.Println(color.RedString("inequivalent"))
		}
		// Negative verdicts are reflected in the exit code
		if !result {
			os.Exit(1)
		}
	},
}

// Decide equivalence (or entailment) of two formulas using a given method.
func checkEquivalence(method string, entails bool, lhs prop.Formula, rhs prop.Formula) bool {
	log.Debugf("deciding via %s over %d variable(s)", method, lhs.Vars().Union(rhs.Vars()).Cardinality())
	//
	switch method {
	case "table":
		if entails {
			return prop.Entails(lhs, rhs)
		}
		//
		return prop.Equivalent(lhs, rhs)
	case "sat":
		if entails {
			return sat.Entails(lhs, rhs)
		}
		//
		return sat.Equivalent(lhs, rhs)
	case "bdd":
		if entails {
			return bdd.Entails(lhs, rhs)
		}
		//
		return bdd.Equivalent(lhs, rhs)
	}
	//
	fmt.Printf("unknown method \"%s\"\n", method)
	os.Exit(2)
	// unreachable
	return false
}

func init() {
	rootCmd.AddCommand(equivCmd)
	equivCmd.Flags().String("method", "table", "Select decision procedure (table/sat/bdd)")
	equivCmd.Flags().Bool("entails", false, "Check entailment rather than equivalence")
}
