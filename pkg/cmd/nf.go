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

	"github.com/consensys/go-props/pkg/prop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cnfCmd = &cobra.Command{
	Use:   "cnf [flags] formula",
	Short: "convert a formula into conjunctive normal form.",
	Long: `Convert a given formula into an equivalent one in conjunctive
	normal form, that is, a conjunction of disjunctions of literals.  With
	--canonical, the canonical form determined by the truth table of the
	formula is printed instead (which fails for tautologies, since these
	have an empty canonical conjunction).`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalForm(cmd, args, prop.ToCNF, prop.CanonicalCNF)
	},
}

var dnfCmd = &cobra.Command{
	Use:   "dnf [flags] formula",
	Short: "convert a formula into disjunctive normal form.",
	Long: `Convert a given formula into an equivalent one in disjunctive
	normal form, that is, a disjunction of conjunctions of literals.  With
	--canonical, the canonical form determined by the truth table of the
	formula is printed instead (which fails for unsatisfiable formulas,
	since these have an empty canonical disjunction).`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalForm(cmd, args, prop.ToDNF, prop.CanonicalDNF)
	},
}

var nnfCmd = &cobra.Command{
	Use:   "nnf [flags] formula",
	Short: "convert a formula into negation normal form.",
	Long: `Convert a given formula into an equivalent one in negation normal
	form, that is, one built solely from conjunction and disjunction of
	literals.`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalForm(cmd, args, prop.ToNNF, nil)
	},
}

var negateCmd = &cobra.Command{
	Use:   "negate [flags] formula",
	Short: "negate a formula.",
	Long: `Negate a given formula, pushing the negation inwards where the
	outermost connective admits a direct dual.  For example, negating a
	conjunction yields a disjunction of negated operands, whilst negating a
	negation simply strips it.`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalForm(cmd, args, prop.Negate, nil)
	},
}

// Shared harness for the normal form commands, which differ only in the
// conversion being applied.
func runNormalForm(cmd *cobra.Command, args []string, convert func(prop.Formula) prop.Formula,
	canonical func(prop.Formula) (prop.Formula, error)) {
	//
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	// Parse command-line formula
	formula := parseFormula(args[0])
	//
	if canonical != nil && GetFlag(cmd, "canonical") {
		var err error
		// Canonical conversion can fail
		if formula, err = canonical(formula); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	} else {
		formula = convert(formula)
	}
	//
	log.Debugf("converted formula has %d connectives", prop.Connectives(formula))
	//
	fmt.Println(formula.String())
}

func init() {
	rootCmd.AddCommand(cnfCmd)
	rootCmd.AddCommand(dnfCmd)
	rootCmd.AddCommand(nnfCmd)
	rootCmd.AddCommand(negateCmd)
	cnfCmd.Flags().Bool("canonical", false, "Print the truth table canonical form")
	dnfCmd.Flags().Bool("canonical", false, "Print the truth table canonical form")
}
