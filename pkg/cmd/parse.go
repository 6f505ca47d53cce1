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
	"slices"
	"strings"

	"github.com/consensys/go-props/pkg/prop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] formula",
	Short: "parse a formula and print its canonical rendering.",
	Long: `Parse a given formula and print it back in canonical form.
	This is useful for checking how a formula was grouped, since the
	canonical rendering makes the association of connectives explicit.`,
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
		vars := GetFlag(cmd, "vars")
		// Parse command-line formula
		formula := parseFormula(args[0])
		//
		log.Debugf("parsed formula with %d connectives", prop.Connectives(formula))
		//
		fmt.Println(formula.String())
		// Print variables (if requested)
		if vars {
			names := formula.Vars().ToSlice()
			slices.Sort(names)
			fmt.Println(strings.Join(names, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("vars", false, "Also print the variables referred to")
}
