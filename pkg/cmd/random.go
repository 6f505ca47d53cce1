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

var randomCmd = &cobra.Command{
	Use:   "random [flags]",
	Short: "generate random formulas.",
	Long: `Generate random formulas drawn over a given number of variables,
	up to a given connective depth.  This is useful for quickly producing
	inputs for the other commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		nvars := GetUint(cmd, "vars")
		depth := GetUint(cmd, "depth")
		number := GetUint(cmd, "number")
		//
		if nvars == 0 {
			fmt.Println("at least one variable required")
			os.Exit(1)
		}
		//
		for i := uint(0); i < number; i++ {
			fmt.Println(prop.Random(nvars, depth).String())
		}
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().Uint("vars", 3, "Set the number of distinct variables")
	randomCmd.Flags().Uint("depth", 4, "Set the maximum connective depth")
	randomCmd.Flags().UintP("number", "n", 1, "Set the number of formulas to generate")
}
