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
	"github.com/consensys/go-props/pkg/util/termio"
	"github.com/fatih/color"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] formula",
	Short: "print the truth table of a formula.",
	Long: `Print the truth table of a given formula, with one row per truth
	assignment of its variables.  Rows are enumerated with the first
	variable toggling fastest.  With --vars, the table instead ranges over
	a given comma-separated list of variables, which must cover those of
	the formula.`,
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
		vars := GetString(cmd, "vars")
		// Parse command-line formula
		formula := parseFormula(args[0])
		// Tabulate formula
		tbl := tabulate(formula, vars)
		// Print table
		printTruthTable(tbl, formula)
		// Print verdict
		switch {
		case tbl.Count() == tbl.Rows():
			fmt.Println(color.GreenString("tautology"))
		case tbl.Count() == 0:
			fmt.Println(color.RedString("unsatisfiable"))
		default:
			fmt.Printf("%d / %d rows true\n", tbl.Count(), tbl.Rows())
		}
	},
}

// Tabulate a formula, either over its own variables or over a given
// comma-separated list.
func tabulate(formula prop.Formula, vars string) *prop.TruthTable {
	if vars == "" {
		return prop.Tabulate(formula)
	}
	// Tabulate over the given variables
	tbl, err := prop.TabulateOver(strings.Split(vars, ","), formula)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return tbl
}

// Print the truth table of a formula, with one column per variable and a
// final column holding the verdict for each row.
func printTruthTable(tbl *prop.TruthTable, formula prop.Formula) {
	var (
		vars   = tbl.Vars()
		ncols  = uint(len(vars) + 1)
		header = append(slices.Clone(vars), formula.String())
	)
	//
	printer := termio.NewTablePrinter(ncols, tbl.Rows()+1)
	// Configure header row
	printer.SetRow(0, header...)
	//
	for col := uint(0); col < ncols; col++ {
		printer.SetEscape(col, 0, termio.BoldAnsiEscape())
	}
	// Configure body rows
	for row := uint(0); row < tbl.Rows(); row++ {
		env, truth := tbl.Row(row)
		// Render variable cells
		cells := lo.Map(vars, func(name string, _ int) string {
			return lo.Ternary(env[name].Truth(), "T", "F")
		})
		//
		printer.SetRow(row+1, append(cells, lo.Ternary(truth, "T", "F"))...)
		// Colour verdict cell
		if truth {
			printer.SetEscape(ncols-1, row+1, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
		} else {
			printer.SetEscape(ncols-1, row+1, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
		}
	}
	// Configure layout for the terminal at hand
	if !term.IsTerminal(0) {
		printer.AnsiEscapes(false)
	} else if width, _, err := term.GetSize(0); err == nil {
		printer.SetMaxWidths(max(uint(width)/ncols, 3))
	}
	//
	printer.Print()
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().String("vars", "", "Tabulate over a given comma-separated variable list")
}
