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

// Package viz renders formulae as Graphviz DOT trees, suitable for piping
// into the dot tool.
package viz

import (
	"fmt"
	"strings"

	"github.com/consensys/go-props/pkg/prop"
)

// Dot renders the syntax tree of a formula in Graphviz DOT format, with one
// node per connective or variable occurrence.
func Dot(formula prop.Formula) string {
	var p printer
	//
	return p.print(formula)
}

// DotUnder renders the syntax tree of a formula in Graphviz DOT format,
// colouring every node by its truth under a given assignment.  Subformulae
// which hold are green, whilst the rest are red.  This fails if the
// assignment does not cover the formula.
func DotUnder(formula prop.Formula, env prop.Assignment) (string, error) {
	// Check the assignment covers the formula
	if _, err := formula.Eval(env); err != nil {
		return "", err
	}
	//
	p := printer{env: env}
	//
	return p.print(formula), nil
}

// printer accumulates the DOT text of a formula, numbering nodes in the
// order they are visited.
type printer struct {
	builder strings.Builder
	// Assignment to colour by (nil for no colouring).
	env prop.Assignment
	// Number of nodes emitted thus far.
	count uint
}

func (p *printer) print(formula prop.Formula) string {
	p.builder.WriteString("digraph formula {\n")
	p.builder.WriteString("  node [shape=box];\n")
	p.node(formula)
	p.builder.WriteString("}\n")
	//
	return p.builder.String()
}

// Emit the node for a given formula followed by its subtree, returning the
// identifier allocated to it.
func (p *printer) node(formula prop.Formula) uint {
	id := p.count
	p.count++
	//
	label, children := describe(formula)
	attrs := []string{fmt.Sprintf("label=%q", label)}
	//
	if len(children) == 0 {
		attrs = append(attrs, "shape=ellipse")
	}
	//
	if p.env != nil {
		if val, _ := formula.Eval(p.env); val {
			attrs = append(attrs, "style=filled", "fillcolor=palegreen")
		} else {
			attrs = append(attrs, "style=filled", "fillcolor=lightcoral")
		}
	}
	//
	fmt.Fprintf(&p.builder, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
	//
	for _, child := range children {
		cid := p.node(child)
		fmt.Fprintf(&p.builder, "  n%d -> n%d;\n", id, cid)
	}
	//
	return id
}

// Determine the label of a formula's root, along with its children.
func describe(formula prop.Formula) (string, []prop.Formula) {
	switch f := formula.(type) {
	case *prop.Variable:
		return f.Name, nil
	case *prop.Negation:
		return "NOT", []prop.Formula{f.Arg}
	case *prop.Conjunct:
		return "AND", []prop.Formula{f.Lhs, f.Rhs}
	case *prop.Disjunct:
		return "OR", []prop.Formula{f.Lhs, f.Rhs}
	case *prop.Implication:
		return "IMPLIES", []prop.Formula{f.Hypothesis, f.Conclusion}
	case *prop.Biconditional:
		return "IFF", []prop.Formula{f.Lhs, f.Rhs}
	}
	//
	panic("unreachable")
}
