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
package prop

import (
	"slices"

	"github.com/consensys/go-props/pkg/util/source"
	"github.com/consensys/go-props/pkg/util/source/lex"
)

// Parse a given input string into a formula.  Connectives of the same kind
// associate to the left, hence "p AND q AND r" parses as "(p AND q) AND r".
// Distinct connectives never mix without braces, negated formulae are always
// braced (i.e. "NOT(p)" rather than "NOT p") and implication does not chain.
func Parse(input string) (Formula, error) {
	formula, err := ParseSourceFile(source.NewSourceFile("expr", []byte(input)))
	// Avoid returning a typed nil
	if err != nil {
		return nil, err
	}
	//
	return formula, nil
}

// ParseSourceFile parses the contents of a given source file into a formula,
// retaining enough information to report errors against the original text.
func ParseSourceFile(srcfile *source.File) (Formula, *source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	tokens := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		return nil, srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Distinguish connectives from variables
	classify(srcfile, tokens)
	//
	p := &parser{srcfile, tokens, 0}
	// Parse formula
	formula, err := p.parseFormula()
	// Check all parsed
	if err == nil && !p.Done() {
		return nil, p.syntaxError(p.lookahead(), "unknown token")
	}
	//
	return formula, err
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// IDENTIFIER signals a variable name
const IDENTIFIER uint = 4

// NOT represents logical negation
const NOT uint = 5

// AND represents logical conjunction
const AND uint = 6

// OR represents logical disjunction
const OR uint = 7

// IMPLIES represents logical implication
const IMPLIES uint = 8

// IFF represents logical biconditional
const IFF uint = 9

// CONNECTIVES captures the set of binary logical connectives.
var CONNECTIVES = []uint{AND, OR, IMPLIES, IFF}

// Keywords of the language, none of which are available as variable names.
// Observe that only exact (i.e. uppercase) matches count, hence "and" remains
// a perfectly good variable name.
var keywords = map[string]uint{
	"NOT":     NOT,
	"AND":     AND,
	"OR":      OR,
	"IMPLIES": IMPLIES,
	"IFF":     IFF,
}

// Determine whether a given name is a keyword of the language.
func isKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\n'),
	lex.Unit('\r')))

var identifierStart lex.Scanner = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule = []lex.LexRule{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof(), END_OF),
}

// Classify retags those identifiers which are actually keywords, as the lexer
// makes no distinction between them.
func classify(srcfile *source.File, tokens []lex.Token) {
	for i, token := range tokens {
		if token.Kind == IDENTIFIER {
			if kind, ok := keywords[srcfile.Text(token.Span)]; ok {
				tokens[i].Kind = kind
			}
		}
	}
}

// parser walks a token stream produced from a given source file, building up
// the corresponding formula.
type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *parser) parseFormula() (Formula, *source.SyntaxError) {
	first, err := p.parseUnit()
	//
	if err != nil {
		return nil, err
	}
	// initialise lookahead
	kind := p.lookahead().Kind
	// match all units
	terms := []Formula{first}
	//
	for !p.follows(END_OF, RBRACE) {
		// Sanity check
		if !p.follows(CONNECTIVES...) {
			return nil, p.syntaxError(p.lookahead(), "expected logical connective")
		} else if !p.follows(kind) {
			return nil, p.syntaxError(p.lookahead(), "braces required")
		} else if len(terms) > 1 && p.follows(IMPLIES, IFF) {
			// Implication and biconditional do not chain
			return nil, p.syntaxError(p.lookahead(), "braces required")
		}
		// Consume connective
		p.expect(kind)
		//
		term, err := p.parseUnit()
		//
		if err != nil {
			return nil, err
		}
		// Accumulate arguments
		terms = append(terms, term)
	}
	//
	switch {
	case len(terms) == 1:
		return first, nil
	case kind == AND:
		return conjoin(terms), nil
	case kind == OR:
		return disjoin(terms), nil
	case kind == IMPLIES:
		return Implies(terms[0], terms[1]), nil
	case kind == IFF:
		return Iff(terms[0], terms[1]), nil
	}
	//
	panic("unreachable")
}

func (p *parser) parseUnit() (Formula, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketed()
	case NOT:
		return p.parseNegation()
	case IDENTIFIER:
		return p.parseVariable()
	}
	//
	return nil, p.syntaxError(token, "formula expected")
}

func (p *parser) parseBracketed() (Formula, *source.SyntaxError) {
	p.expect(LBRACE)
	//
	formula, err := p.parseFormula()
	//
	if err == nil && !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	return formula, err
}

func (p *parser) parseNegation() (Formula, *source.SyntaxError) {
	p.expect(NOT)
	// Negated formulae are always braced
	if !p.follows(LBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected '('")
	}
	//
	formula, err := p.parseBracketed()
	//
	if err != nil {
		return nil, err
	}
	//
	return Not(formula), nil
}

func (p *parser) parseVariable() (Formula, *source.SyntaxError) {
	id := p.expect(IDENTIFIER)
	//
	return Var(p.string(id)), nil
}

// Get the text representing the given token as a string.
func (p *parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
