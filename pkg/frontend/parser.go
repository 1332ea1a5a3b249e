/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package frontend

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/repr"
	"github.com/dr0pdb/symtree/pkg/common"
	"github.com/dr0pdb/symtree/pkg/symbolic"
	log "github.com/sirupsen/logrus"
)

// itemTypeToOperator maps operator tokens to expression tree operators.
var itemTypeToOperator = map[itemType]symbolic.Operator{
	itemPlus:     symbolic.OperatorAdd,
	itemMinus:    symbolic.OperatorSub,
	itemAsterisk: symbolic.OperatorMul,
	itemSlash:    symbolic.OperatorDiv,
}

// Parser is responsible for parsing the expression string to an expression tree
type Parser struct {
	name  string // only for error reporting and debugging
	lexer *lexer // the lexical scanner

	items []*item // buffered tokens from the lexer for peeking
	pos   int     // next item position in the items buffer

	maxDepth int  // maximum allowed nesting of parenthesized expressions
	depth    int  // current nesting while parsing
	trace    bool // log every parsed node

	err error // any error encountered during the parsing process
}

//
// Public functions
//

// Parse the input to an expression tree.
// The whole input has to form a single expression, trailing tokens are an error.
// On error the remaining tokens are drained so that the lexing goroutine exits.
func (p *Parser) Parse() (ex symbolic.Expression, err error) {
	ex, _ = p.parseExpression()
	_, err = p.nextTokenExpect(itemEOF)
	if err != nil {
		p.lexer.drain()
		return nil, err
	}

	return ex, nil
}

// NewParser creates a parser for the given input
func NewParser(name, input string) *Parser {
	return NewParserWithConfig(name, input, common.NewDefaultConfig())
}

// NewParserWithConfig creates a parser for the given input with the given config
func NewParserWithConfig(name, input string, conf *common.Config) *Parser {
	if conf == nil {
		conf = common.NewDefaultConfig()
	}

	maxDepth := conf.MaxParseDepth
	if maxDepth <= 0 {
		maxDepth = common.DefaultMaxParseDepth
	}

	lex, _ := newLexer(name, input)

	return &Parser{
		name:     name,
		lexer:    lex,
		items:    make([]*item, 0),
		maxDepth: maxDepth,
		trace:    conf.LogParseTrace,
	}
}

//
// Internal functions
//

// parseExpression parses a single expression.
// starting point of the core parsing process.
func (p *Parser) parseExpression() (symbolic.Expression, error) {
	if p.err != nil {
		return nil, p.err
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.err = common.NewParseError(fmt.Sprintf("symtree::parser::parseExpression: expression nesting exceeds the maximum depth %d", p.maxDepth))
		return nil, p.err
	}

	it := p.nextToken()

	switch it.typ {
	case itemLeftParen:
		left, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		op := p.nextTokenIf(func(i *item) bool {
			_, ok := itemTypeToOperator[i.typ]
			return ok
		})
		if op == nil {
			found := p.nextToken()
			if found.typ == itemError {
				p.err = common.NewLexError(found.val)
			} else {
				p.err = common.NewParseError(fmt.Sprintf("symtree::parser::parseExpression: expected an operator, found token %v", found.typ))
			}
			return nil, p.err
		}

		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		_, err = p.nextTokenExpect(itemRightParen)
		if err != nil {
			return nil, err
		}

		ex := symbolic.NewBinaryOp(itemTypeToOperator[op.typ], left, right)
		if p.trace {
			log.WithFields(log.Fields{"name": p.name, "expression": repr.String(ex)}).Debug("symtree::parser::parseExpression; parsed binary operation")
		}

		return ex, nil

	case itemVariable:
		return symbolic.NewVariable(it.val), nil

	case itemNumber:
		val, err := strconv.ParseFloat(it.val, 64)
		if err != nil {
			p.err = common.NewParseError(fmt.Sprintf("symtree::parser::parseExpression: malformed numeric literal %q", it.val))
			return nil, p.err
		}

		return symbolic.NewNumber(val), nil

	case itemError:
		p.err = common.NewLexError(it.val)
		return nil, p.err

	case itemEOF:
		p.err = common.NewParseError("symtree::parser::parseExpression: unexpected end of expression")
		return nil, p.err

	default:
		p.err = common.NewParseError(fmt.Sprintf("symtree::parser::parseExpression: unexpected token %v", it))
		return nil, p.err
	}
}

// nextToken returns the next item from the lexer
// it consumes the item by incrementing pos
// NOTE: It ignores the whitespace token
func (p *Parser) nextToken() *item {
	if p.pos < len(p.items) {
		p.pos++
		return p.items[p.pos-1]
	}

	if p.pos > len(p.items) {
		panic("symtree::parser::nextToken: invalid value of pos. exceeded length of buffered entries")
	}

	var it item
	for {
		it = p.lexer.nextItem()
		if it.typ != itemWhitespace {
			p.items = append(p.items, &it)
			p.pos++
			break
		}
	}

	return &it
}

// peek peeks the next item from the lexer but doesn't consume it.
func (p *Parser) peek() *item {
	if p.err != nil {
		return nil
	}

	it := p.nextToken()
	p.pos-- // revert change to pos
	return it
}

// nextTokenIf returns the next token if it satisfies the given predicate
// if the given predicate is satisfied, the parser is advanced otherwise not
func (p *Parser) nextTokenIf(pred func(*item) bool) *item {
	if p.err != nil {
		return nil
	}

	it := p.peek()

	if pred(it) {
		p.nextToken() // advance pos
		return it
	}

	return nil
}

// nextTokenExpect returns the next token if it's of the expected type.
// it throws an error otherwise
func (p *Parser) nextTokenExpect(expected itemType) (*item, error) {
	if p.err != nil {
		return nil, p.err
	}

	it := p.nextToken()
	if it.typ == expected {
		return it, nil
	}

	if it.typ == itemError {
		p.err = common.NewLexError(it.val)
		return nil, p.err
	}

	p.err = common.NewParseError(fmt.Sprintf("symtree::parser::nextTokenExpect: Expected token %v, Found token %v", expected, it.typ))
	return nil, p.err
}
