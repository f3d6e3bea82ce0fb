/*
Package parser creates expression trees from sequences of tokens.

The grammar for arithmetic expressions is

	T     ➞ F AddOp T  |  F
	F     ➞ Lit MulOp F  |  Lit
	Lit   ➞ NUM  |  LPAREN T RPAREN
	AddOp ➞ PLUS  |  MINUS
	MulOp ➞ TIMES  |  DIV

Parse implements it as a recursive descent parser, building an ast.Expr for
every production. Please note that the grammar is right-recursive, and
operators of equal precedence therefore group to the right:

	1 - 2 - 3  ➞  (- 1 (- 2 3))  =  2

This is intended behaviour and keeps trees identical to the derivation of the
grammar. Clients wanting left-associativity will have to use parentheses.

The same grammar is available as a gorgo LR grammar (see Grammar). Recognize
runs an Earley parser on it, which is useful to cross-check the descent parser.

Whitespace tokens are expected to be removed before parsing
(see lexer.Strip).
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/arith/ast"
	"github.com/npillmayer/arith/lexer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// endOfInput is the expectation after a complete top-level expression.
const endOfInput = "end of input"

// ParseError is returned if a sequence of tokens does not conform to the
// grammar. Found is nil if the input ended prematurely.
type ParseError struct {
	Expected string       // description of what the parser expected
	Found    *lexer.Token // the offending token, or nil at end of input
}

func (e *ParseError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	}
	if e.Expected == endOfInput {
		return fmt.Sprintf("expected end of input, found token %s %q at %d",
			e.Found.Kind, e.Found.Lexeme, e.Found.Pos)
	}
	return fmt.Sprintf("expected %s, found %s %q at %d",
		e.Expected, e.Found.Kind, e.Found.Lexeme, e.Found.Pos)
}

// Parse builds an expression tree from a sequence of tokens. The whole
// sequence has to be consumed by a single top-level expression.
//
// The first token not matching the grammar will result in a *ParseError.
// There is no error recovery and no partial tree is returned.
func Parse(tokens []lexer.Token) (*ast.Expr, error) {
	p := &descent{tokens: tokens}
	e, err := p.term()
	if err != nil {
		T().Errorf("parse error: %v", err)
		return nil, err
	}
	if p.pos < len(p.tokens) {
		err = p.unexpected(endOfInput)
		T().Errorf("parse error: %v", err)
		return nil, err
	}
	T().Debugf("parsed %s", e)
	return e, nil
}

// descent holds the cursor into the token sequence. It is private to a single
// call of Parse.
type descent struct {
	tokens []lexer.Token
	pos    int
}

func (p *descent) peek(kinds ...lexer.TokenKind) bool {
	if p.pos >= len(p.tokens) {
		return false
	}
	for _, k := range kinds {
		if p.tokens[p.pos].Kind == k {
			return true
		}
	}
	return false
}

func (p *descent) unexpected(expected string) *ParseError {
	if p.pos >= len(p.tokens) {
		return &ParseError{Expected: expected}
	}
	tok := p.tokens[p.pos]
	return &ParseError{Expected: expected, Found: &tok}
}

// expect consumes a token of one of the given kinds. expected describes the
// kinds for error messages.
func (p *descent) expect(expected string, kinds ...lexer.TokenKind) (lexer.Token, error) {
	if !p.peek(kinds...) {
		return lexer.Token{}, p.unexpected(expected)
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

// T ➞ F AddOp T  |  F
func (p *descent) term() (*ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	if !p.peek(lexer.PLUS, lexer.MINUS) {
		return left, nil
	}
	op, err := p.expect("PLUS or MINUS", lexer.PLUS, lexer.MINUS)
	if err != nil {
		return nil, err
	}
	right, err := p.term()
	if err != nil {
		return nil, err
	}
	if op.Kind == lexer.PLUS {
		return ast.Add(left, right), nil
	}
	return ast.Sub(left, right), nil
}

// F ➞ Lit MulOp F  |  Lit
func (p *descent) factor() (*ast.Expr, error) {
	left, err := p.literal()
	if err != nil {
		return nil, err
	}
	if !p.peek(lexer.TIMES, lexer.DIV) {
		return left, nil
	}
	op, err := p.expect("TIMES or DIV", lexer.TIMES, lexer.DIV)
	if err != nil {
		return nil, err
	}
	right, err := p.factor()
	if err != nil {
		return nil, err
	}
	if op.Kind == lexer.TIMES {
		return ast.Mul(left, right), nil
	}
	return ast.Div(left, right), nil
}

// Lit ➞ NUM  |  LPAREN T RPAREN
func (p *descent) literal() (*ast.Expr, error) {
	tok, err := p.expect("NUM or LPAREN", lexer.NUM, lexer.LPAREN)
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.NUM {
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &ParseError{Expected: "numeral", Found: &tok}
		}
		return ast.Number(v), nil
	}
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect("RPAREN", lexer.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}
