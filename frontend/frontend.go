/*
Package frontend puts together lexer, parser and evaluation of arithmetic
expressions.

A Frontend is configured once with automata for every kind of token and may
then compile any number of expressions:

	fe := frontend.New()
	v, err := fe.Compile("(1 + 2) * 3")     // 9, nil

Errors of every stage are handed back unchanged. Clients may use errors.As
to inspect a *lexer.LexError, *parser.ParseError or *ast.EvaluationError.

A Frontend is safe for concurrent use.
*/
package frontend

import (
	"github.com/npillmayer/arith/ast"
	"github.com/npillmayer/arith/lexer"
	"github.com/npillmayer/arith/parser"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Frontend compiles arithmetic expressions.
type Frontend struct {
	lx   *lexer.Lexer
	mode uint // options
}

// New creates a frontend. The lexer is set up with one automaton per token
// kind, in order NUM, PLUS, MINUS, TIMES, DIV, LPAREN, RPAREN, WHITE_SPACE.
func New(opts ...Option) *Frontend {
	fe := &Frontend{}
	for _, opt := range opts {
		opt(fe)
	}
	if fe.hasMode(optionDebug) {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
		gtrace.EquationsTracer.SetTraceLevel(tracing.LevelDebug)
	}
	fe.lx = lexer.New()
	fe.lx.Add(lexer.NUM, NumberAutomaton(fe.hasMode(optionStrictNumerals)))
	fe.lx.Add(lexer.PLUS, SymbolAutomaton('+'))
	fe.lx.Add(lexer.MINUS, SymbolAutomaton('-'))
	fe.lx.Add(lexer.TIMES, SymbolAutomaton('*'))
	fe.lx.Add(lexer.DIV, SymbolAutomaton('/'))
	fe.lx.Add(lexer.LPAREN, SymbolAutomaton('('))
	fe.lx.Add(lexer.RPAREN, SymbolAutomaton(')'))
	fe.lx.Add(lexer.WHITE_SPACE, WhitespaceAutomaton())
	return fe
}

// Tokenize splits source into tokens, dropping whitespace.
func (fe *Frontend) Tokenize(source string) ([]lexer.Token, error) {
	tokens, err := fe.lx.Tokenize(source)
	if err != nil {
		return nil, err
	}
	tokens = lexer.Strip(tokens, lexer.WHITE_SPACE)
	if fe.hasMode(optionDebug) {
		for _, tok := range tokens {
			gtrace.SyntaxTracer.Debugf("%s", tok)
		}
	}
	return tokens, nil
}

// Parse tokenizes and parses source, returning its expression tree.
func (fe *Frontend) Parse(source string) (*ast.Expr, error) {
	tokens, err := fe.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Compile tokenizes, parses and evaluates source.
func (fe *Frontend) Compile(source string) (float64, error) {
	e, err := fe.Parse(source)
	if err != nil {
		return 0, err
	}
	return ast.Eval(e)
}

// Check tokenizes source and runs an Earley recognizer over the tokens,
// without building an expression tree. A lexical error is returned as an
// error, a syntax error results in false.
func (fe *Frontend) Check(source string) (bool, error) {
	tokens, err := fe.Tokenize(source)
	if err != nil {
		return false, err
	}
	return parser.Recognize(tokens)
}

// --- Options ---------------------------------------------------------------

// Option configures a frontend.
type Option func(fe *Frontend)

const (
	optionStrictNumerals uint = 1 << 1 // numerals need a fractional part
	optionDebug          uint = 1 << 2 // trace on debug level
)

// StrictNumerals sets an option to accept only numerals with a decimal point
// and at least one fractional digit, e.g. "1.0" or ".5", but not "1".
func StrictNumerals(b bool) Option {
	return func(fe *Frontend) {
		fe.setMode(optionStrictNumerals, b)
	}
}

// Debug sets an option to raise the core, syntax and equations tracers to
// level Debug and to trace every token.
func Debug(b bool) Option {
	return func(fe *Frontend) {
		fe.setMode(optionDebug, b)
	}
}

func (fe *Frontend) setMode(m uint, b bool) {
	if b {
		fe.mode |= m
	} else {
		fe.mode &^= m
	}
}

func (fe *Frontend) hasMode(m uint) bool {
	return fe.mode&m > 0
}
