package parser

import (
	"sync"

	"github.com/npillmayer/arith/lexer"
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// --- Initialization --------------------------------------------------------

var globalGrammar *lr.LRAnalysis

var initGrammar sync.Once

// Grammar returns the grammar for arithmetic expressions, analyzed for
// LR parsing. It is created once and may be shared between goroutines.
func Grammar() *lr.LRAnalysis {
	initGrammar.Do(func() {
		globalGrammar = newArithGrammar()
		if T().GetTraceLevel() >= tracing.LevelDebug {
			globalGrammar.Grammar().Dump()
		}
	})
	return globalGrammar
}

func newArithGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("Arith")
	b.LHS("T").N("F").N("AddOp").N("T").End()
	b.LHS("T").N("F").End()
	b.LHS("F").N("Lit").N("MulOp").N("F").End()
	b.LHS("F").N("Lit").End()
	b.LHS("Lit").T(tok(lexer.NUM)).End()
	b.LHS("Lit").T(tok(lexer.LPAREN)).N("T").T(tok(lexer.RPAREN)).End()
	b.LHS("AddOp").T(tok(lexer.PLUS)).End()
	b.LHS("AddOp").T(tok(lexer.MINUS)).End()
	b.LHS("MulOp").T(tok(lexer.TIMES)).End()
	b.LHS("MulOp").T(tok(lexer.DIV)).End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func tok(k lexer.TokenKind) (string, int) {
	return k.String(), int(k)
}

// Recognize runs an Earley parser for the grammar over a sequence of tokens and
// reports if the tokens form a valid expression. It does not build a tree.
//
// Recognize is independent from Parse and accepts exactly the same token
// sequences. Whitespace tokens are not part of the grammar and have to be
// stripped beforehand.
func Recognize(tokens []lexer.Token) (bool, error) {
	parser := earley.NewParser(Grammar())
	if parser == nil {
		panic("could not create Earley parser for arithmetic grammar")
	}
	accept, err := parser.Parse(newTokenStream(tokens), nil)
	T().P("accept", accept).Debugf("Earley recognizer done for %d tokens", len(tokens))
	return accept, err
}

// --- Token stream ----------------------------------------------------------

// tokenStream implements the scanner.Tokenizer interface for an already
// tokenized input.
type tokenStream struct {
	tokens []lexer.Token
	next   int
	end    uint64 // byte position after the last token
}

func newTokenStream(tokens []lexer.Token) *tokenStream {
	ts := &tokenStream{tokens: tokens}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		ts.end = uint64(last.Pos + len(last.Lexeme))
	}
	return ts
}

// NextToken returns the next token of the input, or scanner.EOF.
func (ts *tokenStream) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if ts.next >= len(ts.tokens) {
		return scanner.EOF, "", ts.end, 0
	}
	t := ts.tokens[ts.next]
	ts.next++
	return int(t.Kind), t.Lexeme, uint64(t.Pos), uint64(len(t.Lexeme))
}

// SetErrorHandler is part of interface scanner.Tokenizer. Tokens are known to
// be valid, so errors never occur.
func (ts *tokenStream) SetErrorHandler(h func(error)) {}
