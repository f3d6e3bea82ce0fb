/*
Package lexer splits source text into tokens, using a set of automata.

Clients register an automaton for every kind of token. The lexer will run
all of them in parallel over the input and select the longest match. If two
automata accept a match of equal length, the one registered first wins.

	lx := lexer.New()
	lx.Add(lexer.NUM, numAutomaton)
	lx.Add(lexer.PLUS, plusAutomaton)
	…
	tokens, err := lx.Tokenize("1 + 2")

A Lexer may be used from multiple goroutines concurrently, as every call to
Tokenize runs on private copies of the automata.
*/
package lexer

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/arith"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// LexError is returned if no automaton is able to match any input at a
// position of the source text.
type LexError struct {
	Pos  int  // byte offset of the offending character
	Char rune // the offending character
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at position %d: unexpected character %q", e.Pos, e.Char)
}

type rule struct {
	kind TokenKind
	nfa  *arith.Automaton
}

// A Lexer holds an ordered list of automata, one for each kind of token.
// The order of registration is the priority to resolve matches of equal
// length.
type Lexer struct {
	rules  []rule
	scans  *scanPool
	sealed sync.Once
	inUse  bool // Tokenize() has been called; rules are frozen
	mutex  sync.Mutex
}

// New creates a lexer without any automata. Clients will have to Add
// automata before tokenizing.
func New() *Lexer {
	return &Lexer{}
}

// Add registers an automaton for a kind of token.
//
// Add panics if it is called after tokenizing has started, as automata must
// not change once the lexer started to use copies of them.
func (lx *Lexer) Add(kind TokenKind, a *arith.Automaton) {
	lx.mutex.Lock()
	defer lx.mutex.Unlock()
	if lx.inUse {
		panic("lexer.Add: lexer already in use; cannot add automata")
	}
	lx.rules = append(lx.rules, rule{kind: kind, nfa: a})
}

// Kinds returns the kinds of tokens in order of registration.
func (lx *Lexer) Kinds() []TokenKind {
	lx.mutex.Lock()
	defer lx.mutex.Unlock()
	kinds := make([]TokenKind, len(lx.rules))
	for i, r := range lx.rules {
		kinds[i] = r.kind
	}
	return kinds
}

// Tokenize splits source into a sequence of tokens, including whitespace
// tokens (if an automaton has been registered for them).
//
// Tokenizing repeatedly selects the longest prefix of the remaining input
// accepted by any of the automata. Every automaton is reset, then runes are
// fed to all of them as long as at least one automaton has a transition for
// the next rune. Whenever an automaton accepts, the match is remembered if it
// is longer than any match seen before.
//
// If no automaton accepts a non-empty prefix, Tokenize returns a *LexError
// for the position. Tokenize is deterministic: identical input always results
// in identical tokens.
func (lx *Lexer) Tokenize(source string) ([]Token, error) {
	lx.seal()
	sc, err := lx.scans.borrow()
	if err != nil {
		return nil, err
	}
	defer lx.scans.release(sc)
	var tokens []Token
	pos := 0
	for pos < len(source) {
		end, kind := sc.longestMatch(source, pos)
		if end <= pos {
			r, _ := utf8.DecodeRuneInString(source[pos:])
			T().P("pos", pos).Errorf("no token matches input %q", r)
			return nil, &LexError{Pos: pos, Char: r}
		}
		tok := Token{Kind: kind, Lexeme: source[pos:end], Pos: pos}
		T().P("pos", pos).Debugf("token %s", tok)
		tokens = append(tokens, tok)
		pos = end
	}
	return tokens, nil
}

// seal freezes the rules on first use and creates a pool of scanners for
// them.
func (lx *Lexer) seal() {
	lx.sealed.Do(func() {
		lx.mutex.Lock()
		defer lx.mutex.Unlock()
		lx.inUse = true
		lx.scans = newScanPool(lx.rules)
		T().Debugf("lexer sealed with %d automata", len(lx.rules))
	})
}

// --- Scanning ---------------------------------------------------------

// scan holds private clones of the lexer's automata, in order of
// registration.
type scan struct {
	kinds []TokenKind
	nfas  []*arith.Automaton
}

func newScan(rules []rule) *scan {
	sc := &scan{
		kinds: make([]TokenKind, len(rules)),
		nfas:  make([]*arith.Automaton, len(rules)),
	}
	for i, r := range rules {
		sc.kinds[i] = r.kind
		sc.nfas[i] = r.nfa.Clone()
	}
	return sc
}

// longestMatch runs all automata from position start. It returns the end
// position and kind of the longest match. If nothing matched, end is -1.
// A match of length 0 is returned as end == start.
func (sc *scan) longestMatch(source string, start int) (int, TokenKind) {
	matchEnd, matchKind := -1, Invalid
	for _, a := range sc.nfas {
		a.Reset()
	}
	cursor := start
	for {
		for i, a := range sc.nfas { // earliest registered wins on equal length
			if a.Accepts() && cursor > matchEnd {
				matchEnd, matchKind = cursor, sc.kinds[i]
			}
		}
		if cursor >= len(source) {
			break
		}
		r, size := utf8.DecodeRuneInString(source[cursor:])
		if !sc.anyTransition(r) {
			break
		}
		for _, a := range sc.nfas {
			a.Apply(r)
		}
		cursor += size
	}
	return matchEnd, matchKind
}

func (sc *scan) anyTransition(r rune) bool {
	for _, a := range sc.nfas {
		if a.HasTransitions(r) {
			return true
		}
	}
	return false
}

// Scans are short-lived objects, needed once for every call to Tokenize.
// To avoid cloning all automata for every call we will pool them.
type scanPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

func newScanPool(rules []rule) *scanPool {
	sp := &scanPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newScan(rules), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	sp.opool = pool.NewObjectPool(sp.ctx, factory, config)
	return sp
}

func (sp *scanPool) borrow() (*scan, error) {
	o, err := sp.opool.BorrowObject(sp.ctx)
	if err != nil {
		return nil, err
	}
	return o.(*scan), nil
}

func (sp *scanPool) release(sc *scan) {
	if err := sp.opool.ReturnObject(sp.ctx, sc); err != nil {
		T().Errorf("lexer: cannot return scanner to pool: %v", err)
	}
}
