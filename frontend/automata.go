package frontend

import "github.com/npillmayer/arith"

const digits = "0123456789"

// NumberAutomaton creates an automaton for numerals.
//
// In strict mode the automaton recognizes
//
//	[0-9]* '.' [0-9]+
//
// i.e. a numeral must have a fractional part. Otherwise integers are accepted
// as well:
//
//	[0-9]* '.' [0-9]+  |  [0-9]+
//
// The second alternative is added non-deterministically: a digit read in
// the start state moves to the integer-part loop of the first alternative
// and to an accepting loop of its own.
func NumberAutomaton(strict bool) *arith.Automaton {
	a := arith.NewAutomaton()
	a.AddState(0, true, false)  // start, integer part
	a.AddState(1, false, false) // seen '.'
	a.AddState(2, false, true)  // fractional digits
	for _, d := range digits {
		a.AddTransition(0, d, 0)
		a.AddTransition(1, d, 2)
		a.AddTransition(2, d, 2)
	}
	a.AddTransition(0, '.', 1)
	if strict {
		return a
	}
	a.AddState(3, false, true) // integer
	for _, d := range digits {
		a.AddTransition(0, d, 3)
		a.AddTransition(3, d, 3)
	}
	return a
}

// SymbolAutomaton creates an automaton accepting exactly the single rune r.
func SymbolAutomaton(r rune) *arith.Automaton {
	a := arith.NewAutomaton()
	a.AddState(0, true, false)
	a.AddState(1, false, true)
	a.AddTransition(0, r, 1)
	return a
}

// WhitespaceAutomaton creates an automaton for ( ' ' | '\n' | '\r' | '\t' )*.
// It accepts the empty string.
func WhitespaceAutomaton() *arith.Automaton {
	a := arith.NewAutomaton()
	a.AddState(0, true, true)
	for _, ws := range " \n\r\t" {
		a.AddTransition(0, ws, 0)
	}
	return a
}
