/*
Package arith is about the frontend of a tiny compiler for arithmetic expressions.

# Description

Source text like

	(1.5 + 2) * 3 / 4

is turned into a number in two classic steps. First a lexer splits the text
into tokens. Every kind of token is recognized by a nondeterministic finite
automaton (NFA), and all the automata are run in parallel over the input. The
longest match any automaton accepts wins, ties are resolved by registration
order. Second, a recursive descent parser consumes the tokens and builds an
expression tree, which finally is evaluated.

The automata are not compiled into a deterministic table. Instead, every
Automaton keeps a set of live states, which is replaced by the set of successor
states for each character applied. This keeps automata small and easy to
construct by hand, at the cost of some set arithmetic per character.

# BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

# Contents

Base package arith provides the Automaton type. The lexer lives in
sub-package lexer, the expression tree and its evaluation in sub-package ast,
and the parser in sub-package parser. Sub-package frontend wires everything
together and knows how to construct the automata for each kind of token:

	fe := frontend.New()
	result, err := fe.Compile("(1+2)*3")   // => 9.0

# Tracing

All packages trace to the global tracers of package
github.com/npillmayer/schuko/gtrace. Tracers are no-ops until an application
configures them.
*/
package arith

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
