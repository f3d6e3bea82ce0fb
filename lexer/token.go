package lexer

import (
	"fmt"
	"strconv"
)

// TokenKind is the kind of a token. The lexer itself treats kinds as opaque
// tags; their meaning is established by the automata registered for them.
type TokenKind int8

// Token kinds of the arithmetic language. The zero value is not a valid kind.
const (
	Invalid TokenKind = iota
	NUM
	PLUS
	MINUS
	TIMES
	DIV
	LPAREN
	RPAREN
	WHITE_SPACE
)

const kindname = "InvalidNUMPLUSMINUSTIMESDIVLPARENRPARENWHITE_SPACE"

var kindindex = [...]uint8{0, 7, 10, 14, 19, 24, 27, 33, 39, 50}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindindex)-1 {
		return "TokenKind(" + strconv.FormatInt(int64(k), 10) + ")"
	}
	return kindname[kindindex[k]:kindindex[k+1]]
}

// Token is a lexeme of the source text, tagged with its kind.
type Token struct {
	Kind   TokenKind // kind of token
	Lexeme string    // exact substring matched
	Pos    int       // byte offset of lexeme in the source
}

func (tok Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", tok.Kind, tok.Lexeme, tok.Pos)
}

// Strip returns the tokens without any token of one of the given kinds.
// The usual case is dropping whitespace before handing tokens to a parser:
//
//	tokens = lexer.Strip(tokens, lexer.WHITE_SPACE)
func Strip(tokens []Token, kinds ...TokenKind) []Token {
	stripped := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		drop := false
		for _, k := range kinds {
			if tok.Kind == k {
				drop = true
				break
			}
		}
		if !drop {
			stripped = append(stripped, tok)
		}
	}
	return stripped
}
