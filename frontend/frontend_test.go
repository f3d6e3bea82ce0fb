package frontend

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/arith/ast"
	"github.com/npillmayer/arith/lexer"
	"github.com/npillmayer/arith/parser"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestNumberAutomaton(t *testing.T) {
	inputs := []struct {
		s               string
		strict, lenient bool
	}{
		{"1.5", true, true},
		{".5", true, true},
		{"12.25", true, true},
		{"12", false, true},
		{"1.", false, false},
		{".", false, false},
		{"", false, false},
		{"1.2.3", false, false},
	}
	for _, in := range inputs {
		for _, strict := range []bool{true, false} {
			a := NumberAutomaton(strict)
			a.Reset()
			for _, r := range in.s {
				a.Apply(r)
			}
			expected := in.lenient
			if strict {
				expected = in.strict
			}
			if a.Accepts() != expected {
				t.Errorf("%q (strict=%v): expected accept=%v", in.s, strict, expected)
			}
		}
	}
}

func TestWhitespaceAutomaton(t *testing.T) {
	a := WhitespaceAutomaton()
	a.Reset()
	if !a.Accepts() {
		t.Error("expected whitespace automaton to accept the empty string")
	}
	for _, r := range " \t\r\n " {
		a.Apply(r)
	}
	if !a.Accepts() {
		t.Error("expected whitespace automaton to accept mixed whitespace")
	}
}

func TestTokenize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fe := New()
	tokens, err := fe.Tokenize("1+23")
	if err != nil {
		t.Fatal(err)
	}
	expected := []lexer.Token{
		{Kind: lexer.NUM, Lexeme: "1", Pos: 0},
		{Kind: lexer.PLUS, Lexeme: "+", Pos: 1},
		{Kind: lexer.NUM, Lexeme: "23", Pos: 2},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, tokens)
	}
	for i := range tokens {
		if tokens[i] != expected[i] {
			t.Errorf("token %d: expected %v, have %v", i, expected[i], tokens[i])
		}
	}
	tokens, _ = fe.Tokenize("  ( 1.5\t*\n.5 ) ")
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Lexeme)
	}
	if sb.String() != "(1.5*.5)" {
		t.Errorf("expected whitespace to be stripped, have %q", sb.String())
	}
}

func TestCompile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	gtrace.EquationsTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fe := New()
	cases := map[string]float64{
		"1+23":        24,
		"1-2-3":       2,
		"8/4/2":       4,
		"(1+2)*3":     9,
		"1+2*3":       7,
		"1.5 + .5":    2,
		" ( 10 ) ":    10,
		"2*(3-1)/0.5": 8,
	}
	for input, expected := range cases {
		v, err := fe.Compile(input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
		} else if v != expected {
			t.Errorf("%q: expected %g, have %g", input, expected, v)
		}
	}
}

func TestRightAssociativity(t *testing.T) {
	fe := New()
	e, err := fe.Parse("1-2-3")
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(ast.Sub(ast.Number(1), ast.Sub(ast.Number(2), ast.Number(3)))) {
		t.Errorf("expected right-grouped tree, have %s", e)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	fe := New()
	inputs := []string{
		"1", "1-2-3", "8/4/2", "(1+2)*3", "1-(2-3)", "((1.5))/(2-.5)*4", "1 + 2 * 3 - 4",
	}
	for _, input := range inputs {
		e1, err := fe.Parse(input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
			continue
		}
		e2, err := fe.Parse(input)
		if err != nil {
			t.Errorf("%q: unexpected error on second parse %v", input, err)
			continue
		}
		if e1 == e2 || !e1.Equal(e2) {
			t.Errorf("%q: expected distinct but equal trees, have %s and %s", input, e1, e2)
		}
	}
}

func TestErrorsPropagate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	fe := New()
	var lexerr *lexer.LexError
	if _, err := fe.Compile("1+@2"); !errors.As(err, &lexerr) || lexerr.Pos != 2 {
		t.Errorf("expected LexError at 2, have %v", err)
	}
	for _, input := range []string{"1+", "1 2", "(1+2", ""} {
		var perr *parser.ParseError
		if _, err := fe.Compile(input); !errors.As(err, &perr) {
			t.Errorf("%q: expected ParseError, have %v", input, err)
		}
	}
	var everr *ast.EvaluationError
	if _, err := fe.Compile("1/0"); !errors.As(err, &everr) || everr.Reason != ast.DivisionByZero {
		t.Errorf("expected division by zero, have %v", err)
	}
	big := "1" + strings.Repeat("0", 200)
	if _, err := fe.Compile(big + "*" + big); !errors.As(err, &everr) || everr.Reason != ast.Overflow {
		t.Errorf("expected overflow, have %v", err)
	}
}

func TestStrictNumerals(t *testing.T) {
	fe := New(StrictNumerals(true))
	var lexerr *lexer.LexError
	if _, err := fe.Compile("1+2"); !errors.As(err, &lexerr) || lexerr.Pos != 0 {
		t.Errorf("expected LexError at 0 for integer in strict mode, have %v", err)
	}
	v, err := fe.Compile("1.0+.5")
	if err != nil || v != 1.5 {
		t.Errorf("expected 1.5, have %g (%v)", v, err)
	}
	if New(StrictNumerals(true), StrictNumerals(false)).hasMode(optionStrictNumerals) {
		t.Error("expected option to be switched off again")
	}
}

func TestCheck(t *testing.T) {
	fe := New()
	for input, expected := range map[string]bool{
		"(1+2)*3": true,
		"1 - .5":  true,
		"1+":      false,
		"(1+2":    false,
		"1 2":     false,
	} {
		ok, _ := fe.Check(input)
		if ok != expected {
			t.Errorf("%q: expected check=%v", input, expected)
		}
	}
	if _, err := fe.Check("1 # 2"); err == nil {
		t.Error("expected lexical error to be reported by Check")
	}
}

func TestConcurrentCompile(t *testing.T) {
	fe := New()
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := fe.Compile(fmt.Sprintf("%d * (1 + 1)", i))
			if err != nil {
				errs <- err
			} else if v != float64(2*i) {
				errs <- fmt.Errorf("expected %d, have %g", 2*i, v)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func ExampleFrontend_Compile() {
	fe := New()
	v, _ := fe.Compile("(1 + 2) * 3")
	fmt.Println(v)
	_, err := fe.Compile("1 / 0")
	fmt.Println(err)
	// Output:
	// 9
	// cannot evaluate 1 / 0: division by zero
}
