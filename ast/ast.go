/*
Package ast holds expression trees for arithmetic expressions and evaluates
them.

An expression tree is a closed set of node variants: a node is either a number
or a binary operation of one of the four arithmetic operators. Nodes are
immutable once constructed, and every binary node exclusively owns its two
children.

	e := ast.Sub(ast.Number(1), ast.Sub(ast.Number(2), ast.Number(3)))
	fmt.Println(e)            // (- 1 (- 2 3))
	v, err := ast.Eval(e)     // 2, nil

Evaluation is done without recursion, using an explicit work stack. The depth
of a tree therefore is not limited by the stack size of a goroutine.
*/
package ast

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations-tracer.
func T() tracing.Trace {
	return gtrace.EquationsTracer
}

// Op is the tag of an expression node.
type Op int8

// Node variants.
const (
	OpNumber Op = iota // numeric literal
	OpAdd              // left + right
	OpSub              // left - right
	OpMul              // left * right
	OpDiv              // left / right
)

const opsymbols = "#+-*/"

func (op Op) String() string {
	if op < OpNumber || op > OpDiv {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	if op == OpNumber {
		return "number"
	}
	return opsymbols[op : op+1]
}

// Expr is a node of an expression tree. The zero value is the number 0.
type Expr struct {
	op          Op
	value       float64 // for numbers only
	left, right *Expr   // for operations only
}

// Number creates a leaf node for a numeric value.
func Number(v float64) *Expr {
	return &Expr{op: OpNumber, value: v}
}

// Binary creates an operation node. It panics if op is not one of the
// arithmetic operators or if a child is missing.
func Binary(op Op, left, right *Expr) *Expr {
	if op < OpAdd || op > OpDiv {
		panic("ast.Binary: not an arithmetic operator: " + op.String())
	}
	if left == nil || right == nil {
		panic("ast.Binary: operation needs two operands")
	}
	return &Expr{op: op, left: left, right: right}
}

// Add is a shortcut for Binary(OpAdd, l, r).
func Add(l, r *Expr) *Expr { return Binary(OpAdd, l, r) }

// Sub is a shortcut for Binary(OpSub, l, r).
func Sub(l, r *Expr) *Expr { return Binary(OpSub, l, r) }

// Mul is a shortcut for Binary(OpMul, l, r).
func Mul(l, r *Expr) *Expr { return Binary(OpMul, l, r) }

// Div is a shortcut for Binary(OpDiv, l, r).
func Div(l, r *Expr) *Expr { return Binary(OpDiv, l, r) }

// Op returns the variant tag of e.
func (e *Expr) Op() Op {
	return e.op
}

// Value returns the value of a number node. For operation nodes it returns 0.
func (e *Expr) Value() float64 {
	return e.value
}

// Left returns the left operand of an operation, or nil for numbers.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of an operation, or nil for numbers.
func (e *Expr) Right() *Expr {
	return e.right
}

// IsNumber is a predicate: is e a leaf?
func (e *Expr) IsNumber() bool {
	return e.op == OpNumber
}

// Equal compares two trees structurally. Numbers compare by value.
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.op != other.op {
		return false
	}
	if e.op == OpNumber {
		return e.value == other.value
	}
	return e.left.Equal(other.left) && e.right.Equal(other.right)
}

// String renders e as a prefix S-expression, e.g. "(* (+ 1 2) 3)".
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	if e.op == OpNumber {
		sb.WriteString(formatNumber(e.value))
		return
	}
	sb.WriteByte('(')
	sb.WriteString(e.op.String())
	sb.WriteByte(' ')
	e.left.write(sb)
	sb.WriteByte(' ')
	e.right.write(sb)
	sb.WriteByte(')')
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
