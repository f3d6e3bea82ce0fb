package ast

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// EvaluationError is returned if an operation cannot produce a finite result,
// i.e. for a division by zero or for an overflow.
type EvaluationError struct {
	Op          Op      // the failing operation
	Left, Right float64 // its operands
	Reason      string  // what went wrong
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %s %s %s: %s",
		formatNumber(e.Left), e.Op, formatNumber(e.Right), e.Reason)
}

// Reasons for evaluation errors.
const (
	DivisionByZero = "division by zero"
	Overflow       = "result out of range"
)

// evaluation step: a node and a flag telling if its operands are already on
// the value stack.
type step struct {
	node     *Expr
	expanded bool
}

// Eval computes the value of an expression tree, evaluating the left operand
// of every operation before the right one.
//
// Division by zero is an *EvaluationError. So is an operation with finite
// operands resulting in an infinite value. Evaluation stops at the first error
// in evaluation order. Eval never returns an infinite value or NaN for trees
// made from finite numbers.
func Eval(e *Expr) (float64, error) {
	if e == nil {
		return 0, errors.New("ast: cannot evaluate nil expression")
	}
	work, values := arraystack.New(), arraystack.New()
	work.Push(step{node: e})
	for !work.Empty() {
		top, _ := work.Pop()
		s := top.(step)
		if s.node.op == OpNumber {
			values.Push(s.node.value)
			continue
		}
		if !s.expanded { // operands first, left on top
			work.Push(step{node: s.node, expanded: true})
			work.Push(step{node: s.node.right})
			work.Push(step{node: s.node.left})
			continue
		}
		r, _ := values.Pop()
		l, _ := values.Pop()
		v, err := apply(s.node.op, l.(float64), r.(float64))
		if err != nil {
			T().Errorf("%v", err)
			return 0, err
		}
		values.Push(v)
	}
	result, _ := values.Pop()
	T().P("expr", e).Debugf("= %s", formatNumber(result.(float64)))
	return result.(float64), nil
}

func apply(op Op, l, r float64) (float64, error) {
	var v float64
	switch op {
	case OpAdd:
		v = l + r
	case OpSub:
		v = l - r
	case OpMul:
		v = l * r
	case OpDiv:
		if r == 0 {
			return 0, &EvaluationError{Op: op, Left: l, Right: r, Reason: DivisionByZero}
		}
		v = l / r
	default:
		panic(fmt.Sprintf("ast: unknown operation %s", op))
	}
	if math.IsInf(v, 0) && !math.IsInf(l, 0) && !math.IsInf(r, 0) {
		return 0, &EvaluationError{Op: op, Left: l, Right: r, Reason: Overflow}
	}
	T().Debugf("%s %s %s = %s", formatNumber(l), op, formatNumber(r), formatNumber(v))
	return v, nil
}
