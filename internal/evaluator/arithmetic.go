package evaluator

import (
	"context"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// evalUnaryExpression implements unary `-`, `+`, and `d` (spec.md §4.3);
// `d` is a draw and is handled in dice.go.
func (e *Evaluator) evalUnaryExpression(ctx context.Context, node *ast.UnaryExpression, env *runtime.Environment) (value.Value, error) {
	if node.Operator == "d" {
		return e.evalUnaryDice(ctx, node, env)
	}

	operand, err := e.Eval(ctx, node.Operand, env)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case "-":
		v, err := builtins.Negate(operand)
		if err != nil {
			return nil, e.wrapBuiltinErr(node.Pos(), err)
		}
		return v, nil
	case "+":
		n, err := builtins.FlattenSum(operand)
		if err != nil {
			return nil, e.wrapBuiltinErr(node.Pos(), err)
		}
		return value.NewNumber(n), nil
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "unknown unary operator %q", node.Operator)
	}
}

// evalBinaryExpression dispatches every infix operator. Dice (`d`),
// filters (`kh kl rh rl`), and repeat (`^`) have evaluation rules that
// are not "evaluate both sides, then combine" (the left side of `^` is
// re-evaluated, not reused), so they are handled separately in dice.go
// before either operand is evaluated generically here.
func (e *Evaluator) evalBinaryExpression(ctx context.Context, node *ast.BinaryExpression, env *runtime.Environment) (value.Value, error) {
	switch node.Operator {
	case "^":
		return e.evalRepeat(ctx, node, env)
	case "d":
		return e.evalBinaryDice(ctx, node, env)
	case "kh", "kl", "rh", "rl":
		return e.evalFilter(ctx, node, env)
	}

	left, err := e.Eval(ctx, node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(ctx, node.Right, env)
	if err != nil {
		return nil, err
	}

	var result value.Value
	switch node.Operator {
	case "+":
		result, err = builtins.Add(left, right)
	case "-":
		result, err = builtins.Subtract(left, right)
	case "*":
		result, err = builtins.Multiply(left, right)
	case "/":
		result, err = builtins.Divide(left, right)
	case "%":
		result, err = builtins.Modulo(left, right)
	case "~":
		result, err = builtins.Join(left, right)
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "unknown binary operator %q", node.Operator)
	}
	if err != nil {
		return nil, e.wrapBuiltinErr(node.Pos(), err)
	}
	return result, nil
}
