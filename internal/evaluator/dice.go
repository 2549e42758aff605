package evaluator

import (
	"context"
	"sort"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// evalUnaryDice implements "unary `d X`" (spec.md §4.3): draw one
// uniform result in [1, f] where f is X coerced to a positive integer.
func (e *Evaluator) evalUnaryDice(ctx context.Context, node *ast.UnaryExpression, env *runtime.Environment) (value.Value, error) {
	operand, err := e.Eval(ctx, node.Operand, env)
	if err != nil {
		return nil, err
	}
	faces, err := e.coercePositiveInt(node, operand, "die face count")
	if err != nil {
		return nil, err
	}
	if err := e.checkCancel(ctx, node.Pos()); err != nil {
		return nil, err
	}
	return value.NewNumberInt64(e.RNG.RollDie(faces)), nil
}

// evalBinaryDice implements "binary `N d M`": N independent draws in
// [1, M]. A zero or negative M, or a negative N, fails.
func (e *Evaluator) evalBinaryDice(ctx context.Context, node *ast.BinaryExpression, env *runtime.Environment) (value.Value, error) {
	leftVal, err := e.Eval(ctx, node.Left, env)
	if err != nil {
		return nil, err
	}
	count, err := e.coerceNonNegativeInt(node, leftVal, "dice count")
	if err != nil {
		return nil, err
	}
	rightVal, err := e.Eval(ctx, node.Right, env)
	if err != nil {
		return nil, err
	}
	faces, err := e.coercePositiveInt(node, rightVal, "die face count")
	if err != nil {
		return nil, err
	}

	out := make(value.List, count)
	for i := int64(0); i < count; i++ {
		if err := e.checkCancel(ctx, node.Pos()); err != nil {
			return nil, err
		}
		out[i] = value.NewNumberInt64(e.RNG.RollDie(faces))
	}
	return out, nil
}

// evalRepeat implements `^`: the left operand is re-evaluated N times
// against the current environment (spec.md §4.3), rather than evaluated
// once and reused — an inner `=` is visible across iterations, an inner
// `let` is not, since each re-evaluation of a BlockExpression opens its
// own fresh frame.
func (e *Evaluator) evalRepeat(ctx context.Context, node *ast.BinaryExpression, env *runtime.Environment) (value.Value, error) {
	rightVal, err := e.Eval(ctx, node.Right, env)
	if err != nil {
		return nil, err
	}
	count, err := e.coerceNonNegativeInt(node, rightVal, "repeat count")
	if err != nil {
		return nil, err
	}

	out := make(value.List, count)
	for i := int64(0); i < count; i++ {
		if err := e.checkCancel(ctx, node.Pos()); err != nil {
			return nil, err
		}
		v, err := e.Eval(ctx, node.Left, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalFilter implements `kh kl rh rl` (spec.md §4.3): L must be a list,
// n a non-negative integer no larger than len(L). Ties are broken
// arbitrarily by a stable sort; only the retained/removed multiset is
// guaranteed, not the output order, matching spec.md's "unspecified"
// wording.
func (e *Evaluator) evalFilter(ctx context.Context, node *ast.BinaryExpression, env *runtime.Environment) (value.Value, error) {
	leftVal, err := e.Eval(ctx, node.Left, env)
	if err != nil {
		return nil, err
	}
	list, ok := leftVal.(value.List)
	if !ok {
		return nil, e.errAt(errors.KindType, node.Pos(), "%s requires a list on the left, got %s", node.Operator, leftVal.Kind())
	}

	rightVal, err := e.Eval(ctx, node.Right, env)
	if err != nil {
		return nil, err
	}
	n, err := e.coerceNonNegativeInt(node, rightVal, "filter count")
	if err != nil {
		return nil, err
	}
	if n > int64(len(list)) {
		return nil, e.errAt(errors.KindDomain, node.Pos(), "%s count %d exceeds list length %d", node.Operator, n, len(list))
	}

	sorted := make(value.List, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value.Compare(sorted[i], sorted[j]) < 0
	})

	count := int(n)
	switch node.Operator {
	case "kh":
		return append(value.List{}, sorted[len(sorted)-count:]...), nil
	case "kl":
		return append(value.List{}, sorted[:count]...), nil
	case "rh":
		return append(value.List{}, sorted[:len(sorted)-count]...), nil
	case "rl":
		return append(value.List{}, sorted[count:]...), nil
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "unknown filter operator %q", node.Operator)
	}
}

func (e *Evaluator) coerceNonNegativeInt(node ast.Node, v value.Value, what string) (int64, error) {
	n, err := builtins.ScalarCoerce(v)
	if err != nil {
		return 0, e.wrapBuiltinErr(node.Pos(), err)
	}
	if !n.IsInt64() || n.Sign() < 0 {
		return 0, e.errAt(errors.KindDomain, node.Pos(), "%s must be a non-negative integer, got %s", what, n.String())
	}
	return n.Int64(), nil
}

func (e *Evaluator) coercePositiveInt(node ast.Node, v value.Value, what string) (int64, error) {
	n, err := builtins.ScalarCoerce(v)
	if err != nil {
		return 0, e.wrapBuiltinErr(node.Pos(), err)
	}
	if !n.IsInt64() || n.Sign() <= 0 {
		return 0, e.errAt(errors.KindDomain, node.Pos(), "%s must be a positive integer, got %s", what, n.String())
	}
	return n.Int64(), nil
}
