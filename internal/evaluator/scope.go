package evaluator

import (
	"context"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

func (e *Evaluator) evalLetExpression(ctx context.Context, node *ast.LetExpression, env *runtime.Environment) (value.Value, error) {
	v, err := e.Eval(ctx, node.Value, env)
	if err != nil {
		return nil, err
	}
	env.Define(node.Name, v)
	return v, nil
}

func (e *Evaluator) evalAssignExpression(ctx context.Context, node *ast.AssignExpression, env *runtime.Environment) (value.Value, error) {
	v, err := e.Eval(ctx, node.Value, env)
	if err != nil {
		return nil, err
	}
	env.AssignOrDefineGlobal(node.Name, v)
	return v, nil
}

// evalBlockExpression implements "nested scope inside a block creates a
// fresh frame" (spec.md §4.3): a block evaluates in its own enclosed
// environment and returns its last expression's value. Cancellation is
// checked at the block boundary, per spec.md §5.
func (e *Evaluator) evalBlockExpression(ctx context.Context, node *ast.BlockExpression, env *runtime.Environment) (value.Value, error) {
	if err := e.checkCancel(ctx, node.Pos()); err != nil {
		return nil, err
	}
	inner := runtime.NewEnclosedEnvironment(env)
	var result value.Value = value.NullValue
	for _, child := range node.Exprs {
		v, err := e.Eval(ctx, child, inner)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
