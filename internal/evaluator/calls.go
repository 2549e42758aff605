package evaluator

import (
	"context"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// evalCallExpression implements spec.md §4.3's "Call": the callee must
// be a Closure or an Intrinsic; arguments are evaluated left-to-right
// before the call is made.
func (e *Evaluator) evalCallExpression(ctx context.Context, node *ast.CallExpression, env *runtime.Environment) (value.Value, error) {
	callee, err := e.Eval(ctx, node.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(node.Args))
	for i, a := range node.Args {
		v, err := e.Eval(ctx, a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Closure:
		return e.callClosure(ctx, node, fn, args)
	case value.Intrinsic:
		return e.callIntrinsic(node, string(fn), args)
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "cannot call a %s", callee.Kind())
	}
}

func (e *Evaluator) callClosure(ctx context.Context, node *ast.CallExpression, fn *value.Closure, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, e.errAt(errors.KindArity, node.Pos(), "closure expects %d argument(s), got %d", len(fn.Params), len(args))
	}
	frame := runtime.NewEnclosedEnvironment(runtime.FromMap(fn.Captures))
	for i, p := range fn.Params {
		frame.Define(p, args[i])
	}
	return e.Eval(ctx, fn.Body, frame)
}

func (e *Evaluator) callIntrinsic(node *ast.CallExpression, name string, args []value.Value) (value.Value, error) {
	fn, ok := builtins.Lookup(name)
	if !ok {
		return nil, e.errAt(errors.KindName, node.Pos(), "unknown intrinsic %q", name)
	}
	v, err := fn(&builtins.Call{Args: args, RNG: e.RNG, FS: e.FS})
	if err != nil {
		return nil, e.wrapBuiltinErr(node.Pos(), err)
	}
	return v, nil
}

// evalClosureLiteral implements spec.md §4.3's "Closure literal": the
// capture pass runs once at construction time, copying every free
// identifier's current value so later mutation of the outer binding is
// invisible to the closure.
func (e *Evaluator) evalClosureLiteral(node *ast.ClosureLiteral, env *runtime.Environment) (value.Value, error) {
	captures := runtime.Capture(env, node.Params, node.Body)
	return &value.Closure{Params: node.Params, Captures: captures, Body: node.Body}, nil
}
