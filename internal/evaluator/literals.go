package evaluator

import (
	"context"
	"math/big"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

func (e *Evaluator) evalNumberLiteral(node *ast.NumberLiteral) (value.Value, error) {
	n, ok := new(big.Int).SetString(node.Text, 10)
	if !ok {
		return nil, e.errAt(errors.KindDomain, node.Pos(), "malformed number literal %q", node.Text)
	}
	return value.NewNumber(n), nil
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *runtime.Environment) (value.Value, error) {
	v, ok := env.Get(node.Name)
	if !ok {
		return nil, e.errAt(errors.KindName, node.Pos(), "unbound identifier %q", node.Name)
	}
	return v, nil
}

func (e *Evaluator) evalListLiteral(ctx context.Context, node *ast.ListLiteral, env *runtime.Environment) (value.Value, error) {
	out := make(value.List, len(node.Elements))
	for i, elemExpr := range node.Elements {
		v, err := e.Eval(ctx, elemExpr, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *Evaluator) evalMapLiteral(ctx context.Context, node *ast.MapLiteral, env *runtime.Environment) (value.Value, error) {
	m := value.NewMap()
	for _, entry := range node.Entries {
		v, err := e.Eval(ctx, entry.Value, env)
		if err != nil {
			return nil, err
		}
		m = m.Set(entry.Key, v)
	}
	return m, nil
}
