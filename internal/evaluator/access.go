package evaluator

import (
	"context"
	"strconv"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// evalIndexExpression implements spec.md §4.3's "Index and member" for
// the bracket form: strings index by codepoint, lists by position
// (both support negative indexing from the end), maps by string key.
func (e *Evaluator) evalIndexExpression(ctx context.Context, node *ast.IndexExpression, env *runtime.Environment) (value.Value, error) {
	recv, err := e.Eval(ctx, node.Recv, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(ctx, node.Index, env)
	if err != nil {
		return nil, err
	}

	switch r := recv.(type) {
	case value.String:
		i, err := e.requireIndex(node, idx)
		if err != nil {
			return nil, err
		}
		runes := []rune(string(r))
		pos, err := e.resolveIndex(node, i, len(runes))
		if err != nil {
			return nil, err
		}
		return value.String(string(runes[pos])), nil
	case value.List:
		i, err := e.requireIndex(node, idx)
		if err != nil {
			return nil, err
		}
		pos, err := e.resolveIndex(node, i, len(r))
		if err != nil {
			return nil, err
		}
		return r[pos], nil
	case *value.Map:
		key, ok := idx.(value.String)
		if !ok {
			return nil, e.errAt(errors.KindType, node.Pos(), "map index must be a string, got %s", idx.Kind())
		}
		v, ok := r.Get(string(key))
		if !ok {
			return nil, e.errAt(errors.KindKey, node.Pos(), "map has no key %q", string(key))
		}
		return v, nil
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "cannot index a %s", recv.Kind())
	}
}

// evalMemberExpression implements the dotted form: `x.name` is
// `x["name"]` for maps; for lists and strings, `x.0`, `x.1`, … are
// `x[0]`, `x[1]`, … using the literal digits the parser captured in
// Name.
func (e *Evaluator) evalMemberExpression(ctx context.Context, node *ast.MemberExpression, env *runtime.Environment) (value.Value, error) {
	recv, err := e.Eval(ctx, node.Recv, env)
	if err != nil {
		return nil, err
	}

	switch r := recv.(type) {
	case *value.Map:
		v, ok := r.Get(node.Name)
		if !ok {
			return nil, e.errAt(errors.KindKey, node.Pos(), "map has no key %q", node.Name)
		}
		return v, nil
	case value.String:
		i, err := e.requireMemberIndex(node)
		if err != nil {
			return nil, err
		}
		runes := []rune(string(r))
		pos, err := e.resolveIndex(node, i, len(runes))
		if err != nil {
			return nil, err
		}
		return value.String(string(runes[pos])), nil
	case value.List:
		i, err := e.requireMemberIndex(node)
		if err != nil {
			return nil, err
		}
		pos, err := e.resolveIndex(node, i, len(r))
		if err != nil {
			return nil, err
		}
		return r[pos], nil
	default:
		return nil, e.errAt(errors.KindType, node.Pos(), "cannot access member %q of a %s", node.Name, recv.Kind())
	}
}

func (e *Evaluator) requireIndex(node *ast.IndexExpression, idx value.Value) (int64, error) {
	n, ok := idx.(value.Number)
	if !ok {
		return 0, e.errAt(errors.KindType, node.Pos(), "index must be a number, got %s", idx.Kind())
	}
	if !n.IsInt64() {
		return 0, e.errAt(errors.KindDomain, node.Pos(), "index %s is out of range", n.String())
	}
	return n.Int64(), nil
}

// requireMemberIndex parses a MemberExpression's literal Name as a
// non-negative integer, per spec.md §4.3: "only non-negative literal
// integer members".
func (e *Evaluator) requireMemberIndex(node *ast.MemberExpression) (int64, error) {
	i, err := strconv.ParseInt(node.Name, 10, 64)
	if err != nil || i < 0 {
		return 0, e.errAt(errors.KindDomain, node.Pos(), "member %q is not a non-negative integer", node.Name)
	}
	return i, nil
}

// resolveIndex applies spec.md §4.3's negative-indexing rule (index
// from the end) and bounds-checks the result against length.
func (e *Evaluator) resolveIndex(node ast.Node, i int64, length int) (int, error) {
	pos := i
	if pos < 0 {
		pos += int64(length)
	}
	if pos < 0 || pos >= int64(length) {
		return 0, e.errAt(errors.KindDomain, node.Pos(), "index %d is out of range for length %d", i, length)
	}
	return int(pos), nil
}
