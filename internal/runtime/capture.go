package runtime

import (
	"sort"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/value"
)

// Capture builds the value-snapshot a closure literal captures at
// construction time (spec.md §4.3): for every identifier free in body —
// not bound by a parameter nor by a `let` in body's own scope — that
// resolves in env, a copy of its current value. Names that are free in
// body but do not resolve in env are simply omitted; a later reference
// to them inside the closure call fails as an ordinary unbound-name
// error at call time, the same as any other NameError.
func Capture(env *Environment, params []string, body ast.Expression) *value.Map {
	bound := make(map[string]bool, len(params))
	for _, p := range params {
		bound[p] = true
	}

	free := make(map[string]bool)
	collectFree(body, bound, free)

	names := make([]string, 0, len(free))
	for n := range free {
		names = append(names, n)
	}
	sort.Strings(names) // deterministic capture-order for a deterministic Map

	captures := value.NewMap()
	for _, n := range names {
		if v, ok := env.Get(n); ok {
			captures = captures.Set(n, v)
		}
	}
	return captures
}

func cloneBound(bound map[string]bool) map[string]bool {
	next := make(map[string]bool, len(bound)+1)
	for k, v := range bound {
		next[k] = v
	}
	return next
}

// collectFree walks expr, adding every identifier reference not present
// in bound to free. bound reflects the names visible at expr's position;
// constructs that introduce scope (blocks via sequential `let`,
// closures via params) extend a local copy for their own subtree only.
func collectFree(expr ast.Expression, bound map[string]bool, free map[string]bool) {
	switch e := expr.(type) {
	case *ast.NullLiteral, *ast.BoolLiteral, *ast.NumberLiteral, *ast.StringLiteral:
		// no identifier references

	case *ast.Identifier:
		if !bound[e.Name] {
			free[e.Name] = true
		}

	case *ast.ListLiteral:
		for _, el := range e.Elements {
			collectFree(el, bound, free)
		}

	case *ast.MapLiteral:
		for _, entry := range e.Entries {
			collectFree(entry.Value, bound, free)
		}

	case *ast.LetExpression:
		collectFree(e.Value, bound, free)
		// The bound name escapes only to this let's later siblings
		// within an enclosing block, handled by the BlockExpression
		// case below; a bare let has nothing after it to see the name.

	case *ast.AssignExpression:
		if !bound[e.Name] {
			free[e.Name] = true
		}
		collectFree(e.Value, bound, free)

	case *ast.BlockExpression:
		local := cloneBound(bound)
		for _, sub := range e.Exprs {
			collectFree(sub, local, free)
			if let, ok := sub.(*ast.LetExpression); ok {
				local[let.Name] = true
			}
		}

	case *ast.CallExpression:
		collectFree(e.Callee, bound, free)
		for _, a := range e.Args {
			collectFree(a, bound, free)
		}

	case *ast.IndexExpression:
		collectFree(e.Recv, bound, free)
		collectFree(e.Index, bound, free)

	case *ast.MemberExpression:
		collectFree(e.Recv, bound, free)

	case *ast.ClosureLiteral:
		local := cloneBound(bound)
		for _, p := range e.Params {
			local[p] = true
		}
		collectFree(e.Body, local, free)

	case *ast.UnaryExpression:
		collectFree(e.Operand, bound, free)

	case *ast.BinaryExpression:
		collectFree(e.Left, bound, free)
		collectFree(e.Right, bound, free)
	}
}
