// Package evaluator implements the tree-walking evaluator of spec.md
// §4.3: a recursive eval(expr, env) that threads an RNG handle and the
// intrinsic table, generalized from the structure of the teacher's
// internal/interp/evaluator package (one Visit-style method per
// expression-node kind, dispatched from a single core Eval) down to
// this language's sixteen expression node types. Unlike the teacher's
// error-as-sentinel-value convention, this evaluator returns ordinary Go
// errors — (value.Value, error) — matching the rest of this module's
// idiom (internal/parser, internal/rng).
package evaluator

import (
	"context"
	"fmt"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/lexer"
	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// Evaluator holds the per-session collaborators eval needs beyond the
// expression tree and environment: the RNG stream dice operators and
// the seed/save/restore intrinsics consume, and the file-system
// capability file_read/file_write calls through (SPEC_FULL.md §6a).
type Evaluator struct {
	RNG *rng.Source
	FS  builtins.FileSystem
}

// New creates an Evaluator. rngSrc must not be nil; fs may be nil, in
// which case file_read/file_write fail with IoError.
func New(rngSrc *rng.Source, fs builtins.FileSystem) *Evaluator {
	return &Evaluator{RNG: rngSrc, FS: fs}
}

// Eval evaluates expr in env, per spec.md §4.3's "evaluates strictly
// left-to-right; every sub-expression is fully evaluated before its
// parent step." ctx carries the cooperative-cancellation flag of
// spec.md §5, checked at block boundaries and before each dice draw.
func (e *Evaluator) Eval(ctx context.Context, expr ast.Expression, env *runtime.Environment) (value.Value, error) {
	switch node := expr.(type) {
	case *ast.NullLiteral:
		return value.NullValue, nil
	case *ast.BoolLiteral:
		return value.Bool(node.Value), nil
	case *ast.NumberLiteral:
		return e.evalNumberLiteral(node)
	case *ast.StringLiteral:
		return value.String(node.Value), nil
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.ListLiteral:
		return e.evalListLiteral(ctx, node, env)
	case *ast.MapLiteral:
		return e.evalMapLiteral(ctx, node, env)
	case *ast.LetExpression:
		return e.evalLetExpression(ctx, node, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(ctx, node, env)
	case *ast.BlockExpression:
		return e.evalBlockExpression(ctx, node, env)
	case *ast.CallExpression:
		return e.evalCallExpression(ctx, node, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(ctx, node, env)
	case *ast.MemberExpression:
		return e.evalMemberExpression(ctx, node, env)
	case *ast.ClosureLiteral:
		return e.evalClosureLiteral(node, env)
	case *ast.UnaryExpression:
		return e.evalUnaryExpression(ctx, node, env)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(ctx, node, env)
	default:
		return nil, e.errAt(errors.KindType, expr.Pos(), fmt.Sprintf("unhandled expression node %T", expr))
	}
}

// errAt builds a positioned error without a source excerpt; the caller
// embedding this engine attaches source text when formatting for
// display (see pkg/dicescript).
func (e *Evaluator) errAt(kind errors.Kind, pos lexer.Position, format string, args ...any) error {
	return errors.New(kind, pos, "", fmt.Sprintf(format, args...))
}

// wrapBuiltinErr re-raises an error from internal/builtins, which has no
// notion of source position, as a positioned errors.Error at pos.
func (e *Evaluator) wrapBuiltinErr(pos lexer.Position, err error) error {
	if kind, ok := builtins.Kind(err); ok {
		return errors.New(kind, pos, "", err.Error())
	}
	return errors.New(errors.KindType, pos, "", err.Error())
}

// checkCancel reports ctx's cancellation as a Cancelled error, per
// spec.md §5's "checked at block boundaries and before each dice draw".
func (e *Evaluator) checkCancel(ctx context.Context, pos lexer.Position) error {
	select {
	case <-ctx.Done():
		return errors.New(errors.KindCancelled, pos, "", ctx.Err().Error())
	default:
		return nil
	}
}
