// Package dicescript is the embedding API a host program links against
// to parse and evaluate dice-expression source, generalized from the
// shape of the teacher's pkg/dwscript engine (New, Engine.Parse,
// Engine.Eval) down to this language's session model: a Program is
// parsed once and may be evaluated many times against any Session, and
// a Session owns the mutable state evaluation touches — its global
// scope and its RNG stream (spec.md §5, §6).
//
// Internal packages are reachable from within this module, but this
// package re-exports the identifiers a host actually needs (Value,
// FileSystem) so a caller never has to import internal/value or
// internal/builtins directly.
package dicescript

import (
	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/value"
)

// Value is the eight-variant runtime value every evaluation produces
// and every Session.Bind accepts (spec.md §3).
type Value = value.Value

// ValueString renders v the way the to_string intrinsic does, for a
// host that wants to display a result without importing internal/value
// for value.ToString directly.
func ValueString(v Value) string {
	return value.ToString(v)
}

// FileSystem is the capability a host injects to back the file_read
// and file_write intrinsics (spec.md §4.5, §6a). A Session built
// without one fails both intrinsics rather than touching the OS.
type FileSystem = builtins.FileSystem

// Program is source parsed once to an expression tree, ready to be
// evaluated against any number of Sessions.
type Program struct {
	expr ast.Expression
}

// String renders the program back to source-like text, for logging and
// diagnostics — not guaranteed to round-trip byte-for-byte.
func (p *Program) String() string {
	return p.expr.String()
}

// ParseExpression parses text as a program — one expression, or a
// `;`-separated sequence wrapped in a block — independent of any Engine
// configuration. It is the free-function form of spec.md §6's
// parse_expression contract.
func ParseExpression(text string) (*Program, error) {
	expr, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Program{expr: expr}, nil
}

// ParseValue parses text as a value literal — the subset of expression
// grammar spec.md §6 carves out as parse_value: numbers, strings,
// bools, null, and list/map literals whose elements are themselves
// value literals, with no identifiers, calls, or operators.
func ParseValue(text string) (Value, error) {
	return parser.ParseValue(text)
}
