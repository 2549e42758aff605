// Package value implements the eight-variant runtime value model of
// spec.md §3: a tagged union expressed as a Go interface with one
// concrete type per variant, mirroring how the teacher's interp.Value
// interface is implemented by one struct per DWScript runtime type
// (IntegerValue, StringValue, ...) rather than by a single Kind+payload
// struct.
package value

import (
	"math/big"

	"github.com/dicescript/dicescript/internal/ast"
)

// Kind identifies which of the eight variants a Value is.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
	KindClosure
	KindIntrinsic
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindClosure:
		return "closure"
	case KindIntrinsic:
		return "intrinsic"
	default:
		return "unknown"
	}
}

// Value is the runtime value interface. It intentionally avoids
// interface{}: every variant is its own Go type, and code dispatches on
// a Value with a type switch the way the teacher's Value interface is
// used.
type Value interface {
	Kind() Kind
}

// Null is the singleton null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// NullValue is the single Null instance; Null carries no state so any
// zero value works equally well, but a shared instance reads better at
// call sites.
var NullValue = Null{}

// Bool is the boolean variant.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Number is an arbitrary-precision signed integer, per spec.md §3's "no
// silent truncation" invariant. math/big.Int is the stdlib's only
// arbitrary-precision integer type; no third-party bignum library
// appears anywhere in the retrieval pack (see DESIGN.md).
type Number struct {
	*big.Int
}

func (Number) Kind() Kind { return KindNumber }

// NewNumber wraps an *big.Int as a Number value. The Int is not copied;
// callers must not mutate it afterward (Values are immutable).
func NewNumber(i *big.Int) Number { return Number{Int: i} }

// NewNumberInt64 builds a Number from a machine int64.
func NewNumberInt64(i int64) Number { return Number{Int: big.NewInt(i)} }

// String is the UTF-8 text variant, indexable by codepoint (see
// internal/evaluator/access.go, which indexes via []rune conversion).
type String string

func (String) Kind() Kind { return KindString }

// List is an ordered, possibly heterogeneous, sequence of values.
type List []Value

func (List) Kind() Kind { return KindList }

// Closure pairs an ordered, unique parameter list with a captured-value
// snapshot and a body expression. Closures are compared by identity
// (spec.md §4.2), so Closure is always held and compared as a pointer.
type Closure struct {
	Params   []string
	Captures *Map
	Body     ast.Expression
}

func (*Closure) Kind() Kind { return KindClosure }

// Intrinsic is the symbolic name of a built-in callable, resolved through
// the process-wide intrinsic table (internal/builtins).
type Intrinsic string

func (Intrinsic) Kind() Kind { return KindIntrinsic }
