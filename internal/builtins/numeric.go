package builtins

import (
	"math/big"

	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/value"
)

// ScalarCoerce implements the "strings/bools coerce to number, null and
// composites do not" rule spec.md §4.3 states for ordinary (non-`+`)
// arithmetic operands: Number passes through, Bool becomes 0/1, String
// is parsed via the value grammar and must itself yield a Number. It is
// exported so internal/evaluator can coerce dice, repeat and filter
// counts by the same rule.
func ScalarCoerce(v value.Value) (*big.Int, error) {
	switch vv := v.(type) {
	case value.Number:
		return vv.Int, nil
	case value.Bool:
		if vv {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case value.String:
		parsed, err := parser.ParseValue(string(vv))
		if err != nil {
			return nil, typeErrorf("string %q is not a valid number", string(vv))
		}
		if n, ok := parsed.(value.Number); ok {
			return n.Int, nil
		}
		return nil, typeErrorf("string %q does not parse to a number", string(vv))
	default:
		return nil, typeErrorf("cannot coerce a %s to a number", v.Kind())
	}
}

// FlattenSum implements the unary-`+` rule of spec.md §4.3 — and, by
// extension, binary `+`'s composite-operand coercion, which the spec
// states is "the same rule as unary +" — recursively summing every
// Number reachable inside v: a scalar Number/Bool/String contributes
// itself (after the same string-parse/bool coercion ScalarCoerce uses),
// and a List or Map recurses over its elements/values, so nested
// composites flatten into a single total.
func FlattenSum(v value.Value) (*big.Int, error) {
	switch vv := v.(type) {
	case value.List:
		total := big.NewInt(0)
		for _, e := range vv {
			n, err := FlattenSum(e)
			if err != nil {
				return nil, err
			}
			total.Add(total, n)
		}
		return total, nil
	case *value.Map:
		total := big.NewInt(0)
		for _, k := range vv.Keys() {
			val, _ := vv.Get(k)
			n, err := FlattenSum(val)
			if err != nil {
				return nil, err
			}
			total.Add(total, n)
		}
		return total, nil
	case value.String:
		return ScalarCoerce(vv)
	default:
		return ScalarCoerce(v)
	}
}

// ToNumber implements the `to_number` intrinsic of spec.md §4.5: Number
// passes through; a one-element List/Map recurses into its sole member;
// String invokes the value parser and retries; Bool becomes 0/1;
// anything else fails.
func ToNumber(v value.Value) (value.Value, error) {
	switch vv := v.(type) {
	case value.Number:
		return vv, nil
	case value.Bool:
		n, _ := ScalarCoerce(vv)
		return value.NewNumber(n), nil
	case value.String:
		parsed, err := parser.ParseValue(string(vv))
		if err != nil {
			return nil, typeErrorf("string %q does not parse to a value", string(vv))
		}
		return ToNumber(parsed)
	case value.List:
		if len(vv) != 1 {
			return nil, typeErrorf("to_number requires a one-element list, got %d elements", len(vv))
		}
		return ToNumber(vv[0])
	case *value.Map:
		if vv.Len() != 1 {
			return nil, typeErrorf("to_number requires a one-element map, got %d entries", vv.Len())
		}
		only, _ := vv.Get(vv.Keys()[0])
		return ToNumber(only)
	default:
		return nil, typeErrorf("cannot convert a %s to a number", v.Kind())
	}
}

// ToList implements the `to_list` intrinsic and the fallback path of
// `~` (join): List passes through; Map flattens to its values sorted by
// key; anything else becomes a singleton list.
func ToList(v value.Value) value.List {
	switch vv := v.(type) {
	case value.List:
		return vv
	case *value.Map:
		return value.List(vv.SortedValues())
	default:
		return value.List{v}
	}
}
