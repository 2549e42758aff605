package builtins

import (
	"math/big"

	"github.com/dicescript/dicescript/internal/value"
)

// Add implements binary `+` (spec.md §4.3): when either operand is a
// composite, it is summed to a number first via FlattenSum (the same
// rule spec.md §9 confirms unary `+` uses), so both operands end up
// numbers before the addition.
func Add(a, b value.Value) (value.Value, error) {
	na, err := FlattenSum(a)
	if err != nil {
		return nil, err
	}
	nb, err := FlattenSum(b)
	if err != nil {
		return nil, err
	}
	return value.NewNumber(new(big.Int).Add(na, nb)), nil
}

// Subtract implements binary `-`. spec.md §4.3 states the composite
// coercion rule only for `+` (full-sum) and for `*`, `/`, `%`
// (element-wise distribution); it is silent on `-` with a composite
// operand. Since unary `-` is explicitly element-wise distributing,
// binary `-` follows the same distribute family as `*`, `/`, `%` rather
// than `+`'s full-sum rule — see DESIGN.md for this resolved ambiguity.
func Subtract(a, b value.Value) (value.Value, error) {
	return distribute(a, b, func(x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(x, y), nil
	})
}

// Multiply implements binary `*`, distributing over composite operands
// element-wise.
func Multiply(a, b value.Value) (value.Value, error) {
	return distribute(a, b, func(x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Mul(x, y), nil
	})
}

// Divide implements binary `/`: truncated division toward zero,
// distributing over composite operands; division by zero fails.
func Divide(a, b value.Value) (value.Value, error) {
	return distribute(a, b, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, domainErrorf("division by zero")
		}
		return new(big.Int).Quo(x, y), nil
	})
}

// Modulo implements binary `%`: truncated remainder toward zero,
// distributing over composite operands; remainder by zero fails.
func Modulo(a, b value.Value) (value.Value, error) {
	return distribute(a, b, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, domainErrorf("remainder by zero")
		}
		return new(big.Int).Rem(x, y), nil
	})
}

// Negate implements unary `-`: negates a Number directly, distributes
// element-wise over List/Map (preserving keys), and coerces Bool/String
// scalars to a number first.
func Negate(v value.Value) (value.Value, error) {
	switch vv := v.(type) {
	case value.List:
		out := make(value.List, len(vv))
		for i, e := range vv {
			n, err := Negate(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *value.Map:
		out := value.NewMap()
		for _, k := range vv.Keys() {
			e, _ := vv.Get(k)
			n, err := Negate(e)
			if err != nil {
				return nil, err
			}
			out = out.Set(k, n)
		}
		return out, nil
	default:
		n, err := ScalarCoerce(v)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(new(big.Int).Neg(n)), nil
	}
}

func isComposite(v value.Value) bool {
	k := v.Kind()
	return k == value.KindList || k == value.KindMap
}

// distribute is the shared element-wise-distribution engine behind `-`,
// `*`, `/`, and `%` when either operand is a composite (spec.md §4.3):
// scalar vs scalar applies op directly; composite vs scalar distributes
// op over every element/value against the scalar; composite vs
// composite of matching shape (same length, or same key set) combines
// position-wise or key-wise, recursing so nested composites distribute
// at every level.
func distribute(a, b value.Value, op func(x, y *big.Int) (*big.Int, error)) (value.Value, error) {
	aComposite, bComposite := isComposite(a), isComposite(b)

	switch {
	case aComposite && bComposite:
		return distributeComposites(a, b, op)
	case aComposite:
		return mapComposite(a, func(e value.Value) (value.Value, error) { return distribute(e, b, op) })
	case bComposite:
		return mapComposite(b, func(e value.Value) (value.Value, error) { return distribute(a, e, op) })
	default:
		na, err := ScalarCoerce(a)
		if err != nil {
			return nil, err
		}
		nb, err := ScalarCoerce(b)
		if err != nil {
			return nil, err
		}
		result, err := op(na, nb)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(result), nil
	}
}

func mapComposite(v value.Value, f func(value.Value) (value.Value, error)) (value.Value, error) {
	switch vv := v.(type) {
	case value.List:
		out := make(value.List, len(vv))
		for i, e := range vv {
			r, err := f(e)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case *value.Map:
		out := value.NewMap()
		for _, k := range vv.Keys() {
			e, _ := vv.Get(k)
			r, err := f(e)
			if err != nil {
				return nil, err
			}
			out = out.Set(k, r)
		}
		return out, nil
	default:
		return f(v)
	}
}

func distributeComposites(a, b value.Value, op func(x, y *big.Int) (*big.Int, error)) (value.Value, error) {
	switch av := a.(type) {
	case value.List:
		bv, ok := b.(value.List)
		if !ok || len(av) != len(bv) {
			return nil, domainErrorf("operands are lists of different lengths")
		}
		out := make(value.List, len(av))
		for i := range av {
			r, err := distribute(av[i], bv[i], op)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case *value.Map:
		bv, ok := b.(*value.Map)
		if !ok || av.Len() != bv.Len() {
			return nil, domainErrorf("operands are maps with different key sets")
		}
		out := value.NewMap()
		for _, k := range av.Keys() {
			bval, ok := bv.Get(k)
			if !ok {
				return nil, domainErrorf("operands are maps with different key sets")
			}
			aval, _ := av.Get(k)
			r, err := distribute(aval, bval, op)
			if err != nil {
				return nil, err
			}
			out = out.Set(k, r)
		}
		return out, nil
	default:
		return nil, typeErrorf("cannot distribute over a %s", a.Kind())
	}
}
