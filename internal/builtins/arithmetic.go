package builtins

import (
	"math/big"

	"github.com/dicescript/dicescript/internal/value"
)

func registerArithmetic() {
	register("sum", biSum)
	register("mult", biMult)
	register("join", biJoin)
}

// biSum folds `+` over the arguments; spec.md §4.5: "returns 0 on empty".
func biSum(c *Call) (value.Value, error) {
	total := big.NewInt(0)
	for _, a := range c.Args {
		n, err := FlattenSum(a)
		if err != nil {
			return nil, err
		}
		total.Add(total, n)
	}
	return value.NewNumber(total), nil
}

// biMult folds `*` over the arguments; spec.md §4.5: "returns 1 on empty".
// Folding through Multiply (rather than a plain scalar product) lets a
// composite argument distribute exactly as the infix `*` operator would.
func biMult(c *Call) (value.Value, error) {
	var acc value.Value = value.NewNumberInt64(1)
	for _, a := range c.Args {
		next, err := Multiply(acc, a)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// biJoin folds `~` left-to-right; spec.md §4.5: "returns [] on empty".
func biJoin(c *Call) (value.Value, error) {
	if len(c.Args) == 0 {
		return value.List{}, nil
	}
	acc := c.Args[0]
	for _, next := range c.Args[1:] {
		joined, err := Join(acc, next)
		if err != nil {
			return nil, err
		}
		acc = joined
	}
	return acc, nil
}

// Join implements the `~` operator of spec.md §4.3: string~string
// concatenates, list~list concatenates, map~map merges (right wins on
// key conflict), and any other pairing falls back to concatenating
// `to_list` of each side. It is exported so internal/evaluator can use
// the identical rule for the infix operator.
func Join(left, right value.Value) (value.Value, error) {
	switch lv := left.(type) {
	case value.String:
		if rv, ok := right.(value.String); ok {
			return lv + rv, nil
		}
	case value.List:
		if rv, ok := right.(value.List); ok {
			out := make(value.List, 0, len(lv)+len(rv))
			out = append(out, lv...)
			out = append(out, rv...)
			return out, nil
		}
	case *value.Map:
		if rv, ok := right.(*value.Map); ok {
			return lv.Merge(rv), nil
		}
	}
	ll, rl := ToList(left), ToList(right)
	out := make(value.List, 0, len(ll)+len(rl))
	out = append(out, ll...)
	out = append(out, rl...)
	return out, nil
}
