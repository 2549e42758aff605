package value

import (
	"fmt"
	"strings"
)

// Compare implements the total order spec.md §4.2/§9 requires internally
// for the kh/kl/rh/rl filters (map-to-list flattening sorts keys by the
// same string order through Map.SortedKeys, not through Compare): Number,
// Bool (false<true) and String have their natural orders; cross-variant
// comparison falls back to variant tag rank
// Null < Bool < Number < String < List < Map < Closure < Intrinsic.
// This order is never exposed as a language-level comparison operator —
// only used internally, as the spec requires.
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	switch av := a.(type) {
	case Null:
		return 0
	case Bool:
		bv := b.(Bool)
		if av == bv {
			return 0
		}
		if !bool(av) {
			return -1
		}
		return 1
	case Number:
		return av.Cmp(b.(Number).Int)
	case String:
		return strings.Compare(string(av), string(b.(String)))
	case List:
		bv := b.(List)
		n := len(av)
		if len(bv) < n {
			n = len(bv)
		}
		for i := 0; i < n; i++ {
			if c := Compare(av[i], bv[i]); c != 0 {
				return c
			}
		}
		return len(av) - len(bv)
	case *Map:
		bv := b.(*Map)
		ak, bk := av.SortedKeys(), bv.SortedKeys()
		n := len(ak)
		if len(bk) < n {
			n = len(bk)
		}
		for i := 0; i < n; i++ {
			if c := strings.Compare(ak[i], bk[i]); c != 0 {
				return c
			}
		}
		if len(ak) != len(bk) {
			return len(ak) - len(bk)
		}
		for _, k := range ak {
			va, _ := av.Get(k)
			vb, _ := bv.Get(k)
			if c := Compare(va, vb); c != 0 {
				return c
			}
		}
		return 0
	case *Closure:
		return strings.Compare(fmt.Sprintf("%p", av), fmt.Sprintf("%p", b.(*Closure)))
	case Intrinsic:
		return strings.Compare(string(av), string(b.(Intrinsic)))
	default:
		return 0
	}
}
