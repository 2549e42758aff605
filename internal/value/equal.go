package value

// Equal implements the structural equality of spec.md §4.2: same variant
// and same content, numbers compared by mathematical value, maps
// compared order-insensitively by key set and per-key value, and
// closures/intrinsics compared by identity.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av.Cmp(b.(Number).Int) == 0
	case String:
		return av == b.(String)
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			va, _ := av.Get(k)
			vb, ok := bv.Get(k)
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	case *Closure:
		return av == b.(*Closure)
	case Intrinsic:
		return av == b.(Intrinsic)
	default:
		return false
	}
}
