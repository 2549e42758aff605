package builtins

import (
	"testing"

	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/value"
)

func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := Lookup(name)
	if !ok {
		t.Fatalf("intrinsic %q is not registered", name)
	}
	v, err := fn(&Call{Args: args, RNG: rng.NewFromSeedBytes([]byte("test"))})
	if err != nil {
		t.Fatalf("%s(%v): unexpected error: %v", name, args, err)
	}
	return v
}

func TestSumEmptyIsZero(t *testing.T) {
	v := call(t, "sum")
	if !value.Equal(v, value.NewNumberInt64(0)) {
		t.Fatalf("sum() = %v, want 0", v)
	}
}

func TestSumFlattensComposites(t *testing.T) {
	v := call(t, "sum", value.List{value.NewNumberInt64(1), value.NewNumberInt64(2)}, value.NewNumberInt64(3))
	if !value.Equal(v, value.NewNumberInt64(6)) {
		t.Fatalf("sum([1,2], 3) = %v, want 6", v)
	}
}

func TestMultEmptyIsOne(t *testing.T) {
	v := call(t, "mult")
	if !value.Equal(v, value.NewNumberInt64(1)) {
		t.Fatalf("mult() = %v, want 1", v)
	}
}

func TestJoinEmptyIsEmptyList(t *testing.T) {
	v := call(t, "join")
	l, ok := v.(value.List)
	if !ok || len(l) != 0 {
		t.Fatalf("join() = %v, want []", v)
	}
}

func TestJoinMapMergeRightWins(t *testing.T) {
	a := value.NewMap().Set("a", value.NewNumberInt64(1)).Set("b", value.NewNumberInt64(2))
	b := value.NewMap().Set("b", value.NewNumberInt64(4)).Set("c", value.NewNumberInt64(3))
	v := call(t, "join", a, b)
	m, ok := v.(*value.Map)
	if !ok {
		t.Fatalf("join(map, map) = %v, want a map", v)
	}
	bv, _ := m.Get("b")
	if !value.Equal(bv, value.NewNumberInt64(4)) {
		t.Fatal("right-hand map must win on key conflict")
	}
}

func TestJoinListAndMapFallsBackToToList(t *testing.T) {
	list := value.List{value.NewNumberInt64(1), value.NewNumberInt64(2), value.NewNumberInt64(3)}
	m := value.NewMap().Set("c", value.NewNumberInt64(30)).Set("a", value.NewNumberInt64(10)).Set("b", value.NewNumberInt64(20))
	v := call(t, "join", list, m)
	want := value.List{
		value.NewNumberInt64(1), value.NewNumberInt64(2), value.NewNumberInt64(3),
		value.NewNumberInt64(10), value.NewNumberInt64(20), value.NewNumberInt64(30),
	}
	if !value.Equal(v, want) {
		t.Fatalf("join(list, map) = %v, want %v", v, want)
	}
}

func TestToNumberRecursesSingletons(t *testing.T) {
	v := call(t, "to_number", value.List{value.List{value.NewNumberInt64(42)}})
	if !value.Equal(v, value.NewNumberInt64(42)) {
		t.Fatalf("to_number(singleton chain) = %v, want 42", v)
	}
}

func TestToNumberString(t *testing.T) {
	v := call(t, "to_number", value.String("17"))
	if !value.Equal(v, value.NewNumberInt64(17)) {
		t.Fatalf("to_number(\"17\") = %v, want 17", v)
	}
}

func TestToListMapSortsByKey(t *testing.T) {
	m := value.NewMap().Set("c", value.NewNumberInt64(3)).Set("a", value.NewNumberInt64(1)).Set("b", value.NewNumberInt64(2))
	v := call(t, "to_list", m)
	want := value.List{value.NewNumberInt64(1), value.NewNumberInt64(2), value.NewNumberInt64(3)}
	if !value.Equal(v, want) {
		t.Fatalf("to_list(map) = %v, want %v", v, want)
	}
}

func TestParseRoundTripsToString(t *testing.T) {
	original := value.NewMap().Set("answer", value.NewNumberInt64(42)).Set("c", value.List{value.NewNumberInt64(2), value.NewNumberInt64(3)})
	printed := value.ToString(original)
	v := call(t, "parse", value.String(printed))
	if !value.Equal(v, original) {
		t.Fatalf("parse(to_string(v)) = %v, want %v", v, original)
	}
}

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	original := value.NewMap().Set("c", value.List{value.NewNumberInt64(2), value.NewNumberInt64(3), value.NewNumberInt64(4)}).Set("answer", value.NewNumberInt64(42))
	encoded := call(t, "to_json", original)
	decoded := call(t, "from_json", encoded)
	if !value.Equal(decoded, original) {
		t.Fatalf("from_json(to_json(v)) = %v, want %v", decoded, original)
	}
}

func TestSeedSaveRestore(t *testing.T) {
	src := rng.NewFromSeedBytes([]byte("base"))
	c := &Call{RNG: src}

	if _, err := biSeed(&Call{RNG: src, Args: []value.Value{value.NewNumberInt64(7)}}); err != nil {
		t.Fatal(err)
	}
	snapshotFn, _ := Lookup("save")
	s, err := snapshotFn(c)
	if err != nil {
		t.Fatal(err)
	}

	want := src.RollDie(20)

	restoreFn, _ := Lookup("restore")
	other := rng.NewFromSeedBytes([]byte("different"))
	if _, err := restoreFn(&Call{RNG: other, Args: []value.Value{s}}); err != nil {
		t.Fatal(err)
	}
	if got := other.RollDie(20); got != want {
		t.Fatalf("restored stream drew %d, want %d", got, want)
	}
}
