package value

import "testing"

func TestEqualNumbersIgnoreRepresentation(t *testing.T) {
	a := NewNumberInt64(7)
	b := NewNumberInt64(7)
	if !Equal(a, b) {
		t.Fatal("equal-valued Numbers must compare equal")
	}
	if Equal(a, NewNumberInt64(8)) {
		t.Fatal("different Numbers must not compare equal")
	}
}

func TestEqualCrossVariantIsFalse(t *testing.T) {
	if Equal(NewNumberInt64(1), String("1")) {
		t.Fatal("different variants must never be equal")
	}
}

func TestEqualMapIsOrderInsensitive(t *testing.T) {
	a := NewMap().Set("x", NewNumberInt64(1)).Set("y", NewNumberInt64(2))
	b := NewMap().Set("y", NewNumberInt64(2)).Set("x", NewNumberInt64(1))
	if !Equal(a, b) {
		t.Fatal("maps with the same entries in different insertion order must be equal")
	}
}

func TestEqualClosureIsIdentity(t *testing.T) {
	c1 := &Closure{Captures: NewMap()}
	c2 := &Closure{Captures: NewMap()}
	if Equal(c1, c2) {
		t.Fatal("distinct closures must never be equal, even with identical contents")
	}
	if !Equal(c1, c1) {
		t.Fatal("a closure must be equal to itself")
	}
}

func TestMapSetPreservesInsertionOrderAndOverwrites(t *testing.T) {
	m := NewMap().Set("b", NewNumberInt64(1)).Set("a", NewNumberInt64(2)).Set("b", NewNumberInt64(3))
	if got := m.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("unexpected key order: %v", got)
	}
	v, _ := m.Get("b")
	if !Equal(v, NewNumberInt64(3)) {
		t.Fatal("re-setting an existing key must overwrite its value in place")
	}
}

func TestMapSortedKeys(t *testing.T) {
	m := NewMap().Set("b", NullValue).Set("a", NullValue).Set("c", NullValue)
	got := m.SortedKeys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedKeys() = %v, want %v", got, want)
		}
	}
}

func TestMapMergeJoinSemantics(t *testing.T) {
	a := NewMap().Set("x", NewNumberInt64(1)).Set("y", NewNumberInt64(2))
	b := NewMap().Set("y", NewNumberInt64(20)).Set("z", NewNumberInt64(3))
	merged := a.Merge(b)
	if merged.Len() != 3 {
		t.Fatalf("expected 3 keys after merge, got %d", merged.Len())
	}
	y, _ := merged.Get("y")
	if !Equal(y, NewNumberInt64(20)) {
		t.Fatal("merge must let the right-hand map win on key conflict")
	}
}

func TestCompareOrdersByVariantThenValue(t *testing.T) {
	if Compare(NullValue, Bool(true)) >= 0 {
		t.Fatal("Null must rank below Bool")
	}
	if Compare(NewNumberInt64(1), NewNumberInt64(2)) >= 0 {
		t.Fatal("1 must rank below 2")
	}
	if Compare(String("a"), String("b")) >= 0 {
		t.Fatal("\"a\" must rank below \"b\"")
	}
}

func TestToStringLiterals(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NullValue, "null"},
		{Bool(true), "true"},
		{NewNumberInt64(-5), "-5"},
		{String("hi\n"), `"hi\n"`},
		{List{NewNumberInt64(1), NewNumberInt64(2)}, "[1, 2]"},
	}
	for _, tt := range tests {
		if got := ToString(tt.v); got != tt.want {
			t.Errorf("ToString(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestToStringMapQuotesNonIdentifierKeys(t *testing.T) {
	m := NewMap().Set("ok", Bool(true)).Set("not an ident", Bool(false))
	got := ToString(m)
	want := `<|ok: true, "not an ident": false|>`
	if got != want {
		t.Errorf("ToString(map) = %q, want %q", got, want)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"a", "_x", "foo_bar1"}
	invalid := []string{"", "1foo", "foo bar", "foo-bar"}
	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("expected %q to be a valid identifier", s)
		}
	}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("expected %q to be an invalid identifier", s)
		}
	}
}
