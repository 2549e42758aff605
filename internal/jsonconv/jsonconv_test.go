package jsonconv

import (
	"context"
	"testing"

	"github.com/dicescript/dicescript/internal/evaluator"
	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestToJSONSnapshots pins the exact wire text spec.md §4.6 describes
// for the null, bool, number, string, list and map variants, the way the teacher's fixture tests pin
// interpreter output with go-snaps rather than hand-written expected
// strings.
func TestToJSONSnapshots(t *testing.T) {
	cases := map[string]value.Value{
		"null":   value.NullValue,
		"bool":   value.Bool(true),
		"number": value.NewNumberInt64(42),
		"string": value.String("hi \"there\""),
		"list": value.List{
			value.NewNumberInt64(1), value.NewNumberInt64(2), value.NewNumberInt64(3),
		},
		"map_preserves_insertion_order": value.NewMap().
			Set("z", value.NewNumberInt64(1)).
			Set("a", value.NewNumberInt64(2)).
			Set("m", value.NewNumberInt64(3)),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			text, err := ToJSON(v)
			if err != nil {
				t.Fatalf("ToJSON(%v): %v", v, err)
			}
			snaps.MatchSnapshot(t, name+"_json", text)
		})
	}
}

// TestFromJSONPreservesMapOrder checks that decoding a JSON object
// rebuilds a Map whose Keys() order matches the object's member order
// in the source text, the property github.com/tidwall/gjson's
// order-preserving ForEach exists in this package to provide.
func TestFromJSONPreservesMapOrder(t *testing.T) {
	v, err := FromJSON(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	m, ok := v.(*value.Map)
	if !ok {
		t.Fatalf("FromJSON returned %T, want *value.Map", v)
	}
	got := m.Keys()
	want := []string{"z", "a", "m"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

// TestToJSONThenFromJSONRoundTrips checks that encoding then decoding a
// composite value reproduces an equal value.
func TestToJSONThenFromJSONRoundTrips(t *testing.T) {
	v := value.NewMap().
		Set("name", value.String("dragon")).
		Set("hp", value.NewNumberInt64(52)).
		Set("tags", value.List{value.String("fire"), value.String("flying")})

	text, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	decoded, err := FromJSON(text)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !value.Equal(v, decoded) {
		t.Fatalf("round trip produced %v, want %v", decoded, v)
	}
}

// TestClosureRoundTripsCallable checks that a closure restored by
// FromJSON is not just metadata but actually callable, since $body is
// re-parsed from the printer's deterministic text rather than carried
// as an inert placeholder.
func TestClosureRoundTripsCallable(t *testing.T) {
	body, err := parser.ParseExpression("x + n")
	if err != nil {
		t.Fatalf("parse closure body: %v", err)
	}
	original := &value.Closure{
		Params:   []string{"x"},
		Captures: value.NewMap().Set("n", value.NewNumberInt64(10)),
		Body:     body,
	}

	text, err := ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	decoded, err := FromJSON(text)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	restored, ok := decoded.(*value.Closure)
	if !ok {
		t.Fatalf("FromJSON returned %T, want *value.Closure", decoded)
	}

	e := evaluator.New(rng.NewFromSeedBytes([]byte("closure-roundtrip")), nil)
	env := runtime.NewEnclosedEnvironment(runtime.FromMap(restored.Captures))
	env.Define(restored.Params[0], value.NewNumberInt64(5))
	v, err := e.Eval(context.Background(), restored.Body, env)
	if err != nil {
		t.Fatalf("evaluating restored closure body: %v", err)
	}
	if !value.Equal(v, value.NewNumberInt64(15)) {
		t.Fatalf("restored closure body x + n with x=5, n=10 = %v, want 15", v)
	}
}
