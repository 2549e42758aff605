package evaluator

import (
	"context"
	"testing"

	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

func run(t *testing.T, e *Evaluator, src string, env *runtime.Environment) value.Value {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	v, err := e.Eval(context.Background(), expr, env)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func newEvaluator(seed string) *Evaluator {
	return New(rng.NewFromSeedBytes([]byte(seed)), nil)
}

func TestSimpleAddition(t *testing.T) {
	e := newEvaluator("t1")
	v := run(t, e, "3 + 4", runtime.NewEnvironment())
	if !value.Equal(v, value.NewNumberInt64(7)) {
		t.Fatalf("3 + 4 = %v, want 7", v)
	}
}

func TestDiceSeededDeterminism(t *testing.T) {
	env1 := runtime.NewEnvironment()
	e1 := newEvaluator("s1")
	v1 := run(t, e1, "+3d6", env1)

	env2 := runtime.NewEnvironment()
	e2 := newEvaluator("s1")
	v2 := run(t, e2, "+3d6", env2)

	if !value.Equal(v1, v2) {
		t.Fatalf("same-seed evaluations diverged: %v != %v", v1, v2)
	}
	n := v1.(value.Number)
	if n.Int64() < 3 || n.Int64() > 18 {
		t.Fatalf("+3d6 = %v, want in [3,18]", v1)
	}
}

func TestBinaryDiceLengthAndRange(t *testing.T) {
	e := newEvaluator("dice")
	v := run(t, e, "5 d 6", runtime.NewEnvironment())
	list, ok := v.(value.List)
	if !ok || len(list) != 5 {
		t.Fatalf("5 d 6 = %v, want a 5-element list", v)
	}
	for _, el := range list {
		n := el.(value.Number)
		if n.Int64() < 1 || n.Int64() > 6 {
			t.Fatalf("element %v out of [1,6]", el)
		}
	}
}

func TestMapJoinMerge(t *testing.T) {
	e := newEvaluator("join")
	v := run(t, e, `<|a: 1, b: 2|> ~ <|b: 4, c: 3|>`, runtime.NewEnvironment())
	want := value.NewMap().Set("a", value.NewNumberInt64(1)).Set("b", value.NewNumberInt64(4)).Set("c", value.NewNumberInt64(3))
	if !value.Equal(v, want) {
		t.Fatalf("map join = %v, want %v", v, want)
	}
}

func TestListMapJoinFallsBackToSortedValues(t *testing.T) {
	e := newEvaluator("join2")
	v := run(t, e, `[1, 2, 3] ~ <|c: 30, a: 10, b: 20|>`, runtime.NewEnvironment())
	want := value.List{
		value.NewNumberInt64(1), value.NewNumberInt64(2), value.NewNumberInt64(3),
		value.NewNumberInt64(10), value.NewNumberInt64(20), value.NewNumberInt64(30),
	}
	if !value.Equal(v, want) {
		t.Fatalf("list ~ map = %v, want %v", v, want)
	}
}

func TestClosureCapturesByValue(t *testing.T) {
	e := newEvaluator("capture")
	env := runtime.NewEnvironment()
	run(t, e, "let x = 1", env)
	run(t, e, "let f = || x", env)
	run(t, e, "x = 99", env)
	v := run(t, e, "f()", env)
	if !value.Equal(v, value.NewNumberInt64(1)) {
		t.Fatalf("f() = %v, want 1 (capture-by-value)", v)
	}
}

func TestReseedReproducesDraws(t *testing.T) {
	e := newEvaluator("base")
	env := NewGlobalEnvironment()
	run(t, e, "seed(7)", env)
	a := run(t, e, "d20", env)
	run(t, e, "seed(7)", env)
	b := run(t, e, "d20", env)
	if !value.Equal(a, b) {
		t.Fatalf("re-seeding with the same argument did not reproduce the draw: %v != %v", a, b)
	}
}

func TestFilterKeepHighestAndRemoveHighestPartitionInput(t *testing.T) {
	e := newEvaluator("filter")
	env := runtime.NewEnvironment()
	run(t, e, "let l = [5, 1, 4, 2, 3]", env)
	kh := run(t, e, "l kh 2", env).(value.List)
	rh := run(t, e, "l rh 2", env).(value.List)
	if len(kh) != 2 || len(rh) != 3 {
		t.Fatalf("kh/rh lengths = %d/%d, want 2/3", len(kh), len(rh))
	}
	union := append(append(value.List{}, kh...), rh...)
	sum := func(l value.List) int64 {
		var total int64
		for _, v := range l {
			total += v.(value.Number).Int64()
		}
		return total
	}
	if sum(union) != sum(value.List{value.NewNumberInt64(5), value.NewNumberInt64(1), value.NewNumberInt64(4), value.NewNumberInt64(2), value.NewNumberInt64(3)}) {
		t.Fatalf("kh ∪ rh is not the same multiset as the input list")
	}
}

func TestRepeatReEvaluatesLeftOperand(t *testing.T) {
	e := newEvaluator("repeat")
	env := runtime.NewEnvironment()
	run(t, e, "let n = 0", env)
	v := run(t, e, "{ n = n + 1 } ^ 3", env)
	list, ok := v.(value.List)
	if !ok || len(list) != 3 {
		t.Fatalf("{ n = n + 1 } ^ 3 = %v, want a 3-element list", v)
	}
	if !value.Equal(list[0], value.NewNumberInt64(1)) || !value.Equal(list[2], value.NewNumberInt64(3)) {
		t.Fatalf("repeat did not share the outer binding across iterations: %v", list)
	}
	n := run(t, e, "n", env)
	if !value.Equal(n, value.NewNumberInt64(3)) {
		t.Fatalf("n after repeat = %v, want 3", n)
	}
}

func TestIndexAndMemberAccess(t *testing.T) {
	e := newEvaluator("index")
	env := runtime.NewEnvironment()
	if v := run(t, e, `"hello"[1]`, env); !value.Equal(v, value.String("e")) {
		t.Fatalf(`"hello"[1] = %v, want "e"`, v)
	}
	if v := run(t, e, `"hello"[-1]`, env); !value.Equal(v, value.String("o")) {
		t.Fatalf(`"hello"[-1] = %v, want "o"`, v)
	}
	if v := run(t, e, `[10, 20, 30].1`, env); !value.Equal(v, value.NewNumberInt64(20)) {
		t.Fatalf("[10,20,30].1 = %v, want 20", v)
	}
	if v := run(t, e, `<|a: 1|>.a`, env); !value.Equal(v, value.NewNumberInt64(1)) {
		t.Fatalf("<|a:1|>.a = %v, want 1", v)
	}
}

func TestAssignFallsBackToGlobalWhenUnbound(t *testing.T) {
	e := newEvaluator("assign")
	env := runtime.NewEnvironment()
	run(t, e, "{ unseen = 42 }", env)
	v := run(t, e, "unseen", env)
	if !value.Equal(v, value.NewNumberInt64(42)) {
		t.Fatalf("unseen = %v, want 42 (defined globally by fallback assignment)", v)
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	e := newEvaluator("divzero")
	expr, err := parser.Parse("1 / 0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Eval(context.Background(), expr, runtime.NewEnvironment()); err == nil {
		t.Fatal("1 / 0 did not fail")
	}
}

func TestCompositeMultiplyDistributes(t *testing.T) {
	e := newEvaluator("mul")
	v := run(t, e, "[1, 2, 3] * 2", runtime.NewEnvironment())
	want := value.List{value.NewNumberInt64(2), value.NewNumberInt64(4), value.NewNumberInt64(6)}
	if !value.Equal(v, want) {
		t.Fatalf("[1,2,3] * 2 = %v, want %v", v, want)
	}
}
