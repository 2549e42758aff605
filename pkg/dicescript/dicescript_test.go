package dicescript

import (
	"testing"

	"github.com/dicescript/dicescript/internal/value"
)

func TestEngineEvalArithmetic(t *testing.T) {
	engine := New()
	v, err := engine.Eval("3 + 4 * 2")
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !value.Equal(v, value.NewNumberInt64(11)) {
		t.Fatalf("3 + 4 * 2 = %v, want 11", v)
	}
}

func TestSessionReuseAcrossPrograms(t *testing.T) {
	engine := New()
	sess := engine.NewSession([]byte("fixed"))

	letProgram, err := engine.Parse("let x = 10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := sess.Eval(letProgram); err != nil {
		t.Fatalf("eval let: %v", err)
	}

	readProgram, err := engine.Parse("x + 1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := sess.Eval(readProgram)
	if err != nil {
		t.Fatalf("eval read: %v", err)
	}
	if !value.Equal(v, value.NewNumberInt64(11)) {
		t.Fatalf("x + 1 = %v, want 11", v)
	}
}

func TestSessionSeededDeterminism(t *testing.T) {
	engine := New()

	sess1 := engine.NewSession([]byte("shared-seed"))
	v1, err := sess1.EvalString("3d6")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	sess2 := engine.NewSession([]byte("shared-seed"))
	v2, err := sess2.EvalString("3d6")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	if !value.Equal(v1, v2) {
		t.Fatalf("same-seed sessions diverged: %v != %v", v1, v2)
	}
}

func TestSessionBindAndLookup(t *testing.T) {
	engine := New()
	sess := engine.NewSession()
	sess.Bind("greeting", value.String("hi"))

	v, ok := sess.Lookup("greeting")
	if !ok || !value.Equal(v, value.String("hi")) {
		t.Fatalf("Lookup(greeting) = %v, %v; want \"hi\", true", v, ok)
	}

	result, err := sess.EvalString("greeting")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !value.Equal(result, value.String("hi")) {
		t.Fatalf("greeting = %v, want \"hi\"", result)
	}
}

func TestSessionRNGSaveRestore(t *testing.T) {
	engine := New()
	sess := engine.NewSession([]byte("roundtrip"))

	snapshot, err := sess.RNGSave()
	if err != nil {
		t.Fatalf("RNGSave: %v", err)
	}

	a, err := sess.EvalString("+3d6")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	if err := sess.RNGRestore(snapshot); err != nil {
		t.Fatalf("RNGRestore: %v", err)
	}
	b, err := sess.EvalString("+3d6")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	if !value.Equal(a, b) {
		t.Fatalf("restoring a snapshot did not reproduce the draw: %v != %v", a, b)
	}
}

func TestFileSystemIntrinsicsFailWithoutOneConfigured(t *testing.T) {
	engine := New()
	sess := engine.NewSession()
	if _, err := sess.EvalString(`file_read("whatever")`); err == nil {
		t.Fatal("file_read with no FileSystem configured did not fail")
	}
}

func TestParseValueRejectsExpressions(t *testing.T) {
	if _, err := ParseValue("[1, 2, 3]"); err != nil {
		t.Fatalf("ParseValue([1,2,3]) returned error: %v", err)
	}
	if _, err := ParseValue("1 + 1"); err == nil {
		t.Fatal("ParseValue(\"1 + 1\") should reject operators")
	}
}
