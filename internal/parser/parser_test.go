package parser

import "testing"

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3 + 4 * 5", "(3 + (4 * 5))"},
		{"2 ^ 3 kh 1", "((2 ^ 3) kh 1)"},
		{"1 ~ 2 + 3", "(1 ~ (2 + 3))"},
		{"-3 + 4", "((-3) + 4)"},
		{"let x = 1 + 2", "let x = (1 + 2)"},
		{"x = y = 1", "x = y = 1"},
		{"f(1, 2).x[0]", "f(1, 2).x[0]"},
	}

	for _, tt := range tests {
		expr, err := ParseExpression(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if got := expr.String(); got != tt.want {
			t.Errorf("%q: want %q got %q", tt.input, tt.want, got)
		}
	}
}

func TestParseProgramWrapsMultipleExpressions(t *testing.T) {
	expr, err := Parse("let x = 1; x + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := expr.String(); got != "{ let x = 1; (x + 1) }" {
		t.Errorf("unexpected wrapping: %q", got)
	}
}

func TestParseClosureLiteral(t *testing.T) {
	expr, err := ParseExpression("|a, b| a + b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := expr.String(); got != "|a, b| (a + b)" {
		t.Errorf("unexpected closure string: %q", got)
	}
}

func TestParseDuplicateClosureParam(t *testing.T) {
	_, err := ParseExpression("|a, a| a")
	if err == nil {
		t.Fatal("expected an error for a duplicate closure parameter")
	}
}

func TestParseDuplicateMapKey(t *testing.T) {
	_, err := ParseExpression("<|a: 1, a: 2|>")
	if err == nil {
		t.Fatal("expected an error for a duplicate map key")
	}
}

func TestParseEmptyBlockRejected(t *testing.T) {
	_, err := ParseExpression("{}")
	if err == nil {
		t.Fatal("expected an error for an empty block")
	}
}

func TestParseInvalidAssignTarget(t *testing.T) {
	_, err := ParseExpression("1 = 2")
	if err == nil {
		t.Fatal("expected an error assigning to a non-identifier")
	}
}

func TestParseValueAcceptsLiterals(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`42`,
		`-7`,
		`"hello\nworld"`,
		`[1, 2, 3]`,
		`<|a: 1, b: [2, 3]|>`,
	}
	for _, src := range tests {
		v, err := ParseValue(src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if v == nil {
			t.Fatalf("%q: nil value", src)
		}
	}
}

func TestParseValueRejectsExpressions(t *testing.T) {
	tests := []string{"1 + 2", "|x| x", "foo", "f(1)"}
	for _, src := range tests {
		if _, err := ParseValue(src); err == nil {
			t.Errorf("%q: expected ParseValue to reject a non-literal expression", src)
		}
	}
}
