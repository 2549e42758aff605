package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := `let x = 3 + 4d6; x.0 ~ <|a:1|>`

	tests := []struct {
		typ TokenType
		lit string
	}{
		{LET, "let"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "3"},
		{PLUS, "+"},
		{INT, "4"},
		{DICE, "d"},
		{INT, "6"},
		{SEMICOLON, ";"},
		{IDENT, "x"},
		{DOT, "."},
		{INT, "0"},
		{TILDE, "~"},
		{MAPOPEN, "<|"},
		{IDENT, "a"},
		{COLON, ":"},
		{INT, "1"},
		{MAPCLOSE, "|>"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("test %d: expected type %v got %v (literal %q)", i, tt.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.lit {
			t.Fatalf("test %d: expected literal %q got %q", i, tt.lit, tok.Literal)
		}
	}
}

func TestDiceKeywordVsIdentifier(t *testing.T) {
	l := New("discard d6 d")
	want := []TokenType{IDENT, DICE, INT, DICE, EOF}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token %d: want %v got %v (%q)", i, w, tok.Type, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\x41\u{1F600}"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("want STRING got %v: %s", tok.Type, tok.Literal)
	}
	want := "a\nb\t\x41\U0001F600"
	if tok.Literal != want {
		t.Fatalf("want %q got %q", want, tok.Literal)
	}
}

func TestInvalidSurrogateEscape(t *testing.T) {
	l := New(`"\u{D800}"`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("want ILLEGAL got %v", tok.Type)
	}
}

func TestLineComment(t *testing.T) {
	l := New("1 // comment\n+2")
	want := []TokenType{INT, PLUS, INT, EOF}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token %d: want %v got %v", i, w, tok.Type)
		}
	}
}
