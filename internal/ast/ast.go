// Package ast defines the expression tree produced by the parser.
//
// Unlike a statement-oriented language, every node here is an Expression:
// spec.md §3 treats "let", assignment, and blocks as expressions that
// themselves produce a value.
package ast

import (
	"strings"

	"github.com/dicescript/dicescript/internal/lexer"
)

// Node is the base interface implemented by every tree node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is every node in this language — there are no bare statements.
type Expression interface {
	Node
	expressionNode()
}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Token lexer.Token
}

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "null" }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) Pos() lexer.Position  { return b.Token.Pos }
func (b *BoolLiteral) String() string       { return b.Token.Literal }

// NumberLiteral is an unsigned digit-sequence literal. Unary minus is a
// separate UnaryExpression, per spec.md §4.1's token grammar.
type NumberLiteral struct {
	Token lexer.Token
	Text  string // raw digits, parsed lazily into *big.Int by the evaluator
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return n.Text }

// StringLiteral is a double-quoted string literal with escapes already
// decoded by the lexer.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() lexer.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return quoteString(s.Value) }

// Identifier is a bare name reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	Token    lexer.Token // the '['
	Elements []Expression
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *ListLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapEntry is one `key: value` pair of a MapLiteral.
type MapEntry struct {
	Key   string
	Value Expression
}

// MapLiteral is `<| k1: v1, k2: v2, ... |>`.
type MapLiteral struct {
	Token   lexer.Token // the '<|'
	Entries []MapEntry
}

func (m *MapLiteral) expressionNode()      {}
func (m *MapLiteral) TokenLiteral() string { return m.Token.Literal }
func (m *MapLiteral) Pos() lexer.Position  { return m.Token.Pos }
func (m *MapLiteral) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "<|" + strings.Join(parts, ", ") + "|>"
}

// LetExpression is `let name = expr`.
type LetExpression struct {
	Token lexer.Token // the 'let'
	Name  string
	Value Expression
}

func (l *LetExpression) expressionNode()      {}
func (l *LetExpression) TokenLiteral() string { return l.Token.Literal }
func (l *LetExpression) Pos() lexer.Position  { return l.Token.Pos }
func (l *LetExpression) String() string {
	return "let " + l.Name + " = " + l.Value.String()
}

// AssignExpression is `name = expr`.
type AssignExpression struct {
	Token lexer.Token // the identifier token
	Name  string
	Value Expression
}

func (a *AssignExpression) expressionNode()      {}
func (a *AssignExpression) TokenLiteral() string { return a.Token.Literal }
func (a *AssignExpression) Pos() lexer.Position  { return a.Token.Pos }
func (a *AssignExpression) String() string {
	return a.Name + " = " + a.Value.String()
}

// BlockExpression is `{ e1 ; e2 ; ... ; eK }`, K >= 1.
type BlockExpression struct {
	Token lexer.Token // the '{'
	Exprs []Expression
}

func (b *BlockExpression) expressionNode()      {}
func (b *BlockExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BlockExpression) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockExpression) String() string {
	parts := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		parts[i] = e.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Token  lexer.Token // the '('
	Callee Expression
	Args   []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// IndexExpression is `recv[expr]`.
type IndexExpression struct {
	Token lexer.Token // the '['
	Recv  Expression
	Index Expression
}

func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) Pos() lexer.Position  { return ix.Token.Pos }
func (ix *IndexExpression) String() string {
	return ix.Recv.String() + "[" + ix.Index.String() + "]"
}

// MemberExpression is `recv.name` (name is an identifier, a string
// literal, or a literal non-negative integer).
type MemberExpression struct {
	Token lexer.Token // the '.'
	Recv  Expression
	Name  string
}

func (m *MemberExpression) expressionNode()      {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) Pos() lexer.Position  { return m.Token.Pos }
func (m *MemberExpression) String() string {
	return m.Recv.String() + "." + m.Name
}

// ClosureLiteral is `|p1, p2, ...| body`.
type ClosureLiteral struct {
	Token  lexer.Token // the opening '|'
	Params []string
	Body   Expression
}

func (c *ClosureLiteral) expressionNode()      {}
func (c *ClosureLiteral) TokenLiteral() string { return c.Token.Literal }
func (c *ClosureLiteral) Pos() lexer.Position  { return c.Token.Pos }
func (c *ClosureLiteral) String() string {
	return "|" + strings.Join(c.Params, ", ") + "| " + c.Body.String()
}

// UnaryExpression is unary `-`, `+`, or `d`.
type UnaryExpression struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpression) String() string {
	return "(" + u.Operator + u.Operand.String() + ")"
}

// BinaryExpression covers every binary operator: `+ - * / % ~ ^ d kh kl rh rl`.
type BinaryExpression struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
