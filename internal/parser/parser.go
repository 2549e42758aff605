package parser

import (
	"fmt"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/lexer"
)

// Precedence levels, lowest to highest, per spec.md §4.1.
const (
	LOWEST = iota
	ASSIGN // let, = (right-associative)
	JOIN   // ~
	SUM    // + -
	PRODUCT
	REPEATFILTER // ^ kh kl rh rl
	DICEPREC     // unary +, -, d; binary d
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:  ASSIGN,
	lexer.TILDE:   JOIN,
	lexer.PLUS:    SUM,
	lexer.MINUS:   SUM,
	lexer.STAR:    PRODUCT,
	lexer.SLASH:   PRODUCT,
	lexer.PERCENT: PRODUCT,
	lexer.CARET:   REPEATFILTER,
	lexer.KH:      REPEATFILTER,
	lexer.KL:      REPEATFILTER,
	lexer.RH:      REPEATFILTER,
	lexer.RL:      REPEATFILTER,
	lexer.DICE:    DICEPREC,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(left ast.Expression) (ast.Expression, error)
)

// Parser is a recursive-descent / precedence-climbing parser over a
// token stream produced by internal/lexer.
type Parser struct {
	l      *lexer.Lexer
	source string

	cur  lexer.Token
	peek lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over source.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source), source: source}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseNumberLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.NULL:     p.parseNullLiteral,
		lexer.TRUE:     p.parseBoolLiteral,
		lexer.FALSE:    p.parseBoolLiteral,
		lexer.LET:      p.parseLetExpression,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.LBRACKET: p.parseListLiteral,
		lexer.MAPOPEN:  p.parseMapLiteral,
		lexer.LBRACE:   p.parseBlockExpression,
		lexer.PIPE:     p.parseClosureLiteral,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.PLUS:     p.parseUnaryExpression,
		lexer.DICE:     p.parseUnaryExpression,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.ASSIGN:  p.parseAssignExpression,
		lexer.TILDE:   p.parseBinaryExpression,
		lexer.PLUS:    p.parseBinaryExpression,
		lexer.MINUS:   p.parseBinaryExpression,
		lexer.STAR:    p.parseBinaryExpression,
		lexer.SLASH:   p.parseBinaryExpression,
		lexer.PERCENT: p.parseBinaryExpression,
		lexer.CARET:   p.parseBinaryExpression,
		lexer.KH:      p.parseBinaryExpression,
		lexer.KL:      p.parseBinaryExpression,
		lexer.RH:      p.parseBinaryExpression,
		lexer.RL:      p.parseBinaryExpression,
		lexer.DICE:    p.parseBinaryExpression,
	}

	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) expect(t lexer.TokenType) error {
	if p.cur.Type != t {
		return p.unexpected(t.String())
	}
	p.next()
	return nil
}

func (p *Parser) unexpected(want string) error {
	return errors.NewParse(p.cur.Pos, p.source, "unexpected token",
		fmt.Sprintf("expected %s, got %s (%q)", want, p.cur.Type, p.cur.Literal))
}

// Parse parses an entire program: a `;`-separated sequence of top-level
// expressions (trailing `;` permitted). A single expression is returned
// unwrapped; more than one is wrapped in a synthetic BlockExpression, per
// this package's documented choice (see doc.go).
func Parse(source string) (ast.Expression, error) {
	p := New(source)
	return p.ParseProgram()
}

// ParseExpression parses exactly one expression and requires EOF to
// follow it.
func ParseExpression(source string) (ast.Expression, error) {
	p := New(source)
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, p.unexpected("end of input")
	}
	return expr, nil
}

// ParseProgram parses a `;`-separated top-level sequence.
func (p *Parser) ParseProgram() (ast.Expression, error) {
	var exprs []ast.Expression
	startTok := p.cur

	if p.cur.Type == lexer.EOF {
		return nil, errors.NewParse(p.cur.Pos, p.source, "unexpected token", "empty program")
	}

	for p.cur.Type != lexer.EOF {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if p.cur.Type == lexer.SEMICOLON {
			p.next()
			continue
		}
		break
	}

	if p.cur.Type != lexer.EOF {
		return nil, p.unexpected("';' or end of input")
	}

	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.BlockExpression{Token: startTok, Exprs: exprs}, nil
}

func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		return nil, p.unexpected("an expression")
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	left, err = p.parsePostfix(left)
	if err != nil {
		return nil, err
	}

	for precedence < p.curPrecedence() {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePostfix applies `f(args)`, `x[i]`, `x.name` left-to-right after a
// primary, per spec.md §4.1 tier 7.
func (p *Parser) parsePostfix(left ast.Expression) (ast.Expression, error) {
	for {
		switch p.cur.Type {
		case lexer.LPAREN:
			call, err := p.parseCallExpression(left)
			if err != nil {
				return nil, err
			}
			left = call
		case lexer.LBRACKET:
			idx, err := p.parseIndexExpression(left)
			if err != nil {
				return nil, err
			}
			left = idx
		case lexer.DOT:
			mem, err := p.parseMemberExpression(left)
			if err != nil {
				return nil, err
			}
			left = mem
		default:
			return left, nil
		}
	}
}
