package parser

import (
	"fmt"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/lexer"
)

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	ident := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.next()
	return ident, nil
}

func (p *Parser) parseNumberLiteral() (ast.Expression, error) {
	lit := &ast.NumberLiteral{Token: p.cur, Text: p.cur.Literal}
	p.next()
	return lit, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	if p.cur.Type == lexer.ILLEGAL {
		return nil, errors.NewParse(p.cur.Pos, p.source, "invalid escape", p.cur.Literal)
	}
	lit := &ast.StringLiteral{Token: p.cur, Value: p.cur.Literal}
	p.next()
	return lit, nil
}

func (p *Parser) parseNullLiteral() (ast.Expression, error) {
	lit := &ast.NullLiteral{Token: p.cur}
	p.next()
	return lit, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expression, error) {
	lit := &ast.BoolLiteral{Token: p.cur, Value: p.cur.Type == lexer.TRUE}
	p.next()
	return lit, nil
}

func (p *Parser) parseLetExpression() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume 'let'

	if p.cur.Type != lexer.IDENT {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	p.next()

	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	return &ast.LetExpression{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseAssignExpression(left ast.Expression) (ast.Expression, error) {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		return nil, errors.NewParse(p.cur.Pos, p.source, "invalid assignment target",
			"the left-hand side of '=' must be a bare identifier")
	}
	tok := p.cur // '='
	p.next()

	value, err := p.parseExpression(ASSIGN - 1)
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpression{Token: tok, Name: ident.Name, Value: value}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.next() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '['

	var elems []ast.Expression
	for p.cur.Type != lexer.RBRACKET {
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)

		if p.cur.Type == lexer.COMMA {
			p.next()
			if p.cur.Type == lexer.RBRACKET {
				break
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Token: tok, Elements: elems}, nil
}

func (p *Parser) parseMapLiteral() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '<|'

	var entries []ast.MapEntry
	seen := map[string]bool{}

	for p.cur.Type != lexer.MAPCLOSE {
		var key string
		switch p.cur.Type {
		case lexer.IDENT:
			key = p.cur.Literal
		case lexer.STRING:
			key = p.cur.Literal
		default:
			return nil, p.unexpected("map key")
		}
		keyPos := p.cur.Pos
		p.next()

		if key == "" {
			return nil, errors.NewParse(keyPos, p.source, "invalid map key", "map keys must not be empty")
		}
		if seen[key] {
			return nil, errors.NewParse(keyPos, p.source, "duplicate map key", fmt.Sprintf("key %q repeated", key))
		}
		seen[key] = true

		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})

		if p.cur.Type == lexer.COMMA {
			p.next()
			if p.cur.Type == lexer.MAPCLOSE {
				break
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.MAPCLOSE); err != nil {
		return nil, err
	}
	return &ast.MapLiteral{Token: tok, Entries: entries}, nil
}

func (p *Parser) parseBlockExpression() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '{'

	var exprs []ast.Expression
	for p.cur.Type != lexer.RBRACE {
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)

		if p.cur.Type == lexer.SEMICOLON {
			p.next()
			continue
		}
		break
	}
	if len(exprs) == 0 {
		return nil, errors.NewParse(tok.Pos, p.source, "empty block", "a block must contain at least one expression")
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.BlockExpression{Token: tok, Exprs: exprs}, nil
}

func (p *Parser) parseClosureLiteral() (ast.Expression, error) {
	tok := p.cur
	p.next() // consume opening '|'

	var params []string
	seen := map[string]bool{}
	if p.cur.Type != lexer.PIPE {
		for {
			if p.cur.Type != lexer.IDENT {
				return nil, p.unexpected("parameter name")
			}
			name := p.cur.Literal
			if seen[name] {
				return nil, errors.NewParse(p.cur.Pos, p.source, "duplicate closure parameter",
					fmt.Sprintf("parameter %q repeated", name))
			}
			seen[name] = true
			params = append(params, name)
			p.next()

			if p.cur.Type == lexer.COMMA {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expect(lexer.PIPE); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ClosureLiteral{Token: tok, Params: params, Body: body}, nil
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	tok := p.cur
	operator := p.cur.Literal
	p.next()
	// A binary `d` binds inside the operand: `+3d6` is `+(3d6)`.
	operand, err := p.parseExpression(DICEPREC - 1)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Token: tok, Operator: operator, Operand: operand}, nil
}

func (p *Parser) parseBinaryExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cur
	operator := p.cur.Literal
	precedence := p.curPrecedence()
	p.next()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: operator, Right: right}, nil
}

func (p *Parser) parseCallExpression(callee ast.Expression) (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '('

	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur.Type == lexer.COMMA {
			p.next()
			if p.cur.Type == lexer.RPAREN {
				break
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpression{Token: tok, Callee: callee, Args: args}, nil
}

func (p *Parser) parseIndexExpression(recv ast.Expression) (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '['
	idx, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.IndexExpression{Token: tok, Recv: recv, Index: idx}, nil
}

func (p *Parser) parseMemberExpression(recv ast.Expression) (ast.Expression, error) {
	tok := p.cur
	p.next() // consume '.'

	var name string
	switch p.cur.Type {
	case lexer.IDENT, lexer.INT:
		name = p.cur.Literal
	case lexer.STRING:
		name = p.cur.Literal
	default:
		return nil, p.unexpected("member name")
	}
	p.next()
	return &ast.MemberExpression{Token: tok, Recv: recv, Name: name}, nil
}
