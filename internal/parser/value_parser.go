package parser

import (
	"fmt"
	"math/big"

	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/internal/lexer"
	"github.com/dicescript/dicescript/internal/value"
)

// ValueParser implements the restricted value-literal grammar of
// spec.md §4.1: null, bool, number, string, list of values, map of
// string→value. No operators, calls, identifiers, closures or comments.
type ValueParser struct {
	l      *lexer.Lexer
	source string
	cur    lexer.Token
}

func newValueParser(source string) *ValueParser {
	vp := &ValueParser{l: lexer.New(source), source: source}
	vp.next()
	return vp
}

func (vp *ValueParser) next() { vp.cur = vp.l.NextToken() }

// ParseValue parses source as a single literal value and requires EOF to
// follow it. It is used by the `parse` intrinsic and, internally, by any
// string-to-number coercion the evaluator performs.
func ParseValue(source string) (value.Value, error) {
	vp := newValueParser(source)
	v, err := vp.parseValue()
	if err != nil {
		return nil, err
	}
	if vp.cur.Type != lexer.EOF {
		return nil, vp.unexpected("end of input")
	}
	return v, nil
}

func (vp *ValueParser) unexpected(want string) error {
	return errors.NewParse(vp.cur.Pos, vp.source, "unexpected token",
		fmt.Sprintf("expected %s, got %s (%q)", want, vp.cur.Type, vp.cur.Literal))
}

func (vp *ValueParser) parseValue() (value.Value, error) {
	switch vp.cur.Type {
	case lexer.NULL:
		vp.next()
		return value.NullValue, nil
	case lexer.TRUE:
		vp.next()
		return value.Bool(true), nil
	case lexer.FALSE:
		vp.next()
		return value.Bool(false), nil
	case lexer.INT:
		return vp.parseNumber(false)
	case lexer.MINUS:
		vp.next()
		if vp.cur.Type != lexer.INT {
			return nil, vp.unexpected("a number after '-'")
		}
		return vp.parseNumber(true)
	case lexer.STRING:
		s := value.String(vp.cur.Literal)
		vp.next()
		return s, nil
	case lexer.ILLEGAL:
		return nil, errors.NewParse(vp.cur.Pos, vp.source, "invalid escape", vp.cur.Literal)
	case lexer.LBRACKET:
		return vp.parseList()
	case lexer.MAPOPEN:
		return vp.parseMap()
	default:
		return nil, vp.unexpected("a value (null, bool, number, string, list, or map)")
	}
}

func (vp *ValueParser) parseNumber(negative bool) (value.Value, error) {
	n := new(big.Int)
	if _, ok := n.SetString(vp.cur.Literal, 10); !ok {
		return nil, errors.NewParse(vp.cur.Pos, vp.source, "invalid number", vp.cur.Literal)
	}
	if negative {
		n.Neg(n)
	}
	vp.next()
	return value.NewNumber(n), nil
}

func (vp *ValueParser) parseList() (value.Value, error) {
	vp.next() // consume '['
	elems := value.List{}
	for vp.cur.Type != lexer.RBRACKET {
		e, err := vp.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)

		if vp.cur.Type == lexer.COMMA {
			vp.next()
			if vp.cur.Type == lexer.RBRACKET {
				break
			}
			continue
		}
		break
	}
	if vp.cur.Type != lexer.RBRACKET {
		return nil, vp.unexpected("']'")
	}
	vp.next()
	return elems, nil
}

func (vp *ValueParser) parseMap() (value.Value, error) {
	vp.next() // consume '<|'
	m := value.NewMap()

	for vp.cur.Type != lexer.MAPCLOSE {
		var key string
		switch vp.cur.Type {
		case lexer.IDENT, lexer.STRING:
			key = vp.cur.Literal
		default:
			return nil, vp.unexpected("map key")
		}
		keyPos := vp.cur.Pos
		vp.next()

		if key == "" {
			return nil, errors.NewParse(keyPos, vp.source, "invalid map key", "map keys must not be empty")
		}
		if m.Has(key) {
			return nil, errors.NewParse(keyPos, vp.source, "duplicate map key", fmt.Sprintf("key %q repeated", key))
		}

		if vp.cur.Type != lexer.COLON {
			return nil, vp.unexpected("':'")
		}
		vp.next()

		val, err := vp.parseValue()
		if err != nil {
			return nil, err
		}
		m = m.Set(key, val)

		if vp.cur.Type == lexer.COMMA {
			vp.next()
			if vp.cur.Type == lexer.MAPCLOSE {
				break
			}
			continue
		}
		break
	}
	if vp.cur.Type != lexer.MAPCLOSE {
		return nil, vp.unexpected("'|>'")
	}
	vp.next()
	return m, nil
}
