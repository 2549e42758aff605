// Package jsonconv implements the canonical value↔JSON mapping of
// spec.md §4.6, backing the `to_json`/`from_json` intrinsics and the
// seed-derivation canonicalization of spec.md §9 ("canonicalize through
// the JSON form, then feed the UTF-8 bytes into a fixed hash").
//
// Encoding is hand-written: spec.md §4.6 pins the exact wire shape
// (including the `$type` escape convention and insertion-order object
// keys, which encoding/json's map support cannot produce), so there is
// no library seam for writing. Decoding instead walks the document with
// github.com/tidwall/gjson, whose Result.ForEach preserves source object
// key order — exactly the property plain encoding/json lacks and that
// rebuilding a value.Map in its original insertion order requires.
package jsonconv

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/dicescript/dicescript/internal/ast"
	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/value"
	"github.com/tidwall/gjson"
)

// ToJSON renders v as the canonical JSON text of spec.md §4.6.
func ToJSON(v value.Value) (string, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CanonicalBytes returns the UTF-8 bytes of ToJSON(v), the input to the
// seed-derivation hash of spec.md §9.
func CanonicalBytes(v value.Value) ([]byte, error) {
	s, err := ToJSON(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func encode(buf *bytes.Buffer, v value.Value) error {
	switch vv := v.(type) {
	case value.Null:
		buf.WriteString("null")
	case value.Bool:
		if vv {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.Number:
		return encodeNumber(buf, vv)
	case value.String:
		return encodeJSONString(buf, string(vv))
	case value.List:
		buf.WriteByte('[')
		for i, e := range vv {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *value.Map:
		return encodeMap(buf, vv)
	case *value.Closure:
		return encodeClosure(buf, vv)
	case value.Intrinsic:
		buf.WriteString(`{"$type":"intrinsic","$intrinsic":`)
		if err := encodeJSONString(buf, string(vv)); err != nil {
			return err
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jsonconv: unsupported value kind %v", v.Kind())
	}
	return nil
}

// encodeNumber writes a plain JSON integer when it fits a signed 64-bit
// word, or the `$type":"number"` escape otherwise (spec.md §4.6).
func encodeNumber(buf *bytes.Buffer, n value.Number) error {
	if n.IsInt64() {
		buf.WriteString(n.String())
		return nil
	}
	sign := 1
	mag := new(big.Int).Set(n.Int)
	if n.Sign() < 0 {
		sign = -1
		mag.Neg(mag)
	}
	littleEndian := mag.Bytes() // big.Int.Bytes is big-endian magnitude
	for i, j := 0, len(littleEndian)-1; i < j; i, j = i+1, j-1 {
		littleEndian[i], littleEndian[j] = littleEndian[j], littleEndian[i]
	}
	fmt.Fprintf(buf, `{"$type":"number","$sign":%d,"$bytes":[`, sign)
	for i, b := range littleEndian {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, "%d", b)
	}
	buf.WriteString("]}")
	return nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// encodeMap writes m as a plain JSON object, insertion-order, unless its
// key set contains the literal key "$type" — then it is wrapped so the
// escape convention stays unambiguous on decode (spec.md §4.6).
func encodeMap(buf *bytes.Buffer, m *value.Map) error {
	if m.Has("$type") {
		buf.WriteString(`{"$type":"map","$content":`)
		if err := encodeMapObject(buf, m); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	}
	return encodeMapObject(buf, m)
}

func encodeMapObject(buf *bytes.Buffer, m *value.Map) error {
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		v, _ := m.Get(k)
		if err := encode(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeClosure(buf *bytes.Buffer, c *value.Closure) error {
	buf.WriteString(`{"$type":"closure","$params":[`)
	for i, p := range c.Params {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONString(buf, p); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	if c.Captures.Len() > 0 {
		buf.WriteString(`,"$captures":`)
		if err := encodeMapObject(buf, c.Captures); err != nil {
			return err
		}
	}
	buf.WriteString(`,"$body":`)
	body := base64.StdEncoding.EncodeToString(encodeBody(c.Body))
	if err := encodeJSONString(buf, body); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// encodeBody is the "deterministic binary encoding of the body
// expression" spec.md §4.6 requires for a closure's `$body` field. The
// tree's own canonical printer (ast.Expression.String) is already a
// deterministic, whitespace-normalized, round-trip-stable text form, so
// it is reused here as the byte payload rather than inventing a second,
// parallel tree encoding.
func encodeBody(body ast.Expression) []byte {
	return []byte(body.String())
}

// FromJSON parses JSON text per the inverse of spec.md §4.6. Unknown
// `$type` values, and any malformed escape shape, are reported as an
// error; a closure's `$body` is re-parsed into a callable expression
// tree (see decodeClosureShell).
func FromJSON(text string) (value.Value, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("jsonconv: invalid JSON")
	}
	return decode(gjson.Parse(text))
}

func decode(r gjson.Result) (value.Value, error) {
	switch r.Type {
	case gjson.Null:
		return value.NullValue, nil
	case gjson.True:
		return value.Bool(true), nil
	case gjson.False:
		return value.Bool(false), nil
	case gjson.Number:
		n := new(big.Int)
		if _, ok := n.SetString(r.Raw, 10); ok {
			return value.NewNumber(n), nil
		}
		// A non-integer JSON number (e.g. "1.5") has no representation
		// in this language's arbitrary-precision-integer Number variant.
		return nil, fmt.Errorf("jsonconv: non-integer JSON number %q", r.Raw)
	case gjson.String:
		return value.String(r.String()), nil
	case gjson.JSON:
		if r.IsArray() {
			return decodeArray(r)
		}
		return decodeObject(r)
	default:
		return nil, fmt.Errorf("jsonconv: unrecognized JSON token")
	}
}

func decodeArray(r gjson.Result) (value.Value, error) {
	var elems value.List
	var outerErr error
	r.ForEach(func(_, v gjson.Result) bool {
		ev, err := decode(v)
		if err != nil {
			outerErr = err
			return false
		}
		elems = append(elems, ev)
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	return elems, nil
}

func decodeObject(r gjson.Result) (value.Value, error) {
	if typ := r.Get("$type"); typ.Exists() {
		return decodeTyped(typ.String(), r)
	}
	return decodePlainObject(r)
}

func decodePlainObject(r gjson.Result) (value.Value, error) {
	m := value.NewMap()
	var outerErr error
	r.ForEach(func(k, v gjson.Result) bool {
		vv, err := decode(v)
		if err != nil {
			outerErr = err
			return false
		}
		m = m.Set(k.String(), vv)
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	return m, nil
}

func decodeTyped(typ string, r gjson.Result) (value.Value, error) {
	switch typ {
	case "number":
		sign := r.Get("$sign").Int()
		var mag big.Int
		var magBytes []byte
		r.Get("$bytes").ForEach(func(_, b gjson.Result) bool {
			magBytes = append(magBytes, byte(b.Int()))
			return true
		})
		// $bytes is little-endian; math/big wants big-endian.
		for i, j := 0, len(magBytes)-1; i < j; i, j = i+1, j-1 {
			magBytes[i], magBytes[j] = magBytes[j], magBytes[i]
		}
		mag.SetBytes(magBytes)
		if sign < 0 {
			mag.Neg(&mag)
		}
		return value.NewNumber(&mag), nil
	case "map":
		content := r.Get("$content")
		if !content.Exists() {
			return nil, fmt.Errorf(`jsonconv: "$type":"map" missing "$content"`)
		}
		return decodePlainObject(content)
	case "intrinsic":
		name := r.Get("$intrinsic")
		if !name.Exists() {
			return nil, fmt.Errorf(`jsonconv: "$type":"intrinsic" missing "$intrinsic"`)
		}
		return value.Intrinsic(name.String()), nil
	case "closure":
		return decodeClosureShell(r)
	default:
		return nil, fmt.Errorf("jsonconv: unknown $type %q", typ)
	}
}

// decodeClosureShell rebuilds a Closure's params, captures, and body from
// JSON. $body is the same deterministic text encodeBody writes (the
// printer's canonical rendering of the expression tree), so it is
// re-parsed through internal/parser rather than carried as inert text —
// a closure restored by from_json is callable, the same as one built by
// a `|...| ...` literal.
func decodeClosureShell(r gjson.Result) (value.Value, error) {
	var params []string
	r.Get("$params").ForEach(func(_, p gjson.Result) bool {
		params = append(params, p.String())
		return true
	})

	captures := value.NewMap()
	if c := r.Get("$captures"); c.Exists() {
		decoded, err := decodePlainObject(c)
		if err != nil {
			return nil, err
		}
		captures = decoded.(*value.Map)
	}

	bodyB64 := r.Get("$body").String()
	raw, err := base64.StdEncoding.DecodeString(bodyB64)
	if err != nil {
		return nil, fmt.Errorf("jsonconv: invalid $body encoding: %w", err)
	}
	body, err := parser.ParseExpression(string(raw))
	if err != nil {
		return nil, fmt.Errorf("jsonconv: malformed closure $body: %w", err)
	}

	return &value.Closure{
		Params:   params,
		Captures: captures,
		Body:     body,
	}, nil
}
