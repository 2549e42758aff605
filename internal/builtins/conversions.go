package builtins

import (
	"github.com/dicescript/dicescript/internal/parser"
	"github.com/dicescript/dicescript/internal/value"
)

func registerConversions() {
	register("to_number", biToNumber)
	register("to_string", biToString)
	register("to_list", biToList)
	register("parse", biParse)
}

func requireArity(c *Call, name string, n int) error {
	if len(c.Args) != n {
		return arityErrorf("%s expects %d argument(s), got %d", name, n, len(c.Args))
	}
	return nil
}

func biToNumber(c *Call) (value.Value, error) {
	if err := requireArity(c, "to_number", 1); err != nil {
		return nil, err
	}
	return ToNumber(c.Args[0])
}

func biToString(c *Call) (value.Value, error) {
	if err := requireArity(c, "to_string", 1); err != nil {
		return nil, err
	}
	return value.String(value.ToString(c.Args[0])), nil
}

func biToList(c *Call) (value.Value, error) {
	if err := requireArity(c, "to_list", 1); err != nil {
		return nil, err
	}
	return ToList(c.Args[0]), nil
}

func biParse(c *Call) (value.Value, error) {
	if err := requireArity(c, "parse", 1); err != nil {
		return nil, err
	}
	s, ok := c.Args[0].(value.String)
	if !ok {
		return nil, typeErrorf("parse expects a string, got %s", c.Args[0].Kind())
	}
	v, err := parser.ParseValue(string(s))
	if err != nil {
		return nil, typeErrorf("parse: %v", err)
	}
	return v, nil
}
