package builtins

import (
	"github.com/dicescript/dicescript/internal/jsonconv"
	"github.com/dicescript/dicescript/internal/value"
)

func registerSerialization() {
	register("to_json", biToJSON)
	register("from_json", biFromJSON)
}

func biToJSON(c *Call) (value.Value, error) {
	if err := requireArity(c, "to_json", 1); err != nil {
		return nil, err
	}
	s, err := jsonconv.ToJSON(c.Args[0])
	if err != nil {
		return nil, typeErrorf("to_json: %v", err)
	}
	return value.String(s), nil
}

func biFromJSON(c *Call) (value.Value, error) {
	if err := requireArity(c, "from_json", 1); err != nil {
		return nil, err
	}
	s, ok := c.Args[0].(value.String)
	if !ok {
		return nil, typeErrorf("from_json expects a string, got %s", c.Args[0].Kind())
	}
	v, err := jsonconv.FromJSON(string(s))
	if err != nil {
		return nil, typeErrorf("from_json: %v", err)
	}
	return v, nil
}
