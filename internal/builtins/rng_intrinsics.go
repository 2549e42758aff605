package builtins

import (
	"math/big"

	"github.com/dicescript/dicescript/internal/jsonconv"
	"github.com/dicescript/dicescript/internal/value"
)

func registerRNG() {
	register("seed", biSeed)
	register("save", biSave)
	register("restore", biRestore)
}

// biSeed implements spec.md §4.4's seeding contract: no arguments
// reseeds from system entropy; one or more arguments derive a
// deterministic seed from the canonical JSON serialization of the
// argument list, so identical arguments always produce identical
// subsequent streams across platforms.
func biSeed(c *Call) (value.Value, error) {
	if c.RNG == nil {
		return nil, rngErrorf("no RNG stream is available in this session")
	}
	if len(c.Args) == 0 {
		c.RNG.ReseedFromEntropy()
		return value.NullValue, nil
	}
	digestInput, err := jsonconv.CanonicalBytes(value.List(c.Args))
	if err != nil {
		return nil, rngErrorf("seed: %v", err)
	}
	c.RNG.ReseedFromBytes(digestInput)
	return value.NullValue, nil
}

func biSave(c *Call) (value.Value, error) {
	if err := requireArity(c, "save", 0); err != nil {
		return nil, err
	}
	if c.RNG == nil {
		return nil, rngErrorf("no RNG stream is available in this session")
	}
	snap := c.RNG.Snapshot()
	m := value.NewMap()
	for _, key := range []string{"s0", "s1", "s2", "s3"} {
		m = m.Set(key, value.NewNumber(snap[key]))
	}
	return m, nil
}

func biRestore(c *Call) (value.Value, error) {
	if err := requireArity(c, "restore", 1); err != nil {
		return nil, err
	}
	if c.RNG == nil {
		return nil, rngErrorf("no RNG stream is available in this session")
	}
	m, ok := c.Args[0].(*value.Map)
	if !ok {
		return nil, rngErrorf("restore expects a snapshot map, got %s", c.Args[0].Kind())
	}
	snap := make(map[string]*big.Int, 4)
	for _, key := range []string{"s0", "s1", "s2", "s3"} {
		v, ok := m.Get(key)
		if !ok {
			return nil, rngErrorf("snapshot is missing %q", key)
		}
		n, ok := v.(value.Number)
		if !ok {
			return nil, rngErrorf("snapshot field %q must be a number", key)
		}
		snap[key] = n.Int
	}
	if !c.RNG.Restore(snap) {
		return nil, rngErrorf("snapshot contains an out-of-range state word")
	}
	return value.NullValue, nil
}
