package builtins

import "github.com/dicescript/dicescript/internal/value"

// AstVersion and EngineVersion are the process-wide version constants
// spec.md §9 calls out alongside the intrinsic table ("the intrinsic
// table and the language version constants are process-wide; initialize
// once at startup, expose as immutable"), surfaced through `std`.
const (
	AstVersion    = "1.0"
	EngineVersion = "1.0"
)

func registerIntrospection() {
	register("std", biStd)
}

// biStd implements the `std`, `std.prelude`, `std.intrinsics`,
// `std.versions.ast`, `std.versions.engine` introspection surface of
// spec.md §4.5. Those dotted names are not valid identifiers in this
// language's grammar, so the table carries a single callable, `std()`,
// that returns a map whose fields are reached by ordinary member access
// (`std().prelude`, `std().versions.engine`, …) — the same mechanism
// every other map in the language already uses; see DESIGN.md.
func biStd(c *Call) (value.Value, error) {
	if err := requireArity(c, "std", 0); err != nil {
		return nil, err
	}
	prelude := make(value.List, 0, len(PreludeNames()))
	for _, n := range PreludeNames() {
		prelude = append(prelude, value.String(n))
	}
	intrinsics := make(value.List, 0, len(Names()))
	for _, n := range Names() {
		intrinsics = append(intrinsics, value.String(n))
	}
	versions := value.NewMap().
		Set("ast", value.String(AstVersion)).
		Set("engine", value.String(EngineVersion))

	return value.NewMap().
		Set("prelude", prelude).
		Set("intrinsics", intrinsics).
		Set("versions", versions), nil
}
