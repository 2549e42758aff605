// Package builtins implements the intrinsic table of spec.md §4.5: a
// process-wide, read-only table of built-in callables, assembled once at
// init() time and frozen thereafter, generalized from the teacher's
// internal/interp/builtins.Registry (name -> BuiltinFunc, built by a set
// of per-category RegisterXxxFunctions calls) down to this language's
// much smaller, error-returning intrinsic surface.
package builtins

import (
	"sort"

	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/value"
)

// Call carries one intrinsic invocation's evaluated arguments together
// with the session-local capabilities (RNG stream, file system) an
// intrinsic may need. The intrinsic table itself is immutable and
// shared; these capabilities are not — they belong to the calling
// session, per spec.md §5 ("the RNG is engine-local state owned by the
// session; it is not shared across sessions").
type Call struct {
	Args []value.Value
	RNG  *rng.Source
	FS   FileSystem
}

// Func is the signature every intrinsic implements.
type Func func(c *Call) (value.Value, error)

// table is the process-wide intrinsic registry. It is populated once by
// the register calls below and never mutated afterward.
var table = map[string]Func{}

func register(name string, fn Func) {
	if _, exists := table[name]; exists {
		panic("builtins: duplicate intrinsic registration: " + name)
	}
	table[name] = fn
}

func init() {
	registerArithmetic()
	registerConversions()
	registerSerialization()
	registerRNG()
	registerIntrospection()
	registerIO()
}

// Lookup returns the intrinsic registered under name, if any.
func Lookup(name string) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

// Names returns every registered intrinsic name, sorted — the contents
// of the `std.intrinsics` introspection list.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PreludeNames are the intrinsic names a fresh Session pre-binds into
// its global environment as Intrinsic values, so a script can call
// `sum(1, 2)` by bare identifier rather than an explicit lookup form.
// Every registered intrinsic is in the prelude; spec.md §4.5 does not
// describe a restricted subset.
func PreludeNames() []string {
	return Names()
}
