package evaluator

import (
	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/runtime"
	"github.com/dicescript/dicescript/internal/value"
)

// NewGlobalEnvironment builds the root environment a fresh session
// starts evaluation in: every intrinsic name pre-bound to its
// value.Intrinsic so a script can call `sum(1, 2)` by bare identifier,
// per spec.md §4.5's "std.prelude lists the names auto-injected into
// global scope".
func NewGlobalEnvironment() *runtime.Environment {
	env := runtime.NewEnvironment()
	for _, name := range builtins.PreludeNames() {
		env.Define(name, value.Intrinsic(name))
	}
	return env
}
