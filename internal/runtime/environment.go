// Package runtime implements the evaluator's scope chain and closure
// capture, generalized from the teacher's internal/interp/runtime
// package (Get/Set/Define over a chain of Environments) down to this
// language's plain, case-sensitive identifiers — spec.md §4.3 has no
// notion of DWScript's case-insensitive idents, so the store here is a
// bare map[string]value.Value rather than the teacher's ident.Map.
package runtime

import (
	"fmt"

	"github.com/dicescript/dicescript/internal/value"
)

// Environment is a symbol table for one lexical scope, chained to an
// enclosing scope for nested blocks and closure bodies.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// NewEnvironment creates a root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosedEnvironment creates a fresh scope nested inside outer, the
// frame spec.md §4.3 requires each block to evaluate in ("Nested scope
// inside a block creates a fresh frame").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), outer: outer}
}

// Get resolves name against this scope, then each enclosing scope in turn.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set assigns to an already-bound name, searching outward through the
// scope chain, per spec.md §4.3's `name = expr` semantics: assignment
// targets the nearest enclosing binding, it never creates one.
func (e *Environment) Set(name string, val value.Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return nil
	}
	if e.outer != nil {
		return e.outer.Set(name, val)
	}
	return fmt.Errorf("undefined variable: %s", name)
}

// Define binds name in the current scope only, creating or shadowing,
// per `let name = expr`'s semantics.
func (e *Environment) Define(name string, val value.Value) {
	e.store[name] = val
}

// AssignOrDefineGlobal implements `name = expr`'s full rule (spec.md
// §4.3): assign to the nearest existing binding in the scope chain, or,
// if none exists, define name in the outermost (global) frame.
func (e *Environment) AssignOrDefineGlobal(name string, val value.Value) {
	if e.Set(name, val) == nil {
		return
	}
	root := e
	for root.outer != nil {
		root = root.outer
	}
	root.Define(name, val)
}

// Has reports whether name resolves anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// FromMap builds a root Environment whose store is a copy of m's
// entries — the frame a Closure's captured snapshot becomes when the
// closure is called (spec.md §4.3: "a fresh frame whose parent is the
// closure's captured environment, i.e. the snapshot taken at
// construction, not the caller's scope").
func FromMap(m *value.Map) *Environment {
	env := NewEnvironment()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		env.store[k] = v
	}
	return env
}
