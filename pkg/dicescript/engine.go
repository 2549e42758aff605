package dicescript

import (
	"github.com/dicescript/dicescript/internal/parser"
)

// Engine is a configured entry point for parsing source and minting
// Sessions, mirroring the teacher's New()/engine.Parse()/engine.Eval()
// shape (pkg/dwscript's Engine). Unlike the teacher's Engine, it holds
// no compiled program state of its own — this language has no
// type-checker or unit loader to configure (spec.md's Non-goals rule
// both out) — so Engine is just the holder of the options a Session
// needs to be built with (currently: a FileSystem).
type Engine struct {
	fs FileSystem
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithFileSystem supplies the capability backing the file_read and
// file_write intrinsics (spec.md §4.5, §6a) for every Session this
// Engine subsequently creates.
func WithFileSystem(fs FileSystem) Option {
	return func(e *Engine) { e.fs = fs }
}

// New builds an Engine. It never fails — unlike the teacher's New,
// which can error out of unit-path resolution, this language has no
// load-time configuration that can go wrong.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse compiles text to a reusable Program, per spec.md §6's
// parse_expression contract.
func (e *Engine) Parse(text string) (*Program, error) {
	expr, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Program{expr: expr}, nil
}

// NewSession starts a fresh evaluation session. With no seed argument
// the session's RNG stream is seeded from system entropy; with one,
// from the SHA-256 digest of the given bytes as they are, matching
// spec.md §6's "new_session(rng_seed?)" optional-seed contract.
func (e *Engine) NewSession(rngSeed ...[]byte) *Session {
	if len(rngSeed) > 0 {
		return newSession(e.fs, rngSeed[0])
	}
	return newSession(e.fs, nil)
}

// Eval parses and evaluates text in one step against a throwaway
// session seeded from system entropy — a convenience for callers who
// need neither program reuse nor a persistent RNG stream across calls.
func (e *Engine) Eval(text string) (Value, error) {
	program, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	sess := e.NewSession()
	return sess.Eval(program)
}
