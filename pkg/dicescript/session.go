package dicescript

import (
	"context"

	"github.com/dicescript/dicescript/internal/builtins"
	"github.com/dicescript/dicescript/internal/evaluator"
	"github.com/dicescript/dicescript/internal/rng"
	"github.com/dicescript/dicescript/internal/runtime"
)

// Session is one evaluation context: a global scope and the RNG stream
// dice draws and seed()/save()/restore() act on (spec.md §5 — "the RNG
// is engine-local state owned by the session; it is not shared across
// sessions"). A Session is not safe for concurrent use from multiple
// goroutines, the same way the teacher's pkg/dwscript Engine is not.
type Session struct {
	env  *runtime.Environment
	eval *evaluator.Evaluator
}

func newSession(fs FileSystem, seed []byte) *Session {
	var src *rng.Source
	if seed != nil {
		src = rng.NewFromSeedBytes(seed)
	} else {
		src = rng.NewFromEntropy()
	}
	return &Session{
		env:  evaluator.NewGlobalEnvironment(),
		eval: evaluator.New(src, fs),
	}
}

// Eval evaluates a previously parsed Program against this session's
// global scope, per spec.md §6's Session.eval contract. It is
// equivalent to EvalContext(context.Background(), program).
func (s *Session) Eval(program *Program) (Value, error) {
	return s.EvalContext(context.Background(), program)
}

// EvalContext is Eval with cancellation: ctx is checked at block
// boundaries and before each dice draw (spec.md §5), so a long-running
// evaluation — an unbounded repeat count, say — can be aborted from the
// host side without killing the process.
func (s *Session) EvalContext(ctx context.Context, program *Program) (Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.eval.Eval(ctx, program.expr, s.env)
}

// EvalString parses and evaluates text in one step against this
// session's global scope. Prefer Engine.Parse + Session.Eval when the
// same program will be evaluated more than once.
func (s *Session) EvalString(text string) (Value, error) {
	program, err := ParseExpression(text)
	if err != nil {
		return nil, err
	}
	return s.Eval(program)
}

// Bind defines name in the session's global scope, making it visible
// to every subsequent evaluation as a bare identifier — the embedding
// API's equivalent of spec.md §4.3's `let`, applied at the outermost
// frame rather than from within a script.
func (s *Session) Bind(name string, v Value) {
	s.env.Define(name, v)
}

// Lookup resolves name in the session's global scope, reporting
// whether it is bound at all.
func (s *Session) Lookup(name string) (Value, bool) {
	return s.env.Get(name)
}

// RNGSave captures the session's RNG stream state as an opaque Value,
// suitable for storage and later replay via RNGRestore — the same
// snapshot shape the save() intrinsic produces (spec.md §4.4), exposed
// to hosts that need to persist a session across a process restart.
func (s *Session) RNGSave() (Value, error) {
	fn, _ := builtins.Lookup("save")
	return fn(&builtins.Call{RNG: s.eval.RNG})
}

// RNGRestore replaces the session's RNG stream state with a snapshot
// previously produced by RNGSave or the save() intrinsic.
func (s *Session) RNGRestore(snapshot Value) error {
	fn, _ := builtins.Lookup("restore")
	_, err := fn(&builtins.Call{RNG: s.eval.RNG, Args: []Value{snapshot}})
	return err
}
