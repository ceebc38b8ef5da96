// Package checker implements the proof-checking control flow of
// spec.md §4.5: replay a DIMACS formula into the clause registry, then
// replay a DRAT proof's Add/Del instructions, validating each Add via
// the AT/RAT protocol before it is admitted.
//
// The control flow is grounded in original_source/src/lib.rs's
// validate_from (pivot selection, ascending resolvent iteration,
// remove_level bracketing), translated from dataflow-input mutation to
// direct driver/registry calls.
package checker

import (
	"context"

	"go.uber.org/zap"

	"github.com/xDarkicex/dratcheck/clause"
	"github.com/xDarkicex/dratcheck/driver"
	"github.com/xDarkicex/dratcheck/engine"
	"github.com/xDarkicex/dratcheck/literal"
	"github.com/xDarkicex/dratcheck/registry"
)

// State names the phases of the AT/RAT protocol, with a String form for
// diagnostics. Run does not track or consult it.
type State int

const (
	// OpenClean is the state before any scratch assignment for the
	// current step has been introduced.
	OpenClean State = iota
	// OpenL1 is after the AT scratch (L1) has been added but not yet
	// committed.
	OpenL1
	// ClosedL1 is after the AT scratch committed closed: the step is AT.
	ClosedL1
	// OpenL1L2 is after a RAT resolvent's extra literals (L2) have been
	// added on top of an still-open L1.
	OpenL1L2
	// ClosedL1L2 is after a RAT resolvent's L2 scratch committed closed.
	ClosedL1L2
	// Terminal marks that Run has produced its final Outcome.
	Terminal
)

func (s State) String() string {
	switch s {
	case OpenClean:
		return "open-clean"
	case OpenL1:
		return "open-L1"
	case ClosedL1:
		return "closed-L1"
	case OpenL1L2:
		return "open-L1-L2"
	case ClosedL1L2:
		return "closed-L1-L2"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// FormulaReader yields the formula's clauses in order, per spec.md §5.
type FormulaReader interface {
	Next() (clause.Clause, bool, error)
}

// Instruction is a single proof step: an Add or, if Delete is set, a
// Del of Clause.
type Instruction struct {
	Delete bool
	Clause clause.Clause
}

// ProofReader yields the proof's instructions in order, per spec.md §5.
type ProofReader interface {
	Next() (Instruction, bool, error)
}

// Checker owns the registry, engine, and driver for one proof-checking
// run and replays a formula and proof against them.
type Checker struct {
	registry *registry.Registry
	driver   *driver.Driver
	log      *zap.Logger
}

// New builds a Checker with a fresh engine/registry/driver stack,
// logging diagnostics to log. A nil log is replaced with zap.NewNop().
func New(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	eng := engine.New()
	return &Checker{
		registry: registry.New(eng),
		driver:   driver.New(eng),
		log:      log,
	}
}

// loadFormula adds every clause fr yields to the registry. Per spec.md
// §9's open question, an empty formula clause short-circuits: it is
// trivially unsatisfiable, so the caller (Run) reports Validated without
// ever touching the proof. shortCircuit reports whether that fired.
func (c *Checker) loadFormula(fr FormulaReader) (shortCircuit bool, err error) {
	for {
		cl, ok, err := fr.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if cl.IsEmpty() {
			return true, nil
		}
		if _, err := c.registry.Add(cl); err != nil {
			return false, err
		}
	}
}

// Run replays the formula, then the proof, returning the terminal
// Outcome. ctx is checked once per proof instruction (not mid-commit),
// matching the teacher's pattern of threading context.Context through
// long operations without making the inner algorithm concurrent.
func (c *Checker) Run(ctx context.Context, fr FormulaReader, pr ProofReader) (Outcome, error) {
	shortCircuit, err := c.loadFormula(fr)
	if err != nil {
		return Outcome{}, err
	}
	if shortCircuit {
		c.log.Info("formula contains an empty clause, trivially unsat", zap.String("outcome", "Validated"))
		return Outcome{Kind: Validated}, nil
	}

	step := 0

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		instr, ok, err := pr.Next()
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			break
		}
		step++

		if instr.Delete {
			if err := c.registry.Del(instr.Clause); err != nil {
				return Outcome{}, err
			}
			c.log.Debug("committed delete instruction", zap.Int("step", step), zap.String("clause", instr.Clause.String()))
			continue
		}

		if instr.Clause.IsEmpty() {
			closed := c.checkAT(instr.Clause)
			c.driver.RemoveLevel(literal.LevelAT)
			if !closed {
				c.log.Info("empty-clause step failed to close under BCP", zap.Int("step", step))
				return Outcome{Kind: UnvalidatedConflictStep}, nil
			}
			c.log.Info("proof validated", zap.Int("step", step))
			return Outcome{Kind: Validated}, nil
		}

		validated := c.checkAT(instr.Clause)
		if !validated {
			validated = c.checkRAT(instr.Clause)
		}
		c.driver.RemoveLevel(literal.LevelAT)

		if !validated {
			c.log.Info("proof step failed AT and RAT", zap.Int("step", step), zap.String("clause", instr.Clause.String()))
			return Outcome{Kind: UnvalidatedRule, StepIndex: step, Clause: instr.Clause}, nil
		}

		if _, err := c.registry.Add(instr.Clause); err != nil {
			return Outcome{}, err
		}
		c.log.Debug("committed add instruction", zap.Int("step", step), zap.String("clause", instr.Clause.String()))
	}

	c.log.Info("proof exhausted without a conflict step")
	return Outcome{Kind: NoConflictStep}, nil
}

// checkAT asserts the negation of cl's literals at L1 and commits,
// reporting whether the result closed (cl is Asymmetric Tautology).
// The caller is responsible for removing L1 afterward.
func (c *Checker) checkAT(cl clause.Clause) bool {
	for _, l := range cl.Literals() {
		c.driver.AddScratch(l.Negate(), literal.LevelAT)
	}
	return c.driver.Commit()
}

// checkRAT tries every RAT resolvent of cl against the pivot (cl's first
// literal), in ascending clause-id order (spec.md §4.5's determinism
// rule). It returns true only if every resolvent is AT.
func (c *Checker) checkRAT(cl clause.Clause) bool {
	pivot := cl.Pivot()
	resolvents := c.registry.ClausesContaining(pivot.Negate())

	for _, id := range resolvents {
		dLits := c.registry.LiteralsOf(id)
		if dLits == nil {
			// Defensive: the registry is not modified while resolvents are
			// checked, so every captured id is still live; a missing one
			// would be skipped, not treated as an error.
			continue
		}
		c.addResolventScratch(cl, dLits, pivot)
		closed := c.driver.Commit()
		c.driver.RemoveLevel(literal.LevelRAT)
		if !closed {
			return false
		}
	}
	return true
}

// addResolventScratch asserts the negation of (cl ∪ d) \ {pivot, ¬pivot}
// at L2.
func (c *Checker) addResolventScratch(cl clause.Clause, dLits []literal.Literal, pivot literal.Literal) {
	for _, l := range cl.Literals() {
		if l == pivot {
			continue
		}
		c.driver.AddScratch(l.Negate(), literal.LevelRAT)
	}
	for _, l := range dLits {
		if l == pivot.Negate() {
			continue
		}
		c.driver.AddScratch(l.Negate(), literal.LevelRAT)
	}
}
