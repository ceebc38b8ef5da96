package checker

import (
	"fmt"

	"github.com/xDarkicex/dratcheck/clause"
)

// Kind enumerates the four terminal outcomes of spec.md §4.5/§7, mirroring
// the Status-byte/Result enum idiom the pack's other SAT-domain CLIs use
// (CptPie-DPLL-solver's solver.Result, JaredSoftEng-ginipre's
// Preprocessor.Status).
type Kind int

const (
	// Validated means every proof step checked out and a conflict step
	// was found.
	Validated Kind = iota
	// UnvalidatedConflictStep means the proof's empty-clause step did not
	// close under BCP.
	UnvalidatedConflictStep
	// UnvalidatedRule means a non-empty Add step validated neither AT
	// nor RAT.
	UnvalidatedRule
	// NoConflictStep means every step validated but the proof never
	// added the empty clause.
	NoConflictStep
)

// Outcome is the terminal result of a checker run.
type Outcome struct {
	Kind Kind
	// StepIndex and Clause are populated only for UnvalidatedRule, naming
	// the offending proof step as spec.md §6 requires.
	StepIndex int
	Clause    clause.Clause
}

// String renders the exact stdout message spec.md §6 specifies for each
// outcome.
func (o Outcome) String() string {
	switch o.Kind {
	case Validated:
		return "Proof validated"
	case UnvalidatedConflictStep:
		return "Conflict not validated"
	case NoConflictStep:
		return "All proof steps validated, but no conflict step exists"
	case UnvalidatedRule:
		return fmt.Sprintf("Proof step %d not validated:\n%s", o.StepIndex, o.Clause)
	default:
		return "unknown outcome"
	}
}

// ExitCode returns the process exit code spec.md §6 assigns to this
// outcome: 0 for Validated, 1 for anything else.
func (o Outcome) ExitCode() int {
	if o.Kind == Validated {
		return 0
	}
	return 1
}
