// Package driver implements the propagation driver of spec.md §4.4: it
// feeds conjectural literals into the engine, runs BCP to a fixpoint, and
// reports whether the result is open or closed. It is a thin
// orchestration layer — the narrow boundary between package checker and
// package engine, in the same structural role the teacher's
// sat.DecisionTrail interface plays between a search loop and trail
// state (sat/interfaces.go).
package driver

import (
	"github.com/xDarkicex/dratcheck/literal"
)

// Engine is the subset of *engine.Engine the driver depends on. Declared
// here (rather than imported as a concrete type) so package driver, like
// package registry, never couples its callers to one engine
// implementation.
type Engine interface {
	AddAssignment(lit literal.Literal, lv literal.Level)
	Quiesce() (closed bool)
	RemoveLevel(lv literal.Level)
	RevertSet(lv literal.Level) []literal.Literal
}

// Driver wraps an Engine with the add_scratch/commit/remove_level
// vocabulary. Scratch literals are removed a whole level at a time;
// there is no per-literal remove_scratch.
type Driver struct {
	engine Engine
}

// New wraps engine in a Driver.
func New(engine Engine) *Driver {
	return &Driver{engine: engine}
}

// AddScratch asserts lit true at level lv, per spec.md §4.4's
// add_scratch(literal, level).
func (d *Driver) AddScratch(lit literal.Literal, lv literal.Level) {
	d.engine.AddAssignment(lit, lv)
}

// Commit runs the engine to quiescence, returning true if the result is
// closed (a conflict was produced). Commit is idempotent on a closed
// state: calling it again with no new scratch input repeats the same
// verdict without side effects, since Quiesce short-circuits once
// e.closed is already latched.
func (d *Driver) Commit() (closed bool) {
	return d.engine.Quiesce()
}

// RemoveLevel unwinds every literal recorded at level lv and clears
// revert[lv], per spec.md §4.5's remove_level. After this call the
// engine is open.
func (d *Driver) RemoveLevel(lv literal.Level) {
	d.engine.RemoveLevel(lv)
}
