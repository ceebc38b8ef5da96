// Package literal defines the value types shared by every layer of the
// checker: a propositional literal and the opaque identifier the clause
// registry assigns to live clauses.
package literal

import "strconv"

// Literal is a nonzero signed integer encoding a propositional variable
// (positive) or its negation (negative), matching DIMACS CNF/DRAT syntax
// directly. The zero value is never a valid literal.
type Literal int32

// Negate returns the complement of l. Negate(Negate(l)) == l.
func (l Literal) Negate() Literal {
	return -l
}

// Var returns the unsigned variable index underlying l.
func (l Literal) Var() int32 {
	if l < 0 {
		return int32(-l)
	}
	return int32(l)
}

// Positive reports whether l is the unnegated form of its variable.
func (l Literal) Positive() bool {
	return l > 0
}

// Compare orders literals by (|l|, sign) so that a literal sorts
// immediately next to its negation, with the positive form first.
func (l Literal) Compare(other Literal) int {
	av, bv := l.Var(), other.Var()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	case l == other:
		return 0
	case l.Positive():
		return -1
	default:
		return 1
	}
}

// String renders l using DIMACS integer syntax.
func (l Literal) String() string {
	return strconv.FormatInt(int64(l), 10)
}

// ClauseID is an opaque, monotonically allocated identifier for a live
// clause. Zero is never allocated, so it is safe to use as a sentinel for
// "no clause".
type ClauseID uint32

// String renders the identifier for diagnostics.
func (id ClauseID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Level tags an assigned literal with the scope that introduced it.
// L0 never labels a scratch assignment (see LevelBase below).
type Level uint8

const (
	// LevelBase is the permanent level. No scratch assignment is made at
	// LevelBase; it tags literals implied by BCP from clauses whose other
	// literals are all falsified at LevelBase (formula unit clauses, for
	// one), and it is group-max's base case for clauses with no falsified
	// literals.
	LevelBase Level = iota
	// LevelAT tags the negated literals of the clause currently under
	// an Asymmetric Tautology check.
	LevelAT
	// LevelRAT tags the extra literals added during a single RAT
	// resolvent sub-check.
	LevelRAT
)

// String renders the level name for diagnostics.
func (lv Level) String() string {
	switch lv {
	case LevelBase:
		return "L0"
	case LevelAT:
		return "L1"
	case LevelRAT:
		return "L2"
	default:
		return "L?"
	}
}

// Max returns the larger of two levels under the L0 < L1 < L2 ordering.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
