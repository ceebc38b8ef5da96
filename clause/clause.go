// Package clause implements the immutable clause value type described in
// spec.md §3: a list of literals, possibly empty (the empty clause is a
// DRAT proof's refutation target), plus the canonical sorted form the
// registry uses to look up a Del instruction's target. The type itself
// does not reject duplicate or complementary literals.
package clause

import (
	"sort"
	"strings"

	"github.com/xDarkicex/dratcheck/literal"
)

// Clause is an immutable disjunction of literals. The zero value is the
// empty clause, equivalent to New(nil).
type Clause struct {
	literals []literal.Literal
}

// New builds a Clause from lits, preserving the caller's order (the proof
// checker cares about the order — spec.md §4.5 fixes the pivot as the
// first literal supplied). New does not sanitize; callers that need
// duplicate/tautology rejection should sanitize at parse time, per
// DESIGN.md's resolution of spec.md §9's open question.
func New(lits []literal.Literal) Clause {
	cp := make([]literal.Literal, len(lits))
	copy(cp, lits)
	return Clause{literals: cp}
}

// Literals returns the clause's literals in their original order. The
// returned slice is a defensive copy.
func (c Clause) Literals() []literal.Literal {
	cp := make([]literal.Literal, len(c.literals))
	copy(cp, c.literals)
	return cp
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int {
	return len(c.literals)
}

// IsEmpty reports whether the clause has no literals (the refutation
// target of a DRAT proof).
func (c Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// Pivot returns the first literal of the clause, used as the RAT pivot
// per spec.md §4.5's tie-breaking rule. Pivot panics on an empty clause;
// callers must check IsEmpty first, since the empty clause never takes
// the AT/RAT path.
func (c Clause) Pivot() literal.Literal {
	return c.literals[0]
}

// Contains reports whether lit appears in the clause.
func (c Clause) Contains(lit literal.Literal) bool {
	for _, l := range c.literals {
		if l == lit {
			return true
		}
	}
	return false
}

// HasDuplicate reports whether any literal occurs more than once.
func (c Clause) HasDuplicate() bool {
	seen := make(map[literal.Literal]struct{}, len(c.literals))
	for _, l := range c.literals {
		if _, ok := seen[l]; ok {
			return true
		}
		seen[l] = struct{}{}
	}
	return false
}

// IsTautology reports whether the clause contains both a literal and its
// negation.
func (c Clause) IsTautology() bool {
	seen := make(map[literal.Literal]struct{}, len(c.literals))
	for _, l := range c.literals {
		seen[l] = struct{}{}
	}
	for _, l := range c.literals {
		if _, ok := seen[l.Negate()]; ok {
			return true
		}
	}
	return false
}

// Canon returns the canonical form used as a registry lookup key: the
// literals sorted by literal.Literal.Compare, joined into a string. Two
// clauses with the same literal set (regardless of input order) share a
// canonical key, which is how Del locates the clause-id to remove.
func (c Clause) Canon() string {
	sorted := c.Literals()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	var b strings.Builder
	for i, l := range sorted {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// String renders the clause in DIMACS syntax: literals separated by
// single spaces, terminated by "0" — the exact format spec.md §6
// requires for the "Proof step {i} not validated:" message.
func (c Clause) String() string {
	var b strings.Builder
	for _, l := range c.literals {
		b.WriteString(l.String())
		b.WriteByte(' ')
	}
	b.WriteByte('0')
	return b.String()
}
