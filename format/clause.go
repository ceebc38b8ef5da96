package format

import (
	"fmt"

	"github.com/xDarkicex/dratcheck"
	"github.com/xDarkicex/dratcheck/clause"
	"github.com/xDarkicex/dratcheck/literal"
)

// readLiteralList reads a 0-terminated sequence of nonzero signed
// integers, per spec.md §6's clause body grammar shared by CNF clauses
// and DRAT instructions.
func readLiteralList(s *scanner) ([]literal.Literal, error) {
	var lits []literal.Literal
	for {
		n, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return lits, nil
		}
		lits = append(lits, literal.Literal(n))
	}
}

// sanitize builds a clause.Clause from lits, resolving spec.md §9's open
// question on tautological/duplicate-literal input: duplicates are
// dropped silently, a tautology (ℓ and ¬ℓ both present) is rejected as
// malformed input (see DESIGN.md).
func sanitize(lits []literal.Literal, line int) (clause.Clause, error) {
	c := clause.New(lits)
	if c.IsTautology() {
		return clause.Clause{}, &dratcheck.MalformedInputError{Line: line, Detail: fmt.Sprintf("tautological clause: %s", c)}
	}
	if !c.HasDuplicate() {
		return c, nil
	}
	seen := make(map[literal.Literal]struct{}, c.Len())
	deduped := make([]literal.Literal, 0, c.Len())
	for _, l := range c.Literals() {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		deduped = append(deduped, l)
	}
	return clause.New(deduped), nil
}
