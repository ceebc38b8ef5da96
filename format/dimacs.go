package format

import (
	"io"

	"github.com/xDarkicex/dratcheck"
	"github.com/xDarkicex/dratcheck/clause"
)

// CNF pulls the formula clauses of a DIMACS CNF file lazily, one at a
// time, per spec.md §5's "parser yields an ordered sequence of clauses"
// contract. It reads and validates the "p cnf <nvars> <nclauses>" header
// eagerly (there is nowhere else to get nclauses from), then reads each
// clause body on demand.
type CNF struct {
	sc       *scanner
	nclauses int
	index    int
	nvars    int
}

// NewCNF opens a CNF reader over r, consuming comment lines and the
// header before returning.
func NewCNF(r io.Reader) (*CNF, error) {
	sc := newScanner(r, true)
	if err := sc.expectLiteral("p"); err != nil {
		return nil, err
	}
	if err := sc.expectLiteral("cnf"); err != nil {
		return nil, err
	}
	nvars, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	nclauses, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	return &CNF{sc: sc, nclauses: int(nclauses), nvars: int(nvars)}, nil
}

// NumVars returns the declared variable count from the header.
func (c *CNF) NumVars() int {
	return c.nvars
}

// NumClauses returns the declared clause count from the header.
func (c *CNF) NumClauses() int {
	return c.nclauses
}

// Next returns the next formula clause, or ok=false once the declared
// clause count has been read. It returns a *dratcheck.MalformedInputError
// if the stream ends before the declared count, or a clause body fails
// to parse.
func (c *CNF) Next() (cl clause.Clause, ok bool, err error) {
	if c.index == c.nclauses {
		return clause.Clause{}, false, nil
	}
	if !c.sc.hasNext() {
		return clause.Clause{}, false, &dratcheck.MalformedInputError{
			Line:   c.sc.Line(),
			Detail: "formula ended before declared clause count was reached",
		}
	}
	line := c.sc.Line()
	lits, err := readLiteralList(c.sc)
	if err != nil {
		return clause.Clause{}, false, err
	}
	cl, err = sanitize(lits, line)
	if err != nil {
		return clause.Clause{}, false, err
	}
	c.index++
	return cl, true, nil
}
