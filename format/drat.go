package format

import (
	"io"

	"github.com/xDarkicex/dratcheck/clause"
)

// Instruction is a single step of a DRAT proof: either the addition or
// the deletion of Clause, per spec.md §6's proof grammar.
type Instruction struct {
	Delete bool
	Clause clause.Clause
}

// Proof pulls the instructions of a DRAT proof lazily, one at a time.
// There is no header; end-of-stream terminates the proof (spec.md §6).
type Proof struct {
	sc    *scanner
	index int
}

// NewProof opens a Proof reader over r.
func NewProof(r io.Reader) *Proof {
	return &Proof{sc: newScanner(r, false)}
}

// Next returns the next instruction, or ok=false once the proof stream
// is exhausted.
func (p *Proof) Next() (instr Instruction, ok bool, err error) {
	if !p.sc.hasNext() {
		return Instruction{}, false, nil
	}
	line := p.sc.Line()
	isDelete := p.sc.skipLiteral("d")
	lits, err := readLiteralList(p.sc)
	if err != nil {
		return Instruction{}, false, err
	}
	cl, err := sanitize(lits, line)
	if err != nil {
		return Instruction{}, false, err
	}
	p.index++
	return Instruction{Delete: isDelete, Clause: cl}, true, nil
}
