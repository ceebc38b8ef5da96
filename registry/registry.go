// Package registry implements the authoritative store of currently-live
// clauses described in spec.md §4.2: indexed by id, by canonical
// literal-sorted key (for Del), and by literal membership (for RAT's
// "clauses containing the negation of the pivot" query). Every Add/Del
// is mirrored into a Sink — normally an *engine.Engine — as (id, literal)
// tuple additions or withdrawals.
package registry

import (
	"fmt"

	"github.com/xDarkicex/dratcheck/clause"
	"github.com/xDarkicex/dratcheck/literal"
)

// Sink receives the (clause-id, literal) tuple deltas a Registry produces.
// It is deliberately narrow — the registry never imports package engine —
// mirroring the teacher's narrow Solver/Preprocessor interfaces in
// sat/interfaces.go that decouple orchestration from a concrete engine.
type Sink interface {
	AddClauseTuples(id literal.ClauseID, lits []literal.Literal)
	RemoveClauseTuples(id literal.ClauseID)
}

// DuplicateClauseError is returned by Add when a clause with the same
// canonical literal set is already live.
type DuplicateClauseError struct {
	Clause clause.Clause
}

func (e *DuplicateClauseError) Error() string {
	return fmt.Sprintf("duplicate clause add: %s", e.Clause)
}

// MissingClauseError is returned by Del when no live clause matches the
// canonical form of the requested clause. Per spec.md §4.2, this is
// fatal: "the proof is malformed, not the checker."
type MissingClauseError struct {
	Clause clause.Clause
}

func (e *MissingClauseError) Error() string {
	return fmt.Sprintf("delete of clause not present: %s", e.Clause)
}

// Registry is the clause registry of spec.md §4.2.
type Registry struct {
	sink Sink

	byID     map[literal.ClauseID]clause.Clause
	byCanon  map[string]literal.ClauseID
	byLit    map[literal.Literal]map[literal.ClauseID]struct{}
	counter  literal.ClauseID
}

// New creates an empty registry reporting tuple deltas to sink.
func New(sink Sink) *Registry {
	return &Registry{
		sink:    sink,
		byID:    make(map[literal.ClauseID]clause.Clause),
		byCanon: make(map[string]literal.ClauseID),
		byLit:   make(map[literal.Literal]map[literal.ClauseID]struct{}),
	}
}

// Add allocates the next clause-id, records it in all three indexes, and
// emits the clause's (id, literal) tuples into the sink. It fails with
// *DuplicateClauseError if the canonical form is already present.
func (r *Registry) Add(c clause.Clause) (literal.ClauseID, error) {
	canon := c.Canon()
	if _, exists := r.byCanon[canon]; exists {
		return 0, &DuplicateClauseError{Clause: c}
	}

	r.counter++
	id := r.counter

	r.byID[id] = c
	r.byCanon[canon] = id

	lits := c.Literals()
	for _, l := range lits {
		set, ok := r.byLit[l]
		if !ok {
			set = make(map[literal.ClauseID]struct{})
			r.byLit[l] = set
		}
		set[id] = struct{}{}
	}

	r.sink.AddClauseTuples(id, lits)
	return id, nil
}

// Del canonicalises c, looks up its clause-id, removes it from all three
// indexes, and withdraws its tuples from the sink. A miss is fatal
// per spec.md §4.2 and is reported as *MissingClauseError.
func (r *Registry) Del(c clause.Clause) error {
	canon := c.Canon()
	id, ok := r.byCanon[canon]
	if !ok {
		return &MissingClauseError{Clause: c}
	}

	stored := r.byID[id]
	delete(r.byID, id)
	delete(r.byCanon, canon)
	for _, l := range stored.Literals() {
		if set, ok := r.byLit[l]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(r.byLit, l)
			}
		}
	}

	r.sink.RemoveClauseTuples(id)
	return nil
}

// ClausesContaining returns, in ascending clause-id order, the ids of
// every live clause containing lit. Ascending order is spec.md §4.5's
// determinism rule for RAT resolvent iteration.
func (r *Registry) ClausesContaining(lit literal.Literal) []literal.ClauseID {
	set := r.byLit[lit]
	ids := make([]literal.ClauseID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortClauseIDs(ids)
	return ids
}

// LiteralsOf returns the literals of the live clause id, or nil if id is
// not currently live.
func (r *Registry) LiteralsOf(id literal.ClauseID) []literal.Literal {
	c, ok := r.byID[id]
	if !ok {
		return nil
	}
	return c.Literals()
}

// Len returns the number of currently live clauses.
func (r *Registry) Len() int {
	return len(r.byID)
}

func sortClauseIDs(ids []literal.ClauseID) {
	// Insertion sort: RAT resolvent lists are small (bounded by the
	// occurrence count of a single pivot literal), so this avoids
	// pulling in sort.Slice's reflection overhead for the common case.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
