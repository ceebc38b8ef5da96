// Package engine implements the incremental derivation engine of
// spec.md §4.3: a monotone, difference-driven maintenance of the
// lit_conflict, rule_conflict, units, and revert views over two inputs —
// live (clause-id, literal) pairs and (literal, level) assignments.
//
// It is a hand-rolled occurrence-list engine rather than a generic
// dataflow library, per spec.md §9's explicit sanction of that
// alternative; see DESIGN.md for the full grounding rationale. Assigning
// a literal only touches the occurrence lists of that literal and its
// negation, so each propagation round costs time proportional to the
// size of the input delta rather than the live clause count.
package engine

import "github.com/xDarkicex/dratcheck/literal"

// unitCandidate records a round's tentative implied literal before
// group-min reduction: when several clauses go unit on the same literal
// in the same round, the minimum falsifying level wins (spec.md §4.3
// item 9).
type unitCandidate struct {
	level literal.Level
}

// Engine maintains the derived views of spec.md §4.3 over the clause-
// tuple and assignment inputs fed to it by a registry.Registry (via
// AddClauseTuples/RemoveClauseTuples) and a driver.Driver (via
// AddAssignment/RemoveLevel/Quiesce).
type Engine struct {
	liveClauses    map[literal.ClauseID]struct{}
	clauseLiterals map[literal.ClauseID][]literal.Literal
	literalIndex   map[literal.Literal][]literal.ClauseID

	satCount map[literal.ClauseID]int
	residual map[literal.ClauseID]map[literal.Literal]struct{}
	maxLevel map[literal.ClauseID]literal.Level

	assignment map[literal.Literal]literal.Level
	revert     map[literal.Level]map[literal.Literal]struct{}
	pending    map[literal.Literal]unitCandidate

	closed         bool
	conflictIsLit  bool
	conflictIsRule bool
	litConflict    literal.Literal
	ruleConflict   literal.ClauseID
}

// New returns an empty engine with no live clauses and no assignment.
func New() *Engine {
	return &Engine{
		liveClauses:    make(map[literal.ClauseID]struct{}),
		clauseLiterals: make(map[literal.ClauseID][]literal.Literal),
		literalIndex:   make(map[literal.Literal][]literal.ClauseID),
		satCount:       make(map[literal.ClauseID]int),
		residual:       make(map[literal.ClauseID]map[literal.Literal]struct{}),
		maxLevel:       make(map[literal.ClauseID]literal.Level),
		assignment:     make(map[literal.Literal]literal.Level),
		revert:         make(map[literal.Level]map[literal.Literal]struct{}),
		pending:        make(map[literal.Literal]unitCandidate),
	}
}

// AddClauseTuples registers id's literals as a live clause and folds in
// the current assignment's effect on it. This implements registry.Sink.
func (e *Engine) AddClauseTuples(id literal.ClauseID, lits []literal.Literal) {
	cp := make([]literal.Literal, len(lits))
	copy(cp, lits)

	e.liveClauses[id] = struct{}{}
	e.clauseLiterals[id] = cp

	res := make(map[literal.Literal]struct{}, len(cp))
	for _, l := range cp {
		e.literalIndex[l] = append(e.literalIndex[l], id)
		res[l] = struct{}{}
	}
	e.residual[id] = res
	e.satCount[id] = 0
	e.maxLevel[id] = literal.LevelBase

	for _, l := range cp {
		if _, ok := e.assignment[l]; ok {
			e.satCount[id]++
			continue
		}
		if lv, ok := e.assignment[l.Negate()]; ok {
			delete(res, l)
			e.maxLevel[id] = literal.Max(e.maxLevel[id], lv)
		}
	}
	if e.satCount[id] == 0 {
		switch len(res) {
		case 0:
			e.closed = true
			e.conflictIsRule = true
			e.ruleConflict = id
		case 1:
			e.recordCandidate(soleMember(res), e.maxLevel[id])
		}
	}
}

// RemoveClauseTuples withdraws id's literals from rule_index and every
// derived view. This implements registry.Sink.
func (e *Engine) RemoveClauseTuples(id literal.ClauseID) {
	lits, ok := e.clauseLiterals[id]
	if !ok {
		return
	}
	for _, l := range lits {
		e.literalIndex[l] = removeID(e.literalIndex[l], id)
		if len(e.literalIndex[l]) == 0 {
			delete(e.literalIndex, l)
		}
	}
	delete(e.liveClauses, id)
	delete(e.clauseLiterals, id)
	delete(e.residual, id)
	delete(e.satCount, id)
	delete(e.maxLevel, id)

	if e.conflictIsRule && e.ruleConflict == id {
		e.conflictIsRule = false
		e.closed = e.conflictIsLit
	}
}

func removeID(ids []literal.ClauseID, target literal.ClauseID) []literal.ClauseID {
	for i, id := range ids {
		if id == target {
			ids[i] = ids[len(ids)-1]
			return ids[:len(ids)-1]
		}
	}
	return ids
}

func soleMember(set map[literal.Literal]struct{}) literal.Literal {
	for l := range set {
		return l
	}
	return 0
}

// recordCandidate applies group-min reduction for the (lit, lv) unit
// candidate discovered this round.
func (e *Engine) recordCandidate(lit literal.Literal, lv literal.Level) {
	if _, ok := e.assignment[lit]; ok {
		return
	}
	if cur, ok := e.pending[lit]; !ok || lv < cur.level {
		e.pending[lit] = unitCandidate{level: lv}
	}
}

// AddAssignment is the propagation driver's add_scratch primitive: it
// asserts lit true at level lv. If lit is already assigned the call is a
// no-op (idempotent). If the complementary literal is already assigned,
// this latches lit_conflict.
func (e *Engine) AddAssignment(lit literal.Literal, lv literal.Level) {
	e.setLiteral(lit, lv)
}

func (e *Engine) setLiteral(lit literal.Literal, lv literal.Level) {
	if _, ok := e.assignment[lit]; ok {
		return
	}
	e.assignment[lit] = lv
	set, ok := e.revert[lv]
	if !ok {
		set = make(map[literal.Literal]struct{})
		e.revert[lv] = set
	}
	set[lit] = struct{}{}

	if _, ok := e.assignment[lit.Negate()]; ok {
		e.closed = true
		e.conflictIsLit = true
		e.litConflict = lit
	}

	// lit satisfies every clause that mentions it.
	for _, id := range e.literalIndex[lit] {
		e.satCount[id]++
	}

	// lit falsifies its negation wherever that appears.
	neg := lit.Negate()
	for _, id := range e.literalIndex[neg] {
		if e.satCount[id] != 0 {
			continue
		}
		res := e.residual[id]
		delete(res, neg)
		e.maxLevel[id] = literal.Max(e.maxLevel[id], lv)

		switch len(res) {
		case 0:
			e.closed = true
			e.conflictIsRule = true
			e.ruleConflict = id
		case 1:
			e.recordCandidate(soleMember(res), e.maxLevel[id])
		}
	}
}

// Quiesce runs the units-to-assignment feedback loop (spec.md §4.3's
// "feed-back") until either no new units are produced (open) or a
// conflict view becomes non-empty (closed), returning true for closed.
// It is idempotent once quiescent: calling it again with no new pending
// input is a no-op that returns the same verdict.
func (e *Engine) Quiesce() (closed bool) {
	for !e.closed {
		if len(e.pending) == 0 {
			return false
		}
		batch := e.pending
		e.pending = make(map[literal.Literal]unitCandidate)
		for lit, cand := range batch {
			if e.closed {
				// Keep the unprocessed rest of the batch for after the
				// conflict's level is removed.
				e.recordCandidate(lit, cand.level)
				continue
			}
			if _, ok := e.assignment[lit]; ok {
				continue
			}
			e.setLiteral(lit, cand.level)
		}
	}
	return true
}

// RemoveLevel unwinds every literal currently recorded in revert[lv],
// restoring the engine to the state it was in before that level's
// scratch assignment was introduced, and clears revert[lv]. Per
// spec.md §4.5, the engine is open afterward — this is a protocol
// invariant upheld by the checker's call discipline (a level is only
// ever removed once its own scratch-driven effects, and nothing else,
// could be responsible for the current conflict), not re-verified here.
func (e *Engine) RemoveLevel(lv literal.Level) {
	set := e.revert[lv]
	e.closed = false
	e.conflictIsLit = false
	e.conflictIsRule = false
	for lit := range set {
		delete(e.assignment, lit)
		e.undoAssignment(lit)
	}
	delete(e.revert, lv)
	// Candidates at lv or above may rest on literals just removed; lower
	// ones still hold.
	for lit, cand := range e.pending {
		if cand.level >= lv {
			delete(e.pending, lit)
		}
	}
}

// undoAssignment reverses the occurrence-list effects of lit's
// assignment. A clause that lit no longer satisfies gets its residual
// rebuilt, since residuals are not updated while a clause is satisfied.
// When either that or restoring a falsified literal leaves a clause's
// residual a fresh singleton, that candidate is re-recorded — a ground
// unit clause whose derivation was shadowed by the scratch assignment
// being undone must not be lost, or the engine would under-propagate
// for the rest of the run.
func (e *Engine) undoAssignment(lit literal.Literal) {
	for _, id := range e.literalIndex[lit] {
		e.satCount[id]--
		if e.satCount[id] != 0 {
			continue
		}
		res := make(map[literal.Literal]struct{}, len(e.clauseLiterals[id]))
		for _, l := range e.clauseLiterals[id] {
			if _, ok := e.assignment[l.Negate()]; !ok {
				res[l] = struct{}{}
			}
		}
		e.residual[id] = res
		e.maxLevel[id] = e.recomputeMaxLevel(id)
		if len(res) == 1 {
			e.recordCandidate(soleMember(res), e.maxLevel[id])
		}
	}

	neg := lit.Negate()
	for _, id := range e.literalIndex[neg] {
		if e.satCount[id] != 0 {
			continue
		}
		res := e.residual[id]
		res[neg] = struct{}{}
		e.maxLevel[id] = e.recomputeMaxLevel(id)
		if len(res) == 1 {
			e.recordCandidate(soleMember(res), e.maxLevel[id])
		}
	}
}

// recomputeMaxLevel rescans clause id's literals to restore the
// level_per_clause value (spec.md §4.3 item 7) after a falsifying
// literal has been unassigned. Bounded by the clause's own size.
func (e *Engine) recomputeMaxLevel(id literal.ClauseID) literal.Level {
	lv := literal.LevelBase
	for _, l := range e.clauseLiterals[id] {
		if assignedLv, ok := e.assignment[l.Negate()]; ok {
			lv = literal.Max(lv, assignedLv)
		}
	}
	return lv
}

// Closed reports whether the engine is currently latched into a
// conflict state (lit_conflict or rule_conflict non-empty).
func (e *Engine) Closed() bool {
	return e.closed
}

// RevertSet returns a defensive copy of the literals currently recorded
// at level lv.
func (e *Engine) RevertSet(lv literal.Level) []literal.Literal {
	set := e.revert[lv]
	out := make([]literal.Literal, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out
}

// LiveClauseCount returns the number of clauses currently in rule_index,
// for diagnostics and property tests.
func (e *Engine) LiveClauseCount() int {
	return len(e.liveClauses)
}

// IsAssigned reports whether lit is currently in the assignment, and if
// so at which level.
func (e *Engine) IsAssigned(lit literal.Literal) (literal.Level, bool) {
	lv, ok := e.assignment[lit]
	return lv, ok
}
