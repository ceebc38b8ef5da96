package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/dratcheck/literal"
)

func TestAddClauseTuplesDetectsImmediateConflict(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1, 2})
	e.AddAssignment(literal.Literal(-1), literal.LevelAT)
	e.AddClauseTuples(2, []literal.Literal{1})

	// Clause 2 contains 1, which is falsified by the existing assignment
	// of -1, and has no other literal: it must register as a conflict
	// once quiesced.
	require.True(t, e.Quiesce())
}

func TestUnitPropagationClosesOnTwoUnitClauses(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1})
	e.AddClauseTuples(2, []literal.Literal{-1})

	require.True(t, e.Quiesce(), "two complementary unit clauses must close under BCP")
}

func TestQuiesceIsOpenWithNoPendingUnits(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1, 2})
	require.False(t, e.Quiesce())
}

func TestQuiesceIsIdempotentOnceClosed(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1})
	e.AddClauseTuples(2, []literal.Literal{-1})
	require.True(t, e.Quiesce())
	require.True(t, e.Quiesce(), "repeating Quiesce with no new input must not change the verdict")
}

func TestRemoveLevelUndoesAssignmentsAndReopens(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1})
	e.AddClauseTuples(2, []literal.Literal{-1})
	require.True(t, e.Quiesce())

	// Whichever level the conflict-producing assignment landed on, undo it.
	for _, lv := range []literal.Level{literal.LevelBase, literal.LevelAT, literal.LevelRAT} {
		e.RemoveLevel(lv)
	}

	require.False(t, e.Closed())
	require.Equal(t, 2, e.LiveClauseCount())
}

func TestRemoveClauseTuplesWithdrawsOccurrences(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1, 2})
	require.Equal(t, 1, e.LiveClauseCount())

	e.RemoveClauseTuples(1)
	require.Equal(t, 0, e.LiveClauseCount())

	_, assigned := e.IsAssigned(1)
	require.False(t, assigned)
}

func TestUnitPropagationCascadesThroughOccurrenceLists(t *testing.T) {
	e := New()
	e.AddClauseTuples(1, []literal.Literal{1, 2, 3})
	e.AddAssignment(literal.Literal(-1), literal.LevelAT)
	e.AddAssignment(literal.Literal(-2), literal.LevelAT)
	require.False(t, e.Quiesce())

	lv, assigned := e.IsAssigned(3)
	require.True(t, assigned, "clause 1 became unit on 3 and must be implied by BCP")
	require.Equal(t, literal.LevelAT, lv)

	e.AddClauseTuples(2, []literal.Literal{-3})
	require.True(t, e.Quiesce(), "clause 2 is immediately falsified by the already-implied literal 3")
}

func TestRevertSetReflectsLevelMembership(t *testing.T) {
	e := New()
	e.AddAssignment(literal.Literal(5), literal.LevelAT)
	e.AddAssignment(literal.Literal(6), literal.LevelRAT)

	require.ElementsMatch(t, []literal.Literal{5}, e.RevertSet(literal.LevelAT))
	require.ElementsMatch(t, []literal.Literal{6}, e.RevertSet(literal.LevelRAT))

	e.RemoveLevel(literal.LevelAT)
	require.Empty(t, e.RevertSet(literal.LevelAT), "revert completeness: RemoveLevel must empty the level's revert set")
}
