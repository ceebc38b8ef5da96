package clause

import (
	"testing"

	"github.com/xDarkicex/dratcheck/literal"
)

func lits(xs ...int32) []literal.Literal {
	out := make([]literal.Literal, len(xs))
	for i, x := range xs {
		out[i] = literal.Literal(x)
	}
	return out
}

func TestNewPreservesOrderForPivot(t *testing.T) {
	c := New(lits(3, 1, -2))
	if got := c.Pivot(); got != literal.Literal(3) {
		t.Errorf("Pivot() = %d, want 3 (first literal supplied)", got)
	}
}

func TestLiteralsIsDefensiveCopy(t *testing.T) {
	c := New(lits(1, 2))
	out := c.Literals()
	out[0] = 99
	if c.Literals()[0] != literal.Literal(1) {
		t.Error("mutating the returned slice must not affect the clause")
	}
}

func TestIsEmpty(t *testing.T) {
	if !New(nil).IsEmpty() {
		t.Error("clause with no literals must report IsEmpty")
	}
	if New(lits(1)).IsEmpty() {
		t.Error("non-empty clause must not report IsEmpty")
	}
}

func TestContains(t *testing.T) {
	c := New(lits(1, -2, 3))
	if !c.Contains(-2) {
		t.Error("Contains(-2) should be true")
	}
	if c.Contains(2) {
		t.Error("Contains(2) should be false")
	}
}

func TestHasDuplicate(t *testing.T) {
	if !New(lits(1, 2, 1)).HasDuplicate() {
		t.Error("repeated literal should be detected")
	}
	if New(lits(1, 2, 3)).HasDuplicate() {
		t.Error("distinct literals should not be flagged as duplicate")
	}
}

func TestIsTautology(t *testing.T) {
	if !New(lits(1, -1, 2)).IsTautology() {
		t.Error("clause containing a literal and its negation must be tautological")
	}
	if New(lits(1, 2, -3)).IsTautology() {
		t.Error("clause without a complementary pair must not be tautological")
	}
}

func TestCanonIgnoresInputOrder(t *testing.T) {
	a := New(lits(1, -2, 3))
	b := New(lits(3, 1, -2))
	if a.Canon() != b.Canon() {
		t.Errorf("Canon() must ignore input order: %q != %q", a.Canon(), b.Canon())
	}
	c := New(lits(1, 2, 3))
	if a.Canon() == c.Canon() {
		t.Error("clauses with different literal sets must not share a canonical key")
	}
}

func TestStringIsDimacsFormat(t *testing.T) {
	c := New(lits(1, -2, 3))
	if got, want := c.String(), "1 -2 3 0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	empty := New(nil)
	if got, want := empty.String(), "0"; got != want {
		t.Errorf("empty clause String() = %q, want %q", got, want)
	}
}
