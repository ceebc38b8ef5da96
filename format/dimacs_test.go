package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/dratcheck"
)

func TestCNFReadsHeaderAndClauses(t *testing.T) {
	src := "c a comment line\np cnf 3 2\n1 2 0\n-1 3 0\n"
	cnf, err := NewCNF(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, cnf.NumVars())
	require.Equal(t, 2, cnf.NumClauses())

	c1, ok, err := cnf.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1 2 0", c1.String())

	c2, ok, err := cnf.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "-1 3 0", c2.String())

	_, ok, err = cnf.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCNFClauseSplitAcrossLines(t *testing.T) {
	src := "p cnf 2 1\n1\n-2\n0\n"
	cnf, err := NewCNF(strings.NewReader(src))
	require.NoError(t, err)

	c, ok, err := cnf.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1 -2 0", c.String())
}

func TestCNFRejectsMissingTerminator(t *testing.T) {
	src := "p cnf 1 1\n1 2\n"
	cnf, err := NewCNF(strings.NewReader(src))
	require.NoError(t, err)

	_, _, err = cnf.Next()
	require.Error(t, err)
	var malformed *dratcheck.MalformedInputError
	require.ErrorAs(t, err, &malformed)
}

func TestCNFRejectsTautologicalClause(t *testing.T) {
	src := "p cnf 2 1\n1 -1 2 0\n"
	cnf, err := NewCNF(strings.NewReader(src))
	require.NoError(t, err)

	_, _, err = cnf.Next()
	require.Error(t, err)
}

func TestCNFDedupsRepeatedLiteral(t *testing.T) {
	src := "p cnf 2 1\n1 2 1 0\n"
	cnf, err := NewCNF(strings.NewReader(src))
	require.NoError(t, err)

	c, ok, err := cnf.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1 2 0", c.String())
}

func TestCNFRejectsBadHeader(t *testing.T) {
	_, err := NewCNF(strings.NewReader("cnf 1 1\n1 0\n"))
	require.Error(t, err)
}
