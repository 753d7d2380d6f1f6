package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmpty(t *testing.T) {
	r := Run("")
	assert.True(t, r.Balanced)
	assert.Empty(t, r.Steps)
}

func TestRunBalancedExpression(t *testing.T) {
	expr := "(a+b)*[c-d]"
	r := Run(expr)
	assert.True(t, r.Balanced)
	require.Len(t, r.Steps, len(expr))
	assert.Empty(t, r.Steps[len(r.Steps)-1].Snapshot)

	for i, s := range r.Steps {
		assert.Equal(t, i, s.Cursor)
	}
	assert.Equal(t, "push (", r.Steps[0].Action)
	assert.Equal(t, []rune("("), r.Steps[0].Snapshot)
	assert.Equal(t, "ignore a", r.Steps[1].Action)
	assert.Equal(t, []rune("("), r.Steps[1].Snapshot)
	assert.Equal(t, "pop for )", r.Steps[4].Action)
	assert.Empty(t, r.Steps[4].Snapshot)
	assert.Equal(t, "push [", r.Steps[6].Action)
	assert.Equal(t, "pop for ]", r.Steps[10].Action)
}

func TestRunMismatchStopsScan(t *testing.T) {
	r := Run("(a+b]")
	assert.False(t, r.Balanced)
	require.Len(t, r.Steps, 5)
	last := r.Steps[len(r.Steps)-1]
	assert.Equal(t, "mismatch at ']'", last.Action)
	assert.Equal(t, 4, last.Cursor)
	assert.Equal(t, []rune("("), last.Snapshot)
}

func TestRunMismatchDoesNotScanPastViolation(t *testing.T) {
	r := Run(")((((")
	assert.False(t, r.Balanced)
	require.Len(t, r.Steps, 1)
	assert.Equal(t, "mismatch at ')'", r.Steps[0].Action)
	assert.Empty(t, r.Steps[0].Snapshot)
}

func TestRunUnclosedOpener(t *testing.T) {
	r := Run("(()")
	assert.False(t, r.Balanced)
	require.Len(t, r.Steps, 3)
	for _, s := range r.Steps {
		assert.NotContains(t, s.Action, "mismatch")
	}
	assert.Equal(t, []rune("("), r.Steps[2].Snapshot)
}

func TestRunNestedSnapshot(t *testing.T) {
	r := Run("{[()]}")
	assert.True(t, r.Balanced)
	require.Len(t, r.Steps, 6)

	deepest := r.Steps[0]
	for _, s := range r.Steps {
		if len(s.Snapshot) > len(deepest.Snapshot) {
			deepest = s
		}
	}
	assert.Equal(t, []rune{'{', '[', '('}, deepest.Snapshot)
	assert.Equal(t, 2, deepest.Cursor)
}

func TestRunIsDeterministic(t *testing.T) {
	a := Run("{x[y(z)]}]")
	b := Run("{x[y(z)]}]")
	assert.Equal(t, a, b)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	r := Run("((")
	require.Len(t, r.Steps, 2)
	r.Steps[0].Snapshot[0] = 'x'
	assert.Equal(t, []rune("(("), r.Steps[1].Snapshot)
}

func TestStepsMatchesRun(t *testing.T) {
	for _, expr := range []string{"", "(a+b)*[c-d]", "(a+b]", "(()", "{[()]}"} {
		var got []Step
		for s := range Steps(expr) {
			got = append(got, s)
		}
		assert.Equal(t, Run(expr).Steps, got, expr)
	}
}

func TestStepsEarlyBreak(t *testing.T) {
	seq := Steps("((((")
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	// restartable
	n = 0
	for range seq {
		n++
	}
	assert.Equal(t, 4, n)
}

func TestFindMatchingClosedForward(t *testing.T) {
	assert.Equal(t, 5, FindMatchingClosedForward([]rune(`({[}])`), 0))
	assert.Equal(t, 3, FindMatchingClosedForward([]rune(`({[}])`), 1))
	assert.Equal(t, 4, FindMatchingClosedForward([]rune(`({[}])`), 2))
	assert.Equal(t, -1, FindMatchingClosedForward([]rune(`(()`), 0))
	assert.Equal(t, -1, FindMatchingClosedForward([]rune(`a()`), 0))
}

func TestFindMatchingOpenBackward(t *testing.T) {
	assert.Equal(t, 0, FindMatchingOpenBackward([]rune(`({[}])`), 5))
	assert.Equal(t, 1, FindMatchingOpenBackward([]rune(`({[}])`), 3))
	assert.Equal(t, 2, FindMatchingOpenBackward([]rune(`({[}])`), 4))
	assert.Equal(t, -1, FindMatchingOpenBackward([]rune(`())`), 2))
}

func TestFindMatching(t *testing.T) {
	expr := []rune("{[()]}")
	assert.Equal(t, 5, FindMatching(expr, 0))
	assert.Equal(t, 1, FindMatching(expr, 4))
	assert.Equal(t, -1, FindMatching([]rune("abc"), 1))
	assert.Equal(t, -1, FindMatching(expr, 10))
}

func TestBracketClasses(t *testing.T) {
	assert.True(t, IsOpener('{'))
	assert.False(t, IsOpener('}'))
	assert.True(t, IsCloser('}'))
	assert.False(t, IsCloser('a'))
}

func TestRunMultiByteCharacters(t *testing.T) {
	r := Run("(é)")
	assert.True(t, r.Balanced)
	require.Len(t, r.Steps, 3)
	assert.Equal(t, "push (", r.Steps[0].Action)
	assert.Equal(t, "ignore é", r.Steps[1].Action)
	assert.Equal(t, 1, r.Steps[1].Cursor)
	assert.Equal(t, "pop for )", r.Steps[2].Action)
	assert.Equal(t, 2, r.Steps[2].Cursor)

	r = Run("{ü[ß]}]")
	assert.False(t, r.Balanced)
	require.Len(t, r.Steps, 7)
	assert.Equal(t, 6, r.Steps[6].Cursor)
	assert.Equal(t, "mismatch at ']'", r.Steps[6].Action)
	assert.Equal(t, 5, FindMatching([]rune("{ü[ß]}"), 0))
}
