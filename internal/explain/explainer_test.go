package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cube/internal/domain"
)

func TestExplainAllEighteenMoves(t *testing.T) {
	e := New()
	moves := domain.AllMoves()
	require.Len(t, moves, 18)
	seen := map[string]bool{}
	for _, m := range moves {
		s := e.Explain(m.String())
		assert.NotContains(t, s, "Unrecognized", "move %s", m)
		assert.False(t, seen[s], "duplicate sentence %q", s)
		seen[s] = true
	}
}

func TestExplainSentences(t *testing.T) {
	e := New()
	cases := map[string]string{
		"R":  "Turn the Right face clockwise",
		"R'": "Turn the Right face counterclockwise",
		"R2": "Turn the Right face 180 degrees",
		"U'": "Turn the Up face counterclockwise",
		"B2": "Turn the Back face 180 degrees",
		"D":  "Turn the Down face clockwise",
	}
	for tok, want := range cases {
		assert.Equal(t, want, e.Explain(tok), tok)
	}
}

func TestExplainUnknownToken(t *testing.T) {
	e := New()
	assert.Equal(t, "Unrecognized move: M2", e.Explain("M2"))
	assert.Equal(t, "Unrecognized move: ", e.Explain(""))
	assert.Equal(t, "Unrecognized move: r", e.Explain("r"))
	for _, tok := range []string{"R3", "U''", "RR", "F2'"} {
		assert.Equal(t, "Unrecognized move: "+tok, e.Explain(tok))
	}
}

func TestSteps(t *testing.T) {
	steps := Steps(New(), "  R U'  x F2 ")
	require.Len(t, steps, 4)
	assert.Equal(t, domain.Step{Index: 1, Move: "R", Text: "Turn the Right face clockwise"}, steps[0])
	assert.Equal(t, 3, steps[2].Index)
	assert.Equal(t, "Unrecognized move: x", steps[2].Text)
	assert.Equal(t, "F2", steps[3].Move)

	assert.Empty(t, Steps(New(), ""))
}
