package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solved = "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

func TestParseFace(t *testing.T) {
	cases := map[string]Face{
		"Up": Up, "up": Up, "U": Up, "u": Up,
		"RIGHT": Right, "r": Right,
		" front ": Front, "F": Front,
		"down": Down, "D": Down,
		"Left": Left, "l": Left,
		"back": Back, "B": Back,
	}
	for in, want := range cases {
		got, err := ParseFace(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "top", "X", "UR"} {
		_, err := ParseFace(in)
		assert.Error(t, err, in)
	}
}

func TestParseMoveRoundTripsAllMoves(t *testing.T) {
	moves := AllMoves()
	require.Len(t, moves, 18)
	assert.Equal(t, "U", moves[0].String())
	assert.Equal(t, "R2", moves[17].String())
	for _, m := range moves {
		got, err := ParseMove(m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got)
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, tok := range []string{"", "M", "r", "R3", "R''", "U2'", "x2"} {
		_, err := ParseMove(tok)
		assert.Error(t, err, "%q", tok)
	}
}

func TestParseCubeState(t *testing.T) {
	st, err := ParseCubeState(" " + solved + "\n")
	require.NoError(t, err)
	assert.Equal(t, solved, st.String())
	assert.Equal(t, Red, st.Center(Right))
	assert.Equal(t, FaceGrid{Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue}, st.Face(Back))
	assert.Equal(t, [6]int{9, 9, 9, 9, 9, 9}, st.Counts())

	_, err = ParseCubeState(solved[:53])
	assert.ErrorIs(t, err, ErrMalformedCubeState)
	assert.ErrorContains(t, err, "got 53")

	_, err = ParseCubeState("X" + solved[1:])
	assert.ErrorIs(t, err, ErrMalformedCubeState)
	assert.ErrorContains(t, err, "position 0")
}

func TestFacelets(t *testing.T) {
	st, err := ParseCubeState(solved)
	require.NoError(t, err)
	f, err := st.Facelets()
	require.NoError(t, err)
	assert.Equal(t, "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", f)

	// letters follow the centers, not the colors
	st[4], st[13] = Red, White
	f, err = st.Facelets()
	require.NoError(t, err)
	assert.Equal(t, "R", f[0:1])
	assert.Equal(t, "U", f[9:10])
}

func TestFaceletsDuplicateCenter(t *testing.T) {
	st, err := ParseCubeState(solved)
	require.NoError(t, err)
	st[22] = Yellow
	_, err = st.Facelets()
	var me *MalformedError
	require.ErrorAs(t, err, &me)
	require.Len(t, me.Duplicates, 1)
	assert.Equal(t, []Face{Front, Down}, me.Duplicates[0].Faces)
}

func TestFaceletsInvalidColor(t *testing.T) {
	var st CubeState
	st[7] = Color(9)
	assert.NotPanics(t, func() {
		_, err := st.Facelets()
		assert.ErrorIs(t, err, ErrMalformedCubeState)
		assert.ErrorContains(t, err, "invalid color 9 at position 7")
	})

	st, err := ParseCubeState(solved)
	require.NoError(t, err)
	st[4] = Color(-1)
	_, err = st.Facelets()
	assert.ErrorIs(t, err, ErrMalformedCubeState)
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind string
		is   error
	}{
		{&ImageError{Face: Up, Width: 10, Height: 10, Min: 300}, "InvalidImage", ErrInvalidImage},
		{&IncompleteError{Missing: []Face{Left, Back}}, "IncompleteCubeState", ErrIncompleteCubeState},
		{&MalformedError{Detail: "x"}, "MalformedCubeState", ErrMalformedCubeState},
		{&RejectedError{Diagnostic: "Error"}, "SolverRejected", ErrSolverRejected},
		{WrapCubeError(ErrStore, "write", errors.New("disk full")), "Store", ErrStore},
		{errors.New("plain"), "Internal", nil},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("stage: %w", c.err)
		assert.Equal(t, c.kind, KindOf(wrapped))
		if c.is != nil {
			assert.ErrorIs(t, wrapped, c.is)
		}
	}

	assert.Equal(t, "incomplete cube state: missing Left, Back", (&IncompleteError{Missing: []Face{Left, Back}}).Error())
	me := &MalformedError{
		Counts:     []ColorCount{{Color: White, Count: 10}, {Color: Blue, Count: 8}},
		Duplicates: []CenterClash{{Color: Yellow, Faces: []Face{Front, Down}}},
	}
	assert.Equal(t, "malformed cube state: color counts off: White 10 (+1), Blue 8 (-1); duplicate center Yellow on Front, Down", me.Error())

	cause := errors.New("boom")
	re := &RejectedError{Diagnostic: "engine call failed", Err: cause}
	assert.ErrorIs(t, re, cause)
	assert.ErrorIs(t, re, ErrSolverRejected)
}
