package assembler

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cube/internal/domain"
)

func uniform(c domain.Color) domain.FaceGrid {
	var g domain.FaceGrid
	for i := range g {
		g[i] = c
	}
	return g
}

func TestOrderMatchesEngineConvention(t *testing.T) {
	want := []domain.Face{domain.Up, domain.Right, domain.Front, domain.Down, domain.Left, domain.Back}
	if diff := cmp.Diff(want, Order[:]); diff != "" {
		t.Fatalf("face order changed (-want +got):\n%s", diff)
	}
}

func TestAssembleOrdersByLabel(t *testing.T) {
	grids := map[domain.Face]domain.FaceGrid{
		domain.Front: uniform(domain.Green),
		domain.Back:  uniform(domain.Blue),
		domain.Left:  uniform(domain.Orange),
		domain.Right: uniform(domain.Red),
		domain.Up:    uniform(domain.White),
		domain.Down:  uniform(domain.Yellow),
	}
	st, err := Assemble(grids)
	require.NoError(t, err)

	got := st.String()
	require.Len(t, got, 54)
	want := strings.Repeat("W", 9) + strings.Repeat("R", 9) + strings.Repeat("G", 9) +
		strings.Repeat("Y", 9) + strings.Repeat("O", 9) + strings.Repeat("B", 9)
	assert.Equal(t, want, got)
}

func TestAssembleKeepsRasterOrderWithinFace(t *testing.T) {
	grids := map[domain.Face]domain.FaceGrid{}
	for _, f := range domain.Faces {
		grids[f] = uniform(domain.White)
	}
	grids[domain.Front] = domain.FaceGrid{
		domain.White, domain.Yellow, domain.Red,
		domain.Orange, domain.Green, domain.Blue,
		domain.White, domain.Yellow, domain.Red,
	}
	st, err := Assemble(grids)
	require.NoError(t, err)
	assert.Equal(t, "WYROGBWYR", st.String()[18:27])
	assert.Equal(t, grids[domain.Front], st.Face(domain.Front))
}

func TestAssembleNamesMissingFaces(t *testing.T) {
	grids := map[domain.Face]domain.FaceGrid{
		domain.Front: uniform(domain.Green),
		domain.Right: uniform(domain.Red),
		domain.Up:    uniform(domain.White),
		domain.Down:  uniform(domain.Yellow),
	}
	_, err := Assemble(grids)
	require.ErrorIs(t, err, domain.ErrIncompleteCubeState)

	var ie *domain.IncompleteError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, []domain.Face{domain.Left, domain.Back}, ie.Missing)
	assert.Contains(t, err.Error(), "Left, Back")
}

func TestAssembleEmpty(t *testing.T) {
	_, err := Assemble(nil)
	var ie *domain.IncompleteError
	require.ErrorAs(t, err, &ie)
	assert.Len(t, ie.Missing, 6)
}
