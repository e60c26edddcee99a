package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cube/internal/assembler"
	"svw.info/cube/internal/classifier"
	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/sampler"
)

const mixed = "WWRWWRWWG" + "RRYRRBRRB" + "GGWGGWGGW" + "YYOYYOYYB" + "OOOOOGOOR" + "BBYBBYBBG"

func readBack(t *testing.T, r *Renderer, state string) string {
	t.Helper()
	st, err := domain.ParseCubeState(state)
	require.NoError(t, err)
	imgs, err := r.Render(context.Background(), st)
	require.NoError(t, err)
	require.Len(t, imgs, 6)

	g, err := sampler.New(classifier.NewNearest(), sampler.DefaultGeometry)
	require.NoError(t, err)
	grids := map[domain.Face]domain.FaceGrid{}
	for f, img := range imgs {
		grids[f], err = g.Sample(context.Background(), f, img)
		require.NoError(t, err)
	}
	got, err := assembler.Assemble(grids)
	require.NoError(t, err)
	return got.String()
}

func TestRenderRoundTrip(t *testing.T) {
	assert.Equal(t, mixed, readBack(t, New(300), mixed))
}

func TestRenderRoundTripLargeJittered(t *testing.T) {
	r := New(600)
	r.Jitter = 20
	r.Seed = 42
	assert.Equal(t, mixed, readBack(t, r, mixed))
}

func TestRenderDeterministicForSeed(t *testing.T) {
	st, err := domain.ParseCubeState(mixed)
	require.NoError(t, err)
	a := New(300)
	a.Jitter, a.Seed = 30, 7
	b := New(300)
	b.Jitter, b.Seed = 30, 7
	ia, err := a.Render(context.Background(), st)
	require.NoError(t, err)
	ib, err := b.Render(context.Background(), st)
	require.NoError(t, err)
	for _, f := range domain.StateOrder {
		assert.Equal(t, ia[f], ib[f], "face %v", f)
	}
}
