package sampler

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cube/internal/classifier"
	"svw.info/cube/internal/domain"
)

func rgb(s domain.Sample) color.RGBA { return color.RGBA{R: s.R, G: s.G, B: s.B, A: 255} }

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// stickers paints a size x size face with a black gutter around each cell.
func stickers(size int, colors [9]color.RGBA) *image.RGBA {
	img := solid(size, size, color.Black)
	cell := size / 3
	gap := cell / 10
	for i, c := range colors {
		row, col := i/3, i%3
		r := image.Rect(col*cell+gap, row*cell+gap, (col+1)*cell-gap, (row+1)*cell-gap)
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	return img
}

func newGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New(classifier.NewNearest(), DefaultGeometry)
	require.NoError(t, err)
	return g
}

func TestSampleUniformFaceRoundTrip(t *testing.T) {
	g := newGrid(t)
	for _, ref := range classifier.DefaultReferences {
		t.Run(ref.Color.String(), func(t *testing.T) {
			got, err := g.Sample(context.Background(), domain.Up, solid(300, 300, rgb(ref.RGB)))
			require.NoError(t, err)
			want := domain.FaceGrid{}
			for i := range want {
				want[i] = ref.Color
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSampleRescalesLargerPhotos(t *testing.T) {
	g := newGrid(t)
	blue := classifier.DefaultReferences[5].RGB
	got, err := g.Sample(context.Background(), domain.Left, solid(1024, 768, rgb(blue)))
	require.NoError(t, err)
	for i, c := range got {
		assert.Equal(t, domain.Blue, c, "sticker %d", i)
	}
}

func TestSampleRasterOrder(t *testing.T) {
	g := newGrid(t)
	refs := classifier.DefaultReferences
	want := domain.FaceGrid{}
	var cols [9]color.RGBA
	for i := range cols {
		ref := refs[i%len(refs)]
		cols[i] = rgb(ref.RGB)
		want[i] = ref.Color
	}
	for _, size := range []int{300, 600, 900} {
		got, err := g.Sample(context.Background(), domain.Front, stickers(size, cols))
		require.NoError(t, err, "size %d", size)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("size %d: grid mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestSampleRejectsSmallImages(t *testing.T) {
	g := newGrid(t)
	_, err := g.Sample(context.Background(), domain.Back, solid(299, 400, color.White))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidImage))

	var ie *domain.ImageError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, domain.Back, ie.Face)
	assert.Equal(t, 299, ie.Width)
	assert.Equal(t, 400, ie.Height)
	assert.Contains(t, err.Error(), "Back")
}

func TestSampleRejectsNilImage(t *testing.T) {
	g := newGrid(t)
	_, err := g.Sample(context.Background(), domain.Down, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestSampleHonoursCanceledContext(t *testing.T) {
	g := newGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Sample(ctx, domain.Up, solid(300, 300, color.White))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPatchesTruncateMean(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 300, 300))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{A: 255}}, image.Point{}, draw.Src)
	// left half of the first patch at 11, right half at 10: mean 10.5 -> 10
	draw.Draw(img, image.Rect(25, 25, 50, 75), &image.Uniform{C: color.RGBA{R: 11, A: 255}}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(50, 25, 75, 75), &image.Uniform{C: color.RGBA{R: 10, A: 255}}, image.Point{}, draw.Src)
	p := Patches(img, DefaultGeometry)
	assert.Equal(t, domain.Sample{R: 10}, p[0])
	assert.Equal(t, domain.Sample{}, p[1])
}

func TestSampleTranslucentFaceKeepsStoredColor(t *testing.T) {
	g, err := New(classifier.NewNearest(), DefaultGeometry)
	require.NoError(t, err)
	// premultiplied this reads as (100,100,100), which is nearest to Green
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	for _, size := range []int{300, 450} {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
		grid, err := g.Sample(context.Background(), domain.Front, img)
		require.NoError(t, err)
		assert.Equal(t, "WWWWWWWWW", grid.String(), "size %d", size)
	}

	orange := image.NewNRGBA(image.Rect(0, 0, 300, 300))
	draw.Draw(orange, orange.Bounds(), &image.Uniform{C: color.NRGBA{R: 255, G: 165, A: 128}}, image.Point{}, draw.Src)
	p := Patches(g.normalize(orange), DefaultGeometry)
	assert.Equal(t, domain.Sample{R: 255, G: 165}, p[4])
}

func TestGeometryValidate(t *testing.T) {
	assert.NoError(t, DefaultGeometry.Validate())
	assert.Error(t, Geometry{Resolution: 2, Inset: 0, MinSize: 1}.Validate())
	assert.Error(t, Geometry{Resolution: 300, Inset: 50, MinSize: 300}.Validate())
	assert.Error(t, Geometry{Resolution: 300, Inset: 25, MinSize: 0}.Validate())

	_, err := New(nil, DefaultGeometry)
	assert.Error(t, err)
}
