// Package render paints synthetic face photos for a cube state. The images
// feed end-to-end tests and give users sample input for the solver.
package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"svw.info/cube/internal/classifier"
	"svw.info/cube/internal/domain"
)

// Renderer draws each face as a 3x3 grid of stickers on a dark body.
type Renderer struct {
	// Size is the side length of each image in pixels.
	Size int
	// Gap is the body border around every sticker.
	Gap int
	// Jitter is the maximum per-channel offset applied to a sticker,
	// a crude stand-in for uneven lighting. Zero disables it.
	Jitter int
	Seed   int64
	// Palette maps colors to the RGB painted for them.
	Palette map[domain.Color]domain.Sample
}

func New(size int) *Renderer {
	pal := make(map[domain.Color]domain.Sample, len(classifier.DefaultReferences))
	for _, ref := range classifier.DefaultReferences {
		pal[ref.Color] = ref.RGB
	}
	return &Renderer{Size: size, Gap: size / 30, Palette: pal}
}

var body = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// Render returns one image per face.
func (r *Renderer) Render(ctx context.Context, s domain.CubeState) (map[domain.Face]image.Image, error) {
	rng := rand.New(rand.NewSource(r.Seed))
	out := make(map[domain.Face]image.Image, 6)
	for _, f := range domain.StateOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[f] = r.Face(s.Face(f), rng)
	}
	return out, nil
}

// Face paints a single face. rng may be nil when Jitter is zero.
func (r *Renderer) Face(g domain.FaceGrid, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Size, r.Size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: body}, image.Point{}, draw.Src)
	cell := r.Size / 3
	for i, c := range g {
		row, col := i/3, i%3
		rect := image.Rect(col*cell+r.Gap, row*cell+r.Gap, (col+1)*cell-r.Gap, (row+1)*cell-r.Gap)
		draw.Draw(img, rect, &image.Uniform{C: r.paint(c, rng)}, image.Point{}, draw.Src)
	}
	return img
}

func (r *Renderer) paint(c domain.Color, rng *rand.Rand) color.RGBA {
	s := r.Palette[c]
	if r.Jitter > 0 && rng != nil {
		s = domain.SampleOf(
			int(s.R)+rng.Intn(2*r.Jitter+1)-r.Jitter,
			int(s.G)+rng.Intn(2*r.Jitter+1)-r.Jitter,
			int(s.B)+rng.Intn(2*r.Jitter+1)-r.Jitter,
		)
	}
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: 255}
}
