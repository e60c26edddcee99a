// Package sampler reads the 3x3 sticker grid out of a face photo.
//
// The photo is rescaled to a square working resolution, split into nine
// equal cells, and a centered patch of each cell is averaged. Keeping the
// patch away from the cell border skips the dark gaps between stickers.
// Coordinates follow the image package: origin top-left, y grows downward.
package sampler

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/ports"
)

// Geometry describes the working resolution and sampling patch.
type Geometry struct {
	// Resolution is the side of the square the photo is rescaled to.
	Resolution int `yaml:"resolution"`
	// Inset is the margin kept between a cell border and its sampled patch.
	Inset int `yaml:"inset"`
	// MinSize is the smallest accepted source width and height.
	MinSize int `yaml:"min_size"`
}

// DefaultGeometry samples the central 50x50 patch of each 100x100 cell.
var DefaultGeometry = Geometry{Resolution: 300, Inset: 25, MinSize: 300}

// Cell is the side length of one grid cell.
func (g Geometry) Cell() int { return g.Resolution / 3 }

func (g Geometry) Validate() error {
	if g.Resolution < 3 {
		return fmt.Errorf("resolution %d is below 3", g.Resolution)
	}
	if g.Inset < 0 || 2*g.Inset >= g.Cell() {
		return fmt.Errorf("inset %d leaves no patch in a %d pixel cell", g.Inset, g.Cell())
	}
	if g.MinSize < 1 {
		return fmt.Errorf("min_size %d must be positive", g.MinSize)
	}
	return nil
}

// Grid is the default Sampler.
type Grid struct {
	Classifier ports.Classifier
	Geometry   Geometry
}

func New(c ports.Classifier, g Geometry) (*Grid, error) {
	if c == nil {
		return nil, fmt.Errorf("sampler: nil classifier")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	return &Grid{Classifier: c, Geometry: g}, nil
}

// Sample classifies the nine stickers of img in row-major order.
func (s *Grid) Sample(ctx context.Context, face domain.Face, img image.Image) (domain.FaceGrid, error) {
	var out domain.FaceGrid
	if err := ctx.Err(); err != nil {
		return out, err
	}
	if img == nil {
		return out, &domain.ImageError{Face: face, Reason: "no image data"}
	}
	b := img.Bounds()
	if b.Dx() < s.Geometry.MinSize || b.Dy() < s.Geometry.MinSize {
		return out, &domain.ImageError{Face: face, Width: b.Dx(), Height: b.Dy(), Min: s.Geometry.MinSize}
	}

	canon := s.normalize(img)
	for i, smp := range Patches(canon, s.Geometry) {
		out[i] = s.Classifier.Classify(smp)
	}
	return out, nil
}

// normalize rescales img to the working resolution. The result keeps
// straight (non-premultiplied) color so translucent pixels read as stored.
func (s *Grid) normalize(img image.Image) *image.NRGBA {
	res := s.Geometry.Resolution
	dst := image.NewNRGBA(image.Rect(0, 0, res, res))
	b := img.Bounds()
	if b.Dx() == res && b.Dy() == res {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Patches averages the centered patch of each cell of a canonical image,
// row by row.
func Patches(canon *image.NRGBA, g Geometry) [9]domain.Sample {
	var out [9]domain.Sample
	cell := g.Cell()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r := image.Rect(col*cell+g.Inset, row*cell+g.Inset, (col+1)*cell-g.Inset, (row+1)*cell-g.Inset)
			out[row*3+col] = average(canon, r)
		}
	}
	return out
}

// average returns the channel-wise mean of r, truncated toward zero.
func average(img *image.NRGBA, r image.Rectangle) domain.Sample {
	r = r.Intersect(img.Bounds())
	var sr, sg, sb, n int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sr += int(img.Pix[i])
			sg += int(img.Pix[i+1])
			sb += int(img.Pix[i+2])
			i += 4
			n++
		}
	}
	if n == 0 {
		return domain.Sample{}
	}
	return domain.SampleOf(sr/n, sg/n, sb/n)
}
