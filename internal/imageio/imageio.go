// Package imageio decodes uploaded face photos and writes rendered ones.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"svw.info/cube/internal/domain"
)

// Decode reads a PNG, JPEG, GIF, BMP or WebP photo of face.
func Decode(face domain.Face, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &domain.ImageError{Face: face, Reason: "decode: " + err.Error()}
	}
	return img, nil
}

// DecodeFile opens and decodes path.
func DecodeFile(face domain.Face, path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ImageError{Face: face, Reason: err.Error()}
	}
	defer f.Close()
	return Decode(face, f)
}

// WritePNG writes img to dir/<name>.png and returns the path.
func WritePNG(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
