package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cube/internal/domain"
)

func TestNearestExactReferences(t *testing.T) {
	c := NewNearest()
	for _, ref := range DefaultReferences {
		assert.Equal(t, ref.Color, c.Classify(ref.RGB), "reference %v", ref.RGB)
	}
}

func TestNearestTotal(t *testing.T) {
	c := NewNearest()
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				got := c.Classify(domain.SampleOf(r, g, b))
				require.True(t, got.Valid(), "sample (%d,%d,%d) gave %v", r, g, b, got)
			}
		}
	}
}

func TestNearestTieBreakFollowsTableOrder(t *testing.T) {
	c := NewNearest()
	cases := []struct {
		name   string
		sample domain.Sample
		want   domain.Color
	}{
		{"white beats blue", domain.Sample{R: 0, G: 255, B: 255}, domain.White},
		{"white beats red", domain.Sample{R: 187, G: 68, B: 187}, domain.White},
		{"yellow beats orange", domain.Sample{R: 119, G: 210, B: 0}, domain.Yellow},
		{"red beats blue", domain.Sample{R: 102, G: 0, B: 102}, domain.Red},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.sample))
		})
	}
}

func TestNearestCustomTableOrder(t *testing.T) {
	grey := domain.Sample{R: 128, G: 128, B: 128}
	c := NewNearest(
		Reference{Color: domain.Green, RGB: grey},
		Reference{Color: domain.Blue, RGB: grey},
	)
	assert.Equal(t, domain.Green, c.Classify(grey))
}

func TestNearestTypicalPhotoColors(t *testing.T) {
	c := NewNearest()
	assert.Equal(t, domain.Orange, c.Classify(domain.Sample{R: 240, G: 140, B: 30}))
	assert.Equal(t, domain.Green, c.Classify(domain.Sample{R: 20, G: 150, B: 60}))
	assert.Equal(t, domain.Blue, c.Classify(domain.Sample{R: 20, G: 40, B: 200}))
	// a dim white sticker reads as yellow-ish grey but stays white
	assert.Equal(t, domain.White, c.Classify(domain.Sample{R: 200, G: 200, B: 190}))
}

func TestNearestZeroValueUsesDefaults(t *testing.T) {
	var c Nearest
	assert.Equal(t, domain.Red, c.Classify(domain.Sample{R: 250, G: 10, B: 10}))
	assert.Equal(t, domain.White, c.Classify(domain.Sample{R: 0, G: 255, B: 255}))
}

func TestSampleOfClamps(t *testing.T) {
	assert.Equal(t, domain.Sample{R: 0, G: 255, B: 17}, domain.SampleOf(-40, 900, 17))
}
