// Package classifier maps averaged sticker samples onto the six cube colors.
package classifier

import "svw.info/cube/internal/domain"

// Reference pairs a palette color with the RGB value it is matched against.
type Reference struct {
	Color domain.Color
	RGB   domain.Sample
}

// DefaultReferences is the reference table in tie-break order.
var DefaultReferences = []Reference{
	{domain.White, domain.Sample{R: 255, G: 255, B: 255}},
	{domain.Yellow, domain.Sample{R: 255, G: 255, B: 0}},
	{domain.Red, domain.Sample{R: 255, G: 0, B: 0}},
	{domain.Orange, domain.Sample{R: 255, G: 165, B: 0}},
	{domain.Green, domain.Sample{R: 0, G: 128, B: 0}},
	{domain.Blue, domain.Sample{R: 0, G: 0, B: 255}},
}

// Nearest picks the reference color closest to a sample by Euclidean
// distance in RGB space. On an exact tie the earlier reference wins.
//
// It applies no lighting or white-balance correction, so shadows, warm
// bulbs and glare are the main cause of misread stickers. Orange and red,
// and white and yellow, are the usual confusions.
type Nearest struct {
	refs []Reference
}

// NewNearest builds a classifier over refs, or over DefaultReferences when
// none are given.
func NewNearest(refs ...Reference) *Nearest {
	if len(refs) == 0 {
		refs = DefaultReferences
	}
	cp := make([]Reference, len(refs))
	copy(cp, refs)
	return &Nearest{refs: cp}
}

// Classify returns the color of the closest reference. A Nearest without
// a table, such as the zero value, uses DefaultReferences.
func (n *Nearest) Classify(s domain.Sample) domain.Color {
	refs := n.refs
	if len(refs) == 0 {
		refs = DefaultReferences
	}
	best := refs[0].Color
	bestDist := -1
	for _, ref := range refs {
		d := dist2(s, ref.RGB)
		if bestDist < 0 || d < bestDist {
			best, bestDist = ref.Color, d
		}
	}
	return best
}

// dist2 is the squared distance; it orders samples the same way as the
// Euclidean distance without leaving integer arithmetic.
func dist2(a, b domain.Sample) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
