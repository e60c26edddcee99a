package validator

import (
	"context"

	"svw.info/cube/internal/domain"
)

// CountValidator checks that a state could come from a real cube: nine
// stickers of every color and six different center colors. It never
// repairs a state.
type CountValidator struct{}

func New() *CountValidator { return &CountValidator{} }

func (v *CountValidator) Validate(ctx context.Context, s domain.CubeState) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	rep := report(s)
	var bad domain.MalformedError

	// counts
	counts := s.Counts()
	for _, c := range domain.Colors {
		if counts[c] != 9 {
			bad.Counts = append(bad.Counts, domain.ColorCount{Color: c, Count: counts[c]})
		}
	}
	// centers
	seen := 0
	for _, f := range domain.StateOrder {
		c := s.Center(f)
		bit := 1 << c
		if seen&bit != 0 {
			continue
		}
		seen |= bit
		var faces []domain.Face
		for _, g := range domain.StateOrder {
			if s.Center(g) == c {
				faces = append(faces, g)
			}
		}
		if len(faces) > 1 {
			bad.Duplicates = append(bad.Duplicates, domain.CenterClash{Color: c, Faces: faces})
		}
	}

	if len(bad.Counts) > 0 || len(bad.Duplicates) > 0 {
		return rep, &bad
	}
	return rep, nil
}

func report(s domain.CubeState) domain.Report {
	counts := s.Counts()
	rep := domain.Report{
		Counts:  make(map[string]int, 6),
		Centers: make(map[string]string, 6),
	}
	for _, c := range domain.Colors {
		rep.Counts[c.String()] = counts[c]
	}
	for _, f := range domain.StateOrder {
		rep.Centers[f.String()] = s.Center(f).String()
	}
	return rep
}
