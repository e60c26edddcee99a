// Package engine talks to the external solving engine.
//
// The engine takes a 54 letter facelet string in the URFDLB alphabet and
// answers with a space separated move list, or with a diagnostic when the
// state is not a legal scramble. Engine refusals surface as
// domain.ErrSolverRejected so callers can tell them apart from bad photos.
package engine

import (
	"context"
	"strings"
	"time"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/ports"
)

// ParseSolution turns engine output into a Solution. Output whose first
// line starts with "Error" is the engine's way of refusing a state.
func ParseSolution(out string) (domain.Solution, error) {
	out = strings.TrimSpace(out)
	if first, _, _ := strings.Cut(out, "\n"); strings.HasPrefix(strings.TrimSpace(first), "Error") {
		return domain.Solution{}, &domain.RejectedError{Diagnostic: strings.TrimSpace(first)}
	}
	moves := strings.Fields(out)
	return domain.Solution{Moves: moves, Raw: strings.Join(moves, " ")}, nil
}

// Func adapts a function returning raw engine output into a ports.Engine.
type Func func(ctx context.Context, facelets string) (string, error)

func (f Func) Solve(ctx context.Context, facelets string) (domain.Solution, ports.Stats, error) {
	start := time.Now()
	out, err := f(ctx, facelets)
	st := ports.Stats{Duration: time.Since(start)}
	if err != nil {
		return domain.Solution{}, st, &domain.RejectedError{Diagnostic: "engine call failed", Err: err}
	}
	sol, err := ParseSolution(out)
	st.Moves = len(sol.Moves)
	return sol, st, err
}

func checkFacelets(facelets string) error {
	if len(facelets) != domain.StateLen {
		return &domain.MalformedError{Detail: "engine input must have 54 facelets"}
	}
	for i := 0; i < len(facelets); i++ {
		if strings.IndexByte("URFDLB", facelets[i]) < 0 {
			return &domain.MalformedError{Detail: "engine input uses letters outside URFDLB"}
		}
	}
	return nil
}
