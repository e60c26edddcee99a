// Package assembler orders six face grids into a cube state string.
package assembler

import "svw.info/cube/internal/domain"

// Order is the face sequence of the assembled state. It must match the
// solving engine's facelet convention: U1..U9 R1..R9 F1..F9 D1..D9 L1..L9 B1..B9.
var Order = domain.StateOrder

// Assemble concatenates the grids in Order. Every face must be present.
func Assemble(grids map[domain.Face]domain.FaceGrid) (domain.CubeState, error) {
	var st domain.CubeState
	if missing := Missing(grids); len(missing) > 0 {
		return st, &domain.IncompleteError{Missing: missing}
	}
	for i, f := range Order {
		g := grids[f]
		copy(st[i*9:(i+1)*9], g[:])
	}
	return st, nil
}

// Missing reports which faces of Order are absent from have.
func Missing[V any](have map[domain.Face]V) []domain.Face {
	var out []domain.Face
	for _, f := range Order {
		if _, ok := have[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}
