package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CubeError is the coded error type shared by all pipeline stages.
type CubeError struct {
	Code    int
	Kind    string
	Message string
}

func (e *CubeError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
}

// ---- Pipeline errors ----

var (
	ErrInvalidImage        = &CubeError{Code: 1001, Kind: "InvalidImage", Message: "face image does not meet sampling preconditions"}
	ErrIncompleteCubeState = &CubeError{Code: 1002, Kind: "IncompleteCubeState", Message: "not all six faces were supplied"}
	ErrMalformedCubeState  = &CubeError{Code: 1003, Kind: "MalformedCubeState", Message: "cube state is structurally implausible"}
	ErrSolverRejected      = &CubeError{Code: 1004, Kind: "SolverRejected", Message: "solving engine rejected the state"}
)

// ---- Infrastructure errors ----

var (
	ErrConfigInvalid = &CubeError{Code: 2001, Kind: "ConfigInvalid", Message: "invalid configuration"}
	ErrStore         = &CubeError{Code: 2002, Kind: "Store", Message: "attempt store failure"}
	ErrNotFound      = &CubeError{Code: 2003, Kind: "NotFound", Message: "attempt not found"}
)

// KindOf returns the kind of the first CubeError in err's chain, or "Internal".
func KindOf(err error) string {
	var ce *CubeError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return "Internal"
}

// ImageError reports a face image that cannot be sampled.
type ImageError struct {
	Face          Face
	Width, Height int
	Min           int
	Reason        string
}

func (e *ImageError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid image for %s face: %s", e.Face, e.Reason)
	}
	return fmt.Sprintf("invalid image for %s face: %dx%d is smaller than %dx%d", e.Face, e.Width, e.Height, e.Min, e.Min)
}

func (e *ImageError) Unwrap() error { return ErrInvalidImage }

// IncompleteError names the faces that were not supplied.
type IncompleteError struct {
	Missing []Face
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return "incomplete cube state: missing " + strings.Join(names, ", ")
}

func (e *IncompleteError) Unwrap() error { return ErrIncompleteCubeState }

// ColorCount is a color whose occurrence count is not 9.
type ColorCount struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Delta is the signed deviation from the expected 9.
func (c ColorCount) Delta() int { return c.Count - 9 }

// CenterClash is a color that appears on more than one face center.
type CenterClash struct {
	Color Color  `json:"color"`
	Faces []Face `json:"faces"`
}

// MalformedError describes why a cube state is implausible.
type MalformedError struct {
	Detail     string
	Counts     []ColorCount
	Duplicates []CenterClash
}

func (e *MalformedError) Error() string {
	var parts []string
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if len(e.Counts) > 0 {
		cs := make([]string, len(e.Counts))
		for i, c := range e.Counts {
			cs[i] = fmt.Sprintf("%s %d (%+d)", c.Color, c.Count, c.Delta())
		}
		parts = append(parts, "color counts off: "+strings.Join(cs, ", "))
	}
	for _, d := range e.Duplicates {
		faces := make([]string, len(d.Faces))
		for i, f := range d.Faces {
			faces[i] = f.String()
		}
		parts = append(parts, fmt.Sprintf("duplicate center %s on %s", d.Color, strings.Join(faces, ", ")))
	}
	return "malformed cube state: " + strings.Join(parts, "; ")
}

func (e *MalformedError) Unwrap() error { return ErrMalformedCubeState }

// RejectedError carries the solving engine's own diagnostic.
type RejectedError struct {
	Diagnostic string
	Err        error
}

func (e *RejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver rejected state: %s: %v", e.Diagnostic, e.Err)
	}
	return "solver rejected state: " + e.Diagnostic
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *RejectedError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSolverRejected, e.Err}
	}
	return []error{ErrSolverRejected}
}

// WrapCubeError returns a copy of base whose message includes cause.
func WrapCubeError(base *CubeError, msg string, cause error) *CubeError {
	m := msg
	if cause != nil {
		m = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &CubeError{Code: base.Code, Kind: base.Kind, Message: m}
}

// Is matches CubeErrors by code so wrapped copies compare equal to sentinels.
func (e *CubeError) Is(target error) bool {
	t, ok := target.(*CubeError)
	return ok && t.Code == e.Code
}
