package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sample is an averaged RGB triple taken from a sub-region of a face image.
type Sample struct {
	R, G, B uint8
}

// SampleOf clamps arbitrary channel values into 0..255.
func SampleOf(r, g, b int) Sample {
	return Sample{R: clamp8(r), G: clamp8(g), B: clamp8(b)}
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// FaceGrid holds the 9 classified stickers of one face in raster order.
type FaceGrid [9]Color

func (g FaceGrid) String() string {
	var sb strings.Builder
	for _, c := range g {
		sb.WriteByte(c.Code())
	}
	return sb.String()
}

// Center is the middle sticker of the face.
func (g FaceGrid) Center() Color { return g[4] }

// StateOrder is the face sequence of a cube state string. The solving engine
// reads facelets in exactly this order.
var StateOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// StateLen is the number of facelets in a cube state string.
const StateLen = 54

// CubeState is the 54 facelet colors ordered by StateOrder, 9 per face.
type CubeState [StateLen]Color

// ParseCubeState reads a 54 character string of color codes (W, Y, R, O, G, B).
func ParseCubeState(s string) (CubeState, error) {
	var st CubeState
	s = strings.TrimSpace(s)
	if len(s) != StateLen {
		return st, &MalformedError{Detail: fmt.Sprintf("state must have %d facelets, got %d", StateLen, len(s))}
	}
	for i := 0; i < StateLen; i++ {
		c, ok := ParseColor(s[i])
		if !ok {
			return st, &MalformedError{Detail: fmt.Sprintf("unknown color code %q at position %d", s[i], i)}
		}
		st[i] = c
	}
	return st, nil
}

func (s CubeState) String() string {
	var sb strings.Builder
	sb.Grow(StateLen)
	for _, c := range s {
		sb.WriteByte(c.Code())
	}
	return sb.String()
}

func offsetOf(f Face) int {
	for i, of := range StateOrder {
		if of == f {
			return i * 9
		}
	}
	return -1
}

// Face returns the 9-sticker block belonging to f.
func (s CubeState) Face(f Face) FaceGrid {
	var g FaceGrid
	off := offsetOf(f)
	if off < 0 {
		return g
	}
	copy(g[:], s[off:off+9])
	return g
}

func (s CubeState) Center(f Face) Color { return s.Face(f).Center() }

// Counts returns how often each color occurs, indexed by Color.
func (s CubeState) Counts() [6]int {
	var n [6]int
	for _, c := range s {
		if c.Valid() {
			n[c]++
		}
	}
	return n
}

// Facelets translates the state into the engine alphabet: every sticker is
// replaced by the letter of the face whose center has the same color.
func (s CubeState) Facelets() (string, error) {
	for i, c := range s {
		if !c.Valid() {
			return "", &MalformedError{Detail: fmt.Sprintf("invalid color %d at position %d", int(c), i)}
		}
	}
	var letterOf [6]byte
	for _, f := range StateOrder {
		c := s.Center(f)
		if letterOf[c] != 0 {
			return "", &MalformedError{Duplicates: []CenterClash{{Color: c, Faces: s.facesWithCenter(c)}}}
		}
		letterOf[c] = f.Letter()
	}
	var sb strings.Builder
	sb.Grow(StateLen)
	for _, c := range s {
		sb.WriteByte(letterOf[c])
	}
	return sb.String(), nil
}

func (s CubeState) facesWithCenter(c Color) []Face {
	var out []Face
	for _, f := range StateOrder {
		if s.Center(f) == c {
			out = append(out, f)
		}
	}
	return out
}

// Solution is what the solving engine returned for a state. Moves holds
// the raw tokens; they are not required to parse as a Move.
type Solution struct {
	Moves []string `json:"moves"`
	Raw   string   `json:"raw"`
}

// Step is one move rendered as an instruction.
type Step struct {
	Index int    `json:"index"`
	Move  string `json:"move"`
	Text  string `json:"text"`
}

// Report summarises a validated state for presentation.
type Report struct {
	Counts  map[string]int    `json:"counts"`
	Centers map[string]string `json:"centers"`
}

// Attempt is the persisted record of one solve attempt.
type Attempt struct {
	ID        string        `json:"id"`
	CreatedAt int64         `json:"createdAt"`
	Status    Status        `json:"status"`
	Stage     Stage         `json:"stage,omitempty"`
	State     string        `json:"state,omitempty"`
	Facelets  string        `json:"facelets,omitempty"`
	Solution  string        `json:"solution,omitempty"`
	MoveCount int           `json:"moveCount"`
	ErrorKind string        `json:"errorKind,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}
