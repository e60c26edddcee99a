package domain

import (
	"fmt"
	"strings"
)

// Face identifies one physical side of the cube. Supplied by the caller at
// acquisition time, never inferred from pixels.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Up
	Down
)

// Faces lists every face in declaration order.
var Faces = [6]Face{Front, Back, Left, Right, Up, Down}

var faceNames = [...]string{"Front", "Back", "Left", "Right", "Up", "Down"}
var faceLetters = [...]byte{'F', 'B', 'L', 'R', 'U', 'D'}

func (f Face) Valid() bool { return f >= Front && f <= Down }

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Letter is the single-letter face code used by the solving engine.
func (f Face) Letter() byte {
	if !f.Valid() {
		return '?'
	}
	return faceLetters[f]
}

// ParseFace accepts a face name or its letter, case-insensitive.
func ParseFace(s string) (Face, error) {
	s = strings.TrimSpace(s)
	for i, name := range faceNames {
		if strings.EqualFold(s, name) || (len(s) == 1 && strings.EqualFold(s, string(faceLetters[i]))) {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// Color is a sticker color. Declaration order is the classifier tie-break order.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Green
	Blue
)

// Colors lists the palette in tie-break order.
var Colors = [6]Color{White, Yellow, Red, Orange, Green, Blue}

var colorNames = [...]string{"White", "Yellow", "Red", "Orange", "Green", "Blue"}
var colorCodes = [...]byte{'W', 'Y', 'R', 'O', 'G', 'B'}

func (c Color) Valid() bool { return c >= White && c <= Blue }

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Code is the canonical one-letter code for the color.
func (c Color) Code() byte {
	if !c.Valid() {
		return '?'
	}
	return colorCodes[c]
}

func ParseColor(code byte) (Color, bool) {
	for i, cc := range colorCodes {
		if cc == code {
			return Color(i), true
		}
	}
	return 0, false
}

// Turn is the amount a face is rotated by a move.
type Turn int

const (
	Clockwise Turn = iota
	CounterClockwise
	Half
)

var turnSuffix = [...]string{"", "'", "2"}

// Move is one face turn in standard notation.
type Move struct {
	Face Face
	Turn Turn
}

func (m Move) String() string {
	return string(m.Face.Letter()) + turnSuffix[m.Turn]
}

// moveFaces is the order engines conventionally enumerate moves in.
var moveFaces = [6]Face{Up, Down, Front, Back, Left, Right}

// AllMoves returns the 18 move tokens.
func AllMoves() []Move {
	out := make([]Move, 0, 18)
	for _, f := range moveFaces {
		for t := Clockwise; t <= Half; t++ {
			out = append(out, Move{Face: f, Turn: t})
		}
	}
	return out
}

// ParseMove parses tokens like "R", "U'" or "F2".
func ParseMove(tok string) (Move, error) {
	if len(tok) == 0 || len(tok) > 2 {
		return Move{}, fmt.Errorf("invalid move %q", tok)
	}
	var face Face = -1
	for i, l := range faceLetters {
		if tok[0] == l {
			face = Face(i)
			break
		}
	}
	if face < 0 {
		return Move{}, fmt.Errorf("invalid move %q", tok)
	}
	switch tok[1:] {
	case "":
		return Move{Face: face, Turn: Clockwise}, nil
	case "'":
		return Move{Face: face, Turn: CounterClockwise}, nil
	case "2":
		return Move{Face: face, Turn: Half}, nil
	}
	return Move{}, fmt.Errorf("invalid move %q", tok)
}

// Status is the outcome of a solve attempt.
type Status string

const (
	StatusSolved   Status = "solved"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// Stage names a pipeline step, used to report where an attempt stopped.
type Stage string

const (
	StageAcquire  Stage = "acquire"
	StageSample   Stage = "sample"
	StageAssemble Stage = "assemble"
	StageValidate Stage = "validate"
	StageSolve    Stage = "solve"
	StageExplain  Stage = "explain"
)
