package explain

import (
	"fmt"
	"strings"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/ports"
)

// Table implements a fixed lookup from move token to instruction.
type Table struct{}

func New() *Table { return &Table{} }

var faceWords = map[domain.Face]string{
	domain.Up:    "Up",
	domain.Down:  "Down",
	domain.Front: "Front",
	domain.Back:  "Back",
	domain.Left:  "Left",
	domain.Right: "Right",
}

var turnWords = map[domain.Turn]string{
	domain.Clockwise:        "clockwise",
	domain.CounterClockwise: "counterclockwise",
	domain.Half:             "180 degrees",
}

var sentences = buildSentences()

func buildSentences() map[domain.Move]string {
	m := make(map[domain.Move]string, 18)
	for _, mv := range domain.AllMoves() {
		m[mv] = fmt.Sprintf("Turn the %s face %s", faceWords[mv.Face], turnWords[mv.Turn])
	}
	return m
}

// Explain never fails: unknown tokens get an "Unrecognized move" sentence.
func (t *Table) Explain(token string) string {
	if mv, err := domain.ParseMove(token); err == nil {
		if s, ok := sentences[mv]; ok {
			return s
		}
	}
	return "Unrecognized move: " + token
}

// Steps explains a whitespace separated move list, numbering from 1.
func Steps(e ports.Explainer, moves string) []domain.Step {
	toks := strings.Fields(moves)
	out := make([]domain.Step, 0, len(toks))
	for i, tok := range toks {
		out = append(out, domain.Step{Index: i + 1, Move: tok, Text: e.Explain(tok)})
	}
	return out
}
