package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/cube/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle = lipgloss.NewStyle().Bold(true).Width(7)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a8699"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	stepStyle  = lipgloss.NewStyle().PaddingLeft(2)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var stickerHex = map[domain.Color]string{
	domain.White:  "#ffffff",
	domain.Yellow: "#ffd500",
	domain.Red:    "#c41e3a",
	domain.Orange: "#ff5800",
	domain.Green:  "#009e60",
	domain.Blue:   "#0051ba",
}

// sticker draws one facelet as a colored block labeled with its code.
func sticker(c domain.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(stickerHex[c])).
		Foreground(lipgloss.Color("#000000")).
		Render(" " + string(c.Code()) + " ")
}

// faceBlock renders a face grid as three rows of stickers.
func faceBlock(g domain.FaceGrid) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			cells[c] = sticker(g[r*3+c])
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// stateView lays out all six faces side by side in state order.
func stateView(s domain.CubeState) string {
	blocks := make([]string, 0, len(domain.StateOrder))
	for _, f := range domain.StateOrder {
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(f.String()), faceBlock(s.Face(f))))
		blocks = append(blocks, "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func stepsView(steps []domain.Step) string {
	if len(steps) == 0 {
		return stepStyle.Render("Cube is already solved.")
	}
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = stepStyle.Render(fmt.Sprintf("%2d. %-3s %s", s.Index, s.Move, s.Text))
	}
	return strings.Join(lines, "\n")
}

func countsView(rep domain.Report) string {
	parts := make([]string, 0, len(domain.Colors))
	for _, c := range domain.Colors {
		parts = append(parts, fmt.Sprintf("%s %d", c, rep.Counts[c.String()]))
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}
