package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/shadowboard/pkg/board"
)

const terminalMarker = "●"

var (
	terminalLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1)
	terminalBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTerminal renders h as a coloured table. Detected cells carry a marker.
// Row labels run down the left edge (5 at the top) and column labels A–E head
// the table.
func RenderTerminal(h Heatmap) (string, error) {
	scale, err := h.scale()
	if err != nil {
		return "", err
	}

	headers := []string{""}
	for c := 0; c < board.Size; c++ {
		headers = append(headers, board.ColumnLabel(c))
	}

	rows := make([][]string, 0, board.Size)
	for r := 0; r < board.Size; r++ {
		row := []string{board.RowLabel(r)}
		for c := 0; c < board.Size; c++ {
			cell := board.Cell{Row: r, Col: c}
			text := fmt.Sprintf("%.2f  ", h.Scores.At(cell))
			if h.Detected.At(cell) {
				text = fmt.Sprintf("%.2f %s", h.Scores.At(cell), terminalMarker)
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(terminalBorderStyle).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return terminalLabelStyle
			}
			cell := board.Cell{Row: row, Col: col - 1}
			v := h.Scores.At(cell)
			style := lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color(scale.Hex(v))).
				Foreground(lipgloss.Color("#000000"))
			if scale.IsDark(v) {
				style = style.Foreground(lipgloss.Color("#ffffff"))
			}
			if h.Detected.At(cell) {
				style = style.Bold(true)
			}
			return style
		})

	return t.Render(), nil
}
