package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/mlp/nn"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// truthTables are the 4×3 datasets the xor command can learn: two inputs
// followed by one label per row.
var truthTables = map[string][]float32{
	"xor": {
		0, 0, 0,
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	},
	// Input (1, 1) appears with both labels, so no network fits it exactly;
	// the best achievable mean MSE is 0.125.
	"conflicting": {
		1, 1, 1,
		1, 1, 0,
		1, 0, 1,
		0, 0, 0,
	},
	"and": {
		0, 0, 0,
		0, 1, 0,
		1, 0, 0,
		1, 1, 1,
	},
	"or": {
		0, 0, 0,
		0, 1, 1,
		1, 0, 1,
		1, 1, 1,
	},
}

var (
	headerStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	cellStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1)
	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// predictionTable renders predictions as a bordered table. Rows whose
// rounded result differs from the expected label are highlighted.
func predictionTable(preds []nn.Prediction) string {
	misses := make(map[int]bool)
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers("Case", "Input", "Result", "Expected", "OK").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row < 0:
				return headerStyle
			case misses[row]:
				return missStyle.Align(lipgloss.Right)
			default:
				return cellStyle.Align(lipgloss.Right)
			}
		})

	for i, p := range preds {
		ok := correct(p)
		if !ok {
			misses[i] = true
		}
		mark := "yes"
		if !ok {
			mark = "no"
		}
		t.Row(fmt.Sprint(p.Case), values(p.Input), values(p.Result), values(p.Expected), mark)
	}
	return t.String()
}

// correct reports whether every output rounds to its label.
func correct(p nn.Prediction) bool {
	expected := p.Expected.Data()
	for i, v := range p.Result.Data() {
		if (v >= 0.5) != (expected[i] >= 0.5) {
			return false
		}
	}
	return true
}

func values(m *nn.Matrix) string {
	parts := make([]string, 0, m.Size())
	for _, v := range m.All() {
		parts = append(parts, fmt.Sprintf("%.4f", v))
	}
	return strings.Join(parts, " ")
}
