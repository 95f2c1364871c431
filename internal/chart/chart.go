// Package chart renders population trajectories as terminal charts.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"colonysim/internal/model"
)

var (
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	eliminatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	thresholdStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	axisStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Render draws the daily series as a column chart of the given size. Columns
// are green while the colony is active and red once functionally eliminated;
// the dashed line marks the 5 % elimination threshold.
func Render(records []model.DailyRecord, initial float64, width, height int) string {
	if len(records) == 0 || width < 10 || height < 4 {
		return ""
	}

	labelWidth := 10
	plotWidth := width - labelWidth
	if plotWidth > len(records) {
		plotWidth = len(records)
	}

	maxPop := initial
	for _, r := range records {
		if r.Population > maxPop {
			maxPop = r.Population
		}
	}
	if maxPop <= 0 {
		maxPop = 1
	}

	threshold := model.EliminationFraction * initial
	thresholdRow := rowFor(threshold, maxPop, height)

	// One record per column; days are resampled when the horizon is wider
	// than the plot.
	cols := make([]model.DailyRecord, plotWidth)
	for c := 0; c < plotWidth; c++ {
		idx := c * (len(records) - 1) / max(plotWidth-1, 1)
		cols[c] = records[idx]
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		label := "          "
		switch row {
		case 0:
			label = fmt.Sprintf("%9.0f ", maxPop)
		case thresholdRow:
			label = fmt.Sprintf("%9.0f ", threshold)
		case height - 1:
			label = fmt.Sprintf("%9.0f ", 0.0)
		}
		b.WriteString(axisStyle.Render(label))

		for c := 0; c < plotWidth; c++ {
			rec := cols[c]
			barTop := rowFor(rec.Population, maxPop, height)
			style := activeStyle
			if rec.Phase == model.PhaseEliminated {
				style = eliminatedStyle
			}
			switch {
			case row >= barTop && rec.Population > 0:
				b.WriteString(style.Render("█"))
			case row == thresholdRow:
				b.WriteString(thresholdStyle.Render("┄"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// X axis with first/last day markers.
	first := cols[0].Day
	last := cols[len(cols)-1].Day
	axis := fmt.Sprintf("%*s%-*d%*d", labelWidth, "", plotWidth-len(fmt.Sprint(last)), first, len(fmt.Sprint(last)), last)
	b.WriteString(axisStyle.Render(axis))
	return b.String()
}

// rowFor maps a population value to a chart row, row 0 being the top.
func rowFor(v, maxPop float64, height int) int {
	frac := v / maxPop
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	row := height - 1 - int(math.Round(frac*float64(height-1)))
	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return row
}
