// ColorStdoutWriter prints human-friendly, colorized records to STDOUT.
package sim

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	"golang.org/x/term"

	"colonysim/internal/model"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
)

// ColorStdoutWriter prints daily records using ANSI colors, the trajectory
// colored by its phase (green while active, red once eliminated). Colors are
// suppressed when STDOUT is not a terminal.
type ColorStdoutWriter struct {
	params  model.Parameters
	out     io.Writer
	once    sync.Once
	noColor bool
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter(params model.Parameters) *ColorStdoutWriter {
	return &ColorStdoutWriter{
		params:  params,
		out:     os.Stdout,
		noColor: !term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (w *ColorStdoutWriter) color(c string) string {
	if w.noColor {
		return ""
	}
	return c
}

func (w *ColorStdoutWriter) printOverview() {
	fmt.Fprintln(w.out, "Simulation Parameters:")
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Temperature (°C):\t%.1f\n", w.params.TemperatureC)
	fmt.Fprintf(tw, "Humidity (%%):\t%.1f\n", w.params.HumidityPct)
	fmt.Fprintf(tw, "Initial Population:\t%.0f\n", w.params.InitialPopulation)
	fmt.Fprintf(tw, "Immigration (ind/day):\t%.1f\n", w.params.Immigration)
	fmt.Fprintf(tw, "Potency:\t%.3f\n", w.params.Potency)
	fmt.Fprintf(tw, "Feeding Delay (days):\t%d\n", w.params.FeedingDelayDays)
	fmt.Fprintf(tw, "Horizon (days):\t%d\n", w.params.HorizonDays)
	tw.Flush()
	fmt.Fprintln(w.out)
}

// Write outputs a single daily record in colorized format.
func (w *ColorStdoutWriter) Write(rec model.DailyRecord) error {
	w.once.Do(w.printOverview)

	phaseColor := colorGreen
	if rec.Phase == model.PhaseEliminated {
		phaseColor = colorRed
	}
	reset := w.color(colorReset)
	fmt.Fprintf(w.out, "%sday=%3d%s %spop=%10.2f%s %skill=%.3f%s %s%s%s\n",
		w.color(colorGray), rec.Day, reset,
		w.color(colorCyan), rec.Population, reset,
		w.color(colorYellow), rec.KillFraction, reset,
		w.color(phaseColor), rec.Phase, reset)
	return nil
}

// WriteBatch outputs multiple daily records.
func (w *ColorStdoutWriter) WriteBatch(recs []model.DailyRecord) error {
	for _, r := range recs {
		_ = w.Write(r)
	}
	return nil
}

// WriteSummary prints the run verdict.
func (w *ColorStdoutWriter) WriteSummary(s model.RunSummary) error {
	reset := w.color(colorReset)
	if s.Elimination.Reached {
		fmt.Fprintf(w.out, "\n%sfunctional elimination reached on day %d%s (final population %.2f)\n",
			w.color(colorRed), s.Elimination.Day, reset, s.FinalPopulation)
	} else {
		fmt.Fprintf(w.out, "\n%scolony still active after %d days%s (final population %.2f)\n",
			w.color(colorGreen), s.Params.HorizonDays, reset, s.FinalPopulation)
	}
	return nil
}
