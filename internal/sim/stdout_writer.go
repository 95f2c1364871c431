// Writer implementation printing records to STDOUT
package sim

import (
	"encoding/json"
	"fmt"

	"colonysim/internal/model"
)

// StdoutWriter prints daily records to STDOUT as JSON lines.
type StdoutWriter struct{}

// Write outputs a single daily record.
func (w *StdoutWriter) Write(rec model.DailyRecord) error {
	data, _ := json.Marshal(rec)
	fmt.Println(string(data))
	return nil
}

// WriteBatch outputs multiple daily records.
func (w *StdoutWriter) WriteBatch(recs []model.DailyRecord) error {
	for _, r := range recs {
		_ = w.Write(r)
	}
	return nil
}

// WriteSummary prints a run summary to STDOUT.
func (w *StdoutWriter) WriteSummary(s model.RunSummary) error {
	data, _ := json.Marshal(s)
	fmt.Println(string(data))
	return nil
}

// WriteSummaries prints multiple run summaries.
func (w *StdoutWriter) WriteSummaries(rows []model.RunSummary) error {
	for _, s := range rows {
		_ = w.WriteSummary(s)
	}
	return nil
}
